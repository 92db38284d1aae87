// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the student registry.
//
// Routes live under /api. The student routes sit behind the request gate
// (bearer authentication); health and client configuration are public.
// Errors are written in the shared {"error", "codigo", "campo"} form with a
// status derived from the error taxonomy.
package http
