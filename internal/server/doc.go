// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP transport of the registry and shuts it down
// gracefully on SIGINT, SIGTERM or SIGQUIT.
package server
