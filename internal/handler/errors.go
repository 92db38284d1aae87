// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoServicesProvided is returned by NewHandlers when it has nothing to
// route requests to. It is a fatal misconfiguration at startup.
var errNoServicesProvided = errors.New("no services provided for handlers")
