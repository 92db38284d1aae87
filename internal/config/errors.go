// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// ErrInvalidConfig is returned when the merged configuration fails
// validation. The validator's field errors are joined to it.
var ErrInvalidConfig = errors.New("invalid configuration")
