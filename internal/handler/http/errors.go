// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "github.com/MKhiriev/go-student-registry/models"

// errJSONBodyRequired is returned for create and update requests whose body
// is missing or is not a JSON object.
var errJSONBodyRequired = models.NewValidationError(models.FieldBody, "JSON body required")
