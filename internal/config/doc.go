// Package config loads, merges and validates the service configuration.
//
// Configuration is assembled from several sources; later sources override
// non-zero fields of earlier ones:
//  1. Environment variables (a .env file is loaded into the environment by
//     the entry point before this package runs)
//  2. Command-line flags
//  3. JSON config file, when a path is given by CONFIG or -c
//
// Defaults are applied after merging and the result is validated with
// go-playground/validator struct tags. The entry point is
// [GetStructuredConfig].
package config
