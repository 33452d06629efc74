// SPDX-License-Identifier: MIT

// Package config loads the simulator configuration from layered sources and
// builds the process logger.
//
// The loading order (from lowest to highest priority):
//  1. Default values (Default)
//  2. dotenv files (.env.local, then .env); they only fill variables that are
//     not already set in the process environment
//  3. A YAML file, when a path is given (unknown keys are rejected)
//  4. SOCIALNET_* environment variables
//
// The result is validated with go-playground/validator before it is returned.
// Command-line flags are applied on top by the binary.
package config
