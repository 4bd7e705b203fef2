// Package shared provides common utilities and test helpers used across the
// report generator codebase. It serves as a central location for shared
// functionality that doesn't belong to any specific domain package.
//
// The testutil subpackage holds testing utilities, currently a buffered
// slog handler for asserting on the pipeline's structured log output.
//
// This package should never contain business logic, only generic helpers
// with no domain-specific behavior.
package shared
