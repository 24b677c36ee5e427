// Package config handles configuration loading, parsing, and validation
// from various sources (environment variables, files). It provides type-safe
// access to the settings needed by the generator binaries while keeping
// credentials out of source code.
package config
