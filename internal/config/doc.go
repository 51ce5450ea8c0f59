// Package config handles configuration loading, parsing, and validation
// from various sources (environment variables, files). It provides type-safe
// access to application settings needed by different components while keeping
// configuration details separate from business logic.
//
// Environment variables use the QUIRE_ prefix with sections joined by an
// underscore, for example QUIRE_SERVER_PORT or QUIRE_DATABASE_URL.
package config
