// Package testdb provides helpers for integration tests that need a real
// PostgreSQL database. Tests using it carry the integration build tag and are
// skipped when QUIRE_TEST_DATABASE_URL (or DATABASE_URL) is unset.
package testdb
