// Package postgres provides PostgreSQL implementations of the store
// interfaces. Queries are plain SQL over database/sql with the pgx driver;
// identities and timestamps come back from the database through RETURNING.
// The schema ships as embedded goose migrations, see Migrate.
package postgres
