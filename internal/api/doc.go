// Package api serves quire's JSON API: token login and read-only views of
// posts and forms. It translates HTTP concerns to service and store calls and
// maps their errors to status codes without leaking internal details.
package api
