// Package web serves the server-rendered HTML interface.
//
// Each resource has a handler with the actions index, show, new, create,
// edit, update and delete, mounted under /{package}/{resource}. Submissions
// are bound to request structs and validated with go-playground/validator.
// A rejected submission re-renders its form with status 422; a successful
// one queues a flash message in the session and redirects with 303 See Other.
// Mutating actions need a signed-in user.
package web
