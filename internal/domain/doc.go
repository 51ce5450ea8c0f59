// Package domain defines the core business entities of quire (posts, categories,
// authors, forms, questions, answers and users) together with their validation
// rules and the helpers that keep both sides of a relationship consistent.
//
// Entities are plain data holders. Identity is assigned by the persistence layer:
// an entity built from submitted form data carries uuid.Nil until it is created.
package domain
