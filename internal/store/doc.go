// Package store defines the repository interfaces used to persist quire's
// entities. These interfaces abstract the underlying storage mechanism from the
// controllers and services, so the same request flow runs against PostgreSQL or
// the in-memory implementation.
//
// Every store offers the same collection-like contract: Create (add), Update,
// Delete (remove), List (find all), GetByID and FindByName (case-insensitive
// substring match on the entity's label). Identity is assigned by the store on
// Create.
package store
