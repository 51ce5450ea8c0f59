// Package service contains the use cases that span more than one store call.
// Controllers use it for posts, whose writes touch the post row and two join
// tables, and for users, whose registration applies the duplicate-identity
// rule and hashes passwords. Simple entities go straight to their stores.
//
// Services receive their stores and a store.TxRunner through constructor
// injection and never depend on a specific store implementation.
package service
