// Package store defines the persistence contracts of the shop: one
// interface per entity (products, orders, cart rows, users), the sentinel
// errors those interfaces return, and helpers shared by every backend
// (the DBTX abstraction and transaction management).
package store
