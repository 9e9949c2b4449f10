// Package service contains operations that compose multiple stores,
// typically under a single database transaction.
package service
