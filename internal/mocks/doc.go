// Package mocks provides centralized mock implementations of the store and
// service interfaces for testing. Each mock exposes function fields that
// tests override per case; unset fields fall back to simple in-memory
// defaults.
package mocks
