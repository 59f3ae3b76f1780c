// Package storage declares persistence contracts for the web service.
// Implementations live in subpackages so handlers depend only on the
// interface.
package storage
