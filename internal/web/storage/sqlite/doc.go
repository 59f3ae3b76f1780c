// Package sqlite provides SQLite-backed persistence for web preferences.
package sqlite
