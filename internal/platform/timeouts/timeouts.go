// Package timeouts defines shared timeout constants used across the web
// service. Centralizing these values prevents drift between components and
// makes the durations discoverable.
package timeouts

import "time"

// IdentityRequest caps the time allowed for a single call to the hosted
// identity provider.
const IdentityRequest = 2 * time.Second

// ReadHeader limits how long the HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long the HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second
