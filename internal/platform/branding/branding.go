// Package branding centralizes product naming so UI surfaces and page
// metadata stay consistent.
package branding

// AppName is the user-facing product name.
const AppName = "Camply"

// Tagline is the one-line product pitch shown on marketing surfaces.
const Tagline = "Find, book, and share campsites with the people you camp with."
