// Package logging provides the structured logging surface shared by the
// humanize engine, the CLI and the HTTP server. Components depend on the
// Logger interface; zerolog backs it in production and the standard library
// logger backs it where a plain line format is wanted.
package logging
