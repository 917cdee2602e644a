// Package metrics records engine activity in a Prometheus registry owned by
// the process, so tests and embedded servers never touch the global default.
package metrics
