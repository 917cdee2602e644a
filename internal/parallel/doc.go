// Package parallel distributes independent, index-addressed work items over
// goroutines. Callers inject a Mapper so that fan-out can be swapped for a
// sequential implementation in tests or for small inputs.
package parallel
