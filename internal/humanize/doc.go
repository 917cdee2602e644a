// Package humanize converts numbers and number-like text into human-friendly
// strings: grouped digits ("1,234,567"), word-scaled magnitudes
// ("1.2 billion") and byte sizes ("4.2 MB", "4.0 MiB", "4.0M").
//
// Every input goes through a single pipeline. [Classify] resolves the dynamic
// input once into a [Value] (numeric, special token or opaque text), and the
// formatters ([IntComma], [IntWord], [NaturalSize]) only ever switch over
// those three variants. Formatting is pure: a [Formatter] holds no mutable
// state and is safe to share across goroutines.
package humanize
