// Package batch applies a humanize.Formatter to a single value or to an
// ordered collection, returning a result of the same shape.
//
// Shape detection happens once per call. Strings, byte slices and
// json.Number are always scalars. Go slices produce a list, Go arrays and
// Tuple produce a tuple, and any Sequence produces a list (or a tuple when it
// reports Fixed). Every element is classified before formatting starts;
// formatting is then distributed through a parallel.Mapper and each worker
// writes only its own slot, so output order always equals input order.
package batch
