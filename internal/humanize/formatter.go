//go:generate mockgen -source=formatter.go -destination=mocks/mock_formatter.go -package=mocks

package humanize

// Formatter renders one classified Value. Implementations are pure and safe
// for concurrent use.
type Formatter interface {
	// Name identifies the formatter ("intcomma", "intword", "naturalsize").
	Name() string
	// Format renders v.
	Format(v Value) string
}

// Formatter names.
const (
	NameIntComma    = "intcomma"
	NameIntWord     = "intword"
	NameNaturalSize = "naturalsize"
)

// Names lists the formatter names in a stable order.
func Names() []string {
	return []string{NameIntComma, NameIntWord, NameNaturalSize}
}
