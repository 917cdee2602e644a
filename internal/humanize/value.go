package humanize

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// NoneText is the rendering of an absent value (a nil interface or nil
// pointer).
const NoneText = "None"

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	// KindNumeric is a parsed number, possibly non-finite.
	KindNumeric Kind = iota
	// KindSpecial is an explicit textual infinity or not-a-number token.
	KindSpecial
	// KindOpaque is text that is neither numeric nor a special token.
	KindOpaque
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindNumeric:
		return "numeric"
	case KindSpecial:
		return "special"
	case KindOpaque:
		return "opaque"
	default:
		return "unknown"
	}
}

// Special enumerates the recognised special tokens.
type Special uint8

const (
	PositiveInfinity Special = iota + 1
	NegativeInfinity
	NotANumber
)

// Float returns the IEEE-754 value the token stands for.
func (s Special) Float() float64 {
	switch s {
	case PositiveInfinity:
		return math.Inf(1)
	case NegativeInfinity:
		return math.Inf(-1)
	default:
		return math.NaN()
	}
}

// String renders the token with the non-finite rule.
func (s Special) String() string {
	return FormatNonFinite(s.Float())
}

// Value is the classified form of one input item. The zero Value is
// Numeric(0).
type Value struct {
	kind    Kind
	num     float64
	special Special
	text    string
}

// Numeric returns a numeric Value.
func Numeric(f float64) Value {
	return Value{kind: KindNumeric, num: f}
}

// FromNumber returns a numeric Value for any Go integer or float type.
func FromNumber[T constraints.Integer | constraints.Float](n T) Value {
	return Numeric(float64(n))
}

// SpecialToken returns a Value holding an explicit special token.
func SpecialToken(s Special) Value {
	return Value{kind: KindSpecial, special: s}
}

// Opaque returns a Value carrying text through unchanged.
func Opaque(text string) Value {
	return Value{kind: KindOpaque, text: text}
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// Float returns the number held by a numeric Value.
func (v Value) Float() (float64, bool) {
	return v.num, v.kind == KindNumeric
}

// Special returns the token held by a special Value.
func (v Value) Special() (Special, bool) {
	return v.special, v.kind == KindSpecial
}

// Text returns the text held by an opaque Value.
func (v Value) Text() (string, bool) {
	return v.text, v.kind == KindOpaque
}

// String implements fmt.Stringer for diagnostics.
func (v Value) String() string {
	switch v.kind {
	case KindNumeric:
		return "Numeric(" + strconv.FormatFloat(v.num, 'g', -1, 64) + ")"
	case KindSpecial:
		return "SpecialToken(" + v.special.String() + ")"
	default:
		return "Opaque(" + strconv.Quote(v.text) + ")"
	}
}

// Classify turns one input item into a Value. It is total: every item maps to
// exactly one variant and nothing is rejected.
//
// Go numeric kinds (including named types and bool) become Numeric. Strings,
// byte slices and json.Number are textual and go through ClassifyText. nil
// and nil pointers become Opaque("None"). The arbitrary-precision types
// *big.Int, *big.Float and *big.Rat become Numeric at float64 precision.
// Other pointers are dereferenced unless they point at a composite value
// whose pointer has a String or Error method, which is then used.
// Anything else is carried as Opaque holding its %v representation, or a
// placeholder naming its type when even that representation panics.
func Classify(item any) Value {
	switch x := item.(type) {
	case nil:
		return Opaque(NoneText)
	case Value:
		return x
	case string:
		return ClassifyText(x)
	case []byte:
		return ClassifyText(string(x))
	case json.Number:
		return ClassifyText(string(x))
	case float64:
		return Numeric(x)
	case float32:
		return FromNumber(x)
	case int:
		return FromNumber(x)
	case int64:
		return FromNumber(x)
	case int32:
		return FromNumber(x)
	case uint64:
		return FromNumber(x)
	case uint:
		return FromNumber(x)
	case bool:
		if x {
			return Numeric(1)
		}
		return Numeric(0)
	case *big.Int:
		if x == nil {
			return Opaque(NoneText)
		}
		f, _ := x.Float64()
		return Numeric(f)
	case *big.Float:
		if x == nil {
			return Opaque(NoneText)
		}
		f, _ := x.Float64()
		return Numeric(f)
	case *big.Rat:
		if x == nil {
			return Opaque(NoneText)
		}
		f, _ := x.Float64()
		return Numeric(f)
	}
	return classifyReflect(item)
}

func classifyReflect(item any) Value {
	rv := reflect.ValueOf(item)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Numeric(float64(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Numeric(float64(rv.Uint()))
	case reflect.Float32, reflect.Float64:
		return Numeric(rv.Float())
	case reflect.Bool:
		if rv.Bool() {
			return Numeric(1)
		}
		return Numeric(0)
	case reflect.String:
		return ClassifyText(rv.String())
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return ClassifyText(string(rv.Bytes()))
		}
	case reflect.Pointer:
		if rv.IsNil() {
			return Opaque(NoneText)
		}
		if hasTextMethod(item) && !isScalarKind(rv.Elem().Kind()) {
			return Opaque(describe(item))
		}
		return Classify(rv.Elem().Interface())
	}
	return Opaque(describe(item))
}

func hasTextMethod(item any) bool {
	switch item.(type) {
	case fmt.Stringer, error:
		return true
	}
	return false
}

// isScalarKind reports whether values of kind k classify by their content
// rather than by a method set.
func isScalarKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Bool, reflect.String:
		return true
	}
	return false
}

// describe renders an arbitrary item. Stringer and error methods are called
// directly so that a panicking method is observed here rather than swallowed
// by fmt.
func describe(item any) (text string) {
	defer func() {
		if r := recover(); r != nil {
			text = fmt.Sprintf("<unprintable object of type %T>", item)
		}
	}()
	switch x := item.(type) {
	case fmt.Stringer:
		return x.String()
	case error:
		return x.Error()
	}
	return fmt.Sprintf("%v", item)
}

// ClassifyText classifies textual input. Special tokens are matched first,
// case-insensitively and ignoring surrounding whitespace; then grouping
// commas are stripped and the remainder is parsed as a base-10 float.
func ClassifyText(s string) Value {
	if sp, ok := ParseSpecial(s); ok {
		return SpecialToken(sp)
	}
	if f, ok := parseNumber(s); ok {
		return Numeric(f)
	}
	return Opaque(s)
}

// ParseSpecial matches the special token spellings "inf", "+inf", "-inf" and
// "nan". A signed "nan" is still NaN.
func ParseSpecial(s string) (Special, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "inf", "+inf":
		return PositiveInfinity, true
	case "-inf":
		return NegativeInfinity, true
	case "nan", "+nan", "-nan":
		return NotANumber, true
	}
	return 0, false
}

func parseNumber(s string) (float64, bool) {
	cleaned := strings.ReplaceAll(s, ",", "")
	// Hexadecimal floats and underscore separators are Go syntax, not
	// decimal literals.
	if cleaned == "" || strings.ContainsAny(cleaned, "_xXpP") {
		return 0, false
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return f, true
		}
		return 0, false
	}
	return f, true
}
