package batch

import (
	"encoding/json"
	"fmt"
	"reflect"

	apperrors "github.com/agbru/humanize/internal/errors"
)

// Shape is the container form of an input, mirrored by its result.
type Shape uint8

const (
	ShapeScalar Shape = iota
	ShapeList
	ShapeTuple
)

func (s Shape) String() string {
	switch s {
	case ShapeList:
		return "list"
	case ShapeTuple:
		return "tuple"
	default:
		return "scalar"
	}
}

// Sequence is an ordered collection whose elements are read one at a time
// and may fail to be produced.
type Sequence interface {
	Len() int
	At(i int) (any, error)
}

// fixedSequence is implemented by sequences that want a tuple result.
type fixedSequence interface {
	Fixed() bool
}

// Tuple is a fixed-length collection; its result is a [N]string array.
type Tuple []any

// Len implements Sequence.
func (t Tuple) Len() int { return len(t) }

// At implements Sequence.
func (t Tuple) At(i int) (any, error) { return t[i], nil }

// Fixed marks Tuple results as fixed-length.
func (Tuple) Fixed() bool { return true }

// collect determines the shape of input and returns its elements. A scalar
// yields a single element.
func collect(input any) (Shape, []any, error) {
	switch x := input.(type) {
	case nil, string, []byte, json.Number:
		return ShapeScalar, []any{input}, nil
	case []any:
		return ShapeList, x, nil
	case []string:
		items := make([]any, len(x))
		for i, s := range x {
			items[i] = s
		}
		return ShapeList, items, nil
	case Sequence:
		return collectSequence(x)
	}

	rv := reflect.ValueOf(input)
	switch rv.Kind() {
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return ShapeScalar, []any{input}, nil
		}
		return ShapeList, elements(rv), nil
	case reflect.Array:
		return ShapeTuple, elements(rv), nil
	}
	return ShapeScalar, []any{input}, nil
}

func collectSequence(seq Sequence) (Shape, []any, error) {
	shape := ShapeList
	if f, ok := seq.(fixedSequence); ok && f.Fixed() {
		shape = ShapeTuple
	}
	n, err := sequenceLen(seq)
	if err != nil {
		return shape, nil, &apperrors.IterationError{Index: 0, Cause: err}
	}
	if n < 0 {
		return shape, nil, &apperrors.IterationError{Index: 0, Cause: fmt.Errorf("sequence reported negative length %d", n)}
	}
	items := make([]any, n)
	for i := range n {
		item, err := sequenceAt(seq, i)
		if err != nil {
			return shape, nil, &apperrors.IterationError{Index: i, Cause: err}
		}
		items[i] = item
	}
	return shape, items, nil
}

func sequenceLen(seq Sequence) (n int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("sequence length panicked: %v", r)
		}
	}()
	return seq.Len(), nil
}

func sequenceAt(seq Sequence, i int) (item any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("sequence element panicked: %v", r)
		}
	}()
	return seq.At(i)
}

func elements(rv reflect.Value) []any {
	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items
}
