package batch

import (
	"encoding/json"
	"reflect"
	"slices"
)

var stringType = reflect.TypeFor[string]()

// Result holds formatted strings in input order together with the input's
// shape. A scalar Result has exactly one value.
type Result struct {
	Shape  Shape
	Values []string
}

// Scalar returns the single formatted value of a scalar Result, or the first
// value of a collection.
func (r Result) Scalar() string {
	if len(r.Values) == 0 {
		return ""
	}
	return r.Values[0]
}

// Interface returns the result in its natural Go form: a string for a
// scalar, a []string for a list and a [N]string array for a tuple.
func (r Result) Interface() any {
	switch r.Shape {
	case ShapeList:
		return slices.Clone(r.Values)
	case ShapeTuple:
		arr := reflect.New(reflect.ArrayOf(len(r.Values), stringType)).Elem()
		for i, s := range r.Values {
			arr.Index(i).SetString(s)
		}
		return arr.Interface()
	default:
		return r.Scalar()
	}
}

// MarshalJSON encodes a scalar as a JSON string and a collection as an array.
func (r Result) MarshalJSON() ([]byte, error) {
	if r.Shape == ShapeScalar {
		return json.Marshal(r.Scalar())
	}
	if r.Values == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(r.Values)
}
