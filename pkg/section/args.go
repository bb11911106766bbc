package section

import "reflect"

// AtLeast1D normalizes a positional argument to at-least-one-dimensional
// form: a slice or array expands to its elements, anything else wraps
// into a single-element slice. This lets a scalar selector ("x") and a
// sequence selector (["x","y"]) be treated uniformly, both when storing
// arguments and when invoking the plot function.
func AtLeast1D(v any) []any {
	if v == nil {
		return []any{}
	}
	switch vv := v.(type) {
	case []any:
		return vv
	case []string:
		out := make([]any, len(vv))
		for i, s := range vv {
			out[i] = s
		}
		return out
	case []float64:
		out := make([]any, len(vv))
		for i, f := range vv {
			out[i] = f
		}
		return out
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out
	}
	return []any{v}
}
