package payload

import "reflect"

// StripEmptyDeep removes nil values, empty strings, empty slices and empty
// maps from v at every depth. Zero numbers and false are kept. A result of
// nil means everything was stripped.
//
// Maps with string keys come back as map[string]any and slices as []any.
func StripEmptyDeep(v any) any {
	switch t := v.(type) {
	case nil:
		return nil
	case Payload:
		return stripMap(t)
	case map[string]any:
		return stripMap(t)
	case []any:
		return stripSlice(t)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		return StripEmptyDeep(rv.Elem().Interface())
	case reflect.Map:
		if rv.IsNil() {
			return nil
		}
		if rv.Type().Key().Kind() != reflect.String {
			return v
		}
		m := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			m[iter.Key().String()] = iter.Value().Interface()
		}
		return stripMap(m)
	case reflect.Slice:
		if rv.IsNil() {
			return nil
		}
		fallthrough
	case reflect.Array:
		s := make([]any, rv.Len())
		for i := range s {
			s[i] = rv.Index(i).Interface()
		}
		return stripSlice(s)
	}
	return v
}

func stripMap(m map[string]any) any {
	out := make(map[string]any, len(m))
	for k, val := range m {
		cleaned := StripEmptyDeep(val)
		if isEmpty(cleaned) {
			continue
		}
		out[k] = cleaned
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func stripSlice(s []any) any {
	out := make([]any, 0, len(s))
	for _, val := range s {
		cleaned := StripEmptyDeep(val)
		if isEmpty(cleaned) {
			continue
		}
		out = append(out, cleaned)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// isEmpty reports whether an already-cleaned value should be dropped.
func isEmpty(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.String && rv.Len() == 0
}
