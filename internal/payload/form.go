package payload

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Form is the loosely-typed field bag a listing form submits. Values are
// whatever the client sent: strings, numbers, booleans, arrays or nested
// objects.
//
// Most accessors take an ordered alias list and read the first alias whose
// value is truthy (not nil, "", false or 0), so legacy field names keep
// working without scattering fallbacks through the builders.
type Form map[string]any

// ParseForm decodes a JSON object into a Form.
func ParseForm(data []byte) (Form, error) {
	var f Form
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decoding form: %w", err)
	}
	if f == nil {
		f = Form{}
	}
	return f, nil
}

// First returns the value of the first alias that holds a truthy value.
func (f Form) First(keys ...string) any {
	for _, k := range keys {
		if v, ok := f[k]; ok && truthy(v) {
			return v
		}
	}
	return nil
}

// String returns the first truthy alias rendered as a string, or "".
func (f Form) String(keys ...string) string {
	return toString(f.First(keys...))
}

// Int parses the first truthy alias as a base-10 integer. It reports false
// when no alias is set or the value has no leading digits.
func (f Form) Int(keys ...string) (int64, bool) {
	return parseInt(f.First(keys...))
}

// Bool returns the first alias that is set to a boolean-like value. Unlike
// the other accessors, an explicit false is returned rather than skipped.
func (f Form) Bool(keys ...string) (bool, bool) {
	for _, k := range keys {
		switch v := f[k].(type) {
		case bool:
			return v, true
		case string:
			switch strings.ToLower(strings.TrimSpace(v)) {
			case "true", "yes", "1", "on":
				return true, true
			case "false", "no", "0", "off":
				return false, true
			}
		}
	}
	return false, false
}

// Strings returns the first truthy alias as a string list. A scalar value
// becomes a one-element list.
func (f Form) Strings(keys ...string) []string {
	switch v := f.First(keys...).(type) {
	case nil:
		return nil
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s := toString(e); s != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		if s := toString(v); s != "" {
			return []string{s}
		}
		return nil
	}
}

// Object returns the first alias holding a nested object.
func (f Form) Object(keys ...string) Form {
	for _, k := range keys {
		switch v := f[k].(type) {
		case Form:
			return v
		case map[string]any:
			return Form(v)
		}
	}
	return Form{}
}

// Objects returns the nested objects of the first alias holding a list.
// Elements that are not objects are skipped.
func (f Form) Objects(keys ...string) []Form {
	for _, k := range keys {
		var list []any
		switch v := f[k].(type) {
		case []any:
			list = v
		case []map[string]any:
			out := make([]Form, len(v))
			for i, m := range v {
				out[i] = Form(m)
			}
			return out
		case []Form:
			return v
		default:
			continue
		}
		out := make([]Form, 0, len(list))
		for _, e := range list {
			switch m := e.(type) {
			case map[string]any:
				out = append(out, Form(m))
			case Form:
				out = append(out, m)
			}
		}
		return out
	}
	return nil
}

func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case bool:
		return t
	case float64:
		return t != 0 && !math.IsNaN(t)
	case float32:
		return t != 0 && !math.IsNaN(float64(t))
	case int:
		return t != 0
	case int64:
		return t != 0
	case int32:
		return t != 0
	case json.Number:
		f, err := t.Float64()
		return err == nil && f != 0
	}
	return true
}

func toString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	case fmt.Stringer:
		return t.String()
	case int, int32, int64, float32:
		return fmt.Sprint(t)
	}
	return ""
}

// parseInt mirrors lenient base-10 integer parsing: leading whitespace and
// an optional sign are accepted, parsing stops at the first non-digit, and
// floats are truncated toward zero.
func parseInt(v any) (int64, bool) {
	switch t := v.(type) {
	case int:
		return int64(t), true
	case int32:
		return int64(t), true
	case int64:
		return t, true
	case float32:
		return truncate(float64(t))
	case float64:
		return truncate(t)
	case json.Number:
		return parseIntString(t.String())
	case string:
		return parseIntString(t)
	}
	return 0, false
}

func truncate(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) >= math.MaxInt64 {
		return 0, false
	}
	return int64(math.Trunc(f)), true
}

func parseIntString(s string) (int64, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}
	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
