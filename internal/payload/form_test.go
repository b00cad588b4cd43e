package payload_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"servicemart/internal/payload"
)

func TestForm_FirstSkipsFalsyValues(t *testing.T) {
	f := payload.Form{"a": "", "b": 0.0, "c": false, "d": "hit", "e": "later"}
	assert.Equal(t, "hit", f.First("missing", "a", "b", "c", "d", "e"))
	assert.Nil(t, f.First("a", "b"))
}

func TestForm_Int(t *testing.T) {
	tests := []struct {
		name   string
		value  any
		want   int64
		wantOK bool
	}{
		{"numeric string", "20000", 20000, true},
		{"leading whitespace and sign", "  -42", -42, true},
		{"trailing garbage", "12abc", 12, true},
		{"float string truncates", "3.9", 3, true},
		{"float value truncates", 7.8, 7, true},
		{"no digits", "abc", 0, false},
		{"sign only", "+", 0, false},
		{"object", map[string]any{}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := payload.Form{"v": tt.value}.Int("v")
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestForm_Bool(t *testing.T) {
	f := payload.Form{"withDriver": false, "driverIncluded": true}
	v, ok := f.Bool("withDriver", "driverIncluded")
	require.True(t, ok)
	assert.False(t, v)

	v, ok = payload.Form{"x": "yes"}.Bool("x")
	require.True(t, ok)
	assert.True(t, v)

	_, ok = payload.Form{"x": "maybe"}.Bool("x")
	assert.False(t, ok)
}

func TestForm_Strings(t *testing.T) {
	assert.Equal(t, []string{"Italian"}, payload.Form{"cuisine": "Italian"}.Strings("cuisineType", "cuisine"))
	assert.Equal(t, []string{"a", "b"}, payload.Form{"x": []any{"a", "", "b"}}.Strings("x"))
	assert.Nil(t, payload.Form{}.Strings("x"))
}

func TestParseForm(t *testing.T) {
	f, err := payload.ParseForm([]byte(`{"vehicleName":"Civic","location":{"address":"Lekki"}}`))
	require.NoError(t, err)
	assert.Equal(t, "Civic", f.String("vehicleName"))
	assert.Equal(t, "Lekki", f.Object("location").String("address"))

	f, err = payload.ParseForm([]byte(`null`))
	require.NoError(t, err)
	assert.NotNil(t, f)

	_, err = payload.ParseForm([]byte(`[1,2]`))
	assert.Error(t, err)
}

func TestExtractCity(t *testing.T) {
	assert.Equal(t, "Lekki", payload.ExtractCity("Lekki, Lagos", payload.KnownCities, "Lagos"))
	assert.Equal(t, "Victoria Island", payload.ExtractCity("12 Adeola Odeku Street Victoria Island", payload.KnownCities, "Lagos"))
	assert.Equal(t, "Lagos", payload.ExtractCity("somewhere unknown", payload.KnownCities, "Lagos"))
	assert.Equal(t, "Lagos", payload.ExtractCity("", payload.KnownCities, "Lagos"))
}
