package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDateTuple(t *testing.T) {
	got, ok := NormalizeDate([]any{float64(2024), float64(3), float64(5)})
	require.True(t, ok)
	assert.Equal(t, "2024-03-05", got)
}

func TestNormalizeDateIntSlice(t *testing.T) {
	got, ok := NormalizeDate([]int{2023, 12, 31})
	require.True(t, ok)
	assert.Equal(t, "2023-12-31", got)
}

func TestNormalizeDateISOPassThrough(t *testing.T) {
	got, ok := NormalizeDate("2024-03-05")
	require.True(t, ok)
	assert.Equal(t, "2024-03-05", got)
}

func TestNormalizeDateReformatsZeroElidedISO(t *testing.T) {
	got, ok := NormalizeDate("2024-3-5")
	require.True(t, ok)
	assert.Equal(t, "2024-03-05", got)
}

func TestNormalizeDateIdempotent(t *testing.T) {
	first, ok := NormalizeDate([]any{float64(2024), float64(1), float64(9)})
	require.True(t, ok)
	second, ok := NormalizeDate(first)
	require.True(t, ok)
	assert.Equal(t, first, second)
}

func TestNormalizeDateRejectsGarbage(t *testing.T) {
	for _, v := range []any{nil, "", "not a date", []any{float64(2024)}, 42} {
		_, ok := NormalizeDate(v)
		assert.False(t, ok, "value %#v should not normalize", v)
	}
}

func TestNormalizeDatesInPlace(t *testing.T) {
	r := Record{
		"issueDate":  []any{float64(2024), float64(6), float64(1)},
		"expiryDate": "2025-06-01",
		"name":       "Bank guarantee",
	}
	NormalizeDates(r, []string{"issueDate", "expiryDate"})
	assert.Equal(t, "2024-06-01", r["issueDate"])
	assert.Equal(t, "2025-06-01", r["expiryDate"])
	assert.Equal(t, "Bank guarantee", r["name"])
}

func TestNormalizeDatesLeavesUnparseableValues(t *testing.T) {
	r := Record{"issueDate": "soon"}
	NormalizeDates(r, []string{"issueDate"})
	assert.Equal(t, "soon", r["issueDate"])
}

func TestDisplayDate(t *testing.T) {
	assert.Equal(t, "2024-03-05", DisplayDate("2024-03-05"))
	assert.Equal(t, "2024-03-05", DisplayDate([]any{float64(2024), float64(3), float64(5)}))
	assert.Equal(t, "", DisplayDate(nil))
	assert.Equal(t, "", DisplayDate("not a date"))
}
