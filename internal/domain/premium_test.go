package domain

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCalculatePremium(t *testing.T) {
	t.Parallel()
	cases := []struct {
		value float64
		want  float64
	}{
		{5000, 50.0},
		{999, 9.99},
		{0, 0},
		{1, 0.01},
		{12.5, 0.13},
		{0.4, 0},
		{0.5, 0.01},
		{123456.78, 1234.57},
	}
	for _, c := range cases {
		require.Equal(t, c.want, CalculatePremium(c.value), "value=%v", c.value)
	}
}

func TestQuote_MalformedValuesPriceAtZero(t *testing.T) {
	t.Parallel()
	for _, raw := range []any{
		nil,
		"abc",
		"",
		true,
		map[string]any{"v": 1},
		[]any{1.0},
		-10.0,
		math.NaN(),
		math.Inf(1),
		"NaN",
	} {
		require.Equal(t, QuoteResult{Quote: 0}, Quote(raw), "raw=%#v", raw)
	}
}

func TestQuote_NumericForms(t *testing.T) {
	t.Parallel()
	require.Equal(t, 50.0, Quote(5000.0).Quote)
	require.Equal(t, 50.0, Quote(json.Number("5000")).Quote)
	require.Equal(t, 9.99, Quote(" 999 ").Quote)
	require.Equal(t, 10.0, Quote(1000).Quote)
	require.Equal(t, 10.0, Quote("1e3").Quote)
}

func TestParseValue_Errors(t *testing.T) {
	t.Parallel()
	_, err := ParseValue("twelve")
	require.ErrorIs(t, err, ErrInvalidValue)
	_, err = ParseValue(json.Number("1e400"))
	require.ErrorIs(t, err, ErrInvalidValue)
	_, err = ParseValue(-1.0)
	require.ErrorIs(t, err, ErrInvalidValue)
}
