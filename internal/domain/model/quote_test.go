package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tickerBody = `{
	"ticker": {
		"base": "VTC",
		"target": "USD",
		"price": "237.90000000",
		"volume": "216.95406435",
		"change": "0.00000000"
	},
	"timestamp": 1443798711,
	"success": true,
	"error": ""
}`

func TestParseQuote(t *testing.T) {
	testCases := []struct {
		name      string
		body      string
		wantPrice float64
		wantErr   bool
	}{
		{name: "ticker price string", body: tickerBody, wantPrice: 237.90},
		{name: "top level price string", body: `{"price": "220.20"}`, wantPrice: 220.20},
		{name: "numeric price", body: `{"ticker": {"price": 1.5}}`, wantPrice: 1.5},
		{name: "negative price accepted", body: `{"price": "-3.25"}`, wantPrice: -3.25},
		{name: "exponent", body: `{"price": "2.5e2"}`, wantPrice: 250},
		{name: "padded string", body: `{"price": " 7.00 "}`, wantPrice: 7},
		{name: "html", body: "<html><head><title>HTML</title></head><body></body></html>", wantErr: true},
		{name: "empty body", body: "", wantErr: true},
		{name: "json null", body: "null", wantErr: true},
		{name: "array", body: `[1,2]`, wantErr: true},
		{name: "missing price", body: `{"ticker": {"base": "VTC"}}`, wantErr: true},
		{name: "null price", body: `{"price": null}`, wantErr: true},
		{name: "non numeric price", body: `{"price": "abc"}`, wantErr: true},
		{name: "nan", body: `{"price": "NaN"}`, wantErr: true},
		{name: "upstream failure", body: `{"success": false, "error": "Pair not found"}`, wantErr: true},
		{name: "out of float range", body: `{"price": "1e400"}`, wantErr: true},
		{name: "huge exponent", body: `{"price": "1e200000000"}`, wantErr: true},
		{name: "huge negative exponent", body: `{"price": "1e-200000000"}`, wantErr: true},
		{name: "huge exponent on zero", body: `{"ticker": {"price": "0e2000000000"}}`, wantErr: true},
		{name: "boolean price", body: `{"price": true}`, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			price, err := ParseQuote([]byte(tc.body))

			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrMalformedQuote), "expected ErrMalformedQuote, got %v", err)
				assert.Zero(t, price)
				return
			}

			require.NoError(t, err)
			assert.InDelta(t, tc.wantPrice, price, 1e-9)
		})
	}
}

func TestParseQuote_UpstreamErrorText(t *testing.T) {
	_, err := ParseQuote([]byte(`{"success": false, "error": "Pair not found"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Pair not found")
}
