package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// maxPriceExponent bounds the decimal exponent of a quoted price. It is
// past the float64 range in both directions.
const maxPriceExponent = 400

// Ticker is the currency pair block of an upstream quote.
type Ticker struct {
	Base   string          `json:"base"`
	Target string          `json:"target"`
	Price  json.RawMessage `json:"price"`
}

// Quote is the upstream ticker response. Older endpoints put the price at
// the top level instead of under ticker.
type Quote struct {
	Ticker    *Ticker         `json:"ticker"`
	Price     json.RawMessage `json:"price"`
	Timestamp int64           `json:"timestamp"`
	Success   *bool           `json:"success"`
	Error     string          `json:"error"`
}

// ParseQuote extracts the price from a ticker body. Any failure wraps
// ErrMalformedQuote.
func ParseQuote(body []byte) (float64, error) {
	var q Quote
	if err := json.Unmarshal(body, &q); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformedQuote, err)
	}

	if q.Success != nil && !*q.Success {
		return 0, fmt.Errorf("%w: upstream reported failure: %q", ErrMalformedQuote, q.Error)
	}

	raw := q.Price
	if q.Ticker != nil {
		raw = q.Ticker.Price
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, fmt.Errorf("%w: price field missing", ErrMalformedQuote)
	}

	text := string(raw)
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &text); err != nil {
			return 0, fmt.Errorf("%w: %v", ErrMalformedQuote, err)
		}
	}

	price, err := decimal.NewFromString(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("%w: price %q is not numeric", ErrMalformedQuote, text)
	}

	// Float64 expands the exponent into a big integer, so bound it first.
	exp := int(price.Exponent())
	if exp > maxPriceExponent || exp < -maxPriceExponent || price.NumDigits()+exp > maxPriceExponent {
		return 0, fmt.Errorf("%w: price %q is out of range", ErrMalformedQuote, text)
	}

	f, _ := price.Float64()
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, fmt.Errorf("%w: price %q is out of range", ErrMalformedQuote, text)
	}
	return f, nil
}
