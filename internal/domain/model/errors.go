package model

import "errors"

var (
	ErrTransport      = errors.New("quote transport failure")
	ErrMalformedQuote = errors.New("malformed quote")
)
