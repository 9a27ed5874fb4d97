package ports

import (
	"context"
	"time"
)

//go:generate mockgen -source=fetcher.go -destination=mock_fetcher.go -package=ports

// QuoteFetcher performs the single outbound call for the ticker body.
// Transport failures wrap model.ErrTransport.
type QuoteFetcher interface {
	Fetch(ctx context.Context) ([]byte, error)
}

// Clock supplies the current time for freshness checks.
type Clock interface {
	Now() time.Time
}
