package repository

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Cubey2019/insight-vtc-api/internal/domain/model"
	"github.com/Cubey2019/insight-vtc-api/pkg/logger"
)

// maxBodySize caps how much of an upstream response is read.
const maxBodySize = 1 << 20

// TickerAPI fetches the raw quote body for one currency pair.
type TickerAPI struct {
	url        string
	httpClient *http.Client
	log        *logger.Logger
}

func NewTickerAPI(url string, timeout time.Duration, log *logger.Logger) *TickerAPI {
	return NewTickerAPIWithClient(url, &http.Client{Timeout: timeout}, log)
}

func NewTickerAPIWithClient(url string, client *http.Client, log *logger.Logger) *TickerAPI {
	return &TickerAPI{
		url:        url,
		httpClient: client,
		log:        log,
	}
}

// Fetch issues a single GET. Network errors, timeouts and non-2xx answers
// wrap model.ErrTransport; the body is not interpreted here.
func (t *TickerAPI) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", model.ErrTransport, err)
	}
	req.Header.Set("Accept", "application/json")

	t.log.Debug("Fetching ticker", "url", t.url)

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to send request: %v", model.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: API returned non-2xx status: %d", model.ErrTransport, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", model.ErrTransport, err)
	}

	return body, nil
}
