package model

import "time"

// StatusOK is the only status a rate lookup ever reports.
const StatusOK = "ok"

// LookupResult tells how a lookup was answered.
type LookupResult string

const (
	// LookupHit means the stored rate was fresh and no fetch happened.
	LookupHit LookupResult = "hit"
	// LookupRefreshed means a fetch succeeded and replaced the stored rate.
	LookupRefreshed LookupResult = "refreshed"
	// LookupStale means a fetch failed and the previous rate was served.
	LookupStale LookupResult = "stale"
)

type RateLookup struct {
	Rate      float64      `json:"rate"`
	Status    string       `json:"status"`
	Result    LookupResult `json:"result"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// CurrencyResponse is the envelope served by the index endpoint.
type CurrencyResponse struct {
	Status int                `json:"status"`
	Data   map[string]float64 `json:"data"`
}
