package service

import (
	"context"
	"net/http"

	"github.com/Cubey2019/insight-vtc-api/internal/domain/model"
	"github.com/Cubey2019/insight-vtc-api/internal/domain/ports"
	"github.com/Cubey2019/insight-vtc-api/pkg/logger"
)

type CurrencyService struct {
	cache    ports.RateCache
	provider string
	log      *logger.Logger
}

func NewCurrencyService(cache ports.RateCache, provider string, log *logger.Logger) *CurrencyService {
	return &CurrencyService{
		cache:    cache,
		provider: provider,
		log:      log,
	}
}

// Index reports the current rate keyed by provider name. Upstream failures
// are absorbed by the cache, so the envelope status is always 200.
func (s *CurrencyService) Index(ctx context.Context) model.CurrencyResponse {
	lookup := s.cache.Get(ctx)

	s.log.Debug("Rate lookup", "provider", s.provider, "rate", lookup.Rate, "result", lookup.Result)

	return model.CurrencyResponse{
		Status: http.StatusOK,
		Data: map[string]float64{
			s.provider: lookup.Rate,
		},
	}
}
