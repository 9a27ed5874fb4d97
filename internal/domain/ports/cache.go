package ports

import (
	"context"

	"github.com/Cubey2019/insight-vtc-api/internal/domain/model"
)

//go:generate mockgen -source=cache.go -destination=mock_cache.go -package=ports

type RateCache interface {
	Get(ctx context.Context) model.RateLookup
}
