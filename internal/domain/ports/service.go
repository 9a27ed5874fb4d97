package ports

import (
	"context"

	"github.com/Cubey2019/insight-vtc-api/internal/domain/model"
)

//go:generate mockgen -source=service.go -destination=mock_service.go -package=ports

type CurrencyService interface {
	Index(ctx context.Context) model.CurrencyResponse
}
