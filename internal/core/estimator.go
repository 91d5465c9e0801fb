package core

import (
	"context"
	"errors"
	"fmt"

	"proptoken/internal/repository"

	"go.uber.org/zap"
)

// Estimator runs the ML price forecast for a property and persists the
// result, satisfying the tokenization precondition.
type Estimator struct {
	logs       *zap.SugaredLogger
	repo       Repository
	forecaster Forecaster
}

func NewEstimator(logger *zap.SugaredLogger, repo Repository, forecaster Forecaster) *Estimator {
	return &Estimator{
		logs:       logger,
		repo:       repo,
		forecaster: forecaster,
	}
}

func (e *Estimator) EstimatePrice(ctx context.Context, propertyID string) (float64, error) {
	property, err := e.repo.GetPropertyByID(ctx, propertyID)
	if err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return 0, ErrPropertyNotFound
		}
		return 0, fmt.Errorf("get property: %w", err)
	}

	price, err := e.forecaster.ForecastPrice(ctx, property)
	if err != nil {
		return 0, fmt.Errorf("forecast price: %w", err)
	}

	if err := e.repo.SetPropertyEstimatedPrice(ctx, property.ID, price); err != nil {
		return 0, fmt.Errorf("persist estimated price: %w", err)
	}

	e.logs.Infow("property price estimated",
		"property_id", property.ID,
		"estimated_price", price)

	return price, nil
}
