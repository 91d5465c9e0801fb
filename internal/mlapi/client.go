package mlapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"time"

	"proptoken/internal/repository"

	"go.uber.org/zap"
)

const forecastTimeout = 30 * time.Second

// fallbacks when zip-code price statistics are unavailable
const (
	defaultZipMedianPrice = 385000.0
	defaultZipMeanPrice   = 412000.0
	defaultZipMedianSqft  = 1750.0
)

// zipStats holds price statistics for the markets the model was trained on.
var zipStats = map[string][3]float64{
	// zip: {median price, mean price, median sqft}
	"78701": {545000, 580000, 1600},
	"33101": {610000, 655000, 1450},
	"10001": {1150000, 1240000, 980},
	"94105": {1280000, 1350000, 1100},
}

type forecastRequest struct {
	Features []float64 `json:"features"`
}

type forecastResponse struct {
	Forecast struct {
		CurrentPrice float64 `json:"current_price"`
	} `json:"forecast"`
}

// Client calls the external ML forecasting API.
type Client struct {
	logs    *zap.SugaredLogger
	baseURL string
	client  *http.Client
}

func NewClient(logger *zap.SugaredLogger, baseURL string) *Client {
	return &Client{
		logs:    logger,
		baseURL: baseURL,
		client: &http.Client{
			Timeout: forecastTimeout,
		},
	}
}

// ForecastPrice builds the model's 20-feature vector for a property and
// returns the forecasted current price.
func (c *Client) ForecastPrice(ctx context.Context, property repository.Property) (float64, error) {
	payload, err := json.Marshal(forecastRequest{
		Features: featureVector(property, time.Now()),
	})
	if err != nil {
		return 0, fmt.Errorf("marshal forecast request: %w", err)
	}

	url := c.baseURL + "/api/forecast"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return 0, fmt.Errorf("build forecast request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("call forecast api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("forecast api returned status %d", resp.StatusCode)
	}

	var result forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return 0, fmt.Errorf("decode forecast response: %w", err)
	}

	if result.Forecast.CurrentPrice <= 0 {
		return 0, fmt.Errorf("forecast api returned non-positive price: %f", result.Forecast.CurrentPrice)
	}

	c.logs.Infow("price forecast received",
		"property_id", property.ID,
		"current_price", result.Forecast.CurrentPrice)

	return result.Forecast.CurrentPrice, nil
}

// featureVector produces the fixed 20-feature input the model expects:
// size and room counts, derived ratios, zip-code market statistics and
// temporal encodings.
func featureVector(p repository.Property, now time.Time) []float64 {
	zipMedian, zipMean, zipSqft := zipPriceStats(p.ZipCode)

	beds := float64(p.Bedrooms)
	baths := p.Bathrooms
	size := p.SquareFeet
	lot := p.LotSize

	month := float64(now.Month())
	features := []float64{
		size,
		beds,
		baths,
		lot,
		safeRatio(beds, baths),
		safeRatio(baths, beds),
		safeRatio(size, math.Max(beds, 1)),
		safeRatio(size, math.Max(baths, 1)),
		safeRatio(size, math.Max(lot*43560, 1)), // lot acres -> sqft
		safeRatio(beds+baths, math.Max(size/1000, 1)),
		zipMedian,
		zipMean,
		zipSqft,
		safeRatio(size, zipSqft),
		safeRatio(zipMean, zipMedian),
		p.Price,
		safeRatio(p.Price, math.Max(zipMedian, 1)),
		float64(now.Year()),
		math.Sin(2 * math.Pi * month / 12),
		math.Cos(2 * math.Pi * month / 12),
	}

	return features
}

func zipPriceStats(zip string) (median, mean, medianSqft float64) {
	if stats, ok := zipStats[zip]; ok {
		return stats[0], stats[1], stats[2]
	}
	return defaultZipMedianPrice, defaultZipMeanPrice, defaultZipMedianSqft
}

func safeRatio(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}
