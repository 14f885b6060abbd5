package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"logwell-backend/models"
)

var ErrProductNotFound = errors.New("product not found")

// ProductLookup is the barcode/product-lookup port. The result is a candidate
// Food the caller may log or save; it carries no id until saved.
type ProductLookup interface {
	LookupBarcode(ctx context.Context, barcode string) (*models.Food, error)
}

// OpenFoodFactsClient resolves barcodes against the Open Food Facts product
// API.
type OpenFoodFactsClient struct {
	baseURL string
	client  *http.Client
}

func NewOpenFoodFactsClient() *OpenFoodFactsClient {
	return &OpenFoodFactsClient{
		baseURL: "https://world.openfoodfacts.org",
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

type offResponse struct {
	Status  int `json:"status"`
	Product struct {
		ProductName string                 `json:"product_name"`
		Brands      string                 `json:"brands"`
		ServingSize string                 `json:"serving_size"`
		Nutriments  map[string]interface{} `json:"nutriments"`
	} `json:"product"`
}

func (c *OpenFoodFactsClient) LookupBarcode(ctx context.Context, barcode string) (*models.Food, error) {
	url := fmt.Sprintf("%s/api/v2/product/%s.json", c.baseURL, barcode)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("product lookup: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrProductNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("product lookup: status %d", resp.StatusCode)
	}

	var off offResponse
	if err := json.NewDecoder(resp.Body).Decode(&off); err != nil {
		return nil, err
	}
	if off.Status != 1 || off.Product.ProductName == "" {
		return nil, ErrProductNotFound
	}

	// Prefer declared per-serving values; fall back to per-100g.
	suffix := "_serving"
	serving := off.Product.ServingSize
	if serving == "" || !hasNutriment(off.Product.Nutriments, "energy-kcal"+suffix) {
		suffix = "_100g"
		serving = "100 g"
	}

	food := &models.Food{
		Name:               off.Product.ProductName,
		Brand:              off.Product.Brands,
		Barcode:            barcode,
		ServingDescription: serving,
		NutritionPerServing: models.NutritionInfo{
			Calories: nutriment(off.Product.Nutriments, "energy-kcal"+suffix),
			Protein:  nutriment(off.Product.Nutriments, "proteins"+suffix),
			Carbs:    nutriment(off.Product.Nutriments, "carbohydrates"+suffix),
			Fat:      nutriment(off.Product.Nutriments, "fat"+suffix),
			Fiber:    nutriment(off.Product.Nutriments, "fiber"+suffix),
			Sugar:    nutriment(off.Product.Nutriments, "sugars"+suffix),
			Sodium:   nutriment(off.Product.Nutriments, "sodium"+suffix) * 1000, // g to mg
		},
	}
	return food, nil
}

func hasNutriment(m map[string]interface{}, key string) bool {
	_, ok := extractFloat(m, key)
	return ok
}

func nutriment(m map[string]interface{}, key string) float64 {
	v, ok := extractFloat(m, key)
	if !ok || v < 0 {
		return 0
	}
	return v
}

// extractFloat coerces a nutriments value: the feed mixes numbers and numeric
// strings.
func extractFloat(m map[string]interface{}, key string) (float64, bool) {
	raw, ok := m[key]
	if !ok {
		return 0, false
	}
	switch v := raw.(type) {
	case float64:
		return v, true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}
