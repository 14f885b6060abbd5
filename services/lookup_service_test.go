package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func offTestClient(t *testing.T, handler http.HandlerFunc) *OpenFoodFactsClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return &OpenFoodFactsClient{baseURL: srv.URL, client: srv.Client()}
}

func TestLookupBarcode_PerServing(t *testing.T) {
	client := offTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/product/123.json", r.URL.Path)
		w.Write([]byte(`{"status":1,"product":{
			"product_name":"Granola Bar","brands":"Acme","serving_size":"1 bar (40g)",
			"nutriments":{"energy-kcal_serving":180,"proteins_serving":4,
				"carbohydrates_serving":24,"fat_serving":7,"sugars_serving":10,
				"fiber_serving":3,"sodium_serving":0.12}}}`))
	})

	food, err := client.LookupBarcode(context.Background(), "123")
	require.NoError(t, err)
	assert.Equal(t, "Granola Bar", food.Name)
	assert.Equal(t, "Acme", food.Brand)
	assert.Equal(t, "123", food.Barcode)
	assert.Equal(t, "1 bar (40g)", food.ServingDescription)
	assert.Equal(t, 180.0, food.NutritionPerServing.Calories)
	assert.Equal(t, 120.0, food.NutritionPerServing.Sodium) // g converted to mg
}

func TestLookupBarcode_FallsBackTo100g(t *testing.T) {
	client := offTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":1,"product":{
			"product_name":"Rolled Oats",
			"nutriments":{"energy-kcal_100g":379,"proteins_100g":"13.2",
				"carbohydrates_100g":67.7,"fat_100g":6.5}}}`))
	})

	food, err := client.LookupBarcode(context.Background(), "456")
	require.NoError(t, err)
	assert.Equal(t, "100 g", food.ServingDescription)
	assert.Equal(t, 379.0, food.NutritionPerServing.Calories)
	assert.Equal(t, 13.2, food.NutritionPerServing.Protein) // numeric string coerced
}

func TestLookupBarcode_NotFound(t *testing.T) {
	client := offTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":0,"product":{}}`))
	})

	_, err := client.LookupBarcode(context.Background(), "000")
	assert.ErrorIs(t, err, ErrProductNotFound)
}
