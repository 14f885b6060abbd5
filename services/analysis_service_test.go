package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAnalysisContent(t *testing.T) {
	t.Run("plain json", func(t *testing.T) {
		got, err := parseAnalysisContent(`{"name":"Oatmeal","serving_size":"1 cup","calories":150,"protein":5,"carbs":27,"fat":3,"confidence":4}`)
		require.NoError(t, err)
		assert.Equal(t, "Oatmeal", got.Name)
		assert.Equal(t, "1 cup", got.ServingSize)
		assert.Equal(t, 150.0, got.Nutrition.Calories)
		assert.Equal(t, 4, got.Confidence)
	})

	t.Run("fenced json", func(t *testing.T) {
		got, err := parseAnalysisContent("```json\n{\"name\":\"Apple\",\"serving_size\":\"1 medium\",\"calories\":95,\"confidence\":5}\n```")
		require.NoError(t, err)
		assert.Equal(t, "Apple", got.Name)
		assert.Equal(t, 95.0, got.Nutrition.Calories)
	})

	t.Run("model rejected the input", func(t *testing.T) {
		_, err := parseAnalysisContent(`{"error":"unrecognized"}`)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := parseAnalysisContent("sorry, I can't do that")
		assert.Error(t, err)
	})
}
