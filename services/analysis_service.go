package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"logwell-backend/models"
)

// FoodAnalysis is the candidate food an analyzer produces from a free-text
// description. The stores only consume Nutrition and ServingSize; Confidence
// passes through for display.
type FoodAnalysis struct {
	Name        string               `json:"name"`
	Brand       string               `json:"brand,omitempty"`
	ServingSize string               `json:"serving_size"`
	Nutrition   models.NutritionInfo `json:"nutrition"`
	Confidence  int                  `json:"confidence"`
	Reasoning   string               `json:"reasoning,omitempty"`
}

// FoodAnalyzer is the AI food-analysis port.
type FoodAnalyzer interface {
	AnalyzeFood(ctx context.Context, description string) (*FoodAnalysis, error)
}

const analyzeSystemPrompt = `You are a nutrition assistant. Parse the food description and return a JSON object with:
- "name" (string, cleaned up title case)
- "brand" (string, empty if unbranded)
- "serving_size" (string, e.g. "1 cup (240ml)")
- "calories" (number, per serving)
- "protein" (number, grams per serving)
- "carbs" (number, grams per serving)
- "fat" (number, grams per serving)
- "fiber" (number, grams per serving, 0 if unknown)
- "sugar" (number, grams per serving, 0 if unknown)
- "sodium" (number, milligrams per serving, 0 if unknown)
- "confidence" (integer 1-5: 5=exact known nutritional data, 3=reasonable estimate, 1=very uncertain)

Always provide your best estimate. Only return {"error": "unrecognized"} if the input is not food at all.
Return only valid JSON, no explanation.`

// OpenAIAnalyzer calls the chat completions API and parses the JSON the model
// returns.
type OpenAIAnalyzer struct {
	apiKey string
	model  string
	client *http.Client
}

func NewOpenAIAnalyzer(apiKey, model string) *OpenAIAnalyzer {
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &OpenAIAnalyzer{
		apiKey: apiKey,
		model:  model,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (a *OpenAIAnalyzer) AnalyzeFood(ctx context.Context, description string) (*FoodAnalysis, error) {
	if strings.TrimSpace(description) == "" {
		return nil, fmt.Errorf("empty description")
	}

	body, err := json.Marshal(chatRequest{
		Model: a.model,
		Messages: []chatMessage{
			{Role: "system", Content: analyzeSystemPrompt},
			{Role: "user", Content: description},
		},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		"https://api.openai.com/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+a.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("analysis request: %w", err)
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("analysis request: status %d", resp.StatusCode)
	}

	var cr chatResponse
	if err := json.Unmarshal(raw, &cr); err != nil {
		return nil, err
	}
	if len(cr.Choices) == 0 {
		return nil, fmt.Errorf("analysis response had no choices")
	}
	return parseAnalysisContent(cr.Choices[0].Message.Content)
}

// parseAnalysisContent decodes the model's JSON, tolerating markdown code
// fences around it.
func parseAnalysisContent(content string) (*FoodAnalysis, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	var parsed struct {
		Error       string  `json:"error"`
		Name        string  `json:"name"`
		Brand       string  `json:"brand"`
		ServingSize string  `json:"serving_size"`
		Calories    float64 `json:"calories"`
		Protein     float64 `json:"protein"`
		Carbs       float64 `json:"carbs"`
		Fat         float64 `json:"fat"`
		Fiber       float64 `json:"fiber"`
		Sugar       float64 `json:"sugar"`
		Sodium      float64 `json:"sodium"`
		Confidence  int     `json:"confidence"`
	}
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return nil, fmt.Errorf("unparseable analysis response: %w", err)
	}
	if parsed.Error != "" {
		return nil, fmt.Errorf("analysis rejected input: %s", parsed.Error)
	}
	return &FoodAnalysis{
		Name:        parsed.Name,
		Brand:       parsed.Brand,
		ServingSize: parsed.ServingSize,
		Nutrition: models.NutritionInfo{
			Calories: parsed.Calories,
			Protein:  parsed.Protein,
			Carbs:    parsed.Carbs,
			Fat:      parsed.Fat,
			Fiber:    parsed.Fiber,
			Sugar:    parsed.Sugar,
			Sodium:   parsed.Sodium,
		},
		Confidence: parsed.Confidence,
	}, nil
}
