package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const spoonacularBaseURL = "https://api.spoonacular.com"

type SpoonacularService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewSpoonacularService initializes the catalog client with credentials and
// an HTTP client.
func NewSpoonacularService(apiKey string) *SpoonacularService {
	return &SpoonacularService{
		apiKey:  apiKey,
		baseURL: spoonacularBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Nutrient is one named amount from the catalog's nutrition block.
type Nutrient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// APIRecipe is the raw catalog record shape, shared with the extractor.
type APIRecipe struct {
	ID                   int              `json:"id"`
	Title                string           `json:"title"`
	Image                string           `json:"image"`
	Nutrition            APINutrition     `json:"nutrition"`
	ExtendedIngredients  []APIIngredient  `json:"extendedIngredients"`
	AnalyzedInstructions []APIInstruction `json:"analyzedInstructions"`
	DishTypes            []string         `json:"dishTypes"`
	Cuisines             []string         `json:"cuisines"`
}

type APINutrition struct {
	Nutrients []Nutrient `json:"nutrients"`
}

type APIIngredient struct {
	NameClean string `json:"nameClean"`
	Name      string `json:"name"`
	Original  string `json:"original"`
}

type APIInstruction struct {
	Steps []APIStep `json:"steps"`
}

type APIStep struct {
	Step string `json:"step"`
}

// SearchFilter narrows a catalog search page.
type SearchFilter struct {
	Diet     string
	Cuisine  string
	MaxCarbs int
	MaxSugar int
	Number   int
	Offset   int
}

type searchResponse struct {
	Results []APIRecipe `json:"results"`
}

// SearchRecipes calls the catalog's complexSearch endpoint and returns one
// page of summary records.
func (s *SpoonacularService) SearchRecipes(ctx context.Context, f SearchFilter) ([]APIRecipe, error) {
	params := url.Values{}
	params.Set("apiKey", s.apiKey)
	params.Set("addRecipeInformation", "true")
	params.Set("addRecipeNutrition", "true")
	if f.Diet != "" {
		params.Set("diet", f.Diet)
	}
	if f.Cuisine != "" {
		params.Set("cuisine", f.Cuisine)
	}
	if f.MaxCarbs > 0 {
		params.Set("maxCarbs", strconv.Itoa(f.MaxCarbs))
	}
	if f.MaxSugar > 0 {
		params.Set("maxSugar", strconv.Itoa(f.MaxSugar))
	}
	if f.Number > 0 {
		params.Set("number", strconv.Itoa(f.Number))
	}
	if f.Offset > 0 {
		params.Set("offset", strconv.Itoa(f.Offset))
	}

	u := fmt.Sprintf("%s/recipes/complexSearch?%s", s.baseURL, params.Encode())

	body, err := s.get(ctx, u)
	if err != nil {
		return nil, err
	}

	var sr searchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("failed to parse search JSON: %w", err)
	}
	return sr.Results, nil
}

// RecipeInfo fetches the full record (nutrition, ingredients, instructions)
// for one catalog id.
func (s *SpoonacularService) RecipeInfo(ctx context.Context, id int) (*APIRecipe, error) {
	u := fmt.Sprintf("%s/recipes/%d/information?apiKey=%s&includeNutrition=true",
		s.baseURL, id, url.QueryEscape(s.apiKey))

	body, err := s.get(ctx, u)
	if err != nil {
		return nil, err
	}

	var info APIRecipe
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, fmt.Errorf("failed to parse recipe info JSON: %w", err)
	}
	return &info, nil
}

func (s *SpoonacularService) get(ctx context.Context, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call recipe catalog: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog response: %w", err)
	}

	// 402 means the free-tier quota is spent; 429 is plain rate limiting.
	// Both end the batch.
	if resp.StatusCode == http.StatusPaymentRequired || resp.StatusCode == http.StatusTooManyRequests {
		return nil, fmt.Errorf("%w: catalog returned %d", ErrQuotaExceeded, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog API error %d: %s", resp.StatusCode, string(body))
	}
	return body, nil
}
