package services

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/abhinavsrinivasan/diabetes-me/models"
	"github.com/abhinavsrinivasan/diabetes-me/utils"
)

func TestResolveNutrients(t *testing.T) {
	nutrients := []Nutrient{
		{Name: "Net Carbohydrates", Amount: 21.9},
		{Name: "Sugar", Amount: 4.2},
		{Name: "Calories", Amount: 180.7},
		{Name: "Protein", Amount: 12},
	}

	carbs, sugar, calories, err := ResolveNutrients(nutrients)
	if err != nil {
		t.Fatalf("ResolveNutrients returned error: %v", err)
	}
	if carbs != 21 || sugar != 4 || calories != 180 {
		t.Errorf("got carbs=%d sugar=%d calories=%d, want 21/4/180 (truncated)", carbs, sugar, calories)
	}
}

func TestResolveNutrients_CaloriesRequiresExactName(t *testing.T) {
	nutrients := []Nutrient{
		{Name: "Carbohydrates", Amount: 10},
		{Name: "Sugar", Amount: 2},
		{Name: "Caloric Ratio", Amount: 33},
	}

	_, _, _, err := ResolveNutrients(nutrients)
	if !errors.Is(err, ErrMissingNutrient) {
		t.Fatalf("expected ErrMissingNutrient, got %v", err)
	}
	if !strings.Contains(err.Error(), "calories") {
		t.Errorf("error should name the missing nutrient: %v", err)
	}
}

func TestExtractRecord_APIRecipe(t *testing.T) {
	api := &APIRecipe{
		ID:    4512,
		Title: "Lentil Soup",
		Image: "https://img.example/lentil.jpg",
	}
	api.Nutrition.Nutrients = []Nutrient{
		{Name: "Carbohydrates", Amount: 30.4},
		{Name: "Sugar", Amount: 3.9},
		{Name: "Calories", Amount: 240},
	}
	api.ExtendedIngredients = []APIIngredient{
		{NameClean: "red lentils"},
		{Name: "carrot"},
		{Original: "2 cups vegetable broth"},
	}
	api.AnalyzedInstructions = []APIInstruction{
		{Steps: []APIStep{{Step: "Simmer lentils."}, {Step: "Add carrots."}}},
	}
	api.DishTypes = []string{"lunch main dish"}

	draft, err := ExtractRecord(SourceRecord{Format: FormatAPI, API: api})
	if err != nil {
		t.Fatalf("ExtractRecord returned error: %v", err)
	}

	wantIngredients := []string{"red lentils", "carrot", "2 cups vegetable broth"}
	if !reflect.DeepEqual(draft.Ingredients, wantIngredients) {
		t.Errorf("ingredients = %v, want %v", draft.Ingredients, wantIngredients)
	}
	if draft.Carbs != 30 || draft.Sugar != 3 || draft.Calories != 240 {
		t.Errorf("nutrients = %d/%d/%d, want 30/3/240", draft.Carbs, draft.Sugar, draft.Calories)
	}
	if len(draft.Instructions) != 2 {
		t.Errorf("instructions = %v, want 2 steps", draft.Instructions)
	}

	recipe := draft.Canonical()
	if recipe.Category != models.CategoryLunch {
		t.Errorf("category = %q, want %q", recipe.Category, models.CategoryLunch)
	}
	if recipe.Cuisine != models.DefaultCuisine {
		t.Errorf("cuisine = %q, want fallback %q", recipe.Cuisine, models.DefaultCuisine)
	}
	// "lentils" is a low-GI marker.
	if recipe.GlycemicIndex != 35 {
		t.Errorf("glycemic index = %d, want 35", recipe.GlycemicIndex)
	}
}

func TestExtractRecord_Row(t *testing.T) {
	row := map[string]string{
		"title":        "Cauliflower Rice Bowl",
		"image":        "https://img.example/bowl.jpg",
		"carbs":        "8.6",
		"sugar":        "3.2",
		"calories":     "140.9",
		"category":     "Lunch",
		"cuisine":      "Asian",
		"ingredients":  `["Cauliflower","Bell peppers"]`,
		"instructions": `["Pulse cauliflower.","Cook until tender."]`,
	}

	draft, err := ExtractRecord(SourceRecord{Format: FormatRow, Row: row, RowEncoding: utils.ListLiteral})
	if err != nil {
		t.Fatalf("ExtractRecord returned error: %v", err)
	}
	if draft.Carbs != 8 || draft.Sugar != 3 || draft.Calories != 140 {
		t.Errorf("nutrients = %d/%d/%d, want truncated 8/3/140", draft.Carbs, draft.Sugar, draft.Calories)
	}

	recipe := draft.Canonical()
	if recipe.Category != models.CategoryLunch || recipe.Cuisine != "Asian" {
		t.Errorf("category/cuisine = %q/%q, want Lunch/Asian", recipe.Category, recipe.Cuisine)
	}
}

func TestExtractRecord_RowMissingNutrient(t *testing.T) {
	row := map[string]string{
		"title":       "Mystery Dish",
		"carbs":       "10",
		"sugar":       "2",
		"ingredients": "a, b",
	}

	_, err := ExtractRecord(SourceRecord{Format: FormatRow, Row: row, RowEncoding: utils.ListComma})
	if !errors.Is(err, ErrMissingNutrient) {
		t.Fatalf("expected ErrMissingNutrient, got %v", err)
	}
}

func TestExtractRecord_RowWithoutIngredients(t *testing.T) {
	row := map[string]string{
		"title":    "Empty Plate",
		"carbs":    "1",
		"sugar":    "1",
		"calories": "1",
	}

	_, err := ExtractRecord(SourceRecord{Format: FormatRow, Row: row, RowEncoding: utils.ListComma})
	if !errors.Is(err, ErrSourceFormat) {
		t.Fatalf("expected ErrSourceFormat for missing ingredients, got %v", err)
	}
}

func TestClassifyCategory(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"breakfast", models.CategoryBreakfast},
		{"morning breakfast ideas", models.CategoryBreakfast},
		{"Lunch", models.CategoryLunch},
		{"dinner party", models.CategoryDinner},
		{"frozen dessert", models.CategoryDessert},
		{"afternoon snack", models.CategorySnacks},
		{"side dish", models.CategoryMainCourse},
		{"", models.CategoryMainCourse},
	}

	for _, tt := range tests {
		if got := ClassifyCategory(tt.label); got != tt.want {
			t.Errorf("ClassifyCategory(%q) = %q, want %q", tt.label, got, tt.want)
		}
	}
}

func TestCanonical_PreservesSourceGlycemicIndex(t *testing.T) {
	gi := 28
	draft, err := ExtractRecord(SourceRecord{Format: FormatSeed, Seed: &SeedRecipe{
		Title:         "Roasted Chickpea Snack",
		Carbs:         12,
		Sugar:         1,
		Category:      "Snacks",
		GlycemicIndex: &gi,
		Ingredients:   []string{"Canned chickpeas"},
	}})
	if err != nil {
		t.Fatalf("ExtractRecord returned error: %v", err)
	}

	recipe := draft.Canonical()
	if recipe.GlycemicIndex != 28 {
		t.Errorf("glycemic index = %d, want source-provided 28", recipe.GlycemicIndex)
	}
	if recipe.Approved {
		t.Error("freshly ingested recipe must not be approved")
	}
	if recipe.QualityScore != 0 {
		t.Errorf("quality score = %d, want 0", recipe.QualityScore)
	}
}
