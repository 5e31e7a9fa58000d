package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lib/pq"

	"github.com/abhinavsrinivasan/diabetes-me/models"
	"github.com/abhinavsrinivasan/diabetes-me/utils"
)

// SourceFormat tags the upstream shape a record arrived in. One extractor
// handles all of them instead of per-source import code.
type SourceFormat string

const (
	FormatAPI  SourceFormat = "api"  // catalog API JSON
	FormatRow  SourceFormat = "row"  // delimited-file row
	FormatSeed SourceFormat = "seed" // pre-shaped in-memory record
)

// SourceRecord is one raw upstream record plus its format tag. Exactly one
// of API, Row or Seed is set, per Format.
type SourceRecord struct {
	Format      SourceFormat
	API         *APIRecipe
	Row         map[string]string
	RowEncoding utils.ListEncoding // list encoding for Row's list fields
	Seed        *SeedRecipe
}

// SeedRecipe is a pre-shaped record from curated seed data. GlycemicIndex
// stays optional so seed entries without one go through the estimator.
type SeedRecipe struct {
	Title         string
	Image         string
	Carbs         int
	Sugar         int
	Calories      int
	Category      string
	Cuisine       string
	GlycemicIndex *int
	Ingredients   []string
	Instructions  []string
}

// RecipeDraft is the normalized intermediate form between extraction and
// the canonical Recipe.
type RecipeDraft struct {
	Title         string
	Image         string
	Carbs         int
	Sugar         int
	Calories      int
	Category      string // raw label, normalized in Canonical
	Cuisine       string
	GlycemicIndex *int
	Ingredients   []string
	Instructions  []string
	DishTypes     []string
	Cuisines      []string
}

// ExtractRecord parses one upstream record into a RecipeDraft. Failures are
// per-record: the caller skips the record and moves on.
func ExtractRecord(rec SourceRecord) (*RecipeDraft, error) {
	switch rec.Format {
	case FormatAPI:
		return extractAPI(rec.API)
	case FormatRow:
		return extractRow(rec.Row, rec.RowEncoding)
	case FormatSeed:
		return extractSeed(rec.Seed)
	}
	return nil, fmt.Errorf("%w: unknown source format %q", ErrSourceFormat, rec.Format)
}

func extractAPI(api *APIRecipe) (*RecipeDraft, error) {
	if api == nil || api.Title == "" {
		return nil, fmt.Errorf("%w: missing title", ErrSourceFormat)
	}

	carbs, sugar, calories, err := ResolveNutrients(api.Nutrition.Nutrients)
	if err != nil {
		return nil, err
	}

	ingredients := make([]string, 0, len(api.ExtendedIngredients))
	for _, ing := range api.ExtendedIngredients {
		name := ing.NameClean
		if name == "" {
			name = ing.Name
		}
		if name == "" {
			name = ing.Original
		}
		if name != "" {
			ingredients = append(ingredients, name)
		}
	}

	var instructions []string
	if len(api.AnalyzedInstructions) > 0 {
		for _, step := range api.AnalyzedInstructions[0].Steps {
			if step.Step != "" {
				instructions = append(instructions, step.Step)
			}
		}
	}

	return &RecipeDraft{
		Title:        api.Title,
		Image:        api.Image,
		Carbs:        carbs,
		Sugar:        sugar,
		Calories:     calories,
		Ingredients:  ingredients,
		Instructions: instructions,
		DishTypes:    api.DishTypes,
		Cuisines:     api.Cuisines,
	}, nil
}

func extractRow(row map[string]string, enc utils.ListEncoding) (*RecipeDraft, error) {
	title := strings.TrimSpace(row["title"])
	if title == "" {
		return nil, fmt.Errorf("%w: missing title", ErrSourceFormat)
	}

	carbs, err := intField(row, "carbs")
	if err != nil {
		return nil, err
	}
	sugar, err := intField(row, "sugar")
	if err != nil {
		return nil, err
	}
	calories, err := intField(row, "calories")
	if err != nil {
		return nil, err
	}

	ingredients := utils.ParseListField(row["ingredients"], enc)
	if len(ingredients) == 0 {
		return nil, fmt.Errorf("%w: no resolvable ingredients", ErrSourceFormat)
	}
	instructions := utils.ParseListField(row["instructions"], enc)

	return &RecipeDraft{
		Title:        title,
		Image:        row["image"],
		Carbs:        carbs,
		Sugar:        sugar,
		Calories:     calories,
		Category:     row["category"],
		Cuisine:      row["cuisine"],
		Ingredients:  ingredients,
		Instructions: instructions,
	}, nil
}

func extractSeed(seed *SeedRecipe) (*RecipeDraft, error) {
	if seed == nil || seed.Title == "" {
		return nil, fmt.Errorf("%w: missing title", ErrSourceFormat)
	}
	return &RecipeDraft{
		Title:         seed.Title,
		Image:         seed.Image,
		Carbs:         seed.Carbs,
		Sugar:         seed.Sugar,
		Calories:      seed.Calories,
		Category:      seed.Category,
		Cuisine:       seed.Cuisine,
		GlycemicIndex: seed.GlycemicIndex,
		Ingredients:   seed.Ingredients,
		Instructions:  seed.Instructions,
	}, nil
}

// intField reads a numeric column, truncating fractional grams/kcal.
func intField(row map[string]string, key string) (int, error) {
	raw, ok := row[key]
	if !ok || strings.TrimSpace(raw) == "" {
		return 0, fmt.Errorf("%w: %s", ErrMissingNutrient, key)
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrSourceFormat, key, raw)
	}
	return int(f), nil
}

// ResolveNutrients finds carbohydrate, sugar and calorie amounts in a named
// nutrient list. Carbohydrate and sugar match by case-insensitive substring
// ("Net Carbohydrates" counts); calories requires an exact name so fields
// like "caloric ratio" cannot match. Amounts truncate to integers. All
// three are required: a record with an unresolved nutrient is skipped, not
// zero-filled, because zeroed nutrients corrupt downstream filtering.
func ResolveNutrients(nutrients []Nutrient) (carbs, sugar, calories int, err error) {
	var haveCarbs, haveSugar, haveCalories bool
	for _, n := range nutrients {
		name := strings.ToLower(n.Name)
		switch {
		case !haveCarbs && strings.Contains(name, "carbohydrate"):
			carbs = int(n.Amount)
			haveCarbs = true
		case !haveSugar && strings.Contains(name, "sugar"):
			sugar = int(n.Amount)
			haveSugar = true
		case !haveCalories && name == "calories":
			calories = int(n.Amount)
			haveCalories = true
		}
	}

	var missing []string
	if !haveCarbs {
		missing = append(missing, "carbs")
	}
	if !haveSugar {
		missing = append(missing, "sugar")
	}
	if !haveCalories {
		missing = append(missing, "calories")
	}
	if len(missing) > 0 {
		return 0, 0, 0, fmt.Errorf("%w: %s", ErrMissingNutrient, strings.Join(missing, ", "))
	}
	return carbs, sugar, calories, nil
}

// Ordered category rules; first match wins.
var categoryRules = []struct {
	keyword  string
	category string
}{
	{"breakfast", models.CategoryBreakfast},
	{"lunch", models.CategoryLunch},
	{"dinner", models.CategoryDinner},
	{"dessert", models.CategoryDessert},
	{"snack", models.CategorySnacks},
}

// ClassifyCategory maps an upstream dish-type label to a canonical
// category by case-insensitive substring containment.
func ClassifyCategory(label string) string {
	lowered := strings.ToLower(label)
	for _, rule := range categoryRules {
		if strings.Contains(lowered, rule.keyword) {
			return rule.category
		}
	}
	return models.CategoryMainCourse
}

// Canonical finalizes a draft into the destination-ready Recipe: category
// and cuisine fall back to their classifiers, and a missing glycemic index
// is estimated from the draft's nutrients and ingredients.
func (d *RecipeDraft) Canonical() models.Recipe {
	category := d.Category
	if !models.ValidCategory(category) {
		label := category
		if label == "" && len(d.DishTypes) > 0 {
			label = d.DishTypes[0]
		}
		category = ClassifyCategory(label)
	}

	cuisine := d.Cuisine
	if cuisine == "" && len(d.Cuisines) > 0 {
		cuisine = d.Cuisines[0]
	}
	if cuisine == "" {
		cuisine = models.DefaultCuisine
	}

	gi := 0
	if d.GlycemicIndex != nil {
		gi = *d.GlycemicIndex
	} else {
		gi = utils.EstimateGlycemicIndex(d.Carbs, d.Sugar, d.Ingredients)
	}

	return models.Recipe{
		Title:         d.Title,
		Image:         d.Image,
		Carbs:         d.Carbs,
		Sugar:         d.Sugar,
		Calories:      d.Calories,
		Category:      category,
		Cuisine:       cuisine,
		GlycemicIndex: gi,
		Ingredients:   pq.StringArray(d.Ingredients),
		Instructions:  pq.StringArray(d.Instructions),
	}
}
