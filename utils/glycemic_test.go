package utils

import "testing"

func TestEstimateGlycemicIndex(t *testing.T) {
	tests := []struct {
		name        string
		carbs       int
		sugar       int
		ingredients []string
		want        int
	}{
		{"high sugar ratio", 20, 16, nil, 65},
		{"medium sugar ratio", 20, 10, nil, 50},
		{"low sugar ratio", 20, 4, nil, 40},
		{"no carbs defaults", 0, 0, nil, 45},
		{"high marker wins", 10, 1, []string{"White Rice", "scallions"}, 70},
		{"low marker wins", 10, 1, []string{"red lentils"}, 35},
		{"marker beats ratio", 20, 16, []string{"quinoa"}, 35},
		{"high marker beats low marker", 5, 0, []string{"potato", "beans"}, 70},
		{"marker matches inside phrases", 30, 25, []string{"day-old white bread cubes"}, 70},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateGlycemicIndex(tt.carbs, tt.sugar, tt.ingredients)
			if got != tt.want {
				t.Errorf("EstimateGlycemicIndex(%d, %d, %v) = %d, want %d",
					tt.carbs, tt.sugar, tt.ingredients, got, tt.want)
			}
		})
	}
}
