package models

import (
	"gorm.io/gorm"
)

// NutritionTargets holds the three tracked daily values, used both as
// goal targets and as accumulated progress.
type NutritionTargets struct {
	Carbs    int `json:"carbs"`
	Sugar    int `json:"sugar"`
	Exercise int `json:"exercise"`
}

// Default goals assigned at registration.
var DefaultGoals = NutritionTargets{Carbs: 200, Sugar: 50, Exercise: 30}

// Profile is the per-user record: identity details plus the daily
// goal/progress ledger. Progress only ever reflects the calendar day
// stored in LastUpdated; prior days are not retained.
type Profile struct {
	gorm.Model     `json:"-"`
	UserID         uint             `gorm:"uniqueIndex;not null" json:"-"`
	Name           string           `json:"name"`
	Bio            string           `json:"bio"`
	ProfilePicture string           `json:"profile_picture"`
	Goals          NutritionTargets `gorm:"embedded;embeddedPrefix:goal_" json:"goals"`
	Progress       NutritionTargets `gorm:"embedded;embeddedPrefix:progress_" json:"progress"`
	LastUpdated    string           `json:"lastUpdated"` // ISO date, YYYY-MM-DD
}
