package services

import (
	"testing"
	"time"

	"github.com/abhinavsrinivasan/diabetes-me/models"
)

func intPtr(v int) *int { return &v }

func yesterdayISO() string {
	return time.Now().AddDate(0, 0, -1).Format("2006-01-02")
}

func staleProfile() *models.Profile {
	return &models.Profile{
		Goals:       models.DefaultGoals,
		Progress:    models.NutritionTargets{Carbs: 50, Sugar: 12, Exercise: 20},
		LastUpdated: yesterdayISO(),
	}
}

func TestResetIfStale_ZeroesYesterdaysProgress(t *testing.T) {
	p := staleProfile()

	ResetIfStale(p)

	if p.Progress != (models.NutritionTargets{}) {
		t.Errorf("progress = %+v, want zeroed", p.Progress)
	}
	if p.LastUpdated != todayISO() {
		t.Errorf("lastUpdated = %q, want today", p.LastUpdated)
	}
}

func TestResetIfStale_LeavesTodayAlone(t *testing.T) {
	p := &models.Profile{
		Progress:    models.NutritionTargets{Carbs: 30},
		LastUpdated: todayISO(),
	}

	ResetIfStale(p)

	if p.Progress.Carbs != 30 {
		t.Errorf("progress.carbs = %d, want untouched 30", p.Progress.Carbs)
	}
}

func TestAccumulate_ResetsBeforeApplyingDelta(t *testing.T) {
	p := staleProfile()

	Accumulate(p, ProgressDelta{Carbs: intPtr(10)})

	// Yesterday's 50 must be gone; today starts at the new delta.
	if p.Progress.Carbs != 10 {
		t.Errorf("progress.carbs = %d, want 10 (not 60)", p.Progress.Carbs)
	}
	if p.Progress.Sugar != 0 || p.Progress.Exercise != 0 {
		t.Errorf("untouched counters = %+v, want zero after rollover", p.Progress)
	}
}

func TestAccumulate_AddsToSameDayCounters(t *testing.T) {
	p := &models.Profile{
		Progress:    models.NutritionTargets{Carbs: 5, Sugar: 2},
		LastUpdated: todayISO(),
	}

	Accumulate(p, ProgressDelta{Carbs: intPtr(10), Exercise: intPtr(15)})

	if p.Progress.Carbs != 15 || p.Progress.Sugar != 2 || p.Progress.Exercise != 15 {
		t.Errorf("progress = %+v, want carbs=15 sugar=2 exercise=15", p.Progress)
	}
}

func TestResetProgress_AlwaysZeroesAndStampsToday(t *testing.T) {
	for _, p := range []*models.Profile{
		staleProfile(),
		{Progress: models.NutritionTargets{Carbs: 99}, LastUpdated: todayISO()},
	} {
		ResetProgress(p)
		if p.Progress != (models.NutritionTargets{}) {
			t.Errorf("progress = %+v, want zeroed", p.Progress)
		}
		if p.LastUpdated != todayISO() {
			t.Errorf("lastUpdated = %q, want today", p.LastUpdated)
		}
	}
}

func TestSetGoals_DoesNotTouchProgress(t *testing.T) {
	p := &models.Profile{
		Goals:       models.DefaultGoals,
		Progress:    models.NutritionTargets{Carbs: 40},
		LastUpdated: yesterdayISO(),
	}

	goals := models.NutritionTargets{Carbs: 150, Sugar: 30, Exercise: 45}
	SetGoals(p, goals)

	if p.Goals != goals {
		t.Errorf("goals = %+v, want %+v", p.Goals, goals)
	}
	if p.Progress.Carbs != 40 {
		t.Errorf("progress.carbs = %d, goal updates must not touch progress", p.Progress.Carbs)
	}
	if p.LastUpdated != yesterdayISO() {
		t.Errorf("lastUpdated = %q, goal updates must not stamp the date", p.LastUpdated)
	}
}
