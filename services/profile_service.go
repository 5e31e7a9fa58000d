package services

import (
	"sync"
	"time"

	"github.com/abhinavsrinivasan/diabetes-me/config"
	"github.com/abhinavsrinivasan/diabetes-me/models"
)

func todayISO() string {
	return time.Now().Format("2006-01-02")
}

// ProgressDelta carries one progress-log event. Missing fields are zero
// deltas; non-numeric input never reaches this layer (the request binding
// rejects it).
type ProgressDelta struct {
	Carbs    *int `json:"carbs"`
	Sugar    *int `json:"sugar"`
	Exercise *int `json:"exercise"`
}

// ResetIfStale zeroes progress when the profile was last touched on an
// earlier calendar day. It must run before any read or write of progress;
// the prior day's counters are gone for good once it fires.
func ResetIfStale(p *models.Profile) {
	if p.LastUpdated != todayISO() {
		p.Progress = models.NutritionTargets{}
		p.LastUpdated = todayISO()
	}
}

// Accumulate applies one progress-log event, resetting first if the
// profile is stale.
func Accumulate(p *models.Profile, d ProgressDelta) {
	ResetIfStale(p)
	if d.Carbs != nil {
		p.Progress.Carbs += *d.Carbs
	}
	if d.Sugar != nil {
		p.Progress.Sugar += *d.Sugar
	}
	if d.Exercise != nil {
		p.Progress.Exercise += *d.Exercise
	}
}

// ResetProgress zeroes the counters unconditionally and stamps today.
func ResetProgress(p *models.Profile) {
	p.Progress = models.NutritionTargets{}
	p.LastUpdated = todayISO()
}

// SetGoals replaces the goal set wholesale. Progress and LastUpdated are
// untouched.
func SetGoals(p *models.Profile, goals models.NutritionTargets) {
	p.Goals = goals
}

// Per-user locks so two concurrent progress-log events both land.
// Cross-user operations never contend.
var profileLocks sync.Map // uint -> *sync.Mutex

func lockProfile(userID uint) *sync.Mutex {
	mu, _ := profileLocks.LoadOrStore(userID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// GetProfile loads a profile, applying the daily reset before it is seen.
func GetProfile(userID uint) (*models.Profile, error) {
	mu := lockProfile(userID)
	mu.Lock()
	defer mu.Unlock()

	return loadAndSave(userID, func(p *models.Profile) {
		ResetIfStale(p)
	})
}

// LogProgress applies a progress-log event and persists the result.
func LogProgress(userID uint, d ProgressDelta) (*models.Profile, error) {
	mu := lockProfile(userID)
	mu.Lock()
	defer mu.Unlock()

	return loadAndSave(userID, func(p *models.Profile) {
		Accumulate(p, d)
	})
}

// ResetUserProgress services an explicit reset request.
func ResetUserProgress(userID uint) (*models.Profile, error) {
	mu := lockProfile(userID)
	mu.Lock()
	defer mu.Unlock()

	return loadAndSave(userID, func(p *models.Profile) {
		ResetProgress(p)
	})
}

// UpdateGoals replaces the user's goal set.
func UpdateGoals(userID uint, goals models.NutritionTargets) (*models.Profile, error) {
	mu := lockProfile(userID)
	mu.Lock()
	defer mu.Unlock()

	return loadAndSave(userID, func(p *models.Profile) {
		SetGoals(p, goals)
	})
}

// UpdateProfileInfo updates name/bio when provided.
func UpdateProfileInfo(userID uint, name, bio *string) (*models.Profile, error) {
	mu := lockProfile(userID)
	mu.Lock()
	defer mu.Unlock()

	return loadAndSave(userID, func(p *models.Profile) {
		ResetIfStale(p)
		if name != nil {
			p.Name = *name
		}
		if bio != nil {
			p.Bio = *bio
		}
	})
}

// SetProfilePicture stores the uploaded picture's public URL.
func SetProfilePicture(userID uint, url string) (*models.Profile, error) {
	mu := lockProfile(userID)
	mu.Lock()
	defer mu.Unlock()

	return loadAndSave(userID, func(p *models.Profile) {
		p.ProfilePicture = url
	})
}

func loadAndSave(userID uint, mutate func(*models.Profile)) (*models.Profile, error) {
	var profile models.Profile
	if err := config.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	mutate(&profile)
	if err := config.DB.Save(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}
