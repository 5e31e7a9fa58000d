package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/abhinavsrinivasan/diabetes-me/config"
	"github.com/abhinavsrinivasan/diabetes-me/models"
	"github.com/abhinavsrinivasan/diabetes-me/utils"
)

// RegisterUser creates the account plus its profile with the default goal
// set and zeroed progress, in one transaction.
func RegisterUser(email, password, name string) error {
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	return config.DB.Transaction(func(tx *gorm.DB) error {
		user := models.User{
			Email:    email,
			Password: hashed,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		profile := models.Profile{
			UserID:      user.ID,
			Name:        name,
			Goals:       models.DefaultGoals,
			LastUpdated: todayISO(),
		}
		return tx.Create(&profile).Error
	})
}

// AuthenticateUser checks credentials and returns a signed token.
func AuthenticateUser(email, password string) (string, error) {
	var user models.User
	result := config.DB.Where("email = ?", email).First(&user)
	if result.Error != nil {
		return "", errors.New("invalid email or password")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", errors.New("invalid email or password")
	}

	return utils.GenerateJWT(user.Email)
}

func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
