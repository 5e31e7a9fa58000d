package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abhinavsrinivasan/diabetes-me/models"
	"github.com/abhinavsrinivasan/diabetes-me/services"
	"github.com/abhinavsrinivasan/diabetes-me/utils"
)

func GetProfile(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	profile, err := services.GetProfile(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

type ProfileInput struct {
	Name *string `json:"name"`
	Bio  *string `json:"bio"`
}

func UpdateProfile(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := services.UpdateProfileInfo(userID, input.Name, input.Bio)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "profile updated", "profile": profile})
}

func UpdateGoals(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var goals models.NutritionTargets
	if err := c.ShouldBindJSON(&goals); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := services.UpdateGoals(userID, goals); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "goals updated"})
}

func LogProgress(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	// Binding rejects non-numeric deltas before they reach the accumulator.
	var delta services.ProgressDelta
	if err := c.ShouldBindJSON(&delta); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := services.LogProgress(userID, delta); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "progress updated"})
}

func ResetProgress(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	if _, err := services.ResetUserProgress(userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "progress reset"})
}

type PictureUploadInput struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
}

func UploadProfilePicture(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input PictureUploadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	url, err := utils.UploadBase64ImageToS3(input.ImageBase64, c.GetString("email"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed", "detail": err.Error()})
		return
	}

	if _, err := services.SetProfilePicture(userID, url); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
