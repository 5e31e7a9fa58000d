package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/abhinavsrinivasan/diabetes-me/services"
)

// GET /recipes?category=Lunch&cuisine=Italian&max_carbs=35&max_sugar=15
func GetRecipes(c *gin.Context) {
	filter := services.RecipeFilter{
		Category: c.Query("category"),
		Cuisine:  c.Query("cuisine"),
	}
	if v := c.Query("max_carbs"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "max_carbs must be an integer"})
			return
		}
		filter.MaxCarbs = &n
	}
	if v := c.Query("max_sugar"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "max_sugar must be an integer"})
			return
		}
		filter.MaxSugar = &n
	}

	recipes, err := services.ListRecipes(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, recipes)
}
