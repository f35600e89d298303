package controllers

import (
	"net/http"

	"github.com/eatn-dev/eatn-menu-api/services"
	"github.com/eatn-dev/eatn-menu-api/validators"

	"github.com/gin-gonic/gin"
)

var categorySvc = services.NewCategoryService()

// POST /categories
func CreateCategory(c *gin.Context) {
	var req validators.CreateCategoryRequest
	if !validators.BindJSON(c, &req) {
		return
	}

	id, err := categorySvc.Create(req.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"message":   "Category successfully created.",
			"returning": gin.H{"categoryId": id},
		},
	})
}

// GET /categories
func GetCategories(c *gin.Context) {
	categories, err := categorySvc.List()
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, categories)
}

// GET /categories/:id
func GetCategoryByID(c *gin.Context) {
	id, ok := validators.PathID(c, "id", "id")
	if !ok {
		return
	}

	category, err := categorySvc.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, category)
}

// PUT /categories/:id
func UpdateCategory(c *gin.Context) {
	id, ok := validators.PathID(c, "id", "id")
	if !ok {
		return
	}

	var req validators.UpdateCategoryRequest
	if !validators.BindJSON(c, &req) {
		return
	}

	if err := categorySvc.Update(id, req.Name); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "Category successfully updated.")
}

// DELETE /categories/:id
func DeleteCategory(c *gin.Context) {
	id, ok := validators.PathID(c, "id", "id")
	if !ok {
		return
	}

	if err := categorySvc.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "Category successfully deleted.")
}
