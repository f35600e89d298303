package controllers

import (
	"net/http"

	"github.com/eatn-dev/eatn-menu-api/services"
	"github.com/eatn-dev/eatn-menu-api/validators"

	"github.com/gin-gonic/gin"
)

var subcategorySvc = services.NewSubcategoryService()

// POST /subcategories
func CreateSubcategory(c *gin.Context) {
	var req validators.CreateSubcategoryRequest
	if !validators.BindJSON(c, &req) {
		return
	}

	id, err := subcategorySvc.Create(req.Name, *req.CategoryID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"message":   "Subcategory successfully created.",
			"returning": gin.H{"subcategoryId": id},
		},
	})
}

// GET /subcategories
func GetSubcategories(c *gin.Context) {
	subcategories, err := subcategorySvc.List()
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, subcategories)
}

// GET /subcategories/:id
func GetSubcategoryByID(c *gin.Context) {
	id, ok := validators.PathID(c, "id", "id")
	if !ok {
		return
	}

	subcategory, err := subcategorySvc.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, subcategory)
}

// PUT /subcategories/:id
func UpdateSubcategory(c *gin.Context) {
	id, ok := validators.PathID(c, "id", "id")
	if !ok {
		return
	}

	var req validators.UpdateSubcategoryRequest
	if !validators.BindJSON(c, &req) {
		return
	}

	if err := subcategorySvc.Update(id, req.Name, *req.CategoryID); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "Subcategory successfully updated.")
}

// DELETE /subcategories/:id
func DeleteSubcategory(c *gin.Context) {
	id, ok := validators.PathID(c, "id", "id")
	if !ok {
		return
	}

	if err := subcategorySvc.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "Subcategory successfully deleted.")
}
