package controllers

import (
	"net/http"

	"github.com/eatn-dev/eatn-menu-api/services"
	"github.com/eatn-dev/eatn-menu-api/validators"

	"github.com/gin-gonic/gin"
)

var tagSvc = services.NewTagService()

// POST /tags
func CreateTag(c *gin.Context) {
	var req validators.CreateTagRequest
	if !validators.BindJSON(c, &req) {
		return
	}

	id, err := tagSvc.Create(services.TagInput{
		Name:    req.Name,
		BgColor: req.BgColor,
		FgColor: req.FgColor,
		Icon:    req.Icon,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"message":   "Tag successfully created.",
			"returning": gin.H{"tagId": id},
		},
	})
}

// GET /tags
func GetTags(c *gin.Context) {
	tags, err := tagSvc.List()
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, tags)
}

// GET /tags/:id
func GetTagByID(c *gin.Context) {
	id, ok := validators.PathID(c, "id", "id")
	if !ok {
		return
	}

	tag, err := tagSvc.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, tag)
}

// PUT /tags/:id
func UpdateTag(c *gin.Context) {
	id, ok := validators.PathID(c, "id", "id")
	if !ok {
		return
	}

	var req validators.UpdateTagRequest
	if !validators.BindJSON(c, &req) {
		return
	}

	err := tagSvc.Update(id, services.TagInput{
		Name:    req.Name,
		BgColor: req.BgColor,
		FgColor: req.FgColor,
		Icon:    req.Icon,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "Tag successfully updated.")
}

// DELETE /tags/:id
func DeleteTag(c *gin.Context) {
	id, ok := validators.PathID(c, "id", "id")
	if !ok {
		return
	}

	if err := tagSvc.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "Tag successfully deleted.")
}
