package controllers

import (
	"net/http"

	"github.com/eatn-dev/eatn-menu-api/services"
	"github.com/eatn-dev/eatn-menu-api/validators"

	"github.com/gin-gonic/gin"
)

var menuItemSvc = services.NewMenuItemService()

// POST /items
func CreateMenuItem(c *gin.Context) {
	var req validators.CreateMenuItemRequest
	if !validators.BindJSON(c, &req) {
		return
	}

	id, err := menuItemSvc.Create(services.MenuItemInput{
		Name:          req.Name,
		Price:         req.Price,
		Quantity:      req.Quantity,
		Description:   req.Description,
		SubcategoryID: req.SubcategoryID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"message":   "Menu item successfully created.",
			"returning": gin.H{"menuItemId": id},
		},
	})
}

// GET /items
func GetMenuItems(c *gin.Context) {
	items, err := menuItemSvc.List()
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, items)
}

// GET /items/:id
func GetMenuItemByID(c *gin.Context) {
	id, ok := validators.PathID(c, "id", "id")
	if !ok {
		return
	}

	item, err := menuItemSvc.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, item)
}

// PUT /items/:id
func UpdateMenuItem(c *gin.Context) {
	id, ok := validators.PathID(c, "id", "id")
	if !ok {
		return
	}

	var req validators.UpdateMenuItemRequest
	if !validators.BindJSON(c, &req) {
		return
	}

	err := menuItemSvc.Update(id, services.MenuItemInput{
		Name:          req.Name,
		Price:         req.Price,
		Quantity:      req.Quantity,
		Description:   req.Description,
		SubcategoryID: req.SubcategoryID,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "Menu item successfully updated.")
}

// DELETE /items/:id
func DeleteMenuItem(c *gin.Context) {
	id, ok := validators.PathID(c, "id", "id")
	if !ok {
		return
	}

	if err := menuItemSvc.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "Menu item successfully deleted.")
}

// POST /items/:id/tags
func AssignTagToMenuItem(c *gin.Context) {
	menuItemID, ok := validators.PathID(c, "id", "menuItemId")
	if !ok {
		return
	}

	var req validators.AssignTagRequest
	if !validators.BindJSON(c, &req) {
		return
	}

	if err := menuItemSvc.AssignTag(menuItemID, *req.TagID); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "Tag assigned successfully.")
}

// DELETE /items/:id/tags/:tagId
func RemoveTagFromMenuItem(c *gin.Context) {
	menuItemID, ok := validators.PathID(c, "id", "menuItemId")
	if !ok {
		return
	}
	tagID, ok := validators.PathID(c, "tagId", "tagId")
	if !ok {
		return
	}

	if err := menuItemSvc.UnassignTag(menuItemID, tagID); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "Tag removed successfully.")
}
