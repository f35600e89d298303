package services

import (
	"errors"
	"fmt"

	"github.com/eatn-dev/eatn-menu-api/config"
	"github.com/eatn-dev/eatn-menu-api/models"

	"gorm.io/gorm"
)

type MenuItemService struct{}

func NewMenuItemService() *MenuItemService {
	return &MenuItemService{}
}

// MenuItemInput is the full set of writable fields; create and update both
// take the whole record (no partial patch).
type MenuItemInput struct {
	Name          string
	Price         float64
	Quantity      string
	Description   string
	SubcategoryID *uint
}

// subcategoryExists is the parent pre-check for item writes that place the
// item under a subcategory.
func subcategoryExists(id uint) error {
	var subcategory models.Subcategory
	if err := config.DB.Select("id").First(&subcategory, id).Error; err != nil {
		return translate(err)
	}
	return nil
}

func (s *MenuItemService) Create(input MenuItemInput) (uint, error) {
	if input.SubcategoryID != nil {
		if err := subcategoryExists(*input.SubcategoryID); err != nil {
			return 0, err
		}
	}

	item := models.MenuItem{
		Name:          input.Name,
		Price:         input.Price,
		Quantity:      input.Quantity,
		Description:   input.Description,
		SubcategoryID: input.SubcategoryID,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		return 0, translate(err)
	}
	return item.ID, nil
}

func (s *MenuItemService) List() ([]MenuItemView, error) {
	var items []models.MenuItem
	err := config.DB.
		Preload("Tags").
		Preload("Subcategory").
		Preload("Subcategory.Category").
		Order("id").
		Find(&items).Error
	if err != nil {
		return nil, translate(err)
	}

	views := make([]MenuItemView, 0, len(items))
	for _, item := range items {
		views = append(views, newMenuItemView(item))
	}
	return views, nil
}

func (s *MenuItemService) Get(id uint) (*MenuItemView, error) {
	var item models.MenuItem
	err := config.DB.
		Preload("Tags").
		Preload("Subcategory").
		Preload("Subcategory.Category").
		First(&item, id).Error
	if err != nil {
		return nil, translate(err)
	}

	view := newMenuItemView(item)
	return &view, nil
}

func (s *MenuItemService) Update(id uint, input MenuItemInput) error {
	if input.SubcategoryID != nil {
		if err := subcategoryExists(*input.SubcategoryID); err != nil {
			return err
		}
	}

	result := config.DB.Model(&models.MenuItem{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":           input.Name,
		"price":          input.Price,
		"quantity":       input.Quantity,
		"description":    input.Description,
		"subcategory_id": input.SubcategoryID,
	})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the item's join rows before the item itself, so the tag
// association table never references a deleted item.
func (s *MenuItemService) Delete(id uint) error {
	var item models.MenuItem
	if err := config.DB.First(&item, id).Error; err != nil {
		return translate(err)
	}

	if err := config.DB.Model(&item).Association("Tags").Clear(); err != nil {
		return translate(err)
	}
	if err := config.DB.Delete(&item).Error; err != nil {
		return translate(err)
	}
	return nil
}

// AssignTag links a tag to an item. Both sides are resolved first so a
// missing id fails not-found before any write; the membership pre-check
// exists to produce a friendly conflict message, while the join table's
// composite primary key remains the source of truth for uniqueness.
func (s *MenuItemService) AssignTag(menuItemID, tagID uint) error {
	var tag models.Tag
	if err := config.DB.First(&tag, tagID).Error; err != nil {
		return translate(err)
	}

	var item models.MenuItem
	if err := config.DB.First(&item, menuItemID).Error; err != nil {
		return translate(err)
	}

	assigned, err := tagAssigned(item.ID, tag.ID)
	if err != nil {
		return err
	}
	if assigned {
		return alreadyAssigned(tag, item)
	}

	if err := config.DB.Model(&item).Association("Tags").Append(&tag); err != nil {
		// Two concurrent assigns can both pass the membership check; the
		// composite key catches the loser.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return alreadyAssigned(tag, item)
		}
		return translate(err)
	}
	return nil
}

// UnassignTag removes the link between a tag and an item; an absent link is
// not-found, mirroring AssignTag's conflict on a present one.
func (s *MenuItemService) UnassignTag(menuItemID, tagID uint) error {
	var tag models.Tag
	if err := config.DB.First(&tag, tagID).Error; err != nil {
		return translate(err)
	}

	var item models.MenuItem
	if err := config.DB.First(&item, menuItemID).Error; err != nil {
		return translate(err)
	}

	assigned, err := tagAssigned(item.ID, tag.ID)
	if err != nil {
		return err
	}
	if !assigned {
		return ErrNotFound
	}

	if err := config.DB.Model(&item).Association("Tags").Delete(&tag); err != nil {
		return translate(err)
	}
	return nil
}

func tagAssigned(menuItemID, tagID uint) (bool, error) {
	var count int64
	err := config.DB.Table("menu_item_tags").
		Where("menu_item_id = ? AND tag_id = ?", menuItemID, tagID).
		Count(&count).Error
	if err != nil {
		return false, translate(err)
	}
	return count > 0, nil
}

func alreadyAssigned(tag models.Tag, item models.MenuItem) error {
	return &ConflictError{
		Message: fmt.Sprintf("`%s` tag is already assigned to `%s`.", tag.Name, item.Name),
	}
}
