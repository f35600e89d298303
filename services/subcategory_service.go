package services

import (
	"github.com/eatn-dev/eatn-menu-api/config"
	"github.com/eatn-dev/eatn-menu-api/models"
)

type SubcategoryService struct{}

func NewSubcategoryService() *SubcategoryService {
	return &SubcategoryService{}
}

// categoryExists is the explicit parent pre-check run before any subcategory
// write that references a category.
func categoryExists(id uint) error {
	var category models.Category
	if err := config.DB.Select("id").First(&category, id).Error; err != nil {
		return translate(err)
	}
	return nil
}

func (s *SubcategoryService) Create(name string, categoryID uint) (uint, error) {
	if err := categoryExists(categoryID); err != nil {
		return 0, err
	}

	subcategory := models.Subcategory{Name: name, CategoryID: categoryID}
	if err := config.DB.Create(&subcategory).Error; err != nil {
		return 0, translate(err)
	}
	return subcategory.ID, nil
}

func (s *SubcategoryService) List() ([]SubcategoryView, error) {
	var subcategories []models.Subcategory
	err := config.DB.
		Preload("MenuItems").
		Preload("Category").
		Order("id").
		Find(&subcategories).Error
	if err != nil {
		return nil, translate(err)
	}

	views := make([]SubcategoryView, 0, len(subcategories))
	for _, sub := range subcategories {
		views = append(views, newSubcategoryView(sub, true))
	}
	return views, nil
}

func (s *SubcategoryService) Get(id uint) (*SubcategoryView, error) {
	var subcategory models.Subcategory
	if err := config.DB.Preload("MenuItems").First(&subcategory, id).Error; err != nil {
		return nil, translate(err)
	}

	view := newSubcategoryView(subcategory, false)
	return &view, nil
}

func (s *SubcategoryService) Update(id uint, name string, categoryID uint) error {
	if err := categoryExists(categoryID); err != nil {
		return err
	}

	result := config.DB.Model(&models.Subcategory{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":        name,
		"category_id": categoryID,
	})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete is restricted: a subcategory that still has menu items cannot be
// removed.
func (s *SubcategoryService) Delete(id uint) error {
	var dependents int64
	if err := config.DB.Model(&models.MenuItem{}).Where("subcategory_id = ?", id).Count(&dependents).Error; err != nil {
		return translate(err)
	}
	if dependents > 0 {
		return &ConflictError{Message: "Cannot delete a subcategory that still has menu items."}
	}

	result := config.DB.Delete(&models.Subcategory{}, id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
