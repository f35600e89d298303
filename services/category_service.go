package services

import (
	"github.com/eatn-dev/eatn-menu-api/config"
	"github.com/eatn-dev/eatn-menu-api/models"
)

type CategoryService struct{}

func NewCategoryService() *CategoryService {
	return &CategoryService{}
}

func (s *CategoryService) Create(name string) (uint, error) {
	category := models.Category{Name: name}
	if err := config.DB.Create(&category).Error; err != nil {
		return 0, translate(err)
	}
	return category.ID, nil
}

func (s *CategoryService) List() ([]CategoryView, error) {
	var categories []models.Category
	if err := config.DB.Preload("Subcategories").Order("id").Find(&categories).Error; err != nil {
		return nil, translate(err)
	}

	views := make([]CategoryView, 0, len(categories))
	for _, c := range categories {
		views = append(views, newCategoryView(c))
	}
	return views, nil
}

func (s *CategoryService) Get(id uint) (*CategoryView, error) {
	var category models.Category
	if err := config.DB.Preload("Subcategories").First(&category, id).Error; err != nil {
		return nil, translate(err)
	}

	view := newCategoryView(category)
	return &view, nil
}

func (s *CategoryService) Update(id uint, name string) error {
	result := config.DB.Model(&models.Category{}).Where("id = ?", id).Update("name", name)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete is restricted: a category that still has subcategories cannot be
// removed, so no foreign key is ever left dangling.
func (s *CategoryService) Delete(id uint) error {
	var dependents int64
	if err := config.DB.Model(&models.Subcategory{}).Where("category_id = ?", id).Count(&dependents).Error; err != nil {
		return translate(err)
	}
	if dependents > 0 {
		return &ConflictError{Message: "Cannot delete a category that still has subcategories."}
	}

	result := config.DB.Delete(&models.Category{}, id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
