package services

import (
	"github.com/eatn-dev/eatn-menu-api/config"
	"github.com/eatn-dev/eatn-menu-api/models"
)

type TagService struct{}

func NewTagService() *TagService {
	return &TagService{}
}

// TagInput carries the writable tag fields. Colors are validated as hex
// strings at the edge and stored as-is.
type TagInput struct {
	Name    string
	BgColor string
	FgColor string
	Icon    string
}

func (s *TagService) Create(input TagInput) (uint, error) {
	tag := models.Tag{
		Name:    input.Name,
		BgColor: input.BgColor,
		FgColor: input.FgColor,
		Icon:    input.Icon,
	}
	if err := config.DB.Create(&tag).Error; err != nil {
		return 0, translate(err)
	}
	return tag.ID, nil
}

func (s *TagService) List() ([]TagView, error) {
	var tags []models.Tag
	if err := config.DB.Preload("MenuItems").Order("id").Find(&tags).Error; err != nil {
		return nil, translate(err)
	}

	views := make([]TagView, 0, len(tags))
	for _, t := range tags {
		views = append(views, newTagView(t))
	}
	return views, nil
}

func (s *TagService) Get(id uint) (*TagView, error) {
	var tag models.Tag
	if err := config.DB.Preload("MenuItems").First(&tag, id).Error; err != nil {
		return nil, translate(err)
	}

	view := newTagView(tag)
	return &view, nil
}

func (s *TagService) Update(id uint, input TagInput) error {
	result := config.DB.Model(&models.Tag{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":     input.Name,
		"bg_color": input.BgColor,
		"fg_color": input.FgColor,
		"icon":     input.Icon,
	})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete clears the tag's join rows first; removing a tag detaches it from
// every item rather than blocking on existing assignments.
func (s *TagService) Delete(id uint) error {
	var tag models.Tag
	if err := config.DB.First(&tag, id).Error; err != nil {
		return translate(err)
	}

	if err := config.DB.Model(&tag).Association("MenuItems").Clear(); err != nil {
		return translate(err)
	}
	if err := config.DB.Delete(&tag).Error; err != nil {
		return translate(err)
	}
	return nil
}
