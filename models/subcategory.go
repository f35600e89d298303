package models

import "time"

// Subcategory belongs to exactly one Category and groups menu items.
type Subcategory struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Name       string    `json:"name" gorm:"size:255;uniqueIndex;not null"`
	CategoryID uint      `json:"categoryId" gorm:"not null"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`

	Category  *Category  `json:"category,omitempty"`
	MenuItems []MenuItem `json:"menu_items,omitempty"`
}
