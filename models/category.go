package models

import "time"

// Category is the top level of the menu hierarchy.
type Category struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:255;uniqueIndex;not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Subcategories []Subcategory `json:"subcategories,omitempty"`
}
