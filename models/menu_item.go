package models

import "time"

// MenuItem is a sellable entry on the menu. The subcategory reference is
// optional so items can exist before being placed in the hierarchy.
type MenuItem struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name" gorm:"size:255;uniqueIndex;not null"`
	Price         float64   `json:"price" gorm:"not null"`
	Quantity      string    `json:"quantity" gorm:"size:255;not null"`
	Description   string    `json:"description" gorm:"not null"`
	SubcategoryID *uint     `json:"subcategoryId"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`

	Subcategory *Subcategory `json:"subcategory,omitempty"`
	Tags        []Tag        `json:"tags,omitempty" gorm:"many2many:menu_item_tags"`
}
