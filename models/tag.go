package models

import "time"

// Tag is a display label (e.g. "vegan", "spicy") attachable to any number of
// menu items. The menu_item_tags join table carries a composite primary key,
// so a pair can be linked at most once at the store level.
type Tag struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:255;uniqueIndex;not null"`
	BgColor   string    `json:"bgColor" gorm:"size:7;not null"`
	FgColor   string    `json:"fgColor" gorm:"size:7;not null"`
	Icon      string    `json:"icon" gorm:"size:255;not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	MenuItems []MenuItem `json:"menu_items,omitempty" gorm:"many2many:menu_item_tags"`
}
