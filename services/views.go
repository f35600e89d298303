package services

import (
	"time"

	"github.com/eatn-dev/eatn-menu-api/models"
)

// Responses never serialize gorm models directly. Each nesting context gets
// its own projection struct so foreign-key columns can be stripped from
// embedded children without a generic attribute-exclusion mechanism.

// CategoryRecord is the flat category representation.
type CategoryRecord struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SubcategorySummary is a subcategory embedded under its parent or a menu
// item; the categoryId back-reference is stripped.
type SubcategorySummary struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MenuItemSummary is a menu item embedded under a subcategory; the
// subcategoryId back-reference is stripped.
type MenuItemSummary struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Quantity    string    `json:"quantity"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// MenuItemRecord is the full menu item representation, foreign key included;
// tag responses embed items in this form.
type MenuItemRecord struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Price         float64   `json:"price"`
	Quantity      string    `json:"quantity"`
	Description   string    `json:"description"`
	SubcategoryID *uint     `json:"subcategoryId"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// TagRecord is the flat tag representation.
type TagRecord struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	BgColor   string    `json:"bgColor"`
	FgColor   string    `json:"fgColor"`
	Icon      string    `json:"icon"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CategoryView is a category with its subcategories nested.
type CategoryView struct {
	CategoryRecord
	Subcategories []SubcategorySummary `json:"subcategories"`
}

// SubcategoryView nests menu items, and on list responses the parent
// category. Get-by-id responses omit the category.
type SubcategoryView struct {
	SubcategorySummary
	MenuItems []MenuItemSummary `json:"menu_items"`
	Category  *CategoryRecord   `json:"category,omitempty"`
}

// SubcategoryWithCategory is the subcategory embedded under a menu item,
// carrying its own parent category.
type SubcategoryWithCategory struct {
	SubcategorySummary
	Category CategoryRecord `json:"category"`
}

// MenuItemView nests the item's tags and its subcategory (with category).
// Subcategory is null for unplaced items.
type MenuItemView struct {
	MenuItemSummary
	Tags        []TagRecord              `json:"tags"`
	Subcategory *SubcategoryWithCategory `json:"subcategory"`
}

// TagView nests the tagged menu items as full records.
type TagView struct {
	TagRecord
	MenuItems []MenuItemRecord `json:"menu_items"`
}

func newCategoryRecord(c models.Category) CategoryRecord {
	return CategoryRecord{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt}
}

func newSubcategorySummary(s models.Subcategory) SubcategorySummary {
	return SubcategorySummary{ID: s.ID, Name: s.Name, CreatedAt: s.CreatedAt, UpdatedAt: s.UpdatedAt}
}

func newMenuItemSummary(i models.MenuItem) MenuItemSummary {
	return MenuItemSummary{
		ID:          i.ID,
		Name:        i.Name,
		Price:       i.Price,
		Quantity:    i.Quantity,
		Description: i.Description,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}

func newMenuItemRecord(i models.MenuItem) MenuItemRecord {
	return MenuItemRecord{
		ID:            i.ID,
		Name:          i.Name,
		Price:         i.Price,
		Quantity:      i.Quantity,
		Description:   i.Description,
		SubcategoryID: i.SubcategoryID,
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	}
}

func newTagRecord(t models.Tag) TagRecord {
	return TagRecord{
		ID:        t.ID,
		Name:      t.Name,
		BgColor:   t.BgColor,
		FgColor:   t.FgColor,
		Icon:      t.Icon,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func newCategoryView(c models.Category) CategoryView {
	subcategories := make([]SubcategorySummary, 0, len(c.Subcategories))
	for _, s := range c.Subcategories {
		subcategories = append(subcategories, newSubcategorySummary(s))
	}
	return CategoryView{CategoryRecord: newCategoryRecord(c), Subcategories: subcategories}
}

func newSubcategoryView(s models.Subcategory, withCategory bool) SubcategoryView {
	items := make([]MenuItemSummary, 0, len(s.MenuItems))
	for _, i := range s.MenuItems {
		items = append(items, newMenuItemSummary(i))
	}
	view := SubcategoryView{SubcategorySummary: newSubcategorySummary(s), MenuItems: items}
	if withCategory && s.Category != nil {
		record := newCategoryRecord(*s.Category)
		view.Category = &record
	}
	return view
}

func newMenuItemView(i models.MenuItem) MenuItemView {
	tags := make([]TagRecord, 0, len(i.Tags))
	for _, t := range i.Tags {
		tags = append(tags, newTagRecord(t))
	}
	view := MenuItemView{MenuItemSummary: newMenuItemSummary(i), Tags: tags}
	if i.Subcategory != nil {
		nested := SubcategoryWithCategory{
			SubcategorySummary: newSubcategorySummary(*i.Subcategory),
		}
		if i.Subcategory.Category != nil {
			nested.Category = newCategoryRecord(*i.Subcategory.Category)
		}
		view.Subcategory = &nested
	}
	return view
}

func newTagView(t models.Tag) TagView {
	items := make([]MenuItemRecord, 0, len(t.MenuItems))
	for _, i := range t.MenuItems {
		items = append(items, newMenuItemRecord(i))
	}
	return TagView{TagRecord: newTagRecord(t), MenuItems: items}
}
