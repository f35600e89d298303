package validators

// Per-route request shapes. The validate tags are the rule tables: required-
// ness, string length bounds, numeric minimums and the hex color pattern all
// live here and are evaluated by the shared validator instance before any
// handler logic runs.

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

type UpdateCategoryRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

type CreateSubcategoryRequest struct {
	Name       string `json:"name" validate:"required,max=255"`
	CategoryID *uint  `json:"categoryId" validate:"required"`
}

type UpdateSubcategoryRequest struct {
	Name       string `json:"name" validate:"required,max=255"`
	CategoryID *uint  `json:"categoryId" validate:"required"`
}

type CreateMenuItemRequest struct {
	Name          string  `json:"name" validate:"required,max=255"`
	Price         float64 `json:"price" validate:"required,gte=0.01"`
	Quantity      string  `json:"quantity" validate:"required,max=255"`
	Description   string  `json:"description" validate:"required"`
	SubcategoryID *uint   `json:"subcategoryId"`
}

type UpdateMenuItemRequest struct {
	Name          string  `json:"name" validate:"required,max=255"`
	Price         float64 `json:"price" validate:"required,gte=0.01"`
	Quantity      string  `json:"quantity" validate:"required,max=255"`
	Description   string  `json:"description" validate:"required"`
	SubcategoryID *uint   `json:"subcategoryId"`
}

type CreateTagRequest struct {
	Name    string `json:"name" validate:"required,max=255"`
	BgColor string `json:"bgColor" validate:"required,hexcolor"`
	FgColor string `json:"fgColor" validate:"required,hexcolor"`
	Icon    string `json:"icon" validate:"required"`
}

type UpdateTagRequest struct {
	Name    string `json:"name" validate:"required,max=255"`
	BgColor string `json:"bgColor" validate:"required,hexcolor"`
	FgColor string `json:"fgColor" validate:"required,hexcolor"`
	Icon    string `json:"icon" validate:"required"`
}

type AssignTagRequest struct {
	TagID *uint `json:"tagId" validate:"required"`
}
