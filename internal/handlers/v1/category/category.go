package category

import (
	"github.com/carson-networks/finance-tracker/internal/service"
)

// Category is the API response model for a category.
type Category struct {
	ID    int64  `json:"id" doc:"Category ID"`
	Name  string `json:"name" doc:"Unique category name"`
	Type  string `json:"type" enum:"income,expense" doc:"Category type"`
	Icon  string `json:"icon" doc:"Icon name"`
	Color string `json:"color" doc:"Display color"`
}

// CategoryBody is the request body for creating or overwriting a category.
type CategoryBody struct {
	Name  string `json:"name" minLength:"1" doc:"Unique category name"`
	Type  string `json:"type,omitempty" enum:"income,expense" doc:"Category type, defaults to expense"`
	Icon  string `json:"icon,omitempty" doc:"Icon name"`
	Color string `json:"color,omitempty" doc:"Display color, defaults to amber"`
}

type CategoryIDPath struct {
	ID int64 `path:"id" minimum:"1" doc:"Category ID"`
}

func (b CategoryBody) toService() service.Category {
	return service.Category{
		Name:  b.Name,
		Type:  service.TransactionType(b.Type),
		Icon:  b.Icon,
		Color: b.Color,
	}
}

func fromService(c service.Category) Category {
	return Category{
		ID:    c.ID,
		Name:  c.Name,
		Type:  string(c.Type),
		Icon:  c.Icon,
		Color: c.Color,
	}
}
