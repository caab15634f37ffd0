package handler

import (
	"time"

	"github.com/shoplite/storefront/internal/core/ports"
)

type createProductRequest struct {
	Name        string  `json:"name"        validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"       validate:"gte=0"`
	Stock       int     `json:"stock"       validate:"gte=0"`
	CategoryID  string  `json:"category_id" validate:"required"`
}

type updateProductRequest struct {
	Name        *string  `json:"name"        validate:"omitempty,min=1"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"       validate:"omitempty,gte=0"`
	Stock       *int     `json:"stock"       validate:"omitempty,gte=0"`
	CategoryID  *string  `json:"category_id" validate:"omitempty,min=1"`
}

type productResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	Stock        int       `json:"stock"`
	CategoryID   string    `json:"category_id"`
	CategoryName string    `json:"category"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func toProductResponse(v ports.ProductView) productResponse {
	return productResponse{
		ID:           v.ID,
		Name:         v.Name,
		Description:  v.Description,
		Price:        v.Price,
		Stock:        v.Stock,
		CategoryID:   v.CategoryID,
		CategoryName: v.CategoryName,
		CreatedAt:    v.CreatedAt.UTC(),
		UpdatedAt:    v.UpdatedAt.UTC(),
	}
}

type createCategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type updateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1"`
	Description *string `json:"description"`
}
