package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/shoplite/storefront/internal/core/domain"
	"github.com/shoplite/storefront/internal/core/ports"
)

// CatalogService implements product and category use cases.
type CatalogService struct {
	products   ports.ProductRepository
	categories ports.CategoryRepository
	logger     zerolog.Logger
}

func NewCatalogService(products ports.ProductRepository, categories ports.CategoryRepository, logger zerolog.Logger) *CatalogService {
	return &CatalogService{products: products, categories: categories, logger: logger}
}

// --- Products ---

func (s *CatalogService) ListProducts(ctx context.Context) ([]ports.ProductView, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}

	names, err := s.categoryNames(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]ports.ProductView, len(products))
	for i, p := range products {
		views[i] = toProductView(p, names[p.CategoryID])
	}
	return views, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id string) (*ports.ProductView, error) {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var categoryName string
	if cat, err := s.categories.FindByID(ctx, p.CategoryID); err == nil {
		categoryName = cat.Name
	}

	view := toProductView(p, categoryName)
	return &view, nil
}

func (s *CatalogService) CreateProduct(ctx context.Context, input ports.CreateProductInput) (*ports.ProductView, error) {
	cat, err := s.categories.FindByID(ctx, input.CategoryID)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return nil, domain.ErrUnknownCategory
		}
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.products.Create(ctx, &domain.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		CategoryID:  cat.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("product_id", created.ID).Str("category", cat.Name).Msg("product created")

	view := toProductView(created, cat.Name)
	return &view, nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, id string, upd ports.ProductUpdate) (*ports.ProductView, error) {
	if upd.CategoryID != nil {
		if _, err := s.categories.FindByID(ctx, *upd.CategoryID); err != nil {
			if errors.Is(err, domain.ErrCategoryNotFound) {
				return nil, domain.ErrUnknownCategory
			}
			return nil, err
		}
	}

	updated, err := s.products.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}

	var categoryName string
	if cat, err := s.categories.FindByID(ctx, updated.CategoryID); err == nil {
		categoryName = cat.Name
	}

	view := toProductView(updated, categoryName)
	return &view, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("product_id", id).Msg("product deleted")
	return nil
}

// --- Categories ---

func (s *CatalogService) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	return s.categories.List(ctx)
}

func (s *CatalogService) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	return s.categories.FindByID(ctx, id)
}

func (s *CatalogService) CreateCategory(ctx context.Context, input ports.CreateCategoryInput) (*domain.Category, error) {
	now := time.Now().UTC()
	return s.categories.Create(ctx, &domain.Category{
		Name:        input.Name,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

func (s *CatalogService) UpdateCategory(ctx context.Context, id string, upd ports.CategoryUpdate) (*domain.Category, error) {
	return s.categories.Update(ctx, id, upd)
}

// DeleteCategory refuses to remove a category that products still reference;
// the admin must move or delete those products first.
func (s *CatalogService) DeleteCategory(ctx context.Context, id string) error {
	n, err := s.products.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrCategoryInUse
	}
	return s.categories.Delete(ctx, id)
}

func (s *CatalogService) categoryNames(ctx context.Context) (map[string]string, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}
	return names, nil
}

func toProductView(p *domain.Product, categoryName string) ports.ProductView {
	return ports.ProductView{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		Stock:        p.Stock,
		CategoryID:   p.CategoryID,
		CategoryName: categoryName,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
