package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gearshop/shop-backend/internal/domain"
	"github.com/gearshop/shop-backend/internal/models"
	"github.com/gearshop/shop-backend/internal/repo"
	"github.com/gearshop/shop-backend/internal/transport"
	"github.com/gearshop/shop-backend/internal/util"
)

// ProductService orchestrates the catalog workflows: create, flexible lookup,
// paginated listing, transactional update with image replacement, delete.
type ProductService struct {
	Repo repo.ProductRepository
}

func NewProductService(r repo.ProductRepository) *ProductService {
	return &ProductService{Repo: r}
}

func (s *ProductService) Create(ctx context.Context, req transport.CreateProductRequest, actingUser *models.User) (*transport.ProductResponse, error) {
	p := &models.Product{
		Title:       req.Title,
		Price:       req.Price,
		Description: req.Description,
		Slug:        domain.SlugFor(req.Title, req.Slug),
		Stock:       req.Stock,
		Sizes:       req.Sizes,
		Gender:      req.Gender,
		Tags:        req.Tags,
		UserID:      actingUser.ID,
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	for _, url := range req.Images {
		p.Images = append(p.Images, models.ProductImage{URL: url})
	}

	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, classifyDBError(ctx, "product_create", err)
	}
	return transport.NewProductResponse(p), nil
}

func (s *ProductService) FindAll(ctx context.Context, limit, offset int) ([]transport.ProductResponse, error) {
	limit, offset = util.Normalize(limit, offset)

	products, err := s.Repo.GetPage(ctx, limit, offset)
	if err != nil {
		return nil, classifyDBError(ctx, "product_find_all", err)
	}

	out := make([]transport.ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, *transport.NewProductResponse(&products[i]))
	}
	return out, nil
}

// FindOne resolves a search term to a product. A term that parses as a UUID
// is looked up by id only; anything else matches the title case-insensitively
// or the slug after lowercasing. There is no fallback between the two paths.
func (s *ProductService) FindOne(ctx context.Context, term string) (*models.Product, error) {
	var (
		p   *models.Product
		err error
	)
	if _, uuidErr := uuid.Parse(term); uuidErr == nil {
		p, err = s.Repo.GetByID(ctx, term)
	} else {
		p, err = s.Repo.GetByTitleOrSlug(ctx, term)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: no product matches %q", ErrNotFound, term)
		}
		return nil, classifyDBError(ctx, "product_find_one", err)
	}
	return p, nil
}

func (s *ProductService) FindOnePlain(ctx context.Context, term string) (*transport.ProductResponse, error) {
	p, err := s.FindOne(ctx, term)
	if err != nil {
		return nil, err
	}
	return transport.NewProductResponse(p), nil
}

// Update applies partial fields to the product with the given id and saves it
// in one transaction, replacing the whole image set when the request carries
// one. Ownership is re-attributed to the acting user on every update. The
// returned view is re-read after commit so it reflects committed state.
func (s *ProductService) Update(ctx context.Context, id string, req transport.UpdateProductRequest, actingUser *models.User) (*transport.ProductResponse, error) {
	p, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product with id %q", ErrNotFound, id)
		}
		return nil, classifyDBError(ctx, "product_update", err)
	}

	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Slug != nil {
		p.Slug = *req.Slug
	}
	if req.Stock != nil {
		p.Stock = *req.Stock
	}
	if req.Sizes != nil {
		p.Sizes = *req.Sizes
	}
	if req.Gender != nil {
		p.Gender = *req.Gender
	}
	if req.Tags != nil {
		p.Tags = *req.Tags
	}
	p.Slug = domain.NormalizeSlug(p.Slug)
	p.UserID = actingUser.ID

	if err := s.Repo.Update(ctx, p, req.Images); err != nil {
		return nil, classifyDBError(ctx, "product_update", err)
	}
	return s.FindOnePlain(ctx, id)
}

func (s *ProductService) Remove(ctx context.Context, id string) error {
	p, err := s.FindOne(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, p); err != nil {
		return classifyDBError(ctx, "product_remove", err)
	}
	return nil
}
