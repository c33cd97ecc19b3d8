package repo

import (
	"context"

	"github.com/gearshop/shop-backend/internal/models"
)

// ProductRepository is the persistence boundary the product workflow engine
// talks to. Implementations must keep the Update image replacement atomic:
// either the whole replacement commits or none of it is visible.
type ProductRepository interface {
	Create(ctx context.Context, p *models.Product) error
	GetPage(ctx context.Context, limit, offset int) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	GetByTitleOrSlug(ctx context.Context, term string) (*models.Product, error)
	// Update persists p. A non-nil images list replaces the whole image set
	// inside the same transaction; nil leaves the existing images untouched.
	Update(ctx context.Context, p *models.Product, images *[]string) error
	Delete(ctx context.Context, p *models.Product) error
}

type UserRepository interface {
	Create(ctx context.Context, u *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}
