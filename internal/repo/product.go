package repo

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/gearshop/shop-backend/internal/models"
)

type GormProductRepo struct {
	DB *gorm.DB
}

func NewGormProductRepo(db *gorm.DB) *GormProductRepo {
	return &GormProductRepo{DB: db}
}

// Create inserts the product together with its image rows. GORM runs the
// association inserts in one transaction, so a constraint failure leaves
// nothing behind.
func (r *GormProductRepo) Create(ctx context.Context, p *models.Product) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return r.DB.WithContext(ctx).Create(p).Error
}

func (r *GormProductRepo) GetPage(ctx context.Context, limit, offset int) ([]models.Product, error) {
	var items []models.Product
	err := r.DB.WithContext(ctx).
		Preload("Images").
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormProductRepo) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var p models.Product
	if err := r.DB.WithContext(ctx).Preload("Images").Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *GormProductRepo) GetByTitleOrSlug(ctx context.Context, term string) (*models.Product, error) {
	var p models.Product
	err := r.DB.WithContext(ctx).
		Preload("Images").
		Where("UPPER(title) = ? OR slug = ?", strings.ToUpper(term), strings.ToLower(term)).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Update saves the product row and, when images is non-nil, replaces the
// whole image set: delete everything owned by the product, then insert the
// new rows. All of it runs in a single transaction so readers never observe
// a half-replaced set.
func (r *GormProductRepo) Update(ctx context.Context, p *models.Product, images *[]string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if images != nil {
			if err := tx.Where("product_id = ?", p.ID).Delete(&models.ProductImage{}).Error; err != nil {
				return err
			}
			p.Images = nil
			for _, url := range *images {
				p.Images = append(p.Images, models.ProductImage{URL: url, ProductID: p.ID})
			}
			if len(p.Images) > 0 {
				if err := tx.Create(&p.Images).Error; err != nil {
					return err
				}
			}
		}
		return tx.Omit(clause.Associations).Save(p).Error
	})
}

func (r *GormProductRepo) Delete(ctx context.Context, p *models.Product) error {
	return r.DB.WithContext(ctx).Select(clause.Associations).Delete(p).Error
}
