package transport

import "github.com/gearshop/shop-backend/internal/models"

type CreateProductRequest struct {
	Title       string   `json:"title"       validate:"required,min=1"`
	Price       float64  `json:"price"       validate:"gte=0"`
	Description string   `json:"description"`
	Slug        string   `json:"slug"`
	Stock       int      `json:"stock"       validate:"gte=0"`
	Sizes       []string `json:"sizes"       validate:"required,min=1,dive,required"`
	Gender      string   `json:"gender"      validate:"required,oneof=men women kid unisex"`
	Tags        []string `json:"tags"`
	Images      []string `json:"images"      validate:"omitempty,dive,required"`
}

// UpdateProductRequest carries partial updates. Nil means "leave as is";
// a non-nil Images list replaces the whole image set, even when empty.
type UpdateProductRequest struct {
	Title       *string   `json:"title"       validate:"omitempty,min=1"`
	Price       *float64  `json:"price"       validate:"omitempty,gte=0"`
	Description *string   `json:"description"`
	Slug        *string   `json:"slug"`
	Stock       *int      `json:"stock"       validate:"omitempty,gte=0"`
	Sizes       *[]string `json:"sizes"       validate:"omitempty,min=1,dive,required"`
	Gender      *string   `json:"gender"      validate:"omitempty,oneof=men women kid unisex"`
	Tags        *[]string `json:"tags"`
	Images      *[]string `json:"images"      validate:"omitempty,dive,required"`
}

// ProductResponse is the read-facing product shape: the image relation is
// flattened to a plain list of URLs.
type ProductResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Slug        string   `json:"slug"`
	Stock       int      `json:"stock"`
	Sizes       []string `json:"sizes"`
	Gender      string   `json:"gender"`
	Tags        []string `json:"tags"`
	Images      []string `json:"images"`
	UserID      string   `json:"user_id"`
}

func NewProductResponse(p *models.Product) *ProductResponse {
	images := make([]string, 0, len(p.Images))
	for _, img := range p.Images {
		images = append(images, img.URL)
	}
	return &ProductResponse{
		ID:          p.ID,
		Title:       p.Title,
		Price:       p.Price,
		Description: p.Description,
		Slug:        p.Slug,
		Stock:       p.Stock,
		Sizes:       p.Sizes,
		Gender:      p.Gender,
		Tags:        p.Tags,
		Images:      images,
		UserID:      p.UserID,
	}
}

type RegisterRequest struct {
	Email    string `json:"email"     validate:"required,email"`
	Password string `json:"password"  validate:"required,min=6"`
	FullName string `json:"full_name" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}
