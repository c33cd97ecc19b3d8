package models

import "github.com/lib/pq"

// Product is the catalog aggregate root. Images are owned by the product:
// they load with it and are deleted with it.
type Product struct {
	ID          string         `gorm:"primaryKey;type:uuid"      json:"id"`
	Title       string         `gorm:"uniqueIndex;not null"      json:"title"`
	Price       float64        `gorm:"default:0"                 json:"price"`
	Description string         `json:"description"`
	Slug        string         `gorm:"uniqueIndex;not null"      json:"slug"`
	Stock       int            `gorm:"default:0"                 json:"stock"`
	Sizes       pq.StringArray `gorm:"type:text[]"               json:"sizes"`
	Gender      string         `gorm:"not null"                  json:"gender"`
	Tags        pq.StringArray `gorm:"type:text[]"               json:"tags"`
	Images      []ProductImage `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
	UserID      string         `gorm:"type:uuid;index"           json:"user_id"`
}

type ProductImage struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	URL       string `gorm:"not null;check:url <> ''" json:"url"`
	ProductID string `gorm:"type:uuid;index;not null" json:"product_id"`
}

type User struct {
	ID       string         `gorm:"primaryKey;type:uuid" json:"id"`
	Email    string         `gorm:"uniqueIndex;not null" json:"email"`
	Password string         `gorm:"not null"             json:"-"`
	FullName string         `gorm:"not null"             json:"full_name"`
	IsActive bool           `gorm:"default:true"         json:"is_active"`
	Roles    pq.StringArray `gorm:"type:text[]"          json:"roles"`
}
