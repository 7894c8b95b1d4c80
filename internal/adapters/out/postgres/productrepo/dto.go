// Package productrepo persists catalog products and enforces the stock floor
// with a conditional decrement.
package productrepo

import (
	"time"

	"bakery/internal/core/domain/model/catalog"
	"bakery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO is the row shape of the products table.
type ProductDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name        string          `gorm:"not null"`
	Description string          `gorm:"not null"`
	Category    string          `gorm:"not null;index"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Stock       int             `gorm:"not null"`
	Image       string          `gorm:"not null"`
	Featured    bool            `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *catalog.Product) ProductDTO {
	return ProductDTO{
		ID:          p.ID().Bytes(),
		Name:        p.Name(),
		Description: p.Description(),
		Category:    p.Category(),
		Price:       p.Price().Decimal(),
		Stock:       p.Stock(),
		Image:       p.Image(),
		Featured:    p.IsFeatured(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}

func toDomain(dto ProductDTO) (*catalog.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return catalog.RestoreProduct(id, catalog.Details{
		Name:        dto.Name,
		Description: dto.Description,
		Category:    dto.Category,
		Price:       price,
		Stock:       dto.Stock,
		Image:       dto.Image,
		Featured:    dto.Featured,
	}, dto.CreatedAt, dto.UpdatedAt)
}
