package catalog

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"
)

var (
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

	// ErrUnknownProduct is the cause of the not-found error returned when an
	// order references a product that does not exist.
	ErrUnknownProduct = errors.New("product does not exist")

	// ErrInsufficientStock is the cause of the conflict returned when the
	// requested quantity exceeds what is left on the shelf.
	ErrInsufficientStock = errors.New("insufficient stock")

	ErrNegativeStock = errors.New("stock must not be negative")
)

// NewUnknownProductError reports an order line that points at a missing product.
func NewUnknownProductError(id kernel.UUID) error {
	return errs.NewObjectNotFoundErrorWithCause("product", id.String(), ErrUnknownProduct)
}

// NewInsufficientStockError reports that not enough units of the named product remain.
func NewInsufficientStockError(productName string) error {
	return errs.NewConflictErrorWithCause("stock", fmt.Errorf("%w for %s", ErrInsufficientStock, productName))
}

// Product is a catalog entry. It is the source of truth for the unit price
// and the remaining stock that order placement reserves against.
type Product struct {
	id          kernel.UUID
	name        string
	description string
	category    string
	price       kernel.Money
	stock       int
	image       string
	featured    bool
	createdAt   time.Time
	updatedAt   time.Time

	isConstructed bool
}

// Details carries the editable attributes of a product.
type Details struct {
	Name        string
	Description string
	Category    string
	Price       kernel.Money
	Stock       int
	Image       string
	Featured    bool
}

// NewProduct validates and creates a catalog entry. Text fields are trimmed;
// name, description, category and image must not be blank.
func NewProduct(id kernel.UUID, details Details, now time.Time) (*Product, error) {
	p := &Product{
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := id.Validate(); err != nil {
		return nil, err
	}
	p.id = id

	if err := p.apply(Changes{
		Name:        &details.Name,
		Description: &details.Description,
		Category:    &details.Category,
		Price:       &details.Price,
		Stock:       &details.Stock,
		Image:       &details.Image,
		Featured:    &details.Featured,
	}); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct rebuilds a product from persisted state.
func RestoreProduct(id kernel.UUID, details Details, createdAt, updatedAt time.Time) (*Product, error) {
	p, err := NewProduct(id, details, createdAt)
	if err != nil {
		return nil, err
	}
	p.updatedAt = updatedAt
	return p, nil
}

func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

func (p *Product) ID() kernel.UUID {
	return p.id
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Description() string {
	return p.description
}

func (p *Product) Category() string {
	return p.category
}

func (p *Product) Price() kernel.Money {
	return p.price
}

func (p *Product) Stock() int {
	return p.stock
}

func (p *Product) Image() string {
	return p.image
}

func (p *Product) IsFeatured() bool {
	return p.featured
}

func (p *Product) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Product) UpdatedAt() time.Time {
	return p.updatedAt
}

// Details returns a copy of the editable attributes.
func (p *Product) Details() Details {
	return Details{
		Name:        p.name,
		Description: p.description,
		Category:    p.category,
		Price:       p.price,
		Stock:       p.stock,
		Image:       p.image,
		Featured:    p.featured,
	}
}

// EnsureAvailable returns an insufficient stock conflict when quantity exceeds the stock on hand.
func (p *Product) EnsureAvailable(quantity int) error {
	if quantity > p.stock {
		return NewInsufficientStockError(p.name)
	}
	return nil
}

// Changes lists the attributes an administrator wants to edit. Nil fields are left untouched.
type Changes struct {
	Name        *string
	Description *string
	Category    *string
	Price       *kernel.Money
	Stock       *int
	Image       *string
	Featured    *bool
}

// Update applies changes atomically: on error the product is left as it was.
func (p *Product) Update(changes Changes, now time.Time) error {
	next := *p
	if err := next.apply(changes); err != nil {
		return err
	}
	next.updatedAt = now
	*p = next
	return nil
}

func (p *Product) apply(c Changes) error {
	if c.Name != nil {
		v, err := requiredText("name", *c.Name)
		if err != nil {
			return err
		}
		p.name = v
	}
	if c.Description != nil {
		v, err := requiredText("description", *c.Description)
		if err != nil {
			return err
		}
		p.description = v
	}
	if c.Category != nil {
		v, err := requiredText("category", *c.Category)
		if err != nil {
			return err
		}
		p.category = v
	}
	if c.Price != nil {
		p.price = *c.Price
	}
	if c.Stock != nil {
		if *c.Stock < 0 {
			return errs.NewValueIsOutOfRangeErrorWithCause("stock", *c.Stock, 0, "unbounded", ErrNegativeStock)
		}
		p.stock = *c.Stock
	}
	if c.Image != nil {
		v, err := requiredText("image", *c.Image)
		if err != nil {
			return err
		}
		p.image = v
	}
	if c.Featured != nil {
		p.featured = *c.Featured
	}
	return nil
}

func requiredText(param, value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", errs.NewValueIsRequiredError(param)
	}
	return trimmed, nil
}
