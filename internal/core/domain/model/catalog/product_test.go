package catalog_test

import (
	"testing"
	"time"

	"bakery/internal/core/domain/model/catalog"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDetails() catalog.Details {
	return catalog.Details{
		Name:        "  Saffron Milk Cake ",
		Description: "Premium saffron-infused sponge layered with light cream and pistachio.",
		Category:    "Cakes",
		Price:       kernel.MoneyFromInt(899),
		Stock:       20,
		Image:       "https://images.example.com/saffron.jpg",
		Featured:    true,
	}
}

func TestNewProduct(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("creates a product with trimmed fields", func(t *testing.T) {
		id := kernel.NewUUID()

		p, err := catalog.NewProduct(id, validDetails(), now)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, id, p.ID())
		assert.Equal(t, "Saffron Milk Cake", p.Name())
		assert.Equal(t, 20, p.Stock())
		assert.True(t, p.IsFeatured())
		assert.Equal(t, now, p.CreatedAt())
		assert.Equal(t, now, p.UpdatedAt())
	})

	t.Run("rejects blank required text", func(t *testing.T) {
		for _, field := range []string{"name", "description", "category", "image"} {
			details := validDetails()
			switch field {
			case "name":
				details.Name = "   "
			case "description":
				details.Description = ""
			case "category":
				details.Category = "\t"
			case "image":
				details.Image = ""
			}

			_, err := catalog.NewProduct(kernel.NewUUID(), details, now)

			require.Error(t, err, field)
			assert.ErrorIs(t, err, errs.ErrValueIsRequired)
			assert.Contains(t, err.Error(), field)
		}
	})

	t.Run("rejects negative stock", func(t *testing.T) {
		details := validDetails()
		details.Stock = -1

		_, err := catalog.NewProduct(kernel.NewUUID(), details, now)

		assert.ErrorIs(t, err, catalog.ErrNegativeStock)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("rejects a zero id", func(t *testing.T) {
		_, err := catalog.NewProduct(kernel.UUID{}, validDetails(), now)

		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestProduct_Validate(t *testing.T) {
	var p *catalog.Product
	assert.ErrorIs(t, p.Validate(), catalog.ErrProductIsNotConstructed)
	assert.ErrorIs(t, (&catalog.Product{}).Validate(), catalog.ErrProductIsNotConstructed)
}

func TestProduct_EnsureAvailable(t *testing.T) {
	p, err := catalog.NewProduct(kernel.NewUUID(), validDetails(), time.Now())
	require.NoError(t, err)

	require.NoError(t, p.EnsureAvailable(20))

	err = p.EnsureAvailable(21)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrConflict)
	assert.ErrorIs(t, err, catalog.ErrInsufficientStock)
	assert.Contains(t, err.Error(), "Saffron Milk Cake")
}

func TestProduct_Update(t *testing.T) {
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	edited := created.Add(time.Hour)

	t.Run("applies only supplied fields", func(t *testing.T) {
		p, err := catalog.NewProduct(kernel.NewUUID(), validDetails(), created)
		require.NoError(t, err)

		stock := 5
		price := kernel.MoneyFromInt(949)
		featured := false

		err = p.Update(catalog.Changes{Stock: &stock, Price: &price, Featured: &featured}, edited)

		require.NoError(t, err)
		assert.Equal(t, 5, p.Stock())
		assert.True(t, p.Price().IsEqual(price))
		assert.False(t, p.IsFeatured())
		assert.Equal(t, "Saffron Milk Cake", p.Name())
		assert.Equal(t, edited, p.UpdatedAt())
		assert.Equal(t, created, p.CreatedAt())
	})

	t.Run("leaves the product untouched on error", func(t *testing.T) {
		p, err := catalog.NewProduct(kernel.NewUUID(), validDetails(), created)
		require.NoError(t, err)

		stock := 3
		blank := " "
		err = p.Update(catalog.Changes{Stock: &stock, Name: &blank}, edited)

		require.Error(t, err)
		assert.Equal(t, 20, p.Stock())
		assert.Equal(t, created, p.UpdatedAt())
	})
}

func TestNewUnknownProductError(t *testing.T) {
	id := kernel.NewUUID()

	err := catalog.NewUnknownProductError(id)

	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.ErrorIs(t, err, catalog.ErrUnknownProduct)
	assert.Contains(t, err.Error(), id.String())
}
