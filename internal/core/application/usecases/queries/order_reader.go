package queries

import (
	"context"
	"database/sql"
	"strings"

	"bakery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const orderColumns = `
	id,
	user_id,
	subtotal,
	delivery_fee,
	total,
	payment_method,
	payment_status,
	order_status,
	shipping_full_name,
	shipping_phone,
	shipping_line1,
	shipping_line2,
	shipping_city,
	shipping_state,
	shipping_postal_code,
	shipping_notes,
	payment_transaction_note,
	payment_verified_at,
	payment_verified_by,
	created_at,
	updated_at`

// orderReader loads order views with their items in two round trips.
type orderReader struct {
	db *gorm.DB
}

// find returns orders matching the given conditions, newest first.
func (r orderReader) find(ctx context.Context, conditions []string, args ...any) ([]OrderView, error) {
	query := "SELECT" + orderColumns + "\nFROM orders"
	if len(conditions) > 0 {
		query += "\nWHERE " + strings.Join(conditions, " AND ")
	}
	query += "\nORDER BY created_at DESC, id"

	rows, err := r.db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderView, 0)
	index := make(map[uuid.UUID]int)
	for rows.Next() {
		view, rawID, scanErr := scanOrder(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		index[rawID] = len(orders)
		orders = append(orders, view)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return orders, nil
	}

	if err = r.attachItems(ctx, orders, index); err != nil {
		return nil, err
	}

	return orders, nil
}

func (r orderReader) attachItems(ctx context.Context, orders []OrderView, index map[uuid.UUID]int) error {
	ids := make([]uuid.UUID, 0, len(index))
	for id := range index {
		ids = append(ids, id)
	}

	rows, err := r.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			product_id,
			name,
			image,
			unit_price,
			quantity
		FROM order_items
		WHERE order_id IN ?
		ORDER BY order_id, position
	`, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderID, productID uuid.UUID
			item               OrderItemView
			price              decimal.Decimal
		)
		if err = rows.Scan(&orderID, &productID, &item.Name, &item.Image, &price, &item.Quantity); err != nil {
			return err
		}

		if item.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return err
		}
		item.Price = kernel.ClampedMoney(price)

		i := index[orderID]
		orders[i].Items = append(orders[i].Items, item)
	}

	return rows.Err()
}

func scanOrder(rows *sql.Rows) (OrderView, uuid.UUID, error) {
	var (
		view                 OrderView
		id, userID           uuid.UUID
		subtotal, fee, total decimal.Decimal
		verifiedAt           sql.NullTime
		verifiedBy           uuid.NullUUID
	)

	err := rows.Scan(
		&id,
		&userID,
		&subtotal,
		&fee,
		&total,
		&view.PaymentMethod,
		&view.PaymentStatus,
		&view.OrderStatus,
		&view.ShippingAddress.FullName,
		&view.ShippingAddress.Phone,
		&view.ShippingAddress.Line1,
		&view.ShippingAddress.Line2,
		&view.ShippingAddress.City,
		&view.ShippingAddress.State,
		&view.ShippingAddress.PostalCode,
		&view.ShippingAddress.Notes,
		&view.PaymentMeta.TransactionNote,
		&verifiedAt,
		&verifiedBy,
		&view.CreatedAt,
		&view.UpdatedAt,
	)
	if err != nil {
		return OrderView{}, uuid.Nil, err
	}

	if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return OrderView{}, uuid.Nil, err
	}
	if view.UserID, err = kernel.UUIDFromBytes(userID[:]); err != nil {
		return OrderView{}, uuid.Nil, err
	}

	view.Subtotal = kernel.ClampedMoney(subtotal)
	view.DeliveryFee = kernel.ClampedMoney(fee)
	view.Total = kernel.ClampedMoney(total)
	view.Items = make([]OrderItemView, 0)

	if verifiedAt.Valid {
		at := verifiedAt.Time
		view.PaymentMeta.VerifiedAt = &at
	}
	if verifiedBy.Valid {
		by, byErr := kernel.UUIDFromBytes(verifiedBy.UUID[:])
		if byErr != nil {
			return OrderView{}, uuid.Nil, byErr
		}
		view.PaymentMeta.VerifiedBy = &by
	}

	return view, id, nil
}
