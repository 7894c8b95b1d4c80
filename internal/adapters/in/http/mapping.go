package http

import (
	"bakery/internal/core/application/usecases/queries"
	"bakery/internal/generated/servers"
)

func toOrders(views []queries.OrderView) []servers.Order {
	orders := make([]servers.Order, 0, len(views))
	for _, v := range views {
		orders = append(orders, toOrder(v))
	}
	return orders
}

func toOrder(v queries.OrderView) servers.Order {
	items := make([]servers.OrderItem, 0, len(v.Items))
	for _, item := range v.Items {
		items = append(items, servers.OrderItem{
			Product:  item.ProductID.Bytes(),
			Name:     item.Name,
			Image:    item.Image,
			Price:    item.Price.Float64(),
			Quantity: item.Quantity,
		})
	}

	a := v.ShippingAddress
	meta := servers.PaymentMeta{
		TransactionNote: &v.PaymentMeta.TransactionNote,
		VerifiedAt:      v.PaymentMeta.VerifiedAt,
	}
	if v.PaymentMeta.VerifiedBy != nil {
		by := v.PaymentMeta.VerifiedBy.Bytes()
		meta.VerifiedBy = &by
	}

	return servers.Order{
		Id:    v.ID.Bytes(),
		User:  v.UserID.Bytes(),
		Items: items,
		ShippingAddress: servers.ShippingAddress{
			FullName:   &a.FullName,
			Phone:      &a.Phone,
			Line1:      &a.Line1,
			Line2:      &a.Line2,
			City:       &a.City,
			State:      &a.State,
			PostalCode: &a.PostalCode,
			Notes:      &a.Notes,
		},
		Subtotal:      v.Subtotal.Float64(),
		DeliveryFee:   v.DeliveryFee.Float64(),
		Total:         v.Total.Float64(),
		PaymentMethod: servers.OrderPaymentMethod(v.PaymentMethod),
		PaymentStatus: servers.OrderPaymentStatus(v.PaymentStatus),
		OrderStatus:   servers.OrderOrderStatus(v.OrderStatus),
		PaymentMeta:   meta,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

func toProduct(v queries.ProductView) servers.Product {
	return servers.Product{
		Id:          v.ID.Bytes(),
		Name:        v.Name,
		Description: v.Description,
		Category:    v.Category,
		Price:       v.Price.Float64(),
		Stock:       v.Stock,
		Image:       v.Image,
		Featured:    v.Featured,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

func toUPI(v queries.UPIView) servers.UPI {
	return servers.UPI{
		Enabled:      v.Enabled,
		UpiId:        v.UPIID,
		Phone:        v.Phone,
		QrImage:      v.QRImage,
		Instructions: v.Instructions,
	}
}

func toSettings(v queries.SettingsView) servers.Settings {
	return servers.Settings{
		SingletonKey: v.Key,
		Upi:          toUPI(v.UPI),
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}
