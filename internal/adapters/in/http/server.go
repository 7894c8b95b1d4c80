package http

import (
	"log/slog"
	"net/http"
	"strings"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/application/usecases/queries"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/domain/model/settings"
	"bakery/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	CreateOrder       commands.CreateOrderCommandHandler
	UpdateOrder       commands.UpdateOrderCommandHandler
	CreateProduct     commands.CreateProductCommandHandler
	UpdateProduct     commands.UpdateProductCommandHandler
	UpdateUPISettings commands.UpdateUPISettingsCommandHandler

	GetOrder       queries.GetOrderQueryHandler
	ListMyOrders   queries.ListMyOrdersQueryHandler
	ListOrders     queries.ListOrdersQueryHandler
	ListProducts   queries.ListProductsQueryHandler
	ListCategories queries.ListCategoriesQueryHandler
	GetProduct     queries.GetProductQueryHandler
	GetSettings    queries.GetSettingsQueryHandler
}

type orderRecorder interface {
	OrderPlaced(paymentMethod string)
	OrderUpdated(orderStatus, paymentStatus string)
}

// Server implements servers.ServerInterface on top of the application use cases.
type Server struct {
	h        Handlers
	recorder orderRecorder
	logger   *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(h Handlers, recorder orderRecorder, logger *slog.Logger) *Server {
	return &Server{h: h, recorder: recorder, logger: logger.With("component", "http_server")}
}

type envelope struct {
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// GetHealth handles GET /api/health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]any{"ok": true, "service": "bakery-api"})
}

// CreateOrder handles POST /api/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, err := requireActor(ctx)
	if err != nil {
		return err
	}

	var body servers.CreateOrderJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return errInvalidBody
	}

	var items []commands.CreateOrderItem
	if body.Items != nil {
		items = make([]commands.CreateOrderItem, 0, len(*body.Items))
		for _, item := range *body.Items {
			items = append(items, commands.CreateOrderItem{
				ProductID: value(item.Product),
				Quantity:  value(item.Quantity),
			})
		}
	}

	var address order.AddressFields
	if a := body.ShippingAddress; a != nil {
		address = order.AddressFields{
			FullName:   value(a.FullName),
			Phone:      value(a.Phone),
			Line1:      value(a.Line1),
			Line2:      value(a.Line2),
			City:       value(a.City),
			State:      value(a.State),
			PostalCode: value(a.PostalCode),
			Notes:      value(a.Notes),
		}
	}

	var note string
	if body.PaymentMeta != nil {
		note = value(body.PaymentMeta.TransactionNote)
	}

	cmd, err := commands.NewCreateOrderCommand(
		actor, items, address, value(body.PaymentMethod), body.DeliveryFee, note,
	)
	if err != nil {
		return err
	}

	placed, err := s.h.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	s.recorder.OrderPlaced(placed.PaymentMethod().String())

	return ctx.JSON(http.StatusCreated, envelope{
		Data:    toOrder(queries.NewOrderView(placed)),
		Message: "Order placed successfully.",
	})
}

// ListMyOrders handles GET /api/orders/my.
func (s *Server) ListMyOrders(ctx echo.Context) error {
	actor, err := requireActor(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewListMyOrdersQuery(actor)
	if err != nil {
		return err
	}

	views, err := s.h.ListMyOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, envelope{Data: toOrders(views)})
}

// GetOrder handles GET /api/orders/{id}.
func (s *Server) GetOrder(ctx echo.Context, id servers.ID) error {
	actor, err := requireActor(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderQuery(id, actor)
	if err != nil {
		return err
	}

	view, err := s.h.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, envelope{Data: toOrder(view)})
}

// ListOrders handles GET /api/orders.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	actor, err := requireActor(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewListOrdersQuery(actor, value(params.Status), value(params.PaymentStatus))
	if err != nil {
		return err
	}

	views, err := s.h.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, envelope{Data: toOrders(views)})
}

// UpdateOrder handles PUT /api/orders/{id}. "status" is accepted as an
// alias of "orderStatus".
func (s *Server) UpdateOrder(ctx echo.Context, id servers.ID) error {
	actor, err := requireActor(ctx)
	if err != nil {
		return err
	}

	var body servers.UpdateOrderJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return errInvalidBody
	}

	orderStatus := body.OrderStatus
	if orderStatus == nil {
		orderStatus = body.Status
	}

	cmd, err := commands.NewUpdateOrderCommand(id, actor, orderStatus, body.PaymentStatus, body.TransactionNote)
	if err != nil {
		return err
	}
	return s.updateOrder(ctx, cmd, "Order updated.")
}

// UpdateOrderStatus handles PUT /api/orders/{id}/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context, id servers.ID) error {
	actor, err := requireActor(ctx)
	if err != nil {
		return err
	}

	var body servers.UpdateOrderStatusJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return errInvalidBody
	}

	status := value(body.OrderStatus)
	if strings.TrimSpace(status) == "" {
		status = value(body.Status)
	}

	cmd, err := commands.NewSetOrderStatusCommand(id, actor, status)
	if err != nil {
		return err
	}
	return s.updateOrder(ctx, cmd, "Order status updated.")
}

// UpdatePaymentStatus handles PUT /api/orders/{id}/payment.
func (s *Server) UpdatePaymentStatus(ctx echo.Context, id servers.ID) error {
	actor, err := requireActor(ctx)
	if err != nil {
		return err
	}

	var body servers.UpdatePaymentStatusJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return errInvalidBody
	}

	cmd, err := commands.NewSetPaymentStatusCommand(id, actor, value(body.PaymentStatus), body.TransactionNote)
	if err != nil {
		return err
	}
	return s.updateOrder(ctx, cmd, "Payment status updated.")
}

func (s *Server) updateOrder(ctx echo.Context, cmd commands.UpdateOrderCommand, message string) error {
	updated, err := s.h.UpdateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	view := queries.NewOrderView(updated)
	s.recorder.OrderUpdated(view.OrderStatus, view.PaymentStatus)

	return ctx.JSON(http.StatusOK, envelope{Data: toOrder(view), Message: message})
}

// ListProducts handles GET /api/products.
func (s *Server) ListProducts(ctx echo.Context, params servers.ListProductsParams) error {
	query := queries.NewListProductsQuery(value(params.Category), params.Featured)

	views, err := s.h.ListProducts.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	products := make([]servers.Product, 0, len(views))
	for _, v := range views {
		products = append(products, toProduct(v))
	}
	return ctx.JSON(http.StatusOK, envelope{Data: products})
}

// ListCategories handles GET /api/products/categories.
func (s *Server) ListCategories(ctx echo.Context) error {
	categories, err := s.h.ListCategories.Handle(ctx.Request().Context(), queries.NewListCategoriesQuery())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, envelope{Data: categories})
}

// GetProduct handles GET /api/products/{id}.
func (s *Server) GetProduct(ctx echo.Context, id servers.ID) error {
	query, err := queries.NewGetProductQuery(id)
	if err != nil {
		return err
	}

	view, err := s.h.GetProduct.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, envelope{Data: toProduct(view)})
}

// CreateProduct handles POST /api/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	actor, err := requireActor(ctx)
	if err != nil {
		return err
	}

	var body servers.CreateProductJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return errInvalidBody
	}

	cmd, err := commands.NewCreateProductCommand(actor, productFields(body))
	if err != nil {
		return err
	}

	created, err := s.h.CreateProduct.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, envelope{
		Data:    toProduct(queries.NewProductView(created)),
		Message: "Product created successfully.",
	})
}

// UpdateProduct handles PUT /api/products/{id}.
func (s *Server) UpdateProduct(ctx echo.Context, id servers.ID) error {
	actor, err := requireActor(ctx)
	if err != nil {
		return err
	}

	var body servers.UpdateProductJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return errInvalidBody
	}

	cmd, err := commands.NewUpdateProductCommand(id, actor, productFields(body))
	if err != nil {
		return err
	}

	updated, err := s.h.UpdateProduct.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, envelope{
		Data:    toProduct(queries.NewProductView(updated)),
		Message: "Product updated successfully.",
	})
}

// GetPublicSettings handles GET /api/settings/public.
func (s *Server) GetPublicSettings(ctx echo.Context) error {
	view, err := s.h.GetSettings.Handle(ctx.Request().Context(), queries.NewPublicSettingsQuery())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, envelope{Data: servers.PublicSettings{Upi: toUPI(view.UPI)}})
}

// GetSettings handles GET /api/settings.
func (s *Server) GetSettings(ctx echo.Context) error {
	actor, err := requireActor(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewAdminSettingsQuery(actor)
	if err != nil {
		return err
	}

	view, err := s.h.GetSettings.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, envelope{Data: toSettings(view)})
}

// UpdateUPISettings handles PUT /api/settings/upi.
func (s *Server) UpdateUPISettings(ctx echo.Context) error {
	actor, err := requireActor(ctx)
	if err != nil {
		return err
	}

	var body servers.UpdateUPISettingsJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return errInvalidBody
	}

	cmd, err := commands.NewUpdateUPISettingsCommand(actor, settings.UPIChanges{
		Enabled:      body.Enabled,
		UPIID:        body.UpiId,
		Phone:        body.Phone,
		QRImage:      body.QrImage,
		Instructions: body.Instructions,
	})
	if err != nil {
		return err
	}

	updated, err := s.h.UpdateUPISettings.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, envelope{
		Data:    toSettings(queries.NewSettingsView(updated)),
		Message: "UPI settings updated successfully.",
	})
}

func productFields(body servers.ProductInput) commands.ProductFields {
	return commands.ProductFields{
		Name:        body.Name,
		Description: body.Description,
		Category:    body.Category,
		Price:       body.Price,
		Stock:       body.Stock,
		Image:       body.Image,
		Featured:    body.Featured,
	}
}

func value[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
