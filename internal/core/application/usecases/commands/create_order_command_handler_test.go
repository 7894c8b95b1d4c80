package commands_test

import (
	"errors"
	"testing"
	"time"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/domain/model/catalog"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/domain/model/settings"
	"bakery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPlacementCommand(t *testing.T, method string, lines ...commands.CreateOrderItem) commands.CreateOrderCommand {
	t.Helper()
	cmd, err := commands.NewCreateOrderCommand(newCustomer(t), lines, address(), method, nil, "")
	require.NoError(t, err)
	return cmd
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cake := newProduct(t, "Saffron Milk Cake", 899, 20)
	cookies := newProduct(t, "Orange Zest Cookies", 199, 60)
	cmd := newPlacementCommand(t, "COD",
		commands.CreateOrderItem{ProductID: cake.ID().String(), Quantity: 1},
		commands.CreateOrderItem{ProductID: cookies.ID().String(), Quantity: 2},
	)

	// stock is taken in product id order
	first, second := cake, cookies
	firstQty, secondQty := 1, 2
	if cookies.ID().Compare(cake.ID()) < 0 {
		first, second = cookies, cake
		firstQty, secondQty = 2, 1
	}

	products := new(MockProductRepository)
	orders := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(products).Once(),
		products.On("GetMany", ctx, []kernel.UUID{cake.ID(), cookies.ID()}).
			Return([]*catalog.Product{cake, cookies}, nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		products.On("DecrementStock", ctx, first.ID(), firstQty).Return(nil).Once(),
		products.On("DecrementStock", ctx, second.ID(), secondQty).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPlacementUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	placed, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, cmd.OrderID(), placed.ID())
	assert.Equal(t, "1297.00", placed.Subtotal().String())
	assert.Equal(t, "49.00", placed.DeliveryFee().String())
	assert.Equal(t, "1346.00", placed.Total().String())
	assert.Equal(t, order.PaymentPending, placed.PaymentStatus())
	assert.Equal(t, order.StatusPending, placed.Status())

	products.AssertExpectations(t)
	orders.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_DuplicateLinesDecrementOnce(t *testing.T) {
	ctx := t.Context()
	cake := newProduct(t, "Mango Velvet Cake", 949, 5)
	cmd := newPlacementCommand(t, "COD",
		commands.CreateOrderItem{ProductID: cake.ID().String(), Quantity: 2},
		commands.CreateOrderItem{ProductID: cake.ID().String(), Quantity: 3},
	)

	products := new(MockProductRepository)
	orders := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProductRepository").Return(products).Once()
	uow.On("OrderRepository").Return(orders).Once()
	products.On("GetMany", ctx, []kernel.UUID{cake.ID()}).Return([]*catalog.Product{cake}, nil).Once()
	orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	products.On("DecrementStock", ctx, cake.ID(), 5).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockPlacementUoWFactory)
	factory.On("Create").Return(uow).Once()

	placed, err := commands.NewCreateOrderCommandHandler(factory).Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Len(t, placed.Items(), 2)

	products.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_UPIEnabled(t *testing.T) {
	ctx := t.Context()
	cookies := newProduct(t, "Choco Chunk Cookies", 229, 52)
	cmd := newPlacementCommand(t, "UPI", commands.CreateOrderItem{ProductID: cookies.ID().String(), Quantity: 1})

	store := new(MockSettingsRepository)
	products := new(MockProductRepository)
	orders := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SettingsRepository").Return(store).Once(),
		store.On("Get", ctx).Return(settings.Default(time.Now()), nil).Once(),
		uow.On("ProductRepository").Return(products).Once(),
		products.On("GetMany", ctx, []kernel.UUID{cookies.ID()}).Return([]*catalog.Product{cookies}, nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		products.On("DecrementStock", ctx, cookies.ID(), 1).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPlacementUoWFactory)
	factory.On("Create").Return(uow).Once()

	placed, err := commands.NewCreateOrderCommandHandler(factory).Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.MethodUPI, placed.PaymentMethod())
	assert.Equal(t, order.PaymentPendingVerification, placed.PaymentStatus())

	store.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_UPIDisabled(t *testing.T) {
	ctx := t.Context()
	cmd := newPlacementCommand(t, "UPI", commands.CreateOrderItem{ProductID: kernel.NewUUID().String(), Quantity: 1})

	disabled := settings.RestoreSettings(false, "", "", "", settings.DefaultInstructions, time.Now(), time.Now())
	store := new(MockSettingsRepository)
	store.On("Get", ctx).Return(disabled, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("SettingsRepository").Return(store).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockPlacementUoWFactory)
	factory.On("Create").Return(uow).Once()

	_, err := commands.NewCreateOrderCommandHandler(factory).Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, settings.ErrPaymentMethodUnavailable)
	uow.AssertNotCalled(t, "ProductRepository")
	uow.AssertNotCalled(t, "Commit", ctx)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_UnknownProduct(t *testing.T) {
	ctx := t.Context()
	cake := newProduct(t, "Belgian Chocolate Truffle", 1049, 16)
	missing := kernel.NewUUID()
	cmd := newPlacementCommand(t, "COD",
		commands.CreateOrderItem{ProductID: cake.ID().String(), Quantity: 1},
		commands.CreateOrderItem{ProductID: missing.String(), Quantity: 1},
	)

	products := new(MockProductRepository)
	products.On("GetMany", ctx, []kernel.UUID{cake.ID(), missing}).Return([]*catalog.Product{cake}, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProductRepository").Return(products).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockPlacementUoWFactory)
	factory.On("Create").Return(uow).Once()

	_, err := commands.NewCreateOrderCommandHandler(factory).Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.ErrUnknownProduct)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "OrderRepository")
	products.AssertNotCalled(t, "DecrementStock", mock.Anything, mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_InsufficientStock(t *testing.T) {
	ctx := t.Context()
	puff := newProduct(t, "Paneer Puff Masala", 129, 2)
	cmd := newPlacementCommand(t, "COD", commands.CreateOrderItem{ProductID: puff.ID().String(), Quantity: 3})

	products := new(MockProductRepository)
	products.On("GetMany", ctx, []kernel.UUID{puff.ID()}).Return([]*catalog.Product{puff}, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProductRepository").Return(products).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockPlacementUoWFactory)
	factory.On("Create").Return(uow).Once()

	_, err := commands.NewCreateOrderCommandHandler(factory).Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.ErrInsufficientStock)
	assert.ErrorIs(t, err, errs.ErrConflict)
	assert.Contains(t, err.Error(), "Paneer Puff Masala")
	uow.AssertNotCalled(t, "OrderRepository")
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_LostStockRace(t *testing.T) {
	ctx := t.Context()
	loaf := newProduct(t, "Multigrain Loaf", 219, 1)
	cmd := newPlacementCommand(t, "COD", commands.CreateOrderItem{ProductID: loaf.ID().String(), Quantity: 1})

	products := new(MockProductRepository)
	orders := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(products).Once(),
		products.On("GetMany", ctx, []kernel.UUID{loaf.ID()}).Return([]*catalog.Product{loaf}, nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		products.On("DecrementStock", ctx, loaf.ID(), 1).
			Return(errs.NewConflictErrorWithCause("stock", catalog.ErrInsufficientStock)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPlacementUoWFactory)
	factory.On("Create").Return(uow).Once()

	_, err := commands.NewCreateOrderCommandHandler(factory).Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.ErrInsufficientStock)
	assert.Contains(t, err.Error(), "Multigrain Loaf")
	uow.AssertNotCalled(t, "Commit", ctx)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	roll := newProduct(t, "Almond Cinnamon Roll", 189, 32)
	cmd := newPlacementCommand(t, "COD", commands.CreateOrderItem{ProductID: roll.ID().String(), Quantity: 1})

	products := new(MockProductRepository)
	products.On("GetMany", ctx, []kernel.UUID{roll.ID()}).Return([]*catalog.Product{roll}, nil).Once()
	orders := new(MockOrderRepository)
	orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(errors.New("add error")).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProductRepository").Return(products).Once()
	uow.On("OrderRepository").Return(orders).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockPlacementUoWFactory)
	factory.On("Create").Return(uow).Once()

	_, err := commands.NewCreateOrderCommandHandler(factory).Handle(ctx, cmd)
	require.EqualError(t, err, "add error")
	products.AssertNotCalled(t, "DecrementStock", mock.Anything, mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockPlacementUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory)

	_, err := h.Handle(t.Context(), commands.CreateOrderCommand{})
	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd := newPlacementCommand(t, "COD", commands.CreateOrderItem{ProductID: kernel.NewUUID().String(), Quantity: 1})

	uow := new(MockUoW)
	factory := new(MockPlacementUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	_, err := commands.NewCreateOrderCommandHandler(factory).Handle(ctx, cmd)
	require.EqualError(t, err, "begin error")
	uow.AssertExpectations(t)
}
