package commands

import (
	"context"
	"time"

	"bakery/internal/core/domain/model/catalog"
)

type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

func NewCreateProductCommandHandler(uowFactory ProductUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{uowFactory: uowFactory}
}

func (h CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) (*catalog.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	product, err := catalog.NewProduct(cmd.ProductID(), cmd.Details(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ProductRepository().Add(ctx, product); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return product, nil
}
