package commands

import (
	"context"
	"time"

	"bakery/internal/core/domain/model/catalog"
)

type UpdateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

func NewUpdateProductCommandHandler(uowFactory ProductUoWFactory) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{uowFactory: uowFactory}
}

func (h UpdateProductCommandHandler) Handle(ctx context.Context, cmd UpdateProductCommand) (*catalog.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ProductRepository()
	product, err := repo.Get(ctx, cmd.ProductID())
	if err != nil {
		return nil, err
	}

	if err = product.Update(cmd.Changes(), time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, product); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return product, nil
}
