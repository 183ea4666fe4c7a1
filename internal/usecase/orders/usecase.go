// Package orders reads and confirms sales orders.
package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/device-management-toolkit/storefront/internal/entity"
	"github.com/device-management-toolkit/storefront/pkg/apperrors"
	"github.com/device-management-toolkit/storefront/pkg/logger"
)

var (
	ErrOrdersUseCase = apperrors.CreateAppError("OrdersUseCase")

	// ErrNotFound is returned when no order has the requested id.
	ErrNotFound = errors.New("order not found")
	// ErrInvalidState is returned for a state filter the ERP does not know.
	ErrInvalidState = errors.New("invalid order state")
)

// UseCase -.
type UseCase struct {
	repo Repository
	log  logger.Interface
}

var _ Feature = (*UseCase)(nil)

// New -.
func New(repo Repository, log logger.Interface) *UseCase {
	return &UseCase{
		repo: repo,
		log:  log,
	}
}

// List returns orders, optionally only those in state.
func (uc *UseCase) List(ctx context.Context, state entity.OrderState, limit int) ([]entity.Order, error) {
	if state != "" && !state.Valid() {
		return nil, ErrOrdersUseCase.Wrap("List", "state.Valid", fmt.Errorf("%w: %q", ErrInvalidState, state))
	}

	orders, err := uc.repo.GetSalesOrders(ctx, state, limit)
	if err != nil {
		return nil, ErrOrdersUseCase.Wrap("List", "uc.repo.GetSalesOrders", err)
	}

	return orders, nil
}

// Get returns one order or ErrNotFound.
func (uc *UseCase) Get(ctx context.Context, orderID int) (*entity.Order, error) {
	order, err := uc.repo.GetSalesOrder(ctx, orderID)
	if err != nil {
		return nil, ErrOrdersUseCase.Wrap("Get", "uc.repo.GetSalesOrder", err)
	}

	if order == nil {
		return nil, ErrOrdersUseCase.Wrap("Get", "uc.repo.GetSalesOrder", ErrNotFound)
	}

	return order, nil
}

// Lines returns the lines of an order.
func (uc *UseCase) Lines(ctx context.Context, orderID int) ([]entity.OrderLineRecord, error) {
	lines, err := uc.repo.GetOrderLines(ctx, orderID)
	if err != nil {
		return nil, ErrOrdersUseCase.Wrap("Lines", "uc.repo.GetOrderLines", err)
	}

	return lines, nil
}

// Confirm confirms an order and returns it as the ERP now reports it.
func (uc *UseCase) Confirm(ctx context.Context, orderID int) (*entity.Order, error) {
	if _, err := uc.repo.ConfirmSalesOrder(ctx, orderID); err != nil {
		return nil, ErrOrdersUseCase.Wrap("Confirm", "uc.repo.ConfirmSalesOrder", err)
	}

	return uc.Get(ctx, orderID)
}
