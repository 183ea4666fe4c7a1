// Package checkout turns the cart into a sales order.
package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/device-management-toolkit/storefront/internal/entity"
	"github.com/device-management-toolkit/storefront/internal/rpc"
	"github.com/device-management-toolkit/storefront/pkg/apperrors"
	"github.com/device-management-toolkit/storefront/pkg/logger"
)

var (
	ErrCheckoutUseCase = apperrors.CreateAppError("CheckoutUseCase")

	// ErrEmptyCart is returned when there is nothing to order.
	ErrEmptyCart = errors.New("cart is empty")
)

// UseCase -.
type UseCase struct {
	repo    Repository
	session Session
	cart    Cart
	log     logger.Interface
	// onPlaced runs after an order is created, e.g. to drop cached stock levels.
	onPlaced func()
}

var _ Feature = (*UseCase)(nil)

// New -.
func New(repo Repository, session Session, cart Cart, log logger.Interface, onPlaced func()) *UseCase {
	if onPlaced == nil {
		onPlaced = func() {}
	}

	return &UseCase{
		repo:     repo,
		session:  session,
		cart:     cart,
		log:      log,
		onPlaced: onPlaced,
	}
}

// OrderPlacedError reports a failure after the sales order was created. The
// order exists in the ERP and the cart has already been cleared, so the
// caller must not retry the checkout.
type OrderPlacedError struct {
	OrderID int
	Err     error
}

func (e *OrderPlacedError) Error() string {
	return fmt.Sprintf("order %d placed: %v", e.OrderID, e.Err)
}

func (e *OrderPlacedError) Unwrap() error {
	return e.Err
}

// PlaceOrder orders the cart for the logged-in user, confirming it when
// asked. The cart is cleared as soon as the order is created. A confirm or
// read-back failure after that point returns the best known order together
// with an *OrderPlacedError.
func (uc *UseCase) PlaceOrder(ctx context.Context, confirm bool) (*entity.Order, error) {
	if uc.cart.IsEmpty() {
		return nil, ErrCheckoutUseCase.Wrap("PlaceOrder", "uc.cart.IsEmpty", ErrEmptyCart)
	}

	info, ok := uc.session.SessionInfo()
	if !ok {
		return nil, ErrCheckoutUseCase.Wrap("PlaceOrder", "uc.session.SessionInfo", rpc.ErrNotAuthenticated)
	}

	orderID, err := uc.repo.CreateSalesOrder(ctx, info.UserID, uc.cart.ToOrderLines())
	if err != nil {
		return nil, ErrCheckoutUseCase.Wrap("PlaceOrder", "uc.repo.CreateSalesOrder", err)
	}

	// the order exists from here on; a failed write only loses the mirror
	if err := uc.cart.Clear(); err != nil {
		uc.log.Warn("checkout - order %d placed but cart could not be cleared: %v", orderID, err)
	}

	uc.onPlaced()
	uc.log.Info("checkout - order %d placed for uid %d", orderID, info.UserID)

	var (
		failedCall string
		failure    error
	)

	if confirm {
		if _, err := uc.repo.ConfirmSalesOrder(ctx, orderID); err != nil {
			uc.log.Warn("checkout - order %d not confirmed: %v", orderID, err)

			failedCall, failure = "uc.repo.ConfirmSalesOrder", err
		}
	}

	order, err := uc.repo.GetSalesOrder(ctx, orderID)
	if err != nil && failure == nil {
		failedCall, failure = "uc.repo.GetSalesOrder", err
	}

	if order == nil {
		order = &entity.Order{ID: orderID}
	}

	if failure != nil {
		return order, ErrCheckoutUseCase.Wrap("PlaceOrder", failedCall, &OrderPlacedError{OrderID: orderID, Err: failure})
	}

	return order, nil
}
