package checkout_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/device-management-toolkit/storefront/internal/cart"
	"github.com/device-management-toolkit/storefront/internal/entity"
	"github.com/device-management-toolkit/storefront/internal/mocks"
	"github.com/device-management-toolkit/storefront/internal/rpc"
	"github.com/device-management-toolkit/storefront/internal/usecase/checkout"
	"github.com/device-management-toolkit/storefront/pkg/apperrors"
	"github.com/device-management-toolkit/storefront/pkg/kvstore/memory"
	"github.com/device-management-toolkit/storefront/pkg/logger"
)

var errRemote = &rpc.Error{Kind: rpc.KindRemote, Message: "Missing required fields"}

type checkoutTest struct {
	name    string
	confirm bool
	mock    func(*mocks.MockCheckoutRepository, *mocks.MockCheckoutSession, *mocks.MockCheckoutCart)
	res     *entity.Order
	err     error
}

var lines = []entity.OrderLine{{ProductID: 7, Quantity: 5, PriceUnit: 9.99, Name: "Desk"}}

func TestPlaceOrder(t *testing.T) {
	t.Parallel()

	placed := &entity.Order{ID: 12, Name: "S00012", State: entity.OrderStateDraft}
	confirmed := &entity.Order{ID: 12, Name: "S00012", State: entity.OrderStateConfirmed}

	tests := []checkoutTest{
		{
			name: "empty cart",
			mock: func(_ *mocks.MockCheckoutRepository, _ *mocks.MockCheckoutSession, c *mocks.MockCheckoutCart) {
				c.EXPECT().IsEmpty().Return(true)
			},
			err: checkout.ErrEmptyCart,
		},
		{
			name: "not authenticated",
			mock: func(_ *mocks.MockCheckoutRepository, s *mocks.MockCheckoutSession, c *mocks.MockCheckoutCart) {
				c.EXPECT().IsEmpty().Return(false)
				s.EXPECT().SessionInfo().Return(entity.SessionInfo{}, false)
			},
			err: rpc.ErrNotAuthenticated,
		},
		{
			name: "draft order",
			mock: func(r *mocks.MockCheckoutRepository, s *mocks.MockCheckoutSession, c *mocks.MockCheckoutCart) {
				c.EXPECT().IsEmpty().Return(false)
				s.EXPECT().SessionInfo().Return(entity.SessionInfo{UserID: 2}, true)
				c.EXPECT().ToOrderLines().Return(lines)
				r.EXPECT().CreateSalesOrder(context.Background(), 2, lines).Return(12, nil)
				r.EXPECT().GetSalesOrder(context.Background(), 12).Return(placed, nil)
				c.EXPECT().Clear().Return(nil)
			},
			res: placed,
		},
		{
			name:    "confirmed order",
			confirm: true,
			mock: func(r *mocks.MockCheckoutRepository, s *mocks.MockCheckoutSession, c *mocks.MockCheckoutCart) {
				c.EXPECT().IsEmpty().Return(false)
				s.EXPECT().SessionInfo().Return(entity.SessionInfo{UserID: 2}, true)
				c.EXPECT().ToOrderLines().Return(lines)
				gomock.InOrder(
					r.EXPECT().CreateSalesOrder(context.Background(), 2, lines).Return(12, nil),
					r.EXPECT().ConfirmSalesOrder(context.Background(), 12).Return(true, nil),
					r.EXPECT().GetSalesOrder(context.Background(), 12).Return(confirmed, nil),
				)
				c.EXPECT().Clear().Return(nil)
			},
			res: confirmed,
		},
		{
			name: "order vanished after create",
			mock: func(r *mocks.MockCheckoutRepository, s *mocks.MockCheckoutSession, c *mocks.MockCheckoutCart) {
				c.EXPECT().IsEmpty().Return(false)
				s.EXPECT().SessionInfo().Return(entity.SessionInfo{UserID: 2}, true)
				c.EXPECT().ToOrderLines().Return(lines)
				r.EXPECT().CreateSalesOrder(context.Background(), 2, lines).Return(12, nil)
				r.EXPECT().GetSalesOrder(context.Background(), 12).Return(nil, nil)
				c.EXPECT().Clear().Return(errors.New("disk full"))
			},
			res: &entity.Order{ID: 12},
		},
		{
			name: "create fails keeps cart",
			mock: func(r *mocks.MockCheckoutRepository, s *mocks.MockCheckoutSession, c *mocks.MockCheckoutCart) {
				c.EXPECT().IsEmpty().Return(false)
				s.EXPECT().SessionInfo().Return(entity.SessionInfo{UserID: 2}, true)
				c.EXPECT().ToOrderLines().Return(lines)
				r.EXPECT().CreateSalesOrder(context.Background(), 2, lines).Return(0, errRemote)
			},
			err: errRemote,
		},
		{
			name:    "confirm fails after create",
			confirm: true,
			mock: func(r *mocks.MockCheckoutRepository, s *mocks.MockCheckoutSession, c *mocks.MockCheckoutCart) {
				c.EXPECT().IsEmpty().Return(false)
				s.EXPECT().SessionInfo().Return(entity.SessionInfo{UserID: 2}, true)
				c.EXPECT().ToOrderLines().Return(lines)
				gomock.InOrder(
					r.EXPECT().CreateSalesOrder(context.Background(), 2, lines).Return(12, nil),
					c.EXPECT().Clear().Return(nil),
					r.EXPECT().ConfirmSalesOrder(context.Background(), 12).Return(false, errRemote),
					r.EXPECT().GetSalesOrder(context.Background(), 12).Return(placed, nil),
				)
			},
			res: placed,
			err: errRemote,
		},
		{
			name: "read back fails after create",
			mock: func(r *mocks.MockCheckoutRepository, s *mocks.MockCheckoutSession, c *mocks.MockCheckoutCart) {
				c.EXPECT().IsEmpty().Return(false)
				s.EXPECT().SessionInfo().Return(entity.SessionInfo{UserID: 2}, true)
				c.EXPECT().ToOrderLines().Return(lines)
				r.EXPECT().CreateSalesOrder(context.Background(), 2, lines).Return(12, nil)
				c.EXPECT().Clear().Return(nil)
				r.EXPECT().GetSalesOrder(context.Background(), 12).Return(nil, errRemote)
			},
			res: &entity.Order{ID: 12},
			err: errRemote,
		},
		{
			name:    "confirm and read back both fail",
			confirm: true,
			mock: func(r *mocks.MockCheckoutRepository, s *mocks.MockCheckoutSession, c *mocks.MockCheckoutCart) {
				c.EXPECT().IsEmpty().Return(false)
				s.EXPECT().SessionInfo().Return(entity.SessionInfo{UserID: 2}, true)
				c.EXPECT().ToOrderLines().Return(lines)
				r.EXPECT().CreateSalesOrder(context.Background(), 2, lines).Return(12, nil)
				c.EXPECT().Clear().Return(nil)
				r.EXPECT().ConfirmSalesOrder(context.Background(), 12).Return(false, errRemote)
				r.EXPECT().GetSalesOrder(context.Background(), 12).Return(nil, errors.New("timeout"))
			},
			res: &entity.Order{ID: 12},
			err: errRemote,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockCtl := gomock.NewController(t)

			repo := mocks.NewMockCheckoutRepository(mockCtl)
			sess := mocks.NewMockCheckoutSession(mockCtl)
			cartMock := mocks.NewMockCheckoutCart(mockCtl)

			tc.mock(repo, sess, cartMock)

			placedHook := 0
			uc := checkout.New(repo, sess, cartMock, logger.New("error"), func() { placedHook++ })

			res, err := uc.PlaceOrder(context.Background(), tc.confirm)

			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)

				var appErr apperrors.InternalError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, "PlaceOrder", appErr.Function)

				var placedErr *checkout.OrderPlacedError
				if tc.res == nil {
					assert.Nil(t, res)
					assert.False(t, errors.As(err, &placedErr))
					assert.Zero(t, placedHook)

					return
				}

				require.ErrorAs(t, err, &placedErr)
				assert.Equal(t, 12, placedErr.OrderID)
				assert.Equal(t, tc.res, res)
				assert.Equal(t, 1, placedHook)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.res, res)
			assert.Equal(t, 1, placedHook)
		})
	}
}

func TestPlaceOrder_RetryAfterFailureDoesNotReorder(t *testing.T) {
	t.Parallel()

	mockCtl := gomock.NewController(t)

	repo := mocks.NewMockCheckoutRepository(mockCtl)
	sess := mocks.NewMockCheckoutSession(mockCtl)

	store := memory.New(0)
	log := logger.New("error")

	c, err := cart.New(store, log)
	require.NoError(t, err)
	require.NoError(t, c.AddItem(entity.Product{ID: 7, Name: "Desk", ListPrice: 9.99}, 5))

	sess.EXPECT().SessionInfo().Return(entity.SessionInfo{UserID: 2}, true)
	repo.EXPECT().CreateSalesOrder(gomock.Any(), 2, gomock.Any()).Return(12, nil).Times(1)
	repo.EXPECT().ConfirmSalesOrder(gomock.Any(), 12).Return(false, errRemote)
	repo.EXPECT().GetSalesOrder(gomock.Any(), 12).Return(nil, errRemote)

	uc := checkout.New(repo, sess, c, log, nil)

	res, err := uc.PlaceOrder(context.Background(), true)
	require.Error(t, err)
	require.NotNil(t, res)
	assert.Equal(t, 12, res.ID)

	// the cart mirror is empty too, so a restart does not bring the lines back
	reloaded, err := cart.New(store, log)
	require.NoError(t, err)
	assert.True(t, reloaded.IsEmpty())

	_, err = uc.PlaceOrder(context.Background(), true)
	require.ErrorIs(t, err, checkout.ErrEmptyCart)
}
