package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopmart/shopmart/internal/handler/http/mocks"
	"github.com/shopmart/shopmart/internal/middleware"
	"github.com/shopmart/shopmart/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testStoreID = uuid.MustParse("6f1f3f33-3a57-4f6e-9a7e-6f2b8c0d1e2f")
	testOrderID = uuid.MustParse("0d9a7f3c-8f1e-4b2a-b6d4-1c2e3f4a5b6c")
)

func requestWithOrderID(t *testing.T, method, target, body string, token *models.TokenPayload) *http.Request {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req, err := http.NewRequest(method, target, reader)
	require.NoError(t, err)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("orderID", testOrderID.String())

	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	if token != nil {
		ctx = context.WithValue(ctx, middleware.AuthPayloadKey, token)
	}

	return req.WithContext(ctx)
}

func TestOrderHandler_UpdateStatus(t *testing.T) {
	tests := []struct {
		name           string
		token          *models.TokenPayload
		body           string
		setup          func(t *testing.T) *mocks.MockOrderService
		wantStatusCode int
	}{
		{
			name:  "confirm_returns_200",
			token: &models.TokenPayload{StoreID: testStoreID},
			body:  `{"status":"confirmed"}`,
			setup: func(t *testing.T) *mocks.MockOrderService {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockOrderService(ctrl)
				svcMock.EXPECT().UpdateStatus(gomock.Any(), testStoreID, testOrderID, models.OrderStatusConfirmed, gomock.Nil()).Return(nil).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:  "ship_passes_tracking_info",
			token: &models.TokenPayload{StoreID: testStoreID},
			body:  `{"status":"shipped","shipping_partner":"BlueDart","tracking_number":"BD42"}`,
			setup: func(t *testing.T) *mocks.MockOrderService {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockOrderService(ctrl)
				svcMock.EXPECT().UpdateStatus(gomock.Any(), testStoreID, testOrderID, models.OrderStatusShipped, gomock.Not(gomock.Nil())).Return(nil).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:  "illegal_transition_returns_409",
			token: &models.TokenPayload{StoreID: testStoreID},
			body:  `{"status":"packed"}`,
			setup: func(t *testing.T) *mocks.MockOrderService {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockOrderService(ctrl)
				svcMock.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(models.ErrInvalidTransition).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusConflict,
		},
		{
			name:  "ship_without_tracking_returns_400",
			token: &models.TokenPayload{StoreID: testStoreID},
			body:  `{"status":"shipped"}`,
			setup: func(t *testing.T) *mocks.MockOrderService {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockOrderService(ctrl)
				svcMock.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(models.ErrValidation).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "unauthorized_returns_401",
			body: `{"status":"confirmed"}`,
			setup: func(t *testing.T) *mocks.MockOrderService {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockOrderService(ctrl)
				svcMock.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				return svcMock
			},
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:  "foreign_store_order_returns_404",
			token: &models.TokenPayload{StoreID: testStoreID},
			body:  `{"status":"confirmed"}`,
			setup: func(t *testing.T) *mocks.MockOrderService {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockOrderService(ctrl)
				svcMock.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(models.ErrDataNotFound).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := requestWithOrderID(t, http.MethodPost, "/api/orders/"+testOrderID.String()+"/status", tt.body, tt.token)
			w := httptest.NewRecorder()

			handler := NewOrderHandler(tt.setup(t))
			h := handler.UpdateStatus()
			h(w, req)

			res := w.Result()
			defer res.Body.Close()
			assert.Equal(t, tt.wantStatusCode, res.StatusCode)
		})
	}
}

func TestOrderHandler_MarkDelivered(t *testing.T) {
	tests := []struct {
		name           string
		token          *models.TokenPayload
		setup          func(t *testing.T) *mocks.MockOrderService
		wantStatusCode int
		wantBody       *deliveredResponse
	}{
		{
			name:  "delivered_returns_points_awarded",
			token: &models.TokenPayload{StoreID: testStoreID},
			setup: func(t *testing.T) *mocks.MockOrderService {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockOrderService(ctrl)
				svcMock.EXPECT().MarkDelivered(gomock.Any(), testStoreID, testOrderID).Return(int64(92), nil).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusOK,
			wantBody:       &deliveredResponse{Success: true, PointsAwarded: 92},
		},
		{
			// second submission of the same delivery is rejected, points are
			// not awarded again
			name:  "repeated_delivery_returns_409",
			token: &models.TokenPayload{StoreID: testStoreID},
			setup: func(t *testing.T) *mocks.MockOrderService {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockOrderService(ctrl)
				svcMock.EXPECT().MarkDelivered(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), models.ErrInvalidTransition).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusConflict,
		},
		{
			name: "unauthorized_returns_401",
			setup: func(t *testing.T) *mocks.MockOrderService {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockOrderService(ctrl)
				svcMock.EXPECT().MarkDelivered(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				return svcMock
			},
			wantStatusCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := requestWithOrderID(t, http.MethodPost, "/api/orders/"+testOrderID.String()+"/delivered", "", tt.token)
			w := httptest.NewRecorder()

			handler := NewOrderHandler(tt.setup(t))
			h := handler.MarkDelivered()
			h(w, req)

			res := w.Result()
			defer res.Body.Close()
			assert.Equal(t, tt.wantStatusCode, res.StatusCode)

			if tt.wantBody != nil {
				var got deliveredResponse
				require.NoError(t, json.NewDecoder(res.Body).Decode(&got))
				if diff := cmp.Diff(*tt.wantBody, got); diff != "" {
					t.Errorf("mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestOrderHandler_Cancel(t *testing.T) {
	tests := []struct {
		name           string
		token          *models.TokenPayload
		body           string
		setup          func(t *testing.T) *mocks.MockOrderService
		wantStatusCode int
		wantBody       *cancelResponse
	}{
		{
			name:  "cancel_paid_online_order_shows_refund_reminder",
			token: &models.TokenPayload{StoreID: testStoreID},
			body:  `{"reason":"Customer requested"}`,
			setup: func(t *testing.T) *mocks.MockOrderService {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockOrderService(ctrl)
				svcMock.EXPECT().Cancel(gomock.Any(), testStoreID, testOrderID, "Customer requested", gomock.Nil()).Return(true, nil).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusOK,
			wantBody:       &cancelResponse{Success: true, ShowRefundReminder: true},
		},
		{
			// no reason selected: rejected before anything changes
			name:  "cancel_without_reason_returns_400",
			token: &models.TokenPayload{StoreID: testStoreID},
			body:  `{"reason":""}`,
			setup: func(t *testing.T) *mocks.MockOrderService {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockOrderService(ctrl)
				svcMock.EXPECT().Cancel(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, models.ErrValidation).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:  "cancel_delivered_order_returns_409",
			token: &models.TokenPayload{StoreID: testStoreID},
			body:  `{"reason":"Other","note":"typo"}`,
			setup: func(t *testing.T) *mocks.MockOrderService {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockOrderService(ctrl)
				svcMock.EXPECT().Cancel(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, models.ErrInvalidTransition).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := requestWithOrderID(t, http.MethodPost, "/api/orders/"+testOrderID.String()+"/cancel", tt.body, tt.token)
			w := httptest.NewRecorder()

			handler := NewOrderHandler(tt.setup(t))
			h := handler.Cancel()
			h(w, req)

			res := w.Result()
			defer res.Body.Close()
			assert.Equal(t, tt.wantStatusCode, res.StatusCode)

			if tt.wantBody != nil {
				var got cancelResponse
				require.NoError(t, json.NewDecoder(res.Body).Decode(&got))
				if diff := cmp.Diff(*tt.wantBody, got); diff != "" {
					t.Errorf("mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestOrderHandler_MarkPaid(t *testing.T) {
	tests := []struct {
		name           string
		token          *models.TokenPayload
		setup          func(t *testing.T) *mocks.MockOrderService
		wantStatusCode int
	}{
		{
			name:  "unpaid_cod_order_marked_paid",
			token: &models.TokenPayload{StoreID: testStoreID},
			setup: func(t *testing.T) *mocks.MockOrderService {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockOrderService(ctrl)
				svcMock.EXPECT().MarkPaid(gomock.Any(), testStoreID, testOrderID).Return(nil).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:  "online_order_returns_409",
			token: &models.TokenPayload{StoreID: testStoreID},
			setup: func(t *testing.T) *mocks.MockOrderService {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockOrderService(ctrl)
				svcMock.EXPECT().MarkPaid(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.ErrInvalidTransition).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := requestWithOrderID(t, http.MethodPost, "/api/orders/"+testOrderID.String()+"/paid", "", tt.token)
			w := httptest.NewRecorder()

			handler := NewOrderHandler(tt.setup(t))
			h := handler.MarkPaid()
			h(w, req)

			res := w.Result()
			defer res.Body.Close()
			assert.Equal(t, tt.wantStatusCode, res.StatusCode)
		})
	}
}

func TestOrderHandler_ListStoreOrders(t *testing.T) {
	createdAt := time.Now()
	tests := []struct {
		name           string
		token          *models.TokenPayload
		setup          func(t *testing.T) *mocks.MockOrderService
		wantStatusCode int
		wantBody       []orderResponse
	}{
		{
			name:  "valid_request_return_200",
			token: &models.TokenPayload{StoreID: testStoreID},
			setup: func(t *testing.T) *mocks.MockOrderService {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockOrderService(ctrl)
				svcMock.EXPECT().ListStoreOrders(gomock.Any(), testStoreID).Return([]models.Order{
					{
						ID:            testOrderID,
						StoreID:       testStoreID,
						Status:        models.OrderStatusPending,
						PaymentMode:   models.PaymentModeCOD,
						PaymentStatus: models.PaymentStatusPending,
						Subtotal:      1000,
						TotalAmount:   920,
						DiscountAmount: 80,
						PointsRedeemed: 800,
						PointsToAward:  92,
						CreatedAt:      createdAt,
					},
				}, nil).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusOK,
			wantBody: []orderResponse{{
				ID:             testOrderID.String(),
				Status:         "pending",
				PaymentMode:    "cod",
				PaymentStatus:  "pending",
				Subtotal:       1000,
				TotalAmount:    920,
				DiscountAmount: 80,
				PointsRedeemed: 800,
				PointsToAward:  92,
				CreatedAt:      createdAt.Format(time.RFC3339),
			}},
		},
		{
			name:  "no_orders_returns_204",
			token: &models.TokenPayload{StoreID: testStoreID},
			setup: func(t *testing.T) *mocks.MockOrderService {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockOrderService(ctrl)
				svcMock.EXPECT().ListStoreOrders(gomock.Any(), gomock.Any()).Return([]models.Order{}, nil).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusNoContent,
		},
		{
			name: "unauthorized_returns_401",
			setup: func(t *testing.T) *mocks.MockOrderService {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockOrderService(ctrl)
				svcMock.EXPECT().ListStoreOrders(gomock.Any(), gomock.Any()).Times(0)
				return svcMock
			},
			wantStatusCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodGet, "/api/orders", nil)
			require.NoError(t, err)

			ctx := req.Context()
			if tt.token != nil {
				ctx = context.WithValue(ctx, middleware.AuthPayloadKey, tt.token)
			}

			w := httptest.NewRecorder()
			handler := NewOrderHandler(tt.setup(t))
			h := handler.ListStoreOrders()
			h(w, req.WithContext(ctx))

			res := w.Result()
			defer res.Body.Close()
			assert.Equal(t, tt.wantStatusCode, res.StatusCode)

			if tt.wantBody != nil {
				resBody, err := io.ReadAll(res.Body)
				require.NoError(t, err)

				var got []orderResponse
				require.NoError(t, json.Unmarshal(resBody, &got))

				if diff := cmp.Diff(tt.wantBody, got); diff != "" {
					t.Errorf("mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}
