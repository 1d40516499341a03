package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/shopmart/shopmart/internal/handler/http/mocks"
	"github.com/shopmart/shopmart/internal/middleware"
	"github.com/shopmart/shopmart/internal/models"
	"github.com/shopmart/shopmart/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestWithCustomerID(t *testing.T, method, target, body string, token *models.TokenPayload) *http.Request {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req, err := http.NewRequest(method, target, reader)
	require.NoError(t, err)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("customerID", testCustomerID.String())

	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	if token != nil {
		ctx = context.WithValue(ctx, middleware.AuthPayloadKey, token)
	}

	return req.WithContext(ctx)
}

func TestCustomerHandler_AddLoyaltyTransaction(t *testing.T) {
	tests := []struct {
		name           string
		token          *models.TokenPayload
		body           string
		setup          func(t *testing.T) *mocks.MockCustomerService
		wantStatusCode int
		wantBody       *loyaltyResponse
	}{
		{
			name:  "manual_earn_returns_new_balance",
			token: &models.TokenPayload{StoreID: testStoreID},
			body:  `{"type":"earned","points":50,"note":"goodwill"}`,
			setup: func(t *testing.T) *mocks.MockCustomerService {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockCustomerService(ctrl)
				svcMock.EXPECT().AddLoyaltyTransaction(gomock.Any(), testStoreID, testCustomerID, "earned", int64(50), gomock.Any()).Return(int64(150), nil).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusOK,
			wantBody:       &loyaltyResponse{Success: true, NewBalance: 150},
		},
		{
			name:  "redeem_overdraw_returns_422",
			token: &models.TokenPayload{StoreID: testStoreID},
			body:  `{"type":"redeemed","points":5000}`,
			setup: func(t *testing.T) *mocks.MockCustomerService {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockCustomerService(ctrl)
				svcMock.EXPECT().AddLoyaltyTransaction(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), models.ErrInsufficientBalance).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:  "unknown_type_returns_400",
			token: &models.TokenPayload{StoreID: testStoreID},
			body:  `{"type":"gifted","points":10}`,
			setup: func(t *testing.T) *mocks.MockCustomerService {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockCustomerService(ctrl)
				svcMock.EXPECT().AddLoyaltyTransaction(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), models.ErrValidation).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "unauthorized_returns_401",
			body: `{"type":"earned","points":50}`,
			setup: func(t *testing.T) *mocks.MockCustomerService {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockCustomerService(ctrl)
				svcMock.EXPECT().AddLoyaltyTransaction(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				return svcMock
			},
			wantStatusCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := requestWithCustomerID(t, http.MethodPost, "/api/customers/"+testCustomerID.String()+"/loyalty", tt.body, tt.token)
			w := httptest.NewRecorder()

			handler := NewCustomerHandler(tt.setup(t))
			h := handler.AddLoyaltyTransaction()
			h(w, req)

			res := w.Result()
			defer res.Body.Close()
			assert.Equal(t, tt.wantStatusCode, res.StatusCode)

			if tt.wantBody != nil {
				var got loyaltyResponse
				require.NoError(t, json.NewDecoder(res.Body).Decode(&got))
				if diff := cmp.Diff(*tt.wantBody, got); diff != "" {
					t.Errorf("mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestCustomerHandler_GetCustomer(t *testing.T) {
	tests := []struct {
		name           string
		token          *models.TokenPayload
		setup          func(t *testing.T) *mocks.MockCustomerService
		wantStatusCode int
		wantBody       *customerResponse
	}{
		{
			name:  "customer_with_derived_tag",
			token: &models.TokenPayload{StoreID: testStoreID},
			setup: func(t *testing.T) *mocks.MockCustomerService {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockCustomerService(ctrl)
				svcMock.EXPECT().GetCustomer(gomock.Any(), testStoreID, testCustomerID).Return(&service.CustomerWithTag{
					Customer: models.Customer{
						ID:            testCustomerID,
						StoreID:       testStoreID,
						Name:          "Asha",
						LoyaltyPoints: 120,
						OrderCount:    12,
						TotalSpend:    15400,
					},
					Tag: models.TagVIP,
				}, nil).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusOK,
			wantBody: &customerResponse{
				ID:            testCustomerID.String(),
				Name:          "Asha",
				LoyaltyPoints: 120,
				Tag:           "VIP",
				OrderCount:    12,
				TotalSpend:    15400,
			},
		},
		{
			name:  "foreign_customer_returns_404",
			token: &models.TokenPayload{StoreID: testStoreID},
			setup: func(t *testing.T) *mocks.MockCustomerService {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockCustomerService(ctrl)
				svcMock.EXPECT().GetCustomer(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, models.ErrDataNotFound).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := requestWithCustomerID(t, http.MethodGet, "/api/customers/"+testCustomerID.String(), "", tt.token)
			w := httptest.NewRecorder()

			handler := NewCustomerHandler(tt.setup(t))
			h := handler.GetCustomer()
			h(w, req)

			res := w.Result()
			defer res.Body.Close()
			assert.Equal(t, tt.wantStatusCode, res.StatusCode)

			if tt.wantBody != nil {
				var got customerResponse
				require.NoError(t, json.NewDecoder(res.Body).Decode(&got))
				if diff := cmp.Diff(*tt.wantBody, got); diff != "" {
					t.Errorf("mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestCustomerHandler_SetBan(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setup          func(t *testing.T) *mocks.MockCustomerService
		wantStatusCode int
	}{
		{
			name: "ban_with_reason_returns_200",
			body: `{"banned":true,"reason":"repeated fake orders"}`,
			setup: func(t *testing.T) *mocks.MockCustomerService {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockCustomerService(ctrl)
				svcMock.EXPECT().SetBan(gomock.Any(), testStoreID, testCustomerID, true, gomock.Any()).Return(nil).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "ban_without_reason_returns_400",
			body: `{"banned":true}`,
			setup: func(t *testing.T) *mocks.MockCustomerService {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockCustomerService(ctrl)
				svcMock.EXPECT().SetBan(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(models.ErrValidation).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := &models.TokenPayload{StoreID: testStoreID}
			req := requestWithCustomerID(t, http.MethodPost, "/api/customers/"+testCustomerID.String()+"/ban", tt.body, token)
			w := httptest.NewRecorder()

			handler := NewCustomerHandler(tt.setup(t))
			h := handler.SetBan()
			h(w, req)

			res := w.Result()
			defer res.Body.Close()
			assert.Equal(t, tt.wantStatusCode, res.StatusCode)
		})
	}
}
