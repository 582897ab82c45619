package journal

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/asadmehmood/investhub/internal/domain"
	"github.com/asadmehmood/investhub/internal/dto"
	"github.com/asadmehmood/investhub/internal/service/journalservice"
	pkgauth "github.com/asadmehmood/investhub/pkg/auth"
	"github.com/asadmehmood/investhub/pkg/utils"
)

func NewMock(t *testing.T) (*JournalHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestGetActivitiesHandler(t *testing.T) {
	handler, service := NewMock(t)

	ctx := context.WithValue(context.Background(), pkgauth.UserIDKey, 1)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedError string
		expectedLen   int
	}{
		{
			name: "Successful fetch",
			prepareMock: func() {
				service.EXPECT().GetActivities(ctx, 1).Return([]domain.Transaction{
					{ID: 2, UserID: 1, Type: domain.TxProfit, Amount: decimal.NewFromInt(5000), Status: domain.TxCompleted},
					{ID: 1, UserID: 1, Type: domain.TxDeposit, Amount: decimal.NewFromInt(50000), Status: domain.TxCompleted},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name: "Internal error",
			prepareMock: func() {
				service.EXPECT().GetActivities(ctx, 1).Return(nil, errors.New("database error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Failed to fetch activities",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("GET", "/api/user/activities", nil).WithContext(ctx)
			rr := httptest.NewRecorder()

			handler.GetActivities(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				var activities []dto.TransactionDTO
				err := json.NewDecoder(rr.Body).Decode(&activities)
				assert.NoError(t, err)
				assert.Len(t, activities, tt.expectedLen)
			}
		})
	}
}

func TestGetTransactionsHandler(t *testing.T) {
	handler, service := NewMock(t)

	ctx := context.WithValue(context.Background(), pkgauth.UserIDKey, 1)

	tests := []struct {
		name          string
		query         string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:  "Filtered by type and range",
			query: "?type=profit&range=30days",
			prepareMock: func() {
				service.EXPECT().GetTransactions(ctx, 1, "profit", "30days").Return([]domain.Transaction{
					{ID: 3, UserID: 1, Type: domain.TxProfit, Amount: decimal.NewFromInt(5000), Status: domain.TxCompleted},
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:  "Missing range defaults to 30 days",
			query: "",
			prepareMock: func() {
				service.EXPECT().GetTransactions(ctx, 1, "", journalservice.Range30Days).Return([]domain.Transaction{}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:  "Internal error",
			query: "",
			prepareMock: func() {
				service.EXPECT().GetTransactions(ctx, 1, "", journalservice.Range30Days).Return(nil, errors.New("database error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Failed to fetch transactions",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("GET", "/api/user/transactions"+tt.query, nil).WithContext(ctx)
			rr := httptest.NewRecorder()

			handler.GetTransactions(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}
