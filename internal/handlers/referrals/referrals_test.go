package referrals

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

	"github.com/asadmehmood/investhub/internal/service/referralservice"
	pkgauth "github.com/asadmehmood/investhub/pkg/auth"
	"github.com/asadmehmood/investhub/pkg/utils"
)

func NewMock(t *testing.T) (*ReferralHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestGetReferralsHandler(t *testing.T) {
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
				service.EXPECT().GetReferrals(ctx, 1).Return([]referralservice.Detail{
					{ID: 3, FullName: "Referred One", Bonus: decimal.NewFromInt(100), Status: "paid"},
					{ID: 4, FullName: "Referred Two", Bonus: decimal.NewFromInt(100), Status: "paid"},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name: "No referrals yields empty list",
			prepareMock: func() {
				service.EXPECT().GetReferrals(ctx, 1).Return(nil, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  0,
		},
		{
			name: "Internal error",
			prepareMock: func() {
				service.EXPECT().GetReferrals(ctx, 1).Return(nil, errors.New("database error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Failed to fetch referrals",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("GET", "/api/user/referrals", nil).WithContext(ctx)
			rr := httptest.NewRecorder()

			handler.GetReferrals(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				var referrals []referralservice.Detail
				err := json.NewDecoder(rr.Body).Decode(&referrals)
				assert.NoError(t, err)
				assert.Len(t, referrals, tt.expectedLen)
			}
		})
	}
}

func TestGetStatsHandler(t *testing.T) {
	handler, service := NewMock(t)

	ctx := context.WithValue(context.Background(), pkgauth.UserIDKey, 1)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful fetch",
			prepareMock: func() {
				service.EXPECT().GetStats(ctx, 1).Return(&referralservice.Stats{
					TotalReferrals:   4,
					TotalEarnings:    decimal.NewFromInt(400),
					MonthlyReferrals: 2,
					MonthlyEarnings:  decimal.NewFromInt(200),
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Internal error",
			prepareMock: func() {
				service.EXPECT().GetStats(ctx, 1).Return(nil, errors.New("database error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Failed to fetch referral stats",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("GET", "/api/user/referrals/stats", nil).WithContext(ctx)
			rr := httptest.NewRecorder()

			handler.GetStats(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				var stats referralservice.Stats
				err := json.NewDecoder(rr.Body).Decode(&stats)
				assert.NoError(t, err)
				assert.Equal(t, 4, stats.TotalReferrals)
				assert.Equal(t, 2, stats.MonthlyReferrals)
			}
		})
	}
}
