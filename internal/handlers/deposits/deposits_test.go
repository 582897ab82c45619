package deposits

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/asadmehmood/investhub/internal/domain"
	"github.com/asadmehmood/investhub/internal/dto"
	pkgauth "github.com/asadmehmood/investhub/pkg/auth"
	"github.com/asadmehmood/investhub/pkg/filestore"
	"github.com/asadmehmood/investhub/pkg/utils"
)

func NewMock(t *testing.T) (*DepositHandler, *MockService, *MockFileStore) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	files := NewMockFileStore(ctrl)
	handler := New(service, files)
	defer ctrl.Finish()
	return handler, service, files
}

func receiptForm(t *testing.T, amount string, withFile bool) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("amount", amount))
	if withFile {
		part, err := writer.CreateFormFile("receipt", "receipt.png")
		require.NoError(t, err)
		_, err = io.Copy(part, strings.NewReader("fake image bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestSubmitHandler(t *testing.T) {
	handler, service, files := NewMock(t)

	ctx := context.WithValue(context.Background(), pkgauth.UserIDKey, 1)

	tests := []struct {
		name          string
		amount        string
		withFile      bool
		rawBody       string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:     "Successful submit",
			amount:   "5000",
			withFile: true,
			prepareMock: func() {
				files.EXPECT().SaveImage(filestore.ReceiptDir, gomock.Any()).Return("receipts/abc.png", nil)
				service.EXPECT().
					Submit(ctx, 1, decimal.NewFromInt(5000), "receipts/abc.png").
					Return(&domain.Deposit{
						ID:         1,
						UserID:     1,
						Amount:     decimal.NewFromInt(5000),
						ReceiptRef: "receipts/abc.png",
						Status:     domain.DepositPending,
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:    "Not a multipart form",
			rawBody: `{"amount":5000}`,
			prepareMock: func() {
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid multipart form",
		},
		{
			name:     "Invalid amount",
			amount:   "not-a-number",
			withFile: true,
			prepareMock: func() {
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid amount",
		},
		{
			name:     "Missing receipt image",
			amount:   "5000",
			withFile: false,
			prepareMock: func() {
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Receipt image is required",
		},
		{
			name:     "File store rejects the image",
			amount:   "5000",
			withFile: true,
			prepareMock: func() {
				files.EXPECT().SaveImage(filestore.ReceiptDir, gomock.Any()).Return("", errors.New("unsupported image type"))
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "unsupported image type",
		},
		{
			name:     "Amount below minimum tier",
			amount:   "1000",
			withFile: true,
			prepareMock: func() {
				files.EXPECT().SaveImage(filestore.ReceiptDir, gomock.Any()).Return("receipts/abc.png", nil)
				service.EXPECT().
					Submit(ctx, 1, decimal.NewFromInt(1000), "receipts/abc.png").
					Return(nil, domain.ErrValidation)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:     "Internal error",
			amount:   "5000",
			withFile: true,
			prepareMock: func() {
				files.EXPECT().SaveImage(filestore.ReceiptDir, gomock.Any()).Return("receipts/abc.png", nil)
				service.EXPECT().
					Submit(ctx, 1, decimal.NewFromInt(5000), "receipts/abc.png").
					Return(nil, errors.New("database error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			var req *http.Request
			if tt.rawBody != "" {
				req = httptest.NewRequest("POST", "/api/user/deposits", strings.NewReader(tt.rawBody))
				req.Header.Set("Content-Type", "application/json")
			} else {
				body, contentType := receiptForm(t, tt.amount, tt.withFile)
				req = httptest.NewRequest("POST", "/api/user/deposits", body)
				req.Header.Set("Content-Type", contentType)
			}
			req = req.WithContext(ctx)
			rr := httptest.NewRecorder()

			handler.Submit(rr, req)

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

func TestPreviewPlanHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	ctx := context.WithValue(context.Background(), pkgauth.UserIDKey, 1)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful preview",
			body: `{"amount":50000}`,
			prepareMock: func() {
				service.EXPECT().
					PreviewPlan(ctx, 1, decimal.NewFromInt(50000)).
					Return(decimal.NewFromInt(5000), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Invalid request body",
			body: `{invalid json`,
			prepareMock: func() {
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Amount below minimum tier",
			body: `{"amount":1000}`,
			prepareMock: func() {
				service.EXPECT().
					PreviewPlan(ctx, 1, decimal.NewFromInt(1000)).
					Return(decimal.Zero, domain.ErrValidation)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Internal error",
			body: `{"amount":50000}`,
			prepareMock: func() {
				service.EXPECT().
					PreviewPlan(ctx, 1, decimal.NewFromInt(50000)).
					Return(decimal.Zero, errors.New("database error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/user/deposits/preview", strings.NewReader(tt.body)).WithContext(ctx)
			rr := httptest.NewRecorder()

			handler.PreviewPlan(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}

			if tt.expectedCode == http.StatusOK {
				var resp dto.PlanPreviewResponseDTO
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.True(t, resp.WeeklyProfit.Equal(decimal.NewFromInt(5000)))
			}
		})
	}
}

func TestGetDepositsHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

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
				service.EXPECT().GetDeposits(ctx, 1).Return([]domain.Deposit{
					{ID: 2, UserID: 1, Amount: decimal.NewFromInt(15000), Status: domain.DepositApproved},
					{ID: 1, UserID: 1, Amount: decimal.NewFromInt(5000), Status: domain.DepositRejected},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name: "Internal error",
			prepareMock: func() {
				service.EXPECT().GetDeposits(ctx, 1).Return(nil, errors.New("database error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Failed to fetch deposits",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("GET", "/api/user/deposits", nil).WithContext(ctx)
			rr := httptest.NewRecorder()

			handler.GetDeposits(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				var deposits []dto.DepositDTO
				err := json.NewDecoder(rr.Body).Decode(&deposits)
				assert.NoError(t, err)
				assert.Len(t, deposits, tt.expectedLen)
			}
		})
	}
}
