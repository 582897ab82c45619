package verifications

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
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/asadmehmood/investhub/internal/domain"
	"github.com/asadmehmood/investhub/internal/service/verificationservice"
	pkgauth "github.com/asadmehmood/investhub/pkg/auth"
	"github.com/asadmehmood/investhub/pkg/filestore"
	"github.com/asadmehmood/investhub/pkg/utils"
)

func NewMock(t *testing.T) (*VerificationHandler, *MockService, *MockFileStore) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	files := NewMockFileStore(ctrl)
	handler := New(service, files)
	defer ctrl.Finish()
	return handler, service, files
}

func screenshotForm(t *testing.T, withFile bool) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if withFile {
		part, err := writer.CreateFormFile("screenshot", "subscription.png")
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
		withFile      bool
		rawBody       string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:     "Successful submit",
			withFile: true,
			prepareMock: func() {
				files.EXPECT().SaveImage(filestore.YoutubeDir, gomock.Any()).Return("youtube/abc.png", nil)
				service.EXPECT().
					Submit(ctx, 1, "youtube/abc.png").
					Return(&domain.Verification{
						ID:            1,
						UserID:        1,
						ScreenshotRef: "youtube/abc.png",
						Status:        domain.VerificationPending,
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:    "Not a multipart form",
			rawBody: `{"screenshot":"abc"}`,
			prepareMock: func() {
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid multipart form",
		},
		{
			name:     "Missing screenshot",
			withFile: false,
			prepareMock: func() {
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Screenshot image is required",
		},
		{
			name:     "File store rejects the image",
			withFile: true,
			prepareMock: func() {
				files.EXPECT().SaveImage(filestore.YoutubeDir, gomock.Any()).Return("", errors.New("unsupported image type"))
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "unsupported image type",
		},
		{
			name:     "Already pending submission",
			withFile: true,
			prepareMock: func() {
				files.EXPECT().SaveImage(filestore.YoutubeDir, gomock.Any()).Return("youtube/abc.png", nil)
				service.EXPECT().Submit(ctx, 1, "youtube/abc.png").Return(nil, domain.ErrValidation)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:     "Internal error",
			withFile: true,
			prepareMock: func() {
				files.EXPECT().SaveImage(filestore.YoutubeDir, gomock.Any()).Return("youtube/abc.png", nil)
				service.EXPECT().Submit(ctx, 1, "youtube/abc.png").Return(nil, errors.New("database error"))
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
				req = httptest.NewRequest("POST", "/api/user/youtube-verification", strings.NewReader(tt.rawBody))
				req.Header.Set("Content-Type", "application/json")
			} else {
				body, contentType := screenshotForm(t, tt.withFile)
				req = httptest.NewRequest("POST", "/api/user/youtube-verification", body)
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

func TestGetStatusHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	ctx := context.WithValue(context.Background(), pkgauth.UserIDKey, 1)

	pending := domain.VerificationPending
	submittedAt := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Pending submission",
			prepareMock: func() {
				service.EXPECT().GetStatus(ctx, 1).Return(&verificationservice.Status{
					Verified:       false,
					Status:         &pending,
					LastSubmission: &submittedAt,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Internal error",
			prepareMock: func() {
				service.EXPECT().GetStatus(ctx, 1).Return(nil, errors.New("database error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Failed to fetch verification status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("GET", "/api/user/youtube-verification/status", nil).WithContext(ctx)
			rr := httptest.NewRecorder()

			handler.GetStatus(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				var status verificationservice.Status
				err := json.NewDecoder(rr.Body).Decode(&status)
				assert.NoError(t, err)
				assert.False(t, status.Verified)
				assert.Equal(t, domain.VerificationPending, *status.Status)
			}
		})
	}
}
