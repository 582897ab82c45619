package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	_ "github.com/asadmehmood/investhub/docs"
	"github.com/asadmehmood/investhub/internal/pg"
	"github.com/asadmehmood/investhub/internal/repo"
	"github.com/asadmehmood/investhub/internal/service"
	"github.com/asadmehmood/investhub/pkg/auth"
	"github.com/asadmehmood/investhub/pkg/filestore"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockDB.Close()

	txManager := pg.NewMockTXManager(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)
	services := service.New(repo.New(mockDB), txManager, jwtService, nil)

	files, err := filestore.New(t.TempDir())
	require.NoError(t, err)

	h := New(services, jwtService, files)
	assert.NotNil(t, h, "Handlers should not be nil")
	assert.NotNil(t, h.AuthHandler)
	assert.NotNil(t, h.AdminHandler)
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockDepositHandler := NewMockDepositHandler(ctrl)
	mockWithdrawalHandler := NewMockWithdrawalHandler(ctrl)
	mockRewardHandler := NewMockRewardHandler(ctrl)
	mockReferralHandler := NewMockReferralHandler(ctrl)
	mockVerificationHandler := NewMockVerificationHandler(ctrl)
	mockJournalHandler := NewMockJournalHandler(ctrl)
	mockAnnouncementHandler := NewMockAnnouncementHandler(ctrl)
	mockAdminHandler := NewMockAdminHandler(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockAnnouncementHandler.EXPECT().GetCurrent(gomock.Any(), gomock.Any()).AnyTimes()

	jwtService := auth.NewMockJWTServiceInterface(ctrl)

	h := &Handlers{
		AuthHandler:         mockAuthHandler,
		DepositHandler:      mockDepositHandler,
		WithdrawalHandler:   mockWithdrawalHandler,
		RewardHandler:       mockRewardHandler,
		ReferralHandler:     mockReferralHandler,
		VerificationHandler: mockVerificationHandler,
		JournalHandler:      mockJournalHandler,
		AnnouncementHandler: mockAnnouncementHandler,
		AdminHandler:        mockAdminHandler,
		jwtService:          jwtService,
		uploadDir:           t.TempDir(),
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/user/register", http.StatusOK},
		{"POST", "/api/user/login", http.StatusOK},
		{"GET", "/api/announcements/current", http.StatusOK},
		{"GET", "/api/user/me", http.StatusUnauthorized},
		{"GET", "/api/user/stats", http.StatusUnauthorized},
		{"GET", "/api/user/activities", http.StatusUnauthorized},
		{"GET", "/api/user/transactions", http.StatusUnauthorized},
		{"POST", "/api/user/deposits", http.StatusUnauthorized},
		{"GET", "/api/user/deposits", http.StatusUnauthorized},
		{"POST", "/api/user/deposits/preview", http.StatusUnauthorized},
		{"POST", "/api/user/withdrawals", http.StatusUnauthorized},
		{"GET", "/api/user/withdrawals", http.StatusUnauthorized},
		{"GET", "/api/user/rewards", http.StatusUnauthorized},
		{"GET", "/api/user/rewards/active", http.StatusUnauthorized},
		{"GET", "/api/user/rewards/schedule", http.StatusUnauthorized},
		{"GET", "/api/user/referrals", http.StatusUnauthorized},
		{"GET", "/api/user/referrals/stats", http.StatusUnauthorized},
		{"POST", "/api/user/youtube-verification", http.StatusUnauthorized},
		{"GET", "/api/user/youtube-verification/status", http.StatusUnauthorized},
		{"GET", "/uploads/receipts/abc.png", http.StatusUnauthorized},
		{"GET", "/api/admin/dashboard", http.StatusUnauthorized},
		{"GET", "/api/admin/users", http.StatusUnauthorized},
		{"POST", "/api/admin/deposits/1/approve", http.StatusUnauthorized},
		{"POST", "/api/admin/withdrawals/1/complete", http.StatusUnauthorized},
		{"GET", "/api/admin/youtube-verifications", http.StatusUnauthorized},
		{"POST", "/api/admin/announcements", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
