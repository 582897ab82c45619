package announcementservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/asadmehmood/investhub/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockAnnouncementRepo) {
	ctrl := gomock.NewController(t)
	announcementRepo := NewMockAnnouncementRepo(ctrl)
	service := New(announcementRepo)
	defer ctrl.Finish()
	return service, announcementRepo
}

func TestCreate(t *testing.T) {
	service, announcementRepo := NewMock(t)

	tests := []struct {
		name          string
		content       string
		language      string
		prepareMock   func()
		expectedLang  string
		expectedError error
	}{
		{
			name:          "Too short",
			content:       "hi",
			expectedError: domain.ErrValidation,
		},
		{
			name:     "Language defaults to en",
			content:  "Maintenance window on Friday",
			language: "",
			prepareMock: func() {
				announcementRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, a *domain.Announcement) (*domain.Announcement, error) {
						a.ID = 4
						return a, nil
					})
			},
			expectedLang: "en",
		},
		{
			name:     "Explicit language kept",
			content:  "ہفتہ وار منافع جاری",
			language: "ur",
			prepareMock: func() {
				announcementRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, a *domain.Announcement) (*domain.Announcement, error) {
						a.ID = 5
						return a, nil
					})
			},
			expectedLang: "ur",
		},
		{
			name:    "Create failure",
			content: "Maintenance window on Friday",
			prepareMock: func() {
				announcementRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("some error"))
			},
			expectedError: errors.New("some error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			announcement, err := service.Create(context.Background(), tt.content, tt.language, true, 1)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.ErrorContains(t, err, tt.expectedError.Error())
				assert.Nil(t, announcement)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedLang, announcement.Language)
				require.NotNil(t, announcement.CreatedBy)
				assert.Equal(t, 1, *announcement.CreatedBy)
			}
		})
	}
}

func TestToggleActive(t *testing.T) {
	service, announcementRepo := NewMock(t)

	tests := []struct {
		name           string
		prepareMock    func()
		expectedActive bool
		expectedError  error
	}{
		{
			name: "Active is switched off",
			prepareMock: func() {
				announcementRepo.EXPECT().FindByID(gomock.Any(), 4).
					Return(&domain.Announcement{ID: 4, Active: true}, nil)
				announcementRepo.EXPECT().SetActive(gomock.Any(), 4, false).Return(nil)
			},
			expectedActive: false,
		},
		{
			name: "Inactive is switched on",
			prepareMock: func() {
				announcementRepo.EXPECT().FindByID(gomock.Any(), 4).
					Return(&domain.Announcement{ID: 4, Active: false}, nil)
				announcementRepo.EXPECT().SetActive(gomock.Any(), 4, true).Return(nil)
			},
			expectedActive: true,
		},
		{
			name: "Not found",
			prepareMock: func() {
				announcementRepo.EXPECT().FindByID(gomock.Any(), 4).Return(nil, nil)
			},
			expectedError: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			announcement, err := service.ToggleActive(context.Background(), 4)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, announcement)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedActive, announcement.Active)
			}
		})
	}
}

func TestGetCurrent(t *testing.T) {
	service, announcementRepo := NewMock(t)

	announcementRepo.EXPECT().FindLatestActive(gomock.Any()).Return(nil, nil)
	announcement, err := service.GetCurrent(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, announcement)
}
