package rewardservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/asadmehmood/investhub/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockProgramRepo, *MockProfitRepo) {
	ctrl := gomock.NewController(t)
	programRepo := NewMockProgramRepo(ctrl)
	profitRepo := NewMockProfitRepo(ctrl)
	service := New(programRepo, profitRepo)
	defer ctrl.Finish()
	return service, programRepo, profitRepo
}

func TestWeeklyProfitFor(t *testing.T) {
	tests := []struct {
		name     string
		amount   int64
		expected int64
	}{
		{name: "Top tier", amount: 500000, expected: 15000},
		{name: "Above top tier", amount: 750000, expected: 15000},
		{name: "100k tier", amount: 100000, expected: 10000},
		{name: "Between tiers resolves downward", amount: 99999, expected: 5000},
		{name: "50k tier", amount: 50000, expected: 5000},
		{name: "30k tier", amount: 30000, expected: 3000},
		{name: "15k tier", amount: 15000, expected: 1500},
		{name: "Lowest tier", amount: 5000, expected: 500},
		{name: "Below lowest tier", amount: 4999, expected: 0},
		{name: "Zero", amount: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WeeklyProfitFor(decimal.NewFromInt(tt.amount))
			assert.True(t, decimal.NewFromInt(tt.expected).Equal(got),
				"expected %d, got %s", tt.expected, got)
		})
	}
}

func TestActivate(t *testing.T) {
	service, programRepo, _ := NewMock(t)
	service.now = func() time.Time { return time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC) }

	tests := []struct {
		name          string
		depositID     int
		amount        int64
		prepareMock   func()
		expectNil     bool
		expectedError error
	}{
		{
			name:          "Missing deposit reference",
			depositID:     0,
			amount:        50000,
			expectNil:     true,
			expectedError: domain.ErrReference,
		},
		{
			name:      "Sub-tier deposit creates no program",
			depositID: 7,
			amount:    4000,
			expectNil: true,
		},
		{
			name:      "First program is created",
			depositID: 7,
			amount:    50000,
			prepareMock: func() {
				programRepo.EXPECT().FindActiveByUserID(gomock.Any(), 1).Return(nil, nil)
				programRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.RewardProgram{ID: 10}, nil)
			},
		},
		{
			name:      "Existing program is rolled over",
			depositID: 8,
			amount:    100000,
			prepareMock: func() {
				programRepo.EXPECT().FindActiveByUserID(gomock.Any(), 1).Return(&domain.RewardProgram{ID: 10}, nil)
				programRepo.EXPECT().End(gomock.Any(), 10, gomock.Any()).Return(nil)
				programRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.RewardProgram{ID: 11}, nil)
			},
		},
		{
			name:      "Lookup failure",
			depositID: 8,
			amount:    100000,
			prepareMock: func() {
				programRepo.EXPECT().FindActiveByUserID(gomock.Any(), 1).Return(nil, errors.New("some error"))
			},
			expectNil:     true,
			expectedError: errors.New("some error"),
		},
		{
			name:      "Rollover failure",
			depositID: 8,
			amount:    100000,
			prepareMock: func() {
				programRepo.EXPECT().FindActiveByUserID(gomock.Any(), 1).Return(&domain.RewardProgram{ID: 10}, nil)
				programRepo.EXPECT().End(gomock.Any(), 10, gomock.Any()).Return(errors.New("some error"))
			},
			expectNil:     true,
			expectedError: errors.New("some error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			program, err := service.Activate(context.Background(), 1, tt.depositID, decimal.NewFromInt(tt.amount))
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.ErrorContains(t, err, tt.expectedError.Error())
			} else {
				assert.NoError(t, err)
			}
			if tt.expectNil {
				assert.Nil(t, program)
			} else {
				assert.NotNil(t, program)
				assert.Equal(t, 1, program.UserID)
				assert.Equal(t, tt.depositID, program.DepositID)
				assert.Equal(t, domain.ProgramActive, program.Status)
				assert.True(t, WeeklyProfitFor(decimal.NewFromInt(tt.amount)).Equal(program.WeeklyProfit))
			}
		})
	}
}

func TestGetSchedule(t *testing.T) {
	service, programRepo, profitRepo := NewMock(t)
	now := time.Date(2025, 3, 20, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	program := &domain.RewardProgram{ID: 10, UserID: 1, WeeklyProfit: decimal.NewFromInt(5000), StartDate: start}

	tests := []struct {
		name          string
		prepareMock   func()
		check         func(t *testing.T, entries []domain.ScheduleEntry)
		expectedError error
	}{
		{
			name: "No active program",
			prepareMock: func() {
				programRepo.EXPECT().FindActiveByUserID(gomock.Any(), 1).Return(nil, nil)
			},
			check: func(t *testing.T, entries []domain.ScheduleEntry) {
				assert.Nil(t, entries)
			},
		},
		{
			name: "Persisted profits take precedence",
			prepareMock: func() {
				programRepo.EXPECT().FindActiveByUserID(gomock.Any(), 1).Return(program, nil)
				profitRepo.EXPECT().FindByProgramID(gomock.Any(), 10).Return([]domain.Profit{
					{WeekNumber: 1, Amount: decimal.NewFromInt(5000), Status: domain.ProfitPaid},
					{WeekNumber: 2, Amount: decimal.NewFromInt(5000), Status: domain.ProfitPending},
				}, nil)
			},
			check: func(t *testing.T, entries []domain.ScheduleEntry) {
				assert.Len(t, entries, 2)
				assert.Equal(t, domain.ProfitPaid, entries[0].Status)
				assert.Equal(t, domain.ProfitPending, entries[1].Status)
			},
		},
		{
			name: "Projection when no profits persisted",
			prepareMock: func() {
				programRepo.EXPECT().FindActiveByUserID(gomock.Any(), 1).Return(program, nil)
				profitRepo.EXPECT().FindByProgramID(gomock.Any(), 10).Return(nil, nil)
			},
			check: func(t *testing.T, entries []domain.ScheduleEntry) {
				assert.Len(t, entries, ScheduleWeeks)
				assert.Equal(t, domain.ProfitPaid, entries[0].Status)
				assert.Equal(t, domain.ProfitPaid, entries[1].Status)
				assert.Equal(t, domain.ProfitProcessing, entries[2].Status)
				assert.Equal(t, domain.ProfitPending, entries[3].Status)
				assert.Equal(t, domain.ProfitPending, entries[11].Status)
			},
		},
		{
			name: "Profit lookup failure",
			prepareMock: func() {
				programRepo.EXPECT().FindActiveByUserID(gomock.Any(), 1).Return(program, nil)
				profitRepo.EXPECT().FindByProgramID(gomock.Any(), 10).Return(nil, errors.New("some error"))
			},
			expectedError: errors.New("some error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			entries, err := service.GetSchedule(context.Background(), 1)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				tt.check(t, entries)
			}
		})
	}
}

func TestProjectSchedule(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	program := &domain.RewardProgram{WeeklyProfit: decimal.NewFromInt(1500), StartDate: start}

	entries := ProjectSchedule(program, start)
	assert.Len(t, entries, ScheduleWeeks)
	assert.Equal(t, 1, entries[0].WeekNumber)
	assert.Equal(t, start, entries[0].StartDate)
	assert.Equal(t, start.AddDate(0, 0, 6), entries[0].EndDate)
	assert.Equal(t, domain.ProfitProcessing, entries[0].Status)
	assert.Equal(t, domain.ProfitPending, entries[1].Status)

	assert.Equal(t, 12, entries[11].WeekNumber)
	assert.Equal(t, start.AddDate(0, 0, 77), entries[11].StartDate)

	done := ProjectSchedule(program, start.AddDate(0, 0, 7*ScheduleWeeks))
	for _, entry := range done {
		assert.Equal(t, domain.ProfitPaid, entry.Status)
	}
}

func TestNextPayout(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	program := &domain.RewardProgram{StartDate: start}

	tests := []struct {
		name     string
		now      time.Time
		expected *time.Time
	}{
		{
			name:     "First week still running",
			now:      start.AddDate(0, 0, 2),
			expected: timePtr(start.AddDate(0, 0, 6)),
		},
		{
			name:     "Two weeks elapsed",
			now:      start.AddDate(0, 0, 15),
			expected: timePtr(start.AddDate(0, 0, 20)),
		},
		{
			name:     "Last week boundary",
			now:      start.AddDate(0, 0, 11*7+6),
			expected: timePtr(start.AddDate(0, 0, 11*7+6)),
		},
		{
			name:     "All weeks elapsed",
			now:      start.AddDate(0, 0, 90),
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextPayout(program, tt.now)
			if tt.expected == nil {
				assert.Nil(t, got)
			} else {
				assert.NotNil(t, got)
				assert.Equal(t, *tt.expected, *got)
			}
		})
	}
}

func timePtr(t time.Time) *time.Time {
	return &t
}
