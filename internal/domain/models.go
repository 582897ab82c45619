package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	RoleUser  string = "user"
	RoleAdmin string = "admin"
)

// Deposit statuses.
const (
	DepositPending  string = "pending"
	DepositApproved string = "approved"
	DepositRejected string = "rejected"
)

// Withdrawal statuses.
const (
	WithdrawalPending    string = "pending"
	WithdrawalProcessing string = "processing"
	WithdrawalCompleted  string = "completed"
	WithdrawalRejected   string = "rejected"
)

// Verification statuses.
const (
	VerificationPending  string = "pending"
	VerificationApproved string = "approved"
	VerificationRejected string = "rejected"
)

// Reward program statuses.
const (
	ProgramActive string = "active"
	ProgramEnded  string = "ended"
)

// Profit statuses.
const (
	ProfitPending    string = "pending"
	ProfitProcessing string = "processing"
	ProfitPaid       string = "paid"
)

// Transaction types and statuses.
const (
	TxDeposit    string = "deposit"
	TxWithdrawal string = "withdrawal"
	TxProfit     string = "profit"
	TxReferral   string = "referral"

	TxPending    string = "pending"
	TxProcessing string = "processing"
	TxCompleted  string = "completed"
	TxRejected   string = "rejected"
)

// Referral statuses.
const (
	ReferralPending string = "pending"
	ReferralPaid    string = "paid"
)

type User struct {
	ID              int       `db:"id"`
	Username        string    `db:"username"`
	PasswordHash    string    `db:"password_hash"`
	FullName        string    `db:"full_name"`
	Address         string    `db:"address"`
	City            string    `db:"city"`
	MobileNumber    string    `db:"mobile_number"`
	EasyPaisaNumber string    `db:"easypaisa_number"`
	Role            string    `db:"role"`
	YoutubeVerified bool      `db:"youtube_verified"`
	ReferralCode    string    `db:"referral_code"`
	ReferredBy      *int      `db:"referred_by"`
	Active          bool      `db:"active"`
	CreatedAt       time.Time `db:"created_at"`
}

type Deposit struct {
	ID          int             `db:"id"`
	UserID      int             `db:"user_id"`
	Amount      decimal.Decimal `db:"amount"`
	ReceiptRef  string          `db:"receipt_ref"`
	Status      string          `db:"status"`
	AdminNote   *string         `db:"admin_note"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   *time.Time      `db:"updated_at"`
}

type Withdrawal struct {
	ID          int             `db:"id"`
	UserID      int             `db:"user_id"`
	Amount      decimal.Decimal `db:"amount"`
	Fee         decimal.Decimal `db:"fee"`
	Status      string          `db:"status"`
	ProcessedAt *time.Time      `db:"processed_at"`
	AdminNote   *string         `db:"admin_note"`
	CreatedAt   time.Time       `db:"created_at"`
}

type Verification struct {
	ID            int        `db:"id"`
	UserID        int        `db:"user_id"`
	ScreenshotRef string     `db:"screenshot_ref"`
	Status        string     `db:"status"`
	AdminNote     *string    `db:"admin_note"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     *time.Time `db:"updated_at"`
}

type RewardProgram struct {
	ID            int             `db:"id"`
	UserID        int             `db:"user_id"`
	DepositID     int             `db:"deposit_id"`
	DepositAmount decimal.Decimal `db:"deposit_amount"`
	WeeklyProfit  decimal.Decimal `db:"weekly_profit"`
	Status        string          `db:"status"`
	StartDate     time.Time       `db:"start_date"`
	EndDate       *time.Time      `db:"end_date"`
	CreatedAt     time.Time       `db:"created_at"`
}

type Profit struct {
	ID              int             `db:"id"`
	UserID          int             `db:"user_id"`
	RewardProgramID int             `db:"reward_program_id"`
	Amount          decimal.Decimal `db:"amount"`
	WeekNumber      int             `db:"week_number"`
	StartDate       time.Time       `db:"start_date"`
	EndDate         time.Time       `db:"end_date"`
	Status          string          `db:"status"`
	PaidAt          *time.Time      `db:"paid_at"`
	CreatedAt       time.Time       `db:"created_at"`
}

type Transaction struct {
	ID          int             `db:"id"`
	UserID      int             `db:"user_id"`
	Type        string          `db:"type"`
	Amount      decimal.Decimal `db:"amount"`
	Description string          `db:"description"`
	ReferenceID *int            `db:"reference_id"`
	Status      string          `db:"status"`
	CreatedAt   time.Time       `db:"created_at"`
}

type Referral struct {
	ID         int             `db:"id"`
	ReferrerID int             `db:"referrer_id"`
	ReferredID int             `db:"referred_id"`
	Bonus      decimal.Decimal `db:"bonus"`
	Status     string          `db:"status"`
	CreatedAt  time.Time       `db:"created_at"`
	PaidAt     *time.Time      `db:"paid_at"`
}

type Announcement struct {
	ID        int       `db:"id"`
	Content   string    `db:"content"`
	Language  string    `db:"language"`
	Active    bool      `db:"active"`
	CreatedBy *int      `db:"created_by"`
	CreatedAt time.Time `db:"created_at"`
}

// UserStats is the derived financial view of a user. It is never stored;
// every field is recomputed from source records on each request.
type UserStats struct {
	TotalDeposited decimal.Decimal `json:"totalDeposited"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	TotalProfit    decimal.Decimal `json:"totalProfit"`
	TotalWithdrawn decimal.Decimal `json:"totalWithdrawn"`
	ReferralBonus  decimal.Decimal `json:"referralBonus"`
	ReferralCount  int             `json:"referralCount"`
}

// ScheduleEntry is one week of a reward program's profit schedule. Entries
// are either read from persisted profit rows or projected on the fly.
type ScheduleEntry struct {
	WeekNumber int             `json:"weekNumber"`
	StartDate  time.Time       `json:"startDate"`
	EndDate    time.Time       `json:"endDate"`
	Amount     decimal.Decimal `json:"profitAmount"`
	Status     string          `json:"status"`
}
