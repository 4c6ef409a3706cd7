package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RootID is the id of the distinguished account whose upline is itself.
const RootID = "root"

type RankCode string

// AccountStatus is the status aggregate of an account. It is always read and
// written back as a whole value.
type AccountStatus struct {
	Pioneer     bool `json:"pioneer"`
	Founder     bool `json:"founder"`
	ManualRank  bool `json:"manual_rank"`
	Quarantined bool `json:"quarantined"`
}

type Account struct {
	ID       string   `db:"id"`
	UplineID string   `db:"upline_id"`
	Rank     RankCode `db:"rank"`
	IsActive bool     `db:"is_active"`
	// PersonalVolume is the account's own purchase volume in the current period.
	PersonalVolume decimal.Decimal `db:"personal_volume"`
	// OwnVolume is the all-time own purchase volume.
	OwnVolume decimal.Decimal `db:"own_volume"`
	// FullVolume is the all-time volume of every descendant. It is updated
	// synchronously with each purchase.
	FullVolume decimal.Decimal `db:"full_volume"`
	Status     AccountStatus   `db:"status"`
	CreatedAt  time.Time       `db:"created_at"`
}

func (a *Account) IsRoot() bool {
	return a.ID == a.UplineID
}

// Participates reports whether the account may take part in financial flows.
func (a *Account) Participates() bool {
	return !a.IsRoot() && !a.Status.Quarantined
}

type Credentials struct {
	AccountID    string    `db:"account_id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

type Purchase struct {
	ID        string          `db:"id"`
	AccountID string          `db:"account_id"`
	Amount    decimal.Decimal `db:"amount"`
	CreatedAt time.Time       `db:"created_at"`
}

// PioneerLedger is the single place the pioneer slot counter lives.
type PioneerLedger struct {
	Capacity int `db:"capacity" json:"capacity"`
	Granted  int `db:"granted" json:"granted"`
}

func (l PioneerLedger) Remaining() int {
	if l.Granted >= l.Capacity {
		return 0
	}
	return l.Capacity - l.Granted
}

type EntryKind string

const (
	DifferentialEntry EntryKind = "differential"
	PioneerEntry      EntryKind = "pioneer"
	ReferralEntry     EntryKind = "referral"
	PoolEntry         EntryKind = "pool"
)

type CommissionEntry struct {
	ID          string          `db:"id" json:"id"`
	RecipientID string          `db:"recipient_id" json:"recipient_id"`
	PurchaseID  string          `db:"purchase_id" json:"purchase_id"`
	Kind        EntryKind       `db:"kind" json:"kind"`
	Rate        decimal.Decimal `db:"rate" json:"rate"`
	Amount      decimal.Decimal `db:"amount" json:"amount"`
	Compressed  bool            `db:"compressed" json:"compressed"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
}

type BranchVolume struct {
	HeadID string          `json:"head_id"`
	Volume decimal.Decimal `json:"volume"`
}

// VolumeSnapshot is the last computed qualifying volume of an account. It may
// lag FullVolume on the account by one recompute cycle; ComputedAt tells how
// fresh it is.
type VolumeSnapshot struct {
	AccountID        string          `db:"account_id"`
	FullVolume       decimal.Decimal `db:"full_volume"`
	QualifyingVolume decimal.Decimal `db:"qualifying_volume"`
	TargetRank       RankCode        `db:"target_rank"`
	Branches         []BranchVolume  `db:"branches"`
	ComputedAt       time.Time       `db:"computed_at"`
}

type RankMethod string

const (
	NaturalRank RankMethod = "natural"
	ManualRank  RankMethod = "manual"
)

type RankRecord struct {
	ID         string     `db:"id" json:"id"`
	AccountID  string     `db:"account_id" json:"account_id"`
	Rank       RankCode   `db:"rank" json:"rank"`
	Method     RankMethod `db:"method" json:"method"`
	AssignedBy *string    `db:"assigned_by" json:"assigned_by,omitempty"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
}

type Balance struct {
	AccountID      string          `db:"account_id"`
	CurrentBalance decimal.Decimal `db:"current_balance"`
	EarnedTotal    decimal.Decimal `db:"earned_total"`
}

type PoolDistribution struct {
	PeriodID      string          `db:"period_id" json:"period_id"`
	CompanyVolume decimal.Decimal `db:"company_volume" json:"company_volume"`
	PoolAmount    decimal.Decimal `db:"pool_amount" json:"pool_amount"`
	CarriedIn     decimal.Decimal `db:"carried_in" json:"carried_in"`
	Share         decimal.Decimal `db:"share" json:"share"`
	CarriedOut    decimal.Decimal `db:"carried_out" json:"carried_out"`
	Recipients    []string        `db:"recipients" json:"recipients"`
	DistributedAt time.Time       `db:"distributed_at" json:"distributed_at"`
}

type PeriodStatus string

const (
	PeriodRunning   PeriodStatus = "running"
	PeriodCompleted PeriodStatus = "completed"
)

type Period struct {
	ID          string       `db:"id"`
	Status      PeriodStatus `db:"status"`
	StartedAt   time.Time    `db:"started_at"`
	CompletedAt *time.Time   `db:"completed_at"`
}

type IntegrityAlert struct {
	ID        string    `db:"id" json:"id"`
	AccountID string    `db:"account_id" json:"account_id"`
	Kind      string    `db:"kind" json:"kind"`
	Detail    string    `db:"detail" json:"detail"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type RecomputeTask struct {
	AccountID     string    `db:"account_id"`
	RequestedAt   time.Time `db:"requested_at"`
	Attempts      int       `db:"attempts"`
	NextAttemptAt time.Time `db:"next_attempt_at"`
	LastError     string    `db:"last_error"`
}

type OutboxEvent struct {
	ID          string     `db:"id"`
	Kind        string     `db:"kind"`
	Payload     []byte     `db:"payload"`
	CreatedAt   time.Time  `db:"created_at"`
	DeliveredAt *time.Time `db:"delivered_at"`
	Attempts    int        `db:"attempts"`
}

// AccountOverview is the read model of a single account. FullVolume is always
// current; Snapshot is whatever the recompute worker last produced.
type AccountOverview struct {
	Account  Account
	Snapshot *VolumeSnapshot
	Balance  *Balance
}
