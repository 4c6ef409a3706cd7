package accountservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/compengine/internal/domain"
	"github.com/GlebRadaev/compengine/internal/hierarchy"
	"github.com/GlebRadaev/compengine/internal/pg"
	"github.com/GlebRadaev/compengine/pkg/auth"
)

//go:generate mockgen -source=accountservice.go -destination=mock_accountservice.go -package=accountservice

type AccountRepo interface {
	GetAccount(ctx context.Context, id string) (*domain.Account, error)
	CreateAccount(ctx context.Context, acc *domain.Account) error
	MutateStatus(ctx context.Context, id string, fn func(domain.AccountStatus) domain.AccountStatus) (domain.AccountStatus, error)
}

type CredentialRepo interface {
	FindByLogin(ctx context.Context, login string) (*domain.Credentials, error)
	CreateCredentials(ctx context.Context, cred *domain.Credentials) error
}

type SnapshotRepo interface {
	GetSnapshot(ctx context.Context, accountID string) (*domain.VolumeSnapshot, error)
}

type EntryRepo interface {
	FindEntriesByRecipient(ctx context.Context, recipientID string) ([]domain.CommissionEntry, error)
}

type BalanceService interface {
	GetBalance(ctx context.Context, accountID string) (*domain.Balance, error)
	CreateBalance(ctx context.Context, accountID string) (*domain.Balance, error)
}

type RankRepo interface {
	AppendRecord(ctx context.Context, rec *domain.RankRecord) error
}

type Walker interface {
	Depth(ctx context.Context, accountID string) (int, error)
	MaxDepth() int
}

var (
	ErrLoginTaken         = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountExists      = errors.New("account already exists")
	ErrInvalidAccountID   = errors.New("invalid account id")
	ErrUnknownAccount     = errors.New("unknown account")
)

const (
	maxAccountIDLen = 64
	tokenTTL        = 15 * time.Minute
)

type Deps struct {
	Accounts    AccountRepo
	Credentials CredentialRepo
	Snapshots   SnapshotRepo
	Entries     EntryRepo
	Balances    BalanceService
	Ranks       RankRepo
	Walker      Walker
	Plan        domain.RankPlan
	Hash        auth.HashServiceInterface
	JWT         auth.JWTServiceInterface
	TxManager   pg.TXManager
}

type Service struct {
	accounts    AccountRepo
	credentials CredentialRepo
	snapshots   SnapshotRepo
	entries     EntryRepo
	balances    BalanceService
	ranks       RankRepo
	walker      Walker
	plan        domain.RankPlan
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
	txManager   pg.TXManager
	now         func() time.Time
}

func New(d Deps) *Service {
	return &Service{
		accounts:    d.Accounts,
		credentials: d.Credentials,
		snapshots:   d.Snapshots,
		entries:     d.Entries,
		balances:    d.Balances,
		ranks:       d.Ranks,
		walker:      d.Walker,
		plan:        d.Plan,
		hashService: d.Hash,
		jwtService:  d.JWT,
		txManager:   d.TxManager,
		now:         time.Now,
	}
}

// Create opens an account under uplineID at the entry rank. An empty,
// unknown, quarantined or broken referrer puts the account directly under
// Root, as does one so deep that the new account would exceed the depth bound.
func (s *Service) Create(ctx context.Context, accountID, uplineID string) (*domain.Account, error) {
	acc, err := s.prepare(ctx, accountID, uplineID)
	if err != nil {
		return nil, err
	}
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		return s.insert(ctx, acc)
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("account created", zap.String("account_id", acc.ID), zap.String("upline_id", acc.UplineID))
	return acc, nil
}

// Register opens an account together with login credentials.
func (s *Service) Register(ctx context.Context, accountID, uplineID, login, password string) (*domain.Account, error) {
	existing, err := s.credentials.FindByLogin(ctx, login)
	if err != nil {
		zap.L().Error("can't find credentials", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		zap.L().Info("login already taken", zap.String("login", login))
		return nil, ErrLoginTaken
	}

	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password", zap.Error(err))
		return nil, err
	}

	acc, err := s.prepare(ctx, accountID, uplineID)
	if err != nil {
		return nil, err
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.insert(ctx, acc); err != nil {
			return err
		}
		return s.credentials.CreateCredentials(ctx, &domain.Credentials{
			AccountID:    acc.ID,
			Login:        login,
			PasswordHash: hashedPassword,
			CreatedAt:    acc.CreatedAt,
		})
	})
	if err != nil {
		zap.L().Error("can't register account", zap.Error(err))
		return nil, err
	}

	zap.L().Info("account successfully registered", zap.String("login", login), zap.String("account_id", acc.ID))
	return acc, nil
}

func (s *Service) Authenticate(ctx context.Context, login, password string) (*domain.Credentials, error) {
	cred, err := s.credentials.FindByLogin(ctx, login)
	if err != nil || cred == nil {
		zap.L().Info("invalid credentials", zap.String("login", login), zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(cred.PasswordHash, password); !ok {
		zap.L().Info("invalid credentials", zap.String("login", login))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("account successfully authenticated", zap.String("login", login))
	return cred, nil
}

func (s *Service) GenerateToken(accountID string) (string, error) {
	token, err := s.jwtService.GenerateJWT(accountID, s.now().Add(tokenTTL))
	if err != nil {
		zap.L().Error("can't generate token", zap.Error(err))
		return "", err
	}
	return token, nil
}

// GetOverview returns the account with its latest volume snapshot and balance.
// The snapshot may lag the account's full volume.
func (s *Service) GetOverview(ctx context.Context, accountID string) (*domain.AccountOverview, error) {
	acc, err := s.accounts.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, ErrUnknownAccount
	}
	snapshot, err := s.snapshots.GetSnapshot(ctx, accountID)
	if err != nil {
		return nil, err
	}
	balance, err := s.balances.GetBalance(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return &domain.AccountOverview{Account: *acc, Snapshot: snapshot, Balance: balance}, nil
}

func (s *Service) ListCommissions(ctx context.Context, accountID string) ([]domain.CommissionEntry, error) {
	entries, err := s.entries.FindEntriesByRecipient(ctx, accountID)
	if err != nil {
		zap.L().Error("failed to list commissions", zap.String("account_id", accountID), zap.Error(err))
		return nil, err
	}
	return entries, nil
}

// IsFounder reports whether the account holds the founder capability.
func (s *Service) IsFounder(ctx context.Context, accountID string) (bool, error) {
	acc, err := s.accounts.GetAccount(ctx, accountID)
	if err != nil {
		return false, err
	}
	return acc != nil && acc.Status.Founder, nil
}

// EnsureFounders makes sure every listed account exists and holds the founder
// capability. Missing accounts are created under Root.
func (s *Service) EnsureFounders(ctx context.Context, ids []string) error {
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		acc, err := s.accounts.GetAccount(ctx, id)
		if err != nil {
			return err
		}
		if acc == nil {
			if _, err := s.Create(ctx, id, domain.RootID); err != nil {
				return err
			}
		}
		_, err = s.accounts.MutateStatus(ctx, id, func(st domain.AccountStatus) domain.AccountStatus {
			st.Founder = true
			return st
		})
		if err != nil {
			return err
		}
		zap.L().Info("founder ensured", zap.String("account_id", id))
	}
	return nil
}

func (s *Service) prepare(ctx context.Context, accountID, uplineID string) (*domain.Account, error) {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		accountID = uuid.NewString()
	}
	if accountID == domain.RootID || len(accountID) > maxAccountIDLen || strings.ContainsAny(accountID, " \t\n") {
		return nil, ErrInvalidAccountID
	}

	existing, err := s.accounts.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAccountExists
	}

	upline, err := s.resolveUpline(ctx, strings.TrimSpace(uplineID))
	if err != nil {
		return nil, err
	}
	return &domain.Account{
		ID:        accountID,
		UplineID:  upline,
		Rank:      s.plan.Entry().Code,
		CreatedAt: s.now(),
	}, nil
}

func (s *Service) resolveUpline(ctx context.Context, uplineID string) (string, error) {
	if uplineID == "" || uplineID == domain.RootID {
		return domain.RootID, nil
	}

	ref, err := s.accounts.GetAccount(ctx, uplineID)
	if err != nil {
		return "", err
	}
	if ref == nil || ref.Status.Quarantined {
		zap.L().Info("referrer not usable, falling back to root", zap.String("upline_id", uplineID))
		return domain.RootID, nil
	}

	depth, err := s.walker.Depth(ctx, uplineID)
	if err != nil {
		if errors.Is(err, hierarchy.ErrIntegrity) {
			zap.L().Warn("referrer chain does not reach root, falling back to root",
				zap.String("upline_id", uplineID), zap.Error(err))
			return domain.RootID, nil
		}
		return "", err
	}
	if depth+1 > s.walker.MaxDepth() {
		zap.L().Warn("referrer too deep, falling back to root",
			zap.String("upline_id", uplineID), zap.Int("depth", depth))
		return domain.RootID, nil
	}
	return uplineID, nil
}

func (s *Service) insert(ctx context.Context, acc *domain.Account) error {
	if err := s.accounts.CreateAccount(ctx, acc); err != nil {
		return err
	}
	if err := s.ranks.AppendRecord(ctx, &domain.RankRecord{
		ID:        uuid.NewString(),
		AccountID: acc.ID,
		Rank:      acc.Rank,
		Method:    domain.NaturalRank,
		CreatedAt: acc.CreatedAt,
	}); err != nil {
		return err
	}
	_, err := s.balances.CreateBalance(ctx, acc.ID)
	return err
}
