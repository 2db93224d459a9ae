package adminservice

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/ekuzmichev/sheetbet/internal/domain"
	userrepo "github.com/ekuzmichev/sheetbet/internal/repo/user-repo"
)

type UserService interface {
	Resolve(ctx context.Context, identifier string) (string, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	SetBalance(ctx context.Context, id string, balance int) error
	SetXP(ctx context.Context, id string, xp int) (int, int, error)
}

type UserRepo interface {
	UpdateCells(ctx context.Context, id string, fields map[string]any) error
}

type LoanRepo interface {
	ClearActive(ctx context.Context, userID string, at time.Time) (int, error)
}

type BetLogRepo interface {
	AnonymizeUser(ctx context.Context, userID string) (int, error)
}

type AdminRepo interface {
	IsAdmin(ctx context.Context, id string) bool
	Add(ctx context.Context, id, username, role string) error
}

type Service struct {
	users           UserService
	userRepo        UserRepo
	loanRepo        LoanRepo
	betLogRepo      BetLogRepo
	adminRepo       AdminRepo
	startingBalance int
	now             func() time.Time
}

func New(users UserService, userRepo UserRepo, loanRepo LoanRepo, betLogRepo BetLogRepo, adminRepo AdminRepo, startingBalance int) *Service {
	return &Service{
		users:           users,
		userRepo:        userRepo,
		loanRepo:        loanRepo,
		betLogRepo:      betLogRepo,
		adminRepo:       adminRepo,
		startingBalance: startingBalance,
		now:             time.Now,
	}
}

// IsAdmin reports whether the id is listed in the Admins table. Any lookup
// failure reads as not an admin.
func (s *Service) IsAdmin(ctx context.Context, id string) bool {
	return s.adminRepo.IsAdmin(ctx, id)
}

// MakeAdmin grants the role to a user addressed by id or @username.
func (s *Service) MakeAdmin(ctx context.Context, identifier string) (*domain.User, error) {
	user, err := s.target(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if err := s.adminRepo.Add(ctx, user.ID, user.Username, "admin"); err != nil {
		return nil, err
	}
	zap.L().Info("admin granted", zap.String("userID", user.ID))
	return user, nil
}

// ResetBalance overwrites the target's coin balance.
func (s *Service) ResetBalance(ctx context.Context, identifier string, amount int) (*domain.User, error) {
	user, err := s.target(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if err := s.users.SetBalance(ctx, user.ID, amount); err != nil {
		return nil, err
	}
	return user, nil
}

// SetXP overwrites the target's XP and recomputes the level from the tier
// table. Returns the stored XP and the resulting level.
func (s *Service) SetXP(ctx context.Context, identifier string, xp int) (*domain.User, int, int, error) {
	user, err := s.target(ctx, identifier)
	if err != nil {
		return nil, 0, 0, err
	}
	newXP, newLevel, err := s.users.SetXP(ctx, user.ID, xp)
	if err != nil {
		return nil, 0, 0, err
	}
	return user, newXP, newLevel, nil
}

// ResetXP zeroes the target's XP and drops the level back to 1.
func (s *Service) ResetXP(ctx context.Context, identifier string) (*domain.User, error) {
	user, err := s.target(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if _, _, err := s.users.SetXP(ctx, user.ID, 0); err != nil {
		return nil, err
	}
	return user, nil
}

// ResetDaily clears the claim marker and streak so the target can claim again
// immediately.
func (s *Service) ResetDaily(ctx context.Context, identifier string) (*domain.User, error) {
	user, err := s.target(ctx, identifier)
	if err != nil {
		return nil, err
	}
	fields := map[string]any{
		userrepo.ColLastDaily: "",
		userrepo.ColStreak:    0,
	}
	if err := s.userRepo.UpdateCells(ctx, user.ID, fields); err != nil {
		return nil, err
	}
	return user, nil
}

// BetsReset reports what a wager-history reset touched.
type BetsReset struct {
	User         *domain.User
	LogsDetached int
}

// ResetBets zeroes the lifetime wager counter, unsets every milestone flag on
// the row and detaches the target's game log rows. Log rows are kept for
// bookkeeping with a blanked UserID rather than deleted.
func (s *Service) ResetBets(ctx context.Context, identifier string) (*BetsReset, error) {
	user, err := s.target(ctx, identifier)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{userrepo.ColTotalBets: 0}
	for threshold := range user.Milestones {
		fields[userrepo.MilestoneColumn(threshold)] = false
	}
	if err := s.userRepo.UpdateCells(ctx, user.ID, fields); err != nil {
		return nil, err
	}

	detached, err := s.betLogRepo.AnonymizeUser(ctx, user.ID)
	if err != nil {
		zap.L().Error("failed to detach log rows", zap.Error(err))
	}
	return &BetsReset{User: user, LogsDetached: detached}, nil
}

// ResetLoans force-clears every active loan of the target without collecting
// repayment. Returns the number of loans cleared.
func (s *Service) ResetLoans(ctx context.Context, identifier string) (*domain.User, int, error) {
	user, err := s.target(ctx, identifier)
	if err != nil {
		return nil, 0, err
	}
	cleared, err := s.loanRepo.ClearActive(ctx, user.ID, s.now())
	if err != nil {
		return nil, 0, err
	}
	return user, cleared, nil
}

// FullReset is the outcome of a complete account reset.
type FullReset struct {
	User         *domain.User
	NewBalance   int
	LoansCleared int
	LogsDetached int
}

// ResetAll returns the account to its registration state: starting balance,
// zero XP and counters, no claims, no milestone flags, loans cleared and log
// rows detached.
func (s *Service) ResetAll(ctx context.Context, identifier string) (*FullReset, error) {
	user, err := s.target(ctx, identifier)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{
		userrepo.ColBalance:   s.startingBalance,
		userrepo.ColXP:        0,
		userrepo.ColLevel:     1,
		userrepo.ColTotalBets: 0,
		userrepo.ColLastDaily: "",
		userrepo.ColStreak:    0,
	}
	for threshold := range user.Milestones {
		fields[userrepo.MilestoneColumn(threshold)] = false
	}
	if err := s.userRepo.UpdateCells(ctx, user.ID, fields); err != nil {
		return nil, err
	}

	cleared, err := s.loanRepo.ClearActive(ctx, user.ID, s.now())
	if err != nil {
		zap.L().Error("failed to clear loans during reset", zap.Error(err))
	}
	detached, err := s.betLogRepo.AnonymizeUser(ctx, user.ID)
	if err != nil {
		zap.L().Error("failed to detach log rows during reset", zap.Error(err))
	}

	zap.L().Info("account reset",
		zap.String("userID", user.ID), zap.Int("loansCleared", cleared), zap.Int("logsDetached", detached))
	return &FullReset{
		User:         user,
		NewBalance:   s.startingBalance,
		LoansCleared: cleared,
		LogsDetached: detached,
	}, nil
}

func (s *Service) target(ctx context.Context, identifier string) (*domain.User, error) {
	id, err := s.users.Resolve(ctx, identifier)
	if err != nil {
		return nil, err
	}
	return s.users.Get(ctx, id)
}
