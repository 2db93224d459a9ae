package loanservice

import (
	"context"
	"errors"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/ekuzmichev/sheetbet/internal/domain"
	"github.com/ekuzmichev/sheetbet/internal/keylock"
)

const (
	// InterestRate is the flat rate applied to every loan.
	InterestRate = 0.10
	// TermDays is the nominal repayment window. Nothing is collected
	// automatically at the due date; the sweeper only reports overdue rows.
	TermDays = 7

	dateLayout = "2006-01-02"
	timeLayout = "2006-01-02 15:04:05"
)

type UserRepo interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	SetBalance(ctx context.Context, id string, balance int) error
}

type LoanRepo interface {
	Append(ctx context.Context, loan *domain.Loan) error
	ActiveLoan(ctx context.Context, userID string) (*domain.Loan, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Loan, error)
	SetStatus(ctx context.Context, loan *domain.Loan, status domain.LoanStatus, at time.Time) error
}

type Service struct {
	userRepo UserRepo
	loanRepo LoanRepo
	locks    *keylock.KeyedMutex
	now      func() time.Time
}

func New(userRepo UserRepo, loanRepo LoanRepo, locks *keylock.KeyedMutex) *Service {
	return &Service{
		userRepo: userRepo,
		loanRepo: loanRepo,
		locks:    locks,
		now:      time.Now,
	}
}

var (
	ErrNotRegistered       = errors.New("user is not registered")
	ErrInvalidAmount       = errors.New("loan amount must be positive")
	ErrActiveLoanExists    = errors.New("an active loan already exists")
	ErrNoActiveLoan        = errors.New("no active loan to repay")
	ErrInsufficientBalance = errors.New("insufficient balance to repay the loan")
)

// Create issues a loan: one active loan per user, flat 10% interest, 7 day
// term. The loan row is written before the balance credit so an interrupted
// issue shows up as an uncredited row rather than untracked coins.
func (s *Service) Create(ctx context.Context, id string, amount int) (*domain.Loan, int, error) {
	if amount <= 0 {
		return nil, 0, ErrInvalidAmount
	}

	unlock := s.locks.Lock(id)
	defer unlock()

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get user", zap.Error(err))
		return nil, 0, err
	}
	if user == nil {
		return nil, 0, ErrNotRegistered
	}

	active, err := s.loanRepo.ActiveLoan(ctx, id)
	if err != nil {
		zap.L().Error("failed to scan loans", zap.Error(err))
		return nil, 0, err
	}
	if active != nil {
		return nil, 0, ErrActiveLoanExists
	}

	now := s.now().UTC()
	loan := &domain.Loan{
		LoanID:       "LN-" + now.Format("20060102150405"),
		UserID:       id,
		Amount:       amount,
		InterestRate: InterestRate,
		DueDate:      now.AddDate(0, 0, TermDays).Format(dateLayout),
		RepayAmount:  int(math.Round(float64(amount) * (1 + InterestRate))),
		Status:       domain.LoanActive,
		Timestamp:    now.Format(timeLayout),
	}
	if err := s.loanRepo.Append(ctx, loan); err != nil {
		zap.L().Error("failed to append loan row", zap.Error(err))
		return nil, 0, err
	}

	newBalance := user.Balance + amount
	if err := s.userRepo.SetBalance(ctx, id, newBalance); err != nil {
		// The loan row exists but the coins were never credited. Surface the
		// loan id so the sweep can spot the orphan.
		zap.L().Error("loan credited to ledger but not to balance",
			zap.String("loanID", loan.LoanID), zap.Error(err))
		return nil, 0, err
	}

	zap.L().Info("loan issued",
		zap.String("userID", id), zap.String("loanID", loan.LoanID), zap.Int("amount", amount))
	return loan, newBalance, nil
}

// Repay settles the user's active loan in full. Partial repayment is not
// supported.
func (s *Service) Repay(ctx context.Context, id string) (*domain.Loan, int, error) {
	unlock := s.locks.Lock(id)
	defer unlock()

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get user", zap.Error(err))
		return nil, 0, err
	}
	if user == nil {
		return nil, 0, ErrNotRegistered
	}

	active, err := s.loanRepo.ActiveLoan(ctx, id)
	if err != nil {
		zap.L().Error("failed to scan loans", zap.Error(err))
		return nil, 0, err
	}
	if active == nil {
		return nil, 0, ErrNoActiveLoan
	}
	if user.Balance < active.RepayAmount {
		return nil, 0, ErrInsufficientBalance
	}

	newBalance := user.Balance - active.RepayAmount
	if err := s.userRepo.SetBalance(ctx, id, newBalance); err != nil {
		zap.L().Error("failed to debit repayment", zap.Error(err))
		return nil, 0, err
	}
	if err := s.loanRepo.SetStatus(ctx, active, domain.LoanPaid, s.now()); err != nil {
		zap.L().Error("repayment debited but loan still marked active",
			zap.String("loanID", active.LoanID), zap.Error(err))
		return nil, 0, err
	}

	zap.L().Info("loan repaid",
		zap.String("userID", id), zap.String("loanID", active.LoanID))
	return active, newBalance, nil
}

// History returns the user's active loan (nil when none) and up to limit most
// recent loan rows, oldest first.
func (s *Service) History(ctx context.Context, id string, limit int) (*domain.Loan, []domain.Loan, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, ErrNotRegistered
	}

	loans, err := s.loanRepo.ListByUser(ctx, id)
	if err != nil {
		zap.L().Error("failed to scan loans", zap.Error(err))
		return nil, nil, err
	}

	var active *domain.Loan
	for i := range loans {
		if loans[i].Status == domain.LoanActive {
			active = &loans[i]
		}
	}
	if limit > 0 && len(loans) > limit {
		loans = loans[len(loans)-limit:]
	}
	return active, loans, nil
}
