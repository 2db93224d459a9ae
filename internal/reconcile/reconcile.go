// Package reconcile periodically sweeps the loan ledger for rows that need
// attention. The sheet has no transactions, so an interrupted issue or repay
// can leave a row inconsistent with the balance it should match; the sweeper
// does not repair anything, it makes such rows visible in the logs.
package reconcile

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ekuzmichev/sheetbet/internal/config"
	"github.com/ekuzmichev/sheetbet/internal/domain"
)

const dateLayout = "2006-01-02"

type LoanRepo interface {
	ListActive(ctx context.Context) ([]domain.Loan, error)
}

type UserRepo interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

var inspecting sync.Map

type Service struct {
	loanRepo      LoanRepo
	userRepo      UserRepo
	workerPool    WorkerPoolI
	sweepInterval time.Duration
	now           func() time.Time
}

func New(cfg *config.Config, loanRepo LoanRepo, userRepo UserRepo) *Service {
	return &Service{
		loanRepo:      loanRepo,
		userRepo:      userRepo,
		workerPool:    NewWorkerPool(4),
		sweepInterval: time.Duration(cfg.ReconcileSeconds) * time.Second,
		now:           time.Now,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("loan sweeper started", zap.Duration("interval", s.sweepInterval))
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("context canceled, stopping loan sweeper")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Service) sweep(ctx context.Context) {
	loans, err := s.loanRepo.ListActive(ctx)
	if err != nil {
		zap.L().Error("failed to list active loans", zap.Error(err))
		return
	}

	overdue := s.overdue(loans)
	if len(overdue) == 0 {
		return
	}
	zap.L().Warn("overdue loans found", zap.Int("count", len(overdue)))

	var g errgroup.Group
	for _, loan := range overdue {
		loan := loan

		if _, loaded := inspecting.LoadOrStore(loan.LoanID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer inspecting.Delete(loan.LoanID)
				return s.inspect(ctx, loan)
			})
			if err != nil {
				inspecting.Delete(loan.LoanID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("error inspecting overdue loans", zap.Error(err))
	}
}

// overdue filters loans whose due date has passed. Rows with an unparseable
// due date are reported too; a loan that can't be dated can't be trusted.
func (s *Service) overdue(loans []domain.Loan) []domain.Loan {
	today := s.now().UTC().Truncate(24 * time.Hour)
	var out []domain.Loan
	for _, loan := range loans {
		due, err := time.Parse(dateLayout, loan.DueDate)
		if err != nil {
			zap.L().Warn("loan row has malformed due date",
				zap.String("loanID", loan.LoanID), zap.String("dueDate", loan.DueDate))
			out = append(out, loan)
			continue
		}
		if due.Before(today) {
			out = append(out, loan)
		}
	}
	return out
}

func (s *Service) inspect(ctx context.Context, loan domain.Loan) error {
	user, err := s.userRepo.GetByID(ctx, loan.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		zap.L().Warn("overdue loan belongs to an unknown user",
			zap.String("loanID", loan.LoanID), zap.String("userID", loan.UserID))
		return nil
	}
	zap.L().Warn("overdue loan",
		zap.String("loanID", loan.LoanID),
		zap.String("userID", loan.UserID),
		zap.String("dueDate", loan.DueDate),
		zap.Int("repayAmount", loan.RepayAmount),
		zap.Int("balance", user.Balance),
		zap.Bool("canRepay", user.Balance >= loan.RepayAmount))
	return nil
}
