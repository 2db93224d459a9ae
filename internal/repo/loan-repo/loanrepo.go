package loanrepo

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ekuzmichev/sheetbet/internal/domain"
	"github.com/ekuzmichev/sheetbet/internal/ledger"
)

const (
	ColLoanID       = "LoanID"
	ColUserID       = "UserID"
	ColAmount       = "Amount"
	ColInterestRate = "InterestRate"
	ColDueDate      = "DueDate"
	ColRepayAmount  = "RepayAmount"
	ColStatus       = "Status"
	ColTimestamp    = "Timestamp"
)

type Repository struct {
	store ledger.Store
}

func New(store ledger.Store) *Repository {
	return &Repository{store: store}
}

// Append writes a new loan row to the log.
func (repo *Repository) Append(ctx context.Context, loan *domain.Loan) error {
	row := []any{
		loan.LoanID, loan.UserID, loan.Amount, loan.InterestRate,
		loan.DueDate, loan.RepayAmount, string(loan.Status), loan.Timestamp,
	}
	if err := repo.store.AppendRow(ctx, ledger.TableLoans, row); err != nil {
		zap.L().Error("can't append loan row", zap.Error(err))
		return err
	}
	return nil
}

// ActiveLoan returns the user's active loan, or nil when none exists. When the
// single-active invariant has been violated somehow, the last scanned row wins.
func (repo *Repository) ActiveLoan(ctx context.Context, userID string) (*domain.Loan, error) {
	loans, err := repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	var active *domain.Loan
	for i := range loans {
		if loans[i].Status == domain.LoanActive {
			active = &loans[i]
		}
	}
	return active, nil
}

// ListByUser returns all of the user's loan rows in table order.
func (repo *Repository) ListByUser(ctx context.Context, userID string) ([]domain.Loan, error) {
	rows, err := repo.store.FetchAllRows(ctx, ledger.TableLoans)
	if err != nil {
		zap.L().Error("can't scan loan table", zap.Error(err))
		return nil, err
	}
	var loans []domain.Loan
	for i, rec := range rows {
		if rec.Str(ColUserID) != userID {
			continue
		}
		loans = append(loans, parseLoan(rec, ledger.RowIndex(i)))
	}
	return loans, nil
}

// ListActive returns every active loan across all users.
func (repo *Repository) ListActive(ctx context.Context) ([]domain.Loan, error) {
	rows, err := repo.store.FetchAllRows(ctx, ledger.TableLoans)
	if err != nil {
		zap.L().Error("can't scan loan table", zap.Error(err))
		return nil, err
	}
	var active []domain.Loan
	for i, rec := range rows {
		if parseStatus(rec.Str(ColStatus)) != domain.LoanActive {
			continue
		}
		active = append(active, parseLoan(rec, ledger.RowIndex(i)))
	}
	return active, nil
}

// SetStatus transitions a scanned loan row and stamps the transition time.
func (repo *Repository) SetStatus(ctx context.Context, loan *domain.Loan, status domain.LoanStatus, at time.Time) error {
	if err := repo.store.WriteCell(ctx, ledger.TableLoans, loan.Row, ColStatus, string(status)); err != nil {
		zap.L().Error("can't update loan status", zap.Error(err))
		return err
	}
	if err := repo.store.WriteCell(ctx, ledger.TableLoans, loan.Row, ColTimestamp, at.UTC().Format("2006-01-02 15:04:05")); err != nil {
		zap.L().Error("can't stamp loan row", zap.Error(err))
		return err
	}
	loan.Status = status
	return nil
}

// ClearActive marks every active loan of the user as Cleared. Returns the
// number of rows transitioned.
func (repo *Repository) ClearActive(ctx context.Context, userID string, at time.Time) (int, error) {
	loans, err := repo.ListByUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	cleared := 0
	for i := range loans {
		if loans[i].Status != domain.LoanActive {
			continue
		}
		if err := repo.SetStatus(ctx, &loans[i], domain.LoanCleared, at); err != nil {
			return cleared, err
		}
		cleared++
	}
	return cleared, nil
}

func parseStatus(s string) domain.LoanStatus {
	switch strings.ToLower(s) {
	case "active":
		return domain.LoanActive
	case "paid":
		return domain.LoanPaid
	case "cleared":
		return domain.LoanCleared
	}
	return domain.LoanStatus(s)
}

func parseLoan(rec ledger.Record, row int) domain.Loan {
	status := parseStatus(rec.Str(ColStatus))
	return domain.Loan{
		LoanID:       rec.Str(ColLoanID),
		UserID:       rec.Str(ColUserID),
		Amount:       rec.Int(ColAmount),
		InterestRate: rec.Float(ColInterestRate),
		DueDate:      rec.Str(ColDueDate),
		RepayAmount:  rec.Int(ColRepayAmount),
		Status:       status,
		Timestamp:    rec.Str(ColTimestamp),
		Row:          row,
	}
}
