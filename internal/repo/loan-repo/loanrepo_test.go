package loanrepo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekuzmichev/sheetbet/internal/domain"
	"github.com/ekuzmichev/sheetbet/internal/ledger"
	"github.com/ekuzmichev/sheetbet/internal/ledger/memledger"
)

var loansHeader = []string{
	"LoanID", "UserID", "Amount", "InterestRate", "DueDate", "RepayAmount", "Status", "Timestamp",
}

func newRepo(rows ...[]string) *Repository {
	store := memledger.New()
	store.Seed(ledger.TableLoans, loansHeader, rows...)
	return New(store)
}

func TestAppendAndList(t *testing.T) {
	repo := newRepo()

	loan := &domain.Loan{
		LoanID: "LN-20260901120000", UserID: "100", Amount: 1000,
		InterestRate: 0.1, DueDate: "2026-09-08", RepayAmount: 1100,
		Status: domain.LoanActive, Timestamp: "2026-09-01 12:00:00",
	}
	require.NoError(t, repo.Append(context.Background(), loan))

	loans, err := repo.ListByUser(context.Background(), "100")
	require.NoError(t, err)
	require.Len(t, loans, 1)
	assert.Equal(t, "LN-20260901120000", loans[0].LoanID)
	assert.Equal(t, 1100, loans[0].RepayAmount)
	assert.Equal(t, domain.LoanActive, loans[0].Status)
	assert.Equal(t, 2, loans[0].Row)
}

func TestActiveLoan(t *testing.T) {
	repo := newRepo(
		[]string{"LN-1", "100", "500", "0.1", "2026-01-08", "550", "Paid", "2026-01-01 10:00:00"},
		[]string{"LN-2", "100", "800", "0.1", "2026-02-08", "880", "active", "2026-02-01 10:00:00"},
		[]string{"LN-3", "200", "900", "0.1", "2026-02-08", "990", "Active", "2026-02-01 10:00:00"},
		[]string{"LN-4", "100", "700", "0.1", "2026-03-08", "770", "Active", "2026-03-01 10:00:00"},
	)

	// Last active row wins when the invariant has somehow been violated,
	// and status matching ignores case.
	active, err := repo.ActiveLoan(context.Background(), "100")
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, "LN-4", active.LoanID)

	none, err := repo.ActiveLoan(context.Background(), "999")
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestSetStatus(t *testing.T) {
	repo := newRepo(
		[]string{"LN-1", "100", "500", "0.1", "2026-01-08", "550", "Active", "2026-01-01 10:00:00"},
	)

	active, err := repo.ActiveLoan(context.Background(), "100")
	require.NoError(t, err)
	require.NotNil(t, active)

	at := time.Date(2026, 1, 3, 9, 30, 0, 0, time.UTC)
	require.NoError(t, repo.SetStatus(context.Background(), active, domain.LoanPaid, at))
	assert.Equal(t, domain.LoanPaid, active.Status)

	loans, err := repo.ListByUser(context.Background(), "100")
	require.NoError(t, err)
	assert.Equal(t, domain.LoanPaid, loans[0].Status)
	assert.Equal(t, "2026-01-03 09:30:00", loans[0].Timestamp)
}

func TestClearActive(t *testing.T) {
	repo := newRepo(
		[]string{"LN-1", "100", "500", "0.1", "2026-01-08", "550", "Active", ""},
		[]string{"LN-2", "100", "800", "0.1", "2026-02-08", "880", "Paid", ""},
		[]string{"LN-3", "100", "700", "0.1", "2026-03-08", "770", "Active", ""},
	)

	cleared, err := repo.ClearActive(context.Background(), "100", time.Now())
	require.NoError(t, err)
	assert.Equal(t, 2, cleared)

	loans, err := repo.ListByUser(context.Background(), "100")
	require.NoError(t, err)
	assert.Equal(t, domain.LoanCleared, loans[0].Status)
	assert.Equal(t, domain.LoanPaid, loans[1].Status)
	assert.Equal(t, domain.LoanCleared, loans[2].Status)
}
