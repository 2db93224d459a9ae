package repo

import (
	"github.com/ekuzmichev/sheetbet/internal/ledger"
	adminrepo "github.com/ekuzmichev/sheetbet/internal/repo/admin-repo"
	betlogrepo "github.com/ekuzmichev/sheetbet/internal/repo/betlog-repo"
	loanrepo "github.com/ekuzmichev/sheetbet/internal/repo/loan-repo"
	rewardrepo "github.com/ekuzmichev/sheetbet/internal/repo/reward-repo"
	userrepo "github.com/ekuzmichev/sheetbet/internal/repo/user-repo"
)

// Repositories bundles every table-backed repository over one shared store.
type Repositories struct {
	UserRepo   *userrepo.Repository
	LoanRepo   *loanrepo.Repository
	RewardRepo *rewardrepo.Repository
	BetLogRepo *betlogrepo.Repository
	AdminRepo  *adminrepo.Repository
}

func New(store ledger.Store) *Repositories {
	return &Repositories{
		UserRepo:   userrepo.New(store),
		LoanRepo:   loanrepo.New(store),
		RewardRepo: rewardrepo.New(store),
		BetLogRepo: betlogrepo.New(store),
		AdminRepo:  adminrepo.New(store),
	}
}
