package adminrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/ekuzmichev/sheetbet/internal/ledger"
)

const (
	ColAdminID  = "AdminID"
	ColUsername = "Username"
	ColRole     = "Role"
)

type Repository struct {
	store ledger.Store
}

func New(store ledger.Store) *Repository {
	return &Repository{store: store}
}

// IsAdmin reports whether the id appears in the Admins table. A store failure
// means "not an admin" rather than an error: authorization checks must never
// take the whole command down.
func (repo *Repository) IsAdmin(ctx context.Context, id string) bool {
	rows, err := repo.store.FetchAllRows(ctx, ledger.TableAdmins)
	if err != nil {
		zap.L().Error("can't scan admins table", zap.Error(err))
		return false
	}
	for _, rec := range rows {
		if rec.Str(ColAdminID) == id {
			return true
		}
	}
	return false
}

// Add appends an admin row unless the id is already present.
func (repo *Repository) Add(ctx context.Context, id, username, role string) error {
	rows, err := repo.store.FetchAllRows(ctx, ledger.TableAdmins)
	if err != nil {
		zap.L().Error("can't scan admins table", zap.Error(err))
		return err
	}
	for _, rec := range rows {
		if rec.Str(ColAdminID) == id {
			return nil
		}
	}

	header, err := repo.store.FetchHeader(ctx, ledger.TableAdmins)
	if err != nil {
		return err
	}
	values := map[string]any{ColAdminID: id, ColUsername: username, ColRole: role}
	var row []any
	if len(header) > 0 {
		for _, col := range header {
			if v, ok := values[col]; ok {
				row = append(row, v)
			} else {
				row = append(row, "")
			}
		}
	} else {
		row = []any{id, username, role}
	}
	return repo.store.AppendRow(ctx, ledger.TableAdmins, row)
}
