package userrepo

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/ekuzmichev/sheetbet/internal/domain"
	"github.com/ekuzmichev/sheetbet/internal/ledger"
)

// Users table columns. The sheet may carry extra columns beyond these; the
// registry tolerates them and only ever appends new ones.
const (
	ColUserID    = "UserID"
	ColUsername  = "Username"
	ColBalance   = "Balance"
	ColXP        = "XP"
	ColLevel     = "Level"
	ColTotalBets = "TotalBets"
	ColLastDaily = "LastDaily"
	ColStreak    = "Streak"
	ColJoinDate  = "JoinDate"
	ColClaimedAt = "DailyClaimedAt"

	milestonePrefix = "Milestone_"
)

var ErrNotFound = errors.New("user not found")

type Repository struct {
	store ledger.Store
}

func New(store ledger.Store) *Repository {
	return &Repository{store: store}
}

// GetByID scans the Users table for a matching id. Returns (nil, nil) when the
// user is not registered. Ids are compared as strings since the sheet may hold
// either numbers or text in the UserID column.
func (repo *Repository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	rows, err := repo.store.FetchAllRows(ctx, ledger.TableUsers)
	if err != nil {
		zap.L().Error("can't scan users table", zap.Error(err))
		return nil, err
	}
	for i, rec := range rows {
		if rec.Str(ColUserID) == id {
			return parseUser(rec, ledger.RowIndex(i)), nil
		}
	}
	return nil, nil
}

// Create appends a new user row shaped by the current header. Known columns
// get their registration defaults, unknown extra columns are filled with an
// empty value so the sheet schema can grow without code changes.
func (repo *Repository) Create(ctx context.Context, user *domain.User) error {
	header, err := repo.store.FetchHeader(ctx, ledger.TableUsers)
	if err != nil {
		zap.L().Error("can't fetch users header", zap.Error(err))
		return err
	}
	if len(header) == 0 {
		return fmt.Errorf("users table has no header: %w", ledger.ErrSchemaMissing)
	}

	defaults := map[string]any{
		ColUserID:    user.ID,
		ColUsername:  user.Username,
		ColBalance:   user.Balance,
		ColXP:        0,
		ColLevel:     1,
		ColTotalBets: 0,
		ColLastDaily: "",
		ColStreak:    0,
		ColJoinDate:  user.JoinDate,
	}
	for threshold := range user.Milestones {
		defaults[milestoneColumn(threshold)] = false
	}

	row := make([]any, 0, len(header))
	for _, col := range header {
		if v, ok := defaults[col]; ok {
			row = append(row, v)
		} else {
			row = append(row, "")
		}
	}
	return repo.store.AppendRow(ctx, ledger.TableUsers, row)
}

// SetBalance writes only the balance cell of the user's row.
func (repo *Repository) SetBalance(ctx context.Context, id string, balance int) error {
	return repo.UpdateCells(ctx, id, map[string]any{ColBalance: balance})
}

// SetField writes a single cell. A milestone-style field missing from the
// schema extends the header additively; any other unknown field is rejected
// before touching the sheet.
func (repo *Repository) SetField(ctx context.Context, id, field string, value any) error {
	return repo.UpdateCells(ctx, id, map[string]any{field: value})
}

// UpdateCells writes the given fields cell-by-cell into the user's row. All
// schema checks happen before the first write so a missing column never
// leaves a half-updated row behind.
func (repo *Repository) UpdateCells(ctx context.Context, id string, fields map[string]any) error {
	header, err := repo.store.FetchHeader(ctx, ledger.TableUsers)
	if err != nil {
		zap.L().Error("can't fetch users header", zap.Error(err))
		return err
	}
	for field := range fields {
		if missing := ledger.MissingColumns(header, field); len(missing) > 0 {
			if !strings.HasPrefix(field, milestonePrefix) {
				return fmt.Errorf("column %q: %w", field, ledger.ErrSchemaMissing)
			}
		}
	}

	rows, err := repo.store.FetchAllRows(ctx, ledger.TableUsers)
	if err != nil {
		zap.L().Error("can't scan users table", zap.Error(err))
		return err
	}
	row := 0
	for i, rec := range rows {
		if rec.Str(ColUserID) == id {
			row = ledger.RowIndex(i)
			break
		}
	}
	if row == 0 {
		return ErrNotFound
	}

	names := make([]string, 0, len(fields))
	for field := range fields {
		names = append(names, field)
	}
	sort.Strings(names)
	for _, field := range names {
		if err := repo.store.WriteCell(ctx, ledger.TableUsers, row, field, fields[field]); err != nil {
			zap.L().Error("can't write user cell",
				zap.String("field", field), zap.Error(err))
			return err
		}
	}
	return nil
}

// RequireColumns verifies the Users schema carries every named column.
func (repo *Repository) RequireColumns(ctx context.Context, names ...string) error {
	header, err := repo.store.FetchHeader(ctx, ledger.TableUsers)
	if err != nil {
		return err
	}
	if missing := ledger.MissingColumns(header, names...); len(missing) > 0 {
		return fmt.Errorf("users table lacks %s: %w", strings.Join(missing, ", "), ledger.ErrSchemaMissing)
	}
	return nil
}

// HasColumn reports whether the Users schema already carries the column.
func (repo *Repository) HasColumn(ctx context.Context, name string) (bool, error) {
	header, err := repo.store.FetchHeader(ctx, ledger.TableUsers)
	if err != nil {
		return false, err
	}
	return len(ledger.MissingColumns(header, name)) == 0, nil
}

// ResolveIdentifier maps a raw numeric id or a (possibly @-prefixed) username
// to a user id. Returns ("", nil) when a username matches nothing.
func (repo *Repository) ResolveIdentifier(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if isNumeric(text) {
		return text, nil
	}
	name := strings.TrimPrefix(text, "@")
	rows, err := repo.store.FetchAllRows(ctx, ledger.TableUsers)
	if err != nil {
		zap.L().Error("can't scan users table", zap.Error(err))
		return "", err
	}
	for _, rec := range rows {
		if strings.EqualFold(rec.Str(ColUsername), name) {
			return rec.Str(ColUserID), nil
		}
	}
	return "", nil
}

func parseUser(rec ledger.Record, row int) *domain.User {
	user := &domain.User{
		ID:         rec.Str(ColUserID),
		Username:   rec.Str(ColUsername),
		Balance:    rec.Int(ColBalance),
		XP:         rec.Int(ColXP),
		Level:      rec.Int(ColLevel),
		TotalBets:  rec.Int(ColTotalBets),
		LastDaily:  rec.Str(ColLastDaily),
		Streak:     rec.Int(ColStreak),
		JoinDate:   rec.Str(ColJoinDate),
		Milestones: make(map[int]bool),
		Row:        row,
	}
	if user.Level < 1 {
		user.Level = 1
	}
	for col := range rec {
		if !strings.HasPrefix(col, milestonePrefix) {
			continue
		}
		threshold, err := strconv.Atoi(strings.TrimPrefix(col, milestonePrefix))
		if err != nil {
			continue
		}
		user.Milestones[threshold] = rec.Bool(col)
	}
	return user
}

func milestoneColumn(threshold int) string {
	return milestonePrefix + strconv.Itoa(threshold)
}

// MilestoneColumn exposes the flag column name for a wager threshold.
func MilestoneColumn(threshold int) string {
	return milestoneColumn(threshold)
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
