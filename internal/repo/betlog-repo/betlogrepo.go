package betlogrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/ekuzmichev/sheetbet/internal/domain"
	"github.com/ekuzmichev/sheetbet/internal/ledger"
)

const timeLayout = "2006-01-02 15:04:05"

// Repository appends settled rounds to the per-game log tables. Logs are
// append-only; the only mutation ever applied is the admin reset that blanks
// the UserID cell to detach rows from a user.
type Repository struct {
	store ledger.Store
}

func New(store ledger.Store) *Repository {
	return &Repository{store: store}
}

func (repo *Repository) AppendRPS(ctx context.Context, round *domain.RPSRound) error {
	row := []any{
		round.BetID, round.UserID, round.Bet, round.PlayerChoice,
		round.BotChoice, string(round.Result), round.Payout,
		round.PlayedAt.UTC().Format(timeLayout),
	}
	return repo.append(ctx, ledger.TableRPSLog, row)
}

func (repo *Repository) AppendCrash(ctx context.Context, round *domain.CrashRound) error {
	row := []any{
		round.BetID, round.UserID, round.Bet, round.Target,
		round.CrashPoint, string(round.Result), round.Payout,
		round.PlayedAt.UTC().Format(timeLayout),
	}
	return repo.append(ctx, ledger.TableAviatorLog, row)
}

func (repo *Repository) AppendSpin(ctx context.Context, round *domain.SpinRound) error {
	row := []any{
		round.BetID, round.UserID, round.Bet, round.Outcome,
		round.Payout, round.PlayedAt.UTC().Format(timeLayout),
	}
	return repo.append(ctx, ledger.TableSpinLog, row)
}

func (repo *Repository) append(ctx context.Context, table string, row []any) error {
	if err := repo.store.AppendRow(ctx, table, row); err != nil {
		zap.L().Error("can't append round log", zap.String("table", table), zap.Error(err))
		return err
	}
	return nil
}

// AnonymizeUser blanks the UserID cell of every log row belonging to the user
// across all game logs and the reward audit log. Rows stay in place so totals
// and history remain auditable; they just stop matching per-user queries.
func (repo *Repository) AnonymizeUser(ctx context.Context, userID string) (int, error) {
	tables := []string{
		ledger.TableAviatorLog, ledger.TableSpinLog,
		ledger.TableRPSLog, ledger.TableRewardLog,
	}
	cleared := 0
	for _, table := range tables {
		rows, err := repo.store.FetchAllRows(ctx, table)
		if err != nil {
			zap.L().Error("can't scan log table", zap.String("table", table), zap.Error(err))
			continue
		}
		for i, rec := range rows {
			if rec.Str("UserID") != userID {
				continue
			}
			if err := repo.store.WriteCell(ctx, table, ledger.RowIndex(i), "UserID", ""); err != nil {
				zap.L().Error("can't blank log row", zap.String("table", table), zap.Error(err))
				continue
			}
			cleared++
		}
	}
	return cleared, nil
}
