package rewardrepo

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/ekuzmichev/sheetbet/internal/domain"
	"github.com/ekuzmichev/sheetbet/internal/ledger"
)

const (
	ColThreshold   = "Threshold"
	ColReward      = "Reward"
	ColXP          = "XP"
	ColDescription = "Description"
	ColActive      = "Active"
	ColLastUpdated = "LastUpdated"
)

var milestoneHeader = []any{
	ColThreshold, ColReward, ColXP, ColDescription, ColActive, ColLastUpdated,
}

var claimLogHeader = []any{
	"RewardID", "UserID", "Username", "Threshold", "CoinsAwarded", "XPAwarded", "Timestamp",
}

// Defaults seeded into an empty BettingRewards table on first read.
var Defaults = []domain.Milestone{
	{Threshold: 10000, Reward: 1000, XP: 100, Description: "10K Betting Milestone", Active: true},
	{Threshold: 20000, Reward: 2500, XP: 250, Description: "20K Betting Milestone", Active: true},
	{Threshold: 50000, Reward: 7500, XP: 500, Description: "50K Betting Milestone", Active: true},
	{Threshold: 100000, Reward: 20000, XP: 1000, Description: "100K Betting Milestone", Active: true},
	{Threshold: 1000000, Reward: 500000, XP: 10000, Description: "1M Betting Milestone", Active: true},
}

type Repository struct {
	store ledger.Store
}

func New(store ledger.Store) *Repository {
	return &Repository{store: store}
}

// List returns every configured milestone (active or not) sorted ascending by
// threshold. An empty config table is seeded with the defaults first.
func (repo *Repository) List(ctx context.Context) ([]domain.Milestone, error) {
	rows, err := repo.store.FetchAllRows(ctx, ledger.TableMilestones)
	if err != nil {
		zap.L().Error("can't scan milestone table", zap.Error(err))
		return nil, err
	}
	if len(rows) == 0 {
		if err := repo.Seed(ctx); err != nil {
			return nil, err
		}
		rows, err = repo.store.FetchAllRows(ctx, ledger.TableMilestones)
		if err != nil {
			return nil, err
		}
	}

	milestones := make([]domain.Milestone, 0, len(rows))
	for i, rec := range rows {
		milestones = append(milestones, domain.Milestone{
			Threshold:   rec.Int(ColThreshold),
			Reward:      rec.Int(ColReward),
			XP:          rec.Int(ColXP),
			Description: rec.Str(ColDescription),
			Active:      rec.Bool(ColActive),
			Row:         ledger.RowIndex(i),
		})
	}
	sort.SliceStable(milestones, func(i, j int) bool {
		return milestones[i].Threshold < milestones[j].Threshold
	})
	return milestones, nil
}

// Seed resets the milestone table to the default tier set.
func (repo *Repository) Seed(ctx context.Context) error {
	if err := repo.store.ClearTable(ctx, ledger.TableMilestones); err != nil {
		return err
	}
	if err := repo.store.AppendRow(ctx, ledger.TableMilestones, milestoneHeader); err != nil {
		return err
	}
	now := time.Now().UTC().Format("2006-01-02 15:04:05")
	for _, m := range Defaults {
		row := []any{m.Threshold, m.Reward, m.XP, m.Description, m.Active, now}
		if err := repo.store.AppendRow(ctx, ledger.TableMilestones, row); err != nil {
			return err
		}
	}
	zap.L().Info("milestone table seeded with defaults")
	return nil
}

// Add appends a new milestone tier.
func (repo *Repository) Add(ctx context.Context, m domain.Milestone) error {
	now := time.Now().UTC().Format("2006-01-02 15:04:05")
	row := []any{m.Threshold, m.Reward, m.XP, m.Description, m.Active, now}
	if err := repo.store.AppendRow(ctx, ledger.TableMilestones, row); err != nil {
		zap.L().Error("can't append milestone", zap.Error(err))
		return err
	}
	return nil
}

// UpdateField writes one cell of a scanned milestone row.
func (repo *Repository) UpdateField(ctx context.Context, m *domain.Milestone, column string, value any) error {
	if err := repo.store.WriteCell(ctx, ledger.TableMilestones, m.Row, column, value); err != nil {
		zap.L().Error("can't update milestone cell", zap.String("column", column), zap.Error(err))
		return err
	}
	stamp := time.Now().UTC().Format("2006-01-02 15:04:05")
	return repo.store.WriteCell(ctx, ledger.TableMilestones, m.Row, ColLastUpdated, stamp)
}

// Delete removes a milestone row entirely.
func (repo *Repository) Delete(ctx context.Context, m *domain.Milestone) error {
	if err := repo.store.DeleteRow(ctx, ledger.TableMilestones, m.Row); err != nil {
		zap.L().Error("can't delete milestone row", zap.Error(err))
		return err
	}
	return nil
}

// AppendClaim records a milestone payout in the audit log. The log is
// write-only as far as the engine is concerned.
func (repo *Repository) AppendClaim(ctx context.Context, claim *domain.RewardClaim) error {
	header, err := repo.store.FetchHeader(ctx, ledger.TableRewardLog)
	if err != nil {
		return err
	}
	if len(header) == 0 {
		if err := repo.store.AppendRow(ctx, ledger.TableRewardLog, claimLogHeader); err != nil {
			return err
		}
	}
	row := []any{
		claim.RewardID, claim.UserID, claim.Username, claim.Threshold,
		claim.Coins, claim.XP, claim.Timestamp.UTC().Format("2006-01-02 15:04:05"),
	}
	if err := repo.store.AppendRow(ctx, ledger.TableRewardLog, row); err != nil {
		zap.L().Error("can't append reward claim", zap.Error(err))
		return err
	}
	return nil
}
