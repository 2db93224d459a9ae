package rewardrepo

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

func TestListSeedsDefaults(t *testing.T) {
	store := memledger.New()
	repo := New(store)

	milestones, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, milestones, 5)

	assert.Equal(t, 10000, milestones[0].Threshold)
	assert.Equal(t, 1000, milestones[0].Reward)
	assert.Equal(t, 100, milestones[0].XP)
	assert.True(t, milestones[0].Active)
	assert.Equal(t, 1000000, milestones[4].Threshold)
	assert.Equal(t, 500000, milestones[4].Reward)

	// Second read must not reseed.
	again, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, again, 5)
}

func TestListSortsByThreshold(t *testing.T) {
	store := memledger.New()
	store.Seed(ledger.TableMilestones,
		[]string{"Threshold", "Reward", "XP", "Description", "Active", "LastUpdated"},
		[]string{"50000", "7500", "500", "50K", "TRUE", ""},
		[]string{"10000", "1000", "100", "10K", "TRUE", ""},
		[]string{"20000", "2500", "250", "20K", "FALSE", ""},
	)
	repo := New(store)

	milestones, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, milestones, 3)
	assert.Equal(t, []int{10000, 20000, 50000}, []int{
		milestones[0].Threshold, milestones[1].Threshold, milestones[2].Threshold,
	})
	assert.False(t, milestones[1].Active)
}

func TestAddUpdateDelete(t *testing.T) {
	store := memledger.New()
	repo := New(store)

	_, err := repo.List(context.Background()) // seed
	require.NoError(t, err)

	require.NoError(t, repo.Add(context.Background(), domain.Milestone{
		Threshold: 15000, Reward: 3000, XP: 300, Description: "15K Betting Milestone", Active: true,
	}))

	milestones, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, milestones, 6)
	assert.Equal(t, 15000, milestones[1].Threshold)

	require.NoError(t, repo.UpdateField(context.Background(), &milestones[1], ColReward, 3500))
	milestones, err = repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3500, milestones[1].Reward)

	require.NoError(t, repo.Delete(context.Background(), &milestones[1]))
	milestones, err = repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, milestones, 5)
	for _, m := range milestones {
		assert.NotEqual(t, 15000, m.Threshold)
	}
}

func TestAppendClaim(t *testing.T) {
	store := memledger.New()
	repo := New(store)

	claim := &domain.RewardClaim{
		RewardID: "REW-abc123", UserID: "100", Username: "alice",
		Threshold: 10000, Coins: 1000, XP: 100,
		Timestamp: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.AppendClaim(context.Background(), claim))

	rows, err := store.FetchAllRows(context.Background(), ledger.TableRewardLog)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "REW-abc123", rows[0]["RewardID"])
	assert.Equal(t, "1000", rows[0]["CoinsAwarded"])
	assert.Equal(t, "2026-09-01 12:00:00", rows[0]["Timestamp"])
}
