package betlogrepo

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

func seededStore() *memledger.Store {
	store := memledger.New()
	store.Seed(ledger.TableRPSLog,
		[]string{"BetID", "UserID", "Bet", "PlayerChoice", "BotChoice", "Result", "Payout", "Timestamp"})
	store.Seed(ledger.TableAviatorLog,
		[]string{"BetID", "UserID", "Bet", "Target", "CrashPoint", "Result", "Payout", "Timestamp"})
	store.Seed(ledger.TableSpinLog,
		[]string{"BetID", "UserID", "Bet", "Outcome", "Payout", "Timestamp"})
	store.Seed(ledger.TableRewardLog,
		[]string{"RewardID", "UserID", "Username", "Threshold", "CoinsAwarded", "XPAwarded", "Timestamp"})
	return store
}

func TestAppendRounds(t *testing.T) {
	store := seededStore()
	repo := New(store)
	at := time.Date(2026, 9, 1, 15, 4, 5, 0, time.UTC)

	require.NoError(t, repo.AppendRPS(context.Background(), &domain.RPSRound{
		BetID: "RPS-1", UserID: "100", Bet: 500, PlayerChoice: "rock",
		BotChoice: "scissors", Result: domain.ResultWin, Payout: 1000, PlayedAt: at,
	}))
	require.NoError(t, repo.AppendCrash(context.Background(), &domain.CrashRound{
		BetID: "AVI-1", UserID: "100", Bet: 500, Target: 2.5,
		CrashPoint: 3.1, Result: domain.ResultWin, Payout: 1250, PlayedAt: at,
	}))
	require.NoError(t, repo.AppendSpin(context.Background(), &domain.SpinRound{
		BetID: "SPN-1", UserID: "100", Bet: 500, Outcome: "JACKPOT", Payout: 5000, PlayedAt: at,
	}))

	rps, err := store.FetchAllRows(context.Background(), ledger.TableRPSLog)
	require.NoError(t, err)
	require.Len(t, rps, 1)
	assert.Equal(t, "WIN", rps[0]["Result"])
	assert.Equal(t, "2026-09-01 15:04:05", rps[0]["Timestamp"])

	avi, err := store.FetchAllRows(context.Background(), ledger.TableAviatorLog)
	require.NoError(t, err)
	require.Len(t, avi, 1)
	assert.Equal(t, "2.5", avi[0]["Target"])

	spin, err := store.FetchAllRows(context.Background(), ledger.TableSpinLog)
	require.NoError(t, err)
	require.Len(t, spin, 1)
	assert.Equal(t, "JACKPOT", spin[0]["Outcome"])
}

func TestAnonymizeUser(t *testing.T) {
	store := seededStore()
	repo := New(store)
	at := time.Now()

	require.NoError(t, repo.AppendRPS(context.Background(), &domain.RPSRound{
		BetID: "RPS-1", UserID: "100", Bet: 100, PlayerChoice: "rock",
		BotChoice: "rock", Result: domain.ResultDraw, Payout: 100, PlayedAt: at,
	}))
	require.NoError(t, repo.AppendSpin(context.Background(), &domain.SpinRound{
		BetID: "SPN-1", UserID: "100", Bet: 100, Outcome: "LOSE", Payout: 0, PlayedAt: at,
	}))
	require.NoError(t, repo.AppendSpin(context.Background(), &domain.SpinRound{
		BetID: "SPN-2", UserID: "200", Bet: 100, Outcome: "LOSE", Payout: 0, PlayedAt: at,
	}))

	cleared, err := repo.AnonymizeUser(context.Background(), "100")
	require.NoError(t, err)
	assert.Equal(t, 2, cleared)

	spin, err := store.FetchAllRows(context.Background(), ledger.TableSpinLog)
	require.NoError(t, err)
	require.Len(t, spin, 2) // rows survive, only the user link is gone
	assert.Equal(t, "", spin[0]["UserID"])
	assert.Equal(t, "200", spin[1]["UserID"])
}
