package gameservice

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekuzmichev/sheetbet/internal/cooldown"
	"github.com/ekuzmichev/sheetbet/internal/domain"
	"github.com/ekuzmichev/sheetbet/internal/keylock"
	"github.com/ekuzmichev/sheetbet/internal/ledger"
	"github.com/ekuzmichev/sheetbet/internal/ledger/memledger"
	betlogrepo "github.com/ekuzmichev/sheetbet/internal/repo/betlog-repo"
	rewardrepo "github.com/ekuzmichev/sheetbet/internal/repo/reward-repo"
	userrepo "github.com/ekuzmichev/sheetbet/internal/repo/user-repo"
	"github.com/ekuzmichev/sheetbet/internal/service/rewardservice"
	"github.com/ekuzmichev/sheetbet/internal/service/userservice"
)

var usersHeader = []string{
	"UserID", "Username", "Balance", "XP", "Level", "TotalBets",
	"LastDaily", "Streak", "JoinDate", "Milestone_10000",
}

func newService(t *testing.T, seed int64, rows ...[]string) (*Service, *memledger.Store) {
	t.Helper()
	store := memledger.New()
	store.Seed(ledger.TableUsers, usersHeader, rows...)
	store.Seed(ledger.TableRPSLog,
		[]string{"BetID", "UserID", "Bet", "PlayerChoice", "BotChoice", "Result", "Payout", "Timestamp"})
	store.Seed(ledger.TableAviatorLog,
		[]string{"BetID", "UserID", "Bet", "Target", "CrashPoint", "Result", "Payout", "Timestamp"})
	store.Seed(ledger.TableSpinLog,
		[]string{"BetID", "UserID", "Bet", "Outcome", "Payout", "Timestamp"})
	locks := keylock.New()
	users := userrepo.New(store)
	xp := userservice.New(users, locks, nil)
	rewards := rewardservice.New(users, rewardrepo.New(store), xp, locks)
	service := New(users, betlogrepo.New(store), rewards, cooldown.New(120*time.Second), locks)
	service.rng = rand.New(rand.NewSource(seed))
	return service, store
}

func TestSettleRPS(t *testing.T) {
	tests := []struct {
		player   string
		bot      string
		expected domain.GameResult
	}{
		{"rock", "scissors", domain.ResultWin},
		{"rock", "paper", domain.ResultLose},
		{"rock", "rock", domain.ResultDraw},
		{"paper", "rock", domain.ResultWin},
		{"paper", "scissors", domain.ResultLose},
		{"scissors", "paper", domain.ResultWin},
		{"scissors", "rock", domain.ResultLose},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, settleRPS(tt.player, tt.bot), "%s vs %s", tt.player, tt.bot)
	}
}

func TestCrashPoint(t *testing.T) {
	// Normal draw spans [1, 10].
	assert.Equal(t, 1.0, crashPoint([]float64{0, 0.99}))
	assert.Equal(t, 10.0, crashPoint([]float64{0.99999, 0.99}))
	assert.InDelta(t, 5.5, crashPoint([]float64{0.5, 0.99}), 0.01)
	// A sub-5% second draw forces the early-crash band [1, 1.5].
	early := crashPoint([]float64{0.9, 0.01})
	assert.GreaterOrEqual(t, early, 1.0)
	assert.LessOrEqual(t, early, 1.5)
}

func TestSpinWheel(t *testing.T) {
	tests := []struct {
		draw     float64
		expected string
	}{
		{0.0, "LOSE"},
		{0.40, "LOSE"}, // boundary draws land on the lower sector
		{0.41, "BREAK_EVEN"},
		{0.60, "BREAK_EVEN"},
		{0.61, "WIN_2X"},
		{0.80, "WIN_2X"},
		{0.81, "WIN_5X"},
		{0.95, "WIN_5X"},
		{0.96, "JACKPOT"},
		{1.0, "JACKPOT"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, spinWheel(tt.draw).Name, "draw %.2f", tt.draw)
	}
}

func TestSpinWheelFrequencies(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	counts := make(map[string]int)
	const n = 100000
	for i := 0; i < n; i++ {
		counts[spinWheel(rng.Float64()).Name]++
	}
	assert.InDelta(t, 0.40, float64(counts["LOSE"])/n, 0.01)
	assert.InDelta(t, 0.20, float64(counts["BREAK_EVEN"])/n, 0.01)
	assert.InDelta(t, 0.20, float64(counts["WIN_2X"])/n, 0.01)
	assert.InDelta(t, 0.15, float64(counts["WIN_5X"])/n, 0.01)
	assert.InDelta(t, 0.05, float64(counts["JACKPOT"])/n, 0.01)
}

func TestPlayRPS_Settles(t *testing.T) {
	const seed = 42
	service, store := newService(t, seed,
		[]string{"100", "alice", "1000", "0", "1", "0", "", "0", "", "false"},
	)

	out, err := service.PlayRPS(context.Background(), "100", 200, "Rock")
	require.NoError(t, err)

	// Re-derive the bot hand from the same seed.
	expectedBot := rpsChoices[rand.New(rand.NewSource(seed)).Intn(3)]
	assert.Equal(t, expectedBot, out.BotChoice)
	assert.Equal(t, "rock", out.PlayerChoice)
	assert.Equal(t, settleRPS("rock", expectedBot), out.Result)

	switch out.Result {
	case domain.ResultWin:
		assert.Equal(t, 1200, out.NewBalance)
	case domain.ResultDraw:
		assert.Equal(t, 1000, out.NewBalance)
	default:
		assert.Equal(t, 800, out.NewBalance)
	}
	assert.Equal(t, 200, out.TotalBets)

	user, err := userrepo.New(store).GetByID(context.Background(), "100")
	require.NoError(t, err)
	assert.Equal(t, out.NewBalance, user.Balance)
	assert.Equal(t, 200, user.TotalBets)

	rows, err := store.FetchAllRows(context.Background(), ledger.TableRPSLog)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "100", rows[0].Str("UserID"))
	assert.Equal(t, 200, rows[0].Int("Bet"))
}

func TestPlayRPS_Validation(t *testing.T) {
	service, _ := newService(t, 1,
		[]string{"100", "alice", "1000", "0", "1", "0", "", "0", "", "false"},
	)
	ctx := context.Background()

	_, err := service.PlayRPS(ctx, "100", 100, "lizard")
	assert.ErrorIs(t, err, ErrInvalidChoice)
	_, err = service.PlayRPS(ctx, "100", 0, "rock")
	assert.ErrorIs(t, err, ErrInvalidBet)
	_, err = service.PlayRPS(ctx, "100", 5000, "rock")
	assert.ErrorIs(t, err, ErrInsufficientBalance)
	_, err = service.PlayRPS(ctx, "999", 100, "rock")
	assert.ErrorIs(t, err, ErrNotRegistered)
}

func TestCooldownBlocksSecondPlay(t *testing.T) {
	service, _ := newService(t, 1,
		[]string{"100", "alice", "100000", "0", "1", "0", "", "0", "", "false"},
	)
	ctx := context.Background()

	_, err := service.PlaySpin(ctx, "100", 100)
	require.NoError(t, err)

	_, err = service.PlaySpin(ctx, "100", 100)
	var cd *CooldownError
	require.ErrorAs(t, err, &cd)
	assert.Equal(t, GameSpin, cd.Game)
	assert.Greater(t, cd.Remaining, time.Duration(0))

	// Other games stay available; a failed round never arms the clock.
	_, err = service.PlayRPS(ctx, "100", 100, "rock")
	assert.NoError(t, err)
}

func TestPlayAviator(t *testing.T) {
	const seed = 3
	service, _ := newService(t, seed,
		[]string{"100", "alice", "1000", "0", "1", "0", "", "0", "", "false"},
	)

	_, err := service.PlayAviator(context.Background(), "100", 100, 1.0)
	assert.ErrorIs(t, err, ErrInvalidMultiplier)

	out, err := service.PlayAviator(context.Background(), "100", 100, 2.0)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(seed))
	expectedCrash := crashPoint([]float64{rng.Float64(), rng.Float64()})
	assert.Equal(t, expectedCrash, out.CrashPoint)
	if expectedCrash >= 2.0 {
		assert.Equal(t, domain.ResultWin, out.Result)
		assert.Equal(t, 200, out.Payout)
		assert.Equal(t, 1100, out.NewBalance)
	} else {
		assert.Equal(t, domain.ResultLose, out.Result)
		assert.Equal(t, 0, out.Payout)
		assert.Equal(t, 900, out.NewBalance)
	}
}

func TestSettleTriggersMilestone(t *testing.T) {
	// 9900 already wagered; a 200 coin spin crosses the 10K milestone.
	service, store := newService(t, 1,
		[]string{"100", "alice", "5000", "0", "1", "9900", "", "0", "", "false"},
	)

	out, err := service.PlaySpin(context.Background(), "100", 200)
	require.NoError(t, err)
	assert.Equal(t, 10100, out.TotalBets)
	require.NotNil(t, out.Rewards)
	require.Len(t, out.Rewards.Claimed, 1)
	assert.Equal(t, 10000, out.Rewards.Claimed[0].Threshold)
	assert.Equal(t, 1000, out.Rewards.Coins)

	user, err := userrepo.New(store).GetByID(context.Background(), "100")
	require.NoError(t, err)
	assert.True(t, user.Milestones[10000])
	assert.Equal(t, out.NewBalance+1000, user.Balance, "milestone credit lands on top of the settled balance")
}
