package gameservice

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ekuzmichev/sheetbet/internal/cooldown"
	"github.com/ekuzmichev/sheetbet/internal/domain"
	"github.com/ekuzmichev/sheetbet/internal/keylock"
	userrepo "github.com/ekuzmichev/sheetbet/internal/repo/user-repo"
	"github.com/ekuzmichev/sheetbet/internal/service/rewardservice"
)

// Cooldown registry keys, also used as the game names in errors.
const (
	GameRPS     = "rps"
	GameAviator = "aviator"
	GameSpin    = "spin"
)

type UserRepo interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	UpdateCells(ctx context.Context, id string, fields map[string]any) error
}

type BetLogRepo interface {
	AppendRPS(ctx context.Context, round *domain.RPSRound) error
	AppendCrash(ctx context.Context, round *domain.CrashRound) error
	AppendSpin(ctx context.Context, round *domain.SpinRound) error
}

type RewardEngine interface {
	EvaluateAndClaimLocked(ctx context.Context, id string, totalWagered int) (*rewardservice.Outcome, error)
}

type Service struct {
	userRepo  UserRepo
	logRepo   BetLogRepo
	rewards   RewardEngine
	cooldowns *cooldown.Registry
	locks     *keylock.KeyedMutex

	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

func New(userRepo UserRepo, logRepo BetLogRepo, rewards RewardEngine, cooldowns *cooldown.Registry, locks *keylock.KeyedMutex) *Service {
	return &Service{
		userRepo:  userRepo,
		logRepo:   logRepo,
		rewards:   rewards,
		cooldowns: cooldowns,
		locks:     locks,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		now:       time.Now,
	}
}

var (
	ErrNotRegistered       = errors.New("user is not registered")
	ErrInvalidBet          = errors.New("bet must be positive")
	ErrInsufficientBalance = errors.New("bet exceeds balance")
	ErrInvalidChoice       = errors.New("choice must be rock, paper or scissors")
	ErrInvalidMultiplier   = errors.New("cash-out multiplier must be above 1.0")
)

// CooldownError reports how long the user must wait before playing again.
type CooldownError struct {
	Game      string
	Remaining time.Duration
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("%s on cooldown for %s", e.Game, e.Remaining.Round(time.Second))
}

// Settlement is the part of a game outcome shared by all three games.
type Settlement struct {
	BetID      string
	Bet        int
	Result     domain.GameResult
	Payout     int
	NewBalance int
	TotalBets  int
	Rewards    *rewardservice.Outcome
}

type RPSOutcome struct {
	Settlement
	PlayerChoice string
	BotChoice    string
}

type CrashOutcome struct {
	Settlement
	Target     float64
	CrashPoint float64
}

type SpinOutcome struct {
	Settlement
	Outcome    string
	Multiplier float64
}

// PlayRPS settles one rock-paper-scissors duel against a uniformly random
// bot hand. A win returns double the stake, a draw returns the stake.
func (s *Service) PlayRPS(ctx context.Context, id string, bet int, choice string) (*RPSOutcome, error) {
	choice, err := normalizeChoice(choice)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(id)
	defer unlock()

	user, err := s.admit(ctx, id, bet, GameRPS)
	if err != nil {
		return nil, err
	}

	bot := rpsChoices[s.draw(3)]
	result := settleRPS(choice, bot)
	payout := 0
	switch result {
	case domain.ResultWin:
		payout = bet * 2
	case domain.ResultDraw:
		payout = bet
	}

	settlement, err := s.settle(ctx, user, bet, payout, "RPS")
	if err != nil {
		return nil, err
	}
	settlement.Result = result

	round := &domain.RPSRound{
		BetID:        settlement.BetID,
		UserID:       id,
		Bet:          bet,
		PlayerChoice: choice,
		BotChoice:    bot,
		Result:       result,
		Payout:       payout,
		PlayedAt:     s.now().UTC(),
	}
	if err := s.logRepo.AppendRPS(ctx, round); err != nil {
		zap.L().Error("failed to log rps round", zap.String("betID", round.BetID), zap.Error(err))
	}
	s.cooldowns.Touch(id, GameRPS)
	return &RPSOutcome{Settlement: *settlement, PlayerChoice: choice, BotChoice: bot}, nil
}

// PlayAviator settles a crash round against a pre-committed cash-out target.
// The crash point is drawn uniformly from [1.0, 10.0], redrawn from
// [1.0, 1.5] five percent of the time. The player wins when the crash point
// reaches the target, paying floor(bet * target).
func (s *Service) PlayAviator(ctx context.Context, id string, bet int, target float64) (*CrashOutcome, error) {
	if target <= 1.0 {
		return nil, ErrInvalidMultiplier
	}

	unlock := s.locks.Lock(id)
	defer unlock()

	user, err := s.admit(ctx, id, bet, GameAviator)
	if err != nil {
		return nil, err
	}

	crash := crashPoint(s.randFloats(2))
	result := domain.ResultLose
	payout := 0
	if crash >= target {
		result = domain.ResultWin
		payout = int(math.Floor(float64(bet) * target))
	}

	settlement, err := s.settle(ctx, user, bet, payout, "AVI")
	if err != nil {
		return nil, err
	}
	settlement.Result = result

	round := &domain.CrashRound{
		BetID:      settlement.BetID,
		UserID:     id,
		Bet:        bet,
		Target:     target,
		CrashPoint: crash,
		Result:     result,
		Payout:     payout,
		PlayedAt:   s.now().UTC(),
	}
	if err := s.logRepo.AppendCrash(ctx, round); err != nil {
		zap.L().Error("failed to log crash round", zap.String("betID", round.BetID), zap.Error(err))
	}
	s.cooldowns.Touch(id, GameAviator)
	return &CrashOutcome{Settlement: *settlement, Target: target, CrashPoint: crash}, nil
}

// PlaySpin settles one weighted wheel spin.
func (s *Service) PlaySpin(ctx context.Context, id string, bet int) (*SpinOutcome, error) {
	unlock := s.locks.Lock(id)
	defer unlock()

	user, err := s.admit(ctx, id, bet, GameSpin)
	if err != nil {
		return nil, err
	}

	sector := spinWheel(s.randFloats(1)[0])
	payout := int(float64(bet) * sector.Multiplier)
	result := domain.ResultLose
	if payout > bet {
		result = domain.ResultWin
	} else if payout == bet {
		result = domain.ResultDraw
	}

	settlement, err := s.settle(ctx, user, bet, payout, "SPN")
	if err != nil {
		return nil, err
	}
	settlement.Result = result

	round := &domain.SpinRound{
		BetID:    settlement.BetID,
		UserID:   id,
		Bet:      bet,
		Outcome:  sector.Name,
		Payout:   payout,
		PlayedAt: s.now().UTC(),
	}
	if err := s.logRepo.AppendSpin(ctx, round); err != nil {
		zap.L().Error("failed to log spin round", zap.String("betID", round.BetID), zap.Error(err))
	}
	s.cooldowns.Touch(id, GameSpin)
	return &SpinOutcome{Settlement: *settlement, Outcome: sector.Name, Multiplier: sector.Multiplier}, nil
}

// admit runs the checks shared by every game: registration, stake validity
// and the per-game cooldown. Caller must hold the user's lock.
func (s *Service) admit(ctx context.Context, id string, bet int, game string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get user", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrNotRegistered
	}
	if bet <= 0 {
		return nil, ErrInvalidBet
	}
	if bet > user.Balance {
		return nil, ErrInsufficientBalance
	}
	if remaining := s.cooldowns.Remaining(id, game); remaining > 0 {
		return nil, &CooldownError{Game: game, Remaining: remaining}
	}
	return user, nil
}

// settle applies the money consequences of a finished round: balance delta,
// lifetime wager counter, then the milestone pass against the new total.
func (s *Service) settle(ctx context.Context, user *domain.User, bet, payout int, prefix string) (*Settlement, error) {
	newBalance := user.Balance - bet + payout
	totalBets := user.TotalBets + bet
	fields := map[string]any{
		userrepo.ColBalance:   newBalance,
		userrepo.ColTotalBets: totalBets,
	}
	if err := s.userRepo.UpdateCells(ctx, user.ID, fields); err != nil {
		zap.L().Error("failed to settle bet", zap.Error(err))
		return nil, err
	}

	rewards, err := s.rewards.EvaluateAndClaimLocked(ctx, user.ID, totalBets)
	if err != nil {
		// The bet itself has settled; rewards will retry on the next wager.
		zap.L().Error("milestone pass failed after settle", zap.Error(err))
		rewards = nil
	}

	return &Settlement{
		BetID:      prefix + "-" + s.now().UTC().Format("20060102150405"),
		Bet:        bet,
		Payout:     payout,
		NewBalance: newBalance,
		TotalBets:  totalBets,
		Rewards:    rewards,
	}, nil
}

func (s *Service) draw(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

func (s *Service) randFloats(n int) []float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]float64, n)
	for i := range out {
		out[i] = s.rng.Float64()
	}
	return out
}

var rpsChoices = []string{"rock", "paper", "scissors"}

var rpsBeats = map[string]string{
	"rock":     "scissors",
	"paper":    "rock",
	"scissors": "paper",
}

func normalizeChoice(choice string) (string, error) {
	choice = strings.ToLower(strings.TrimSpace(choice))
	if _, ok := rpsBeats[choice]; !ok {
		return "", ErrInvalidChoice
	}
	return choice, nil
}

func settleRPS(player, bot string) domain.GameResult {
	if player == bot {
		return domain.ResultDraw
	}
	if rpsBeats[player] == bot {
		return domain.ResultWin
	}
	return domain.ResultLose
}

// crashPoint maps two uniform draws to a crash multiplier: base U[1,10], with
// a 5% chance of an early crash redrawn from U[1,1.5].
func crashPoint(draws []float64) float64 {
	point := 1.0 + draws[0]*9.0
	if draws[1] < 0.05 {
		point = 1.0 + draws[0]*0.5
	}
	return math.Round(point*100) / 100
}

// Sector is one wheel slice with its probability weight.
type Sector struct {
	Name       string
	Weight     float64
	Multiplier float64
}

var wheel = []Sector{
	{Name: "LOSE", Weight: 0.40, Multiplier: 0},
	{Name: "BREAK_EVEN", Weight: 0.20, Multiplier: 1},
	{Name: "WIN_2X", Weight: 0.20, Multiplier: 2},
	{Name: "WIN_5X", Weight: 0.15, Multiplier: 5},
	{Name: "JACKPOT", Weight: 0.05, Multiplier: 10},
}

// spinWheel picks the first sector whose cumulative weight reaches the draw.
func spinWheel(draw float64) Sector {
	cumulative := 0.0
	for _, sector := range wheel {
		cumulative += sector.Weight
		if draw <= cumulative {
			return sector
		}
	}
	return wheel[len(wheel)-1]
}

// Wheel returns the sector table for display.
func Wheel() []Sector {
	out := make([]Sector, len(wheel))
	copy(out, wheel)
	return out
}
