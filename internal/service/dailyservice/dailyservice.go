package dailyservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ekuzmichev/sheetbet/internal/domain"
	"github.com/ekuzmichev/sheetbet/internal/keylock"
	userrepo "github.com/ekuzmichev/sheetbet/internal/repo/user-repo"
	"github.com/ekuzmichev/sheetbet/pkg/leveling"
)

const dateLayout = "2006-01-02"

type UserRepo interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	UpdateCells(ctx context.Context, id string, fields map[string]any) error
	RequireColumns(ctx context.Context, names ...string) error
	HasColumn(ctx context.Context, name string) (bool, error)
}

type Service struct {
	userRepo   UserRepo
	locks      *keylock.KeyedMutex
	baseReward int
	now        func() time.Time
}

func New(userRepo UserRepo, locks *keylock.KeyedMutex, baseReward int) *Service {
	return &Service{
		userRepo:   userRepo,
		locks:      locks,
		baseReward: baseReward,
		now:        time.Now,
	}
}

var (
	ErrNotRegistered = errors.New("user is not registered")
)

// AlreadyClaimedError is returned when the user already claimed on the
// current UTC day; Remaining counts down to the next UTC midnight.
type AlreadyClaimedError struct {
	Remaining time.Duration
}

func (e *AlreadyClaimedError) Error() string {
	return fmt.Sprintf("daily reward already claimed, next claim in %s", e.Remaining.Round(time.Second))
}

// Claim is the outcome of a successful daily claim.
type Claim struct {
	Reward     int
	XPGain     int
	Streak     int
	NewBalance int
	NewXP      int
	NewLevel   int
	LeveledUp  bool
}

// Claim grants the once-per-UTC-day reward. The streak continues only when
// the previous claim happened exactly yesterday; any gap resets it to 1. The
// reward scales with the user's level tier and never pays below the base
// reward. XP grows by the same amount as the coin reward.
func (s *Service) Claim(ctx context.Context, id string) (*Claim, error) {
	unlock := s.locks.Lock(id)
	defer unlock()

	// Schema first: a sheet missing any claim column must fail before a
	// single cell is touched.
	if err := s.userRepo.RequireColumns(ctx,
		userrepo.ColBalance, userrepo.ColXP, userrepo.ColLevel,
		userrepo.ColLastDaily, userrepo.ColStreak,
	); err != nil {
		zap.L().Error("daily claim schema check failed", zap.Error(err))
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get user", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrNotRegistered
	}

	now := s.now().UTC()
	today := now.Format(dateLayout)
	if user.LastDaily == today {
		midnight := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, time.UTC)
		return nil, &AlreadyClaimedError{Remaining: midnight.Sub(now)}
	}

	streak := 1
	yesterday := now.AddDate(0, 0, -1).Format(dateLayout)
	if user.LastDaily == yesterday {
		streak = user.Streak + 1
	}

	tier, _ := leveling.LevelFor(user.XP)
	reward := tier.BonusAmount + tier.StreakBonus*(streak-1)
	if reward < s.baseReward {
		reward = s.baseReward
	}

	xpGain := reward
	newXP := user.XP + xpGain
	newTier, _ := leveling.LevelFor(newXP)

	fields := map[string]any{
		userrepo.ColBalance:   user.Balance + reward,
		userrepo.ColXP:        newXP,
		userrepo.ColLastDaily: today,
		userrepo.ColStreak:    streak,
	}
	if newTier.Level != user.Level {
		fields[userrepo.ColLevel] = newTier.Level
	}
	// The exact claim timestamp is an optional audit column; skip it when the
	// sheet never grew one.
	if ok, err := s.userRepo.HasColumn(ctx, userrepo.ColClaimedAt); err == nil && ok {
		fields[userrepo.ColClaimedAt] = now.Format("2006-01-02 15:04:05")
	}

	if err := s.userRepo.UpdateCells(ctx, id, fields); err != nil {
		zap.L().Error("failed to write daily claim", zap.Error(err))
		return nil, err
	}

	zap.L().Info("daily reward claimed",
		zap.String("userID", id), zap.Int("reward", reward), zap.Int("streak", streak))
	return &Claim{
		Reward:     reward,
		XPGain:     xpGain,
		Streak:     streak,
		NewBalance: user.Balance + reward,
		NewXP:      newXP,
		NewLevel:   newTier.Level,
		LeveledUp:  newTier.Level != user.Level,
	}, nil
}
