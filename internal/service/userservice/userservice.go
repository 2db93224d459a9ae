package userservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/ekuzmichev/sheetbet/internal/domain"
	"github.com/ekuzmichev/sheetbet/internal/keylock"
	userrepo "github.com/ekuzmichev/sheetbet/internal/repo/user-repo"
	"github.com/ekuzmichev/sheetbet/pkg/leveling"
)

type UserRepo interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	SetField(ctx context.Context, id, field string, value any) error
	UpdateCells(ctx context.Context, id string, fields map[string]any) error
	ResolveIdentifier(ctx context.Context, text string) (string, error)
}

type Service struct {
	userRepo UserRepo
	locks    *keylock.KeyedMutex
	// thresholds of the milestone flags stamped onto a fresh registration row
	defaultMilestones []int
	now               func() time.Time
}

func New(userRepo UserRepo, locks *keylock.KeyedMutex, defaultMilestones []int) *Service {
	return &Service{
		userRepo:          userRepo,
		locks:             locks,
		defaultMilestones: defaultMilestones,
		now:               time.Now,
	}
}

var (
	ErrNotRegistered = errors.New("user is not registered")
)

// Register creates the user's row with registration defaults. Registering an
// already known user is a no-op beyond backfilling an empty JoinDate; the
// second return reports whether a new row was created.
func (s *Service) Register(ctx context.Context, id, username string, startingBalance int) (*domain.User, bool, error) {
	unlock := s.locks.Lock(id)
	defer unlock()

	existing, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to look up user", zap.Error(err))
		return nil, false, err
	}
	if existing != nil {
		if existing.JoinDate == "" {
			joined := s.now().UTC().Format("2006-01-02")
			if err := s.userRepo.SetField(ctx, id, userrepo.ColJoinDate, joined); err != nil {
				zap.L().Error("failed to backfill join date", zap.Error(err))
				return nil, false, err
			}
			existing.JoinDate = joined
		}
		return existing, false, nil
	}

	user := &domain.User{
		ID:         id,
		Username:   username,
		Balance:    startingBalance,
		Level:      1,
		JoinDate:   s.now().UTC().Format("2006-01-02"),
		Milestones: make(map[int]bool, len(s.defaultMilestones)),
	}
	for _, threshold := range s.defaultMilestones {
		user.Milestones[threshold] = false
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		zap.L().Error("failed to create user", zap.Error(err))
		return nil, false, err
	}
	zap.L().Info("user registered",
		zap.String("userID", id), zap.String("username", username))
	return user, true, nil
}

// Get returns the user's profile or ErrNotRegistered.
func (s *Service) Get(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get user", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrNotRegistered
	}
	return user, nil
}

// Resolve maps a numeric id or @username to the target user's id.
func (s *Service) Resolve(ctx context.Context, identifier string) (string, error) {
	id, err := s.userRepo.ResolveIdentifier(ctx, identifier)
	if err != nil {
		return "", err
	}
	if id == "" {
		return "", ErrNotRegistered
	}
	return id, nil
}

// GainXP adds (or with a negative amount, removes) experience and refreshes
// the cached level when the total crosses a tier boundary. XP never drops
// below zero. Returns the new XP total and level.
func (s *Service) GainXP(ctx context.Context, id string, amount int) (int, int, error) {
	unlock := s.locks.Lock(id)
	defer unlock()
	return s.gainXP(ctx, id, amount)
}

// GainXPLocked is GainXP for callers already holding the user's lock.
func (s *Service) GainXPLocked(ctx context.Context, id string, amount int) (int, int, error) {
	return s.gainXP(ctx, id, amount)
}

func (s *Service) gainXP(ctx context.Context, id string, amount int) (int, int, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get user", zap.Error(err))
		return 0, 0, err
	}
	if user == nil {
		return 0, 0, ErrNotRegistered
	}

	newXP := user.XP + amount
	if newXP < 0 {
		newXP = 0
	}
	tier, _ := leveling.LevelFor(newXP)

	fields := map[string]any{userrepo.ColXP: newXP}
	if tier.Level != user.Level {
		fields[userrepo.ColLevel] = tier.Level
	}
	if err := s.userRepo.UpdateCells(ctx, id, fields); err != nil {
		zap.L().Error("failed to update xp", zap.Error(err))
		return 0, 0, err
	}
	return newXP, tier.Level, nil
}

// SetXP overwrites the XP total and recomputes the level. Used by admin resets.
func (s *Service) SetXP(ctx context.Context, id string, xp int) (int, int, error) {
	unlock := s.locks.Lock(id)
	defer unlock()

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get user", zap.Error(err))
		return 0, 0, err
	}
	if user == nil {
		return 0, 0, ErrNotRegistered
	}
	if xp < 0 {
		xp = 0
	}
	tier, _ := leveling.LevelFor(xp)
	fields := map[string]any{
		userrepo.ColXP:    xp,
		userrepo.ColLevel: tier.Level,
	}
	if err := s.userRepo.UpdateCells(ctx, id, fields); err != nil {
		zap.L().Error("failed to overwrite xp", zap.Error(err))
		return 0, 0, err
	}
	return xp, tier.Level, nil
}

// SetBalance overwrites the coin balance. Used by admin resets.
func (s *Service) SetBalance(ctx context.Context, id string, balance int) error {
	unlock := s.locks.Lock(id)
	defer unlock()

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNotRegistered
	}
	if err := s.userRepo.SetField(ctx, id, userrepo.ColBalance, balance); err != nil {
		zap.L().Error("failed to overwrite balance", zap.Error(err))
		return err
	}
	return nil
}
