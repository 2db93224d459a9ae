package rewardservice

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ekuzmichev/sheetbet/internal/domain"
	"github.com/ekuzmichev/sheetbet/internal/keylock"
	rewardrepo "github.com/ekuzmichev/sheetbet/internal/repo/reward-repo"
	userrepo "github.com/ekuzmichev/sheetbet/internal/repo/user-repo"
)

type UserRepo interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	SetBalance(ctx context.Context, id string, balance int) error
	SetField(ctx context.Context, id, field string, value any) error
}

type RewardRepo interface {
	List(ctx context.Context) ([]domain.Milestone, error)
	Seed(ctx context.Context) error
	Add(ctx context.Context, m domain.Milestone) error
	UpdateField(ctx context.Context, m *domain.Milestone, column string, value any) error
	Delete(ctx context.Context, m *domain.Milestone) error
	AppendClaim(ctx context.Context, claim *domain.RewardClaim) error
}

// XPGranter adds experience to a user whose lock is already held.
type XPGranter interface {
	GainXPLocked(ctx context.Context, id string, amount int) (int, int, error)
}

type Service struct {
	userRepo   UserRepo
	rewardRepo RewardRepo
	xp         XPGranter
	locks      *keylock.KeyedMutex
	now        func() time.Time
}

func New(userRepo UserRepo, rewardRepo RewardRepo, xp XPGranter, locks *keylock.KeyedMutex) *Service {
	return &Service{
		userRepo:   userRepo,
		rewardRepo: rewardRepo,
		xp:         xp,
		locks:      locks,
		now:        time.Now,
	}
}

var (
	ErrNotRegistered     = errors.New("user is not registered")
	ErrMilestoneNotFound = errors.New("milestone not found")
	ErrMilestoneExists   = errors.New("milestone with this threshold already exists")
	ErrInvalidMilestone  = errors.New("invalid milestone values")
	ErrInvalidField      = errors.New("unknown milestone field")
)

// Progress points at the next active milestone the user has not reached.
type Progress struct {
	Milestone domain.Milestone
	Remaining int
	Percent   float64
}

// Outcome is the result of one milestone evaluation pass.
type Outcome struct {
	Claimed     []domain.Milestone
	Coins       int
	XP          int
	NewBalance  int
	NewXP       int
	NewLevel    int
	Next        *Progress
	AllComplete bool
}

// EvaluateAndClaim pays out every active milestone whose threshold the user's
// lifetime wager total has reached and whose flag is still unset. Claiming is
// idempotent per milestone: the flag makes a second pass a no-op.
func (s *Service) EvaluateAndClaim(ctx context.Context, id string, totalWagered int) (*Outcome, error) {
	unlock := s.locks.Lock(id)
	defer unlock()
	return s.EvaluateAndClaimLocked(ctx, id, totalWagered)
}

// EvaluateAndClaimLocked is EvaluateAndClaim for callers already holding the
// user's lock, such as a game settling a bet.
func (s *Service) EvaluateAndClaimLocked(ctx context.Context, id string, totalWagered int) (*Outcome, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get user", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrNotRegistered
	}

	milestones, err := s.rewardRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := &Outcome{NewBalance: user.Balance, NewXP: user.XP, NewLevel: user.Level}
	for _, m := range milestones {
		if !m.Active || totalWagered < m.Threshold || user.Milestones[m.Threshold] {
			continue
		}
		out.Claimed = append(out.Claimed, m)
		out.Coins += m.Reward
		out.XP += m.XP
	}

	if len(out.Claimed) == 0 {
		s.fillProgress(out, milestones, totalWagered)
		return out, nil
	}

	// Coins first, then flags, then XP. A crash between balance and flags
	// can double-pay on the next pass; the claim log keeps that visible.
	out.NewBalance = user.Balance + out.Coins
	if err := s.userRepo.SetBalance(ctx, id, out.NewBalance); err != nil {
		zap.L().Error("failed to credit milestone reward", zap.Error(err))
		return nil, err
	}
	for i := range out.Claimed {
		m := &out.Claimed[i]
		col := userrepo.MilestoneColumn(m.Threshold)
		if err := s.userRepo.SetField(ctx, id, col, true); err != nil {
			zap.L().Error("milestone paid but flag not set",
				zap.String("userID", id), zap.Int("threshold", m.Threshold), zap.Error(err))
			return nil, err
		}
	}
	if out.XP > 0 {
		newXP, newLevel, err := s.xp.GainXPLocked(ctx, id, out.XP)
		if err != nil {
			return nil, err
		}
		out.NewXP, out.NewLevel = newXP, newLevel
	}

	for i := range out.Claimed {
		m := &out.Claimed[i]
		claim := &domain.RewardClaim{
			RewardID:  fmt.Sprintf("REW-%d-%s", m.Threshold, uuid.NewString()[:8]),
			UserID:    id,
			Username:  user.Username,
			Threshold: m.Threshold,
			Coins:     m.Reward,
			XP:        m.XP,
			Timestamp: s.now(),
		}
		// Audit only; a failed log line never rolls back a payout.
		if err := s.rewardRepo.AppendClaim(ctx, claim); err != nil {
			zap.L().Error("failed to log milestone claim",
				zap.String("rewardID", claim.RewardID), zap.Error(err))
		}
	}

	zap.L().Info("milestones claimed",
		zap.String("userID", id), zap.Int("count", len(out.Claimed)),
		zap.Int("coins", out.Coins), zap.Int("xp", out.XP))
	s.fillProgress(out, milestones, totalWagered)
	return out, nil
}

func (s *Service) fillProgress(out *Outcome, milestones []domain.Milestone, totalWagered int) {
	for _, m := range milestones {
		if !m.Active || totalWagered >= m.Threshold {
			continue
		}
		out.Next = &Progress{
			Milestone: m,
			Remaining: m.Threshold - totalWagered,
			Percent:   float64(totalWagered) / float64(m.Threshold) * 100,
		}
		return
	}
	out.AllComplete = true
}

// MilestoneStatus pairs a configured milestone with one user's standing.
type MilestoneStatus struct {
	Milestone domain.Milestone
	Reached   bool
	Claimed   bool
}

// Overview reports every active milestone against the user's wager total.
func (s *Service) Overview(ctx context.Context, id string) (int, []MilestoneStatus, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return 0, nil, err
	}
	if user == nil {
		return 0, nil, ErrNotRegistered
	}
	milestones, err := s.rewardRepo.List(ctx)
	if err != nil {
		return 0, nil, err
	}
	var statuses []MilestoneStatus
	for _, m := range milestones {
		if !m.Active {
			continue
		}
		statuses = append(statuses, MilestoneStatus{
			Milestone: m,
			Reached:   user.TotalBets >= m.Threshold,
			Claimed:   user.Milestones[m.Threshold],
		})
	}
	return user.TotalBets, statuses, nil
}

// Table returns the raw milestone configuration, inactive tiers included.
func (s *Service) Table(ctx context.Context) ([]domain.Milestone, error) {
	return s.rewardRepo.List(ctx)
}

// AddMilestone appends a new reward tier after validating it.
func (s *Service) AddMilestone(ctx context.Context, m domain.Milestone) error {
	if m.Threshold <= 0 || m.Reward < 0 || m.XP < 0 {
		return ErrInvalidMilestone
	}
	existing, err := s.rewardRepo.List(ctx)
	if err != nil {
		return err
	}
	for _, e := range existing {
		if e.Threshold == m.Threshold {
			return ErrMilestoneExists
		}
	}
	m.Active = true
	return s.rewardRepo.Add(ctx, m)
}

// EditMilestone overwrites one field of the tier with the given threshold.
// Accepted fields: reward, xp, description, active.
func (s *Service) EditMilestone(ctx context.Context, threshold int, field, value string) (*domain.Milestone, error) {
	m, err := s.find(ctx, threshold)
	if err != nil {
		return nil, err
	}

	var column string
	var parsed any
	switch strings.ToLower(field) {
	case "reward":
		v, err := strconv.Atoi(value)
		if err != nil || v < 0 {
			return nil, fmt.Errorf("%w: reward %q", ErrInvalidMilestone, value)
		}
		column, parsed, m.Reward = rewardrepo.ColReward, v, v
	case "xp":
		v, err := strconv.Atoi(value)
		if err != nil || v < 0 {
			return nil, fmt.Errorf("%w: xp %q", ErrInvalidMilestone, value)
		}
		column, parsed, m.XP = rewardrepo.ColXP, v, v
	case "description":
		column, parsed, m.Description = rewardrepo.ColDescription, value, value
	case "active":
		v, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("%w: active %q", ErrInvalidMilestone, value)
		}
		column, parsed, m.Active = rewardrepo.ColActive, v, v
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidField, field)
	}

	if err := s.rewardRepo.UpdateField(ctx, m, column, parsed); err != nil {
		return nil, err
	}
	return m, nil
}

// ToggleMilestone flips the tier's active flag and returns the new state.
func (s *Service) ToggleMilestone(ctx context.Context, threshold int) (bool, error) {
	m, err := s.find(ctx, threshold)
	if err != nil {
		return false, err
	}
	next := !m.Active
	if err := s.rewardRepo.UpdateField(ctx, m, rewardrepo.ColActive, next); err != nil {
		return false, err
	}
	return next, nil
}

// DeleteMilestone removes the tier entirely. Users keep any claim flags
// already stamped onto their rows.
func (s *Service) DeleteMilestone(ctx context.Context, threshold int) error {
	m, err := s.find(ctx, threshold)
	if err != nil {
		return err
	}
	return s.rewardRepo.Delete(ctx, m)
}

// ResetDefaults throws away the milestone configuration and reseeds it.
func (s *Service) ResetDefaults(ctx context.Context) error {
	return s.rewardRepo.Seed(ctx)
}

func (s *Service) find(ctx context.Context, threshold int) (*domain.Milestone, error) {
	milestones, err := s.rewardRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range milestones {
		if milestones[i].Threshold == threshold {
			return &milestones[i], nil
		}
	}
	return nil, fmt.Errorf("%w: threshold %d", ErrMilestoneNotFound, threshold)
}
