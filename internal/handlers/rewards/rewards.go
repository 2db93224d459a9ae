package rewards

import (
	"context"
	"errors"
	"net/http"

	"github.com/ekuzmichev/sheetbet/internal/domain"
	"github.com/ekuzmichev/sheetbet/internal/dto"
	"github.com/ekuzmichev/sheetbet/internal/service/rewardservice"
	"github.com/ekuzmichev/sheetbet/pkg/auth"
	"github.com/ekuzmichev/sheetbet/pkg/utils"
)

type Service interface {
	Overview(ctx context.Context, id string) (int, []rewardservice.MilestoneStatus, error)
	EvaluateAndClaim(ctx context.Context, id string, totalWagered int) (*rewardservice.Outcome, error)
}

type UserService interface {
	Get(ctx context.Context, id string) (*domain.User, error)
}

type RewardHandler struct {
	rewardService Service
	userService   UserService
}

func New(rewardService Service, userService UserService) *RewardHandler {
	return &RewardHandler{
		rewardService: rewardService,
		userService:   userService,
	}
}

// Overview godoc
//
//	@Summary	Show milestone progress for the player
//	@Tags		Rewards
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	dto.RewardsOverviewResponseDTO
//	@Failure	404	{object}	utils.Response	"User not registered"
//	@Router		/api/rewards [get]
func (h *RewardHandler) Overview(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	total, statuses, err := h.rewardService.Overview(r.Context(), userID)
	if err != nil {
		if errors.Is(err, rewardservice.ErrNotRegistered) {
			utils.RespondWithError(w, http.StatusNotFound, "User not registered")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := dto.RewardsOverviewResponseDTO{
		TotalBets:  total,
		Milestones: make([]dto.MilestoneStatusDTO, len(statuses)),
	}
	for i, s := range statuses {
		resp.Milestones[i] = dto.MilestoneStatusDTO{
			MilestoneDTO: MilestoneToDTO(s.Milestone),
			Reached:      s.Reached,
			Claimed:      s.Claimed,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// Claim godoc
//
//	@Summary	Claim any milestones the player's wager total has reached
//	@Tags		Rewards
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	dto.RewardsClaimDTO
//	@Failure	404	{object}	utils.Response	"User not registered"
//	@Router		/api/rewards/claim [post]
func (h *RewardHandler) Claim(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	user, err := h.userService.Get(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "User not registered")
		return
	}

	out, err := h.rewardService.EvaluateAndClaim(r.Context(), userID, user.TotalBets)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, ClaimToDTO(out))
}

// MilestoneToDTO maps a configured milestone to its wire form.
func MilestoneToDTO(m domain.Milestone) dto.MilestoneDTO {
	return dto.MilestoneDTO{
		Threshold:   m.Threshold,
		Reward:      m.Reward,
		XP:          m.XP,
		Description: m.Description,
		Active:      m.Active,
	}
}

// ClaimToDTO maps a milestone evaluation outcome to its wire form. Shared
// with the game handlers, which attach it to settlements.
func ClaimToDTO(out *rewardservice.Outcome) dto.RewardsClaimDTO {
	resp := dto.RewardsClaimDTO{
		Claimed:     make([]dto.MilestoneDTO, len(out.Claimed)),
		Coins:       out.Coins,
		XP:          out.XP,
		NewBalance:  out.NewBalance,
		NewXP:       out.NewXP,
		NewLevel:    out.NewLevel,
		AllComplete: out.AllComplete,
	}
	for i, m := range out.Claimed {
		resp.Claimed[i] = MilestoneToDTO(m)
	}
	if out.Next != nil {
		resp.Next = &dto.ProgressDTO{
			Threshold: out.Next.Milestone.Threshold,
			Remaining: out.Next.Remaining,
			Percent:   out.Next.Percent,
		}
	}
	return resp
}
