package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ekuzmichev/sheetbet/internal/domain"
	"github.com/ekuzmichev/sheetbet/internal/dto"
	rewardshandlers "github.com/ekuzmichev/sheetbet/internal/handlers/rewards"
	"github.com/ekuzmichev/sheetbet/internal/service/adminservice"
	"github.com/ekuzmichev/sheetbet/internal/service/rewardservice"
	"github.com/ekuzmichev/sheetbet/internal/service/userservice"
	"github.com/ekuzmichev/sheetbet/pkg/auth"
	"github.com/ekuzmichev/sheetbet/pkg/utils"
)

type Service interface {
	IsAdmin(ctx context.Context, id string) bool
	MakeAdmin(ctx context.Context, identifier string) (*domain.User, error)
	ResetBalance(ctx context.Context, identifier string, amount int) (*domain.User, error)
	SetXP(ctx context.Context, identifier string, xp int) (*domain.User, int, int, error)
	ResetXP(ctx context.Context, identifier string) (*domain.User, error)
	ResetDaily(ctx context.Context, identifier string) (*domain.User, error)
	ResetBets(ctx context.Context, identifier string) (*adminservice.BetsReset, error)
	ResetLoans(ctx context.Context, identifier string) (*domain.User, int, error)
	ResetAll(ctx context.Context, identifier string) (*adminservice.FullReset, error)
}

type MilestoneService interface {
	Table(ctx context.Context) ([]domain.Milestone, error)
	AddMilestone(ctx context.Context, m domain.Milestone) error
	EditMilestone(ctx context.Context, threshold int, field, value string) (*domain.Milestone, error)
	ToggleMilestone(ctx context.Context, threshold int) (bool, error)
	DeleteMilestone(ctx context.Context, threshold int) error
	ResetDefaults(ctx context.Context) error
}

type UserService interface {
	Resolve(ctx context.Context, identifier string) (string, error)
	GainXP(ctx context.Context, id string, amount int) (int, int, error)
}

type AdminHandler struct {
	adminService     Service
	milestoneService MilestoneService
	userService      UserService
}

func New(adminService Service, milestoneService MilestoneService, userService UserService) *AdminHandler {
	return &AdminHandler{
		adminService:     adminService,
		milestoneService: milestoneService,
		userService:      userService,
	}
}

// RequireAdmin gates a route group on membership in the Admins table. The
// response never reveals whether the target route or user exists.
func (h *AdminHandler) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := r.Context().Value(auth.UserIDKey).(string)
		if !ok || !h.adminService.IsAdmin(r.Context(), userID) {
			utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *AdminHandler) MakeAdmin(w http.ResponseWriter, r *http.Request) {
	var req dto.AdminTargetRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	user, err := h.adminService.MakeAdmin(r.Context(), req.Target)
	if err != nil {
		respondAdminError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AdminResetResponseDTO{
		UserID:   user.ID,
		Username: user.Username,
	})
}

func (h *AdminHandler) SetBalance(w http.ResponseWriter, r *http.Request) {
	var req dto.AdminBalanceRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	user, err := h.adminService.ResetBalance(r.Context(), req.Target, req.Amount)
	if err != nil {
		respondAdminError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AdminResetResponseDTO{
		UserID:     user.ID,
		Username:   user.Username,
		NewBalance: req.Amount,
	})
}

func (h *AdminHandler) SetXP(w http.ResponseWriter, r *http.Request) {
	var req dto.AdminXPSetRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	user, xp, level, err := h.adminService.SetXP(r.Context(), req.Target, req.Amount)
	if err != nil {
		respondAdminError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"user_id": user.ID, "xp": xp, "level": level,
	})
}

func (h *AdminHandler) GainXP(w http.ResponseWriter, r *http.Request) {
	var req dto.AdminXPGainRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	id, err := h.userService.Resolve(r.Context(), req.Target)
	if err != nil {
		respondAdminError(w, err)
		return
	}
	xp, level, err := h.userService.GainXP(r.Context(), id, req.Amount)
	if err != nil {
		respondAdminError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"user_id": id, "xp": xp, "level": level,
	})
}

func (h *AdminHandler) ResetXP(w http.ResponseWriter, r *http.Request) {
	h.targetReset(w, r, func(ctx context.Context, target string) (*domain.User, error) {
		return h.adminService.ResetXP(ctx, target)
	})
}

func (h *AdminHandler) ResetDaily(w http.ResponseWriter, r *http.Request) {
	h.targetReset(w, r, func(ctx context.Context, target string) (*domain.User, error) {
		return h.adminService.ResetDaily(ctx, target)
	})
}

func (h *AdminHandler) ResetBets(w http.ResponseWriter, r *http.Request) {
	var req dto.AdminTargetRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	report, err := h.adminService.ResetBets(r.Context(), req.Target)
	if err != nil {
		respondAdminError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AdminResetResponseDTO{
		UserID:       report.User.ID,
		Username:     report.User.Username,
		LogsDetached: report.LogsDetached,
	})
}

func (h *AdminHandler) ResetLoans(w http.ResponseWriter, r *http.Request) {
	var req dto.AdminTargetRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	user, cleared, err := h.adminService.ResetLoans(r.Context(), req.Target)
	if err != nil {
		respondAdminError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AdminResetResponseDTO{
		UserID:       user.ID,
		Username:     user.Username,
		LoansCleared: cleared,
	})
}

func (h *AdminHandler) ResetAll(w http.ResponseWriter, r *http.Request) {
	var req dto.AdminTargetRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	report, err := h.adminService.ResetAll(r.Context(), req.Target)
	if err != nil {
		respondAdminError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AdminResetResponseDTO{
		UserID:       report.User.ID,
		Username:     report.User.Username,
		NewBalance:   report.NewBalance,
		LoansCleared: report.LoansCleared,
		LogsDetached: report.LogsDetached,
	})
}

func (h *AdminHandler) ListMilestones(w http.ResponseWriter, r *http.Request) {
	milestones, err := h.milestoneService.Table(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	resp := make([]dto.MilestoneDTO, len(milestones))
	for i, m := range milestones {
		resp[i] = rewardshandlers.MilestoneToDTO(m)
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func (h *AdminHandler) AddMilestone(w http.ResponseWriter, r *http.Request) {
	var req dto.MilestoneAddRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	err := h.milestoneService.AddMilestone(r.Context(), domain.Milestone{
		Threshold:   req.Threshold,
		Reward:      req.Reward,
		XP:          req.XP,
		Description: req.Description,
	})
	if err != nil {
		respondAdminError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, utils.Response{Message: "milestone added"})
}

func (h *AdminHandler) EditMilestone(w http.ResponseWriter, r *http.Request) {
	threshold, err := thresholdParam(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid threshold")
		return
	}
	var req dto.MilestoneEditRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	m, err := h.milestoneService.EditMilestone(r.Context(), threshold, req.Field, req.Value)
	if err != nil {
		respondAdminError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, rewardshandlers.MilestoneToDTO(*m))
}

func (h *AdminHandler) ToggleMilestone(w http.ResponseWriter, r *http.Request) {
	threshold, err := thresholdParam(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid threshold")
		return
	}
	active, err := h.milestoneService.ToggleMilestone(r.Context(), threshold)
	if err != nil {
		respondAdminError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MilestoneToggleResponseDTO{
		Threshold: threshold,
		Active:    active,
	})
}

func (h *AdminHandler) DeleteMilestone(w http.ResponseWriter, r *http.Request) {
	threshold, err := thresholdParam(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid threshold")
		return
	}
	if err := h.milestoneService.DeleteMilestone(r.Context(), threshold); err != nil {
		respondAdminError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "milestone deleted"})
}

func (h *AdminHandler) ResetMilestones(w http.ResponseWriter, r *http.Request) {
	if err := h.milestoneService.ResetDefaults(r.Context()); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "milestones reset to defaults"})
}

func thresholdParam(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "threshold"))
}

func respondAdminError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, userservice.ErrNotRegistered):
		utils.RespondWithError(w, http.StatusNotFound, "User not registered")
	case errors.Is(err, rewardservice.ErrMilestoneNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, rewardservice.ErrMilestoneExists):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, rewardservice.ErrInvalidMilestone),
		errors.Is(err, rewardservice.ErrInvalidField):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func (h *AdminHandler) targetReset(w http.ResponseWriter, r *http.Request, reset func(ctx context.Context, target string) (*domain.User, error)) {
	var req dto.AdminTargetRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	user, err := reset(r.Context(), req.Target)
	if err != nil {
		respondAdminError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AdminResetResponseDTO{
		UserID:   user.ID,
		Username: user.Username,
	})
}
