package users

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/ekuzmichev/sheetbet/internal/domain"
	"github.com/ekuzmichev/sheetbet/internal/dto"
	"github.com/ekuzmichev/sheetbet/internal/service/dailyservice"
	"github.com/ekuzmichev/sheetbet/internal/service/userservice"
	"github.com/ekuzmichev/sheetbet/pkg/auth"
	"github.com/ekuzmichev/sheetbet/pkg/leveling"
	"github.com/ekuzmichev/sheetbet/pkg/utils"
)

type UserService interface {
	Register(ctx context.Context, id, username string, startingBalance int) (*domain.User, bool, error)
	Get(ctx context.Context, id string) (*domain.User, error)
}

type DailyService interface {
	Claim(ctx context.Context, id string) (*dailyservice.Claim, error)
}

type UserHandler struct {
	userService     UserService
	dailyService    DailyService
	jwtService      auth.JWTServiceInterface
	startingBalance int
}

func New(userService UserService, dailyService DailyService, jwtService auth.JWTServiceInterface, startingBalance int) *UserHandler {
	return &UserHandler{
		userService:     userService,
		dailyService:    dailyService,
		jwtService:      jwtService,
		startingBalance: startingBalance,
	}
}

// Register godoc
//
//	@Summary	Register a player account
//	@Tags		Users
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.RegisterRequestDTO	true	"Register request body"
//	@Success	200		{object}	dto.RegisterResponseDTO
//	@Failure	400		{object}	utils.Response	"Invalid request body"
//	@Router		/api/user/register [post]
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.UserID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	user, created, err := h.userService.Register(r.Context(), req.UserID, req.Username, h.startingBalance)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	token, err := h.jwtService.GenerateJWT(user.ID, time.Now().Add(24*time.Hour))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.RegisterResponseDTO{
		Token:   token,
		Created: created,
		Balance: user.Balance,
	})
}

// Profile godoc
//
//	@Summary	Get the player's profile
//	@Tags		Users
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	dto.ProfileResponseDTO
//	@Failure	404	{object}	utils.Response	"User not registered"
//	@Router		/api/user/profile [get]
func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	user, err := h.userService.Get(r.Context(), userID)
	if err != nil {
		if errors.Is(err, userservice.ErrNotRegistered) {
			utils.RespondWithError(w, http.StatusNotFound, "User not registered")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := dto.ProfileResponseDTO{
		UserID:    user.ID,
		Username:  user.Username,
		Balance:   user.Balance,
		XP:        user.XP,
		Level:     user.Level,
		TotalBets: user.TotalBets,
		Streak:    user.Streak,
		JoinDate:  user.JoinDate,
	}
	if _, next := leveling.LevelFor(user.XP); next != nil {
		resp.NextLevel = &next.XPRequired
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// Daily godoc
//
//	@Summary	Claim the daily reward
//	@Tags		Users
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	dto.DailyClaimResponseDTO
//	@Failure	404	{object}	utils.Response	"User not registered"
//	@Failure	429	{object}	utils.Response	"Already claimed today"
//	@Router		/api/user/daily [post]
func (h *UserHandler) Daily(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	claim, err := h.dailyService.Claim(r.Context(), userID)
	if err != nil {
		var already *dailyservice.AlreadyClaimedError
		switch {
		case errors.As(err, &already):
			utils.RespondWithError(w, http.StatusTooManyRequests, already.Error())
		case errors.Is(err, dailyservice.ErrNotRegistered):
			utils.RespondWithError(w, http.StatusNotFound, "User not registered")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.DailyClaimResponseDTO{
		Reward:     claim.Reward,
		XPGain:     claim.XPGain,
		Streak:     claim.Streak,
		NewBalance: claim.NewBalance,
		NewXP:      claim.NewXP,
		NewLevel:   claim.NewLevel,
		LeveledUp:  claim.LeveledUp,
	})
}
