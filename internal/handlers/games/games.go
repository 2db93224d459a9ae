package games

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ekuzmichev/sheetbet/internal/dto"
	"github.com/ekuzmichev/sheetbet/internal/handlers/rewards"
	"github.com/ekuzmichev/sheetbet/internal/service/gameservice"
	"github.com/ekuzmichev/sheetbet/pkg/auth"
	"github.com/ekuzmichev/sheetbet/pkg/utils"
)

type Service interface {
	PlayRPS(ctx context.Context, id string, bet int, choice string) (*gameservice.RPSOutcome, error)
	PlayAviator(ctx context.Context, id string, bet int, target float64) (*gameservice.CrashOutcome, error)
	PlaySpin(ctx context.Context, id string, bet int) (*gameservice.SpinOutcome, error)
}

type GameHandler struct {
	gameService Service
}

func New(gameService Service) *GameHandler {
	return &GameHandler{gameService: gameService}
}

// PlayRPS godoc
//
//	@Summary	Play rock-paper-scissors against the house
//	@Tags		Games
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Success	200	{object}	dto.GameResponseDTO
//	@Failure	400	{object}	utils.Response	"Invalid bet or choice"
//	@Failure	402	{object}	utils.Response	"Bet exceeds balance"
//	@Failure	429	{object}	dto.CooldownResponseDTO	"Game on cooldown"
//	@Router		/api/games/rps [post]
func (h *GameHandler) PlayRPS(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	var req dto.RPSRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	out, err := h.gameService.PlayRPS(r.Context(), userID, req.Bet, req.Choice)
	if err != nil {
		respondGameError(w, err)
		return
	}
	resp := toDTO(out.Settlement)
	resp.PlayerChoice = out.PlayerChoice
	resp.BotChoice = out.BotChoice
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// PlayAviator godoc
//
//	@Summary	Play a crash round with a pre-committed cash-out target
//	@Tags		Games
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Success	200	{object}	dto.GameResponseDTO
//	@Failure	400	{object}	utils.Response	"Invalid bet or multiplier"
//	@Failure	402	{object}	utils.Response	"Bet exceeds balance"
//	@Failure	429	{object}	dto.CooldownResponseDTO	"Game on cooldown"
//	@Router		/api/games/aviator [post]
func (h *GameHandler) PlayAviator(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	var req dto.AviatorRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	out, err := h.gameService.PlayAviator(r.Context(), userID, req.Bet, req.Target)
	if err != nil {
		respondGameError(w, err)
		return
	}
	resp := toDTO(out.Settlement)
	resp.Target = out.Target
	resp.CrashPoint = out.CrashPoint
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// PlaySpin godoc
//
//	@Summary	Spin the weighted wheel
//	@Tags		Games
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Success	200	{object}	dto.GameResponseDTO
//	@Failure	400	{object}	utils.Response	"Invalid bet"
//	@Failure	402	{object}	utils.Response	"Bet exceeds balance"
//	@Failure	429	{object}	dto.CooldownResponseDTO	"Game on cooldown"
//	@Router		/api/games/spin [post]
func (h *GameHandler) PlaySpin(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	var req dto.SpinRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	out, err := h.gameService.PlaySpin(r.Context(), userID, req.Bet)
	if err != nil {
		respondGameError(w, err)
		return
	}
	resp := toDTO(out.Settlement)
	resp.Outcome = out.Outcome
	resp.Multiplier = out.Multiplier
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func respondGameError(w http.ResponseWriter, err error) {
	var cd *gameservice.CooldownError
	switch {
	case errors.As(err, &cd):
		utils.RespondWithJSON(w, http.StatusTooManyRequests, dto.CooldownResponseDTO{
			Game:             cd.Game,
			RemainingSeconds: int(cd.Remaining.Seconds()),
		})
	case errors.Is(err, gameservice.ErrInvalidBet),
		errors.Is(err, gameservice.ErrInvalidChoice),
		errors.Is(err, gameservice.ErrInvalidMultiplier):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, gameservice.ErrInsufficientBalance):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, gameservice.ErrNotRegistered):
		utils.RespondWithError(w, http.StatusNotFound, "User not registered")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toDTO(s gameservice.Settlement) dto.GameResponseDTO {
	resp := dto.GameResponseDTO{
		BetID:      s.BetID,
		Result:     string(s.Result),
		Bet:        s.Bet,
		Payout:     s.Payout,
		NewBalance: s.NewBalance,
		TotalBets:  s.TotalBets,
	}
	if s.Rewards != nil && len(s.Rewards.Claimed) > 0 {
		claim := rewards.ClaimToDTO(s.Rewards)
		resp.Rewards = &claim
	}
	return resp
}
