package loans

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/ekuzmichev/sheetbet/internal/domain"
	"github.com/ekuzmichev/sheetbet/internal/dto"
	"github.com/ekuzmichev/sheetbet/internal/service/loanservice"
	"github.com/ekuzmichev/sheetbet/pkg/auth"
	"github.com/ekuzmichev/sheetbet/pkg/utils"
)

const defaultHistoryLimit = 5

type Service interface {
	Create(ctx context.Context, id string, amount int) (*domain.Loan, int, error)
	Repay(ctx context.Context, id string) (*domain.Loan, int, error)
	History(ctx context.Context, id string, limit int) (*domain.Loan, []domain.Loan, error)
}

type LoanHandler struct {
	loanService Service
}

func New(loanService Service) *LoanHandler {
	return &LoanHandler{loanService: loanService}
}

// Create godoc
//
//	@Summary	Take out a loan
//	@Tags		Loans
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Success	200	{object}	dto.LoanIssueResponseDTO
//	@Failure	400	{object}	utils.Response	"Invalid amount"
//	@Failure	409	{object}	utils.Response	"Active loan already exists"
//	@Router		/api/user/loans [post]
func (h *LoanHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	var req dto.LoanRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	loan, newBalance, err := h.loanService.Create(r.Context(), userID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, loanservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, loanservice.ErrActiveLoanExists):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, loanservice.ErrNotRegistered):
			utils.RespondWithError(w, http.StatusNotFound, "User not registered")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.LoanIssueResponseDTO{
		Loan:       toDTO(loan),
		NewBalance: newBalance,
	})
}

// Repay godoc
//
//	@Summary	Repay the active loan in full
//	@Tags		Loans
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	dto.LoanRepayResponseDTO
//	@Failure	402	{object}	utils.Response	"Insufficient balance"
//	@Failure	409	{object}	utils.Response	"No active loan"
//	@Router		/api/user/loans/repay [post]
func (h *LoanHandler) Repay(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	loan, newBalance, err := h.loanService.Repay(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, loanservice.ErrNoActiveLoan):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, loanservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, loanservice.ErrNotRegistered):
			utils.RespondWithError(w, http.StatusNotFound, "User not registered")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.LoanRepayResponseDTO{
		Loan:       toDTO(loan),
		NewBalance: newBalance,
	})
}

// History godoc
//
//	@Summary	Get the active loan and recent loan history
//	@Tags		Loans
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	dto.LoanHistoryResponseDTO
//	@Router		/api/user/loans [get]
func (h *LoanHandler) History(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}

	active, recent, err := h.loanService.History(r.Context(), userID, limit)
	if err != nil {
		if errors.Is(err, loanservice.ErrNotRegistered) {
			utils.RespondWithError(w, http.StatusNotFound, "User not registered")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := dto.LoanHistoryResponseDTO{Recent: make([]dto.LoanDTO, len(recent))}
	for i := range recent {
		resp.Recent[i] = toDTO(&recent[i])
	}
	if active != nil {
		loan := toDTO(active)
		resp.Active = &loan
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func toDTO(loan *domain.Loan) dto.LoanDTO {
	return dto.LoanDTO{
		LoanID:       loan.LoanID,
		Amount:       loan.Amount,
		InterestRate: loan.InterestRate,
		RepayAmount:  loan.RepayAmount,
		DueDate:      loan.DueDate,
		Status:       string(loan.Status),
		Timestamp:    loan.Timestamp,
	}
}
