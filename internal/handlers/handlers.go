package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	adminhandlers "github.com/ekuzmichev/sheetbet/internal/handlers/admin"
	gameshandlers "github.com/ekuzmichev/sheetbet/internal/handlers/games"
	loanshandlers "github.com/ekuzmichev/sheetbet/internal/handlers/loans"
	rewardshandlers "github.com/ekuzmichev/sheetbet/internal/handlers/rewards"
	usershandlers "github.com/ekuzmichev/sheetbet/internal/handlers/users"
	"github.com/ekuzmichev/sheetbet/internal/service"
	"github.com/ekuzmichev/sheetbet/pkg/auth"
)

type UserHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Profile(w http.ResponseWriter, r *http.Request)
	Daily(w http.ResponseWriter, r *http.Request)
}

type LoanHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Repay(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
}

type GameHandler interface {
	PlayRPS(w http.ResponseWriter, r *http.Request)
	PlayAviator(w http.ResponseWriter, r *http.Request)
	PlaySpin(w http.ResponseWriter, r *http.Request)
}

type RewardHandler interface {
	Overview(w http.ResponseWriter, r *http.Request)
	Claim(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	UserHandler   UserHandler
	LoanHandler   LoanHandler
	GameHandler   GameHandler
	RewardHandler RewardHandler
	AdminHandler  *adminhandlers.AdminHandler
}

func New(s *service.Services, startingBalance int) *Handlers {
	return &Handlers{
		UserHandler:   usershandlers.New(s.UserService, s.DailyService, &auth.JWTService{}, startingBalance),
		LoanHandler:   loanshandlers.New(s.LoanService),
		GameHandler:   gameshandlers.New(s.GameService),
		RewardHandler: rewardshandlers.New(s.RewardService, s.UserService),
		AdminHandler:  adminhandlers.New(s.AdminService, s.RewardService, s.UserService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Route("/api", func(r chi.Router) {
		r.Post("/user/register", h.UserHandler.Register)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)

			r.Route("/user", func(r chi.Router) {
				r.Get("/profile", h.UserHandler.Profile)
				r.Post("/daily", h.UserHandler.Daily)
				r.Route("/loans", func(r chi.Router) {
					r.Post("/", h.LoanHandler.Create)
					r.Post("/repay", h.LoanHandler.Repay)
					r.Get("/", h.LoanHandler.History)
				})
			})

			r.Route("/games", func(r chi.Router) {
				r.Post("/rps", h.GameHandler.PlayRPS)
				r.Post("/aviator", h.GameHandler.PlayAviator)
				r.Post("/spin", h.GameHandler.PlaySpin)
			})

			r.Route("/rewards", func(r chi.Router) {
				r.Get("/", h.RewardHandler.Overview)
				r.Post("/claim", h.RewardHandler.Claim)
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(h.AdminHandler.RequireAdmin)
				r.Post("/admins", h.AdminHandler.MakeAdmin)
				r.Post("/xp/gain", h.AdminHandler.GainXP)
				r.Route("/users", func(r chi.Router) {
					r.Post("/balance", h.AdminHandler.SetBalance)
					r.Post("/xp", h.AdminHandler.SetXP)
					r.Post("/xp/reset", h.AdminHandler.ResetXP)
					r.Post("/daily/reset", h.AdminHandler.ResetDaily)
					r.Post("/bets/reset", h.AdminHandler.ResetBets)
					r.Post("/loans/reset", h.AdminHandler.ResetLoans)
					r.Post("/reset", h.AdminHandler.ResetAll)
				})
				r.Route("/milestones", func(r chi.Router) {
					r.Get("/", h.AdminHandler.ListMilestones)
					r.Post("/", h.AdminHandler.AddMilestone)
					r.Post("/reset", h.AdminHandler.ResetMilestones)
					r.Patch("/{threshold}", h.AdminHandler.EditMilestone)
					r.Delete("/{threshold}", h.AdminHandler.DeleteMilestone)
					r.Post("/{threshold}/toggle", h.AdminHandler.ToggleMilestone)
				})
			})
		})
	})

	return r
}
