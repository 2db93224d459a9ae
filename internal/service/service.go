package service

import (
	"time"

	"github.com/ekuzmichev/sheetbet/internal/config"
	"github.com/ekuzmichev/sheetbet/internal/cooldown"
	"github.com/ekuzmichev/sheetbet/internal/keylock"
	"github.com/ekuzmichev/sheetbet/internal/repo"
	rewardrepo "github.com/ekuzmichev/sheetbet/internal/repo/reward-repo"
	"github.com/ekuzmichev/sheetbet/internal/service/adminservice"
	"github.com/ekuzmichev/sheetbet/internal/service/dailyservice"
	"github.com/ekuzmichev/sheetbet/internal/service/gameservice"
	"github.com/ekuzmichev/sheetbet/internal/service/loanservice"
	"github.com/ekuzmichev/sheetbet/internal/service/rewardservice"
	"github.com/ekuzmichev/sheetbet/internal/service/userservice"
)

type Services struct {
	UserService   *userservice.Service
	DailyService  *dailyservice.Service
	LoanService   *loanservice.Service
	RewardService *rewardservice.Service
	GameService   *gameservice.Service
	AdminService  *adminservice.Service
}

func New(repo *repo.Repositories, cfg *config.Config) *Services {
	// One lock set and one cooldown registry shared by everything that
	// touches user rows.
	locks := keylock.New()
	cooldowns := cooldown.New(time.Duration(cfg.CooldownSeconds) * time.Second)

	thresholds := make([]int, len(rewardrepo.Defaults))
	for i, m := range rewardrepo.Defaults {
		thresholds[i] = m.Threshold
	}

	userService := userservice.New(repo.UserRepo, locks, thresholds)
	dailyService := dailyservice.New(repo.UserRepo, locks, cfg.DailyBaseReward)
	loanService := loanservice.New(repo.UserRepo, repo.LoanRepo, locks)
	rewardService := rewardservice.New(repo.UserRepo, repo.RewardRepo, userService, locks)
	gameService := gameservice.New(repo.UserRepo, repo.BetLogRepo, rewardService, cooldowns, locks)
	adminService := adminservice.New(userService, repo.UserRepo, repo.LoanRepo, repo.BetLogRepo, repo.AdminRepo, cfg.StartingBalance)

	return &Services{
		UserService:   userService,
		DailyService:  dailyService,
		LoanService:   loanService,
		RewardService: rewardService,
		GameService:   gameService,
		AdminService:  adminService,
	}
}
