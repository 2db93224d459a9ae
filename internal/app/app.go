package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ekuzmichev/sheetbet/internal/config"
	"github.com/ekuzmichev/sheetbet/internal/handlers"
	"github.com/ekuzmichev/sheetbet/internal/ledger"
	"github.com/ekuzmichev/sheetbet/internal/ledger/gsheets"
	"github.com/ekuzmichev/sheetbet/internal/reconcile"
	"github.com/ekuzmichev/sheetbet/internal/repo"
	"github.com/ekuzmichev/sheetbet/internal/service"
	"github.com/ekuzmichev/sheetbet/pkg/auth"
	"github.com/ekuzmichev/sheetbet/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg     *config.Config
	api     *handlers.Handlers
	srv     *service.Services
	repo    *repo.Repositories
	sweeper *reconcile.Service

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	if err := logger.InitLogger(cfg); err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}
	auth.SetSecret(cfg.JWTSecret)

	store, err := getStore(ctx, cfg)
	if err != nil {
		zap.L().Error("build sheet client failed: ", zap.Error(err))
		return fmt.Errorf("can't build sheet client: %w", err)
	}

	a.cfg = cfg
	a.repo = repo.New(store)
	a.srv = service.New(a.repo, cfg)
	a.api = handlers.New(a.srv, cfg.StartingBalance)
	a.sweeper = reconcile.New(cfg, a.repo.LoanRepo, a.repo.UserRepo)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startSweeper(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func getStore(ctx context.Context, cfg *config.Config) (ledger.Store, error) {
	if cfg.SheetID == "" {
		return nil, fmt.Errorf("no spreadsheet id configured")
	}
	return gsheets.New(ctx, cfg.SheetID, cfg.CredentialsFile)
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startSweeper(ctx context.Context) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.sweeper.Start(ctx)
	}()
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
