package config

import (
	"flag"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	Address          string `env:"RUN_ADDRESS"              envDefault:"localhost:8080"`
	SheetID          string `env:"GOOGLE_SHEET_ID"          envDefault:""`
	CredentialsFile  string `env:"GOOGLE_CREDENTIALS_FILE"  envDefault:"credentials.json"`
	LogLvl           string `env:"LOG_LVL"                  envDefault:"info"`
	JWTSecret        string `env:"JWT_SECRET"               envDefault:"sheetbet-dev-secret"`
	CooldownSeconds  int    `env:"GAME_COOLDOWN_SECONDS"    envDefault:"120"`
	StartingBalance  int    `env:"STARTING_BALANCE"         envDefault:"1000"`
	DailyBaseReward  int    `env:"DAILY_BASE_REWARD"        envDefault:"500"`
	ReconcileSeconds int    `env:"LOAN_RECONCILE_SECONDS"   envDefault:"300"`
}

func New() *Config {
	// Local deployments keep credentials in .env.
	godotenv.Load()

	cfg := &Config{}

	env.Parse(cfg)

	flag.StringVar(&cfg.Address, "a", cfg.Address, "address and port to run server")
	flag.StringVar(&cfg.SheetID, "s", cfg.SheetID, "google spreadsheet id backing the ledger")
	flag.StringVar(&cfg.CredentialsFile, "c", cfg.CredentialsFile, "service account credentials file")
	flag.StringVar(&cfg.LogLvl, "l", cfg.LogLvl, "log level")
	flag.Parse()

	return cfg
}
