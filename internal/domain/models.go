package domain

import "time"

// User is one row of the Users table. Balance, XP and the counters are stored
// as plain cells; Level is a cached projection of XP.
type User struct {
	ID        string
	Username  string
	Balance   int
	XP        int
	Level     int
	TotalBets int
	LastDaily string // YYYY-MM-DD, empty until the first claim
	Streak    int
	JoinDate  string
	// Milestones maps a wager threshold to its claimed flag (Milestone_<n> columns).
	Milestones map[int]bool
	// Row is the 1-based sheet row this record was scanned from.
	Row int
}

type LoanStatus string

const (
	LoanActive  LoanStatus = "Active"
	LoanPaid    LoanStatus = "Paid"
	LoanCleared LoanStatus = "Cleared"
)

type Loan struct {
	LoanID       string
	UserID       string
	Amount       int
	InterestRate float64
	DueDate      string // YYYY-MM-DD
	RepayAmount  int
	Status       LoanStatus
	Timestamp    string
	Row          int
}

// Milestone is one configurable reward tier from the BettingRewards table.
type Milestone struct {
	Threshold   int
	Reward      int
	XP          int
	Description string
	Active      bool
	Row         int
}

// RewardClaim is an audit row appended to Logs_BetRewards for every milestone
// payout. It is never read back by the engine.
type RewardClaim struct {
	RewardID  string
	UserID    string
	Username  string
	Threshold int
	Coins     int
	XP        int
	Timestamp time.Time
}

type GameResult string

const (
	ResultWin  GameResult = "WIN"
	ResultLose GameResult = "LOSE"
	ResultDraw GameResult = "DRAW"
)

// RPSRound is a settled rock-paper-scissors duel.
type RPSRound struct {
	BetID        string
	UserID       string
	Bet          int
	PlayerChoice string
	BotChoice    string
	Result       GameResult
	Payout       int
	PlayedAt     time.Time
}

// CrashRound is a settled crash-style cash-out round.
type CrashRound struct {
	BetID      string
	UserID     string
	Bet        int
	Target     float64
	CrashPoint float64
	Result     GameResult
	Payout     int
	PlayedAt   time.Time
}

// SpinRound is a settled wheel spin.
type SpinRound struct {
	BetID    string
	UserID   string
	Bet      int
	Outcome  string
	Payout   int
	PlayedAt time.Time
}
