package dto

type RPSRequestDTO struct {
	Bet    int    `json:"bet" example:"200"`
	Choice string `json:"choice" example:"rock"`
}

type AviatorRequestDTO struct {
	Bet    int     `json:"bet" example:"100"`
	Target float64 `json:"target" example:"2.0"`
}

type SpinRequestDTO struct {
	Bet int `json:"bet" example:"100"`
}

// GameResponseDTO carries the settlement fields shared by every game plus the
// per-game extras that apply.
type GameResponseDTO struct {
	BetID      string           `json:"bet_id" example:"RPS-20250315103000"`
	Result     string           `json:"result" example:"WIN"`
	Bet        int              `json:"bet" example:"200"`
	Payout     int              `json:"payout" example:"400"`
	NewBalance int              `json:"new_balance" example:"1200"`
	TotalBets  int              `json:"total_bets" example:"9200"`
	Rewards    *RewardsClaimDTO `json:"rewards,omitempty"`

	PlayerChoice string  `json:"player_choice,omitempty" example:"rock"`
	BotChoice    string  `json:"bot_choice,omitempty" example:"scissors"`
	Target       float64 `json:"target,omitempty" example:"2.0"`
	CrashPoint   float64 `json:"crash_point,omitempty" example:"3.42"`
	Outcome      string  `json:"outcome,omitempty" example:"WIN_2X"`
	Multiplier   float64 `json:"multiplier,omitempty" example:"2"`
}

type CooldownResponseDTO struct {
	Game             string `json:"game" example:"spin"`
	RemainingSeconds int    `json:"remaining_seconds" example:"87"`
}
