package dto

type RegisterRequestDTO struct {
	UserID   string `json:"user_id" example:"842712345"`
	Username string `json:"username" example:"alice"`
}

type RegisterResponseDTO struct {
	Token   string `json:"token"`
	Created bool   `json:"created"`
	Balance int    `json:"balance" example:"1000"`
}

type ProfileResponseDTO struct {
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	Balance   int    `json:"balance" example:"1500"`
	XP        int    `json:"xp" example:"1200"`
	Level     int    `json:"level" example:"2"`
	NextLevel *int   `json:"next_level_xp,omitempty" example:"2500"`
	TotalBets int    `json:"total_bets" example:"9000"`
	Streak    int    `json:"streak" example:"3"`
	JoinDate  string `json:"join_date,omitempty" example:"2025-12-01"`
}

type DailyClaimResponseDTO struct {
	Reward     int  `json:"reward" example:"600"`
	XPGain     int  `json:"xp_gain" example:"600"`
	Streak     int  `json:"streak" example:"4"`
	NewBalance int  `json:"new_balance" example:"2100"`
	NewXP      int  `json:"new_xp" example:"1800"`
	NewLevel   int  `json:"new_level" example:"2"`
	LeveledUp  bool `json:"leveled_up"`
}
