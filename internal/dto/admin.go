package dto

type AdminTargetRequestDTO struct {
	Target string `json:"target" example:"@alice"`
}

type AdminBalanceRequestDTO struct {
	Target string `json:"target" example:"@alice"`
	Amount int    `json:"amount" example:"5000"`
}

type AdminXPSetRequestDTO struct {
	Target string `json:"target" example:"@alice"`
	Amount int    `json:"amount" example:"2600"`
}

type AdminXPGainRequestDTO struct {
	Target string `json:"target" example:"@alice"`
	Amount int    `json:"amount" example:"250"`
}

type AdminResetResponseDTO struct {
	UserID       string `json:"user_id"`
	Username     string `json:"username,omitempty"`
	NewBalance   int    `json:"new_balance,omitempty" example:"1000"`
	LoansCleared int    `json:"loans_cleared,omitempty"`
	LogsDetached int    `json:"logs_detached,omitempty"`
}

type MilestoneAddRequestDTO struct {
	Threshold   int    `json:"threshold" example:"5000"`
	Reward      int    `json:"reward" example:"400"`
	XP          int    `json:"xp" example:"40"`
	Description string `json:"description" example:"5K starter"`
}

type MilestoneEditRequestDTO struct {
	Field string `json:"field" example:"reward"`
	Value string `json:"value" example:"450"`
}

type MilestoneToggleResponseDTO struct {
	Threshold int  `json:"threshold" example:"5000"`
	Active    bool `json:"active"`
}
