package dto

type MilestoneDTO struct {
	Threshold   int    `json:"threshold" example:"10000"`
	Reward      int    `json:"reward" example:"1000"`
	XP          int    `json:"xp" example:"100"`
	Description string `json:"description" example:"10K Betting Milestone"`
	Active      bool   `json:"active"`
}

type MilestoneStatusDTO struct {
	MilestoneDTO
	Reached bool `json:"reached"`
	Claimed bool `json:"claimed"`
}

type RewardsOverviewResponseDTO struct {
	TotalBets  int                  `json:"total_bets" example:"15000"`
	Milestones []MilestoneStatusDTO `json:"milestones"`
}

type RewardsClaimDTO struct {
	Claimed     []MilestoneDTO `json:"claimed"`
	Coins       int            `json:"coins" example:"1000"`
	XP          int            `json:"xp" example:"100"`
	NewBalance  int            `json:"new_balance" example:"6000"`
	NewXP       int            `json:"new_xp" example:"100"`
	NewLevel    int            `json:"new_level" example:"1"`
	Next        *ProgressDTO   `json:"next,omitempty"`
	AllComplete bool           `json:"all_complete"`
}

type ProgressDTO struct {
	Threshold int     `json:"threshold" example:"20000"`
	Remaining int     `json:"remaining" example:"9000"`
	Percent   float64 `json:"percent" example:"55"`
}
