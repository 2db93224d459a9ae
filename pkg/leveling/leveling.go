package leveling

// Tier is one row of the fixed XP ladder. BonusAmount is the daily base bonus
// at this tier, StreakBonus the extra coins per consecutive day of streak.
type Tier struct {
	Level       int
	XPRequired  int
	BonusAmount int
	StreakBonus int
	Description string
}

var tiers = []Tier{
	{Level: 1, XPRequired: 0, BonusAmount: 500, StreakBonus: 0, Description: "First level daily bonus"},
	{Level: 2, XPRequired: 1000, BonusAmount: 600, StreakBonus: 50, Description: "Streak bonus included"},
	{Level: 3, XPRequired: 2500, BonusAmount: 700, StreakBonus: 100, Description: "Higher bonus for level 3"},
	{Level: 4, XPRequired: 5000, BonusAmount: 900, StreakBonus: 150, Description: "Higher bonus for level 4"},
	{Level: 5, XPRequired: 8000, BonusAmount: 1200, StreakBonus: 200, Description: "High level daily bonus"},
}

// LevelFor returns the highest tier whose XP requirement is satisfied by xp,
// and the next tier above it (nil at the top of the ladder). Tier 1 always
// matches, including at xp = 0.
func LevelFor(xp int) (current Tier, next *Tier) {
	current = tiers[0]
	for i, tier := range tiers {
		if xp >= tier.XPRequired {
			current = tier
			continue
		}
		t := tiers[i]
		next = &t
		break
	}
	return current, next
}

// Tiers returns the ladder in ascending order.
func Tiers() []Tier {
	out := make([]Tier, len(tiers))
	copy(out, tiers)
	return out
}
