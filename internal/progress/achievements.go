package progress

// Achievement is a one-time unlock earned by reaching a streak length.
type Achievement struct {
	ID     string
	Name   string
	Streak int // slices in a row without a missed fruit
	Coins  int // one-time bonus
}

// Achievements are checked in order after every streak success.
var Achievements = []Achievement{
	{ID: "streak25", Name: "Sharp Eye", Streak: 25, Coins: 0},
	{ID: "streak50", Name: "Blade Dancer", Streak: 50, Coins: 5},
	{ID: "streak100", Name: "Fruit Ninja", Streak: 100, Coins: 10},
}

// Daily reward rules.
const (
	DailyTarget = 100 // slices in one calendar day
	DailyBonus  = 10  // coins granted once per day at the target
)

// LeaderboardSize is the number of scores kept per profile.
const LeaderboardSize = 20
