package engine

// Player-side skill leveling on a triangular XP curve.
const (
	SkillXPBase       = 100
	MaxSkillLevel     = 50
	skillBonusPerLevel = 0.05
)

// Skill is one player skill used to gate and reward exploration.
type Skill struct {
	ID    string `json:"id"`
	Level int    `json:"level"`
	XP    int    `json:"xp"` // progress toward the next level
}

// NewSkill returns a level-1 skill with no progress.
func NewSkill(id string) Skill {
	return Skill{ID: id, Level: 1}
}

// XPToLevel is the cumulative XP required to reach level n.
func XPToLevel(n int) int {
	if n <= 1 {
		return 0
	}
	return SkillXPBase * n * (n + 1) / 2
}

// XPForNextLevel is the XP needed to go from level to level+1.
func XPForNextLevel(level int) int {
	return XPToLevel(level+1) - XPToLevel(level)
}

// AddSkillXP accumulates XP, consuming thresholds while leveling up.
// XP is discarded once the cap is reached. Returns the updated skill and
// whether at least one level-up occurred.
func AddSkillXP(s Skill, amount int) (Skill, bool) {
	if amount <= 0 || s.Level >= MaxSkillLevel {
		if s.Level >= MaxSkillLevel {
			s.XP = 0
		}
		return s, false
	}

	s.XP += amount
	leveled := false
	for s.Level < MaxSkillLevel && s.XP >= XPForNextLevel(s.Level) {
		s.XP -= XPForNextLevel(s.Level)
		s.Level++
		leveled = true
	}
	if s.Level >= MaxSkillLevel {
		s.XP = 0
	}
	return s, leveled
}

// SkillTier names a display band of levels. Tiers carry no behavior;
// requirement checks compare raw levels.
type SkillTier string

const (
	TierNovice     SkillTier = "novice"
	TierApprentice SkillTier = "apprentice"
	TierJourneyman SkillTier = "journeyman"
	TierExpert     SkillTier = "expert"
	TierMaster     SkillTier = "master"
)

// TierForLevel maps a level to its display tier.
func TierForLevel(level int) SkillTier {
	switch {
	case level >= 40:
		return TierMaster
	case level >= 30:
		return TierExpert
	case level >= 20:
		return TierJourneyman
	case level >= 10:
		return TierApprentice
	}
	return TierNovice
}

// SkillEffectMultiplier is the linear bonus other systems consume, e.g.
// drop-rate scaling.
func SkillEffectMultiplier(level int) float64 {
	if level < 1 {
		level = 1
	}
	return 1 + float64(level-1)*skillBonusPerLevel
}
