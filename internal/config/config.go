// Package config loads tuning parameters for the slicing game from YAML.
package config

// SliceConfig holds all tuning parameters for a fruit slice session.
type SliceConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Physics    SlicePhysics     `yaml:"physics"`
	Margins    SliceMargins     `yaml:"margins"`
	Blade      BladeConfig      `yaml:"blade"`
	Split      SplitConfig      `yaml:"split"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Effects    EffectsConfig    `yaml:"effects"`
	Spawner    SpawnerConfig    `yaml:"spawner"`
	Fruits     []FruitVariant   `yaml:"fruits"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FieldConfig defines the logical play field in field units.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// SlicePhysics defines per-tick accelerations for each entity family.
type SlicePhysics struct {
	Gravity        float64 `yaml:"gravity"`         // projectiles
	HalfGravity    float64 `yaml:"half_gravity"`    // split halves
	SparkGravity   float64 `yaml:"spark_gravity"`   // ballistic particles
	StreakGravity  float64 `yaml:"streak_gravity"`  // juice streaks
	HomingDamping  float64 `yaml:"homing_damping"`  // share of velocity kept per tick
	HomingGain     float64 `yaml:"homing_gain"`     // desired speed per unit of distance
	HomingMinSpeed float64 `yaml:"homing_min_speed"`
	HomingArrive   float64 `yaml:"homing_arrive"` // removal distance from the anchor
}

// SliceMargins defines how far past the field an entity may travel before pruning.
type SliceMargins struct {
	Fruit          float64 `yaml:"fruit"`
	Coin           float64 `yaml:"coin"`
	Hazard         float64 `yaml:"hazard"`
	Half           float64 `yaml:"half"`
	ParticleBottom float64 `yaml:"particle_bottom"`
	ParticleSide   float64 `yaml:"particle_side"`
}

// BladeConfig defines pointer trail and hit detection parameters.
type BladeConfig struct {
	TrailLength       int     `yaml:"trail_length"`
	FruitRadius       float64 `yaml:"fruit_radius"`
	CoinRadius        float64 `yaml:"coin_radius"`
	HazardRadius      float64 `yaml:"hazard_radius"`
	SpeedScale        float64 `yaml:"speed_scale"` // applied to mean per-tick travel
	MinSpeed          float64 `yaml:"min_speed"`
	MaxSpeed          float64 `yaml:"max_speed"`
	LightningDistance float64 `yaml:"lightning_distance"` // per-tick travel that counts as a fast swipe
	LightningTicks    int     `yaml:"lightning_ticks"`
}

// SplitConfig defines how sliced projectiles break into halves.
type SplitConfig struct {
	Life        int     `yaml:"life"`
	SmoothTicks int     `yaml:"smooth_ticks"`
	MinSpeed    float64 `yaml:"min_speed"`
	MaxSpeed    float64 `yaml:"max_speed"`
	SpeedGain   float64 `yaml:"speed_gain"` // fractional speed bonus per unit of swipe speed
	ClampMin    float64 `yaml:"clamp_min"`
	ClampMax    float64 `yaml:"clamp_max"`
	AngleJitter float64 `yaml:"angle_jitter"` // degrees
}

// ScoringConfig defines combo, multiplier and hazard rules.
type ScoringConfig struct {
	ComboWindowMs   int `yaml:"combo_window_ms"`
	ComboThreshold  int `yaml:"combo_threshold"`
	Multiplier      int `yaml:"multiplier"`
	PopupEvery      int `yaml:"popup_every"`
	FruitValue      int `yaml:"fruit_value"`
	CoinValue       int `yaml:"coin_value"`
	HazardPenalty   int `yaml:"hazard_penalty"`
	// HazardSafeScore is the lowest score that survives a bomb.
	HazardSafeScore int `yaml:"hazard_safe_score"`
	GameOverTicks   int `yaml:"game_over_ticks"`
}

// EffectsConfig defines durations and strengths of visual cues.
type EffectsConfig struct {
	SliceLineTicks       int     `yaml:"slice_line_ticks"`
	PopupTicks           int     `yaml:"popup_ticks"`
	CoinPopupTicks       int     `yaml:"coin_popup_ticks"`
	ComboShakeTicks      int     `yaml:"combo_shake_ticks"`
	ComboShakeIntensity  float64 `yaml:"combo_shake_intensity"`
	HazardShakeTicks     int     `yaml:"hazard_shake_ticks"`
	HazardShakeIntensity float64 `yaml:"hazard_shake_intensity"`
	FlashTicks           int     `yaml:"flash_ticks"`
	ComboLightningTicks  int     `yaml:"combo_lightning_ticks"`
}

// SpawnerConfig defines toss timing, composition and launch ranges.
type SpawnerConfig struct {
	IntervalTicks     int     `yaml:"interval_ticks"`
	MinIntervalTicks  int     `yaml:"min_interval_ticks"`
	GroupChance       float64 `yaml:"group_chance"`
	MaxGroup          int     `yaml:"max_group"`
	CoinChance        float64 `yaml:"coin_chance"`
	HazardChance      float64 `yaml:"hazard_chance"`
	MixedHazardChance float64 `yaml:"mixed_hazard_chance"`
	ForcedCoinTicks   int     `yaml:"forced_coin_ticks"`
	FruitSize         float64 `yaml:"fruit_size"`
	CoinSize          float64 `yaml:"coin_size"`
	HazardSize        float64 `yaml:"hazard_size"`
	TossSpeedMin      float64 `yaml:"toss_speed_min"` // upward launch speed range
	TossSpeedMax      float64 `yaml:"toss_speed_max"`
	HazardSpeedMin    float64 `yaml:"hazard_speed_min"`
	HazardSpeedMax    float64 `yaml:"hazard_speed_max"`
}

// FruitVariant is one entry of the fruit asset manifest.
type FruitVariant struct {
	Name   string `yaml:"name"`
	Visual string `yaml:"visual"` // asset key resolved by the renderer
	Glyph  string `yaml:"glyph"`
	Color  string `yaml:"color"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // toss speed bonus at max difficulty
	IntervalReduction int     `yaml:"interval_reduction"` // spawn interval reduction at max difficulty
	HazardBoost       float64 `yaml:"hazard_boost"`       // extra hazard chance at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ParsePreset converts a flag value to a preset. Unknown values yield ok=false.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	}
	return "", false
}
