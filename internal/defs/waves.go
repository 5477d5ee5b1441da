// internal/defs/waves.go
package defs

// WaveRules описывает формулу генерации волны:
// count = BaseCount + CountPerWave*wave, открытых уровней = ceil(wave/TierUnlockStep).
type WaveRules struct {
	BaseCount      int `json:"base_count"`
	CountPerWave   int `json:"count_per_wave"`
	TierUnlockStep int `json:"tier_unlock_step"`
}

// DefaultWaveRules returns count = 5 + 2*wave with a new tier every two waves.
func DefaultWaveRules() WaveRules {
	return WaveRules{BaseCount: 5, CountPerWave: 2, TierUnlockStep: 2}
}

// Count returns the number of spawns for the wave; never below 1.
func (r WaveRules) Count(wave int) int {
	n := r.BaseCount + r.CountPerWave*wave
	if n < 1 {
		n = 1
	}
	return n
}

// HighestTier returns the strongest tier allowed in the wave, clamped to [0, MaxTier].
func (r WaveRules) HighestTier(wave int) int {
	step := r.TierUnlockStep
	if step < 1 {
		step = 1
	}
	unlocked := (wave + step - 1) / step // ceil
	highest := unlocked - 1
	if highest < 0 {
		highest = 0
	}
	if highest > MaxTier {
		highest = MaxTier
	}
	return highest
}
