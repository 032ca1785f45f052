package bot

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning holds the tactical constants the policies score with. The values
// are tuned, not derived; they live here as configuration so a match can be
// re-tuned without touching policy code.
type Tuning struct {
	// Threat scoring (defender target selection).
	ThreatBase           float64 `yaml:"threat_base"`
	ThreatDecay          float64 `yaml:"threat_decay"`           // per cell of distance to our border
	ThreatFloor          float64 `yaml:"threat_floor"`           // minimum distance factor
	ThreatHomeMultiplier float64 `yaml:"threat_home_multiplier"` // enemy already inside our zone

	// Carrier safety gates.
	BlitziumDangerRadius int `yaml:"blitzium_danger_radius"` // any enemy this close is too close when hauling blitzium
	CrowdRadius          int `yaml:"crowd_radius"`           // radius for counting enemies when empty-handed
	CrowdTolerance       int `yaml:"crowd_tolerance"`        // enemies tolerated within CrowdRadius
	DeliveryRiskRadius   int `yaml:"delivery_risk_radius"`   // enemy-count radius when picking a home cell

	// Defender cleanup duty.
	CleanupSafetyRadius int `yaml:"cleanup_safety_radius"` // no enemy may be this close before cleaning
	CleanupItemRadius   int `yaml:"cleanup_item_radius"`   // how far afield a radiant may be picked up
	CleanupBudget       int `yaml:"cleanup_budget"`        // max grab-then-drop round trip

	// Defender movement and positioning.
	InterceptBonus       int     `yaml:"intercept_bonus"`        // distance discount for steps landing next to an enemy
	BorderSelfWeight     float64 `yaml:"border_self_weight"`     // weight of own distance in border scoring
	PatrolBase           float64 `yaml:"patrol_base"`            // base score of any border cell
	PatrolCoverageWeight float64 `yaml:"patrol_coverage_weight"` // per own-zone cell in the 3x3 neighbourhood

	// Carrier drop-spot ring search.
	DropSearchRadius int `yaml:"drop_search_radius"`
}

// DefaultTuning returns the stock constants.
func DefaultTuning() Tuning {
	return Tuning{
		ThreatBase:           100,
		ThreatDecay:          0.1,
		ThreatFloor:          0.2,
		ThreatHomeMultiplier: 5,

		BlitziumDangerRadius: 2,
		CrowdRadius:          1,
		CrowdTolerance:       1,
		DeliveryRiskRadius:   3,

		CleanupSafetyRadius: 3,
		CleanupItemRadius:   5,
		CleanupBudget:       8,

		InterceptBonus:       2,
		BorderSelfWeight:     0.5,
		PatrolBase:           10,
		PatrolCoverageWeight: 0.1,

		DropSearchRadius: 8,
	}
}

// LoadTuning reads a YAML tuning file over the defaults. Fields absent from
// the file keep their default values.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()
	raw, err := os.ReadFile(path)
	if err != nil {
		return t, err
	}
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return t, fmt.Errorf("tuning %s: %w", path, err)
	}
	return t, nil
}
