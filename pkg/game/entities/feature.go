// Package entities describes the things that can occupy a board cell.
package entities

// FeatureType represents a kind of board feature
type FeatureType int

const (
	FeatureMonster  FeatureType = iota // Kills the agent, who respawns at the entry
	FeaturePit                         // Kills the agent, who respawns at the entry
	FeatureTreasure                    // Collected once, needed to win
	FeatureWind                        // Cue: a pit is adjacent
	FeatureOdor                        // Cue: the monster is adjacent
)

// FeatureInfo contains display information for each feature type
type FeatureInfo struct {
	Name   string
	Icon   string // Terminal glyph
	Symbol rune   // Plain ASCII symbol for map dumps
	Lethal bool   // Entering the cell kills the agent
	Cue    bool   // Sensory hint with no mechanical effect
}

// FeatureTypes maps feature types to their display information
var FeatureTypes = map[FeatureType]FeatureInfo{
	FeatureMonster: {
		Name:   "Monster",
		Icon:   "W",
		Symbol: 'W',
		Lethal: true,
	},
	FeaturePit: {
		Name:   "Pit",
		Icon:   "●",
		Symbol: 'P',
		Lethal: true,
	},
	FeatureTreasure: {
		Name:   "Treasure",
		Icon:   "$",
		Symbol: '$',
	},
	FeatureWind: {
		Name:   "Wind",
		Icon:   "≈",
		Symbol: '~',
		Cue:    true,
	},
	FeatureOdor: {
		Name:   "Odor",
		Icon:   "§",
		Symbol: '%',
		Cue:    true,
	},
}

// String returns the feature name
func (f FeatureType) String() string {
	if info, ok := FeatureTypes[f]; ok {
		return info.Name
	}
	return "Unknown"
}

// Icon returns the terminal glyph for a feature type
func (f FeatureType) Icon() string {
	return FeatureTypes[f].Icon
}

// Symbol returns the ASCII map symbol for a feature type
func (f FeatureType) Symbol() rune {
	return FeatureTypes[f].Symbol
}

// IsLethal returns true if entering a cell with this feature kills the agent
func (f FeatureType) IsLethal() bool {
	return FeatureTypes[f].Lethal
}

// IsCue returns true if this feature is only a sensory hint
func (f FeatureType) IsCue() bool {
	return FeatureTypes[f].Cue
}
