package game

import "image/color"

// SideID identifies one of the two teams
type SideID int

const (
	SideLeft SideID = iota
	SideRight
)

// String returns the side name used in logs
func (s SideID) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "unknown"
	}
}

// Opponent returns the other side
func (s SideID) Opponent() SideID {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}

// SideConfig holds presentation details for each side
type SideConfig struct {
	Side  SideID
	Label string
	Color color.RGBA
}

var (
	// SideConfigs holds configuration for each side
	SideConfigs = map[SideID]SideConfig{
		SideLeft: {
			Side:  SideLeft,
			Label: "Player 1",
			Color: color.RGBA{255, 0, 0, 255},
		},
		SideRight: {
			Side:  SideRight,
			Label: "Player 2",
			Color: color.RGBA{0, 0, 255, 255},
		},
	}
)

// GetSideConfig returns configuration for a side
func GetSideConfig(side SideID) SideConfig {
	if config, ok := SideConfigs[side]; ok {
		return config
	}
	return SideConfig{
		Side:  side,
		Label: side.String(),
		Color: color.RGBA{255, 100, 0, 255},
	}
}
