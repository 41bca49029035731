package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the default Flappy Bird configuration.
// It mirrors defaults/flappy.yaml and backs it up if the embed fails to parse.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Window: WindowConfig{
			Title:     "Flappy Bird",
			Width:     1344, // 1920 * 0.7
			Height:    756,  // 1080 * 0.7
			Resizable: true,
		},
		Terminal: TerminalConfig{
			CellWidth:  10,
			CellHeight: 20,
		},
		Physics: FlappyPhysics{
			Gravity:     1000,
			ScrollSpeed: 350,
			MaxStep:     0.1,
		},
		Bird: FlappyBird{
			X:           -275,
			Size:        27,
			FlapHeight:  75,
			HitboxScale: 0.95,
		},
		Obstacles: FlappyObstacles{
			PillarWidth:     60,
			Gap:             155,
			SpawnDistance:   380,
			GapFraction:     core.Range{Min: 0.2, Max: 0.8},
			TriggerWidth:    5,
			FadeSpeed:       3,
			BorderThickness: 40,
		},
		Explosion: ExplosionConfig{
			ParticleCount: 32,
			SizeFraction:  core.Range{Min: 0.05, Max: 0.5},
			Speed:         core.Range{Min: 300, Max: 850},
			Lifetime:      core.Range{Min: 0.1, Max: 1.0},
		},
		Palette: Palette{
			Pillar:     "#ffb454",
			Bird:       "#59c2ff",
			Background: "#0d1016",
			Laser:      "#f02e2e",
			Score:      "#95e6cb",
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultFlappyYAML
}
