package config

import (
	"embed"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed levels/*.yaml
var levelFS embed.FS

// Level is a static level layout in world units.
type Level struct {
	ID           string           `yaml:"id"`
	Name         string           `yaml:"name"`
	ScreenW      float64          `yaml:"screen_w"` // world viewport width
	ScreenH      float64          `yaml:"screen_h"`
	GroundY      float64          `yaml:"ground_y"`
	EndX         float64          `yaml:"end_x"`
	Spawn        Point            `yaml:"spawn"`
	Ground       []GroundDef      `yaml:"ground"`
	Enemies      []EnemyDef       `yaml:"enemies"`
	Collectibles []CollectibleDef `yaml:"collectibles"`
}

// Point is a world position.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// GroundDef is a half-open ground interval [X1, X2).
type GroundDef struct {
	X1    float64 `yaml:"x1"`
	X2    float64 `yaml:"x2"`
	Spike bool    `yaml:"spike"`
}

// EnemyDef places a patrolling enemy.
type EnemyDef struct {
	X           float64 `yaml:"x"`
	Speed       float64 `yaml:"speed"`
	Dir         int     `yaml:"dir"`
	PatrolStart float64 `yaml:"patrol_start"`
	PatrolEnd   float64 `yaml:"patrol_end"`
}

// CollectibleDef places a pickup. Kind is coin, health or powerup.
type CollectibleDef struct {
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	Kind string  `yaml:"kind"`
}

// LevelIDs returns the IDs of all embedded levels, sorted.
func LevelIDs() []string {
	entries, err := levelFS.ReadDir("levels")
	if err != nil {
		return nil
	}
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(ids)
	return ids
}

// EmbeddedLevel loads a level bundled with the binary.
func EmbeddedLevel(id string) (Level, error) {
	data, err := levelFS.ReadFile(path.Join("levels", id+".yaml"))
	if err != nil {
		return Level{}, fmt.Errorf("config: unknown level %q", id)
	}
	return ParseLevel(data)
}

// LoadLevelFile loads a level from disk.
func LoadLevelFile(filename string) (Level, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Level{}, fmt.Errorf("config: read level %s: %w", filename, err)
	}
	lvl, err := ParseLevel(data)
	if err != nil {
		return Level{}, fmt.Errorf("config: level %s: %w", filename, err)
	}
	return lvl, nil
}

// ParseLevel decodes and validates a level document.
func ParseLevel(data []byte) (Level, error) {
	lvl := Level{ScreenW: 800, ScreenH: 600}
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return Level{}, fmt.Errorf("parse level: %w", err)
	}
	if err := lvl.Validate(); err != nil {
		return Level{}, err
	}
	return lvl, nil
}

// Validate checks the structural rules every level must satisfy.
func (l Level) Validate() error {
	if l.ScreenW <= 0 || l.ScreenH <= 0 {
		return fmt.Errorf("level %q: viewport must be positive", l.ID)
	}
	if l.EndX <= 0 {
		return fmt.Errorf("level %q: end_x must be positive", l.ID)
	}
	if len(l.Ground) == 0 {
		return fmt.Errorf("level %q: no ground", l.ID)
	}
	for i, g := range l.Ground {
		if g.X2 <= g.X1 {
			return fmt.Errorf("level %q: ground %d is empty [%g, %g)", l.ID, i, g.X1, g.X2)
		}
	}
	for i, e := range l.Enemies {
		if e.PatrolEnd < e.PatrolStart {
			return fmt.Errorf("level %q: enemy %d patrol inverted", l.ID, i)
		}
		if e.X < e.PatrolStart || e.X > e.PatrolEnd {
			return fmt.Errorf("level %q: enemy %d spawns at %g outside its patrol [%g, %g]",
				l.ID, i, e.X, e.PatrolStart, e.PatrolEnd)
		}
		if e.Dir != 1 && e.Dir != -1 {
			return fmt.Errorf("level %q: enemy %d dir must be 1 or -1", l.ID, i)
		}
	}
	for i, c := range l.Collectibles {
		switch c.Kind {
		case "coin", "health", "powerup":
		default:
			return fmt.Errorf("level %q: collectible %d has unknown kind %q", l.ID, i, c.Kind)
		}
	}
	return nil
}
