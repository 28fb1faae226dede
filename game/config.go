package game

import (
	"errors"
	"fmt"
	"image"
	"os"

	"github.com/gogpu/shapeplay"
	"gopkg.in/yaml.v3"
)

// Color is an RGBA written as a hex string ("#ff0000") in configuration
// files.
type Color shapeplay.RGBA

// RGBA returns the color as a shapeplay.RGBA.
func (c Color) RGBA() shapeplay.RGBA { return shapeplay.RGBA(c) }

// UnmarshalYAML parses a hex string.
func (c *Color) UnmarshalYAML(n *yaml.Node) error {
	var s string
	if err := n.Decode(&s); err != nil {
		return err
	}
	v, err := shapeplay.ParseHex(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", n.Line, err)
	}
	*c = Color(v)
	return nil
}

// MarshalYAML writes a hex string.
func (c Color) MarshalYAML() (any, error) {
	return shapeplay.RGBA(c).HexString(), nil
}

// Vec2 is a point written as a two-element sequence ([x, y]).
type Vec2 struct {
	X, Y float64
}

// Point returns the vector as a shapeplay.Point.
func (v Vec2) Point() shapeplay.Point { return shapeplay.Pt(v.X, v.Y) }

// UnmarshalYAML parses [x, y].
func (v *Vec2) UnmarshalYAML(n *yaml.Node) error {
	var xy []float64
	if err := n.Decode(&xy); err != nil {
		return err
	}
	if len(xy) != 2 {
		return fmt.Errorf("line %d: want [x, y], got %d values", n.Line, len(xy))
	}
	v.X, v.Y = xy[0], xy[1]
	return nil
}

// MarshalYAML writes [x, y].
func (v Vec2) MarshalYAML() (any, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, f := range []float64{v.X, v.Y} {
		var item yaml.Node
		if err := item.Encode(f); err != nil {
			return nil, err
		}
		n.Content = append(n.Content, &item)
	}
	return n, nil
}

// CameraConfig places the camera.
type CameraConfig struct {
	Center     Vec2     `yaml:"center"`
	Width      float64  `yaml:"width"`
	Viewport   Viewport `yaml:"viewport"`
	Background Color    `yaml:"background"`
}

// Viewport is a pixel rectangle.
type Viewport struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Rect returns the viewport as an image.Rectangle.
func (v Viewport) Rect() image.Rectangle {
	return image.Rect(v.X, v.Y, v.X+v.Width, v.Y+v.Height)
}

// CursorConfig describes the player-controlled cursor.
type CursorConfig struct {
	Start Vec2    `yaml:"start"`
	Size  float64 `yaml:"size"`
	Color Color   `yaml:"color"`
	Step  float64 `yaml:"step"`
	// Min and Max bound the cursor position; moves that would leave the
	// rectangle are refused.
	Min Vec2 `yaml:"min"`
	Max Vec2 `yaml:"max"`
}

// Fixture is a static renderable drawn every frame between the spawned
// objects and the cursor.
type Fixture struct {
	Shape    shapeplay.Shape `yaml:"shape"`
	Position Vec2            `yaml:"position"`
	Size     float64         `yaml:"size"`
	Rotation float64         `yaml:"rotation"`
	Color    Color           `yaml:"color"`
}

// Config is the complete game configuration.
type Config struct {
	Camera     CameraConfig `yaml:"camera"`
	ClearColor Color        `yaml:"clear_color"`
	Cursor     CursorConfig `yaml:"cursor"`
	Spawn      SpawnPolicy  `yaml:"spawn"`
	Fixtures   []Fixture    `yaml:"fixtures"`
}

// DefaultConfig returns the stock setup: a 100-unit wide world on a
// 640x480 viewport, a red cursor bounded to x in [1, 99] and y in [1, 74],
// and the classic spawn policy.
//
// The three fixtures sit inside the visible 100x75 world. The triangle at
// (80, 60) and the star at (20, 60) replace the classic (80, 100) and
// (50, 100), which lie above the top edge and are never drawn.
func DefaultConfig() Config {
	red := Color(shapeplay.Red)
	return Config{
		Camera: CameraConfig{
			Center:     Vec2{50, 37.5},
			Width:      100,
			Viewport:   Viewport{Width: 640, Height: 480},
			Background: Color(shapeplay.Gray(0.8)),
		},
		ClearColor: Color(shapeplay.Gray(0.9)),
		Cursor: CursorConfig{
			Start: Vec2{50, 37.5},
			Size:  1,
			Color: red,
			Step:  1,
			Min:   Vec2{1, 1},
			Max:   Vec2{99, 74},
		},
		Spawn: ClassicSpawn(),
		Fixtures: []Fixture{
			{Shape: shapeplay.Triangle, Position: Vec2{80, 60}, Size: 5, Color: red},
			{Shape: shapeplay.Polygon, Position: Vec2{80, 20}, Size: 5, Color: red},
			{Shape: shapeplay.Star, Position: Vec2{20, 60}, Size: 5, Color: red},
		},
	}
}

// ParseConfig overlays YAML data onto DefaultConfig and validates the
// result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("game: parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML configuration file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return Config{}, fmt.Errorf("game: read config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	shapeplay.Logger().Info("config loaded", "path", path)
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate reports every invalid field.
func (c Config) Validate() error {
	var errs []error
	if c.Camera.Width <= 0 {
		errs = append(errs, fmt.Errorf("camera width %v must be positive", c.Camera.Width))
	}
	if c.Camera.Viewport.Width <= 0 || c.Camera.Viewport.Height <= 0 {
		errs = append(errs, fmt.Errorf("camera viewport %v is empty", c.Camera.Viewport.Rect()))
	}
	cur := c.Cursor
	if cur.Step <= 0 {
		errs = append(errs, fmt.Errorf("cursor step %v must be positive", cur.Step))
	}
	if cur.Size <= 0 {
		errs = append(errs, fmt.Errorf("cursor size %v must be positive", cur.Size))
	}
	if cur.Min.X > cur.Max.X || cur.Min.Y > cur.Max.Y {
		errs = append(errs, fmt.Errorf("cursor bounds %v..%v are inverted", cur.Min, cur.Max))
	} else if !cur.Start.Point().In(cur.Min.Point(), cur.Max.Point()) {
		errs = append(errs, fmt.Errorf("cursor start %v outside bounds %v..%v", cur.Start, cur.Min, cur.Max))
	}
	if err := c.Spawn.Validate(); err != nil {
		errs = append(errs, err)
	}
	for i, f := range c.Fixtures {
		if !f.Shape.Valid() {
			errs = append(errs, fmt.Errorf("fixture %d: %w: %d", i, shapeplay.ErrUnknownShape, int(f.Shape)))
		}
		if f.Size <= 0 {
			errs = append(errs, fmt.Errorf("fixture %d: size %v must be positive", i, f.Size))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
