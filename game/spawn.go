package game

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/gogpu/shapeplay"
	"gopkg.in/yaml.v3"
)

// ShapeWeights maps shapes to relative selection weights. Missing shapes
// have weight zero.
type ShapeWeights map[shapeplay.Shape]float64

// UnmarshalYAML replaces the receiver instead of merging into it, so a
// configuration file fully overrides the default table.
func (w *ShapeWeights) UnmarshalYAML(n *yaml.Node) error {
	m := make(map[shapeplay.Shape]float64)
	if err := n.Decode(&m); err != nil {
		return err
	}
	*w = m
	return nil
}

// SpawnPolicy describes how one spawn trigger populates a batch.
type SpawnPolicy struct {
	// MinCount and MaxCount bound the batch size: uniform in
	// [MinCount, MaxCount), or exactly MinCount when they are equal.
	MinCount int `yaml:"min_count"`
	MaxCount int `yaml:"max_count"`

	// Jitter is the maximum offset from the cursor on each axis.
	Jitter float64 `yaml:"jitter"`

	// MinSize and MaxSize bound the uniform edge length, [MinSize, MaxSize).
	MinSize float64 `yaml:"min_size"`
	MaxSize float64 `yaml:"max_size"`

	// MaxRotation bounds the rotation in degrees, [0, MaxRotation).
	MaxRotation float64 `yaml:"max_rotation"`

	// Weights selects the shape of each item.
	Weights ShapeWeights `yaml:"weights"`
}

// ClassicSpawn spawns 10 to 19 squares around the cursor.
func ClassicSpawn() SpawnPolicy {
	return SpawnPolicy{
		MinCount:    10,
		MaxCount:    20,
		Jitter:      5,
		MinSize:     1,
		MaxSize:     6,
		MaxRotation: 180,
		Weights:     ShapeWeights{shapeplay.Square: 1},
	}
}

// MixedSpawn spawns exactly two items with a weighted shape choice
// favoring squares.
func MixedSpawn() SpawnPolicy {
	p := ClassicSpawn()
	p.MinCount, p.MaxCount = 2, 2
	p.Weights = ShapeWeights{
		shapeplay.Square:   0.4,
		shapeplay.Triangle: 0.2,
		shapeplay.Polygon:  0.2,
		shapeplay.Star:     0.2,
	}
	return p
}

// SpawnPreset returns a named policy: "classic" or "mixed".
func SpawnPreset(name string) (SpawnPolicy, error) {
	switch name {
	case "classic", "":
		return ClassicSpawn(), nil
	case "mixed":
		return MixedSpawn(), nil
	default:
		return SpawnPolicy{}, fmt.Errorf("game: unknown spawn preset %q", name)
	}
}

// Validate checks the policy ranges.
func (p SpawnPolicy) Validate() error {
	var errs []error
	if p.MinCount < 0 || p.MaxCount < p.MinCount {
		errs = append(errs, fmt.Errorf("count range [%d, %d) invalid", p.MinCount, p.MaxCount))
	}
	if p.Jitter < 0 {
		errs = append(errs, fmt.Errorf("jitter %v is negative", p.Jitter))
	}
	if p.MinSize <= 0 || p.MaxSize < p.MinSize {
		errs = append(errs, fmt.Errorf("size range [%v, %v) invalid", p.MinSize, p.MaxSize))
	}
	if p.MaxRotation < 0 {
		errs = append(errs, fmt.Errorf("max rotation %v is negative", p.MaxRotation))
	}
	total := 0.0
	for s, w := range p.Weights {
		if !s.Valid() {
			errs = append(errs, fmt.Errorf("%w: %d", shapeplay.ErrUnknownShape, int(s)))
		}
		if w < 0 {
			errs = append(errs, fmt.Errorf("weight of %s is negative", s))
		}
		total += w
	}
	if total <= 0 {
		errs = append(errs, errors.New("shape weights sum to zero"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("game: spawn policy: %w", err)
	}
	return nil
}

// Count draws a batch size.
func (p SpawnPolicy) Count(r *rand.Rand) int {
	if p.MaxCount <= p.MinCount {
		return p.MinCount
	}
	return p.MinCount + r.IntN(p.MaxCount-p.MinCount)
}

// PickShape draws a shape according to Weights. Shapes are scanned in
// catalog order so a seeded generator gives reproducible picks.
func (p SpawnPolicy) PickShape(r *rand.Rand) shapeplay.Shape {
	shapes := shapeplay.Shapes()
	total := 0.0
	for _, s := range shapes {
		total += max(p.Weights[s], 0)
	}
	x := r.Float64() * total
	last := shapeplay.Square
	for _, s := range shapes {
		w := max(p.Weights[s], 0)
		if w == 0 {
			continue
		}
		last = s
		if x < w {
			return s
		}
		x -= w
	}
	return last
}

// item is the randomized state of one spawned renderable.
type item struct {
	shape    shapeplay.Shape
	pos      shapeplay.Point
	size     float64
	rotation float64
	color    shapeplay.RGBA
}

// sample draws one batch item around center.
func (p SpawnPolicy) sample(r *rand.Rand, center shapeplay.Point) item {
	return item{
		shape: p.PickShape(r),
		pos: shapeplay.Pt(
			center.X+uniform(r, -p.Jitter, p.Jitter),
			center.Y+uniform(r, -p.Jitter, p.Jitter),
		),
		size:     uniform(r, p.MinSize, p.MaxSize),
		rotation: uniform(r, 0, p.MaxRotation),
		color:    shapeplay.RandomRGB(r),
	}
}

// WeightedShapes lists the shapes with a positive weight in catalog order.
func (p SpawnPolicy) WeightedShapes() []shapeplay.Shape {
	return slices.DeleteFunc(shapeplay.Shapes(), func(s shapeplay.Shape) bool {
		return p.Weights[s] <= 0
	})
}

func uniform(r *rand.Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}
