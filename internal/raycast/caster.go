package raycast

import (
	"fmt"
	"math"

	"raycaster/internal/grid"
	"raycaster/internal/mathutil"
)

// Strategy selects how a ray finds its first wall.
type Strategy string

const (
	// StrategyMarch steps a point outward in fixed increments. Thin walls can
	// be skipped when Step is large; smaller steps cost proportionally more.
	StrategyMarch Strategy = "march"
	// StrategyGrid walks cell boundaries (DDA) and hits walls exactly.
	StrategyGrid Strategy = "grid"
)

// ParseStrategy maps a config or flag value to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case "", StrategyMarch:
		return StrategyMarch, nil
	case StrategyGrid:
		return StrategyGrid, nil
	}
	return "", fmt.Errorf("raycast: unknown strategy %q", s)
}

// Defaults matching the reference renderer.
const (
	DefaultStep        = 0.01
	DefaultMaxDistance = 20.0
)

// Config holds caster tuning. A march Step of one cell or more can jump
// over a one-cell border wall.
type Config struct {
	MaxDistance float64
	Step        float64
	Strategy    Strategy
}

// Caster casts rays through one map. It is read-only after construction
// and safe for concurrent use.
type Caster struct {
	m   *grid.Map
	cfg Config
}

// NewCaster returns a caster over m. Zero config fields take defaults.
func NewCaster(m *grid.Map, cfg Config) *Caster {
	if cfg.MaxDistance <= 0 {
		cfg.MaxDistance = DefaultMaxDistance
	}
	if cfg.Step <= 0 {
		cfg.Step = DefaultStep
	}
	if cfg.Strategy == "" {
		cfg.Strategy = StrategyMarch
	}
	return &Caster{m: m, cfg: cfg}
}

// Map returns the grid the caster walks.
func (c *Caster) Map() *grid.Map { return c.m }

// Config returns the effective configuration.
func (c *Caster) Config() Config { return c.cfg }

// Cast sends a ray from (x, y) at angle and returns the first wall hit, or
// false when nothing is hit within MaxDistance. visit, if non-nil, receives
// every sampled point along the ray up to and including the hit point.
//
// The ray must stay inside the map; a map not enclosed by walls can make
// Classify panic.
func (c *Caster) Cast(x, y, angle float64, visit func(x, y float64)) (Hit, bool) {
	if c.cfg.Strategy == StrategyGrid {
		return c.traverse(x, y, angle, visit)
	}
	return c.march(x, y, angle, visit)
}

func (c *Caster) classify(x, y float64) grid.Cell {
	return c.m.Classify(int(math.Floor(x)), int(math.Floor(y)))
}

func (c *Caster) march(x, y, angle float64, visit func(x, y float64)) (Hit, bool) {
	origin := mathutil.Vec2{x, y}
	dir := mathutil.FromAngle(angle)
	for i := 0; ; i++ {
		t := float64(i) * c.cfg.Step
		if t >= c.cfg.MaxDistance {
			return Hit{}, false
		}
		p := origin.Add(dir.Scale(t))
		if visit != nil {
			visit(p[0], p[1])
		}
		if cell := c.classify(p[0], p[1]); cell.IsWall() {
			return newHit(t, p[0], p[1], cell.TextureID()), true
		}
	}
}

func (c *Caster) traverse(x, y, angle float64, visit func(x, y float64)) (Hit, bool) {
	dir := mathutil.FromAngle(angle)
	cx, cy := int(math.Floor(x)), int(math.Floor(y))

	if cell := c.m.Classify(cx, cy); cell.IsWall() {
		if visit != nil {
			visit(x, y)
		}
		return newHit(0, x, y, cell.TextureID()), true
	}

	stepX, sideX, deltaX := axisSetup(x, dir[0])
	stepY, sideY, deltaY := axisSetup(y, dir[1])

	for {
		var t float64
		if sideX < sideY {
			t = sideX
			sideX += deltaX
			cx += stepX
		} else {
			t = sideY
			sideY += deltaY
			cy += stepY
		}
		if t >= c.cfg.MaxDistance {
			c.visitPath(x, y, dir, c.cfg.MaxDistance, visit)
			return Hit{}, false
		}
		if cell := c.m.Classify(cx, cy); cell.IsWall() {
			px := x + t*dir[0]
			py := y + t*dir[1]
			c.visitPath(x, y, dir, t, visit)
			if visit != nil {
				visit(px, py)
			}
			return newHit(t, px, py, cell.TextureID()), true
		}
	}
}

// visitPath samples the path at the march step, stopping short of limit.
func (c *Caster) visitPath(x, y float64, dir mathutil.Vec2, limit float64, visit func(x, y float64)) {
	if visit == nil {
		return
	}
	for i := 0; ; i++ {
		t := float64(i) * c.cfg.Step
		if t >= limit {
			return
		}
		visit(x+t*dir[0], y+t*dir[1])
	}
}

// axisSetup returns the cell step direction, the distance to the first grid
// line and the distance between grid lines along one axis.
func axisSetup(pos, d float64) (step int, side, delta float64) {
	if d == 0 {
		return 0, math.Inf(1), math.Inf(1)
	}
	delta = math.Abs(1 / d)
	cell := math.Floor(pos)
	if d < 0 {
		return -1, (pos - cell) * delta, delta
	}
	return 1, (cell + 1 - pos) * delta, delta
}
