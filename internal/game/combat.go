package game

import (
	"math/rand"

	"git.lost.host/meutraa/shadowdance/internal/input"
)

const (
	WindowWidth  = 1024
	WindowHeight = 768

	// EnemySpawnInterval is the number of frames between enemy spawns.
	EnemySpawnInterval = 600

	arrowHitRadius    = 62
	enemyStrikeRadius = 104

	enemyMinX = 100
	enemyMaxX = 900
	enemyMinY = 100
	enemyMaxY = 500
)

// GuardianPosition is where the guardian stands and its arrows start.
var GuardianPosition = Vec{800, 600}

// Arrow flies in a fixed direction until it leaves the window or hits an
// enemy.
type Arrow struct {
	Pos Vec
	Dir Vec
	hit bool
}

func (a *Arrow) Update(pace *Pace) {
	a.Pos = a.Pos.Add(a.Dir.Mul(float64(pace.Speed(KindArrow))))
	if a.Pos.X <= 0 || a.Pos.X >= WindowWidth || a.Pos.Y <= 0 || a.Pos.Y >= WindowHeight {
		a.hit = true
	}
}

func (a *Arrow) IsHit() bool {
	return a.hit
}

// Enemy patrols horizontally and destroys the notes it touches.
type Enemy struct {
	Pos     Vec
	Dir     Vec
	removed bool
}

// NewEnemy places an enemy at a random point of the patrol area, heading
// left or right.
func NewEnemy(rng *rand.Rand) *Enemy {
	x := rng.Intn(enemyMaxX-enemyMinX+1) + enemyMinX
	y := rng.Intn(enemyMaxY-enemyMinY+1) + enemyMinY
	dir := Vec{1, 0}
	if rng.Intn(2) == 0 {
		dir = Vec{-1, 0}
	}
	return &Enemy{Pos: Vec{float64(x), float64(y)}, Dir: dir}
}

// Update moves the enemy, turning around at the edges of the patrol area.
func (e *Enemy) Update(pace *Pace) {
	e.Pos = e.Pos.Add(e.Dir.Mul(float64(pace.Speed(KindEnemy))))
	if e.Pos.X <= enemyMinX || e.Pos.X >= enemyMaxX {
		e.Dir = e.Dir.Mul(-1)
	}
}

func (e *Enemy) Remove() {
	e.removed = true
}

func (e *Enemy) IsRemoved() bool {
	return e.removed
}

// Strike removes every active note near the enemy from lanes.
func (e *Enemy) Strike(lanes []*Lane) int {
	struck := 0
	for _, l := range lanes {
		struck += l.Strike(e.Pos, enemyStrikeRadius)
	}
	return struck
}

// Guardian fires an arrow at the nearest enemy every time its key is
// pressed.
type Guardian struct {
	Pos    Vec
	Key    input.Key
	arrows []*Arrow
}

func NewGuardian() *Guardian {
	return &Guardian{Pos: GuardianPosition, Key: input.Fire}
}

func (g *Guardian) Arrows() []*Arrow {
	return g.arrows
}

func (g *Guardian) nearest(enemies []*Enemy) *Enemy {
	var nearest *Enemy
	best := 0.0
	for _, e := range enemies {
		d := g.Pos.Dist(e.Pos)
		if nil == nearest || d < best {
			nearest, best = e, d
		}
	}
	return nearest
}

// Update fires on a press, moves every arrow and resolves hits. Hit arrows
// are dropped at the end of the frame.
func (g *Guardian) Update(in Input, enemies []*Enemy, pace *Pace) {
	if in.Pressed(g.Key) {
		dir := Vec{0, -1}
		if target := g.nearest(enemies); nil != target {
			dir = target.Pos.Sub(g.Pos).Normalised()
		}
		g.arrows = append(g.arrows, &Arrow{Pos: g.Pos, Dir: dir})
	}

	for _, a := range g.arrows {
		a.Update(pace)
		for _, e := range enemies {
			if a.Pos.Dist(e.Pos) <= arrowHitRadius {
				e.Remove()
				a.hit = true
			}
		}
	}

	live := g.arrows[:0]
	for _, a := range g.arrows {
		if !a.hit {
			live = append(live, a)
		}
	}
	g.arrows = live
}

// Combat runs the guardian and the enemies on a level.
type Combat struct {
	Guardian      *Guardian
	SpawnInterval int

	enemies []*Enemy
	rng     *rand.Rand
}

func NewCombat(rng *rand.Rand) *Combat {
	return &Combat{
		Guardian:      NewGuardian(),
		SpawnInterval: EnemySpawnInterval,
		rng:           rng,
	}
}

func (c *Combat) Enemies() []*Enemy {
	return c.enemies
}

// Spawn adds an enemy to the level.
func (c *Combat) Spawn(e *Enemy) {
	c.enemies = append(c.enemies, e)
}

// Update runs one frame of combat after the lanes have been updated and
// returns how many notes enemies struck.
func (c *Combat) Update(in Input, frame int, lanes []*Lane, pace *Pace) int {
	c.Guardian.Update(in, c.enemies, pace)

	if frame > 0 && c.SpawnInterval > 0 && frame%c.SpawnInterval == 0 {
		c.Spawn(NewEnemy(c.rng))
	}

	struck := 0
	for _, e := range c.enemies {
		e.Update(pace)
		struck += e.Strike(lanes)
	}

	live := c.enemies[:0]
	for _, e := range c.enemies {
		if !e.IsRemoved() {
			live = append(live, e)
		}
	}
	c.enemies = live
	return struck
}
