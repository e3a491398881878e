// Package droplet models a single falling rain streak.
//
// A droplet is a plain value: a position, a streak length and a velocity.
// The package holds no state of its own; callers own the droplets and pass
// in the random source used for spawning and recycling, so a seeded source
// yields a reproducible sequence.
package droplet

// Source is the uniform random source used for spawning and recycling.
// Float64 must return a value in [0, 1). *math/rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// Range is a half-open interval [Min, Max).
type Range struct {
	Min float64
	Max float64
}

// Sample maps a uniform [0, 1) draw from src onto the range.
func (r Range) Sample(src Source) float64 {
	return r.Min + src.Float64()*(r.Max-r.Min)
}

// Contains reports whether v lies in [Min, Max).
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v < r.Max
}

// Params holds the ranges droplets are drawn from and the height they are
// recycled to once they leave the visible area.
type Params struct {
	Length   Range // scales how far the streak extends along the velocity
	VX       Range // horizontal speed per tick
	VY       Range // vertical speed per tick
	RespawnY float64
}

// DefaultParams are the ranges of the classic rain effect.
var DefaultParams = Params{
	Length:   Range{Min: 0, Max: 1},
	VX:       Range{Min: -2, Max: 2},
	VY:       Range{Min: 10, Max: 20},
	RespawnY: -20,
}

// Droplet is one falling streak in device pixels.
type Droplet struct {
	X, Y   float64
	Length float64
	VX, VY float64
}

// Spawn returns a droplet placed uniformly over a w x h area using DefaultParams.
func Spawn(src Source, w, h float64) Droplet {
	return DefaultParams.Spawn(src, w, h)
}

// Spawn returns a droplet placed uniformly over a w x h area.
// Values are drawn in the order x, y, length, vx, vy.
func (p Params) Spawn(src Source, w, h float64) Droplet {
	return Droplet{
		X:      src.Float64() * w,
		Y:      src.Float64() * h,
		Length: p.Length.Sample(src),
		VX:     p.VX.Sample(src),
		VY:     p.VY.Sample(src),
	}
}

// Advance moves d by one tick and recycles it when it has left the w x h area.
// It reports whether the droplet was recycled.
//
// The exit check is strict on each axis independently. A recycled droplet keeps
// its length and velocity; only its position is reset.
func (p Params) Advance(d *Droplet, src Source, w, h float64) bool {
	d.X += d.VX
	d.Y += d.VY

	if d.X > w || d.Y > h {
		d.X = src.Float64() * w
		d.Y = p.RespawnY
		return true
	}
	return false
}

// Advance moves d by one tick using DefaultParams.
func (d *Droplet) Advance(src Source, w, h float64) bool {
	return DefaultParams.Advance(d, src, w, h)
}

// Endpoint returns the far end of the drawn streak.
func (d Droplet) Endpoint() (x, y float64) {
	return d.X + d.Length*d.VX, d.Y + d.Length*d.VY
}
