package gravity

import "github.com/jakecoffman/cp"

// Pointer remembers where the player is touching, in scene coordinates.
type Pointer struct {
	pos    cp.Vector
	active bool
}

func (p *Pointer) Down(x, y float64) {
	p.pos = cp.Vector{X: x, Y: y}
	p.active = true
}

func (p *Pointer) Move(x, y float64) {
	p.Down(x, y)
}

func (p *Pointer) Up() {
	p.active = false
}

func (p *Pointer) Cancel() {
	p.Up()
}

// Position returns the last known position while the pointer is down.
func (p *Pointer) Position() (cp.Vector, bool) {
	if p == nil || !p.active {
		return cp.Vector{}, false
	}
	return p.pos, true
}
