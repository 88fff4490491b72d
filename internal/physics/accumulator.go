package physics

import "rigid-kernel/internal/vmath"

// accumulation is the result of one pruning pass over a body's force list.
type accumulation struct {
	force  vmath.Vector3
	torque vmath.Vector3
}

// pruneForces drops expired forces. It filters into a fresh slice and then replaces the list,
// so no element is skipped the way index-based removal while iterating would.
func (b *Body) pruneForces() {
	live := make([]Force, 0, len(b.ActiveForces))
	for _, f := range b.ActiveForces {
		if f.Expired() {
			continue
		}
		live = append(live, f)
	}
	b.ActiveForces = live
}

// NetForce prunes expired forces from the active list and returns the sum of the rest.
func (b *Body) NetForce() vmath.Vector3 {
	b.pruneForces()
	return b.sumForces()
}

// NetTorque returns the summed torque of the current force list. It does not prune; call
// NetForce first (as UpdateForces and Simulate do) so both see the same list.
func (b *Body) NetTorque() vmath.Vector3 {
	var out vmath.Vector3
	for _, f := range b.ActiveForces {
		out = out.Add(f.Torque())
	}
	return out
}

func (b *Body) sumForces() vmath.Vector3 {
	var out vmath.Vector3
	for _, f := range b.ActiveForces {
		out = out.Add(f.Vector)
	}
	return out
}

// liveNetForce sums non-expired forces without touching the list. Used by read-only snapshots.
func (b *Body) liveNetForce() vmath.Vector3 {
	var out vmath.Vector3
	for _, f := range b.ActiveForces {
		if !f.Expired() {
			out = out.Add(f.Vector)
		}
	}
	return out
}

func (b *Body) accumulate() accumulation {
	b.pruneForces()
	return accumulation{force: b.sumForces(), torque: b.NetTorque()}
}

func (b *Body) decrementForces(timeStep float64) {
	for i := range b.ActiveForces {
		b.ActiveForces[i].TimeRemaining -= timeStep
	}
}

// UpdateForces prunes, recomputes Acceleration as net force over mass, then counts every
// remaining force's lifetime down by timeStep. Expired forces are removed on the next query.
func (b *Body) UpdateForces(timeStep float64) error {
	if err := b.validateMass(); err != nil {
		return err
	}
	acc := b.accumulate()
	b.Acceleration = acc.force.Div(b.Mass)
	b.decrementForces(timeStep)
	return nil
}
