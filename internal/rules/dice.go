package rules

import (
	"github.com/tabuleirodocaos/sheet-api/internal/entities/caos"
)

// StepLadder is the fixed die-size ladder for resource dice and durability,
// smallest to largest.
var StepLadder = []int32{2, 4, 6, 8, 10, 12, 20, 100}

// SmallestStep is the bottom of the ladder.
const SmallestStep int32 = 2

// StepIndex returns the ladder position of a die size, or -1 for sizes not
// on the ladder.
func StepIndex(size int32) int {
	for i, s := range StepLadder {
		if s == size {
			return i
		}
	}
	return -1
}

// StepUp returns the next larger die on the ladder. The second result is
// false at the top of the ladder or for sizes not on it.
func StepUp(size int32) (int32, bool) {
	idx := StepIndex(size)
	if idx < 0 || idx >= len(StepLadder)-1 {
		return size, false
	}
	return StepLadder[idx+1], true
}

// StepDown returns the next smaller die on the ladder. The second result is
// false at the bottom of the ladder or for sizes not on it.
func StepDown(size int32) (int32, bool) {
	idx := StepIndex(size)
	if idx <= 0 {
		return size, false
	}
	return StepLadder[idx-1], true
}

// DepleteResource steps a resource die down one size. At the bottom of the
// ladder the resource is exhausted: the die drops to zero and the second
// result reports exhaustion.
func DepleteResource(r caos.ResourceDie) (caos.ResourceDie, bool) {
	if r.Current <= 0 {
		return r, true
	}
	if next, ok := StepDown(r.Current); ok {
		r.Current = next
		return r, false
	}
	r.Current = 0
	return r, true
}

// RestoreResource steps a resource die back up, capped at the die's maximum
// step. An exhausted die restarts at the smallest step.
func RestoreResource(r caos.ResourceDie) caos.ResourceDie {
	if r.Current <= 0 {
		r.Current = SmallestStep
	} else if next, ok := StepUp(r.Current); ok {
		r.Current = next
	}
	if r.Max > 0 && r.Current > r.Max {
		r.Current = r.Max
	}
	return r
}

// DamageDurability applies one point of wear. Above the smallest die the
// step drops and the health flag is untouched. At the smallest die the flag
// degrades instead: intact becomes damaged, damaged becomes broken. The die
// size never leaves the ladder, and a broken item stays broken.
func DamageDurability(d caos.Durability) caos.Durability {
	if d.State == caos.DurabilityBroken {
		return d
	}

	if next, ok := StepDown(d.Current); ok {
		d.Current = next
		return d
	}

	if d.State == caos.DurabilityDamaged {
		d.State = caos.DurabilityBroken
	} else {
		d.State = caos.DurabilityDamaged
	}
	return d
}

// RepairDurability undoes one point of wear, reversing DamageDurability:
// broken recovers to damaged, damaged to intact, and an intact item steps
// its die back up toward its maximum.
func RepairDurability(d caos.Durability) caos.Durability {
	switch d.State {
	case caos.DurabilityBroken:
		d.State = caos.DurabilityDamaged
	case caos.DurabilityDamaged:
		d.State = caos.DurabilityIntact
	default:
		if next, ok := StepUp(d.Current); ok && (d.Max <= 0 || next <= d.Max) {
			d.Current = next
		}
	}
	return d
}
