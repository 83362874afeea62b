package testutils

import (
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/pokearena/tactics-arena/internal/errors"
)

// ScriptedRoller replays a fixed sequence of rolls, cycling when exhausted.
// Each value is folded into 1..size, so 1 always picks the first option.
type ScriptedRoller struct {
	mu     sync.Mutex
	values []int
	next   int
}

var _ dice.Roller = (*ScriptedRoller)(nil)

// NewScriptedRoller returns a roller replaying values. With no values it
// always rolls 1.
func NewScriptedRoller(values ...int) *ScriptedRoller {
	if len(values) == 0 {
		values = []int{1}
	}
	return &ScriptedRoller{values: values}
}

// Roll returns the next scripted value folded into 1..size
func (r *ScriptedRoller) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, errors.InvalidArgumentf("invalid die size %d", size)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	v := r.values[r.next%len(r.values)]
	r.next++
	return (max(v, 1)-1)%size + 1, nil
}

// RollN rolls count scripted values
func (r *ScriptedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Calls reports how many rolls were consumed
func (r *ScriptedRoller) Calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.next
}
