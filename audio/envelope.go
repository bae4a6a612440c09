package audio

import "time"

// decayEnv is an exponential decay envelope. Each sample multiplies the
// level by a constant factor, so the curve approaches envFloor but never
// reaches zero.
type decayEnv struct {
	val    float64
	factor float64
}

func (e *decayEnv) trigger(d time.Duration) {
	e.val = 1.0
	e.factor = decayFactor(d)
}

// value returns the current level and advances the envelope by one sample.
func (e *decayEnv) value() float64 {
	v := e.val
	e.val *= e.factor
	return v
}

func (e *decayEnv) active() bool {
	return e.val >= envFloor
}
