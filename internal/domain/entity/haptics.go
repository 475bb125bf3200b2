package entity

import "time"

// HapticPattern is a train of equal vibration pulses separated by a fixed gap.
type HapticPattern struct {
	Pulses   int
	Duration time.Duration
	Gap      time.Duration
}

// Sequence renders the pattern as alternating on/off milliseconds, the format
// vibration APIs accept. A critical pattern yields [500 200 500 200 500].
func (p HapticPattern) Sequence() []int {
	if p.Pulses <= 0 {
		return nil
	}

	seq := make([]int, 0, p.Pulses*2-1)
	for i := range p.Pulses {
		if i > 0 {
			seq = append(seq, int(p.Gap.Milliseconds()))
		}
		seq = append(seq, int(p.Duration.Milliseconds()))
	}

	return seq
}
