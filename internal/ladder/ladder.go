package ladder

import "fmt"

// Ladder is the ordered list of stake values for a progressive quiz.
// Rungs are strictly increasing; a subset of rungs are guaranteed
// checkpoints whose value is kept even after a later loss.
type Ladder struct {
	rungs       []int
	checkpoints map[int]bool // rung index -> guaranteed
}

// NewLadder validates and builds a ladder. checkpoints are 0-based rung
// indices.
func NewLadder(rungs []int, checkpoints []int) (Ladder, error) {
	if len(rungs) == 0 {
		return Ladder{}, fmt.Errorf("ladder: no rungs")
	}
	for i := 1; i < len(rungs); i++ {
		if rungs[i] <= rungs[i-1] {
			return Ladder{}, fmt.Errorf("ladder: rung %d (%d) not greater than rung %d (%d)", i, rungs[i], i-1, rungs[i-1])
		}
	}
	cps := make(map[int]bool, len(checkpoints))
	for _, c := range checkpoints {
		if c < 0 || c >= len(rungs) {
			return Ladder{}, fmt.Errorf("ladder: checkpoint index %d out of range", c)
		}
		cps[c] = true
	}
	return Ladder{rungs: rungs, checkpoints: cps}, nil
}

// Default returns the classic 15-rung ladder with checkpoints at the 5th
// and 10th rungs.
func Default() Ladder {
	l, err := NewLadder(
		[]int{100, 200, 300, 500, 1000, 2000, 4000, 8000, 16000, 32000,
			64000, 125000, 250000, 500000, 1000000},
		[]int{4, 9},
	)
	if err != nil {
		panic(err) // static values, cannot fail
	}
	return l
}

// Len returns the number of rungs.
func (l Ladder) Len() int { return len(l.rungs) }

// Value returns the stake at rung idx.
func (l Ladder) Value(idx int) int { return l.rungs[idx] }

// IsCheckpoint reports whether rung idx is a guaranteed checkpoint.
func (l Ladder) IsCheckpoint(idx int) bool { return l.checkpoints[idx] }

// completedValue is the value of the last completed rung, or 0 when none
// were completed. completed is the count of rungs answered correctly.
func (l Ladder) completedValue(completed int) int {
	if completed <= 0 {
		return 0
	}
	return l.rungs[completed-1]
}

// SafeValue returns the amount guaranteed with completed rungs answered
// correctly: what a wrong answer on the next rung would still pay out.
func (l Ladder) SafeValue(completed int) int { return l.lossValue(completed) }

// lossValue is the amount kept after a wrong answer with `completed`
// rungs answered correctly: the highest checkpoint at or below the last
// completed rung, or, when no checkpoint was passed, the last completed
// rung's own value (0 if none).
func (l Ladder) lossValue(completed int) int {
	best := -1
	for idx := range l.checkpoints {
		if idx <= completed-1 && idx > best {
			best = idx
		}
	}
	if best >= 0 {
		return l.rungs[best]
	}
	return l.completedValue(completed)
}
