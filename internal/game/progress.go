package game

// Progress summarizes graded results so far.
type Progress struct {
	Total     int
	Correct   int
	Incorrect int
	Skipped   int
}

// Tally counts outcomes across results.
func Tally(results []ItemResult) Progress {
	var p Progress
	for _, r := range results {
		p.Total++
		switch r.Outcome {
		case OutcomeCorrect:
			p.Correct++
		case OutcomeSkipped:
			p.Skipped++
		default:
			p.Incorrect++
		}
	}
	return p
}

// Accuracy returns correct/total, or 0 when no items were graded.
// Skipped items count against accuracy like wrong answers.
func (p Progress) Accuracy() float64 {
	if p.Total == 0 {
		return 0
	}
	return float64(p.Correct) / float64(p.Total)
}

// AssistsUsed collects the distinct assists recorded across results, in
// first-use order.
func AssistsUsed(results []ItemResult) []AssistKind {
	seen := make(map[AssistKind]bool)
	var used []AssistKind
	for _, r := range results {
		for _, a := range r.Assists {
			if !seen[a] {
				seen[a] = true
				used = append(used, a)
			}
		}
	}
	return used
}
