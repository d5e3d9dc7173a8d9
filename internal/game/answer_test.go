package game

import "testing"

func TestMatchContainment(t *testing.T) {
	tests := []struct {
		name      string
		response  string
		reference string
		want      bool
	}{
		{"exact", "Neural Network", "Neural Network", true},
		{"case and whitespace", "  neural network ", "Neural Network", true},
		{"response contains reference", "a neural network model", "neural network", true},
		{"reference contains response", "network", "Neural Network", true},
		{"no overlap", "decision tree", "Neural Network", false},
		{"empty response", "", "Neural Network", false},
		{"empty reference", "anything", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchContainment(tt.response, tt.reference); got != tt.want {
				t.Errorf("MatchContainment(%q, %q) = %v, want %v", tt.response, tt.reference, got, tt.want)
			}
		})
	}
}

func TestMatchKeyword(t *testing.T) {
	tests := []struct {
		name      string
		response  string
		reference string
		want      bool
	}{
		{"containment still matches", "paris", "Paris", true},
		{"shared long keyword", "the mitochondria organelle", "powerhouse mitochondria", true},
		{"punctuation ignored", "whats a photosynthesis?", "What is photosynthesis", true},
		{"short shared word only", "the cat", "a cat sat", false},
		{"nothing shared", "gravity", "photosynthesis", false},
		{"empty response", "", "photosynthesis", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchKeyword(tt.response, tt.reference); got != tt.want {
				t.Errorf("MatchKeyword(%q, %q) = %v, want %v", tt.response, tt.reference, got, tt.want)
			}
		})
	}
}

func TestTallyAndAccuracy(t *testing.T) {
	results := []ItemResult{
		{ItemID: "a", Outcome: OutcomeCorrect},
		{ItemID: "b", Outcome: OutcomeIncorrect},
		{ItemID: "c", Outcome: OutcomeSkipped},
		{ItemID: "d", Outcome: OutcomeCorrect},
	}

	p := Tally(results)
	if p.Total != 4 || p.Correct != 2 || p.Incorrect != 1 || p.Skipped != 1 {
		t.Errorf("Tally = %+v, want {4 2 1 1}", p)
	}
	if got := p.Accuracy(); got != 0.5 {
		t.Errorf("Accuracy = %v, want 0.5", got)
	}

	if got := (Progress{}).Accuracy(); got != 0 {
		t.Errorf("empty Accuracy = %v, want 0", got)
	}
}

func TestAssistsUsed_Dedup(t *testing.T) {
	results := []ItemResult{
		{ItemID: "a", Assists: []AssistKind{AssistEliminateTwo}},
		{ItemID: "b", Assists: []AssistKind{AssistEliminateTwo, AssistPhoneHint}},
	}

	used := AssistsUsed(results)
	if len(used) != 2 {
		t.Fatalf("AssistsUsed returned %d entries, want 2", len(used))
	}
	if used[0] != AssistEliminateTwo || used[1] != AssistPhoneHint {
		t.Errorf("AssistsUsed = %v, want [eliminate-two phone-hint]", used)
	}
}
