package ladder

import (
	"math/rand/v2"
	"testing"

	"github.com/quizarcade/quizarcade/internal/game"
)

func TestEliminateTwo_NeverRemovesCorrect(t *testing.T) {
	for seed := uint64(0); seed < 50; seed++ {
		rng := rand.New(rand.NewPCG(seed, seed))
		for correct := range 4 {
			removed := eliminateTwo(rng, correct)
			if len(removed) != 2 {
				t.Fatalf("removed %d options, want 2", len(removed))
			}
			if removed[0] == removed[1] {
				t.Fatal("removed the same option twice")
			}
			for _, idx := range removed {
				if idx == correct {
					t.Fatalf("seed %d: removed the correct option %d", seed, correct)
				}
			}
		}
	}
}

func TestAudiencePoll_PluralityAndSum(t *testing.T) {
	for seed := uint64(0); seed < 100; seed++ {
		rng := rand.New(rand.NewPCG(seed, 0))
		correct := int(seed % 4)
		poll := audiencePoll(rng, correct)

		sum := 0
		for _, p := range poll {
			sum += p
			if p < 0 {
				t.Fatalf("seed %d: negative share %d", seed, p)
			}
		}
		if sum != 100 {
			t.Fatalf("seed %d: poll sums to %d, want 100", seed, sum)
		}
		if poll[correct] < pollCorrectMin || poll[correct] > pollCorrectMax {
			t.Fatalf("seed %d: correct share %d outside [%d,%d]", seed, poll[correct], pollCorrectMin, pollCorrectMax)
		}
		for i, p := range poll {
			if i != correct && p >= poll[correct] {
				t.Fatalf("seed %d: option %d share %d not below correct share %d", seed, i, p, poll[correct])
			}
		}
	}
}

func TestPhoneHint_Distribution(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 42))
	const trials = 2000
	correctHits := 0
	for range trials {
		s := phoneHint(rng, 2)
		if s < 0 || s >= 4 {
			t.Fatalf("suggestion %d out of range", s)
		}
		if s == 2 {
			correctHits++
		}
	}
	// ~80% with generous slack for a seeded run.
	ratio := float64(correctHits) / trials
	if ratio < 0.74 || ratio > 0.86 {
		t.Errorf("correct suggestion ratio = %.3f, want about 0.80", ratio)
	}
}

func TestUseAssist_OncePerSession(t *testing.T) {
	e := testEngine(t)

	if !e.AssistAvailable(game.AssistEliminateTwo) {
		t.Fatal("expected lifeline available at start")
	}
	res, err := e.UseAssist(game.AssistEliminateTwo)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Eliminated) != 2 {
		t.Fatalf("eliminated %d options, want 2", len(res.Eliminated))
	}
	if _, err := e.UseAssist(game.AssistEliminateTwo); err == nil {
		t.Error("expected second use to fail")
	}

	// Still unusable on a later rung.
	answerCorrectly(t, e)
	e.Advance()
	if e.AssistAvailable(game.AssistEliminateTwo) {
		t.Error("lifeline must stay consumed across rungs")
	}
	if _, err := e.UseAssist(game.AssistPollAudience); err != nil {
		t.Errorf("other lifelines remain available: %v", err)
	}
}

func TestUseAssist_RejectedAfterLock(t *testing.T) {
	e := testEngine(t)
	e.Select(e.Current().Correct)
	e.Lock()
	if _, err := e.UseAssist(game.AssistPhoneHint); err == nil {
		t.Error("expected lifeline after lock to fail")
	}
}

func TestEliminateTwo_BlocksSelection(t *testing.T) {
	e := testEngine(t)
	res, err := e.UseAssist(game.AssistEliminateTwo)
	if err != nil {
		t.Fatal(err)
	}
	if err := e.Select(res.Eliminated[0]); err == nil {
		t.Error("expected selecting an eliminated option to fail")
	}
	if err := e.Select(e.Current().Correct); err != nil {
		t.Errorf("correct option must stay selectable: %v", err)
	}
}

func TestEliminateTwo_ClearsEliminatedSelection(t *testing.T) {
	e := testEngine(t)
	q := e.Current()

	// Select a wrong option, then eliminate. If it was removed, the
	// pending choice must be cleared.
	wrong := (q.Correct + 1) % 4
	e.Select(wrong)
	res, err := e.UseAssist(game.AssistEliminateTwo)
	if err != nil {
		t.Fatal(err)
	}
	removed := false
	for _, idx := range res.Eliminated {
		if idx == wrong {
			removed = true
		}
	}
	if removed {
		if e.Selected() != -1 || e.Phase() != PhaseAsking {
			t.Errorf("Selected = %d, Phase = %d; want cleared selection", e.Selected(), e.Phase())
		}
	} else if e.Selected() != wrong {
		t.Errorf("Selected = %d, want %d untouched", e.Selected(), wrong)
	}
}

func TestUseAssist_AllowedWithPendingSelection(t *testing.T) {
	e := testEngine(t)
	if err := e.Select(0); err != nil {
		t.Fatal(err)
	}
	if _, err := e.UseAssist(game.AssistPollAudience); err != nil {
		t.Fatalf("pending selection must not block a lifeline: %v", err)
	}
}

func TestAssistsUsed_SurvivesWalkAway(t *testing.T) {
	e := testEngine(t)
	answerCorrectly(t, e)
	if err := e.Advance(); err != nil {
		t.Fatal(err)
	}

	// A lifeline spent on the open question is consumed even though the
	// question never resolves.
	if _, err := e.UseAssist(game.AssistPollAudience); err != nil {
		t.Fatal(err)
	}
	if _, err := e.WalkAway(); err != nil {
		t.Fatal(err)
	}

	used := e.AssistsUsed()
	if len(used) != 1 || used[0] != game.AssistPollAudience {
		t.Errorf("AssistsUsed = %v, want [poll-audience]", used)
	}
	if results := e.Results(); len(results) != 1 || len(results[0].Assists) != 0 {
		t.Errorf("resolved rung 1 must carry no assists, got %+v", results)
	}
}

func TestAssists_RecordedOnItemResult(t *testing.T) {
	e := testEngine(t)
	e.UseAssist(game.AssistPhoneHint)
	answerCorrectly(t, e)

	results := e.Results()
	if len(results) != 1 {
		t.Fatalf("len(Results) = %d, want 1", len(results))
	}
	if len(results[0].Assists) != 1 || results[0].Assists[0] != game.AssistPhoneHint {
		t.Errorf("Assists = %v, want [phone-hint]", results[0].Assists)
	}
}
