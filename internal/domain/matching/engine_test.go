package matching

import "testing"

func TestScore_EmptySidesScoreZero(t *testing.T) {
	if got := Score(nil, []string{"react"}).MatchScore; got != 0 {
		t.Fatalf("empty user skills: got %d, want 0", got)
	}
	if got := Score([]string{"react"}, nil).MatchScore; got != 0 {
		t.Fatalf("empty job skills: got %d, want 0", got)
	}
	if got := Score([]string{"!!!"}, []string{"react"}).MatchScore; got != 0 {
		t.Fatalf("garbage-only user skills: got %d, want 0", got)
	}
}

func TestScore_FullCoverageThroughAliases(t *testing.T) {
	res := Score(
		[]string{"react", "nodejs", "css"},
		[]string{"React", "Node.js"},
	)
	if res.MatchScore != 100 {
		t.Fatalf("got %d, want 100", res.MatchScore)
	}
	if len(res.MissingSkills) != 0 {
		t.Fatalf("expected no missing skills, got %v", res.MissingSkills)
	}
}

func TestScore_PartialOverlap(t *testing.T) {
	res := Score(
		[]string{"react", "mongodb"},
		[]string{"react", "nodejs", "mongodb", "express"},
	)
	if res.MatchScore != 50 {
		t.Fatalf("got %d, want 50", res.MatchScore)
	}
	if len(res.MatchedSkills) != 2 || len(res.MissingSkills) != 2 {
		t.Fatalf("unexpected matched/missing split: %v / %v", res.MatchedSkills, res.MissingSkills)
	}
}

func TestScore_Rounding(t *testing.T) {
	// 2 of 3 matched: 66.67 rounds to 67.
	res := Score([]string{"react", "css"}, []string{"react", "css", "html"})
	if res.MatchScore != 67 {
		t.Fatalf("got %d, want 67", res.MatchScore)
	}
}

func TestScore_AlwaysWithinBounds(t *testing.T) {
	cases := [][2][]string{
		{{}, {}},
		{{"a", "b", "c"}, {"a"}},
		{{"a"}, {"a", "a", "A", "a "}},
		{{"React", "react.js", "reactjs"}, {"react"}},
		{{"x"}, {"y", "z"}},
	}
	for _, c := range cases {
		got := Score(c[0], c[1]).MatchScore
		if got < 0 || got > 100 {
			t.Fatalf("Score(%v, %v) = %d, out of [0,100]", c[0], c[1], got)
		}
	}
}

func TestScore_DuplicateJobSkillsCountOnce(t *testing.T) {
	// "React" and "react.js" are the same requirement after normalization.
	res := Score([]string{"react"}, []string{"React", "react.js"})
	if res.MatchScore != 100 {
		t.Fatalf("got %d, want 100", res.MatchScore)
	}
}

func TestScore_Deterministic(t *testing.T) {
	u := []string{"react", "nodejs", "mongodb"}
	j := []string{"react", "express", "mongodb", "css"}
	first := Score(u, j)
	for i := 0; i < 10; i++ {
		if got := Score(u, j); got.MatchScore != first.MatchScore {
			t.Fatalf("score not deterministic: %d vs %d", got.MatchScore, first.MatchScore)
		}
	}
}
