package skills

import "testing"

func TestNormalize_AliasesConverge(t *testing.T) {
	inputs := []string{"React", "react", "React.js", "reactjs", "REACT JS", "react-js"}
	for _, in := range inputs {
		if got := Normalize(in); got != "react" {
			t.Fatalf("Normalize(%q) = %q, want %q", in, got, "react")
		}
	}
}

func TestNormalize_NodeVariants(t *testing.T) {
	inputs := []string{"node", "Node.js", "nodejs", "node js", "NODE-JS"}
	for _, in := range inputs {
		if got := Normalize(in); got != "nodejs" {
			t.Fatalf("Normalize(%q) = %q, want %q", in, got, "nodejs")
		}
	}
}

func TestNormalize_EmptyAndGarbage(t *testing.T) {
	for _, in := range []string{"", "   ", "!!!", "@#$%", "\t\n"} {
		if got := Normalize(in); got != "" {
			t.Fatalf("Normalize(%q) = %q, want empty", in, got)
		}
	}
}

func TestNormalize_UnknownFallsBackToCleanedForm(t *testing.T) {
	cases := map[string]string{
		"Kubernetes":  "kubernetes",
		"  Rust!  ":   "rust",
		"spring boot": "spring boot",
	}
	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Fatalf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}

	// Two unknown-but-identical skills still match each other.
	if Normalize("Kubernetes") != Normalize("kubernetes!") {
		t.Fatal("unknown skills with the same cleaned form must converge")
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"React", "Node.js", "javascript", "GoLang", "ui/ux", "Tailwind CSS",
		"", "garbage!!!", "some unknown skill", "web 3", "Next.js", "rest api",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Fatalf("Normalize not idempotent for %q: first=%q second=%q", in, once, twice)
		}
	}
}

func TestNormalizeSet_DedupAndDropEmpties(t *testing.T) {
	got := NormalizeSet([]string{"React", "react.js", "", "!!!", "Node", "nodejs", "CSS"})
	want := map[string]bool{"react": true, "nodejs": true, "css": true}

	if len(got) != len(want) {
		t.Fatalf("NormalizeSet returned %v, want the set %v", got, want)
	}
	for _, s := range got {
		if !want[s] {
			t.Fatalf("unexpected element %q in %v", s, got)
		}
	}
}
