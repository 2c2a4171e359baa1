package matching

import (
	"math"

	"connectus/internal/domain/skills"
)

// Result carries the compatibility score and the canonical skills behind it.
type Result struct {
	MatchScore    int
	MatchedSkills []string
	MissingSkills []string
}

// Score computes the 0..100 compatibility between a user's declared skills
// and a job's required skills. Both sides are canonicalized first; the score
// is exact-set coverage of the job's requirements. An empty requirement set
// or an empty user profile scores 0, never "unknown". Pure function: no I/O,
// no randomness, no hidden state.
func Score(userSkills, jobSkills []string) Result {
	userSet := skills.NormalizeSet(userSkills)
	jobSet := skills.NormalizeSet(jobSkills)

	if len(jobSet) == 0 || len(userSet) == 0 {
		return Result{MatchScore: 0, MatchedSkills: []string{}, MissingSkills: jobSet}
	}

	userHas := make(map[string]bool, len(userSet))
	for _, s := range userSet {
		userHas[s] = true
	}

	matched := make([]string, 0, len(jobSet))
	missing := make([]string, 0)
	for _, s := range jobSet {
		if userHas[s] {
			matched = append(matched, s)
		} else {
			missing = append(missing, s)
		}
	}

	score := int(math.Round(100 * float64(len(matched)) / float64(len(jobSet))))
	return Result{MatchScore: clamp(score), MatchedSkills: matched, MissingSkills: missing}
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
