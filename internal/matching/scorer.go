package matching

import "math"

// Result is the outcome of scoring one required-skill list against one
// user skill set.
type Result struct {
	Score          int      // 0..100, rounded percentage of satisfied requirements
	MatchingSkills []string // satisfied required skills, original casing, in requirement order
}

// Scorer computes match percentages with a pluggable Matcher.
type Scorer struct {
	matcher Matcher
}

// NewScorer returns a Scorer backed by the given matcher. A nil matcher
// falls back to SubstringMatcher.
func NewScorer(m Matcher) *Scorer {
	if m == nil {
		m = SubstringMatcher{}
	}
	return &Scorer{matcher: m}
}

// Score evaluates userSkills against requiredSkills. Comparison is done
// on normalized forms, but MatchingSkills carries the caller's original
// entries so results stay element-wise identical to the requirement
// list. An empty requirement list scores 100: nothing was required, so
// nothing is missing.
func (s *Scorer) Score(userSkills, requiredSkills []string) Result {
	user := NormalizeAll(userSkills)

	matching := make([]string, 0, len(requiredSkills))
	total := 0
	for _, req := range requiredSkills {
		n := Normalize(req)
		if n == "" {
			continue
		}
		total++
		if AnyMatch(s.matcher, user, n) {
			matching = append(matching, req)
		}
	}

	if total == 0 {
		return Result{Score: 100, MatchingSkills: matching}
	}

	score := int(math.Round(float64(len(matching)) / float64(total) * 100))
	return Result{Score: score, MatchingSkills: matching}
}

// Missing returns the required skills the user does not satisfy, in
// requirement order and original casing. Every returned entry is an
// element of requiredSkills.
func (s *Scorer) Missing(userSkills, requiredSkills []string) []string {
	user := NormalizeAll(userSkills)

	missing := make([]string, 0, len(requiredSkills))
	for _, req := range requiredSkills {
		n := Normalize(req)
		if n == "" {
			continue
		}
		if !AnyMatch(s.matcher, user, n) {
			missing = append(missing, req)
		}
	}
	return missing
}
