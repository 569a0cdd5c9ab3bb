package matching

import "strings"

// Matcher decides whether a single required skill is satisfied by a
// user's declared skill set. Both sides are expected to be normalized
// before the call.
type Matcher interface {
	Matches(userSkill, requiredSkill string) bool
}

// SubstringMatcher matches when either skill name contains the other,
// so "react" satisfies "react.js" and "node.js" satisfies "node". This
// is the tolerance free-text onboarding input needs.
type SubstringMatcher struct{}

func (SubstringMatcher) Matches(userSkill, requiredSkill string) bool {
	return strings.Contains(userSkill, requiredSkill) || strings.Contains(requiredSkill, userSkill)
}

// ExactMatcher matches on string equality only. Useful where curated
// skill taxonomies make substring tolerance unnecessary.
type ExactMatcher struct{}

func (ExactMatcher) Matches(userSkill, requiredSkill string) bool {
	return userSkill == requiredSkill
}

// AnyMatch reports whether any user skill satisfies the required skill.
func AnyMatch(m Matcher, userSkills []string, requiredSkill string) bool {
	for _, us := range userSkills {
		if m.Matches(us, requiredSkill) {
			return true
		}
	}
	return false
}
