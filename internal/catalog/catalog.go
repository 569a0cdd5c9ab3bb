package catalog

import (
	"sync"

	"github.com/CareerPath-2025/recommendation-service/internal/matching"
	"github.com/CareerPath-2025/recommendation-service/internal/models"
)

// ProjectTemplate is one entry of the static project catalog. Templates
// are not user-owned; the recommender filters and scores them per profile.
type ProjectTemplate struct {
	Title             string   `yaml:"title" json:"title"`
	Description       string   `yaml:"description" json:"description"`
	Difficulty        string   `yaml:"difficulty" json:"difficulty"`
	EstimatedDuration string   `yaml:"estimated_duration" json:"estimated_duration"`
	TechStack         []string `yaml:"tech_stack" json:"tech_stack"`
	LearningOutcomes  []string `yaml:"learning_outcomes" json:"learning_outcomes"`
	ImpactScore       int      `yaml:"impact_score" json:"impact_score"`
	SuitableFor       []string `yaml:"suitable_for" json:"suitable_for"`
}

// SuitableForBranch reports branch eligibility. Membership is exact and
// case-sensitive: branch names are curated values, not free text.
func (t *ProjectTemplate) SuitableForBranch(branch string) bool {
	for _, b := range t.SuitableFor {
		if b == branch {
			return true
		}
	}
	return false
}

// Catalog holds the static lookup tables the engine consults: project
// templates, role skill profiles and the learning-path guides. It is
// seeded with built-in defaults and can be overridden from YAML files.
type Catalog struct {
	mu sync.RWMutex

	templates    []ProjectTemplate
	roleSkills   map[string][]string // keyed by normalized role name
	fallbackRole string

	coreSkills     map[string]bool // High-priority allow-list, keyed by normalized name
	learningWeeks  map[string]int  // keyed by normalized name
	defaultWeeks   int
	learningLinks  map[string][]models.LearningResource // keyed by normalized name
}

// New returns a catalog seeded with the built-in defaults.
func New() *Catalog {
	c := &Catalog{
		templates:     defaultProjectTemplates(),
		roleSkills:    map[string][]string{},
		fallbackRole:  defaultFallbackRole,
		coreSkills:    map[string]bool{},
		learningWeeks: map[string]int{},
		defaultWeeks:  defaultLearningWeeks,
		learningLinks: map[string][]models.LearningResource{},
	}
	for role, skills := range defaultRoleSkills() {
		c.roleSkills[matching.Normalize(role)] = skills
	}
	for _, s := range defaultCoreSkills() {
		c.coreSkills[matching.Normalize(s)] = true
	}
	for skill, weeks := range defaultLearningTimes() {
		c.learningWeeks[matching.Normalize(skill)] = weeks
	}
	for skill, res := range defaultLearningResources() {
		c.learningLinks[matching.Normalize(skill)] = res
	}
	return c
}

// Templates returns a copy of the project template list.
func (c *Catalog) Templates() []ProjectTemplate {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]ProjectTemplate, len(c.templates))
	copy(out, c.templates)
	return out
}

// RequiredSkills resolves the required-skill sequence for a target role.
// Unrecognized roles fall back to the baseline profile, with recognized
// set to false so callers can log the fallback.
func (c *Catalog) RequiredSkills(role string) (skills []string, recognized bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if s, ok := c.roleSkills[matching.Normalize(role)]; ok {
		return append([]string(nil), s...), true
	}
	fallback := c.roleSkills[matching.Normalize(c.fallbackRole)]
	return append([]string(nil), fallback...), false
}

// Roles returns the normalized role names the catalog knows about.
func (c *Catalog) Roles() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]string, 0, len(c.roleSkills))
	for role := range c.roleSkills {
		out = append(out, role)
	}
	return out
}

// Priority classifies a missing skill. Skills on the core allow-list are
// High, everything else Medium. Low is reserved for future use.
func (c *Catalog) Priority(skill string) models.LearningPriority {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.coreSkills[matching.Normalize(skill)] {
		return models.PriorityHigh
	}
	return models.PriorityMedium
}

// EstimatedWeeks returns the learning-time estimate for a skill, or the
// catalog default when the skill has no entry.
func (c *Catalog) EstimatedWeeks(skill string) int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if w, ok := c.learningWeeks[matching.Normalize(skill)]; ok {
		return w
	}
	return c.defaultWeeks
}

// Resources returns curated study material for a skill. Skills without
// an entry get a single generic placeholder.
func (c *Catalog) Resources(skill string) []models.LearningResource {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if res, ok := c.learningLinks[matching.Normalize(skill)]; ok {
		return append([]models.LearningResource(nil), res...)
	}
	return []models.LearningResource{{Title: "Learn " + skill, URL: "#"}}
}
