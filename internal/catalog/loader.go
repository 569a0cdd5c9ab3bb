package catalog

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/CareerPath-2025/recommendation-service/internal/matching"
	"github.com/CareerPath-2025/recommendation-service/internal/models"
)

// catalogFile is the YAML structure of a catalog override file. Every
// section is optional; a section that is present replaces the built-in
// table wholesale, absent sections keep their current data.
type catalogFile struct {
	Projects []ProjectTemplate `yaml:"projects"`

	Roles        map[string][]string `yaml:"roles"`
	FallbackRole string              `yaml:"fallback_role"`

	CoreSkills    []string                 `yaml:"core_skills"`
	LearningTimes map[string]int           `yaml:"learning_times"`
	DefaultWeeks  int                      `yaml:"default_weeks"`
	Resources     map[string][]resourceRef `yaml:"resources"`
}

type resourceRef struct {
	Title string `yaml:"title"`
	URL   string `yaml:"url"`
}

// LoadFromDir loads all YAML catalog files from a directory. Files that
// fail to parse are skipped with a warning so a bad override never takes
// the built-in defaults down with it.
func (c *Catalog) LoadFromDir(dir string) error {
	slog.Info("loading catalog from directory", "dir", dir)

	var files []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			continue
		}
		files = append(files, matches...)
	}

	loaded := 0
	for _, file := range files {
		if err := c.LoadFromFile(file); err != nil {
			slog.Warn("failed to load catalog file", "file", file, "error", err)
			continue
		}
		loaded++
	}

	slog.Info("catalog loaded", "count", loaded, "total_files", len(files))
	return nil
}

// LoadFromFile merges a single YAML catalog file into the catalog.
func (c *Catalog) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	var cf catalogFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	for i, t := range cf.Projects {
		if t.Title == "" {
			return fmt.Errorf("project %d: title is required", i)
		}
		if len(t.TechStack) == 0 {
			return fmt.Errorf("project %q: tech_stack is required", t.Title)
		}
	}
	for role, skills := range cf.Roles {
		if len(skills) == 0 {
			return fmt.Errorf("role %q: skill list is empty", role)
		}
	}
	if cf.FallbackRole != "" && cf.Roles != nil {
		if _, ok := cf.Roles[cf.FallbackRole]; !ok {
			return fmt.Errorf("fallback_role %q has no entry in roles", cf.FallbackRole)
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if cf.Projects != nil {
		c.templates = cf.Projects
	}
	if cf.Roles != nil {
		c.roleSkills = make(map[string][]string, len(cf.Roles))
		for role, skills := range cf.Roles {
			c.roleSkills[matching.Normalize(role)] = skills
		}
	}
	if cf.FallbackRole != "" {
		c.fallbackRole = cf.FallbackRole
	}
	if cf.CoreSkills != nil {
		c.coreSkills = make(map[string]bool, len(cf.CoreSkills))
		for _, s := range cf.CoreSkills {
			c.coreSkills[matching.Normalize(s)] = true
		}
	}
	if cf.LearningTimes != nil {
		c.learningWeeks = make(map[string]int, len(cf.LearningTimes))
		for skill, weeks := range cf.LearningTimes {
			c.learningWeeks[matching.Normalize(skill)] = weeks
		}
	}
	if cf.DefaultWeeks > 0 {
		c.defaultWeeks = cf.DefaultWeeks
	}
	if cf.Resources != nil {
		c.learningLinks = make(map[string][]models.LearningResource, len(cf.Resources))
		for skill, refs := range cf.Resources {
			res := make([]models.LearningResource, len(refs))
			for i, r := range refs {
				res[i] = models.LearningResource{Title: r.Title, URL: r.URL}
			}
			c.learningLinks[matching.Normalize(skill)] = res
		}
	}

	slog.Info("catalog file loaded", "file", path,
		"projects", len(cf.Projects), "roles", len(cf.Roles))
	return nil
}
