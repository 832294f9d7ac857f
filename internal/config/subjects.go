package config

import (
	"fmt"
	"time"
)

// DefaultSubjects is the built-in catalogue used when the config file lists none.
func DefaultSubjects() []SubjectConfig {
	return []SubjectConfig{
		{ID: "1", Slug: "react", Name: "React", Description: "JavaScript library for building user interfaces", PostCount: 5200, CommunitySize: 428000, Source: "reddit", Community: "reactjs"},
		{ID: "2", Slug: "nextjs", Name: "Next.js", Description: "React framework for production with hybrid rendering", PostCount: 2100, CommunitySize: 87000, Source: "reddit", Community: "nextjs"},
		{ID: "3", Slug: "typescript", Name: "TypeScript", Description: "Typed superset of JavaScript for scalable applications", PostCount: 3800, CommunitySize: 178000, Source: "reddit", Community: "typescript"},
		{ID: "4", Slug: "python", Name: "Python", Description: "Popular programming language for web development, data science, and automation", PostCount: 8500, CommunitySize: 1500000, Source: "reddit", Community: "python"},
		{ID: "5", Slug: "fastapi", Name: "FastAPI", Description: "Modern Python web framework for building APIs", PostCount: 1200, CommunitySize: 15000, Source: "reddit", Community: "FastAPI"},
		{ID: "6", Slug: "django", Name: "Django", Description: "High-level Python web framework for rapid development", PostCount: 2800, CommunitySize: 156000, Source: "reddit", Community: "django"},
	}
}

func parseDuration(key, s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, s, err)
	}
	return d, nil
}
