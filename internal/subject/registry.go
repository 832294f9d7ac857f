package subject

import (
	"fmt"
	"strings"

	"trendfeed/internal/config"
)

// Known source types.
const (
	SourceReddit = "reddit"
	SourceMock   = "mock"
)

// Subject is a catalogue entry. The slug is the only key used across components.
type Subject struct {
	ID            string `json:"id"`
	Slug          string `json:"slug"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	PostCount     int    `json:"post_count"`
	CommunitySize int    `json:"community_size"`
	Source        string `json:"source"`
	Community     string `json:"community"`
}

// Level is a community-size bucket.
type Level string

const (
	LevelMassive Level = "Massive"
	LevelLarge   Level = "Large"
	LevelGrowing Level = "Growing"
	LevelNiche   Level = "Niche"
)

// Level buckets the subject by community size.
func (s Subject) Level() Level {
	return CommunityLevel(s.CommunitySize)
}

// CommunityLevel maps a member count to its bucket.
func CommunityLevel(size int) Level {
	switch {
	case size >= 1_000_000:
		return LevelMassive
	case size >= 200_000:
		return LevelLarge
	case size >= 50_000:
		return LevelGrowing
	default:
		return LevelNiche
	}
}

// Registry is a read-only, ordered set of subjects. Build it once at startup
// and pass it to whoever needs lookups.
type Registry struct {
	subjects []Subject
	bySlug   map[string]int
}

// New validates the subjects and builds a registry that keeps their order.
func New(subjects []Subject) (*Registry, error) {
	r := &Registry{
		subjects: make([]Subject, 0, len(subjects)),
		bySlug:   make(map[string]int, len(subjects)),
	}
	ids := make(map[string]struct{}, len(subjects))
	for _, s := range subjects {
		if strings.TrimSpace(s.ID) == "" || strings.TrimSpace(s.Slug) == "" {
			return nil, fmt.Errorf("subject: id and slug are required (id=%q slug=%q)", s.ID, s.Slug)
		}
		if _, dup := ids[s.ID]; dup {
			return nil, fmt.Errorf("subject: duplicate id %q", s.ID)
		}
		if _, dup := r.bySlug[s.Slug]; dup {
			return nil, fmt.Errorf("subject: duplicate slug %q", s.Slug)
		}
		switch s.Source {
		case SourceReddit, SourceMock:
		default:
			return nil, fmt.Errorf("subject %s: unknown source %q", s.Slug, s.Source)
		}
		if s.Source == SourceReddit && strings.TrimSpace(s.Community) == "" {
			return nil, fmt.Errorf("subject %s: reddit subjects need a community", s.Slug)
		}
		ids[s.ID] = struct{}{}
		r.bySlug[s.Slug] = len(r.subjects)
		r.subjects = append(r.subjects, s)
	}
	return r, nil
}

// FromConfig converts configured subjects into a registry.
func FromConfig(cfgs []config.SubjectConfig) (*Registry, error) {
	subjects := make([]Subject, 0, len(cfgs))
	for _, c := range cfgs {
		subjects = append(subjects, Subject{
			ID:            c.ID,
			Slug:          c.Slug,
			Name:          c.Name,
			Description:   c.Description,
			PostCount:     c.PostCount,
			CommunitySize: c.CommunitySize,
			Source:        strings.ToLower(strings.TrimSpace(c.Source)),
			Community:     strings.TrimSpace(c.Community),
		})
	}
	return New(subjects)
}

// List returns all subjects in display order.
func (r *Registry) List() []Subject {
	out := make([]Subject, len(r.subjects))
	copy(out, r.subjects)
	return out
}

// BySlug is an exact, case-sensitive lookup.
func (r *Registry) BySlug(slug string) (Subject, bool) {
	i, ok := r.bySlug[slug]
	if !ok {
		return Subject{}, false
	}
	return r.subjects[i], true
}

// Others returns up to n subjects other than slug, in display order.
func (r *Registry) Others(slug string, n int) []Subject {
	out := make([]Subject, 0, n)
	for _, s := range r.subjects {
		if len(out) >= n {
			break
		}
		if s.Slug != slug {
			out = append(out, s)
		}
	}
	return out
}
