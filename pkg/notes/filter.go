package notes

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aretw0/notely/pkg/core"
)

// Filter returns the notes whose title matches the glob pattern, in list
// order. An empty pattern matches everything. Titles are matched as
// slash-separated paths, so "work/**" selects every title under "work/".
func (s *Store) Filter(pattern string) ([]core.Note, error) {
	all := s.Notes()
	if pattern == "" {
		return all, nil
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid title pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}

	out := make([]core.Note, 0, len(all))
	for _, n := range all {
		if ok, _ := doublestar.Match(pattern, n.Title); ok {
			out = append(out, n)
		}
	}
	return out, nil
}
