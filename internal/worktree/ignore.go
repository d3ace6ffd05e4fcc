package worktree

import (
	"bufio"
	"bytes"
	"path/filepath"
	"strings"

	"github.com/keshon/tvc/internal/config"
)

// Ignore matches slash-separated working tree paths against .tvcignore
// patterns.
type Ignore struct {
	static  map[string]bool
	pattern []string
}

// NewIgnore builds a matcher from the contents of an ignore file. Blank
// lines and lines starting with # are skipped.
func NewIgnore(data []byte) *Ignore {
	m := &Ignore{static: map[string]bool{config.RepoDir: true}}

	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimSuffix(filepath.ToSlash(line), "/")
		if line == "" {
			continue
		}
		m.pattern = append(m.pattern, line)
	}
	return m
}

// Match returns true if the path should be ignored
func (m *Ignore) Match(path string) bool {
	clean := filepath.ToSlash(filepath.Clean(path))

	if m.static[clean] {
		return true
	}

	for _, pat := range m.pattern {
		if matchPattern(pat, clean) {
			return true
		}
	}
	return false
}

// matchPattern handles *, ?, and ** like Git
func matchPattern(pattern, path string) bool {
	return matchSegments(strings.Split(pattern, "/"), strings.Split(path, "/"))
}

func matchSegments(pats, parts []string) bool {
	for len(pats) > 0 {
		p := pats[0]
		pats = pats[1:]

		if p == "**" {
			if len(pats) == 0 {
				return true // trailing ** matches anything
			}
			for i := 0; i <= len(parts); i++ {
				if matchSegments(pats, parts[i:]) {
					return true
				}
			}
			return false
		}

		if len(parts) == 0 {
			return false
		}
		if ok, _ := filepath.Match(p, parts[0]); !ok {
			return false
		}
		parts = parts[1:]
	}
	return len(parts) == 0
}
