package model

import (
	"fmt"
	"strings"
)

// Path represents a file system path.
type Path string

// Identity tags a combination with the project and bug it was generated for.
type Identity struct {
	Project string `json:"project" yaml:"project"`
	Bug     string `json:"bug" yaml:"bug"`
}

// String renders the identity as "Project-Bug".
func (i Identity) String() string {
	return i.Project + "-" + i.Bug
}

// ParseIdentity parses "Project-Bug". The bug part is everything after the
// last dash so project names may contain dashes themselves.
func ParseIdentity(s string) (Identity, error) {
	s = strings.TrimSpace(s)

	idx := strings.LastIndex(s, "-")
	if idx <= 0 || idx == len(s)-1 {
		return Identity{}, fmt.Errorf("invalid project-bug %q, expected Project-Bug", s)
	}

	return Identity{Project: s[:idx], Bug: s[idx+1:]}, nil
}

// Workspace is a private copy of the clean project owned by one combination.
type Workspace struct {
	Path          Path
	CombinationID string
}
