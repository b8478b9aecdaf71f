package cmd

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"gooze.dev/pkg/mutforge/internal/domain"
	m "gooze.dev/pkg/mutforge/internal/model"
)

const allBugsSuffix = "-all"

var (
	errNoProjects     = errors.New("no project-bug given")
	errUnknownProject = errors.New("no bugs configured for project")
	errNoIdentity     = errors.New("cannot infer project-bug from log path, pass --project")
)

// checkoutDirPattern matches checkout directories such as Math_1 or Math_1f.
var checkoutDirPattern = regexp.MustCompile(`^([A-Za-z]+)_(\d+)f?$`)

// parseProjectArgument expands a comma separated project list into
// identities. "<Project>-all" expands to the configured bug list.
func parseProjectArgument(value string) ([]m.Identity, error) {
	var out []m.Identity

	seen := map[m.Identity]bool{}
	add := func(id m.Identity) {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}

	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if strings.HasSuffix(strings.ToLower(part), allBugsSuffix) {
			project := part[:len(part)-len(allBugsSuffix)]

			bugs := configuredBugs(project)
			if len(bugs) == 0 {
				return nil, fmt.Errorf("%w: %s", errUnknownProject, project)
			}

			for _, bug := range bugs {
				add(m.Identity{Project: project, Bug: bug})
			}

			continue
		}

		id, err := m.ParseIdentity(part)
		if err != nil {
			return nil, err
		}

		add(id)
	}

	if len(out) == 0 {
		return nil, errNoProjects
	}

	return out, nil
}

// identityFromLogPath walks the log path upwards looking for a checkout
// directory named <Project>_<Bug>.
func identityFromLogPath(logPath string) (m.Identity, error) {
	dir := filepath.Clean(logPath)

	for {
		if match := checkoutDirPattern.FindStringSubmatch(filepath.Base(dir)); match != nil {
			return m.Identity{Project: match[1], Bug: match[2]}, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return m.Identity{}, fmt.Errorf("%w: %s", errNoIdentity, logPath)
		}

		dir = parent
	}
}

func generationArgs(percentage float64, maxMutations int, seed int64) (domain.GenerationArgs, error) {
	if percentage < 0 || percentage > 100 {
		return domain.GenerationArgs{}, fmt.Errorf("percentage %.2f not in [0,100]", percentage)
	}

	if maxMutations < 1 || maxMutations > domain.MaxMutationsPerCombination {
		return domain.GenerationArgs{}, fmt.Errorf("max mutations %d not in [1,%d]", maxMutations, domain.MaxMutationsPerCombination)
	}

	return domain.GenerationArgs{
		Percentage:   percentage,
		MaxMutations: maxMutations,
		Seed:         seed,
	}, nil
}
