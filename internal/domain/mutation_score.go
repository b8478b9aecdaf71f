package domain

import (
	m "gooze.dev/pkg/mutforge/internal/model"
	pkg "gooze.dev/pkg/mutforge/pkg"
)

// mutationScoreFromResults returns the percentage of compiled combinations
// that made at least one test fail.
func mutationScoreFromResults(results pkg.FileSpill[m.ExecutionResult]) (float64, error) {
	killed := 0
	total := 0

	err := results.Range(func(_ uint64, result m.ExecutionResult) error {
		if !result.CompileSuccess {
			// non-compiling combinations are excluded from the denominator
			return nil
		}

		total++

		if result.Killed() {
			killed++
		}

		return nil
	})
	if err != nil {
		return 0.0, err
	}

	if total == 0 {
		return 100.0, nil
	}

	return float64(killed) / float64(total) * 100, nil
}
