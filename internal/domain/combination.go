package domain

import (
	"cmp"
	"log/slog"
	"math"
	"slices"
	"strconv"
	"strings"

	m "gooze.dev/pkg/mutforge/internal/model"
)

// Selection constants. Stride and both steps must stay odd.
const (
	combinationStride uint64 = 1_000_003
	selectionStep     uint64 = 7_919
	retryOffset       uint64 = 15_485_863
	retryStep         uint64 = 104_729
)

const (
	signatureSep      = "|"
	combinationPrefix = "mutant_"
)

// MaxMutationsPerCombination is the upper bound accepted for the per
// combination record count.
const MaxMutationsPerCombination = 4

// CombinationGenerator selects unique multi-record combinations.
type CombinationGenerator interface {
	Generate(params m.GenerationParams, records []m.MutationRecord) m.GenerationResult
}

type combinationGenerator struct{}

// NewCombinationGenerator constructs a CombinationGenerator.
func NewCombinationGenerator() CombinationGenerator {
	return &combinationGenerator{}
}

// Generate is a pure function of its inputs: equal params and records give
// equal results, independent of record input order.
func (g *combinationGenerator) Generate(params m.GenerationParams, records []m.MutationRecord) m.GenerationResult {
	result := m.GenerationResult{Combinations: []m.Combination{}}

	if params.Count <= 0 || len(records) == 0 {
		if params.Count > 0 {
			result.Shortfall = params.Count
			slog.Warn("no mutation records to combine", "identity", params.Identity.String(), "requested", params.Count)
		}

		return result
	}

	maxPer := params.MaxPerCombination
	if maxPer < 1 {
		maxPer = 1
	}

	sorted := canonicalOrder(records)
	n := uint64(len(sorted))
	base := DeriveSeed(strconv.FormatInt(params.Seed, 10), params.Identity.Project, params.Identity.Bug)
	seen := make(map[string]struct{}, params.Count)

	for i := 1; i <= params.Count; i++ {
		local := base + uint64(i)*combinationStride
		size := 1 + int(local%uint64(maxPer))

		selected := pick(sorted, n, local, selectionStep, size)
		signature := Signature(selected)

		if _, dup := seen[signature]; dup {
			local += retryOffset
			selected = pick(sorted, n, local, retryStep, size)
			signature = Signature(selected)

			if _, dup := seen[signature]; dup {
				slog.Debug("skipping colliding combination", "index", i, "signature", signature)
				continue
			}
		}

		seen[signature] = struct{}{}

		result.Combinations = append(result.Combinations, m.Combination{
			ID:             combinationPrefix + strconv.Itoa(len(result.Combinations)+1),
			Identity:       params.Identity,
			Records:        selected,
			Signature:      signature,
			GenerationSeed: local,
		})
	}

	result.Shortfall = params.Count - len(result.Combinations)
	if result.Shortfall > 0 {
		slog.Warn("could not reach requested combination count",
			"identity", params.Identity.String(),
			"requested", params.Count,
			"generated", len(result.Combinations),
			"shortfall", result.Shortfall,
		)
	}

	return result
}

// pick returns the records at (local + j*step) mod n for j in [0,size),
// duplicates collapsed, in canonical order.
func pick(sorted []m.MutationRecord, n, local, step uint64, size int) []m.MutationRecord {
	indices := make([]int, 0, size)

	for j := range uint64(size) {
		idx := int((local + j*step) % n)
		if !slices.Contains(indices, idx) {
			indices = append(indices, idx)
		}
	}

	slices.Sort(indices)

	out := make([]m.MutationRecord, 0, len(indices))
	for _, idx := range indices {
		out = append(out, sorted[idx])
	}

	return out
}

// canonicalOrder sorts a copy of records by class, line, mutator and code.
func canonicalOrder(records []m.MutationRecord) []m.MutationRecord {
	sorted := slices.Clone(records)

	slices.SortStableFunc(sorted, compareRecords)

	return sorted
}

func compareRecords(a, b m.MutationRecord) int {
	return cmp.Or(
		cmp.Compare(a.ClassKey, b.ClassKey),
		cmp.Compare(a.Line, b.Line),
		cmp.Compare(a.Mutator, b.Mutator),
		cmp.Compare(a.OriginalCode, b.OriginalCode),
		cmp.Compare(a.MutatedCode, b.MutatedCode),
		cmp.Compare(a.ID, b.ID),
	)
}

// Signature joins the records' class:line:mutator keys in canonical order.
func Signature(records []m.MutationRecord) string {
	keys := make([]string, 0, len(records))

	for _, r := range canonicalOrder(records) {
		keys = append(keys, r.SignatureKey())
	}

	return strings.Join(keys, signatureSep)
}

// MutantCount converts a percentage of the record count into a combination
// count; at least one combination is requested whenever records exist.
func MutantCount(total int, percentage float64) int {
	if total <= 0 {
		return 0
	}

	count := int(math.Floor(float64(total) * percentage / 100))
	if count < 1 {
		return 1
	}

	return count
}
