// Package model defines the data structures for mutation combination testing.
package model

import (
	"strconv"
	"strings"
)

// NoOpMarker is the mutated-code sentinel meaning "comment the original out".
const NoOpMarker = "<NO-OP>"

// MutationRecord is a single line-level mutation read from the mutation log.
//
// The struct is comparable; two records are duplicates when every field is
// equal.
type MutationRecord struct {
	ID           string `json:"mutant_id" yaml:"id"`
	Mutator      string `json:"mutator" yaml:"mutator"`
	ClassKey     string `json:"class_name" yaml:"class"`
	Line         int    `json:"line_number" yaml:"line"`
	OriginalCode string `json:"original_code" yaml:"original"`
	MutatedCode  string `json:"mutated_code" yaml:"mutated"`
}

// SignatureKey is the per-record part of a combination signature.
func (r MutationRecord) SignatureKey() string {
	var b strings.Builder

	b.WriteString(r.ClassKey)
	b.WriteByte(':')
	b.WriteString(strconv.Itoa(r.Line))
	b.WriteByte(':')
	b.WriteString(r.Mutator)

	return b.String()
}

// Combination is a set of records applied together to one workspace.
type Combination struct {
	ID             string           `json:"id" yaml:"id"`
	Identity       Identity         `json:"identity" yaml:"identity"`
	Records        []MutationRecord `json:"records" yaml:"records"`
	Signature      string           `json:"signature" yaml:"signature"`
	GenerationSeed uint64           `json:"generation_seed" yaml:"generation_seed"`
}

// Mutators returns the mutator name of every record, in record order.
func (c Combination) Mutators() []string {
	out := make([]string, 0, len(c.Records))
	for _, r := range c.Records {
		out = append(out, r.Mutator)
	}

	return out
}

// GenerationParams drives one run of the combination generator.
type GenerationParams struct {
	Seed              int64
	Identity          Identity
	Count             int
	MaxPerCombination int
}

// GenerationResult is the output of the combination generator. Shortfall is
// the number of requested combinations that could not be produced.
type GenerationResult struct {
	Combinations []Combination
	Shortfall    int
}
