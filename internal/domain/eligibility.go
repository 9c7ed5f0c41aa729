package domain

import "fmt"

// Reason explains why a candidate was rejected.
type Reason string

const (
	// ReasonNone is used for eligible candidates.
	ReasonNone Reason = ""
	// ReasonMale indicates an odd sex digit under a female-only rule.
	ReasonMale Reason = "male"
	// ReasonBirthYear indicates a birth year outside the open interval.
	ReasonBirthYear Reason = "birth_year"
	// ReasonMalformed indicates a value that is not a well-formed ID.
	ReasonMalformed Reason = "malformed"
)

// Rule accepts candidates born strictly after BornAfter and strictly
// before BornBefore. When FemaleOnly is set, odd sex digits are rejected
// before the year is looked at.
type Rule struct {
	BornAfter  int  `yaml:"born_after" json:"born_after"`
	BornBefore int  `yaml:"born_before" json:"born_before"`
	FemaleOnly bool `yaml:"female_only" json:"female_only"`
}

// DefaultRule admits women born 1993 through 2009.
func DefaultRule() Rule {
	return Rule{BornAfter: 1992, BornBefore: 2010, FemaleOnly: true}
}

// Validate rejects rules whose interval cannot admit any year.
func (r Rule) Validate() error {
	if r.BornBefore-r.BornAfter < 2 {
		return fmt.Errorf("empty birth year interval (%d, %d)", r.BornAfter, r.BornBefore)
	}
	return nil
}

// Verdict is the outcome of evaluating a candidate.
type Verdict struct {
	Eligible bool
	Reason   Reason
}

// Evaluate applies the rule to id.
func (r Rule) Evaluate(id ID) Verdict {
	if len(id) != Length {
		return Verdict{Reason: ReasonMalformed}
	}
	if r.FemaleOnly && !id.Female() {
		return Verdict{Reason: ReasonMale}
	}
	y := id.BirthYear()
	if y <= r.BornAfter || y >= r.BornBefore {
		return Verdict{Reason: ReasonBirthYear}
	}
	return Verdict{Eligible: true}
}

// Eligible reports whether id passes the rule.
func (r Rule) Eligible(id ID) bool {
	return r.Evaluate(id).Eligible
}
