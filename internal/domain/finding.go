package domain

// FindingSeverity indicates how severe a finding is.
type FindingSeverity string

const (
	// SeverityError marks an input line that was skipped.
	SeverityError FindingSeverity = "error"
	// SeverityWarning marks an input line that was accepted after repair.
	SeverityWarning FindingSeverity = "warning"
)

// Finding type constants identify the kind of issue found in a pool file.
const (
	FindingWrongLength   = "wrong_length"
	FindingNonDigit      = "non_digit"
	FindingChecksum      = "checksum_mismatch"
	FindingNormalized    = "normalized"
	FindingDuplicateLine = "duplicate"
)

// Finding describes a problem with one line of a pool file.
type Finding struct {
	Type     string
	Severity FindingSeverity
	Message  string
	Line     int
	Text     string
}
