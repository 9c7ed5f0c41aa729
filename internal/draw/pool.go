package draw

import (
	"errors"
	"fmt"
	"strings"

	"github.com/eykd/hpvdraw/internal/domain"
)

// Normalizer canonicalises a raw pool file line.
type Normalizer interface {
	Line(s string) string
}

type identityNormalizer struct{}

func (identityNormalizer) Line(s string) string { return strings.TrimSpace(s) }

// ParseLines turns raw pool file lines into identity numbers. Blank
// lines are ignored. Lines that do not parse are skipped and reported
// as error findings; lines accepted only after normalisation and
// repeated numbers are reported as warnings and kept.
func ParseLines(lines []string, n Normalizer) ([]domain.ID, []domain.Finding) {
	if n == nil {
		n = identityNormalizer{}
	}
	var ids []domain.ID
	var findings []domain.Finding
	firstSeen := make(map[domain.ID]int)

	for i, raw := range lines {
		lineNo := i + 1
		text := n.Line(raw)
		if text == "" {
			continue
		}
		id, err := domain.ParseID(text)
		if err != nil {
			findings = append(findings, domain.Finding{
				Type:     findingType(err),
				Severity: domain.SeverityError,
				Message:  err.Error(),
				Line:     lineNo,
				Text:     raw,
			})
			continue
		}
		if text != strings.TrimSpace(raw) {
			findings = append(findings, domain.Finding{
				Type:     domain.FindingNormalized,
				Severity: domain.SeverityWarning,
				Message:  fmt.Sprintf("read as %s", text),
				Line:     lineNo,
				Text:     raw,
			})
		}
		if first, ok := firstSeen[id]; ok {
			findings = append(findings, domain.Finding{
				Type:     domain.FindingDuplicateLine,
				Severity: domain.SeverityWarning,
				Message:  fmt.Sprintf("same number as line %d", first),
				Line:     lineNo,
				Text:     raw,
			})
		} else {
			firstSeen[id] = lineNo
		}
		ids = append(ids, id)
	}
	return ids, findings
}

func findingType(err error) string {
	switch {
	case errors.Is(err, domain.ErrLength):
		return domain.FindingWrongLength
	case errors.Is(err, domain.ErrNonDigit):
		return domain.FindingNonDigit
	default:
		return domain.FindingChecksum
	}
}

// CountBySeverity counts error and warning findings.
func CountBySeverity(findings []domain.Finding) (errCount, warnCount int) {
	for _, f := range findings {
		if f.Severity == domain.SeverityError {
			errCount++
		} else {
			warnCount++
		}
	}
	return
}
