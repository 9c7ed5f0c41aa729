package cmd

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/eykd/hpvdraw/internal/domain"
	"github.com/eykd/hpvdraw/internal/draw"
)

func TestCheck_CleanFile(t *testing.T) {
	runner := &mockRunner{loadResult: &draw.LoadResult{
		IDs: []domain.ID{mustID(t, "33010219990101002")},
	}}

	stdout, _, err := execute(t, fakeFactory(runner, nil), "check", "pool.txt")
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	if runner.loadPath != "pool.txt" {
		t.Errorf("loaded %q, want pool.txt", runner.loadPath)
	}
	if !strings.Contains(stdout, "1 valid number(s), 0 error(s), 0 warning(s)") {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestCheck_ErrorFindingsExitTwo(t *testing.T) {
	runner := &mockRunner{loadResult: &draw.LoadResult{
		Findings: []domain.Finding{
			{Type: domain.FindingWrongLength, Severity: domain.SeverityError, Message: "17 characters", Line: 3, Text: "1234"},
			{Type: domain.FindingNormalized, Severity: domain.SeverityWarning, Message: "whitespace removed", Line: 4},
		},
	}}

	stdout, _, err := execute(t, fakeFactory(runner, nil), "check", "pool.txt")

	var found *FindingsDetectedError
	if !errors.As(err, &found) {
		t.Fatalf("error = %v, want FindingsDetectedError", err)
	}
	if found.Errors != 1 || found.Warnings != 1 {
		t.Errorf("counts = %d/%d, want 1/1", found.Errors, found.Warnings)
	}
	if ExitCodeFromError(err) != 2 {
		t.Errorf("exit code = %d, want 2", ExitCodeFromError(err))
	}
	if !strings.Contains(stdout, "pool.txt:3 [error] wrong_length: 17 characters") {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestCheck_WarningsOnlySucceeds(t *testing.T) {
	runner := &mockRunner{loadResult: &draw.LoadResult{
		Findings: []domain.Finding{
			{Type: domain.FindingDuplicateLine, Severity: domain.SeverityWarning, Line: 2},
		},
	}}

	if _, _, err := execute(t, fakeFactory(runner, nil), "check", "pool.txt"); err != nil {
		t.Errorf("execute() error = %v, want nil for warnings only", err)
	}
}

func TestCheck_FallsBackToInputFlag(t *testing.T) {
	runner := &mockRunner{loadResult: &draw.LoadResult{}}

	if _, _, err := execute(t, fakeFactory(runner, nil), "check", "--input", "from-flag.txt"); err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	if runner.loadPath != "from-flag.txt" {
		t.Errorf("loaded %q, want from-flag.txt", runner.loadPath)
	}
}

func TestCheck_NoFileIsUsageError(t *testing.T) {
	_, _, err := execute(t, fakeFactory(&mockRunner{}, nil), "check")
	if code := ExitCodeFromError(err); code != 2 {
		t.Errorf("exit code = %d, want 2 (err %v)", code, err)
	}
}

func TestCheck_ReadErrorHasPath(t *testing.T) {
	runner := &mockRunner{loadErr: errors.New("no such file")}

	_, _, err := execute(t, fakeFactory(runner, nil), "check", "missing.txt")
	if err == nil || err.Error() != "check: missing.txt: no such file" {
		t.Errorf("error = %v", err)
	}
	if ExitCodeFromError(err) != 1 {
		t.Errorf("exit code = %d, want 1", ExitCodeFromError(err))
	}
}

func TestCheck_JSON(t *testing.T) {
	runner := &mockRunner{loadResult: &draw.LoadResult{
		IDs: []domain.ID{mustID(t, "33010219990101002")},
		Findings: []domain.Finding{
			{Type: domain.FindingChecksum, Severity: domain.SeverityError, Line: 1, Text: "330102199901010021"},
		},
	}}

	stdout, _, err := execute(t, fakeFactory(runner, nil), "check", "pool.txt", "--json")
	if ExitCodeFromError(err) != 2 {
		t.Fatalf("exit code = %d, want 2", ExitCodeFromError(err))
	}

	var got checkJSONResponse
	if err := json.Unmarshal([]byte(stdout), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", stdout, err)
	}
	if got.File != "pool.txt" || got.Valid != 1 {
		t.Errorf("file/valid = %q/%d", got.File, got.Valid)
	}
	if got.Summary.Errors != 1 || len(got.Findings) != 1 {
		t.Errorf("summary = %+v, findings = %v", got.Summary, got.Findings)
	}
	if got.Findings[0].Severity != SeverityError {
		t.Errorf("severity = %q", got.Findings[0].Severity)
	}
}
