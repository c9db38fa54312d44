package upload_test

import (
	"testing"

	"github.com/clauseguard/clausectl/pkg/domain/contract"
	"github.com/clauseguard/clausectl/pkg/domain/upload"
)

func TestAcceptsFilename(t *testing.T) {
	cases := []struct {
		name string
		want bool
	}{
		{"report.pdf", true},
		{"report.PDF", true},
		{"notes.txt", true},
		{"NOTES.TXT", true},
		{"contract.v2.pdf", true},
		{"report.docx", false},
		{"report", false},
		{"report.pdf.exe", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := upload.AcceptsFilename(tc.name); got != tc.want {
			t.Errorf("AcceptsFilename(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestFlowRejectsBadExtension(t *testing.T) {
	flow, err := upload.NewFlow()
	if err != nil {
		t.Fatalf("NewFlow: %v", err)
	}
	if flow.State() != upload.StateIdle {
		t.Fatalf("initial state = %s, want idle", flow.State())
	}

	if _, err := flow.Submit("report.docx"); err == nil {
		t.Fatal("expected rejection for .docx")
	}
	// No transition away from the current state; no request may be made.
	if flow.State() != upload.StateIdle {
		t.Errorf("state = %s after rejection, want idle", flow.State())
	}
}

func TestFlowLifecycle(t *testing.T) {
	flow, err := upload.NewFlow()
	if err != nil {
		t.Fatalf("NewFlow: %v", err)
	}

	seq, err := flow.Submit("report.PDF")
	if err != nil {
		t.Fatalf("mixed-case PDF rejected: %v", err)
	}
	if flow.State() != upload.StateLoading {
		t.Fatalf("state = %s, want loading", flow.State())
	}

	flow.Succeed(seq, contract.UploadResult{ContractID: "c1", NumClauses: 5, Message: "ok"})
	if flow.State() != upload.StateSuccess {
		t.Fatalf("state = %s, want success", flow.State())
	}
	if res := flow.Result(); res == nil || res.ContractID != "c1" {
		t.Errorf("Result() = %+v", res)
	}

	// Success is re-entrant: a new submission starts a new attempt.
	seq2, err := flow.Submit("other.txt")
	if err != nil {
		t.Fatalf("resubmit from success: %v", err)
	}
	flow.Fail(seq2, "500: extraction failed")
	if flow.State() != upload.StateError {
		t.Fatalf("state = %s, want error", flow.State())
	}
	if got := flow.ErrorMessage(); got != "500: extraction failed" {
		t.Errorf("ErrorMessage() = %q", got)
	}

	// Error is re-entrant too.
	if _, err := flow.Submit("retry.pdf"); err != nil {
		t.Fatalf("resubmit from error: %v", err)
	}
	if flow.State() != upload.StateLoading {
		t.Errorf("state = %s, want loading", flow.State())
	}
}

func TestFlowGenericFailureMessage(t *testing.T) {
	flow, _ := upload.NewFlow()
	seq, _ := flow.Submit("a.pdf")
	flow.Fail(seq, "")
	if got := flow.ErrorMessage(); got != "Upload failed" {
		t.Errorf("ErrorMessage() = %q, want generic message", got)
	}
}

func TestFlowLastSubmissionWins(t *testing.T) {
	flow, _ := upload.NewFlow()

	seq1, err := flow.Submit("first.pdf")
	if err != nil {
		t.Fatalf("first submit: %v", err)
	}
	// A second accepted file supersedes the in-flight attempt without
	// waiting for it.
	seq2, err := flow.Submit("second.pdf")
	if err != nil {
		t.Fatalf("superseding submit: %v", err)
	}
	if seq2 == seq1 {
		t.Fatal("expected a new attempt sequence")
	}
	if flow.State() != upload.StateLoading {
		t.Fatalf("state = %s, want loading", flow.State())
	}

	// The stale completion must not apply.
	flow.Succeed(seq1, contract.UploadResult{ContractID: "stale"})
	if flow.State() != upload.StateLoading {
		t.Fatalf("stale completion applied, state = %s", flow.State())
	}

	flow.Succeed(seq2, contract.UploadResult{ContractID: "fresh"})
	if res := flow.Result(); res == nil || res.ContractID != "fresh" {
		t.Errorf("Result() = %+v, want fresh", res)
	}
}

func TestFlowRejectionWhileLoadingKeepsAttempt(t *testing.T) {
	flow, _ := upload.NewFlow()
	seq, _ := flow.Submit("first.pdf")

	if _, err := flow.Submit("bad.docx"); err == nil {
		t.Fatal("expected rejection")
	}
	if flow.State() != upload.StateLoading {
		t.Fatalf("rejection moved state to %s", flow.State())
	}

	// The original attempt still resolves.
	flow.Succeed(seq, contract.UploadResult{ContractID: "c1"})
	if flow.State() != upload.StateSuccess {
		t.Errorf("state = %s, want success", flow.State())
	}
}
