package validation

import (
	"testing"

	"content-review-api/core/domain"
)

func TestClassify_BoundaryLaw(t *testing.T) {
	// The pending band is exactly [50,60]; off-by-one here changes
	// classification outcomes at the boundary
	tests := []struct {
		confidence float64
		status     domain.ReviewStatus
	}{
		{0.61, domain.StatusApproved},
		{0.60, domain.StatusPending},
		{0.50, domain.StatusPending},
		{0.49, domain.StatusRejected},
	}

	for _, tt := range tests {
		status, _ := Classify(tt.confidence)
		if status != tt.status {
			t.Errorf("Classify(%f): expected %s, got %s", tt.confidence, tt.status, status)
		}
	}
}

func TestClassify_Messages(t *testing.T) {
	tests := []struct {
		confidence float64
		message    string
	}{
		{0.90, "Content verified and relevant"},
		{0.55, "Content needs manual review - moderate relevance"},
		{0.10, "Content appears irrelevant or insufficient"},
	}

	for _, tt := range tests {
		_, message := Classify(tt.confidence)
		if message != tt.message {
			t.Errorf("Classify(%f): expected message %q, got %q", tt.confidence, tt.message, message)
		}
	}
}

func TestClassify_RoundsToNearestPercent(t *testing.T) {
	// 0.604 rounds to 60 (pending); 0.605 rounds to 61 (approved)
	if status, _ := Classify(0.604); status != domain.StatusPending {
		t.Errorf("0.604 should round to 60 and classify pending, got %s", status)
	}
	if status, _ := Classify(0.605); status != domain.StatusApproved {
		t.Errorf("0.605 should round to 61 and classify approved, got %s", status)
	}
}

func TestClassify_Idempotent(t *testing.T) {
	firstStatus, firstMessage := Classify(0.55)
	for i := 0; i < 10; i++ {
		status, message := Classify(0.55)
		if status != firstStatus || message != firstMessage {
			t.Fatal("Classify must be pure: same confidence, same result")
		}
	}
}

func TestClassify_ZeroConfidence(t *testing.T) {
	status, _ := Classify(0)

	if status != domain.StatusRejected {
		t.Errorf("zero confidence should classify rejected, got %s", status)
	}
}
