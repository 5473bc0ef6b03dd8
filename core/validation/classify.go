// ABOUTME: Classification policy maps a continuous confidence score onto a review status
// ABOUTME: Pure function with fixed thresholds shared by every call site

package validation

import (
	"math"

	"content-review-api/core/domain"
)

// Status messages produced by classification
const (
	approvedMessage = "Content verified and relevant"
	rejectedMessage = "Content appears irrelevant or insufficient"
	pendingMessage  = "Content needs manual review - moderate relevance"
)

// Classify maps a confidence in [0,1] to a review status and message.
// The confidence is rounded to a whole percentage p first:
//
//	p > 60         approved
//	p < 50         rejected
//	50 <= p <= 60  pending
//
// The pending band is exactly [50,60]; the boundaries are not symmetric
// around a midpoint. Classify is pure: the same confidence always yields
// the same status and message.
func Classify(confidence float64) (domain.ReviewStatus, string) {
	p := confidencePercent(confidence)
	switch {
	case p > 60:
		return domain.StatusApproved, approvedMessage
	case p < 50:
		return domain.StatusRejected, rejectedMessage
	default:
		return domain.StatusPending, pendingMessage
	}
}

// confidencePercent converts a confidence in [0,1] to a whole percentage
func confidencePercent(confidence float64) int {
	return int(math.Round(confidence * 100))
}
