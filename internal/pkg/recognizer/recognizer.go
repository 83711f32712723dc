// Package recognizer models the face-matching backend as a capability:
// the attendance core only consumes match results and stays correct under
// any implementation honoring the contract, including test doubles.
package recognizer

import "context"

// Match is the outcome of submitting one camera frame.
type Match struct {
	// Matched is false when no face was found or the face is unknown.
	Matched    bool    `json:"matched"`
	EmployeeID string  `json:"employee_id,omitempty"`
	Name       string  `json:"name,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`
}

type Client interface {
	// SubmitFrame sends a JPEG frame for matching. A frame with nobody
	// in it yields Matched=false, not an error; errors mean the service
	// itself failed.
	SubmitFrame(ctx context.Context, frame []byte) (Match, error)
}
