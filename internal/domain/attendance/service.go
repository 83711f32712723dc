package attendance

import (
	"context"
	"time"
)

// Service is the attendance core: it turns kiosk frames into punch
// records and raw punches into the derived monthly matrix.
type Service interface {
	// MarkAttendance submits a camera frame to the recognizer and, on a
	// positive match, records the day's punch-in (idempotently).
	MarkAttendance(ctx context.Context, frame []byte) (RecognitionResponse, error)

	// PunchOut closes today's open punch for the employee.
	PunchOut(ctx context.Context, req PunchOutRequest) (PunchOutResponse, error)

	// MonthlyMatrix rebuilds the full month grid from persisted data.
	MonthlyMatrix(ctx context.Context, year int, month time.Month) (MatrixResponse, error)

	// Matrix returns the raw derived matrix for internal consumers
	// (payroll); MonthlyMatrix wraps it for the HTTP surface.
	Matrix(ctx context.Context, year int, month time.Month) (Matrix, error)
}
