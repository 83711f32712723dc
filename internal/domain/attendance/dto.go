package attendance

// RecognitionResponse is what the kiosk receives for one submitted frame.
// A frame with nobody recognizable in it is a normal outcome, not an
// error: Matched is false and the kiosk stays idle.
type RecognitionResponse struct {
	Matched        bool   `json:"matched"`
	EmployeeID     string `json:"employee_id,omitempty"`
	Name           string `json:"name,omitempty"`
	AlreadyPresent bool   `json:"already_present"`
	Message        string `json:"message,omitempty"`
	Status         string `json:"status,omitempty"`
}

type PunchOutRequest struct {
	EmployeeID string `json:"employee_id"`
}

type PunchOutResponse struct {
	EmployeeID string `json:"employee_id"`
	Message    string `json:"message"`
}

// DayCellResponse is one grid cell of the monthly matrix.
type DayCellResponse struct {
	Status   string  `json:"status"`
	Label    string  `json:"label"`
	PunchIn  *string `json:"punch_in,omitempty"`
	PunchOut *string `json:"punch_out,omitempty"`
}

type EmployeeRowResponse struct {
	EmployeeID string                  `json:"employee_id"`
	Name       string                  `json:"name"`
	Days       map[int]DayCellResponse `json:"days"`
}

type MatrixResponse struct {
	Year        int                   `json:"year"`
	Month       int                   `json:"month"`
	DaysInMonth int                   `json:"days_in_month"`
	WeekendDays []int                 `json:"weekend_days"`
	WorkingDays []int                 `json:"working_days"`
	Holidays    map[int]string        `json:"holidays"`
	Employees   []EmployeeRowResponse `json:"employees"`
}
