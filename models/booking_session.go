package models

// BookingSession holds one customer's in-progress booking: the draft, the
// current wizard page and the monotone set of completed steps. It lives in
// the session cache for the lifetime of the booking and is discarded on
// confirmation or expiry.
type BookingSession struct {
	SessionID      string       `json:"sessionId"`
	Draft          BookingDraft `json:"draft"`
	CurrentPage    int          `json:"currentPage"`
	CompletedSteps []int        `json:"completedSteps"`
}

// StepCompleted reports whether the given step has been completed.
func (s *BookingSession) StepCompleted(step int) bool {
	for _, c := range s.CompletedSteps {
		if c == step {
			return true
		}
	}
	return false
}

// CompleteSteps unions the given steps into the completed set. Completion is
// monotone: steps are never removed, not even on backward navigation.
func (s *BookingSession) CompleteSteps(steps ...int) {
	for _, step := range steps {
		if !s.StepCompleted(step) {
			s.CompletedSteps = append(s.CompletedSteps, step)
		}
	}
}

// StepState is one row of the progress indicator.
type StepState struct {
	Step      int    `json:"step"`
	Label     string `json:"label"`
	Completed bool   `json:"completed"`
	Active    bool   `json:"active"`
}

// SessionView is the session as reported to clients, with the derived
// progress indicator and cart total attached.
type SessionView struct {
	SessionID      string       `json:"sessionId"`
	Draft          BookingDraft `json:"draft"`
	CurrentPage    int          `json:"currentPage"`
	CompletedSteps []int        `json:"completedSteps"`
	Steps          []StepState  `json:"steps"`
	TotalPrice     float64      `json:"totalPrice"`
}

// ConfirmationResult is returned once a booking has been finalized and the
// confirmation email dispatched.
type ConfirmationResult struct {
	BookingReference string  `json:"bookingReference"`
	TotalPrice       float64 `json:"totalPrice"`
	Message          string  `json:"message"`
}
