package domain

import "math"

// UserAttendanceStats summarises one user's registrations against attendance.
// MissedEvents may be negative: attendance does not require registration.
type UserAttendanceStats struct {
	TotalEvents    int
	AttendedEvents int
	MissedEvents   int
	AttendanceRate float64
}

// EventAttendanceSummary aggregates both ledgers for a single event.
type EventAttendanceSummary struct {
	EventID         string
	EventTitle      string
	EventDate       string
	TotalRegistered int
	TotalCheckedIn  int
	AttendanceRate  float64
	Attendees       []Attendance
}

// EventHistoryEntry pairs an active registration with its attendance record,
// if the user has checked in.
type EventHistoryEntry struct {
	Registration Registration
	Attendance   *Attendance
}

// Rate returns part/total as a percentage rounded half-up to one decimal
// (round(ratio*1000)/10). A zero or negative total yields 0.
func Rate(part, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Floor(float64(part)/float64(total)*1000+0.5) / 10
}
