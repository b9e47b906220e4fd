package domain

// RegistrationStatus is the lifecycle state of a registration record.
type RegistrationStatus string

const (
	RegistrationStatusRegistered RegistrationStatus = "registered"
	RegistrationStatusCancelled  RegistrationStatus = "cancelled"
)

func (s RegistrationStatus) String() string { return string(s) }

func (s RegistrationStatus) IsValid() bool {
	switch s {
	case RegistrationStatusRegistered, RegistrationStatusCancelled:
		return true
	}
	return false
}

// AttendanceStatus is the lifecycle state of an attendance record.
type AttendanceStatus string

const (
	AttendanceStatusCheckedIn  AttendanceStatus = "checked-in"
	AttendanceStatusCheckedOut AttendanceStatus = "checked-out"

	// AttendanceStatusMissed is reserved. No operation produces it; missed
	// events are derived arithmetically in UserAttendanceStats.
	AttendanceStatusMissed AttendanceStatus = "missed"
)

func (s AttendanceStatus) String() string { return string(s) }

func (s AttendanceStatus) IsValid() bool {
	switch s {
	case AttendanceStatusCheckedIn, AttendanceStatusCheckedOut, AttendanceStatusMissed:
		return true
	}
	return false
}
