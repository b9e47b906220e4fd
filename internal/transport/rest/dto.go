package rest

import (
	"time"

	"github.com/heartmarshall/codeclub-backend/internal/domain"
)

type eventSnapshotRequest struct {
	EventTitle string `json:"eventTitle"`
	EventDate  string `json:"eventDate"`
}

type selfCheckInRequest struct {
	EventTitle string  `json:"eventTitle"`
	EventDate  string  `json:"eventDate"`
	Notes      *string `json:"notes"`
}

type adminMarkRequest struct {
	UserID     string  `json:"userId"`
	UserName   string  `json:"userName"`
	UserEmail  string  `json:"userEmail"`
	EventTitle string  `json:"eventTitle"`
	EventDate  string  `json:"eventDate"`
	Notes      *string `json:"notes"`
}

type checkInByCodeRequest struct {
	Code  string  `json:"code"`
	Notes *string `json:"notes"`
}

type registeredResponse struct {
	Registered bool `json:"registered"`
}

type attendedResponse struct {
	Attended bool `json:"attended"`
}

type registrationResponse struct {
	ID               string    `json:"id"`
	UserID           string    `json:"userId"`
	UserName         string    `json:"userName"`
	UserEmail        string    `json:"userEmail"`
	EventID          string    `json:"eventId"`
	EventTitle       string    `json:"eventTitle"`
	EventDate        string    `json:"eventDate"`
	RegistrationDate time.Time `json:"registrationDate"`
	Status           string    `json:"status"`
}

type attendanceResponse struct {
	ID           string     `json:"id"`
	UserID       string     `json:"userId"`
	UserName     string     `json:"userName"`
	UserEmail    string     `json:"userEmail"`
	EventID      string     `json:"eventId"`
	EventTitle   string     `json:"eventTitle"`
	EventDate    string     `json:"eventDate"`
	CheckInTime  time.Time  `json:"checkInTime"`
	CheckOutTime *time.Time `json:"checkOutTime,omitempty"`
	Status       string     `json:"status"`
	Notes        *string    `json:"notes,omitempty"`
}

type statsResponse struct {
	TotalEvents    int     `json:"totalEvents"`
	AttendedEvents int     `json:"attendedEvents"`
	MissedEvents   int     `json:"missedEvents"`
	AttendanceRate float64 `json:"attendanceRate"`
}

type summaryResponse struct {
	EventID         string               `json:"eventId"`
	EventTitle      string               `json:"eventTitle"`
	EventDate       string               `json:"eventDate"`
	TotalRegistered int                  `json:"totalRegistered"`
	TotalCheckedIn  int                  `json:"totalCheckedIn"`
	AttendanceRate  float64              `json:"attendanceRate"`
	Attendees       []attendanceResponse `json:"attendees"`
}

type historyEntryResponse struct {
	Registration registrationResponse `json:"registration"`
	Attendance   *attendanceResponse  `json:"attendance"`
}

// toRegistrationResponse omits the check-in code. Members receive it only
// as a QR image.
func toRegistrationResponse(r domain.Registration) registrationResponse {
	return registrationResponse{
		ID:               r.ID.String(),
		UserID:           r.UserID,
		UserName:         r.UserName,
		UserEmail:        r.UserEmail,
		EventID:          r.EventID,
		EventTitle:       r.EventTitle,
		EventDate:        r.EventDate,
		RegistrationDate: r.RegistrationDate,
		Status:           string(r.Status),
	}
}

func toRegistrationList(list []domain.Registration) []registrationResponse {
	out := make([]registrationResponse, len(list))
	for i, r := range list {
		out[i] = toRegistrationResponse(r)
	}
	return out
}

func toAttendanceResponse(a domain.Attendance) attendanceResponse {
	return attendanceResponse{
		ID:           a.ID.String(),
		UserID:       a.UserID,
		UserName:     a.UserName,
		UserEmail:    a.UserEmail,
		EventID:      a.EventID,
		EventTitle:   a.EventTitle,
		EventDate:    a.EventDate,
		CheckInTime:  a.CheckInTime,
		CheckOutTime: a.CheckOutTime,
		Status:       string(a.Status),
		Notes:        a.Notes,
	}
}

func toAttendanceList(list []domain.Attendance) []attendanceResponse {
	out := make([]attendanceResponse, len(list))
	for i, a := range list {
		out[i] = toAttendanceResponse(a)
	}
	return out
}

func toStatsResponse(s domain.UserAttendanceStats) statsResponse {
	return statsResponse{
		TotalEvents:    s.TotalEvents,
		AttendedEvents: s.AttendedEvents,
		MissedEvents:   s.MissedEvents,
		AttendanceRate: s.AttendanceRate,
	}
}

func toSummaryList(list []domain.EventAttendanceSummary) []summaryResponse {
	out := make([]summaryResponse, len(list))
	for i, s := range list {
		out[i] = summaryResponse{
			EventID:         s.EventID,
			EventTitle:      s.EventTitle,
			EventDate:       s.EventDate,
			TotalRegistered: s.TotalRegistered,
			TotalCheckedIn:  s.TotalCheckedIn,
			AttendanceRate:  s.AttendanceRate,
			Attendees:       toAttendanceList(s.Attendees),
		}
	}
	return out
}

func toHistoryList(list []domain.EventHistoryEntry) []historyEntryResponse {
	out := make([]historyEntryResponse, len(list))
	for i, e := range list {
		out[i] = historyEntryResponse{Registration: toRegistrationResponse(e.Registration)}
		if e.Attendance != nil {
			a := toAttendanceResponse(*e.Attendance)
			out[i].Attendance = &a
		}
	}
	return out
}
