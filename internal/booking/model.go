package booking

import "time"

// Draft holds everything a visitor enters across both wizard steps.
type Draft struct {
	Service   string `json:"service"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Address   string `json:"address"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Notes     string `json:"notes"`
}

// Draft field names accepted by SetField.
const (
	FieldService   = "service"
	FieldDate      = "date"
	FieldTime      = "time"
	FieldAddress   = "address"
	FieldFirstName = "firstName"
	FieldLastName  = "lastName"
	FieldPhone     = "phone"
	FieldEmail     = "email"
	FieldNotes     = "notes"
)

// Services lists the bookable service options.
func Services() []string {
	return []string{
		"House Cleaning",
		"Plumbing Repair",
		"Electrical Work",
		"Lawn Care",
		"HVAC Service",
		"Handyman Service",
		"Other",
	}
}

// TimeSlots lists the selectable arrival windows.
func TimeSlots() []string {
	return []string{
		"08:00 AM", "09:00 AM", "10:00 AM", "11:00 AM",
		"12:00 PM", "01:00 PM", "02:00 PM", "03:00 PM",
		"04:00 PM", "05:00 PM", "06:00 PM",
	}
}

// MinDate returns the earliest selectable appointment date: the day after
// now, in ISO format.
func MinDate(now time.Time) string {
	return now.AddDate(0, 0, 1).Format("2006-01-02")
}
