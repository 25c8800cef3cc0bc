package domain

// User account types as reported by the server. "worker" is the legacy
// spelling of "staff" still emitted by older deployments.
const (
	UserResident = "resident"
	UserAdmin    = "admin"
	UserStaff    = "staff"
	UserWorker   = "worker"
)

// User models an application account. The session owns the authenticated
// user; the user store owns the full list for admin management screens.
type User struct {
	Record
	Username      string `json:"username,omitempty"`
	Name          string `json:"name,omitempty"`
	RoomNumber    string `json:"roomNumber,omitempty"`
	Type          string `json:"type,omitempty"`
	CheckInDate   string `json:"checkInDate,omitempty"`
	ContactNumber string `json:"contactNumber,omitempty"`
}

// IsStaff reports whether the user may perform staff/admin mutations.
func (u *User) IsStaff() bool {
	switch u.Type {
	case UserAdmin, UserStaff, UserWorker:
		return true
	}
	return false
}
