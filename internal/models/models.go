package models

import "time"

// Field enumerations. Values are stored as plain strings; the service
// rejects anything outside these sets.
var (
	Categories = []string{"Technical", "Billing", "Service", "Infrastructure", "Other"}
	Priorities = []string{"Low", "Medium", "High"}
	Statuses   = []string{"Pending", "In Progress", "Resolved"}
)

const (
	DefaultPriority = "Medium"
	DefaultStatus   = "Pending"

	RoleUser  = "User"
	RoleAdmin = "Admin"
)

type Complaint struct {
	ID          string    `json:"_id"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	Date        time.Time `json:"date"`
	UserID      string    `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`

	// Filled by joined reads (admin listings, export); empty otherwise.
	UserName  string `json:"-"`
	UserEmail string `json:"-"`
}

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	Address      string    `json:"address,omitempty"`
	Bio          string    `json:"bio,omitempty"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Actor is the resolved identity performing an operation.
type Actor struct {
	ID   string
	Role string
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// DisplayID derives the short presentation id: "#" plus the last three
// characters of the internal id, left-padded with zeros to width 3.
// Collisions are tolerated; lookups always use the full id.
func (c Complaint) DisplayID() string {
	tail := c.ID
	if len(tail) > 3 {
		tail = tail[len(tail)-3:]
	}
	for len(tail) < 3 {
		tail = "0" + tail
	}
	return "#" + tail
}

// ComplaintView is the wire shape of a complaint. The filing date is
// rendered as a calendar day, the same format the filter endpoints accept.
type ComplaintView struct {
	DisplayID   string    `json:"id"`
	ID          string    `json:"_id"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	Date        string    `json:"date"`
	UserID      string    `json:"userId"`
	UserName    string    `json:"userName,omitempty"`
	UserEmail   string    `json:"userEmail,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (c Complaint) View() ComplaintView {
	return ComplaintView{
		DisplayID:   c.DisplayID(),
		ID:          c.ID,
		Category:    c.Category,
		Description: c.Description,
		Priority:    c.Priority,
		Status:      c.Status,
		Date:        c.Date.Format("2006-01-02"),
		UserID:      c.UserID,
		UserName:    c.UserName,
		UserEmail:   c.UserEmail,
		CreatedAt:   c.CreatedAt,
	}
}

func Views(complaints []Complaint) []ComplaintView {
	out := make([]ComplaintView, 0, len(complaints))
	for _, c := range complaints {
		out = append(out, c.View())
	}
	return out
}

func ValidCategory(v string) bool { return contains(Categories, v) }
func ValidPriority(v string) bool { return contains(Priorities, v) }
func ValidStatus(v string) bool   { return contains(Statuses, v) }

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
