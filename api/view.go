package api

import (
	"fmt"

	"github.com/ahqjohn/portfolio-backend/models"
)

// Placeholder strings the console renders for omitted optional fields. The
// serialized views never contain a null or empty optional.
const (
	fallbackNotSpecified = "Not specified"
	fallbackNA           = "N/A"
)

func orFallback(value *string, fallback string) string {
	if value == nil || *value == "" {
		return fallback
	}
	return *value
}

// Empty-state messages rendered in place of an empty table body.
const (
	emptyProposals        = "No proposals found"
	emptyMeetings         = "No meetings found"
	emptyUsers            = "No users found"
	emptyContacts         = "No contact messages found"
	emptyMedia            = "No media uploaded yet"
	emptyRecentProposals  = "No proposals yet"
	emptyUpcomingMeetings = "No upcoming meetings"
)

// listResponse is the uniform list envelope: a total, the page of view
// models, and the empty-state message when there is nothing to render.
type listResponse[T any] struct {
	Total     int    `json:"total"`
	Documents []T    `json:"documents"`
	Message   string `json:"message,omitempty"`
}

func newListResponse[T any](documents []T, emptyMessage string) listResponse[T] {
	response := listResponse[T]{
		Total:     len(documents),
		Documents: documents,
	}
	if len(documents) == 0 {
		response.Documents = []T{}
		response.Message = emptyMessage
	}
	return response
}

// ProposalView is the immutable proposal row/detail rendered by the console.
type ProposalView struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Type          string `json:"type"`
	Budget        string `json:"budget"`
	Timeline      string `json:"timeline"`
	StartDate     string `json:"startDate"`
	Description   string `json:"description"`
	Status        string `json:"status"`
	StatusBadge   string `json:"statusBadge"`
	AdminResponse string `json:"adminResponse"`
	UserName      string `json:"userName"`
	UserEmail     string `json:"userEmail"`
	CreatedAt     string `json:"createdAt"`
}

func newProposalView(p *models.Proposal) ProposalView {
	return ProposalView{
		ID:            p.ID.String(),
		Title:         p.Title,
		Type:          p.Type,
		Budget:        orFallback(p.Budget, fallbackNotSpecified),
		Timeline:      p.Timeline,
		StartDate:     orFallback(p.StartDate, fallbackNotSpecified),
		Description:   p.Description,
		Status:        p.Status,
		StatusBadge:   fmt.Sprintf("status-%s", p.Status),
		AdminResponse: orFallback(p.AdminResponse, ""),
		UserName:      p.UserName,
		UserEmail:     p.UserEmail,
		CreatedAt:     p.CreatedAt.Format("2006-01-02"),
	}
}

// MeetingView is the meeting row/detail. The meeting link stays editable
// only while the request is pending.
type MeetingView struct {
	ID           string `json:"id"`
	Purpose      string `json:"purpose"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Duration     int    `json:"duration"`
	Mode         string `json:"mode"`
	Agenda       string `json:"agenda"`
	Status       string `json:"status"`
	StatusBadge  string `json:"statusBadge"`
	MeetingLink  string `json:"meetingLink"`
	LinkEditable bool   `json:"linkEditable"`
	UserName     string `json:"userName"`
	UserEmail    string `json:"userEmail"`
	CreatedAt    string `json:"createdAt"`
}

func newMeetingView(m *models.Meeting) MeetingView {
	return MeetingView{
		ID:           m.ID.String(),
		Purpose:      m.Purpose,
		Date:         m.Date,
		Time:         m.Time,
		Duration:     m.Duration,
		Mode:         m.Mode,
		Agenda:       m.Agenda,
		Status:       m.Status,
		StatusBadge:  fmt.Sprintf("status-%s", m.Status),
		MeetingLink:  orFallback(m.MeetingLink, ""),
		LinkEditable: m.Status == models.MeetingStatusPending,
		UserName:     m.UserName,
		UserEmail:    m.UserEmail,
		CreatedAt:    m.CreatedAt.Format("2006-01-02"),
	}
}

// UserView is the read-only users table row.
type UserView struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Organization string `json:"organization"`
	Role         string `json:"role"`
	CreatedAt    string `json:"createdAt"`
}

func newUserView(u *models.User) UserView {
	return UserView{
		ID:           u.ID.String(),
		Name:         u.Name,
		Email:        u.Email,
		Organization: orFallback(u.Organization, fallbackNA),
		Role:         orFallback(u.Role, fallbackNA),
		CreatedAt:    u.CreatedAt.Format("2006-01-02"),
	}
}

// ContactView is the contact message row/detail.
type ContactView struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Organization string `json:"organization"`
	Subject      string `json:"subject"`
	Budget       string `json:"budget"`
	Timeline     string `json:"timeline"`
	Message      string `json:"message"`
	CreatedAt    string `json:"createdAt"`
}

func newContactView(c *models.Contact) ContactView {
	return ContactView{
		ID:           c.ID.String(),
		Name:         fmt.Sprintf("%s %s", c.FirstName, c.LastName),
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		Email:        c.Email,
		Phone:        orFallback(c.Phone, fallbackNA),
		Organization: orFallback(c.Organization, fallbackNA),
		Subject:      c.Subject,
		Budget:       orFallback(c.Budget, fallbackNA),
		Timeline:     orFallback(c.Timeline, fallbackNA),
		Message:      c.Message,
		CreatedAt:    c.CreatedAt.Format("2006-01-02"),
	}
}
