package models

import (
	"time"

	"github.com/jackc/pgx/v5"
)

// Mentee is an organization member seeking guidance
type Mentee struct {
	ID                     string        `json:"id"`
	OrganizationID         string        `json:"organizationId"`
	Name                   string        `json:"name"`
	Email                  string        `json:"email"`
	Background             string        `json:"background"`
	Goals                  string        `json:"goals"`
	Industry               string        `json:"industry"`
	Interests              []string      `json:"interests"`
	Availability           []string      `json:"availability"`
	PreferredMeetingFormat MeetingFormat `json:"preferredMeetingFormat"`
	Active                 bool          `json:"active"`
	Approved               bool          `json:"approved"`
	WelcomeEmailSent       bool          `json:"welcomeEmailSent"`
	ProfileCompleted       bool          `json:"profileCompleted"`
	CreatedAt              time.Time     `json:"createdAt"`
	UpdatedAt              time.Time     `json:"updatedAt"`
}

// CreateMenteeRequest is the admin payload for adding a mentee
type CreateMenteeRequest struct {
	Name                   string        `json:"name" binding:"required,max=200"`
	Email                  string        `json:"email" binding:"required,email,max=320"`
	Background             string        `json:"background" binding:"max=5000"`
	Goals                  string        `json:"goals" binding:"max=5000"`
	Industry               string        `json:"industry" binding:"max=100"`
	Interests              []string      `json:"interests" binding:"max=30,dive,max=100"`
	Availability           []string      `json:"availability" binding:"max=20,dive,max=100"`
	PreferredMeetingFormat MeetingFormat `json:"preferredMeetingFormat" binding:"omitempty,oneof=virtual in-person both"`
}

// ToMentee builds a new, unapproved mentee in organizationID
func (r *CreateMenteeRequest) ToMentee(organizationID string) *Mentee {
	return &Mentee{
		OrganizationID:         organizationID,
		Name:                   r.Name,
		Email:                  r.Email,
		Background:             r.Background,
		Goals:                  r.Goals,
		Industry:               r.Industry,
		Interests:              nonNil(r.Interests),
		Availability:           nonNil(r.Availability),
		PreferredMeetingFormat: r.PreferredMeetingFormat,
		Active:                 true,
		ProfileCompleted:       true,
	}
}

// UpdateMenteeRequest is a partial update. Nil fields are left as is.
type UpdateMenteeRequest struct {
	Name                   *string        `json:"name" binding:"omitempty,min=1,max=200"`
	Background             *string        `json:"background" binding:"omitempty,max=5000"`
	Goals                  *string        `json:"goals" binding:"omitempty,max=5000"`
	Industry               *string        `json:"industry" binding:"omitempty,max=100"`
	Interests              []string       `json:"interests" binding:"omitempty,max=30,dive,max=100"`
	Availability           []string       `json:"availability" binding:"omitempty,max=20,dive,max=100"`
	PreferredMeetingFormat *MeetingFormat `json:"preferredMeetingFormat" binding:"omitempty,oneof=virtual in-person both"`
	Active                 *bool          `json:"active"`
}

// Apply copies the set fields onto m
func (r *UpdateMenteeRequest) Apply(m *Mentee) {
	if r.Name != nil {
		m.Name = *r.Name
	}
	if r.Background != nil {
		m.Background = *r.Background
	}
	if r.Goals != nil {
		m.Goals = *r.Goals
	}
	if r.Industry != nil {
		m.Industry = *r.Industry
	}
	if r.Interests != nil {
		m.Interests = r.Interests
	}
	if r.Availability != nil {
		m.Availability = r.Availability
	}
	if r.PreferredMeetingFormat != nil {
		m.PreferredMeetingFormat = *r.PreferredMeetingFormat
	}
	if r.Active != nil {
		m.Active = *r.Active
	}
}

// MenteeColumns is the column list matching ScanMentee
const MenteeColumns = `id, organization_id, name, email, background, goals, industry,
	interests, availability, preferred_meeting_format,
	active, approved, welcome_email_sent, profile_completed, created_at, updated_at`

// ScanMentee scans a row selected with MenteeColumns
func ScanMentee(row pgx.Row) (*Mentee, error) {
	var m Mentee
	err := row.Scan(
		&m.ID,
		&m.OrganizationID,
		&m.Name,
		&m.Email,
		&m.Background,
		&m.Goals,
		&m.Industry,
		&m.Interests,
		&m.Availability,
		&m.PreferredMeetingFormat,
		&m.Active,
		&m.Approved,
		&m.WelcomeEmailSent,
		&m.ProfileCompleted,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	m.Interests = nonNil(m.Interests)
	m.Availability = nonNil(m.Availability)
	return &m, nil
}

// ScanMentees scans all rows and closes them
func ScanMentees(rows pgx.Rows) ([]*Mentee, error) {
	defer rows.Close()

	mentees := []*Mentee{}
	for rows.Next() {
		m, err := ScanMentee(rows)
		if err != nil {
			return nil, err
		}
		mentees = append(mentees, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return mentees, nil
}
