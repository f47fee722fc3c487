package models

import (
	"time"

	"github.com/jackc/pgx/v5"
)

// MeetingFormat is a participant's preferred way of meeting
type MeetingFormat string

const (
	MeetingVirtual  MeetingFormat = "virtual"
	MeetingInPerson MeetingFormat = "in-person"
	MeetingBoth     MeetingFormat = "both"
)

// TopExperienceBucket is the highest years-of-experience bucket
const TopExperienceBucket = "10+"

// ParticipantType distinguishes mentors from mentees in forms and invitations
type ParticipantType string

const (
	ParticipantMentor ParticipantType = "mentor"
	ParticipantMentee ParticipantType = "mentee"
)

// Mentor is an organization member who offers guidance
type Mentor struct {
	ID                     string        `json:"id"`
	OrganizationID         string        `json:"organizationId"`
	Name                   string        `json:"name"`
	Email                  string        `json:"email"`
	Title                  string        `json:"title"`
	Company                string        `json:"company"`
	Bio                    string        `json:"bio"`
	Industry               string        `json:"industry"`
	Expertise              []string      `json:"expertise"`
	Availability           []string      `json:"availability"`
	PreferredMeetingFormat MeetingFormat `json:"preferredMeetingFormat"`
	YearsOfExperience      string        `json:"yearsOfExperience"`
	BookingLink            string        `json:"bookingLink"`
	Active                 bool          `json:"active"`
	Approved               bool          `json:"approved"`
	WelcomeEmailSent       bool          `json:"welcomeEmailSent"`
	ProfileCompleted       bool          `json:"profileCompleted"`
	CreatedAt              time.Time     `json:"createdAt"`
	UpdatedAt              time.Time     `json:"updatedAt"`
}

// CreateMentorRequest is the admin payload for adding a mentor
type CreateMentorRequest struct {
	Name                   string        `json:"name" binding:"required,max=200"`
	Email                  string        `json:"email" binding:"required,email,max=320"`
	Title                  string        `json:"title" binding:"max=200"`
	Company                string        `json:"company" binding:"max=200"`
	Bio                    string        `json:"bio" binding:"max=5000"`
	Industry               string        `json:"industry" binding:"max=100"`
	Expertise              []string      `json:"expertise" binding:"max=30,dive,max=100"`
	Availability           []string      `json:"availability" binding:"max=20,dive,max=100"`
	PreferredMeetingFormat MeetingFormat `json:"preferredMeetingFormat" binding:"omitempty,oneof=virtual in-person both"`
	YearsOfExperience      string        `json:"yearsOfExperience" binding:"max=20"`
	BookingLink            string        `json:"bookingLink" binding:"omitempty,url,max=500"`
}

// ToMentor builds a new, unapproved mentor in organizationID
func (r *CreateMentorRequest) ToMentor(organizationID string) *Mentor {
	return &Mentor{
		OrganizationID:         organizationID,
		Name:                   r.Name,
		Email:                  r.Email,
		Title:                  r.Title,
		Company:                r.Company,
		Bio:                    r.Bio,
		Industry:               r.Industry,
		Expertise:              nonNil(r.Expertise),
		Availability:           nonNil(r.Availability),
		PreferredMeetingFormat: r.PreferredMeetingFormat,
		YearsOfExperience:      r.YearsOfExperience,
		BookingLink:            r.BookingLink,
		Active:                 true,
		ProfileCompleted:       true,
	}
}

// UpdateMentorRequest is a partial update. Nil fields are left as is.
type UpdateMentorRequest struct {
	Name                   *string        `json:"name" binding:"omitempty,min=1,max=200"`
	Title                  *string        `json:"title" binding:"omitempty,max=200"`
	Company                *string        `json:"company" binding:"omitempty,max=200"`
	Bio                    *string        `json:"bio" binding:"omitempty,max=5000"`
	Industry               *string        `json:"industry" binding:"omitempty,max=100"`
	Expertise              []string       `json:"expertise" binding:"omitempty,max=30,dive,max=100"`
	Availability           []string       `json:"availability" binding:"omitempty,max=20,dive,max=100"`
	PreferredMeetingFormat *MeetingFormat `json:"preferredMeetingFormat" binding:"omitempty,oneof=virtual in-person both"`
	YearsOfExperience      *string        `json:"yearsOfExperience" binding:"omitempty,max=20"`
	BookingLink            *string        `json:"bookingLink" binding:"omitempty,max=500"`
	Active                 *bool          `json:"active"`
}

// Apply copies the set fields onto m
func (r *UpdateMentorRequest) Apply(m *Mentor) {
	if r.Name != nil {
		m.Name = *r.Name
	}
	if r.Title != nil {
		m.Title = *r.Title
	}
	if r.Company != nil {
		m.Company = *r.Company
	}
	if r.Bio != nil {
		m.Bio = *r.Bio
	}
	if r.Industry != nil {
		m.Industry = *r.Industry
	}
	if r.Expertise != nil {
		m.Expertise = r.Expertise
	}
	if r.Availability != nil {
		m.Availability = r.Availability
	}
	if r.PreferredMeetingFormat != nil {
		m.PreferredMeetingFormat = *r.PreferredMeetingFormat
	}
	if r.YearsOfExperience != nil {
		m.YearsOfExperience = *r.YearsOfExperience
	}
	if r.BookingLink != nil {
		m.BookingLink = *r.BookingLink
	}
	if r.Active != nil {
		m.Active = *r.Active
	}
}

// MentorColumns is the column list matching ScanMentor
const MentorColumns = `id, organization_id, name, email, title, company, bio, industry,
	expertise, availability, preferred_meeting_format, years_of_experience, booking_link,
	active, approved, welcome_email_sent, profile_completed, created_at, updated_at`

// ScanMentor scans a row selected with MentorColumns
func ScanMentor(row pgx.Row) (*Mentor, error) {
	var m Mentor
	err := row.Scan(
		&m.ID,
		&m.OrganizationID,
		&m.Name,
		&m.Email,
		&m.Title,
		&m.Company,
		&m.Bio,
		&m.Industry,
		&m.Expertise,
		&m.Availability,
		&m.PreferredMeetingFormat,
		&m.YearsOfExperience,
		&m.BookingLink,
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
	m.Expertise = nonNil(m.Expertise)
	m.Availability = nonNil(m.Availability)
	return &m, nil
}

// ScanMentors scans all rows and closes them
func ScanMentors(rows pgx.Rows) ([]*Mentor, error) {
	defer rows.Close()

	mentors := []*Mentor{}
	for rows.Next() {
		m, err := ScanMentor(rows)
		if err != nil {
			return nil, err
		}
		mentors = append(mentors, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return mentors, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
