package models

import (
	"time"

	"github.com/jackc/pgx/v5"
)

// MatchStatus is the lifecycle state of a match
type MatchStatus string

const (
	MatchPending   MatchStatus = "pending"
	MatchApproved  MatchStatus = "approved"
	MatchRejected  MatchStatus = "rejected"
	MatchCompleted MatchStatus = "completed"
)

// IsValid reports whether s is a known status
func (s MatchStatus) IsValid() bool {
	switch s {
	case MatchPending, MatchApproved, MatchRejected, MatchCompleted:
		return true
	}
	return false
}

// IsTerminalStatus returns true if no further transitions are allowed
func (s MatchStatus) IsTerminalStatus() bool {
	return s == MatchRejected || s == MatchCompleted
}

// CanTransitionTo checks if a status transition is valid.
//
//	pending  -> approved | rejected
//	approved -> completed | rejected
func (s MatchStatus) CanTransitionTo(newStatus MatchStatus) bool {
	if s.IsTerminalStatus() {
		return false
	}

	switch s {
	case MatchPending:
		return newStatus == MatchApproved || newStatus == MatchRejected
	case MatchApproved:
		return newStatus == MatchCompleted || newStatus == MatchRejected
	default:
		return false
	}
}

// Match pairs one mentor with one mentee of the same organization
type Match struct {
	ID                string      `json:"id"`
	OrganizationID    string      `json:"organizationId"`
	MentorID          string      `json:"mentorId"`
	MenteeID          string      `json:"menteeId"`
	MatchScore        int         `json:"matchScore"`
	MatchReasons      []string    `json:"matchReasons"`
	Status            MatchStatus `json:"status"`
	AdminID           string      `json:"adminId"`
	IntroEmailSent    bool        `json:"introEmailSent"`
	FollowUpEmailSent bool        `json:"followUpEmailSent"`
	SessionScheduled  bool        `json:"sessionScheduled"`
	CreatedAt         time.Time   `json:"createdAt"`
	UpdatedAt         time.Time   `json:"updatedAt"`
}

// MatchDetails is a match together with both participants and its sessions
type MatchDetails struct {
	Match    *Match              `json:"match"`
	Mentor   *Mentor             `json:"mentor"`
	Mentee   *Mentee             `json:"mentee"`
	Sessions []*MentoringSession `json:"sessions"`
}

// MatchSuggestion is an unsaved candidate match with its mentor
type MatchSuggestion struct {
	Match  *Match  `json:"match"`
	Mentor *Mentor `json:"mentor"`
}

// MatchPair identifies a mentor/mentee combination
type MatchPair struct {
	MentorID string
	MenteeID string
}

// CreateMatchRequest creates a match manually
type CreateMatchRequest struct {
	MentorID string `json:"mentorId" binding:"required,uuid"`
	MenteeID string `json:"menteeId" binding:"required,uuid"`
}

// MatchListFilter narrows a match listing
type MatchListFilter struct {
	Status MatchStatus `form:"status" binding:"omitempty,oneof=pending approved rejected completed"`
}

// MatchesResponse is the response for listing matches
type MatchesResponse struct {
	Matches []*Match `json:"matches"`
	Total   int      `json:"total"`
}

// GenerateMatchesResponse reports the outcome of organization-wide generation
type GenerateMatchesResponse struct {
	Matches   []*Match `json:"matches"`
	Generated int      `json:"generated"`
	Skipped   int      `json:"skipped"`
	Threshold int      `json:"threshold"`
}

// MatchColumns is the column list matching ScanMatch
const MatchColumns = `id, organization_id, mentor_id, mentee_id, match_score, match_reasons,
	status, admin_id, intro_email_sent, follow_up_email_sent, session_scheduled,
	created_at, updated_at`

// ScanMatch scans a row selected with MatchColumns
func ScanMatch(row pgx.Row) (*Match, error) {
	var m Match
	err := row.Scan(
		&m.ID,
		&m.OrganizationID,
		&m.MentorID,
		&m.MenteeID,
		&m.MatchScore,
		&m.MatchReasons,
		&m.Status,
		&m.AdminID,
		&m.IntroEmailSent,
		&m.FollowUpEmailSent,
		&m.SessionScheduled,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	m.MatchReasons = nonNil(m.MatchReasons)
	return &m, nil
}

// ScanMatches scans all rows and closes them
func ScanMatches(rows pgx.Rows) ([]*Match, error) {
	defer rows.Close()

	matches := []*Match{}
	for rows.Next() {
		m, err := ScanMatch(rows)
		if err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return matches, nil
}

// MatchTransition is a conditional status change applied only when the
// stored status still equals From
type MatchTransition struct {
	From    MatchStatus
	To      MatchStatus
	AdminID string
	// IntroEmailSent is OR-ed into the stored flag
	IntroEmailSent bool
}
