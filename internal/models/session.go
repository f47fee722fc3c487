package models

import (
	"time"

	"github.com/jackc/pgx/v5"
)

// SessionStatus is the state of a mentoring session
type SessionStatus string

const (
	SessionPending   SessionStatus = "pending"
	SessionScheduled SessionStatus = "scheduled"
	SessionCompleted SessionStatus = "completed"
	SessionCancelled SessionStatus = "cancelled"
)

// MentoringSession is one meeting between the participants of a match
type MentoringSession struct {
	ID                string        `json:"id"`
	MatchID           string        `json:"matchId"`
	ScheduledDate     *time.Time    `json:"scheduledDate"`
	Status            SessionStatus `json:"status"`
	MentorFeedback    string        `json:"mentorFeedback"`
	MenteeFeedback    string        `json:"menteeFeedback"`
	MentorRating      *int          `json:"mentorRating"`
	MenteeRating      *int          `json:"menteeRating"`
	FeedbackEmailSent bool          `json:"feedbackEmailSent"`
	CreatedAt         time.Time     `json:"createdAt"`
	UpdatedAt         time.Time     `json:"updatedAt"`
}

// HasBothRatings reports whether mentor and mentee have both rated the session
func (s *MentoringSession) HasBothRatings() bool {
	return s.MentorRating != nil && s.MenteeRating != nil
}

// CreateSessionRequest schedules a session for a match
type CreateSessionRequest struct {
	ScheduledDate *time.Time    `json:"scheduledDate"`
	Status        SessionStatus `json:"status" binding:"omitempty,oneof=pending scheduled"`
}

// UpdateSessionRequest is a partial update. Nil fields are left as is.
type UpdateSessionRequest struct {
	ScheduledDate  *time.Time     `json:"scheduledDate"`
	Status         *SessionStatus `json:"status" binding:"omitempty,oneof=pending scheduled completed cancelled"`
	MentorFeedback *string        `json:"mentorFeedback" binding:"omitempty,max=5000"`
	MenteeFeedback *string        `json:"menteeFeedback" binding:"omitempty,max=5000"`
	MentorRating   *int           `json:"mentorRating" binding:"omitempty,min=1,max=5"`
	MenteeRating   *int           `json:"menteeRating" binding:"omitempty,min=1,max=5"`
}

// Apply copies the set fields onto s
func (r *UpdateSessionRequest) Apply(s *MentoringSession) {
	if r.ScheduledDate != nil {
		s.ScheduledDate = r.ScheduledDate
	}
	if r.Status != nil {
		s.Status = *r.Status
	}
	if r.MentorFeedback != nil {
		s.MentorFeedback = *r.MentorFeedback
	}
	if r.MenteeFeedback != nil {
		s.MenteeFeedback = *r.MenteeFeedback
	}
	if r.MentorRating != nil {
		s.MentorRating = r.MentorRating
	}
	if r.MenteeRating != nil {
		s.MenteeRating = r.MenteeRating
	}
}

// SessionColumns is the column list matching ScanSession
const SessionColumns = `id, match_id, scheduled_date, status, mentor_feedback, mentee_feedback,
	mentor_rating, mentee_rating, feedback_email_sent, created_at, updated_at`

// ScanSession scans a row selected with SessionColumns
func ScanSession(row pgx.Row) (*MentoringSession, error) {
	var s MentoringSession
	var mentorRating, menteeRating *int16
	err := row.Scan(
		&s.ID,
		&s.MatchID,
		&s.ScheduledDate,
		&s.Status,
		&s.MentorFeedback,
		&s.MenteeFeedback,
		&mentorRating,
		&menteeRating,
		&s.FeedbackEmailSent,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if mentorRating != nil {
		v := int(*mentorRating)
		s.MentorRating = &v
	}
	if menteeRating != nil {
		v := int(*menteeRating)
		s.MenteeRating = &v
	}
	return &s, nil
}

// ScanSessions scans all rows and closes them
func ScanSessions(rows pgx.Rows) ([]*MentoringSession, error) {
	defer rows.Close()

	sessions := []*MentoringSession{}
	for rows.Next() {
		s, err := ScanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sessions, nil
}
