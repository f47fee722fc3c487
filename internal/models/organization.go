package models

import (
	"fmt"
	"math"
	"time"

	"github.com/jackc/pgx/v5"
)

// Default branding colours applied when an organization has none set
const (
	DefaultPrimaryColor   = "#3B82F6"
	DefaultSecondaryColor = "#8B5CF6"
	DefaultAccentColor    = "#10B981"
)

// MatchWeights are the relative contributions of each sub-score to a match score.
// They must be non-negative and sum to 1.
type MatchWeights struct {
	Expertise     float64 `json:"expertise" binding:"min=0,max=1"`
	Industry      float64 `json:"industry" binding:"min=0,max=1"`
	Availability  float64 `json:"availability" binding:"min=0,max=1"`
	MeetingFormat float64 `json:"meetingFormat" binding:"min=0,max=1"`
}

const weightsTolerance = 1e-6

// Validate checks that weights are non-negative and sum to 1
func (w MatchWeights) Validate() error {
	for _, weight := range []struct {
		name  string
		value float64
	}{
		{"expertise", w.Expertise},
		{"industry", w.Industry},
		{"availability", w.Availability},
		{"meetingFormat", w.MeetingFormat},
	} {
		if weight.value < 0 || math.IsNaN(weight.value) {
			return fmt.Errorf("weight %s must be non-negative", weight.name)
		}
	}
	sum := w.Expertise + w.Industry + w.Availability + w.MeetingFormat
	if math.Abs(sum-1.0) > weightsTolerance {
		return fmt.Errorf("weights must sum to 1.0, got %.4f", sum)
	}
	return nil
}

// MatchSettings is an organization-level override of the scoring defaults
type MatchSettings struct {
	Weights             MatchWeights `json:"weights"`
	Threshold           int          `json:"threshold"`
	MaxMatchesPerMentee int          `json:"maxMatchesPerMentee"`
}

// Validate checks weights and bounds
func (s MatchSettings) Validate() error {
	if err := s.Weights.Validate(); err != nil {
		return err
	}
	if s.Threshold < 0 || s.Threshold > 100 {
		return fmt.Errorf("threshold must be between 0 and 100")
	}
	if s.MaxMatchesPerMentee < 1 {
		return fmt.Errorf("maxMatchesPerMentee must be at least 1")
	}
	return nil
}

// Organization is a tenant of the platform
type Organization struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Location       string         `json:"location"`
	About          string         `json:"about"`
	LogoURL        string         `json:"logoUrl"`
	PrimaryColor   string         `json:"primaryColor"`
	SecondaryColor string         `json:"secondaryColor"`
	AccentColor    string         `json:"accentColor"`
	MatchSettings  *MatchSettings `json:"matchSettings,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

// UpdateOrganizationRequest updates profile and branding. Nil fields are left as is.
type UpdateOrganizationRequest struct {
	Name           *string `json:"name" binding:"omitempty,min=1,max=200"`
	Location       *string `json:"location" binding:"omitempty,max=200"`
	About          *string `json:"about" binding:"omitempty,max=5000"`
	PrimaryColor   *string `json:"primaryColor" binding:"omitempty,hexcolor"`
	SecondaryColor *string `json:"secondaryColor" binding:"omitempty,hexcolor"`
	AccentColor    *string `json:"accentColor" binding:"omitempty,hexcolor"`
}

// Apply copies the set fields onto org
func (r *UpdateOrganizationRequest) Apply(org *Organization) {
	if r.Name != nil {
		org.Name = *r.Name
	}
	if r.Location != nil {
		org.Location = *r.Location
	}
	if r.About != nil {
		org.About = *r.About
	}
	if r.PrimaryColor != nil {
		org.PrimaryColor = *r.PrimaryColor
	}
	if r.SecondaryColor != nil {
		org.SecondaryColor = *r.SecondaryColor
	}
	if r.AccentColor != nil {
		org.AccentColor = *r.AccentColor
	}
}

// UpdateMatchSettingsRequest replaces an organization's scoring settings
type UpdateMatchSettingsRequest struct {
	Weights             MatchWeights `json:"weights" binding:"required"`
	Threshold           int          `json:"threshold" binding:"min=0,max=100"`
	MaxMatchesPerMentee int          `json:"maxMatchesPerMentee" binding:"required,min=1,max=20"`
}

// UploadLogoRequest carries a base64 encoded image
type UploadLogoRequest struct {
	Image       string `json:"image" binding:"required"`
	FileName    string `json:"fileName" binding:"required"`
	ContentType string `json:"contentType" binding:"required"`
}

// UploadLogoResponse is returned after a logo upload
type UploadLogoResponse struct {
	Success bool   `json:"success"`
	LogoURL string `json:"logoUrl"`
}

// ScanOrganization scans a row into an Organization.
// Expected columns: id, name, location, about, logo_url, primary_color, secondary_color,
// accent_color, match_settings, created_at, updated_at
func ScanOrganization(row pgx.Row) (*Organization, error) {
	var o Organization
	err := row.Scan(
		&o.ID,
		&o.Name,
		&o.Location,
		&o.About,
		&o.LogoURL,
		&o.PrimaryColor,
		&o.SecondaryColor,
		&o.AccentColor,
		&o.MatchSettings, // NULL leaves the pointer nil
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
