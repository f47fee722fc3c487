package models

import (
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

// FieldType is the kind of input a form field renders
type FieldType string

const (
	FieldText        FieldType = "text"
	FieldTextarea    FieldType = "textarea"
	FieldEmail       FieldType = "email"
	FieldNumber      FieldType = "number"
	FieldSelect      FieldType = "select"
	FieldMultiselect FieldType = "multiselect"
	FieldRadio       FieldType = "radio"
	FieldCheckbox    FieldType = "checkbox"
)

// HasOptions reports whether the field type requires an options list
func (t FieldType) HasOptions() bool {
	switch t {
	case FieldSelect, FieldMultiselect, FieldRadio, FieldCheckbox:
		return true
	}
	return false
}

// IsMultiValue reports whether the field accepts a list of values
func (t FieldType) IsMultiValue() bool {
	return t == FieldMultiselect || t == FieldCheckbox
}

// IsValid reports whether t is a known field type
func (t FieldType) IsValid() bool {
	switch t {
	case FieldText, FieldTextarea, FieldEmail, FieldNumber:
		return true
	}
	return t.HasOptions()
}

// FieldOption is one choice of a choice field
type FieldOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FormField is a single question of an intake form.
// Choice types carry Options, free-input types must not.
type FormField struct {
	ID          string        `json:"id" binding:"required,max=100"`
	Label       string        `json:"label" binding:"required,max=300"`
	Type        FieldType     `json:"type" binding:"required"`
	Placeholder string        `json:"placeholder,omitempty" binding:"max=300"`
	Required    bool          `json:"required"`
	Options     []FieldOption `json:"options,omitempty"`
}

// Validate checks the field against its variant rules
func (f FormField) Validate() error {
	if f.ID == "" {
		return fmt.Errorf("field id is required")
	}
	if !f.Type.IsValid() {
		return fmt.Errorf("field %s: unknown type %q", f.ID, f.Type)
	}
	if f.Type.HasOptions() {
		if len(f.Options) == 0 {
			return fmt.Errorf("field %s: type %s requires options", f.ID, f.Type)
		}
		seen := make(map[string]bool, len(f.Options))
		for _, o := range f.Options {
			if o.Value == "" {
				return fmt.Errorf("field %s: option value is required", f.ID)
			}
			if seen[o.Value] {
				return fmt.Errorf("field %s: duplicate option %q", f.ID, o.Value)
			}
			seen[o.Value] = true
		}
	} else if len(f.Options) > 0 {
		return fmt.Errorf("field %s: type %s does not take options", f.ID, f.Type)
	}
	return nil
}

// HasOption reports whether value is one of the field's option values
func (f FormField) HasOption(value string) bool {
	for _, o := range f.Options {
		if o.Value == value {
			return true
		}
	}
	return false
}

// FormTemplate is an organization's intake form for mentors or mentees
type FormTemplate struct {
	ID             string          `json:"id"`
	OrganizationID string          `json:"organizationId"`
	Name           string          `json:"name"`
	Type           ParticipantType `json:"type"`
	Fields         []FormField     `json:"fields"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// ValidateFields checks every field and rejects duplicate ids
func (t *FormTemplate) ValidateFields() error {
	seen := make(map[string]bool, len(t.Fields))
	for _, f := range t.Fields {
		if err := f.Validate(); err != nil {
			return err
		}
		if seen[f.ID] {
			return fmt.Errorf("duplicate field id %q", f.ID)
		}
		seen[f.ID] = true
	}
	return nil
}

// CreateFormTemplateRequest creates a form template
type CreateFormTemplateRequest struct {
	Name   string          `json:"name" binding:"required,max=200"`
	Type   ParticipantType `json:"type" binding:"required,oneof=mentor mentee"`
	Fields []FormField     `json:"fields" binding:"required,min=1,max=100,dive"`
}

// UpdateFormTemplateRequest replaces name and/or fields
type UpdateFormTemplateRequest struct {
	Name   *string     `json:"name" binding:"omitempty,min=1,max=200"`
	Fields []FormField `json:"fields" binding:"omitempty,min=1,max=100,dive"`
}

// FormTemplateFilter narrows a template listing
type FormTemplateFilter struct {
	Type ParticipantType `form:"type" binding:"omitempty,oneof=mentor mentee"`
}

// IntakeSubmission is a public form submission keyed by field id
type IntakeSubmission struct {
	Responses map[string]interface{} `json:"responses" binding:"required"`
}

// IntakeSubmissionResponse reports the created participant
type IntakeSubmissionResponse struct {
	Success bool            `json:"success"`
	Type    ParticipantType `json:"type"`
	ID      string          `json:"id"`
}

// FormTemplateColumns is the column list matching ScanFormTemplate
const FormTemplateColumns = `id, organization_id, name, type, fields, created_at, updated_at`

// ScanFormTemplate scans a row selected with FormTemplateColumns
func ScanFormTemplate(row pgx.Row) (*FormTemplate, error) {
	var t FormTemplate
	err := row.Scan(
		&t.ID,
		&t.OrganizationID,
		&t.Name,
		&t.Type,
		&t.Fields,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if t.Fields == nil {
		t.Fields = []FormField{}
	}
	return &t, nil
}

// ScanFormTemplates scans all rows and closes them
func ScanFormTemplates(rows pgx.Rows) ([]*FormTemplate, error) {
	defer rows.Close()

	templates := []*FormTemplate{}
	for rows.Next() {
		t, err := ScanFormTemplate(rows)
		if err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return templates, nil
}
