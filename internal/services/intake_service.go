package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mentormatch/mentormatch-api/internal/models"
	"github.com/mentormatch/mentormatch-api/internal/repository"
	apperrors "github.com/mentormatch/mentormatch-api/pkg/errors"
	"github.com/mentormatch/mentormatch-api/pkg/logger"
	"github.com/mentormatch/mentormatch-api/pkg/metrics"
	"go.uber.org/zap"
)

// Field ids the intake normalizer maps onto participant records
const (
	fieldName                   = "name"
	fieldEmail                  = "email"
	fieldTitle                  = "title"
	fieldCompany                = "company"
	fieldBio                    = "bio"
	fieldIndustry               = "industry"
	fieldExpertise              = "expertise"
	fieldInterests              = "interests"
	fieldAvailability           = "availability"
	fieldPreferredMeetingFormat = "preferredMeetingFormat"
	fieldYearsOfExperience      = "yearsOfExperience"
	fieldBookingLink            = "bookingLink"
	fieldBackground             = "background"
	fieldGoals                  = "goals"
)

var intakeValidator = validator.New()

// IntakeService turns public form submissions into unapproved mentors and mentees
type IntakeService struct {
	templates repository.FormTemplateStore
	mentors   repository.MentorStore
	mentees   repository.MenteeStore
}

// NewIntakeService creates a new IntakeService
func NewIntakeService(templates repository.FormTemplateStore, mentors repository.MentorStore, mentees repository.MenteeStore) *IntakeService {
	return &IntakeService{
		templates: templates,
		mentors:   mentors,
		mentees:   mentees,
	}
}

// GetPublicForm returns a form for rendering on the public intake page
func (s *IntakeService) GetPublicForm(ctx context.Context, organizationID, formID string) (*models.FormTemplate, error) {
	template, err := s.templates.GetFormTemplate(ctx, formID)
	if err != nil {
		return nil, err
	}
	if template.OrganizationID != organizationID {
		return nil, apperrors.NotFoundError("form template")
	}
	return template, nil
}

// Submit validates responses against the form and creates the participant
func (s *IntakeService) Submit(ctx context.Context, organizationID, formID string, submission *models.IntakeSubmission) (*models.IntakeSubmissionResponse, error) {
	template, err := s.GetPublicForm(ctx, organizationID, formID)
	if err != nil {
		return nil, err
	}

	responses, err := normalizeResponses(template.Fields, submission.Responses)
	if err != nil {
		metrics.IntakeSubmissions.WithLabelValues(string(template.Type), "invalid").Inc()
		return nil, err
	}

	var id string
	switch template.Type {
	case models.ParticipantMentor:
		mentor, err := mentorFromResponses(organizationID, responses)
		if err != nil {
			metrics.IntakeSubmissions.WithLabelValues(string(template.Type), "invalid").Inc()
			return nil, err
		}
		created, err := s.mentors.CreateMentor(ctx, mentor)
		if err != nil {
			metrics.IntakeSubmissions.WithLabelValues(string(template.Type), "error").Inc()
			return nil, err
		}
		id = created.ID
	case models.ParticipantMentee:
		mentee, err := menteeFromResponses(organizationID, responses)
		if err != nil {
			metrics.IntakeSubmissions.WithLabelValues(string(template.Type), "invalid").Inc()
			return nil, err
		}
		created, err := s.mentees.CreateMentee(ctx, mentee)
		if err != nil {
			metrics.IntakeSubmissions.WithLabelValues(string(template.Type), "error").Inc()
			return nil, err
		}
		id = created.ID
	default:
		return nil, apperrors.InternalError(fmt.Sprintf("form template has unknown type %q", template.Type))
	}

	metrics.IntakeSubmissions.WithLabelValues(string(template.Type), "success").Inc()
	logger.Info("Intake submission accepted",
		zap.String("organization_id", organizationID),
		zap.String("form_template_id", formID),
		zap.String("type", string(template.Type)),
		zap.String("participant_id", id))

	return &models.IntakeSubmissionResponse{Success: true, Type: template.Type, ID: id}, nil
}

// intakeValues holds normalized responses: single values and lists by field id
type intakeValues struct {
	single map[string]string
	lists  map[string][]string
}

func (v intakeValues) str(id string) string {
	return v.single[id]
}

func (v intakeValues) list(id string) []string {
	if l, ok := v.lists[id]; ok {
		return l
	}
	return []string{}
}

// normalizeResponses checks every form field once and converts raw JSON values
// into strings and string lists. Responses for unknown field ids are dropped.
func normalizeResponses(fields []models.FormField, raw map[string]interface{}) (intakeValues, error) {
	values := intakeValues{
		single: make(map[string]string, len(fields)),
		lists:  make(map[string][]string),
	}

	for _, field := range fields {
		value := raw[field.ID]

		if field.Type.IsMultiValue() || isListField(field.ID) {
			list, ok := toStringList(value)
			if !ok {
				return values, apperrors.InvalidInputError(field.ID, "must be a list of strings")
			}
			if len(list) == 0 {
				if field.Required {
					return values, apperrors.InvalidInputError(field.ID, "is required")
				}
				continue
			}
			if field.Type.HasOptions() {
				for _, item := range list {
					if !field.HasOption(item) {
						return values, apperrors.InvalidInputError(field.ID, fmt.Sprintf("unknown option %q", item))
					}
				}
			}
			values.lists[field.ID] = list
			continue
		}

		str, ok := toString(value)
		if !ok {
			return values, apperrors.InvalidInputError(field.ID, "must be a single value")
		}
		if str == "" {
			if field.Required {
				return values, apperrors.InvalidInputError(field.ID, "is required")
			}
			continue
		}
		if field.Type.HasOptions() && !field.HasOption(str) {
			return values, apperrors.InvalidInputError(field.ID, fmt.Sprintf("unknown option %q", str))
		}
		if field.Type == models.FieldEmail || field.ID == fieldEmail {
			if err := intakeValidator.Var(str, "email"); err != nil {
				return values, apperrors.InvalidInputError(field.ID, "must be a valid email address")
			}
		}
		values.single[field.ID] = str
	}

	return values, nil
}

func isListField(id string) bool {
	return id == fieldExpertise || id == fieldInterests || id == fieldAvailability
}

func toString(v interface{}) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", true
	case string:
		return strings.TrimSpace(t), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(t), true
	default:
		return "", false
	}
}

// toStringList accepts a JSON array of strings or a comma separated string
func toStringList(v interface{}) ([]string, bool) {
	var items []string
	switch t := v.(type) {
	case nil:
		return []string{}, true
	case string:
		items = strings.Split(t, ",")
	case []interface{}:
		for _, item := range t {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			items = append(items, s)
		}
	case []string:
		items = t
	default:
		return nil, false
	}

	list := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	return list, true
}

func requireIdentity(v intakeValues) error {
	if v.str(fieldName) == "" {
		return apperrors.InvalidInputError(fieldName, "is required")
	}
	if v.str(fieldEmail) == "" {
		return apperrors.InvalidInputError(fieldEmail, "is required")
	}
	return nil
}

func meetingFormat(v intakeValues) (models.MeetingFormat, error) {
	format := models.MeetingFormat(strings.ToLower(v.str(fieldPreferredMeetingFormat)))
	switch format {
	case "", models.MeetingVirtual, models.MeetingInPerson, models.MeetingBoth:
		return format, nil
	}
	return "", apperrors.InvalidInputError(fieldPreferredMeetingFormat, fmt.Sprintf("unknown meeting format %q", format))
}

func mentorFromResponses(organizationID string, v intakeValues) (*models.Mentor, error) {
	if err := requireIdentity(v); err != nil {
		return nil, err
	}
	format, err := meetingFormat(v)
	if err != nil {
		return nil, err
	}

	req := models.CreateMentorRequest{
		Name:                   v.str(fieldName),
		Email:                  v.str(fieldEmail),
		Title:                  v.str(fieldTitle),
		Company:                v.str(fieldCompany),
		Bio:                    v.str(fieldBio),
		Industry:               v.str(fieldIndustry),
		Expertise:              v.list(fieldExpertise),
		Availability:           v.list(fieldAvailability),
		PreferredMeetingFormat: format,
		YearsOfExperience:      v.str(fieldYearsOfExperience),
		BookingLink:            v.str(fieldBookingLink),
	}
	return req.ToMentor(organizationID), nil
}

func menteeFromResponses(organizationID string, v intakeValues) (*models.Mentee, error) {
	if err := requireIdentity(v); err != nil {
		return nil, err
	}
	format, err := meetingFormat(v)
	if err != nil {
		return nil, err
	}

	req := models.CreateMenteeRequest{
		Name:                   v.str(fieldName),
		Email:                  v.str(fieldEmail),
		Background:             v.str(fieldBackground),
		Goals:                  v.str(fieldGoals),
		Industry:               v.str(fieldIndustry),
		Interests:              v.list(fieldInterests),
		Availability:           v.list(fieldAvailability),
		PreferredMeetingFormat: format,
	}
	return req.ToMentee(organizationID), nil
}
