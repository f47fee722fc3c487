package emails

import (
	"fmt"
	"html"
	"strconv"
	"strings"
	"time"

	"github.com/mentormatch/mentormatch-api/internal/models"
)

// Role selects which side of a match an e-mail is addressed to
type Role string

const (
	RoleMentor Role = "mentor"
	RoleMentee Role = "mentee"
)

const (
	defaultMentorTitle = "professional"
	defaultTagList     = "various areas"
	profileLinkPrompt  = "[Complete Your Profile]"
)

// Introduction renders the e-mail that introduces a mentee to their approved mentor
func Introduction(mentor *models.Mentor, mentee *models.Mentee, org *models.Organization) Email {
	bookingLinkSection := ""
	if mentor.BookingLink != "" {
		bookingLinkSection = fmt.Sprintf("\n%s has provided a booking link to make scheduling easier:\n%s",
			mentor.Name, mentor.BookingLink)
	}

	title := mentor.Title
	if title == "" {
		title = defaultMentorTitle
	}

	text := Render(introductionTemplate, map[string]string{
		"mentor_name":          mentor.Name,
		"mentee_name":          mentee.Name,
		"organization_name":    org.Name,
		"mentor_title":         title,
		"mentor_organization":  mentor.Company,
		"mentor_expertise":     joinTags(mentor.Expertise),
		"mentee_interests":     joinTags(mentee.Interests),
		"booking_link_section": bookingLinkSection,
	})

	subject := fmt.Sprintf("Introducing %s, your %s mentor", mentor.Name, org.Name)
	return newEmail(TemplateIntroduction, subject, text)
}

// FollowUp renders the reminder sent to a mentee after an introduction
func FollowUp(mentor *models.Mentor, mentee *models.Mentee, org *models.Organization) Email {
	bookingLinkSection := ""
	if mentor.BookingLink != "" {
		bookingLinkSection = fmt.Sprintf("\nFor your convenience, here is %s's booking link:\n%s",
			mentor.Name, mentor.BookingLink)
	}

	text := Render(followUpTemplate, map[string]string{
		"mentor_name":          mentor.Name,
		"mentee_name":          mentee.Name,
		"organization_name":    org.Name,
		"booking_link_section": bookingLinkSection,
	})

	subject := fmt.Sprintf("Following up on your introduction to %s", mentor.Name)
	return newEmail(TemplateFollowUp, subject, text)
}

// Feedback renders the post-session feedback request for one side of the match
func Feedback(role Role, mentor *models.Mentor, mentee *models.Mentee, org *models.Organization) Email {
	recipient, partner := mentee.Name, mentor.Name
	if role == RoleMentor {
		recipient, partner = mentor.Name, mentee.Name
	}

	text := Render(feedbackTemplate, map[string]string{
		"recipient_name":    recipient,
		"partner_name":      partner,
		"organization_name": org.Name,
	})

	subject := fmt.Sprintf("How was your session with %s?", partner)
	return newEmail(TemplateFeedback, subject, text)
}

// InvitationParams describes an invitation to join an organization's program
type InvitationParams struct {
	Organization  *models.Organization
	UserType      models.ParticipantType
	CustomMessage string
	ProfileLink   string
}

// Invitation renders the invitation e-mail for a prospective mentor or mentee
func Invitation(p InvitationParams) Email {
	template, name := menteeInvitationTemplate, TemplateMenteeInvitation
	if p.UserType == models.ParticipantMentor {
		template, name = mentorInvitationTemplate, TemplateMentorInvitation
	}

	customMessage := ""
	if msg := strings.TrimSpace(p.CustomMessage); msg != "" {
		customMessage = "\nPersonal message: \"" + msg + "\"\n"
	}

	profileLink := p.ProfileLink
	if profileLink == "" {
		profileLink = profileLinkPrompt
	}

	text := Render(template, map[string]string{
		"organization_name": p.Organization.Name,
		"custom_message":    customMessage,
		"profile_link":      profileLink,
	})

	subject := fmt.Sprintf("You're invited to join %s's mentorship program", p.Organization.Name)
	return newEmail(name, subject, text)
}

// MentorWelcome renders the e-mail sent when a mentor is approved
func MentorWelcome(mentor *models.Mentor, org *models.Organization, now time.Time) Email {
	return welcome(TemplateMentorWelcome, fmt.Sprintf("Welcome to %s's Mentor Program!", org.Name),
		mentorWelcomeBody, mentor.Name, org, now)
}

// MenteeWelcome renders the e-mail sent when a mentee is approved
func MenteeWelcome(mentee *models.Mentee, org *models.Organization, now time.Time) Email {
	return welcome(TemplateMenteeWelcome, fmt.Sprintf("Welcome to %s's Mentorship Program!", org.Name),
		menteeWelcomeBody, mentee.Name, org, now)
}

func welcome(name, subject, body, recipient string, org *models.Organization, now time.Time) Email {
	primary := org.PrimaryColor
	if primary == "" {
		primary = models.DefaultPrimaryColor
	}

	orgName := html.EscapeString(org.Name)
	renderedBody := Render(body, map[string]string{"organization_name": orgName})

	htmlBody := Render(welcomeLayout, map[string]string{
		"primary_color":     html.EscapeString(primary),
		"organization_name": orgName,
		"recipient_name":    html.EscapeString(recipient),
		"welcome_body":      renderedBody,
		"year":              strconv.Itoa(now.Year()),
	})

	text := fmt.Sprintf("Dear %s,\n\n%s\n\nBest regards,\nThe %s Team\n", recipient, subject, org.Name)

	return Email{
		Template: name,
		Subject:  subject,
		Text:     text,
		HTML:     htmlBody,
	}
}

func joinTags(tags []string) string {
	if len(tags) == 0 {
		return defaultTagList
	}
	return strings.Join(tags, ", ")
}
