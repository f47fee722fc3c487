package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/mentormatch/mentormatch-api/internal/emails"
	"github.com/mentormatch/mentormatch-api/internal/models"
	"github.com/mentormatch/mentormatch-api/internal/services"
	apperrors "github.com/mentormatch/mentormatch-api/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newMentorService() (*services.MentorService, *MockMentorStore, *MockOrganizationRepository, *MockSender) {
	mentors := new(MockMentorStore)
	orgs := new(MockOrganizationRepository)
	sender := new(MockSender)
	return services.NewMentorService(mentors, orgs, sender), mentors, orgs, sender
}

func TestMentorService_GetMentor_OtherOrganization(t *testing.T) {
	svc, mentors, _, _ := newMentorService()

	mentors.On("GetMentor", mock.Anything, testMentorID).
		Return(&models.Mentor{ID: testMentorID, OrganizationID: "org-2"}, nil).Once()

	mentor, err := svc.GetMentor(context.Background(), testOrgID, testMentorID)

	assert.Nil(t, mentor)
	assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
}

func TestMentorService_CreateMentor_DuplicateEmail(t *testing.T) {
	svc, mentors, orgs, _ := newMentorService()

	orgs.On("Get", mock.Anything, testOrgID).Return(&models.Organization{ID: testOrgID}, nil)
	mentors.On("CreateMentor", mock.Anything, mock.Anything).
		Return(nil, apperrors.ConflictError("a mentor with this email already exists")).Once()

	_, err := svc.CreateMentor(context.Background(), testOrgID, &models.CreateMentorRequest{
		Name:  "Sarah Chen",
		Email: "sarah@acme.org",
	})

	assert.True(t, apperrors.Is(err, apperrors.ErrConflict))
}

func TestMentorService_ApproveMentor_SendsWelcome(t *testing.T) {
	svc, mentors, orgs, sender := newMentorService()
	mentor := &models.Mentor{ID: testMentorID, OrganizationID: testOrgID, Name: "Sarah Chen", Email: "sarah@acme.org"}
	approved := *mentor
	approved.Approved = true

	mentors.On("GetMentor", mock.Anything, testMentorID).Return(mentor, nil).Once()
	mentors.On("ApproveMentor", mock.Anything, testMentorID).Return(&approved, nil).Once()
	orgs.On("Get", mock.Anything, testOrgID).Return(&models.Organization{ID: testOrgID, Name: "Acme"}, nil)
	sender.On("SendEmail", mock.Anything, sentTo("sarah@acme.org", emails.TemplateMentorWelcome)).Return(true, nil).Once()
	mentors.On("MarkMentorWelcomeEmailSent", mock.Anything, testMentorID).Return(true, nil).Once()

	resp, err := svc.ApproveMentor(context.Background(), testOrgID, testMentorID)

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.True(t, resp.WelcomeEmailSent)
	mentors.AssertExpectations(t)
	sender.AssertExpectations(t)
}

func TestMentorService_ApproveMentor_WelcomeAlreadySent(t *testing.T) {
	svc, mentors, _, sender := newMentorService()
	mentor := &models.Mentor{ID: testMentorID, OrganizationID: testOrgID, Approved: true, WelcomeEmailSent: true}

	mentors.On("GetMentor", mock.Anything, testMentorID).Return(mentor, nil).Once()
	mentors.On("ApproveMentor", mock.Anything, testMentorID).Return(mentor, nil).Once()

	resp, err := svc.ApproveMentor(context.Background(), testOrgID, testMentorID)

	require.NoError(t, err)
	assert.True(t, resp.WelcomeEmailSent)
	sender.AssertNotCalled(t, "SendEmail", mock.Anything, mock.Anything)
}

func TestMentorService_ApproveMentor_EmailFailure(t *testing.T) {
	svc, mentors, orgs, sender := newMentorService()
	mentor := &models.Mentor{ID: testMentorID, OrganizationID: testOrgID, Email: "sarah@acme.org"}

	mentors.On("GetMentor", mock.Anything, testMentorID).Return(mentor, nil).Once()
	mentors.On("ApproveMentor", mock.Anything, testMentorID).Return(mentor, nil).Once()
	orgs.On("Get", mock.Anything, testOrgID).Return(&models.Organization{ID: testOrgID, Name: "Acme"}, nil)
	sender.On("SendEmail", mock.Anything, mock.Anything).Return(false, errors.New("provider down")).Once()

	resp, err := svc.ApproveMentor(context.Background(), testOrgID, testMentorID)

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.False(t, resp.WelcomeEmailSent)
	mentors.AssertNotCalled(t, "MarkMentorWelcomeEmailSent", mock.Anything, mock.Anything)
}

func TestMenteeService_ApproveMentee_SendsWelcome(t *testing.T) {
	mentees := new(MockMenteeStore)
	orgs := new(MockOrganizationRepository)
	sender := new(MockSender)
	svc := services.NewMenteeService(mentees, orgs, sender)
	mentee := &models.Mentee{ID: testMenteeID, OrganizationID: testOrgID, Name: "Alex Kim", Email: "alex@acme.org"}

	mentees.On("GetMentee", mock.Anything, testMenteeID).Return(mentee, nil).Once()
	mentees.On("ApproveMentee", mock.Anything, testMenteeID).Return(mentee, nil).Once()
	orgs.On("Get", mock.Anything, testOrgID).Return(&models.Organization{ID: testOrgID, Name: "Acme"}, nil)
	sender.On("SendEmail", mock.Anything, sentTo("alex@acme.org", emails.TemplateMenteeWelcome)).Return(true, nil).Once()
	mentees.On("MarkMenteeWelcomeEmailSent", mock.Anything, testMenteeID).Return(true, nil).Once()

	resp, err := svc.ApproveMentee(context.Background(), testOrgID, testMenteeID)

	require.NoError(t, err)
	assert.True(t, resp.WelcomeEmailSent)
	mentees.AssertExpectations(t)
}
