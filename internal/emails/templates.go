package emails

// Template names, used as metric labels
const (
	TemplateIntroduction     = "introduction"
	TemplateFollowUp         = "follow_up"
	TemplateFeedback         = "feedback"
	TemplateMentorInvitation = "mentor_invitation"
	TemplateMenteeInvitation = "mentee_invitation"
	TemplateMentorWelcome    = "mentor_welcome"
	TemplateMenteeWelcome    = "mentee_welcome"
)

const introductionTemplate = `
Dear {{mentee_name}},

I am pleased to introduce you to {{mentor_name}}, who has agreed to be your mentor as part of {{organization_name}}'s mentorship program.

{{mentor_name}} is a {{mentor_title}} at {{mentor_organization}} with expertise in {{mentor_expertise}}. Based on your interests in {{mentee_interests}}, we believe this will be a valuable mentoring relationship.

{{booking_link_section}}

Please connect with {{mentor_name}} and arrange your first mentoring session. We recommend meeting within the next two weeks.

Best regards,
The {{organization_name}} Team
`

const followUpTemplate = `
Dear {{mentee_name}},

I hope this email finds you well. We recently connected you with {{mentor_name}} for mentorship.

We would like to know if you have scheduled a meeting with your mentor. If yes, please let us know when the session is planned. If not, please make arrangements soon to get the most out of this mentoring opportunity.

{{booking_link_section}}

Thank you for your participation in our mentorship program.

Best regards,
The {{organization_name}} Team
`

const feedbackTemplate = `
Dear {{recipient_name}},

Thank you for participating in our mentorship program at {{organization_name}}.

We hope your recent session with {{partner_name}} was valuable. We would appreciate your feedback to help us improve the program.

Please take a moment to rate your experience from 1 to 5 stars and provide any comments you may have.

Your feedback is valuable to us.

Best regards,
The {{organization_name}} Team
`

const mentorInvitationTemplate = `
Dear Mentor,

You have been invited to join {{organization_name}}'s mentorship program as a mentor.

We believe your expertise and experience would be valuable to entrepreneurs seeking guidance. Our platform makes it easy to connect with motivated mentees who match your skills and availability.

{{custom_message}}

To get started, please click the link below to complete your mentor profile:
{{profile_link}}

Thank you for considering this opportunity to make a difference.

Best regards,
The {{organization_name}} Team
`

const menteeInvitationTemplate = `
Dear Entrepreneur,

You have been invited to join {{organization_name}}'s mentorship program as a mentee.

Our platform connects you with experienced mentors who can provide guidance tailored to your needs and goals. This is a great opportunity to gain insights and support for your entrepreneurial journey.

{{custom_message}}

To get started, please click the link below to complete your profile:
{{profile_link}}

We look forward to helping you find the perfect mentor.

Best regards,
The {{organization_name}} Team
`

// welcomeLayout is HTML; every value substituted into it is escaped first
const welcomeLayout = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <div style="background-color: {{primary_color}}; padding: 20px; text-align: center;">
    <h1 style="color: white; margin: 0;">Welcome to {{organization_name}}!</h1>
  </div>
  <div style="padding: 20px; border: 1px solid #e5e7eb; border-top: none;">
    <p>Dear {{recipient_name}},</p>
    {{welcome_body}}
    <p>Best regards,<br>The {{organization_name}} Team</p>
  </div>
  <div style="background-color: #f3f4f6; padding: 10px; text-align: center; font-size: 12px; color: #6b7280;">
    <p>&copy; {{year}} {{organization_name}}. All rights reserved.</p>
  </div>
</div>`

const mentorWelcomeBody = `<p>We're delighted to welcome you as an approved mentor in the {{organization_name}} mentorship program!</p>
    <p>Your expertise and experience will be invaluable to our mentees who are eager to learn and grow. You are now visible in our mentor pool and may be matched with mentees based on skills and interests.</p>
    <p>Here's what you can expect next:</p>
    <ul>
      <li>You'll receive notifications when you're matched with a mentee</li>
      <li>You can review potential matches and schedule sessions</li>
      <li>You'll have access to resources to help make your mentoring effective</li>
    </ul>
    <p>Thank you for your commitment to supporting the next generation of entrepreneurs and professionals.</p>`

const menteeWelcomeBody = `<p>Welcome to the {{organization_name}} mentorship program! We're excited to have you join us as a mentee.</p>
    <p>Your application has been approved, and we're now working on finding the perfect mentor match for you based on your goals, interests, and requirements.</p>
    <p>Here's what happens next:</p>
    <ul>
      <li>You'll be notified when we've found a suitable mentor for you</li>
      <li>You'll be able to schedule your first mentoring session</li>
      <li>You'll gain access to additional resources to help you make the most of your mentorship</li>
    </ul>
    <p>We're committed to helping you grow and achieve your goals through this mentorship opportunity.</p>`
