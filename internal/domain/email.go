package domain

// Mailer sends an email with both HTML and plain-text bodies.
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders a named email template into subject, HTML
// body, and text body.
type EmailTemplateRenderer interface {
	Render(templateName string, data interface{}) (subject, htmlBody, textBody string, err error)
}

// WelcomeEmailData is the template data for the admin welcome email.
type WelcomeEmailData struct {
	FirstName string
	Email     string
}
