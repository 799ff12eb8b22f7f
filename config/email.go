package config

import (
	"fmt"
	"kidfit/domain"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

type smtpMailer struct {
	dialer *gomail.Dialer
	sender string
}

// NewMailer builds the SMTP mailer from SMTP_* env. The dialer is
// constructed once; each send dials and closes its own connection.
func NewMailer() (domain.Mailer, error) {
	host, err := getRequired("SMTP_HOST")
	if err != nil {
		return nil, err
	}
	portStr, err := getRequired("SMTP_PORT")
	if err != nil {
		return nil, err
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %v", err)
	}
	sender, err := getRequired("EMAIL_SENDER")
	if err != nil {
		return nil, err
	}

	dialer := gomail.NewDialer(host, port, os.Getenv("SMTP_USERNAME"), os.Getenv("SMTP_PASSWORD"))

	return &smtpMailer{
		dialer: dialer,
		sender: sender,
	}, nil
}

func (m *smtpMailer) send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.sender)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}

// SendEnrollmentConfirmation mails the parent after a successful
// enrollment. The enrollment must come preloaded with Child.Parent.User
// and Schedule.Program.Center.User.
func (m *smtpMailer) SendEnrollmentConfirmation(e *domain.Enrollment) error {
	parent := e.Child.Parent.User
	center := e.Schedule.Program.Center
	scheduleInfo := fmt.Sprintf("%s %s", e.Schedule.DayName(), e.Schedule.TimeRange())

	statusLine := "Pending Approval"
	nextStep := "<li>Please wait for center approval. You'll receive another email once approved.</li>"
	if e.Status == domain.EnrollmentActive {
		statusLine = "Active"
		nextStep = "<li>Your enrollment is confirmed and classes can begin!</li>"
	}

	subject := fmt.Sprintf("Enrollment Confirmation - %s in %s", e.Child.Name, e.Schedule.Program.Name)
	body := fmt.Sprintf(`<html><body>
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <div style="background-color: #4f46e5; color: white; padding: 20px; text-align: center;"><h1>Enrollment Confirmation</h1></div>
  <div style="padding: 20px;">
    <p>Dear %s,</p>
    <p>Great news! Your child <strong>%s</strong> has been successfully enrolled in:</p>
    <div style="background-color: #f8fafc; padding: 15px; border-radius: 8px; margin: 20px 0;">
      <h3 style="color: #4f46e5; margin-top: 0;">%s</h3>
      <p><strong>Center:</strong> %s</p>
      <p><strong>Schedule:</strong> %s</p>
      <p><strong>Status:</strong> %s</p>
    </div>
    <p>What's next?</p>
    <ul>%s<li>Contact the center if you have any questions</li><li>Check your dashboard for enrollment details</li></ul>
    <div style="margin: 30px 0; padding: 15px; background-color: #e0f2fe; border-radius: 8px;">
      <h4>Center Contact Information:</h4>
      <p><strong>%s</strong></p>
      <p>%s</p>
      <p>Email: %s</p>
    </div>
    <p>Thank you for choosing KidFit Astana!</p>
    <div style="text-align: center; margin-top: 30px;">
      <a href="%s/parent/enrollments" style="background-color: #4f46e5; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px;">View My Enrollments</a>
    </div>
  </div>
  <div style="background-color: #f1f5f9; padding: 15px; text-align: center; color: #64748b;"><p>KidFit Astana - Connecting families with quality education</p></div>
</div>
</body></html>`,
		parent.Name, e.Child.Name, e.Schedule.Program.Name, center.CenterName, scheduleInfo, statusLine,
		nextStep, center.CenterName, center.Address, center.User.Email, GetBaseURL())

	return m.send(parent.Email, subject, body)
}

// SendEnrollmentStatusUpdate mails the parent when a center changes the
// enrollment status.
func (m *smtpMailer) SendEnrollmentStatusUpdate(e *domain.Enrollment, newStatus string) error {
	parent := e.Child.Parent.User

	title, message, color := "Enrollment Status Updated",
		fmt.Sprintf("Your enrollment status has been updated to %s.", newStatus), "#6b7280"
	switch newStatus {
	case domain.EnrollmentActive:
		title, message, color = "Enrollment Approved!", "Your enrollment has been approved and is now active.", "#10b981"
	case domain.EnrollmentCancelled:
		title, message, color = "Enrollment Cancelled", "Your enrollment has been cancelled.", "#ef4444"
	case domain.EnrollmentPaused:
		title, message, color = "Enrollment Paused", "Your enrollment has been temporarily paused.", "#f59e0b"
	}

	subject := fmt.Sprintf("%s - %s in %s", title, e.Child.Name, e.Schedule.Program.Name)
	body := fmt.Sprintf(`<html><body>
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <div style="background-color: %s; color: white; padding: 20px; text-align: center;"><h1>%s</h1></div>
  <div style="padding: 20px;">
    <p>Dear %s,</p>
    <p>%s</p>
    <div style="background-color: #f8fafc; padding: 15px; border-radius: 8px; margin: 20px 0;">
      <h3 style="color: #4f46e5; margin-top: 0;">%s</h3>
      <p><strong>Child:</strong> %s</p>
      <p><strong>Center:</strong> %s</p>
      <p><strong>New Status:</strong> %s</p>
    </div>
    <p>If you have any questions about this status change, please contact the center directly.</p>
    <div style="text-align: center; margin-top: 30px;">
      <a href="%s/parent/enrollments" style="background-color: #4f46e5; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px;">View My Enrollments</a>
    </div>
  </div>
  <div style="background-color: #f1f5f9; padding: 15px; text-align: center; color: #64748b;"><p>KidFit Astana - Connecting families with quality education</p></div>
</div>
</body></html>`,
		color, title, parent.Name, message, e.Schedule.Program.Name, e.Child.Name,
		e.Schedule.Program.Center.CenterName, newStatus, GetBaseURL())

	return m.send(parent.Email, subject, body)
}

// SendTeacherInvitation mails a prospective teacher the center's invite
// code and the registration link.
func (m *smtpMailer) SendTeacherInvitation(center *domain.Center, teacherEmail string) error {
	description := center.Description
	if description == "" {
		description = "A quality education center focused on providing excellent programs for children and teenagers."
	}

	subject := fmt.Sprintf("Invitation to Join %s as a Teacher", center.CenterName)
	body := fmt.Sprintf(`<html><body>
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <div style="background-color: #10b981; color: white; padding: 20px; text-align: center;"><h1>Teacher Invitation</h1></div>
  <div style="padding: 20px;">
    <p>Hello!</p>
    <p>You've been invited to join <strong>%s</strong> as a teacher on the KidFit Astana platform.</p>
    <div style="background-color: #f0fdf4; padding: 15px; border-radius: 8px; margin: 20px 0; text-align: center;">
      <h3 style="color: #10b981; margin-top: 0;">Your Invite Code</h3>
      <div style="font-size: 24px; font-weight: bold; color: #059669; letter-spacing: 2px;">%s</div>
    </div>
    <p>To complete your registration:</p>
    <ol><li>Visit the teacher registration page</li><li>Enter the invite code above</li><li>Fill in your details</li><li>Start teaching!</li></ol>
    <div style="margin: 30px 0; padding: 15px; background-color: #eff6ff; border-radius: 8px;">
      <h4>About %s:</h4>
      <p>%s</p>
      <p><strong>Location:</strong> %s</p>
    </div>
    <div style="text-align: center; margin-top: 30px;">
      <a href="%s/auth/register/teacher" style="background-color: #10b981; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px;">Register as Teacher</a>
    </div>
  </div>
  <div style="background-color: #f1f5f9; padding: 15px; text-align: center; color: #64748b;"><p>KidFit Astana - Empowering educators and students</p></div>
</div>
</body></html>`,
		center.CenterName, center.InviteCode, center.CenterName, description, center.Address, GetBaseURL())

	return m.send(teacherEmail, subject, body)
}
