package domain

// Mailer is the outbound notification channel. Callers treat a send
// failure as non-fatal: the triggering request still succeeds and the
// failure is logged.
type Mailer interface {
	SendEnrollmentConfirmation(enrollment *Enrollment) error
	SendEnrollmentStatusUpdate(enrollment *Enrollment, newStatus string) error
	SendTeacherInvitation(center *Center, teacherEmail string) error
}
