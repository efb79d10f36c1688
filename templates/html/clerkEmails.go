package templates

import (
	"fmt"
	"strings"
)

// RenderApplicationSubmittedEmail builds the confirmation sent to a clerk right
// after signup
func RenderApplicationSubmittedEmail(fullName, employeeID string) (htmlContent, plainText string) {
	plainText = fmt.Sprintf(`Dear %s,

Your clerk account application has been received.

Your employee reference is %s. An administrator will review your application and you will be notified by email once a decision is made. Until then you can check your application status from the login page.

Kurup & Associates`, fullName, employeeID)

	htmlContent = RenderGenericEmail("Application Received", plainText)
	return htmlContent, plainText
}

// RenderApplicationDecisionEmail builds the approval or rejection notice. Any
// status other than approved reads as a rejection.
func RenderApplicationDecisionEmail(fullName, status string) (htmlContent, plainText string) {
	if status == "approved" {
		plainText = fmt.Sprintf(`Dear %s,

Your clerk account has been approved. You can now sign in to the case management office with the credentials you registered.

Kurup & Associates`, fullName)
		htmlContent = RenderGenericEmail("Application Approved", plainText)
		return htmlContent, plainText
	}

	plainText = fmt.Sprintf(`Dear %s,

We regret to inform you that your clerk account application was not approved at this time. If you believe this is in error, please contact the office administrator.

Kurup & Associates`, fullName)
	htmlContent = RenderGenericEmail("Application Update", plainText)
	return htmlContent, plainText
}

// RenderTicketReplyEmail builds the email sent when an administrator responds to a
// support ticket
func RenderTicketReplyEmail(subject, response string) (htmlContent, plainText string) {
	plainText = fmt.Sprintf(`An administrator has responded to your support ticket.

Ticket: %s

Response:
%s

You can view the full ticket history from the Help & Support page.

Kurup & Associates`, subject, response)

	htmlContent = RenderGenericEmail("Support Ticket Update", plainText)
	return htmlContent, plainText
}

// RenderAdminPasswordResetEmail builds the reset link email for the admin console
func RenderAdminPasswordResetEmail(resetURL string) (htmlContent, plainText string) {
	plainText = fmt.Sprintf(`A password reset was requested for your administrator account.

Open the link below to choose a new password. The link expires in one hour and can be used once.

%s

If you did not request this, you can safely ignore this email.

Kurup & Associates`, resetURL)

	htmlContent = RenderGenericEmail("Admin Password Reset", plainText)
	return htmlContent, plainText
}

// HearingLine is one row of the upcoming hearings digest
type HearingLine struct {
	CaseName string
	CaseNo   int
	CaseYear int
	NextDate string
}

// RenderHearingDigestEmail builds the daily digest of interim orders with hearing
// dates inside the reminder window
func RenderHearingDigestEmail(lines []HearingLine) (htmlContent, plainText string) {
	var b strings.Builder
	b.WriteString("The following matters have hearing dates coming up:\n\n")
	for _, l := range lines {
		b.WriteString(fmt.Sprintf("- %s %d/%d, next date %s\n", l.CaseName, l.CaseNo, l.CaseYear, l.NextDate))
	}
	b.WriteString("\nPlease make sure the case files are prepared.\n\nKurup & Associates")

	plainText = b.String()
	htmlContent = RenderGenericEmail("Upcoming Hearings", plainText)
	return htmlContent, plainText
}
