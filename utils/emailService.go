package utils

import (
	"fmt"
	"net/smtp"
	"strings"

	"pnexus/config"
)

// Generic Send Email
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: PNexus Tech <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		fmt.Println("Error sending email:", err)
		return err
	}
	return nil
}

func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #0B1C3F; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #0B1C3F; line-height: 1.6; }
			.content h2 { color: #0B1C3F; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #35B37E; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>PNEXUS TECH</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 PNexus Tech. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// --- Triggers ---

// SendRegistrationReceivedEmail confirms a submitted application.
func SendRegistrationReceivedEmail(email, name string) {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>We received your bootcamp registration and payment screenshot. Our team
		verifies payments manually, so please allow up to 24 hours.</p>
		<div class="info-box">You will get another email once your registration is approved.</div>
	`, name)
	SendEmail([]string{email}, "Registration received", getEmailTemplate("Registration received", body))
}

// SendRegistrationApprovedEmail tells an applicant they can sign up.
func SendRegistrationApprovedEmail(email, name string) {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Your payment has been verified and your registration is approved. You can
		now create your student account with this email address and log in to the
		student dashboard.</p>
	`, name)
	SendEmail([]string{email}, "Welcome to PNexus Tech!", getEmailTemplate("Registration approved", body))
}

// SendRegistrationRejectedEmail tells an applicant their payment could not be verified.
func SendRegistrationRejectedEmail(email, name, reason string) {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Unfortunately we could not verify your registration payment.</p>
		<div class="info-box">Reason: %s</div>
		<p>Please reply to this email if you believe this is a mistake.</p>
	`, name, reason)
	SendEmail([]string{email}, "Registration update", getEmailTemplate("Registration not approved", body))
}
