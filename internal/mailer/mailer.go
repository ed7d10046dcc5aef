// Package mailer sends the subscription notification emails. Sending is
// fire-and-forget: a delivery failure is logged and recorded but never
// affects status computation.
package mailer

import (
	"fmt"
	"net/smtp"
	"os"

	"academy-backend/utils"
)

// Send delivers one plain-text mail through the configured SMTP relay.
func Send(to, subject, body string) error {
	host := os.Getenv("SMTP_HOST")
	port := os.Getenv("SMTP_PORT")
	user := os.Getenv("SMTP_USER")
	pass := os.Getenv("SMTP_PASS")
	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = user
	}
	if host == "" || port == "" || user == "" {
		return fmt.Errorf("SMTP environment variables missing")
	}

	addr := host + ":" + port
	auth := smtp.PlainAuth("", user, pass, host)
	msg := []byte(fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", from, to, subject, body))

	if err := smtp.SendMail(addr, auth, from, []string{to}, msg); err != nil {
		utils.LogError(err, "Error sending mail to "+to)
		return err
	}
	return nil
}

// SendExpiryNotice tells an organization its subscription lapsed past the
// grace period.
func SendExpiryNotice(to, orgName, endDate string, daysOverdue int) error {
	subject := fmt.Sprintf("Subscription for %s has expired", orgName)
	body := fmt.Sprintf(`Hello,

The subscription for %s expired %d days ago.

Subscription details:
- End date: %s
- Status: expired

Please renew as soon as possible to keep your services running.

Thank you,
Support team`, orgName, daysOverdue, endDate)
	return Send(to, subject, body)
}

// SendRenewalReminder warns an organization its subscription ends in
// daysLeft days. Callers fire it only at fixed thresholds (7/3/1).
func SendRenewalReminder(to, orgName, endDate string, daysLeft int) error {
	subject := fmt.Sprintf("Reminder: subscription for %s expires in %d days", orgName, daysLeft)
	body := fmt.Sprintf(`Hello,

The subscription for %s will expire in %d days.

Subscription details:
- End date: %s
- Days remaining: %d

Please renew before it expires to avoid any interruption.

Thank you,
Support team`, orgName, daysLeft, endDate, daysLeft)
	return Send(to, subject, body)
}
