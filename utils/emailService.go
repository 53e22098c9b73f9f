package utils

import (
	"fmt"
	"log"
	"studybud/config"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

func sendEmail(toName, toEmail, subject, html string) error {
	from := mail.NewEmail("StudyBud", config.AppConfig.EmailSender)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", html)

	client := sendgrid.NewSendClient(config.AppConfig.SendgridKey)
	resp, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending email to %s: %v", toEmail, err)
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("Failed to send email to %s, response code: %d", toEmail, resp.StatusCode)
		return fmt.Errorf("failed to send email, code: %d", resp.StatusCode)
	}

	return nil
}

// SendWelcomeEmail sends a welcome email after signup
func SendWelcomeEmail(email, userName string) error {
	subject := "Welcome to StudyBud!"

	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 600px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px; box-shadow: 0 2px 8px rgba(0, 0, 0, 0.1);">
					<h2 style="color: #333333; text-align: center;">Welcome to StudyBud!</h2>
					<p style="font-size: 16px; color: #555555;">Dear %s,</p>
					<p style="font-size: 16px; color: #555555;">Your account is ready. Upload your study material to generate quizzes and flashcards, and start earning XP.</p>
					<p style="font-size: 14px; color: #999999; text-align: center; margin-top: 30px;">Happy Learning!</p>
					<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 20px;">StudyBud Team</p>
				</div>
			</body>
		</html>
	`, userName)

	return sendEmail(userName, email, subject, body)
}

// SendReviewReminderEmail notifies a user that flashcards are due for review
func SendReviewReminderEmail(email, userName string, dueCount int) error {
	subject := "Your flashcards are due for review"

	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 600px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px; box-shadow: 0 2px 8px rgba(0, 0, 0, 0.1);">
					<h2 style="color: #333333; text-align: center;">Time to review!</h2>
					<p style="font-size: 16px; color: #555555;">Dear %s,</p>
					<p style="font-size: 16px; color: #555555;">You have flashcards waiting for review today:</p>
					<h1 style="text-align: center; color: #4CAF50; font-size: 40px; margin: 20px 0;">%d</h1>
					<p style="font-size: 14px; color: #666666;">Reviewing on schedule is what makes spaced repetition work. A few minutes now goes a long way.</p>
					<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 30px;">StudyBud Team</p>
				</div>
			</body>
		</html>
	`, userName, dueCount)

	return sendEmail(userName, email, subject, body)
}
