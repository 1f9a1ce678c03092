package utils

import (
	"farmsync/config"
	"fmt"
	"log"
	"net/smtp"
)

// SendEmail sends an HTML email via SMTP. A no-op when EMAIL_SENDER is not
// configured, so local and test runs never touch the network.
func SendEmail(to []string, subject, body string) error {
	if config.AppConfig == nil || config.AppConfig.EmailSender == "" {
		return nil
	}

	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password // App password

	header := fmt.Sprintf("Subject: %s\nMIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n\n", subject)
	message := []byte(header + body)

	auth := smtp.PlainAuth("", from, password, smtpHost)

	if err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, message); err != nil {
		log.Printf("Error sending email to %v: %v", to, err)
		return err
	}

	return nil
}

// SendOrderPlacedEmail notifies a farmer that a buyer placed an order on
// one of their crops.
func SendOrderPlacedEmail(email, farmerName, cropName string, quantity float64, unit string) {
	subject := "New Order Received - FarmSync"
	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333333; text-align: center;">New Order on FarmSync</h2>
					<p style="font-size: 16px; color: #555555;">Dear %s,</p>
					<p style="font-size: 16px; color: #555555;">A buyer has requested <strong>%.2f %s</strong> of your crop <strong>%s</strong>.</p>
					<p style="font-size: 14px; color: #666666;">Log in to your dashboard to accept or reject this order.</p>
					<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 30px;">FarmSync Team</p>
				</div>
			</body>
		</html>
	`, farmerName, quantity, unit, cropName)

	go SendEmail([]string{email}, subject, body)
}

// SendOrderStatusEmail notifies a buyer that their order changed status.
func SendOrderStatusEmail(email, buyerName, cropName, status string) {
	subject := fmt.Sprintf("Your FarmSync Order is %s", status)
	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333333; text-align: center;">Order Update</h2>
					<p style="font-size: 16px; color: #555555;">Dear %s,</p>
					<p style="font-size: 16px; color: #555555;">Your order for <strong>%s</strong> is now <strong>%s</strong>.</p>
					<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 30px;">FarmSync Team</p>
				</div>
			</body>
		</html>
	`, buyerName, cropName, status)

	go SendEmail([]string{email}, subject, body)
}
