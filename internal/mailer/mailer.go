package mailer

import (
	"fmt"
	"strconv"

	gomail "gopkg.in/gomail.v2"
)

type Mailer struct {
	host     string
	port     int
	from     string
	password string
}

func New(host, port, from, password string) (*Mailer, error) {
	p, err := strconv.Atoi(port)
	if err != nil {
		return nil, fmt.Errorf("mailer: bad SMTP_PORT %q: %w", port, err)
	}
	return &Mailer{host: host, port: p, from: from, password: password}, nil
}

// SendEntryPass emails the participant their entry ID with the QR PNG
// attached.
func (m *Mailer) SendEntryPass(toEmail, name, uid, qrPath string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", msg.FormatAddress(m.from, "AIC SOA"))
	msg.SetHeader("To", toEmail)
	msg.SetHeader("Subject", "AIC SOA 2026 | Your Entry QR Code")

	msg.SetBody("text/plain", fmt.Sprintf(`Dear %s,

Thank you for registering for the AIC-SOA program.

Your Entry ID: %s

Please show the attached QR code at the venue entrance.

Venue: SOA Convention Hall
Date: 7 Feb 2026

Regards,
AIC SOA Foundation
`, name, uid))

	msg.AddAlternative("text/html", fmt.Sprintf(`<html>
  <body style="font-family: Arial;">
    <h2>AI for Education 2026</h2>
    <p><strong>Policy &bull; Practice &bull; Future Pathways</strong></p>
    <p>Dear %s,</p>
    <p><strong>Entry ID:</strong> %s</p>
    <p>Your QR code is attached. Please do not share it.</p>
    <p>SOA Convention Hall<br/>7 Feb 2026</p>
    <p>Regards,<br/>AIC SOA Foundation</p>
  </body>
</html>`, name, uid))

	if qrPath != "" {
		msg.Attach(qrPath)
	}

	d := gomail.NewDialer(m.host, m.port, m.from, m.password)
	return d.DialAndSend(msg)
}
