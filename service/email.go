package service

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"strconv"
	texttemplate "text/template"

	"cafeteria_manager/config"

	"gopkg.in/gomail.v2"
)

type emailTemplate struct {
	subject *texttemplate.Template
	body    *template.Template
}

// The full set of templates the app can send. Asking for anything else is
// a programming error and Send fails immediately.
var emailTemplates = map[string]emailTemplate{
	"orderConfirmation": {
		subject: texttemplate.Must(texttemplate.New("subject").Parse(`Order Confirmation #{{.PublicCode}}`)),
		body: template.Must(template.New("body").Parse(`
<h1>Thank you for your order!</h1>
<p>Your order #{{.PublicCode}} has been confirmed.</p>
<h2>Order Details:</h2>
<ul>
{{range .Items}}  <li>{{.Quantity}}x {{.Name}} - ${{printf "%.2f" .Price}}</li>
{{end}}</ul>
<p><strong>Total: ${{printf "%.2f" .Total}}</strong></p>
<p>Show the pickup code at the counter when your order is ready.</p>`)),
	},
	"orderStatusUpdate": {
		subject: texttemplate.Must(texttemplate.New("subject").Parse(`Order #{{.PublicCode}} Status Update`)),
		body: template.Must(template.New("body").Parse(`
<h1>Order Status Update</h1>
<p>Your order #{{.PublicCode}} status has been updated to: {{.Status}}</p>`)),
	},
	"otpCode": {
		subject: texttemplate.Must(texttemplate.New("subject").Parse(`Your OTP Code`)),
		body: template.Must(template.New("body").Parse(`
<p>Your OTP code is <strong>{{.Code}}</strong>. It expires in 10 minutes.</p>`)),
	},
	"reservationConfirmation": {
		subject: texttemplate.Must(texttemplate.New("subject").Parse(`Reservation Confirmed`)),
		body: template.Must(template.New("body").Parse(`
<h1>Your reservation is confirmed</h1>
<p>We look forward to seeing your party of {{.PartySize}} on {{.Date.Format "02 Jan 2006"}} at {{.Time}}.</p>`)),
	},
}

// SMTPSender is what the Mailer needs from gomail; tests substitute a fake.
type SMTPSender interface {
	DialAndSend(m ...*gomail.Message) error
}

type Mailer struct {
	From   string
	Sender SMTPSender
}

func NewMailer() *Mailer {
	port, _ := strconv.Atoi(config.Config("SMTP_PORT"))
	dialer := gomail.NewDialer(
		config.Config("SMTP_HOST"),
		port,
		config.Config("SMTP_USERNAME"),
		config.Config("SMTP_PASSWORD"),
	)
	return &Mailer{From: config.Config("SMTP_FROM"), Sender: dialer}
}

// Send renders the named template against data and dispatches one message.
// Delivery failure is logged and returned; callers decide whether it matters.
func (m *Mailer) Send(to, templateName string, data any) error {
	tmpl, ok := emailTemplates[templateName]
	if !ok {
		return fmt.Errorf("unknown email template %q", templateName)
	}

	var subject bytes.Buffer
	if err := tmpl.subject.Execute(&subject, data); err != nil {
		return fmt.Errorf("render subject for %s: %w", templateName, err)
	}
	var body bytes.Buffer
	if err := tmpl.body.Execute(&body, data); err != nil {
		return fmt.Errorf("render body for %s: %w", templateName, err)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject.String())
	msg.SetBody("text/html", body.String())

	if err := m.Sender.DialAndSend(msg); err != nil {
		log.Printf("failed to send %s email to %s: %v", templateName, to, err)
		return err
	}

	log.Printf("Email sent: %s to %s", templateName, to)
	return nil
}
