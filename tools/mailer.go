package tools

import (
	"fmt"
	"io"

	gomail "gopkg.in/gomail.v2"
)

// Attachment es un adjunto en memoria (los DOCX generados nunca tocan disco
// antes de enviarse).
type Attachment struct {
	Name    string
	Content []byte
}

// SendMail envía un correo HTML vía SMTP con los adjuntos dados.
func SendMail(to, subject, htmlBody string, attachments ...Attachment) error {
	if conf.Mail.Host == "" {
		return fmt.Errorf("mailer: SMTP host no configurado")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", conf.Mail.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	for _, att := range attachments {
		content := att.Content
		m.Attach(att.Name, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(content)
			return err
		}))
	}

	d := gomail.NewDialer(conf.Mail.Host, conf.Mail.Port, conf.Mail.User, conf.Mail.Pass)
	return d.DialAndSend(m)
}

// SendAdminAlert envía una alerta al correo administrativo configurado.
func SendAdminAlert(subject, htmlBody string) error {
	if conf.Mail.AdminEmail == "" {
		return fmt.Errorf("mailer: admin_email no configurado")
	}
	return SendMail(conf.Mail.AdminEmail, subject, htmlBody)
}
