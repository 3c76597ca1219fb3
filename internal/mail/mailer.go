package mail

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/rs/zerolog"
	gomail "gopkg.in/gomail.v2"

	"villagemart/internal/domain/notification"
)

// Config for the SMTP transport. An empty Host disables sending.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Mailer delivers "back in stock" emails. It satisfies
// notification.Mailer: every transport failure reduces to a boolean
// result plus a log line, so a mail outage can never abort a fan-out.
type Mailer struct {
	cfg    Config
	dialer *gomail.Dialer
	log    zerolog.Logger
}

func New(cfg Config, log zerolog.Logger) *Mailer {
	m := &Mailer{cfg: cfg, log: log}
	if cfg.Host != "" {
		m.dialer = gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	} else {
		log.Warn().Msg("SMTP host not configured, restock emails disabled")
	}
	return m
}

func (m *Mailer) SendRestockEmail(ctx context.Context, e notification.RestockEmail) bool {
	if m.dialer == nil {
		m.log.Debug().Str("to", e.To).Msg("restock email skipped, transport disabled")
		return false
	}

	body, err := renderRestockBody(e)
	if err != nil {
		m.log.Error().Err(err).Str("to", e.To).Msg("failed to render restock email")
		return false
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", e.To)
	msg.SetHeader("Subject", fmt.Sprintf("%s is Back in Stock!", e.ProductName))
	msg.SetBody("text/html", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		m.log.Error().Err(err).Str("to", e.To).Msg("failed to send restock email")
		return false
	}

	m.log.Info().Str("to", e.To).Str("product", e.ProductName).Msg("restock email sent")
	return true
}

var restockTmpl = template.Must(template.New("restock").Parse(`<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: #059669; color: white; padding: 30px; text-align: center; border-radius: 10px 10px 0 0; }
    .content { background: #f9fafb; padding: 30px; border-radius: 0 0 10px 10px; }
    .product-box { background: white; padding: 20px; border-radius: 8px; margin: 20px 0; border-left: 4px solid #10b981; }
    .button { display: inline-block; background: #10b981; color: white; padding: 12px 30px; text-decoration: none; border-radius: 5px; margin: 20px 0; }
    .footer { text-align: center; color: #6b7280; font-size: 12px; margin-top: 20px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>Great News!</h1>
      <p>The product you were waiting for is back in stock</p>
    </div>
    <div class="content">
      <p>Hi {{.Name}},</p>
      <p>We're excited to let you know that the product you subscribed to is now available!</p>

      <div class="product-box">
        <h2>{{.ProductName}}</h2>
        <p><strong>Price:</strong> &#8377;{{printf "%.2f" .Price}}</p>
        <p><strong>Available Stock:</strong> {{.Stock}} units</p>
        <p style="color: #10b981; font-weight: bold;">In Stock Now!</p>
      </div>

      <p>Don't wait too long - stock is limited!</p>

      <center>
        <a href="{{.Link}}" class="button">View Product Now</a>
      </center>

      <p>Thank you for shopping with Village Mart!</p>

      <div class="footer">
        <p>This is an automated notification because you subscribed to product availability alerts.</p>
        <p>Village Mart - Supporting Local Businesses</p>
      </div>
    </div>
  </div>
</body>
</html>
`))

func renderRestockBody(e notification.RestockEmail) (string, error) {
	var buf bytes.Buffer
	if err := restockTmpl.Execute(&buf, e); err != nil {
		return "", err
	}
	return buf.String(), nil
}
