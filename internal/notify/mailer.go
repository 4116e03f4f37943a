package notify

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"
	"strings"

	"github.com/dheeraj4092/Bhuktafoods-Backend/internal/order"
)

// SMTPMailer sends plain-text order emails through one SMTP relay.
type SMTPMailer struct {
	Addr     string // host:port
	Username string
	Password string
	From     string
	AdminTo  string
}

func (m *SMTPMailer) OrderConfirmation(ctx context.Context, o *order.Order, recipient string) error {
	subject := fmt.Sprintf("Your order %s is confirmed", o.ID)
	body := orderSummary(o)
	return m.send(ctx, recipient, subject, body)
}

func (m *SMTPMailer) AdminAlert(ctx context.Context, o *order.Order) error {
	subject := fmt.Sprintf("New order %s (%s)", o.ID, o.TotalAmount)
	body := orderSummary(o)
	return m.send(ctx, m.AdminTo, subject, body)
}

func (m *SMTPMailer) send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var auth smtp.Auth
	if m.Username != "" {
		host, _, err := net.SplitHostPort(m.Addr)
		if err != nil {
			return fmt.Errorf("smtp addr: %w", err)
		}
		auth = smtp.PlainAuth("", m.Username, m.Password, host)
	}
	msg := strings.Join([]string{
		"From: " + m.From,
		"To: " + to,
		"Subject: " + subject,
		"",
		body,
	}, "\r\n")
	if err := smtp.SendMail(m.Addr, auth, m.From, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}

func orderSummary(o *order.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Order %s for %s\n\n", o.ID, o.ShippingAddress.Name)
	for _, it := range o.Items {
		fmt.Fprintf(&b, "  %d x %s (%s) @ %s\n", it.Quantity, it.Product.Name, it.QuantityUnit, it.Price)
	}
	fmt.Fprintf(&b, "\nTotal: %s\n", o.TotalAmount)
	fmt.Fprintf(&b, "Ship to: %s, %s %s\n", o.ShippingAddress.Address, o.ShippingAddress.City, o.ShippingAddress.ZipCode)
	return b.String()
}

// LogMailer stands in for SMTP in development; it only logs.
type LogMailer struct{ Log *slog.Logger }

func (m *LogMailer) logger() *slog.Logger {
	if m.Log != nil {
		return m.Log
	}
	return slog.Default()
}

func (m *LogMailer) OrderConfirmation(_ context.Context, o *order.Order, recipient string) error {
	m.logger().Info("order confirmation email (log only)", "order", o.ID, "to", recipient)
	return nil
}

func (m *LogMailer) AdminAlert(_ context.Context, o *order.Order) error {
	m.logger().Info("admin order alert (log only)", "order", o.ID, "total", o.TotalAmount)
	return nil
}
