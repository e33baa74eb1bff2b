package notify

import (
	"fmt"
	"html"
	"strings"

	"github.com/Montsi0721/resturant-site/models"
)

// OrderEmail builds the admin notification for a newly created order.
func OrderEmail(o *models.Order, adminEmail string) Message {
	var b strings.Builder
	b.WriteString("<h2>New Order Received</h2>")
	fmt.Fprintf(&b, "<p><strong>Order ID:</strong> #%d</p>", o.ID)
	fmt.Fprintf(&b, "<p><strong>Customer:</strong> %s</p>", html.EscapeString(o.CustomerName))
	fmt.Fprintf(&b, "<p><strong>Email:</strong> %s</p>", html.EscapeString(o.CustomerEmail))
	fmt.Fprintf(&b, "<p><strong>Phone:</strong> %s</p>", html.EscapeString(o.CustomerPhone))
	fmt.Fprintf(&b, "<p><strong>Total Amount:</strong> $%.2f</p>", o.TotalAmount)
	b.WriteString("<h3>Order Items:</h3><ul>")
	for _, it := range o.Items {
		fmt.Fprintf(&b, "<li>%s - $%.2f x %d</li>", html.EscapeString(it.Name), it.Price, it.Quantity)
	}
	b.WriteString("</ul>")

	return Message{
		From:    o.CustomerEmail,
		To:      adminEmail,
		Subject: fmt.Sprintf("New Order #%d from %s", o.ID, o.CustomerName),
		HTML:    b.String(),
	}
}

// ContactEmail builds the admin notification for a contact form submission.
func ContactEmail(m *models.ContactMessage, adminEmail string) Message {
	var b strings.Builder
	b.WriteString("<h2>New Contact Message</h2>")
	fmt.Fprintf(&b, "<p><strong>From:</strong> %s</p>", html.EscapeString(m.Name))
	fmt.Fprintf(&b, "<p><strong>Email:</strong> %s</p>", html.EscapeString(m.Email))
	b.WriteString("<p><strong>Message:</strong></p>")
	fmt.Fprintf(&b, "<p>%s</p>", html.EscapeString(m.Message))

	return Message{
		From:    m.Email,
		To:      adminEmail,
		Subject: fmt.Sprintf("New Contact Message from %s", m.Name),
		HTML:    b.String(),
	}
}
