// Package notify e-mails the clinic when patients book appointments or
// leave contact messages.
package notify

import (
	"context"
	"fmt"
	"strings"

	"clinic-cms/internal/model"
)

// Notifier informs clinic staff about new patient activity.
type Notifier interface {
	// AppointmentBooked reports a newly created appointment.
	AppointmentBooked(ctx context.Context, appt *model.Appointment) error

	// ContactReceived reports a newly submitted contact message.
	ContactReceived(ctx context.Context, msg *model.ContactSubmission) error
}

// Nop returns a Notifier that does nothing.
func Nop() Notifier {
	return nopNotifier{}
}

type nopNotifier struct{}

func (nopNotifier) AppointmentBooked(context.Context, *model.Appointment) error { return nil }

func (nopNotifier) ContactReceived(context.Context, *model.ContactSubmission) error { return nil }

// message is a rendered plain-text e-mail.
type message struct {
	subject string
	body    string
}

func appointmentMessage(a *model.Appointment) message {
	var b strings.Builder
	fmt.Fprintf(&b, "New %s request from %s\n\n", a.AppointmentType, a.Name)
	fmt.Fprintf(&b, "Email: %s\n", a.Email)
	fmt.Fprintf(&b, "Phone: %s\n", a.Phone)
	fmt.Fprintf(&b, "Preferred: %s %s\n", a.PreferredDate, a.PreferredTime)
	fmt.Fprintf(&b, "Condition: %s\n", a.Condition)
	if a.Message != nil && *a.Message != "" {
		fmt.Fprintf(&b, "\n%s\n", *a.Message)
	}
	fmt.Fprintf(&b, "\nAppointment ID: %s\n", a.ID)

	return message{
		subject: fmt.Sprintf("New appointment: %s on %s", a.Name, a.PreferredDate),
		body:    b.String(),
	}
}

func contactMessage(c *model.ContactSubmission) message {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s <%s>\n", c.Name, c.Email)
	fmt.Fprintf(&b, "Phone: %s\n\n", c.Phone)
	b.WriteString(c.Message)
	b.WriteString("\n")

	return message{
		subject: "Contact form: " + c.Subject,
		body:    b.String(),
	}
}
