package notifier

import (
	"fmt"

	"github.com/rs/zerolog/log"

	domain "github.com/Lis-Kacper/BeautySaloon/internal/domain/appointment"
	"github.com/Lis-Kacper/BeautySaloon/internal/models"
)

type Event struct {
	To          string
	Appointment models.Appointment
}

// Dispatcher queues confirmation e-mails and delivers them from a
// worker goroutine. Booking responses never wait on SMTP, and delivery
// failures are logged and swallowed.
type Dispatcher struct {
	sender Sender
	queue  chan Event
}

func NewDispatcher(sender Sender) *Dispatcher {
	d := &Dispatcher{
		sender: sender,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		subject, body := ConfirmationMessage(ev.Appointment)
		if err := d.sender.Send(ev.To, subject, body); err != nil {
			log.Error().Err(err).
				Str("to", ev.To).
				Uint("appointment_id", ev.Appointment.ID).
				Msg("failed to send confirmation email")
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
		// queued
	default:
		// queue full, drop the confirmation rather than block the API
		log.Warn().
			Str("to", ev.To).
			Msg("notification queue full, dropping event")
	}
}

// ConfirmationMessage renders the plain-text booking confirmation.
func ConfirmationMessage(ap models.Appointment) (subject, body string) {
	subject = "Booking confirmation - Beauty Salon"

	duration := int(ap.EndTime.Sub(ap.StartTime).Minutes())

	body = fmt.Sprintf(
		"Dear %s,\n\n"+
			"Your appointment has been confirmed:\n\n"+
			"  Service:       %s\n"+
			"  Date and time: %s\n"+
			"  Duration:      %d minutes\n\n"+
			"Address: Beauty Salon, ul. Piekna 10, Warszawa\n\n"+
			"If you need to change or cancel your appointment, please contact us.\n"+
			"Thank you for choosing our salon!\n",
		ap.Name,
		domain.Service(ap.Service).Label(),
		ap.StartTime.Format("Monday, 2 January 2006, 15:04"),
		duration,
	)

	return subject, body
}
