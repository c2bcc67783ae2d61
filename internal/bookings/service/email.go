package service

import (
	"fmt"
	"html"

	"reserva/internal/notify"
	"reserva/pkg/model"
)

var eventTypeLabels = map[string]string{
	model.EventTypeWedding:     "Wedding",
	model.EventTypeCorporate:   "Corporate Event",
	model.EventTypeBirthday:    "Birthday",
	model.EventTypeAnniversary: "Anniversary",
	model.EventTypeOther:       "Event",
}

func eventTypeLabel(eventType string) string {
	if label, ok := eventTypeLabels[eventType]; ok {
		return label
	}
	return "Event"
}

// calendarDescription denormalizes the booking into the event body so the
// calendar entry stays useful on its own, without a lookup back into the store.
func calendarDescription(b *model.Booking) string {
	desc := fmt.Sprintf(
		"Reference: %s\nClient: %s (%s, %s)\nDate: %s at %s (%d min)\nType: %s\nLocation: %s",
		b.ID,
		b.ClientName, b.ClientEmail, b.ClientPhone,
		b.EventDate, b.EventTime, b.DurationMin,
		eventTypeLabel(b.EventType),
		b.Location,
	)
	if b.Message != "" {
		desc += "\nNotes: " + b.Message
	}
	return desc
}

func clientConfirmation(b *model.Booking) notify.EmailMessage {
	body := fmt.Sprintf(
		`<p>Hi %s,</p>
<p>Your booking is confirmed.</p>
<ul>
<li><strong>Reference:</strong> %s</li>
<li><strong>Date:</strong> %s at %s</li>
<li><strong>Type:</strong> %s</li>
<li><strong>Location:</strong> %s</li>
</ul>
<p>Reply to this email if anything needs to change.</p>`,
		html.EscapeString(b.ClientName),
		html.EscapeString(b.ID),
		html.EscapeString(b.EventDate),
		html.EscapeString(b.EventTime),
		html.EscapeString(eventTypeLabel(b.EventType)),
		html.EscapeString(b.Location),
	)

	return notify.EmailMessage{
		To:      b.ClientEmail,
		ToName:  b.ClientName,
		Subject: fmt.Sprintf("Booking confirmed - %s %s", b.EventDate, b.EventTime),
		HTML:    body,
	}
}

func businessNotification(b *model.Booking, to string) notify.EmailMessage {
	body := fmt.Sprintf(
		`<p>New booking received.</p>
<ul>
<li><strong>Reference:</strong> %s</li>
<li><strong>Client:</strong> %s (%s, %s)</li>
<li><strong>Date:</strong> %s at %s</li>
<li><strong>Type:</strong> %s</li>
<li><strong>Location:</strong> %s</li>
<li><strong>Notes:</strong> %s</li>
</ul>`,
		html.EscapeString(b.ID),
		html.EscapeString(b.ClientName),
		html.EscapeString(b.ClientEmail),
		html.EscapeString(b.ClientPhone),
		html.EscapeString(b.EventDate),
		html.EscapeString(b.EventTime),
		html.EscapeString(eventTypeLabel(b.EventType)),
		html.EscapeString(b.Location),
		html.EscapeString(b.Message),
	)

	return notify.EmailMessage{
		To:      to,
		Subject: fmt.Sprintf("New booking: %s %s - %s", b.EventDate, b.EventTime, b.ClientName),
		HTML:    body,
	}
}
