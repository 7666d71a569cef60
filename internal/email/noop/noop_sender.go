package noop

import (
	"context"
	"log"

	"gstbill/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that logs instead of sending.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendInvoice(_ context.Context, msg port.InvoiceEmail) error {
	log.Printf("[NOOP EMAIL] Invoice %s (INR %s) to %s <%s>, %d byte PDF",
		msg.InvoiceNumber, msg.GrandTotal, msg.ToName, msg.ToAddress, len(msg.PDF))
	return nil
}
