package port

import "context"

// InvoiceEmail carries a rendered invoice PDF for delivery.
type InvoiceEmail struct {
	ToAddress     string
	ToName        string
	InvoiceNumber string
	GrandTotal    string
	PDF           []byte
}

// EmailSender defines the contract for sending invoice emails.
type EmailSender interface {
	SendInvoice(ctx context.Context, msg InvoiceEmail) error
}
