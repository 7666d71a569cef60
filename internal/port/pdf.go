package port

import "gstbill/internal/domain"

// InvoiceRenderer renders an invoice into a printable PDF document.
type InvoiceRenderer interface {
	RenderInvoice(tenant *domain.Tenant, client *domain.Client, inv *domain.Invoice) ([]byte, error)
}
