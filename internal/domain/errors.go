package domain

import "errors"

var (
	ErrNotFound           = errors.New("resource not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTenantInactive     = errors.New("tenant is inactive")
	ErrUserInactive       = errors.New("user is inactive")
	ErrDuplicateEmail     = errors.New("email already exists for this tenant")
	ErrDuplicateSlug      = errors.New("tenant slug already exists")

	ErrInvalidGSTIN       = errors.New("GSTIN does not match the 15-character format")
	ErrInvalidPAN         = errors.New("PAN does not match the expected format")
	ErrInvalidDiscount    = errors.New("discount percent must be between 0 and 100")
	ErrNoLines            = errors.New("document must have at least one line")
	ErrDocumentNotDraft   = errors.New("document is not in draft status")
	ErrDocumentNotIssued  = errors.New("document is not in issued status")
	ErrDocumentCancelled  = errors.New("document has been cancelled")
	ErrInvoiceNotFound    = errors.New("invoice not found")
	ErrClientNotFound     = errors.New("client not found")
	ErrVendorNotFound     = errors.New("vendor not found")
	ErrClientMissingEmail = errors.New("client has no email address on record")

	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrUploadFailed        = errors.New("file upload to storage failed")
)
