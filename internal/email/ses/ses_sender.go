package ses

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"mime/multipart"
	"net/textproto"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"gstbill/internal/port"
)

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
}

// NewSESSender creates a new SES-backed EmailSender.
func NewSESSender(region, fromAddress, fromName string) (port.EmailSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	client := sesv2.NewFromConfig(cfg)
	return &sesSender{
		client:      client,
		fromAddress: fromAddress,
		fromName:    fromName,
	}, nil
}

// SendInvoice sends the invoice PDF as a raw MIME message; the simple SES
// content type cannot carry attachments.
func (s *sesSender) SendInvoice(ctx context.Context, msg port.InvoiceEmail) error {
	raw, err := s.buildRawMessage(msg)
	if err != nil {
		return fmt.Errorf("building invoice email: %w", err)
	}

	_, err = s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		Content: &types.EmailContent{
			Raw: &types.RawMessage{Data: raw},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

func (s *sesSender) buildRawMessage(msg port.InvoiceEmail) ([]byte, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	subject := fmt.Sprintf("Invoice %s from %s", msg.InvoiceNumber, s.fromName)
	fmt.Fprintf(&buf, "From: %s <%s>\r\n", s.fromName, s.fromAddress)
	fmt.Fprintf(&buf, "To: %s <%s>\r\n", msg.ToName, msg.ToAddress)
	fmt.Fprintf(&buf, "Subject: %s\r\n", subject)
	fmt.Fprintf(&buf, "MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/mixed; boundary=%q\r\n\r\n", w.Boundary())

	textHeader := textproto.MIMEHeader{}
	textHeader.Set("Content-Type", "text/plain; charset=UTF-8")
	part, err := w.CreatePart(textHeader)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(part,
		"Dear %s,\r\n\r\nPlease find attached invoice %s for INR %s.\r\n\r\nRegards,\r\n%s\r\n",
		msg.ToName, msg.InvoiceNumber, msg.GrandTotal, s.fromName)

	pdfHeader := textproto.MIMEHeader{}
	pdfHeader.Set("Content-Type", "application/pdf")
	pdfHeader.Set("Content-Transfer-Encoding", "base64")
	pdfHeader.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", msg.InvoiceNumber+".pdf"))
	part, err = w.CreatePart(pdfHeader)
	if err != nil {
		return nil, err
	}
	encoded := base64.StdEncoding.EncodeToString(msg.PDF)
	// RFC 2045 line length limit.
	for len(encoded) > 76 {
		fmt.Fprintf(part, "%s\r\n", encoded[:76])
		encoded = encoded[76:]
	}
	fmt.Fprintf(part, "%s\r\n", encoded)

	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
