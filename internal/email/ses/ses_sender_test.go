package ses

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gstbill/internal/port"
)

func TestBuildRawMessage(t *testing.T) {
	s := &sesSender{fromAddress: "billing@acme.example", fromName: "Acme Traders"}
	msg := port.InvoiceEmail{
		ToAddress:     "accounts@globex.example",
		ToName:        "Globex",
		InvoiceNumber: "INV/2025-26/0007",
		GrandTotal:    "29500.00",
		PDF:           bytes.Repeat([]byte("%PDF-1.7 fake content "), 20),
	}

	raw, err := s.buildRawMessage(msg)
	require.NoError(t, err)
	body := string(raw)

	assert.Contains(t, body, "From: Acme Traders <billing@acme.example>")
	assert.Contains(t, body, "To: Globex <accounts@globex.example>")
	assert.Contains(t, body, "Subject: Invoice INV/2025-26/0007 from Acme Traders")
	assert.Contains(t, body, "Content-Type: multipart/mixed; boundary=")
	assert.Contains(t, body, "Please find attached invoice INV/2025-26/0007 for INR 29500.00")
	assert.Contains(t, body, "Content-Type: application/pdf")
	assert.Contains(t, body, "Content-Transfer-Encoding: base64")

	// Base64 body lines stay within the RFC 2045 limit.
	inPDF := false
	scanner := bufio.NewScanner(bytes.NewReader(raw))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.Contains(line, "Content-Transfer-Encoding: base64") {
			inPDF = true
			continue
		}
		if inPDF && line != "" && !strings.HasPrefix(line, "Content-") && !strings.HasPrefix(line, "--") {
			assert.LessOrEqual(t, len(line), 76)
		}
	}
	require.NoError(t, scanner.Err())
}
