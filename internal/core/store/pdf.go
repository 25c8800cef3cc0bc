package store

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/workerhousing/housing-client/internal/core/domain"
	"github.com/workerhousing/housing-client/internal/core/ports"
	"github.com/workerhousing/housing-client/internal/infrastructure/api"
	"github.com/workerhousing/housing-client/internal/payload"
)

// PDFService asks the backend to render documents and returns the URL where
// the file can be fetched. Rendering happens server-side; the client only
// carries the link.
type PDFService struct {
	tx  ports.Transport
	log zerolog.Logger
}

func NewPDFService(tx ports.Transport, log zerolog.Logger) *PDFService {
	return &PDFService{tx: tx, log: log}
}

// InvoicePDF generates the PDF for an invoice and returns its URL.
func (s *PDFService) InvoicePDF(ctx context.Context, id string) (string, error) {
	return s.generate(ctx, api.InvoicePDFPath(id), "generate invoice PDF")
}

// OrderReceipt generates the receipt for a grocery order and returns its URL.
func (s *PDFService) OrderReceipt(ctx context.Context, id string) (string, error) {
	return s.generate(ctx, api.OrderPDFPath(id), "generate order receipt")
}

func (s *PDFService) generate(ctx context.Context, path, op string) (string, error) {
	body, err := s.tx.Post(ctx, path, nil)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	url := payload.ExtractString(body, "pdfUrl")
	if url == "" {
		return "", fmt.Errorf("%s: %w", op, &domain.ServerError{Message: "no pdfUrl in server response"})
	}
	s.log.Info().Str("url", url).Msg("document generated")
	return url, nil
}
