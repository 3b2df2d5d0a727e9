package adapter

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ltorres832/AutoDealers-sub014/internal/domain/model"
)

// StubDocumentValidator is a development/test adapter that returns a
// deterministic verdict derived from the document URL. It implements
// port.DocumentValidator.
type StubDocumentValidator struct{}

// NewStubDocumentValidator creates a new stub adapter.
func NewStubDocumentValidator() *StubDocumentValidator {
	return &StubDocumentValidator{}
}

// Validate hashes the URL into a confidence in [0.50, 1.00); verdicts at or
// above 0.75 pass. The same URL always yields the same verdict, which keeps
// test scenarios repeatable.
func (v *StubDocumentValidator) Validate(_ context.Context, documentURL, documentType string) (model.ValidationVerdict, error) {
	if documentURL == "" {
		return model.ValidationVerdict{}, fmt.Errorf("document URL is required")
	}

	h := sha256.Sum256([]byte(documentURL))
	num := binary.BigEndian.Uint32(h[:4])
	confidence := decimal.NewFromInt(int64(50 + num%50)).Div(decimal.NewFromInt(100))

	valid := confidence.GreaterThanOrEqual(decimal.NewFromFloat(0.75))
	notes := fmt.Sprintf("automated check for %s document", documentType)
	if !valid {
		notes = fmt.Sprintf("low confidence, manual review needed for %s document", documentType)
	}

	return model.ValidationVerdict{
		IsValid:    valid,
		Confidence: confidence,
		Notes:      notes,
	}, nil
}
