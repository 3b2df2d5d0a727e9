package model

import (
	"time"

	"github.com/ltorres832/AutoDealers-sub014/internal/domain/valueobject"
)

// Cosigner is the optional second applicant embedded in a request. At most
// one co-signer per request.
type Cosigner struct {
	ID         string                     `json:"id"`
	Name       string                     `json:"name"`
	CreditInfo CreditInfo                 `json:"credit_info"`
	Status     valueobject.CosignerStatus `json:"status"`
	AddedAt    time.Time                  `json:"added_at"`
}
