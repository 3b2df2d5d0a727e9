package usecase

import (
	"github.com/ltorres832/AutoDealers-sub014/internal/application/dto"
	"github.com/ltorres832/AutoDealers-sub014/internal/domain/model"
)

func toRequestResponse(req model.FIRequest) dto.FIRequestResponse {
	resp := dto.FIRequestResponse{
		ID:        req.ID(),
		TenantID:  req.TenantID(),
		ClientID:  req.ClientID(),
		CreatedBy: req.CreatedBy(),
		Status:    req.Status().String(),

		FirstName: req.PersonalInfo().FirstName,
		LastName:  req.PersonalInfo().LastName,
		Email:     req.PersonalInfo().Email,
		Phone:     req.PersonalInfo().Phone,

		Employer:       req.Employment().Employer,
		Position:       req.Employment().Position,
		MonthsEmployed: req.Employment().MonthsEmployed,
		MonthlyIncome:  req.Employment().MonthlyIncome,
		CreditRange:    req.CreditInfo().CreditRange.String(),

		SellerNotes:    req.SellerNotes(),
		FIManagerNotes: req.FIManagerNotes(),

		Version:   req.Version(),
		CreatedAt: req.CreatedAt(),
		UpdatedAt: req.UpdatedAt(),
	}

	if calc, ok := req.Financing(); ok {
		resp.Financing = toFinancingResponse(calc)
	}
	if score, ok := req.ApprovalScore(); ok {
		s := score.Score
		resp.ApprovalScore = &s
		resp.ApprovalBand = score.Band.String()
	}
	if combined, ok := req.CombinedScore(); ok {
		c := combined
		resp.CombinedScore = &c
	}
	if cosigner, ok := req.Cosigner(); ok {
		resp.Cosigner = &dto.CosignerResponse{
			ID:          cosigner.ID,
			Name:        cosigner.Name,
			CreditRange: cosigner.CreditInfo.CreditRange.String(),
			Status:      cosigner.Status.String(),
			AddedAt:     cosigner.AddedAt,
		}
	}
	for _, doc := range req.Documents() {
		resp.Documents = append(resp.Documents, toDocumentResponse(doc))
	}
	if submitted, ok := req.SubmittedAt(); ok {
		t := submitted
		resp.SubmittedAt = &t
	}
	if reviewed, ok := req.ReviewedAt(); ok {
		t := reviewed
		resp.ReviewedAt = &t
	}

	return resp
}

func toFinancingResponse(calc model.FinancingCalculation) *dto.FinancingResponse {
	return &dto.FinancingResponse{
		VehiclePrice:    calc.Terms.VehiclePrice,
		DownPayment:     calc.Terms.DownPayment,
		TradeInValue:    calc.Terms.TradeInValue,
		InterestRate:    calc.Terms.InterestRate,
		LoanTermMonths:  calc.Terms.LoanTermMonths,
		TaxRate:         calc.Terms.TaxRate,
		Fees:            calc.Terms.Fees,
		MonthlyPayment:  calc.MonthlyPayment,
		TotalInterest:   calc.TotalInterest,
		TotalAmount:     calc.TotalAmount,
		PrincipalAmount: calc.PrincipalAmount,
		DTIRatio:        calc.DTIRatio,
		Affordability:   calc.Affordability.String(),
	}
}

func toDocumentResponse(doc model.RequestedDocument) dto.DocumentResponse {
	resp := dto.DocumentResponse{
		ID:          doc.ID,
		Name:        doc.Name,
		Type:        doc.Type,
		Description: doc.Description,
		Required:    doc.Required,
		Status:      doc.Status.String(),
		URL:         doc.URL,
		RequestedAt: doc.RequestedAt,
	}
	if doc.Verdict != nil {
		valid := doc.Verdict.IsValid
		confidence := doc.Verdict.Confidence
		resp.IsValid = &valid
		resp.Confidence = &confidence
	}
	return resp
}

func toHistoryResponse(req model.FIRequest) dto.HistoryResponse {
	resp := dto.HistoryResponse{RequestID: req.ID()}
	for _, entry := range req.History() {
		resp.Entries = append(resp.Entries, dto.HistoryEntryResponse{
			ActorID:    entry.ActorID,
			Action:     entry.Action,
			FromStatus: entry.FromStatus,
			ToStatus:   entry.ToStatus,
			Timestamp:  entry.Timestamp,
			Notes:      entry.Notes,
		})
	}
	return resp
}
