package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ltorres832/AutoDealers-sub014/internal/application/dto"
	"github.com/ltorres832/AutoDealers-sub014/internal/domain/model"
	"github.com/ltorres832/AutoDealers-sub014/internal/domain/port"
	"github.com/ltorres832/AutoDealers-sub014/internal/domain/service"
	"github.com/ltorres832/AutoDealers-sub014/internal/domain/valueobject"
)

// TransitionRequestUseCase moves a request through its status lifecycle.
// On submission it also runs the approval scoring engine, and after any
// committed transition it evaluates the tenant's workflow rules and hands
// matched actions to the dispatcher. Rule and action failures never fail
// the transition.
type TransitionRequestUseCase struct {
	repo       port.RequestRepository
	ruleRepo   port.WorkflowRuleRepository
	sink       *EventSink
	scorer     *service.ApprovalScorer
	combiner   *service.CosignerCombiner
	engine     *service.RuleEngine
	dispatcher *ActionDispatcher
	clock      port.Clock
	logger     *slog.Logger
}

// NewTransitionRequestUseCase wires dependencies.
func NewTransitionRequestUseCase(
	repo port.RequestRepository,
	ruleRepo port.WorkflowRuleRepository,
	sink *EventSink,
	scorer *service.ApprovalScorer,
	combiner *service.CosignerCombiner,
	engine *service.RuleEngine,
	dispatcher *ActionDispatcher,
	clock port.Clock,
	logger *slog.Logger,
) *TransitionRequestUseCase {
	return &TransitionRequestUseCase{
		repo:       repo,
		ruleRepo:   ruleRepo,
		sink:       sink,
		scorer:     scorer,
		combiner:   combiner,
		engine:     engine,
		dispatcher: dispatcher,
		clock:      clock,
		logger:     logger,
	}
}

// Execute applies the transition and persists the result.
func (uc *TransitionRequestUseCase) Execute(ctx context.Context, req dto.TransitionRequestRequest) (dto.FIRequestResponse, error) {
	current, err := uc.repo.FindByID(ctx, req.TenantID, req.RequestID)
	if err != nil {
		return dto.FIRequestResponse{}, fmt.Errorf("load request: %w", err)
	}
	if err := checkVersion(current, req.Version); err != nil {
		return dto.FIRequestResponse{}, err
	}

	target, err := valueobject.NewRequestStatus(req.TargetStatus)
	if err != nil {
		return dto.FIRequestResponse{}, fmt.Errorf("parse target status: %w", err)
	}

	now := uc.clock.Now()
	fromStatus := current.Status().String()

	next, changed, err := current.TransitionTo(target, req.ActorID, req.Reason, now)
	if err != nil {
		return dto.FIRequestResponse{}, err
	}
	if !changed {
		return toRequestResponse(current), nil
	}

	// Submission triggers the scoring engine; the score travels with the
	// same write as the status change.
	if target.Equal(valueobject.RequestStatusSubmitted) {
		next = uc.applyScoring(next, now)
	}

	saved, err := uc.repo.Save(ctx, next)
	if err != nil {
		return dto.FIRequestResponse{}, fmt.Errorf("save request: %w", err)
	}
	uc.sink.publish(ctx, next)

	uc.evaluateRules(ctx, saved, service.Transition{
		From:    fromStatus,
		To:      target.String(),
		Reason:  req.Reason,
		ActorID: req.ActorID,
	})

	return toRequestResponse(saved), nil
}

func (uc *TransitionRequestUseCase) applyScoring(req model.FIRequest, now time.Time) model.FIRequest {
	score := uc.scorer.Score(req.CreditInfo(), req.Employment(), monthlyPaymentOf(req))
	next := req.WithApprovalScore(score, now)
	if cosigner, ok := next.Cosigner(); ok {
		combined := uc.combiner.Combine(score, cosigner)
		next = next.WithCombinedScore(combined.Score, now)
	}
	return next
}

func (uc *TransitionRequestUseCase) evaluateRules(ctx context.Context, req model.FIRequest, tr service.Transition) {
	rules, err := uc.ruleRepo.FindEnabledByTenant(ctx, req.TenantID())
	if err != nil {
		uc.logger.Error("load workflow rules",
			"tenant_id", req.TenantID(),
			"request_id", req.ID(),
			"error", err)
		return
	}
	actions := uc.engine.Evaluate(rules, tr, req)
	if len(actions) == 0 {
		return
	}
	uc.dispatcher.Dispatch(req.TenantID(), req.ID(), tr.ActorID, actions)
}

func monthlyPaymentOf(req model.FIRequest) decimal.Decimal {
	if calc, ok := req.Financing(); ok {
		return calc.MonthlyPayment
	}
	return decimal.Zero
}
