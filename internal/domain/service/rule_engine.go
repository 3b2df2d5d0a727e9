package service

import (
	"github.com/shopspring/decimal"

	"github.com/ltorres832/AutoDealers-sub014/internal/domain/model"
)

// Transition describes a status change that just happened, handed to the
// rule engine for evaluation.
type Transition struct {
	From    string
	To      string
	Reason  string
	ActorID string
}

// RuleEngine evaluates tenant workflow rules against a completed
// transition. It only emits action directives; executing them is the
// dispatcher's job, and a failed action never affects the transition.
type RuleEngine struct{}

// NewRuleEngine creates a rule engine.
func NewRuleEngine() *RuleEngine {
	return &RuleEngine{}
}

// Evaluate returns the actions of every enabled rule whose trigger matches
// the transition and whose conditions all hold against the post-transition
// request. Rules are evaluated in the order given.
func (e *RuleEngine) Evaluate(rules []model.WorkflowRule, tr Transition, req model.FIRequest) []model.RuleAction {
	var actions []model.RuleAction
	for _, rule := range rules {
		if !rule.Enabled {
			continue
		}
		if !triggerMatches(rule.Trigger, tr) {
			continue
		}
		if !conditionsHold(rule.Conditions, req) {
			continue
		}
		actions = append(actions, rule.Actions...)
	}
	return actions
}

func triggerMatches(trigger model.RuleTrigger, tr Transition) bool {
	if trigger.ToStatus != tr.To {
		return false
	}
	return trigger.FromStatus == "" || trigger.FromStatus == tr.From
}

func conditionsHold(conditions []model.RuleCondition, req model.FIRequest) bool {
	for _, cond := range conditions {
		if !evaluateCondition(cond, req) {
			return false
		}
	}
	return true
}

// evaluateCondition resolves the condition's field off the request and
// applies the operator. Unknown fields and unknown operators evaluate to
// false so a malformed rule never fires.
func evaluateCondition(cond model.RuleCondition, req model.FIRequest) bool {
	value, ok := fieldValue(cond.Field, req)
	if cond.Op == model.RuleOpExists {
		return ok
	}
	if !ok {
		return false
	}

	switch v := value.(type) {
	case string:
		return compareString(v, cond.Op, cond.Value)
	case bool:
		return compareString(boolString(v), cond.Op, cond.Value)
	case decimal.Decimal:
		target, err := decimal.NewFromString(cond.Value)
		if err != nil {
			return false
		}
		return compareNumeric(v, cond.Op, target)
	default:
		return false
	}
}

// fieldValue resolves a condition field name to its current value. The
// second return is false when the field is unset on this request.
func fieldValue(field string, req model.FIRequest) (any, bool) {
	switch field {
	case "status":
		return req.Status().String(), true
	case "approvalScore":
		score, ok := req.ApprovalScore()
		if !ok {
			return nil, false
		}
		return decimal.NewFromInt(int64(score.Score)), true
	case "combinedScore":
		score, ok := req.CombinedScore()
		if !ok {
			return nil, false
		}
		return decimal.NewFromInt(int64(score)), true
	case "dtiRatio":
		calc, ok := req.Financing()
		if !ok || calc.DTIRatio == nil {
			return nil, false
		}
		return *calc.DTIRatio, true
	case "affordability":
		calc, ok := req.Financing()
		if !ok || calc.Affordability.IsZero() {
			return nil, false
		}
		return calc.Affordability.String(), true
	case "hasCosigner":
		_, ok := req.Cosigner()
		return ok, true
	case "requiredDocsValid":
		return req.AllRequiredDocumentsValid(), true
	default:
		return nil, false
	}
}

func compareString(value, op, target string) bool {
	switch op {
	case model.RuleOpEq:
		return value == target
	case model.RuleOpNeq:
		return value != target
	default:
		return false
	}
}

func compareNumeric(value decimal.Decimal, op string, target decimal.Decimal) bool {
	switch op {
	case model.RuleOpEq:
		return value.Equal(target)
	case model.RuleOpNeq:
		return !value.Equal(target)
	case model.RuleOpGt:
		return value.GreaterThan(target)
	case model.RuleOpGte:
		return value.GreaterThanOrEqual(target)
	case model.RuleOpLt:
		return value.LessThan(target)
	case model.RuleOpLte:
		return value.LessThanOrEqual(target)
	default:
		return false
	}
}

func boolString(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
