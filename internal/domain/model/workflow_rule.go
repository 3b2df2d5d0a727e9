package model

// Workflow rule action types.
const (
	RuleActionNotify          = "notify"
	RuleActionRequestDocument = "request_document"
	RuleActionSetField        = "set_field"
)

// Workflow rule condition operators.
const (
	RuleOpEq     = "eq"
	RuleOpNeq    = "neq"
	RuleOpGt     = "gt"
	RuleOpGte    = "gte"
	RuleOpLt     = "lt"
	RuleOpLte    = "lte"
	RuleOpExists = "exists"
)

// RuleTrigger matches a status transition. An empty FromStatus matches any
// origin status.
type RuleTrigger struct {
	FromStatus string `json:"from_status,omitempty"`
	ToStatus   string `json:"to_status"`
}

// RuleCondition is a predicate over the post-transition request.
type RuleCondition struct {
	Field string `json:"field"`
	Op    string `json:"op"`
	Value string `json:"value,omitempty"`
}

// RuleAction is a directive emitted when a rule fires.
type RuleAction struct {
	Type string `json:"type"`

	// notify
	Recipient string `json:"recipient,omitempty"` // actor ID or role
	Message   string `json:"message,omitempty"`

	// request_document
	DocumentName string `json:"document_name,omitempty"`
	DocumentType string `json:"document_type,omitempty"`
	Required     bool   `json:"required,omitempty"`

	// set_field
	Field string `json:"field,omitempty"`
	Value string `json:"value,omitempty"`
}

// WorkflowRule is a tenant-scoped trigger/condition/action definition. The
// core evaluates rules at transition time; it never mutates them.
type WorkflowRule struct {
	ID         string          `json:"id"`
	TenantID   string          `json:"tenant_id"`
	Name       string          `json:"name"`
	Enabled    bool            `json:"enabled"`
	Trigger    RuleTrigger     `json:"trigger"`
	Conditions []RuleCondition `json:"conditions,omitempty"`
	Actions    []RuleAction    `json:"actions"`
}
