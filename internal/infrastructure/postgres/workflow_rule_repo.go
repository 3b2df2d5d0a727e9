package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ltorres832/AutoDealers-sub014/internal/domain/model"
)

// WorkflowRuleRepo implements port.WorkflowRuleRepository on PostgreSQL.
// Rules are provisioned out of band; this repository only reads them.
type WorkflowRuleRepo struct {
	pool *pgxpool.Pool
}

// NewWorkflowRuleRepo creates a repository backed by PostgreSQL.
func NewWorkflowRuleRepo(pool *pgxpool.Pool) *WorkflowRuleRepo {
	return &WorkflowRuleRepo{pool: pool}
}

// FindEnabledByTenant loads the tenant's enabled rules in creation order.
func (r *WorkflowRuleRepo) FindEnabledByTenant(ctx context.Context, tenantID string) ([]model.WorkflowRule, error) {
	query := `
		SELECT doc FROM workflow_rules
		WHERE tenant_id = $1 AND enabled
		ORDER BY created_at ASC
	`
	rows, err := r.pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("query workflow rules: %w", err)
	}
	defer rows.Close()

	var rules []model.WorkflowRule
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("scan workflow rule: %w", err)
		}
		var rule model.WorkflowRule
		if err := json.Unmarshal(doc, &rule); err != nil {
			return nil, fmt.Errorf("unmarshal workflow rule: %w", err)
		}
		rules = append(rules, rule)
	}
	return rules, rows.Err()
}
