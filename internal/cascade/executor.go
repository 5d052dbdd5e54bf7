package cascade

import (
	"fmt"

	"capstone-backend/internal/metrics"

	"gorm.io/gorm"
)

// Result reports how many rows each table lost
type Result struct {
	Root    Root
	Deleted map[string]int64
}

// Total returns the number of rows removed across all tables
func (r *Result) Total() int64 {
	var total int64
	for _, n := range r.Deleted {
		total += n
	}
	return total
}

// Merge folds another result into r
func (r *Result) Merge(other *Result) {
	if other == nil {
		return
	}
	for table, n := range other.Deleted {
		r.Deleted[table] += n
	}
}

// Record adds the deleted row counts to the cascade metrics. Call it only once
// the surrounding transaction has committed.
func (r *Result) Record() {
	for table, n := range r.Deleted {
		if n > 0 {
			metrics.CascadeRowsDeleted().WithLabelValues(string(r.Root), table).Add(float64(n))
		}
	}
}

// Executor applies plans on a transaction handle
type Executor struct {
	tx *gorm.DB
}

// NewExecutor creates an executor bound to tx. The handle is expected to be an
// open transaction so that a failing step leaves nothing behind.
func NewExecutor(tx *gorm.DB) *Executor {
	return &Executor{tx: tx}
}

// Run executes every step of the plan in order and stops at the first error
func (e *Executor) Run(plan Plan) (*Result, error) {
	result := &Result{Root: plan.Root, Deleted: make(map[string]int64, len(plan.Steps))}
	for _, s := range plan.Steps {
		res := e.tx.Where(s.Query, s.Args...).Delete(s.Model)
		if res.Error != nil {
			return nil, fmt.Errorf("failed to delete from %s for %s %s: %w", s.Table, plan.Root, plan.ID, res.Error)
		}
		result.Deleted[s.Table] += res.RowsAffected
	}
	return result, nil
}
