// Package rollup computes budget status for construction jobs.
//
// A rollup joins the persisted budget lines of a job with the actual
// cost from the general ledger and the committed cost from subcontracts
// and purchase orders, resolves dynamic budget groups, and annotates
// every line with remaining budget, percent used and an over-budget
// flag. The computation is a pure function over a snapshot of the
// source data: running it twice on the same data yields the same
// result.
package rollup

import (
	"fmt"
	"sort"

	"github.com/buildledger/backend/internal/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Scope selects which cost sources contribute to the actual amounts.
type Scope uint8

const (
	// ScopeInteractive is used by the job budget editor. Actual cost
	// comes from posted journal entries only.
	ScopeInteractive Scope = iota

	// ScopeReport additionally counts paid invoices that are not linked
	// to a subcontract or purchase order as actual cost.
	ScopeReport
)

// LineKind classifies a budget status line.
type LineKind string

const (
	LineKindPlain LineKind = "plain"
	LineKindGroup LineKind = "group"
	LineKindChild LineKind = "child"
)

// Warning reports a data defect that degraded the rollup without
// aborting it.
type Warning struct {
	ResourceID uuid.UUID `json:"resourceId"` // ID of the resource the warning is about
	Message    string    `json:"message"`    // Human readable description
}

// StatusLine is one fully resolved line of a budget rollup.
//
// For group children, BudgetedAmount, Remaining and PercentUsed are the
// figures of the parent group, as children draw from a shared budget
// pool. Actual and Committed are always the line's own spend.
type StatusLine struct {
	ID             uuid.UUID       `json:"id"`                 // ID of the budget line
	JobID          uuid.UUID       `json:"jobId"`              // ID of the job
	CostCodeID     uuid.UUID       `json:"costCodeId"`         // ID of the cost code
	Code           string          `json:"code"`               // Cost code, e.g. "05.01"
	Description    string          `json:"description"`        // Description of the cost code
	Kind           LineKind        `json:"kind"`               // plain, group or child
	ParentID       *uuid.UUID      `json:"parentId,omitempty"` // ID of the group parent line, set on children
	BudgetedAmount decimal.Decimal `json:"budgetedAmount"`     // Budget of the line, or of the group for children
	Actual         decimal.Decimal `json:"actual"`             // Posted cost of this line
	Committed      decimal.Decimal `json:"committed"`          // Committed cost of this line
	Remaining      decimal.Decimal `json:"remaining"`          // Remaining budget, negative when over budget
	PercentUsed    decimal.Decimal `json:"percentUsed"`        // Used part of the budget in percent, rounded to 2 decimal places
	OverBudget     bool            `json:"overBudget"`         // Is the line (or its group) over budget?
}

// Totals sums a rollup over all lines. Group children are not counted
// into the budgeted amount as their budget is the parent's.
type Totals struct {
	Budgeted  decimal.Decimal `json:"budgeted"`
	Actual    decimal.Decimal `json:"actual"`
	Committed decimal.Decimal `json:"committed"`
	Remaining decimal.Decimal `json:"remaining"`
}

// Result is a fully resolved budget rollup.
type Result struct {
	Lines    []StatusLine `json:"lines"`
	Totals   Totals       `json:"totals"`
	Warnings []Warning    `json:"warnings"`
}

// line is a budget line with its spend attached, before group
// resolution.
type line struct {
	models.BudgetLine
	actual    decimal.Decimal
	committed decimal.Decimal
}

func (l line) spent() decimal.Decimal {
	return l.actual.Add(l.committed)
}

// group accumulates the children of one dynamic parent.
type group struct {
	parent    line
	spent     decimal.Decimal
	actual    decimal.Decimal
	committed decimal.Decimal
	children  []line
}

// Compute loads all cost sources for the job and produces the resolved
// budget status. jobID may be uuid.Nil to compute company-wide.
//
// A failed source read aborts the whole computation: financial figures
// are never silently zeroed. Local data defects (malformed cost
// distributions, orphaned parent references) degrade the affected
// resource and are reported in the result's warnings.
func Compute(src Source, jobID uuid.UUID, scope Scope) (Result, error) {
	budgetLines, err := src.BudgetLines(jobID)
	if err != nil {
		return Result{}, fmt.Errorf("loading budget lines: %w", err)
	}

	debits, err := src.JournalDebits(jobID)
	if err != nil {
		return Result{}, fmt.Errorf("loading journal debits: %w", err)
	}

	subcontracts, err := src.Subcontracts(jobID)
	if err != nil {
		return Result{}, fmt.Errorf("loading subcontracts: %w", err)
	}

	orders, err := src.PurchaseOrders(jobID)
	if err != nil {
		return Result{}, fmt.Errorf("loading purchase orders: %w", err)
	}

	actual := actualAmounts(debits)
	if scope == ScopeReport {
		invoices, err := src.UnlinkedPaidInvoices(jobID)
		if err != nil {
			return Result{}, fmt.Errorf("loading paid invoices: %w", err)
		}

		for key, amount := range invoiceAmounts(invoices) {
			actual.Add(key, amount)
		}
	}

	committed, warnings := committedAmounts(subcontracts, orders)

	result := resolve(budgetLines, actual, committed)
	result.Warnings = append(result.Warnings, warnings...)

	for _, warning := range result.Warnings {
		log.Warn().Str("resource-id", warning.ResourceID.String()).Msg(warning.Message)
	}

	return result, nil
}

// resolve normalizes the budget lines, resolves dynamic groups and
// computes the variance figures.
func resolve(budgetLines []models.BudgetLine, actual, committed AmountMap) Result {
	var result Result

	// Register all dynamic parents first so that children can be
	// matched against them regardless of row order
	groups := make(map[uuid.UUID]*group)
	for _, budgetLine := range budgetLines {
		if !budgetLine.IsDynamic {
			continue
		}

		groups[budgetLine.ID] = &group{
			parent: attach(budgetLine, actual, committed),
		}
	}

	var plain []line
	for _, budgetLine := range budgetLines {
		if budgetLine.IsDynamic {
			continue
		}

		l := attach(budgetLine, actual, committed)

		if budgetLine.ParentBudgetID != nil {
			g, ok := groups[*budgetLine.ParentBudgetID]
			if !ok {
				// The referenced parent does not exist, e.g. because it
				// was deleted after the child was created. The line
				// falls back to its own budget.
				result.Warnings = append(result.Warnings, Warning{
					ResourceID: budgetLine.ID,
					Message:    fmt.Sprintf("budget line %s references a dynamic group %s that does not exist, treating it as a plain line", budgetLine.ID, *budgetLine.ParentBudgetID),
				})

				plain = append(plain, l)
				continue
			}

			g.spent = g.spent.Add(l.spent())
			g.actual = g.actual.Add(l.actual)
			g.committed = g.committed.Add(l.committed)
			g.children = append(g.children, l)
			continue
		}

		plain = append(plain, l)
	}

	result.Lines = statusLines(plain, groups)
	result.Totals = totals(result.Lines)

	return result
}

// attach joins a budget line with its aggregated spend.
func attach(budgetLine models.BudgetLine, actual, committed AmountMap) line {
	key := CostKey{JobID: budgetLine.JobID, CostCodeID: budgetLine.CostCodeID}

	return line{
		BudgetLine: budgetLine,
		actual:     actual.Get(key),
		committed:  committed.Get(key),
	}
}

// statusLines produces the ordered, variance-annotated line list. Lines
// are ordered by cost code, with the children of a group directly after
// their parent.
func statusLines(plain []line, groups map[uuid.UUID]*group) []StatusLine {
	type entry struct {
		sortCode string
		lines    []StatusLine
	}

	entries := make([]entry, 0, len(plain)+len(groups))

	for _, l := range plain {
		remaining := l.BudgetedAmount.Sub(l.spent())

		entries = append(entries, entry{
			sortCode: l.CostCode.Code,
			lines: []StatusLine{{
				ID:             l.ID,
				JobID:          l.JobID,
				CostCodeID:     l.CostCodeID,
				Code:           l.CostCode.Code,
				Description:    l.CostCode.Description,
				Kind:           LineKindPlain,
				BudgetedAmount: l.BudgetedAmount,
				Actual:         l.actual,
				Committed:      l.committed,
				Remaining:      remaining,
				PercentUsed:    percentUsed(l.spent(), l.BudgetedAmount),
				OverBudget:     remaining.IsNegative(),
			}},
		})
	}

	for _, g := range groups {
		remaining := g.parent.BudgetedAmount.Sub(g.spent)
		overBudget := remaining.IsNegative()
		percent := percentUsed(g.spent, g.parent.BudgetedAmount)

		lines := []StatusLine{{
			ID:             g.parent.ID,
			JobID:          g.parent.JobID,
			CostCodeID:     g.parent.CostCodeID,
			Code:           g.parent.CostCode.Code,
			Description:    g.parent.CostCode.Description,
			Kind:           LineKindGroup,
			BudgetedAmount: g.parent.BudgetedAmount,
			Actual:         g.actual,
			Committed:      g.committed,
			Remaining:      remaining,
			PercentUsed:    percent,
			OverBudget:     overBudget,
		}}

		sort.Slice(g.children, func(i, j int) bool {
			return g.children[i].CostCode.Code < g.children[j].CostCode.Code
		})

		for _, child := range g.children {
			parentID := g.parent.ID

			// Children share the group's budget pool: the budget,
			// remaining and percent used columns show the group
			// figures, while actual and committed are the child's own.
			lines = append(lines, StatusLine{
				ID:             child.ID,
				JobID:          child.JobID,
				CostCodeID:     child.CostCodeID,
				Code:           child.CostCode.Code,
				Description:    child.CostCode.Description,
				Kind:           LineKindChild,
				ParentID:       &parentID,
				BudgetedAmount: g.parent.BudgetedAmount,
				Actual:         child.actual,
				Committed:      child.committed,
				Remaining:      remaining,
				PercentUsed:    percent,
				OverBudget:     overBudget,
			})
		}

		entries = append(entries, entry{
			sortCode: g.parent.CostCode.Code,
			lines:    lines,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].sortCode < entries[j].sortCode
	})

	lines := make([]StatusLine, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, e.lines...)
	}

	return lines
}

// totals sums the rollup. Children contribute their spend but not their
// budgeted amount, which is the parent's and already counted there.
func totals(lines []StatusLine) Totals {
	t := Totals{
		Budgeted:  decimal.Zero,
		Actual:    decimal.Zero,
		Committed: decimal.Zero,
		Remaining: decimal.Zero,
	}

	for _, l := range lines {
		if l.Kind != LineKindChild {
			t.Budgeted = t.Budgeted.Add(l.BudgetedAmount)
		}

		if l.Kind != LineKindGroup {
			t.Actual = t.Actual.Add(l.Actual)
			t.Committed = t.Committed.Add(l.Committed)
		}
	}

	t.Remaining = t.Budgeted.Sub(t.Actual).Sub(t.Committed)

	return t
}

// percentUsed returns how much of the budget is used in percent,
// rounded to 2 decimal places. A budget of zero is defined as 0% used
// regardless of spend, so that empty budget lines do not divide by
// zero.
func percentUsed(spent, budget decimal.Decimal) decimal.Decimal {
	if !budget.IsPositive() {
		return decimal.Zero
	}

	return spent.Div(budget).Mul(decimal.NewFromInt(100)).Round(2)
}
