package plan

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"reelplan/internal/shot"
	"reelplan/internal/vrd"
)

// topToolCount limits the primary-tools ranking in the workflow summary.
const topToolCount = 3

// Planner folds per-shot tool selection into a complete production plan.
type Planner struct {
	selector *Selector
	newID    func() string
	now      func() time.Time
	logger   *slog.Logger
}

// Option customizes a Planner.
type Option func(*Planner)

// WithIDFunc substitutes the plan ID source.
func WithIDFunc(fn func() string) Option {
	return func(p *Planner) { p.newID = fn }
}

// WithClock substitutes the timestamp source.
func WithClock(fn func() time.Time) Option {
	return func(p *Planner) { p.now = fn }
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Planner) { p.logger = logger }
}

// NewPlanner returns a Planner selecting from the given catalog.
func NewPlanner(catalog Catalog, opts ...Option) *Planner {
	p := &Planner{
		selector: NewSelector(catalog),
		newID:    func() string { return "plan_" + uuid.NewString() },
		now:      time.Now,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Build computes the production plan for every shot in the list. Each shot
// gets a recommended workflow under the given constraints plus a budget-tier
// alternative, kept only when its total cost differs from the recommendation.
func (p *Planner) Build(list *shot.List, constraints Constraints, mode vrd.Mode) *ProductionPlan {
	shotPlans := make([]ShotPlan, 0, len(list.Shots))
	totalCost := 0.0
	totalTime := 0
	toolsUsed := map[string]float64{}

	budget := constraints
	budget.QualityPriority = TierBudget

	for _, sh := range list.Shots {
		recommended := p.selector.Workflow(sh, constraints)
		alternative := p.selector.Workflow(sh, budget)

		alternatives := []Workflow{}
		if alternative.TotalCost != recommended.TotalCost {
			alternatives = append(alternatives, alternative)
		}

		shotPlans = append(shotPlans, ShotPlan{
			ShotID:              sh.ShotID,
			ShotDescription:     fmt.Sprintf("%s - %ds", sh.ShotType, sh.DurationSeconds),
			RecommendedWorkflow: recommended,
			AlternativeWorkflows: alternatives,
			ProductionNotes: []string{
				fmt.Sprintf("Shot complexity: %d/10", sh.Technical.ComplexityScore),
				fmt.Sprintf("Estimated generation: %ds", recommended.TotalTimeSeconds),
				fmt.Sprintf("Tool: %s", recommended.Steps[0].Tool),
			},
		})

		totalCost += recommended.TotalCost
		totalTime += recommended.TotalTimeSeconds
		for _, step := range recommended.Steps {
			toolsUsed[step.Tool] += step.CostUSD
		}
	}

	workflowTypes := map[string]int{
		WorkflowTextToVideo:  0,
		WorkflowImageToVideo: 0,
		WorkflowVideoToVideo: 0,
	}
	maxShotTime := 0
	for _, sp := range shotPlans {
		workflowTypes[sp.RecommendedWorkflow.Steps[0].WorkflowType]++
		for _, step := range sp.RecommendedWorkflow.Steps {
			if step.WorkflowType == WorkflowVideoToVideo {
				workflowTypes[WorkflowVideoToVideo]++
			}
		}
		if sp.RecommendedWorkflow.TotalTimeSeconds > maxShotTime {
			maxShotTime = sp.RecommendedWorkflow.TotalTimeSeconds
		}
	}

	result := &ProductionPlan{
		ProductionPlanID:          p.newID(),
		ShotListRef:               list.ShotListID,
		Mode:                      mode,
		TotalEstimatedCostUSD:     round2(totalCost),
		TotalEstimatedTimeMinutes: round1(float64(totalTime) / 60),
		ShotPlans:                 shotPlans,
		WorkflowSummary: WorkflowSummary{
			TotalUniqueTools: len(toolsUsed),
			PrimaryTools:     topTools(toolsUsed, topToolCount),
			WorkflowTypes:    workflowTypes,
		},
		CostBreakdown: CostBreakdown{ByTool: toolsUsed},
		Timeline: TimelineEstimate{
			ParallelGeneration:    true,
			SequentialTimeMinutes: round1(float64(totalTime) / 60),
			ParallelTimeMinutes:   round1(float64(maxShotTime) / 60),
			PostProcessingMinutes: postProcessingMinutes,
		},
		CreatedAt: p.now().UTC().Format(time.RFC3339),
	}

	p.logger.Debug("production plan built",
		"plan_id", result.ProductionPlanID,
		"shots", len(shotPlans),
		"total_cost_usd", result.TotalEstimatedCostUSD,
		"total_time_minutes", result.TotalEstimatedTimeMinutes,
	)
	return result
}

// topTools ranks tools by spend, descending, with name order breaking ties so
// the ranking is deterministic.
func topTools(spend map[string]float64, n int) []ToolSpend {
	ranked := make([]ToolSpend, 0, len(spend))
	for tool, cost := range spend {
		ranked = append(ranked, ToolSpend{Tool: tool, CostUSD: cost})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].CostUSD != ranked[j].CostUSD {
			return ranked[i].CostUSD > ranked[j].CostUSD
		}
		return ranked[i].Tool < ranked[j].Tool
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
