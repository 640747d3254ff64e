package plan

import (
	"fmt"
	"math"
	"strings"

	"reelplan/internal/shot"
)

// postProcessingMinutes is the fixed editing/grading overhead reported on
// every timeline estimate.
const postProcessingMinutes = 30

// Selector maps shots to recommended workflows using an injected catalog.
type Selector struct {
	catalog Catalog
}

// NewSelector returns a Selector over the given catalog.
func NewSelector(catalog Catalog) *Selector {
	return &Selector{catalog: catalog}
}

// Workflow builds the workflow for one shot under the given constraints.
// The primary step's cost is duration times the tool's per-second rate; a
// fixed-cost VFX step is appended when the shot requires it. Totals are exact
// sums over the steps.
func (s *Selector) Workflow(sh shot.Shot, constraints Constraints) Workflow {
	tier := constraints.QualityPriority
	if !tier.Valid() {
		tier = TierBalanced
	}

	choice := s.catalog.Lookup(sh.ShotType, tier)
	duration := sh.DurationSeconds

	cost := round2(float64(duration) * choice.CostPerSecond)
	genTime := shot.GenerationTimeSeconds(duration)

	workflowType := WorkflowImageToVideo
	if duration > 5 {
		workflowType = WorkflowTextToVideo
	}

	steps := []WorkflowStep{{
		Step:                 1,
		Tool:                 choice.Tool,
		Purpose:              fmt.Sprintf("Generate %s shot", sh.ShotType),
		WorkflowType:         workflowType,
		DurationSeconds:      duration,
		EstimatedTimeSeconds: genTime,
		CostUSD:              cost,
	}}

	if sh.Technical.RequiresVFX {
		steps = append(steps, WorkflowStep{
			Step:                 2,
			Tool:                 s.catalog.VFX.Tool,
			Purpose:              "Add VFX and effects",
			WorkflowType:         WorkflowVideoToVideo,
			DurationSeconds:      0,
			EstimatedTimeSeconds: s.catalog.VFX.TimeSeconds,
			CostUSD:              s.catalog.VFX.FixedCostUSD,
		})
	}

	totalCost := 0.0
	totalTime := 0
	for _, step := range steps {
		totalCost += step.CostUSD
		totalTime += step.EstimatedTimeSeconds
	}

	return Workflow{
		WorkflowID:       "workflow_" + sh.ShotID,
		WorkflowName:     fmt.Sprintf("%s - %s Quality", titleWords(string(sh.ShotType)), titleWords(string(tier))),
		Steps:            steps,
		TotalCost:        totalCost,
		TotalTimeSeconds: totalTime,
		QualityScore:     choice.Score,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// titleWords turns "medium_wide" into "Medium Wide".
func titleWords(s string) string {
	words := strings.Split(s, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
