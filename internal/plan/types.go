package plan

import "reelplan/internal/vrd"

// Workflow type tags carried on steps and counted in the summary.
const (
	WorkflowTextToVideo  = "text_to_video"
	WorkflowImageToVideo = "image_to_video"
	WorkflowVideoToVideo = "video_to_video"
)

// Constraints narrows tool selection. QualityPriority defaults to balanced
// when empty or unknown.
type Constraints struct {
	QualityPriority Tier `json:"quality_priority,omitempty"`
}

// WorkflowStep is one tool invocation in a shot's workflow.
type WorkflowStep struct {
	Step                 int     `json:"step"`
	Tool                 string  `json:"tool"`
	Purpose              string  `json:"purpose"`
	WorkflowType         string  `json:"workflow_type"`
	DurationSeconds      int     `json:"duration_seconds"`
	EstimatedTimeSeconds int     `json:"estimated_time_seconds"`
	CostUSD              float64 `json:"cost_usd"`
}

// Workflow is the ordered tool sequence that produces one shot.
// TotalCost and TotalTimeSeconds are exact sums over the steps.
type Workflow struct {
	WorkflowID       string         `json:"workflow_id"`
	WorkflowName     string         `json:"workflow_name"`
	Steps            []WorkflowStep `json:"steps"`
	TotalCost        float64        `json:"total_cost"`
	TotalTimeSeconds int            `json:"total_time_seconds"`
	QualityScore     float64        `json:"quality_score"`
}

// ShotPlan pairs a shot with its recommended workflow and any alternatives
// worth mentioning (only kept when their total cost actually differs).
type ShotPlan struct {
	ShotID               string     `json:"shot_id"`
	ShotDescription      string     `json:"shot_description"`
	RecommendedWorkflow  Workflow   `json:"recommended_workflow"`
	AlternativeWorkflows []Workflow `json:"alternative_workflows"`
	ProductionNotes      []string   `json:"production_notes"`
}

// ToolSpend is one entry of the primary-tools ranking.
type ToolSpend struct {
	Tool    string  `json:"tool"`
	CostUSD float64 `json:"cost_usd"`
}

// WorkflowSummary aggregates tool usage across the plan.
type WorkflowSummary struct {
	TotalUniqueTools int            `json:"total_unique_tools"`
	PrimaryTools     []ToolSpend    `json:"primary_tools"`
	WorkflowTypes    map[string]int `json:"workflow_types"`
}

// CostBreakdown maps tool names to total spend.
type CostBreakdown struct {
	ByTool map[string]float64 `json:"by_tool"`
}

// TimelineEstimate models generation time. Parallel assumes unlimited
// concurrent generation capacity; it is an analytical bound, not a schedule.
type TimelineEstimate struct {
	ParallelGeneration    bool    `json:"parallel_generation"`
	SequentialTimeMinutes float64 `json:"sequential_time_minutes"`
	ParallelTimeMinutes   float64 `json:"parallel_time_minutes"`
	PostProcessingMinutes int     `json:"post_processing_minutes"`
}

// ProductionPlan is the complete tool-selection and cost plan for a shot list.
type ProductionPlan struct {
	ProductionPlanID          string   `json:"production_plan_id"`
	ShotListRef               string   `json:"shot_list_ref"`
	Mode                      vrd.Mode `json:"mode"`
	TotalEstimatedCostUSD     float64  `json:"total_estimated_cost_usd"`
	TotalEstimatedTimeMinutes float64  `json:"total_estimated_time_minutes"`

	ShotPlans       []ShotPlan       `json:"shot_plans"`
	WorkflowSummary WorkflowSummary  `json:"workflow_summary"`
	CostBreakdown   CostBreakdown    `json:"cost_breakdown"`
	Timeline        TimelineEstimate `json:"timeline_estimate"`

	CreatedAt string `json:"created_at"`
}
