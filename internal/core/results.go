package core

import (
	"reelplan/internal/plan"
	"reelplan/internal/script"
	"reelplan/internal/shot"
	"reelplan/internal/timeline"
	"reelplan/internal/vrd"
)

// Status labels the outcome of one orchestrator transition.
type Status string

const (
	StatusNeedsClarification Status = "needs_clarification"
	StatusReadyForScript     Status = "ready_for_script"
	StatusScriptGenerated    Status = "script_generated"
	StatusShotsGenerated     Status = "shots_generated"
	StatusPlanGenerated      Status = "plan_generated"
	StatusPipelineComplete   Status = "pipeline_complete"
	StatusError              Status = "error"
)

// StageResult is the envelope every orchestrator transition returns. Only the
// fields relevant to the stage are populated; the whole thing marshals to a
// self-describing JSON document for the API layer.
type StageResult struct {
	Status           Status `json:"status"`
	Message          string `json:"message,omitempty"`
	NextAction       string `json:"next_action,omitempty"`
	ApprovalRequired bool   `json:"approval_required"`

	// Clarification gate.
	Questions []vrd.Question `json:"questions,omitempty"`

	// Script stage.
	Script     *script.Script             `json:"script,omitempty"`
	Validation *timeline.ValidationReport `json:"validation,omitempty"`
	BeatCount  int                        `json:"beat_count,omitempty"`
	Duration   int                        `json:"duration,omitempty"`

	// Shot stage.
	ShotList     *shot.List         `json:"shot_list,omitempty"`
	TotalShots   int                `json:"total_shots,omitempty"`
	AssetSummary *shot.AssetSummary `json:"asset_summary,omitempty"`

	// Plan stage.
	Plan             *plan.ProductionPlan  `json:"production_plan,omitempty"`
	TotalCostUSD     float64               `json:"total_cost,omitempty"`
	TotalTimeMinutes float64               `json:"total_time,omitempty"`
	WorkflowSummary  *plan.WorkflowSummary `json:"workflow_summary,omitempty"`

	// Full-pipeline completion.
	Mode           vrd.Mode         `json:"mode,omitempty"`
	StepsCompleted []string         `json:"steps_completed,omitempty"`
	Summary        *PipelineSummary `json:"summary,omitempty"`

	// Err carries the underlying error for programmatic inspection; the
	// JSON envelope exposes only Status and Message.
	Err error `json:"-"`
}

// IsError reports whether the transition failed.
func (r StageResult) IsError() bool {
	return r.Status == StatusError
}

// PipelineSummary is the headline numbers of a completed run.
type PipelineSummary struct {
	Beats       int     `json:"beats"`
	Shots       int     `json:"shots"`
	CostUSD     float64 `json:"cost_usd"`
	TimeMinutes float64 `json:"time_minutes"`
}

// PipelineStatus is a snapshot of the orchestrator's progress.
type PipelineStatus struct {
	Mode           vrd.Mode `json:"mode"`
	CurrentState   State    `json:"current_step"`
	StepsCompleted []string `json:"steps_completed"`
	HasVRD         bool     `json:"has_vrd"`
	HasScript      bool     `json:"has_script"`
	HasShots       bool     `json:"has_shots"`
	HasPlan        bool     `json:"has_plan"`
}

func errorResult(stage, message string) StageResult {
	return StageResult{
		Status:  StatusError,
		Message: message,
		Err:     &PreconditionError{Stage: stage, Message: message},
	}
}
