// Package core holds the production pipeline state machine: it sequences the
// script, shot, and plan stages over one requirements document, applying
// clarification and approval gates in interactive mode.
package core

import (
	"log/slog"

	"reelplan/internal/plan"
	"reelplan/internal/script"
	"reelplan/internal/shot"
	"reelplan/internal/timeline"
	"reelplan/internal/vrd"
)

// State is the orchestrator's position in the pipeline.
type State string

const (
	StateVRDInput               State = "vrd_input"
	StateVRDReceived            State = "vrd_received"
	StateAwaitingClarifications State = "awaiting_clarifications"
	StateClarificationsReceived State = "clarifications_received"
	StateScriptGenerated        State = "script_generated"
	StateShotsGenerated         State = "shots_generated"
	StatePlanGenerated          State = "plan_generated"
)

// QuestionsFunc produces clarifying questions for a document. It is the
// external collaborator the orchestrator consults at the VRD gate.
type QuestionsFunc func(vrd.Document, vrd.Mode) []vrd.Question

// Orchestrator drives one production run from requirements document to
// production plan. One instance owns one run's state; instances are not safe
// for concurrent use, but independent instances share nothing and may run
// concurrently.
type Orchestrator struct {
	mode      vrd.Mode
	logger    *slog.Logger
	generator *script.Generator
	shots     *shot.Planner
	planner   *plan.Planner
	questions QuestionsFunc

	doc            *vrd.Document
	clarifications vrd.Clarifications
	script         *script.Script
	validation     *timeline.ValidationReport
	shotList       *shot.List
	plan           *plan.ProductionPlan
	state          State
	completed      []string
}

// Option customizes an Orchestrator.
type Option func(*Orchestrator)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) { o.logger = logger }
}

// WithGenerator substitutes the script generator.
func WithGenerator(g *script.Generator) Option {
	return func(o *Orchestrator) { o.generator = g }
}

// WithShotPlanner substitutes the shot planner.
func WithShotPlanner(p *shot.Planner) Option {
	return func(o *Orchestrator) { o.shots = p }
}

// WithPlanner substitutes the production planner.
func WithPlanner(p *plan.Planner) Option {
	return func(o *Orchestrator) { o.planner = p }
}

// WithCatalog rebuilds the production planner over an alternate tool catalog.
func WithCatalog(c plan.Catalog) Option {
	return func(o *Orchestrator) { o.planner = plan.NewPlanner(c) }
}

// WithQuestionsFunc substitutes the clarifying-questions collaborator.
func WithQuestionsFunc(fn QuestionsFunc) Option {
	return func(o *Orchestrator) { o.questions = fn }
}

// New returns an Orchestrator in its initial state. Unknown modes fall back
// to interactive, the safer default.
func New(mode vrd.Mode, opts ...Option) *Orchestrator {
	if !mode.Valid() {
		mode = vrd.ModeInteractive
	}
	o := &Orchestrator{
		mode:           mode,
		logger:         slog.Default(),
		generator:      script.NewGenerator(),
		shots:          shot.NewPlanner(),
		planner:        plan.NewPlanner(plan.DefaultCatalog()),
		questions:      vrd.Questions,
		clarifications: vrd.Clarifications{},
		state:          StateVRDInput,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Mode returns the run's execution mode.
func (o *Orchestrator) Mode() vrd.Mode { return o.mode }

// State returns the current pipeline state.
func (o *Orchestrator) State() State { return o.state }

// Script returns the generated script, or nil before generation.
func (o *Orchestrator) Script() *script.Script { return o.script }

// ShotList returns the derived shot list, or nil before derivation.
func (o *Orchestrator) ShotList() *shot.List { return o.shotList }

// Plan returns the production plan, or nil before planning.
func (o *Orchestrator) Plan() *plan.ProductionPlan { return o.plan }

// SetVRD stores the requirements document and decides the next action. The
// document is validated up front so a malformed duration fails here rather
// than deep inside timing allocation. In interactive mode a non-empty
// question list suspends the pipeline until clarifications arrive; in auto
// mode questions are never asked.
func (o *Orchestrator) SetVRD(doc vrd.Document) StageResult {
	if err := doc.Validate(); err != nil {
		o.logger.Warn("rejected requirements document", "error", err)
		return StageResult{Status: StatusError, Message: err.Error(), Err: err}
	}

	o.doc = &doc
	o.state = StateVRDReceived
	o.completed = append(o.completed, "vrd_input")

	if o.mode == vrd.ModeInteractive {
		if questions := o.questions(doc, o.mode); len(questions) > 0 {
			o.state = StateAwaitingClarifications
			o.logger.Info("awaiting clarifications", "questions", len(questions))
			return StageResult{
				Status:     StatusNeedsClarification,
				Questions:  questions,
				NextAction: "provide_clarifications",
			}
		}
	}

	return StageResult{Status: StatusReadyForScript, NextAction: "generate_script"}
}

// ProvideClarifications merges answers into the document by key overwrite and
// readies the pipeline for script generation.
func (o *Orchestrator) ProvideClarifications(answers vrd.Clarifications) StageResult {
	if o.doc == nil {
		return errorResult("provide_clarifications", msgVRDNotSet)
	}

	o.clarifications = answers
	merged := vrd.ApplyClarifications(*o.doc, answers)
	o.doc = &merged
	o.state = StateClarificationsReceived
	o.completed = append(o.completed, "clarifications")

	return StageResult{Status: StatusReadyForScript, NextAction: "generate_script"}
}

// GenerateScript runs the timing allocator, beat generator, and timing
// validator. The validation report travels with the script; deciding whether
// a mismatch matters is the caller's business.
func (o *Orchestrator) GenerateScript() StageResult {
	if o.doc == nil {
		return errorResult("generate_script", msgVRDNotSet)
	}

	s, err := o.generator.Generate(*o.doc, o.clarifications, o.mode)
	if err != nil {
		o.logger.Warn("script generation failed", "error", err)
		return StageResult{Status: StatusError, Message: err.Error(), Err: err}
	}

	validation := timeline.Validate(s.Spans(), s.Metadata.DurationSeconds)
	o.script = s
	o.validation = &validation
	o.state = StateScriptGenerated
	o.completed = append(o.completed, "script_generation")

	result := StageResult{
		Status:     StatusScriptGenerated,
		Script:     s,
		Validation: &validation,
		BeatCount:  s.TotalBeatCount,
		Duration:   s.Metadata.DurationSeconds,
	}
	o.gate(&result, "review_script_then_generate_shots", "generate_shots")
	return result
}

// GenerateShots derives the shot list from the generated script.
func (o *Orchestrator) GenerateShots() StageResult {
	if o.script == nil {
		return errorResult("generate_shots", msgScriptNotGenerated)
	}

	list := o.shots.Plan(o.script.Beats, o.mode)
	list.ScriptRef = o.script.ScriptID
	o.shotList = list
	o.state = StateShotsGenerated
	o.completed = append(o.completed, "shot_generation")

	result := StageResult{
		Status:       StatusShotsGenerated,
		ShotList:     list,
		TotalShots:   list.TotalShots,
		AssetSummary: &list.AssetSummary,
	}
	o.gate(&result, "review_shots_then_generate_plan", "generate_plan")
	return result
}

// GeneratePlan selects tools and aggregates costs for every shot.
func (o *Orchestrator) GeneratePlan(constraints plan.Constraints) StageResult {
	if o.shotList == nil {
		return errorResult("generate_plan", msgShotsNotGenerated)
	}

	p := o.planner.Build(o.shotList, constraints, o.mode)
	o.plan = p
	o.state = StatePlanGenerated
	o.completed = append(o.completed, "plan_generation")

	result := StageResult{
		Status:           StatusPlanGenerated,
		Plan:             p,
		TotalCostUSD:     p.TotalEstimatedCostUSD,
		TotalTimeMinutes: p.TotalEstimatedTimeMinutes,
		WorkflowSummary:  &p.WorkflowSummary,
	}
	o.gate(&result, "review_plan_then_execute", "execute_production")
	return result
}

// ExecuteFullPipeline runs every transition in sequence. In interactive mode
// it returns early at the first gate (clarification or approval) without
// bypassing it; in auto mode it returns the complete result in one call.
func (o *Orchestrator) ExecuteFullPipeline(doc vrd.Document, constraints plan.Constraints) StageResult {
	if result := o.SetVRD(doc); result.IsError() || result.Status == StatusNeedsClarification {
		return result
	}

	if result := o.GenerateScript(); result.IsError() || o.gated(result) {
		return result
	}

	if result := o.GenerateShots(); result.IsError() || o.gated(result) {
		return result
	}

	if result := o.GeneratePlan(constraints); result.IsError() {
		return result
	}

	o.logger.Info("pipeline complete",
		"mode", o.mode,
		"beats", o.script.TotalBeatCount,
		"shots", o.shotList.TotalShots,
		"cost_usd", o.plan.TotalEstimatedCostUSD,
	)

	return StageResult{
		Status:         StatusPipelineComplete,
		Mode:           o.mode,
		StepsCompleted: o.completed,
		Script:         o.script,
		Validation:     o.validation,
		ShotList:       o.shotList,
		Plan:           o.plan,
		Summary: &PipelineSummary{
			Beats:       o.script.TotalBeatCount,
			Shots:       o.shotList.TotalShots,
			CostUSD:     o.plan.TotalEstimatedCostUSD,
			TimeMinutes: o.plan.TotalEstimatedTimeMinutes,
		},
	}
}

// Status reports the run's progress.
func (o *Orchestrator) Status() PipelineStatus {
	return PipelineStatus{
		Mode:           o.mode,
		CurrentState:   o.state,
		StepsCompleted: o.completed,
		HasVRD:         o.doc != nil,
		HasScript:      o.script != nil,
		HasShots:       o.shotList != nil,
		HasPlan:        o.plan != nil,
	}
}

// gate applies the single gate-or-proceed policy shared by the stepwise and
// one-shot paths: interactive runs require external approval before the next
// stage, auto runs name the next stage and keep going.
func (o *Orchestrator) gate(r *StageResult, reviewAction, proceedAction string) {
	if o.mode == vrd.ModeInteractive {
		r.ApprovalRequired = true
		r.NextAction = reviewAction
	} else {
		r.ApprovalRequired = false
		r.NextAction = proceedAction
	}
}

func (o *Orchestrator) gated(r StageResult) bool {
	return r.ApprovalRequired && o.mode == vrd.ModeInteractive
}
