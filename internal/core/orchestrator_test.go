package core

import (
	"io"
	"log/slog"
	"testing"

	"reelplan/internal/plan"
	"reelplan/internal/vrd"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func demoDoc() vrd.Document {
	return vrd.Document{
		ProjectName:       "Acme Launch",
		VideoType:         "product_demo",
		EstimatedDuration: "60s",
		Tone:              "energetic",
		TargetAudience:    "smb owners",
		CoreMessage:       "Ship faster with Acme",
		CTA:               "Start your free trial",
	}
}

func TestSetVRDRejectsInvalidDocument(t *testing.T) {
	o := New(vrd.ModeAuto, WithLogger(quietLogger()))

	result := o.SetVRD(vrd.Document{ProjectName: "no type or duration"})
	if !result.IsError() {
		t.Fatalf("expected error status, got %q", result.Status)
	}
	if o.State() != StateVRDInput {
		t.Errorf("state advanced on invalid document: %q", o.State())
	}
}

func TestSetVRDMalformedDuration(t *testing.T) {
	o := New(vrd.ModeAuto, WithLogger(quietLogger()))

	doc := demoDoc()
	doc.EstimatedDuration = "one minute"
	if result := o.SetVRD(doc); !result.IsError() {
		t.Fatalf("expected error status, got %q", result.Status)
	}
}

func TestInteractiveModeAsksClarifications(t *testing.T) {
	o := New(vrd.ModeInteractive, WithLogger(quietLogger()))

	result := o.SetVRD(demoDoc())
	if result.Status != StatusNeedsClarification {
		t.Fatalf("status = %q, want %q", result.Status, StatusNeedsClarification)
	}
	if len(result.Questions) == 0 {
		t.Fatal("expected clarifying questions")
	}
	if result.NextAction != "provide_clarifications" {
		t.Errorf("next action = %q", result.NextAction)
	}
	if o.State() != StateAwaitingClarifications {
		t.Errorf("state = %q", o.State())
	}
}

func TestAutoModeSkipsClarifications(t *testing.T) {
	o := New(vrd.ModeAuto, WithLogger(quietLogger()))

	result := o.SetVRD(demoDoc())
	if result.Status != StatusReadyForScript {
		t.Fatalf("status = %q, want %q", result.Status, StatusReadyForScript)
	}
	if len(result.Questions) != 0 {
		t.Errorf("auto mode asked %d questions", len(result.Questions))
	}
}

func TestProvideClarificationsMergesAnswers(t *testing.T) {
	o := New(vrd.ModeInteractive, WithLogger(quietLogger()))
	o.SetVRD(demoDoc())

	result := o.ProvideClarifications(vrd.Clarifications{
		"tone":             "playful",
		"midpoint_emotion": "surprise",
	})
	if result.Status != StatusReadyForScript {
		t.Fatalf("status = %q, want %q", result.Status, StatusReadyForScript)
	}

	script := o.GenerateScript()
	if script.IsError() {
		t.Fatalf("generate script: %v", script.Err)
	}
	if got := script.Script.Metadata.Tone; got != "playful" {
		t.Errorf("tone = %q, want merged answer", got)
	}
}

func TestPreconditionOrdering(t *testing.T) {
	o := New(vrd.ModeAuto, WithLogger(quietLogger()))

	if result := o.ProvideClarifications(vrd.Clarifications{"tone": "warm"}); !IsPrecondition(result.Err) {
		t.Errorf("clarifications without VRD: err = %v", result.Err)
	}
	if result := o.GenerateScript(); !IsPrecondition(result.Err) {
		t.Errorf("script without VRD: err = %v", result.Err)
	}
	if result := o.GenerateShots(); !IsPrecondition(result.Err) {
		t.Errorf("shots without script: err = %v", result.Err)
	}
	if result := o.GeneratePlan(plan.Constraints{}); !IsPrecondition(result.Err) {
		t.Errorf("plan without shots: err = %v", result.Err)
	}

	o.SetVRD(demoDoc())
	if result := o.GenerateShots(); !IsPrecondition(result.Err) {
		t.Errorf("shots before script still allowed: err = %v", result.Err)
	}
}

func TestInteractiveStepwiseGates(t *testing.T) {
	o := New(vrd.ModeInteractive,
		WithLogger(quietLogger()),
		WithQuestionsFunc(func(vrd.Document, vrd.Mode) []vrd.Question { return nil }),
	)

	if result := o.SetVRD(demoDoc()); result.Status != StatusReadyForScript {
		t.Fatalf("set vrd status = %q", result.Status)
	}

	script := o.GenerateScript()
	if !script.ApprovalRequired {
		t.Error("script stage should require approval in interactive mode")
	}
	if script.NextAction != "review_script_then_generate_shots" {
		t.Errorf("script next action = %q", script.NextAction)
	}

	shots := o.GenerateShots()
	if !shots.ApprovalRequired {
		t.Error("shot stage should require approval in interactive mode")
	}
	if shots.NextAction != "review_shots_then_generate_plan" {
		t.Errorf("shot next action = %q", shots.NextAction)
	}

	planResult := o.GeneratePlan(plan.Constraints{})
	if !planResult.ApprovalRequired {
		t.Error("plan stage should require approval in interactive mode")
	}
	if planResult.NextAction != "review_plan_then_execute" {
		t.Errorf("plan next action = %q", planResult.NextAction)
	}
}

func TestAutoFullPipeline(t *testing.T) {
	o := New(vrd.ModeAuto, WithLogger(quietLogger()))

	result := o.ExecuteFullPipeline(demoDoc(), plan.Constraints{QualityPriority: plan.TierBalanced})
	if result.Status != StatusPipelineComplete {
		t.Fatalf("status = %q, want %q (err: %v)", result.Status, StatusPipelineComplete, result.Err)
	}

	if result.Script == nil || result.ShotList == nil || result.Plan == nil {
		t.Fatal("complete result missing artifacts")
	}
	if result.Script.TotalBeatCount != 8 {
		t.Errorf("beats = %d, want 8 for a 60s run", result.Script.TotalBeatCount)
	}
	if result.ShotList.TotalShots < 8 {
		t.Errorf("shots = %d, want at least one per beat", result.ShotList.TotalShots)
	}
	if result.Plan.TotalEstimatedCostUSD <= 0 {
		t.Errorf("cost = %v, want positive", result.Plan.TotalEstimatedCostUSD)
	}
	if result.Validation == nil || !result.Validation.Valid {
		t.Errorf("validation = %+v, want valid timing", result.Validation)
	}

	if result.Summary == nil {
		t.Fatal("missing summary")
	}
	if result.Summary.Beats != result.Script.TotalBeatCount ||
		result.Summary.Shots != result.ShotList.TotalShots ||
		result.Summary.CostUSD != result.Plan.TotalEstimatedCostUSD {
		t.Errorf("summary %+v disagrees with artifacts", result.Summary)
	}

	wantSteps := []string{"vrd_input", "script_generation", "shot_generation", "plan_generation"}
	if len(result.StepsCompleted) != len(wantSteps) {
		t.Fatalf("steps completed = %v, want %v", result.StepsCompleted, wantSteps)
	}
	for i, step := range wantSteps {
		if result.StepsCompleted[i] != step {
			t.Errorf("step[%d] = %q, want %q", i, result.StepsCompleted[i], step)
		}
	}
}

func TestInteractiveFullPipelineStopsAtFirstGate(t *testing.T) {
	o := New(vrd.ModeInteractive, WithLogger(quietLogger()))

	result := o.ExecuteFullPipeline(demoDoc(), plan.Constraints{})
	if result.Status != StatusNeedsClarification {
		t.Fatalf("status = %q, want %q", result.Status, StatusNeedsClarification)
	}
	if o.ShotList() != nil || o.Plan() != nil {
		t.Error("pipeline ran past the clarification gate")
	}

	// With no questions to ask, the run still stops at the script approval gate.
	o2 := New(vrd.ModeInteractive,
		WithLogger(quietLogger()),
		WithQuestionsFunc(func(vrd.Document, vrd.Mode) []vrd.Question { return nil }),
	)
	result = o2.ExecuteFullPipeline(demoDoc(), plan.Constraints{})
	if result.Status != StatusScriptGenerated {
		t.Fatalf("status = %q, want %q", result.Status, StatusScriptGenerated)
	}
	if !result.ApprovalRequired {
		t.Error("expected approval gate")
	}
	if o2.ShotList() != nil {
		t.Error("shots generated past the approval gate")
	}
}

func TestStatusProgression(t *testing.T) {
	o := New(vrd.ModeAuto, WithLogger(quietLogger()))

	status := o.Status()
	if status.CurrentState != StateVRDInput || status.HasVRD {
		t.Errorf("fresh status = %+v", status)
	}

	o.SetVRD(demoDoc())
	o.GenerateScript()
	o.GenerateShots()
	o.GeneratePlan(plan.Constraints{})

	status = o.Status()
	if status.CurrentState != StatePlanGenerated {
		t.Errorf("state = %q, want %q", status.CurrentState, StatePlanGenerated)
	}
	if !status.HasVRD || !status.HasScript || !status.HasShots || !status.HasPlan {
		t.Errorf("status flags = %+v, want all set", status)
	}
}

func TestUnknownModeDefaultsToInteractive(t *testing.T) {
	o := New(vrd.Mode("turbo"), WithLogger(quietLogger()))
	if o.Mode() != vrd.ModeInteractive {
		t.Errorf("mode = %q, want interactive fallback", o.Mode())
	}
}
