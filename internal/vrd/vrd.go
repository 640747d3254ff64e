// Package vrd defines the Video Requirements Document: the structured intent
// for one video that drives the production pipeline, plus the clarifying
// questions asked to fill its gaps.
package vrd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Mode selects how the pipeline is driven.
type Mode string

const (
	// ModeInteractive gates every stage behind clarification or approval.
	ModeInteractive Mode = "hitl"
	// ModeAuto skips all gates and runs the pipeline in one call.
	ModeAuto Mode = "yolo"
)

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m == ModeInteractive || m == ModeAuto
}

// DefaultTone is used when neither clarifications nor the document carry one.
const DefaultTone = "professional"

// Document is the requirements document for a single video. Fields other than
// VideoType and EstimatedDuration are optional; missing ones either fall back
// to defaults or surface as clarifying questions in interactive mode.
type Document struct {
	ProjectName        string `json:"project_name,omitempty"`
	VideoType          string `json:"video_type" validate:"required"`
	EstimatedDuration  string `json:"estimated_duration" validate:"required"`
	Tone               string `json:"tone,omitempty"`
	TargetAudience     string `json:"target_audience,omitempty"`
	CoreMessage        string `json:"core_message,omitempty"`
	CTA                string `json:"cta,omitempty"`
	MidpointEmotion    string `json:"midpoint_emotion,omitempty"`
	Act2Emphasis       string `json:"act2_emphasis,omitempty"`
	VisualMetaphors    string `json:"visual_metaphors,omitempty"`
	InferredPainPoints string `json:"inferred_pain_points,omitempty"`

	// Extra holds clarification answers whose keys do not map to a named
	// field. Kept so no user-supplied answer is silently discarded.
	Extra map[string]string `json:"extra,omitempty"`
}

// Validate checks the document's required fields and the duration format.
func (d Document) Validate() error {
	if err := validator.New().Struct(d); err != nil {
		return fmt.Errorf("validating requirements document: %w", err)
	}
	if _, err := d.DurationSeconds(); err != nil {
		return err
	}
	return nil
}

// DurationSeconds parses the "<N>s" wire form of EstimatedDuration into whole
// seconds. It fails fast on missing, non-numeric, or non-positive values so a
// malformed duration never reaches the timing allocator.
func (d Document) DurationSeconds() (int, error) {
	raw := strings.TrimSpace(d.EstimatedDuration)
	if raw == "" {
		return 0, fmt.Errorf("estimated duration not set")
	}
	n, err := strconv.Atoi(strings.TrimSuffix(raw, "s"))
	if err != nil {
		return 0, fmt.Errorf("parsing estimated duration %q: %w", d.EstimatedDuration, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("estimated duration must be positive, got %q", d.EstimatedDuration)
	}
	return n, nil
}

// Clarifications maps question keys to user-supplied answers.
type Clarifications map[string]string

// ApplyClarifications merges answers into the document by key overwrite, last
// write wins. Keys that do not correspond to a named field are preserved in
// Extra. The receiver is not mutated.
func ApplyClarifications(d Document, answers Clarifications) Document {
	out := d
	if len(d.Extra) > 0 {
		out.Extra = make(map[string]string, len(d.Extra))
		for k, v := range d.Extra {
			out.Extra[k] = v
		}
	}
	for key, value := range answers {
		switch key {
		case "project_name":
			out.ProjectName = value
		case "video_type":
			out.VideoType = value
		case "estimated_duration":
			out.EstimatedDuration = value
		case "tone":
			out.Tone = value
		case "target_audience":
			out.TargetAudience = value
		case "core_message":
			out.CoreMessage = value
		case "cta":
			out.CTA = value
		case "midpoint_emotion":
			out.MidpointEmotion = value
		case "act2_emphasis":
			out.Act2Emphasis = value
		case "visual_metaphors":
			out.VisualMetaphors = value
		default:
			if out.Extra == nil {
				out.Extra = make(map[string]string)
			}
			out.Extra[key] = value
		}
	}
	return out
}
