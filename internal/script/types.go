// Package script defines the narrative beat model and generates a complete
// script from a requirements document using the eight-part story structure.
package script

import (
	"reelplan/internal/timeline"
	"reelplan/internal/vrd"
)

// ShotType is the framing vocabulary shared by beats, shots, and the tool
// catalog.
type ShotType string

const (
	ShotExtremeCloseup ShotType = "extreme_closeup"
	ShotCloseup        ShotType = "closeup"
	ShotMediumCloseup  ShotType = "medium_closeup"
	ShotMedium         ShotType = "medium"
	ShotMediumWide     ShotType = "medium_wide"
	ShotWide           ShotType = "wide"
	ShotExtremeWide    ShotType = "extreme_wide"
)

// CameraMovement names how the camera moves during a beat or shot.
type CameraMovement string

const (
	CameraStatic    CameraMovement = "static"
	CameraPan       CameraMovement = "pan"
	CameraTilt      CameraMovement = "tilt"
	CameraDolly     CameraMovement = "dolly"
	CameraZoom      CameraMovement = "zoom"
	CameraHandheld  CameraMovement = "handheld"
	CameraSlowPush  CameraMovement = "slow_push"
	CameraSlowDolly CameraMovement = "slow_dolly"
)

// Complexity is a coarse production-difficulty tier.
type Complexity string

const (
	ComplexityLow    Complexity = "low"
	ComplexityMedium Complexity = "medium"
	ComplexityHigh   Complexity = "high"
)

// Content is the written material for one beat. Action is always present;
// the rest is optional.
type Content struct {
	Action       string `json:"action"`
	Dialogue     string `json:"dialogue,omitempty"`
	Voiceover    string `json:"voiceover,omitempty"`
	OnScreenText string `json:"on_screen_text,omitempty"`
}

// VisualRequirements captures what the beat must look like.
type VisualRequirements struct {
	ShotType       ShotType       `json:"shot_type"`
	CameraMovement CameraMovement `json:"camera_movement"`
	Location       string         `json:"location"`
	Lighting       string         `json:"lighting"`
	VisualKeywords []string       `json:"visual_keywords"`
	Complexity     Complexity     `json:"complexity"`
}

// AudioRequirements captures what the beat must sound like.
type AudioRequirements struct {
	DialoguePresent bool     `json:"dialogue_present"`
	SoundEffects    []string `json:"sound_effects"`
	MusicMood       string   `json:"music_mood,omitempty"`
	Ambient         string   `json:"ambient,omitempty"`
}

// EmotionalContext places the beat on the emotional arc. Intensity is 1-10.
type EmotionalContext struct {
	CharacterEmotion    string `json:"character_emotion"`
	AudienceEmotion     string `json:"audience_emotion"`
	EmotionalArcPosition string `json:"emotional_arc_position"`
	Intensity           int    `json:"intensity"`
}

// NarrativeFunction records the beat's structural purpose.
type NarrativeFunction struct {
	BeatType        string           `json:"beat_type"`
	StoryBeatNumber int              `json:"story_beat_number"`
	Segment         timeline.Segment `json:"eight_part_position"`
	InfoConveyed    string           `json:"info_conveyed"`
	RaisesQuestion  string           `json:"raises_question,omitempty"`
	AnswersQuestion string           `json:"answers_question,omitempty"`
}

// ProductionMetadata carries planning hints for downstream stages.
type ProductionMetadata struct {
	EstimatedComplexity   Complexity `json:"estimated_complexity"`
	RequiresVFX           bool       `json:"requires_vfx"`
	RequiresCustomAssets  bool       `json:"requires_custom_assets"`
	SuggestedToolCategory string     `json:"suggested_tool_category"`
	ReferenceImages       []string   `json:"reference_images"`
}

// Beat is one atomic narrative unit. Beats are created once by the generator
// and never mutated afterwards.
type Beat struct {
	BeatID        string `json:"beat_id"`
	SceneID       string `json:"scene_id"`
	SequenceOrder int    `json:"sequence_order"`

	StartSeconds    int    `json:"start_seconds"`
	EndSeconds      int    `json:"end_seconds"`
	TimecodeStart   string `json:"timecode_start"`
	TimecodeEnd     string `json:"timecode_end"`
	DurationSeconds int    `json:"duration_seconds"`

	StoryQuestion string `json:"story_question"`
	StoryAnswer   string `json:"story_answer"`

	Content  Content            `json:"script"`
	Visual   VisualRequirements `json:"visual_requirements"`
	Audio    AudioRequirements  `json:"audio_requirements"`
	Emotion  EmotionalContext   `json:"emotional_context"`
	Narrative NarrativeFunction  `json:"narrative_function"`
	Production ProductionMetadata `json:"production_metadata"`
}

// Span returns the beat's time window for timing validation.
func (b Beat) Span() timeline.Span {
	return timeline.Span{Segment: b.Narrative.Segment, Start: b.StartSeconds, End: b.EndSeconds}
}

// Metadata describes the script as a whole.
type Metadata struct {
	Title           string `json:"title"`
	DurationSeconds int    `json:"duration_seconds"`
	TargetAudience  string `json:"target_audience"`
	PrimaryMessage  string `json:"primary_message"`
	Tone            string `json:"tone"`
	Style           string `json:"style"`
	CreatedAt       string `json:"created_at"`
}

// Structure groups beat IDs by act and records the segment breakdown.
type Structure struct {
	TotalBeats         int                         `json:"total_beats"`
	EightPartBreakdown map[timeline.Segment][2]int `json:"eight_part_breakdown"`
	Act1Beats          []string                    `json:"act_1_beats"`
	Act2Beats          []string                    `json:"act_2_beats"`
	Act3Beats          []string                    `json:"act_3_beats"`
}

// Script is the complete ordered beat list with its metadata and structure.
// Created once per pipeline run; read-only afterwards.
type Script struct {
	ScriptID string   `json:"script_id"`
	VRDRef   string   `json:"vrd_ref"`
	Mode     vrd.Mode `json:"mode"`

	Metadata  Metadata  `json:"metadata"`
	Structure Structure `json:"structure"`
	Beats     []Beat    `json:"beats"`

	TotalBeatCount   int    `json:"total_beat_count"`
	NarrativeSummary string `json:"narrative_summary"`
}

// Spans returns the beats' time windows in sequence order.
func (s *Script) Spans() []timeline.Span {
	spans := make([]timeline.Span, len(s.Beats))
	for i, b := range s.Beats {
		spans[i] = b.Span()
	}
	return spans
}
