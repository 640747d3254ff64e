// Package shot derives concrete camera shots from narrative beats.
package shot

import (
	"reelplan/internal/script"
	"reelplan/internal/vrd"
)

// Composition is the framing guidance for a shot.
type Composition struct {
	RuleOfThirds bool   `json:"rule_of_thirds"`
	FocalPoint   string `json:"focal_point"`
	DepthOfField string `json:"depth_of_field"` // "shallow" or "deep"
}

// Lighting is the lighting design for a shot.
type Lighting struct {
	TimeOfDay       string   `json:"time_of_day"`
	Mood            string   `json:"mood"`
	KeyLight        string   `json:"key_light"`
	PracticalLights []string `json:"practical_lights"`
}

// SetRequirements lists what the set needs.
type SetRequirements struct {
	LocationType string   `json:"location_type"`
	Props        []string `json:"props"`
	SetDressing  string   `json:"set_dressing"`
}

// TechnicalComplexity scores how hard the shot is to generate. Score is 1-10.
type TechnicalComplexity struct {
	ComplexityScore                int  `json:"complexity_score"`
	RequiresMotion                 bool `json:"requires_motion"`
	RequiresVFX                    bool `json:"requires_vfx"`
	RequiresCompositing            bool `json:"requires_compositing"`
	EstimatedGenerationTimeSeconds int  `json:"estimated_generation_time_seconds"`
}

// StoryboardFrame describes the reference frame for a shot.
type StoryboardFrame struct {
	Description          string `json:"description"`
	ReferenceImagePrompt string `json:"reference_image_prompt"`
	ThumbnailURL         string `json:"thumbnail_url,omitempty"`
}

// Shot is one camera take derived from exactly one beat. BeatRef is a
// back-reference, not ownership; several shots may reference the same beat.
// Shots are immutable once created.
type Shot struct {
	ShotID         string                `json:"shot_id"`
	BeatRef        string                `json:"beat_ref"`
	ShotNumber     int                   `json:"shot_number"`
	ShotType       script.ShotType       `json:"shot_type"`
	Subject        string                `json:"subject"`
	CameraAngle    string                `json:"camera_angle"`
	CameraMovement script.CameraMovement `json:"camera_movement"`
	DurationSeconds int                  `json:"duration_seconds"`
	FrameRate      int                   `json:"frame_rate"`
	Resolution     string                `json:"resolution"`

	Composition     Composition         `json:"composition"`
	Lighting        Lighting            `json:"lighting"`
	SetRequirements SetRequirements     `json:"set_requirements"`
	Technical       TechnicalComplexity `json:"technical_complexity"`
	Storyboard      StoryboardFrame     `json:"storyboard_frame"`
}

// AssetSummary aggregates what the whole shot list requires.
type AssetSummary struct {
	TotalUniqueLocations      int     `json:"total_unique_locations"`
	TotalUniqueShotTypes      int     `json:"total_unique_shot_types"`
	TotalCharacterShots       int     `json:"total_character_shots"`
	VFXShots                  int     `json:"vfx_shots"`
	RequiresCustomModels      bool    `json:"requires_custom_models"`
	EstimatedTotalTimeMinutes float64 `json:"estimated_total_time_minutes"`
}

// List is the complete ordered shot list for one script.
type List struct {
	ShotListID  string   `json:"shot_list_id"`
	ScriptRef   string   `json:"script_ref"`
	Mode        vrd.Mode `json:"mode"`
	TotalShots  int      `json:"total_shots"`
	TotalScenes int      `json:"total_scenes"`

	Shots        []Shot       `json:"shots"`
	AssetSummary AssetSummary `json:"asset_summary"`

	CreatedAt string `json:"created_at"`
}
