package shot

import (
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"reelplan/internal/script"
	"reelplan/internal/timeline"
	"reelplan/internal/vrd"
)

// targetShotSeconds drives shot density: roughly one shot per 5-7 seconds.
const targetShotSeconds = 6

// shotTypeBySegment assigns the framing for each narrative position.
var shotTypeBySegment = map[timeline.Segment]script.ShotType{
	timeline.SegmentHook:             script.ShotCloseup,
	timeline.SegmentIncitingEvent:    script.ShotMedium,
	timeline.SegmentFirstPlotPoint:   script.ShotMediumWide,
	timeline.SegmentFirstPinchPoint:  script.ShotMediumCloseup,
	timeline.SegmentMidpoint:         script.ShotWide,
	timeline.SegmentSecondPinchPoint: script.ShotCloseup,
	timeline.SegmentThirdPlotPoint:   script.ShotMedium,
	timeline.SegmentClimax:           script.ShotMediumWide,
}

// shallowDOFTypes use shallow depth of field; everything else is deep.
var shallowDOFTypes = map[script.ShotType]bool{
	script.ShotCloseup:        true,
	script.ShotMediumCloseup:  true,
	script.ShotExtremeCloseup: true,
}

// Planner converts a script's beats into a shot list.
type Planner struct {
	newID  func() string
	now    func() time.Time
	logger *slog.Logger
}

// Option customizes a Planner.
type Option func(*Planner)

// WithIDFunc substitutes the shot-list ID source.
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

// NewPlanner returns a Planner with default ID and clock sources.
func NewPlanner(opts ...Option) *Planner {
	p := &Planner{
		newID:  func() string { return "shotlist_" + uuid.NewString() },
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Plan derives shots from the beats in order. Each beat yields
// max(1, round(duration/6)) shots; the beat's duration is split evenly with
// the final shot absorbing the remainder, so the group always sums exactly
// to the beat duration. Mode is bookkeeping only and does not affect the
// algorithm.
func (p *Planner) Plan(beats []script.Beat, mode vrd.Mode) *List {
	var shots []Shot
	shotNumber := 1

	for _, beat := range beats {
		duration := beat.DurationSeconds
		needed := int(math.Round(float64(duration) / targetShotSeconds))
		if needed < 1 {
			needed = 1
		}

		base := duration / needed
		for idx := 0; idx < needed; idx++ {
			shotDuration := base
			if idx == needed-1 {
				shotDuration = duration - base*(needed-1)
			}
			shots = append(shots, p.shot(beat, shotNumber, shotDuration))
			shotNumber++
		}
	}

	list := &List{
		ShotListID:   p.newID(),
		ScriptRef:    "",
		Mode:         mode,
		TotalShots:   len(shots),
		TotalScenes:  len(beats),
		Shots:        shots,
		AssetSummary: summarize(shots),
		CreatedAt:    p.now().UTC().Format(time.RFC3339),
	}

	p.logger.Debug("shot list planned",
		"shot_list_id", list.ShotListID,
		"beats", len(beats),
		"shots", len(shots),
	)
	return list
}

func (p *Planner) shot(beat script.Beat, number, duration int) Shot {
	seg := beat.Narrative.Segment

	shotType, ok := shotTypeBySegment[seg]
	if !ok {
		shotType = script.ShotMedium
	}

	movement := script.CameraSlowDolly
	if duration < 4 {
		movement = script.CameraStatic
	}
	if seg == timeline.SegmentMidpoint || seg == timeline.SegmentClimax {
		if duration > 5 {
			movement = script.CameraDolly
		} else {
			movement = script.CameraSlowPush
		}
	}

	mood := "neutral"
	if seg == timeline.SegmentHook || seg == timeline.SegmentClimax || seg == timeline.SegmentMidpoint {
		mood = "bright"
	}

	focal := "center_left"
	if number%2 == 0 {
		focal = "center_right"
	}
	if seg == timeline.SegmentHook || seg == timeline.SegmentClimax {
		focal = "center"
	}

	dof := "deep"
	if shallowDOFTypes[shotType] {
		dof = "shallow"
	}

	score := 5
	if seg == timeline.SegmentMidpoint || seg == timeline.SegmentClimax {
		score = 7
	}

	practicals := []string{}
	if mood == "bright" {
		practicals = append(practicals, "background_accent")
	}

	return Shot{
		ShotID:          fmt.Sprintf("shot_%03d", number),
		BeatRef:         beat.BeatID,
		ShotNumber:      number,
		ShotType:        shotType,
		Subject:         fmt.Sprintf("%s subject", segSubject(seg)),
		CameraAngle:     "eye_level",
		CameraMovement:  movement,
		DurationSeconds: duration,
		FrameRate:       24,
		Resolution:      "1080p",

		Composition: Composition{
			RuleOfThirds: true,
			FocalPoint:   focal,
			DepthOfField: dof,
		},

		Lighting: Lighting{
			TimeOfDay:       "day",
			Mood:            mood,
			KeyLight:        "soft_front_right",
			PracticalLights: practicals,
		},

		SetRequirements: SetRequirements{
			LocationType: "studio",
			Props:        []string{},
			SetDressing:  "minimal_modern",
		},

		Technical: TechnicalComplexity{
			ComplexityScore:                score,
			RequiresMotion:                 duration > 5,
			RequiresVFX:                    beat.Production.RequiresVFX,
			RequiresCompositing:            false,
			EstimatedGenerationTimeSeconds: GenerationTimeSeconds(duration),
		},

		Storyboard: StoryboardFrame{
			Description: fmt.Sprintf("%s shot for %s beat", shotTitle(shotType), seg),
			ReferenceImagePrompt: fmt.Sprintf("%s shot, %s, professional cinematography, %s mood, %s theme",
				shotType, beat.Visual.Lighting, beat.Emotion.AudienceEmotion, firstKeyword(beat)),
		},
	}
}

// GenerationTimeSeconds estimates how long generating a shot of the given
// duration takes: a fixed base plus two seconds of processing per content
// second.
func GenerationTimeSeconds(durationSeconds int) int {
	return 45 + durationSeconds*2
}

func summarize(shots []Shot) AssetSummary {
	locations := map[string]bool{}
	types := map[script.ShotType]bool{}
	vfx := 0
	totalSeconds := 0
	for _, s := range shots {
		locations[s.SetRequirements.LocationType] = true
		types[s.ShotType] = true
		if s.Technical.RequiresVFX {
			vfx++
		}
		totalSeconds += s.Technical.EstimatedGenerationTimeSeconds
	}
	return AssetSummary{
		TotalUniqueLocations:      len(locations),
		TotalUniqueShotTypes:      len(types),
		TotalCharacterShots:       len(shots),
		VFXShots:                  vfx,
		RequiresCustomModels:      false,
		EstimatedTotalTimeMinutes: math.Round(float64(totalSeconds)/60*10) / 10,
	}
}

func firstKeyword(beat script.Beat) string {
	if len(beat.Visual.VisualKeywords) > 0 {
		return beat.Visual.VisualKeywords[0]
	}
	return string(beat.Narrative.Segment)
}

// segSubject turns "first_plot_point" into "first plot point".
func segSubject(seg timeline.Segment) string {
	return strings.ReplaceAll(string(seg), "_", " ")
}

// shotTitle turns "medium_wide" into "Medium Wide".
func shotTitle(t script.ShotType) string {
	words := strings.Split(string(t), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
