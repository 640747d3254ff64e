package script

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"reelplan/internal/timeline"
	"reelplan/internal/vrd"
)

// beatsPerScene groups sequential beats into scenes during generation.
const beatsPerScene = 3

// vfxSegments are the narrative positions that always get a VFX pass.
var vfxSegments = map[timeline.Segment]bool{
	timeline.SegmentHook:     true,
	timeline.SegmentMidpoint: true,
	timeline.SegmentClimax:   true,
}

// Generator expands a requirements document into a complete script. It is a
// pure transformation apart from the injected ID and clock functions.
type Generator struct {
	templates TemplateSet
	newID     func() string
	now       func() time.Time
	logger    *slog.Logger
}

// Option customizes a Generator.
type Option func(*Generator)

// WithTemplates substitutes the beat template table.
func WithTemplates(t TemplateSet) Option {
	return func(g *Generator) { g.templates = t }
}

// WithIDFunc substitutes the script ID source, e.g. for deterministic tests.
func WithIDFunc(fn func() string) Option {
	return func(g *Generator) { g.newID = fn }
}

// WithClock substitutes the timestamp source.
func WithClock(fn func() time.Time) Option {
	return func(g *Generator) { g.now = fn }
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) { g.logger = logger }
}

// NewGenerator returns a Generator using the default template table.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		templates: DefaultTemplates(),
		newID:     func() string { return "script_" + uuid.NewString() },
		now:       time.Now,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate builds the full script for the document. Segments whose allocated
// span collapsed to zero or negative length are skipped. Tone resolution:
// clarifications, then the document, then the package default.
func (g *Generator) Generate(doc vrd.Document, clar vrd.Clarifications, mode vrd.Mode) (*Script, error) {
	duration, err := doc.DurationSeconds()
	if err != nil {
		return nil, fmt.Errorf("generating script: %w", err)
	}

	spans, err := timeline.Allocate(duration)
	if err != nil {
		return nil, fmt.Errorf("generating script: %w", err)
	}

	videoType := doc.VideoType
	if videoType == "" {
		videoType = "explainer"
	}
	tone := resolveTone(doc, clar)

	var beats []Beat
	beatNumber := 1
	for _, span := range spans {
		if span.Duration() <= 0 {
			continue
		}
		beats = append(beats, g.beat(span, beatNumber, videoType, tone))
		beatNumber++
	}

	structure := Structure{
		TotalBeats:         len(beats),
		EightPartBreakdown: timeline.Breakdown(spans),
		Act1Beats:          beatIDs(beats, timeline.SegmentHook, timeline.SegmentIncitingEvent, timeline.SegmentFirstPlotPoint),
		Act2Beats:          beatIDs(beats, timeline.SegmentFirstPinchPoint, timeline.SegmentMidpoint, timeline.SegmentSecondPinchPoint),
		Act3Beats:          beatIDs(beats, timeline.SegmentThirdPlotPoint, timeline.SegmentClimax),
	}

	title := doc.ProjectName
	if title == "" {
		title = segmentTitle(videoType) + " Video"
	}
	audience := doc.TargetAudience
	if audience == "" {
		audience = "general"
	}
	message := doc.CoreMessage
	if message == "" {
		message = "Key message"
	}

	s := &Script{
		ScriptID: g.newID(),
		VRDRef:   videoType,
		Mode:     mode,
		Metadata: Metadata{
			Title:           title,
			DurationSeconds: duration,
			TargetAudience:  audience,
			PrimaryMessage:  message,
			Tone:            tone,
			Style:           "modern_realistic",
			CreatedAt:       g.now().UTC().Format(time.RFC3339),
		},
		Structure:        structure,
		Beats:            beats,
		TotalBeatCount:   len(beats),
		NarrativeSummary: fmt.Sprintf("%s video following 8-part structure with %d beats", videoType, len(beats)),
	}

	g.logger.Debug("script generated",
		"script_id", s.ScriptID,
		"beats", len(beats),
		"duration_seconds", duration,
	)
	return s, nil
}

func (g *Generator) beat(span timeline.Span, number int, videoType, tone string) Beat {
	tpl := g.templates.Lookup(span.Segment)
	duration := span.Duration()
	seg := span.Segment

	soundEffects := []string{}
	if number > 1 {
		soundEffects = append(soundEffects, "transition")
	}

	characterEmotion := "curious"
	if seg == timeline.SegmentClimax || seg == timeline.SegmentMidpoint {
		characterEmotion = "confident"
	}
	audienceEmotion := "interested"
	if seg == timeline.SegmentHook {
		audienceEmotion = "engaged"
	}

	toolCategory := "image_to_video"
	if duration > 5 {
		toolCategory = "text_to_video"
	}

	answers := ""
	if number > 1 {
		answers = tpl.StoryAnswer
	}

	return Beat{
		BeatID:        fmt.Sprintf("%d.0", number),
		SceneID:       fmt.Sprintf("scene_%03d", (number-1)/beatsPerScene+1),
		SequenceOrder: number,

		StartSeconds:    span.Start,
		EndSeconds:      span.End,
		TimecodeStart:   timeline.FormatTimecode(span.Start),
		TimecodeEnd:     timeline.FormatTimecode(span.End),
		DurationSeconds: duration,

		StoryQuestion: tpl.StoryQuestion,
		StoryAnswer:   tpl.StoryAnswer,

		Content: Content{
			Action:    fmt.Sprintf("%s action sequence", segmentTitle(string(seg))),
			Voiceover: fmt.Sprintf("Voiceover for %s (%ds)", seg, duration),
		},

		Visual: VisualRequirements{
			ShotType:       tpl.ShotTypes[0],
			CameraMovement: tpl.CameraMovement,
			Location:       "studio",
			Lighting:       tpl.Lighting,
			VisualKeywords: []string{string(seg), videoType},
			Complexity:     tpl.Complexity,
		},

		Audio: AudioRequirements{
			DialoguePresent: false,
			SoundEffects:    soundEffects,
			MusicMood:       tone,
			Ambient:         "professional_studio",
		},

		Emotion: EmotionalContext{
			CharacterEmotion:    characterEmotion,
			AudienceEmotion:     audienceEmotion,
			EmotionalArcPosition: string(seg),
			Intensity:           tpl.Intensity,
		},

		Narrative: NarrativeFunction{
			BeatType:        string(seg),
			StoryBeatNumber: number,
			Segment:         seg,
			InfoConveyed:    tpl.StoryAnswer,
			RaisesQuestion:  tpl.StoryQuestion,
			AnswersQuestion: answers,
		},

		Production: ProductionMetadata{
			EstimatedComplexity:   tpl.Complexity,
			RequiresVFX:           vfxSegments[seg],
			RequiresCustomAssets:  true,
			SuggestedToolCategory: toolCategory,
			ReferenceImages:       []string{},
		},
	}
}

func resolveTone(doc vrd.Document, clar vrd.Clarifications) string {
	if t, ok := clar["tone"]; ok && t != "" {
		return t
	}
	if doc.Tone != "" {
		return doc.Tone
	}
	return vrd.DefaultTone
}

func beatIDs(beats []Beat, segments ...timeline.Segment) []string {
	want := make(map[timeline.Segment]bool, len(segments))
	for _, s := range segments {
		want[s] = true
	}
	ids := []string{}
	for _, b := range beats {
		if want[b.Narrative.Segment] {
			ids = append(ids, b.BeatID)
		}
	}
	return ids
}

// segmentTitle turns "first_plot_point" into "First Plot Point".
func segmentTitle(s string) string {
	words := strings.Split(s, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
