package script

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"reelplan/internal/timeline"
	"reelplan/internal/vrd"
)

func testGenerator() *Generator {
	return NewGenerator(
		WithIDFunc(func() string { return "script_test" }),
		WithClock(func() time.Time { return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC) }),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
}

func testDoc(duration string) vrd.Document {
	return vrd.Document{
		ProjectName:       "Launch Teaser",
		VideoType:         "product_demo",
		EstimatedDuration: duration,
		TargetAudience:    "founders",
		CoreMessage:       "Get to market faster",
	}
}

func TestGenerateSixtySecondScript(t *testing.T) {
	s, err := testGenerator().Generate(testDoc("60s"), nil, vrd.ModeAuto)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if s.ScriptID != "script_test" {
		t.Errorf("script id = %q", s.ScriptID)
	}
	if s.TotalBeatCount != 8 || len(s.Beats) != 8 {
		t.Fatalf("beats = %d, want 8", s.TotalBeatCount)
	}
	if s.Metadata.DurationSeconds != 60 {
		t.Errorf("duration = %d", s.Metadata.DurationSeconds)
	}
	if s.Metadata.Title != "Launch Teaser" {
		t.Errorf("title = %q", s.Metadata.Title)
	}
	if s.Metadata.CreatedAt != "2026-08-30T12:00:00Z" {
		t.Errorf("created at = %q", s.Metadata.CreatedAt)
	}

	// Beats are contiguous and ordered.
	for i, b := range s.Beats {
		if b.SequenceOrder != i+1 {
			t.Errorf("beat %d sequence = %d", i, b.SequenceOrder)
		}
		if i > 0 && b.StartSeconds != s.Beats[i-1].EndSeconds {
			t.Errorf("gap before beat %d: %d != %d", i+1, s.Beats[i-1].EndSeconds, b.StartSeconds)
		}
		if b.DurationSeconds != b.EndSeconds-b.StartSeconds {
			t.Errorf("beat %d duration mismatch", i+1)
		}
	}
	if last := s.Beats[len(s.Beats)-1]; last.EndSeconds != 60 {
		t.Errorf("last beat ends at %d", last.EndSeconds)
	}
}

func TestGenerateActStructure(t *testing.T) {
	s, err := testGenerator().Generate(testDoc("60s"), nil, vrd.ModeAuto)
	if err != nil {
		t.Fatal(err)
	}

	if got := len(s.Structure.Act1Beats); got != 3 {
		t.Errorf("act 1 beats = %d", got)
	}
	if got := len(s.Structure.Act2Beats); got != 3 {
		t.Errorf("act 2 beats = %d", got)
	}
	if got := len(s.Structure.Act3Beats); got != 2 {
		t.Errorf("act 3 beats = %d", got)
	}
	if len(s.Structure.EightPartBreakdown) != 8 {
		t.Errorf("breakdown entries = %d", len(s.Structure.EightPartBreakdown))
	}
}

func TestGenerateVFXAndSceneGrouping(t *testing.T) {
	s, err := testGenerator().Generate(testDoc("60s"), nil, vrd.ModeAuto)
	if err != nil {
		t.Fatal(err)
	}

	vfx := map[timeline.Segment]bool{}
	for _, b := range s.Beats {
		if b.Production.RequiresVFX {
			vfx[b.Narrative.Segment] = true
		}
	}
	for _, seg := range []timeline.Segment{timeline.SegmentHook, timeline.SegmentMidpoint, timeline.SegmentClimax} {
		if !vfx[seg] {
			t.Errorf("segment %s missing VFX flag", seg)
		}
	}
	if len(vfx) != 3 {
		t.Errorf("VFX segments = %v, want exactly hook, midpoint, climax", vfx)
	}

	// Three beats per scene.
	if s.Beats[0].SceneID != "scene_001" || s.Beats[2].SceneID != "scene_001" {
		t.Errorf("scene grouping off: %q %q", s.Beats[0].SceneID, s.Beats[2].SceneID)
	}
	if s.Beats[3].SceneID != "scene_002" || s.Beats[7].SceneID != "scene_003" {
		t.Errorf("scene grouping off: %q %q", s.Beats[3].SceneID, s.Beats[7].SceneID)
	}
}

func TestGenerateToneResolution(t *testing.T) {
	g := testGenerator()

	doc := testDoc("60s")
	doc.Tone = "dramatic"

	s, err := g.Generate(doc, vrd.Clarifications{"tone": "playful"}, vrd.ModeInteractive)
	if err != nil {
		t.Fatal(err)
	}
	if s.Metadata.Tone != "playful" {
		t.Errorf("tone = %q, clarification should win", s.Metadata.Tone)
	}

	s, err = g.Generate(doc, nil, vrd.ModeInteractive)
	if err != nil {
		t.Fatal(err)
	}
	if s.Metadata.Tone != "dramatic" {
		t.Errorf("tone = %q, document should win", s.Metadata.Tone)
	}

	doc.Tone = ""
	s, err = g.Generate(doc, nil, vrd.ModeInteractive)
	if err != nil {
		t.Fatal(err)
	}
	if s.Metadata.Tone != vrd.DefaultTone {
		t.Errorf("tone = %q, want default", s.Metadata.Tone)
	}
}

func TestGenerateSkipsCollapsedSpans(t *testing.T) {
	// At 5 seconds several segments truncate to zero length; those beats
	// are dropped and the survivors are renumbered without holes.
	s, err := testGenerator().Generate(testDoc("5s"), nil, vrd.ModeAuto)
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Beats) == 0 || len(s.Beats) >= 8 {
		t.Fatalf("beats = %d, want fewer than 8", len(s.Beats))
	}
	for i, b := range s.Beats {
		if b.DurationSeconds <= 0 {
			t.Errorf("beat %d has non-positive duration", i+1)
		}
		if b.SequenceOrder != i+1 {
			t.Errorf("beat numbering has holes at %d", i+1)
		}
	}
	if last := s.Beats[len(s.Beats)-1]; last.EndSeconds != 5 {
		t.Errorf("last beat ends at %d", last.EndSeconds)
	}
}

func TestGenerateFirstBeatHasNoAnswer(t *testing.T) {
	s, err := testGenerator().Generate(testDoc("60s"), nil, vrd.ModeAuto)
	if err != nil {
		t.Fatal(err)
	}

	if s.Beats[0].Narrative.AnswersQuestion != "" {
		t.Error("opening beat should not answer a prior question")
	}
	if len(s.Beats[0].Audio.SoundEffects) != 0 {
		t.Error("opening beat should have no transition effect")
	}
	for _, b := range s.Beats[1:] {
		if b.Narrative.AnswersQuestion == "" {
			t.Errorf("beat %s missing answer", b.BeatID)
		}
		if len(b.Audio.SoundEffects) == 0 {
			t.Errorf("beat %s missing transition effect", b.BeatID)
		}
	}
}

func TestGenerateRejectsBadDuration(t *testing.T) {
	if _, err := testGenerator().Generate(testDoc("0s"), nil, vrd.ModeAuto); err == nil {
		t.Error("expected error for zero duration")
	}
	if _, err := testGenerator().Generate(testDoc("soon"), nil, vrd.ModeAuto); err == nil {
		t.Error("expected error for malformed duration")
	}
}

func TestSpansMirrorBeats(t *testing.T) {
	s, err := testGenerator().Generate(testDoc("60s"), nil, vrd.ModeAuto)
	if err != nil {
		t.Fatal(err)
	}
	spans := s.Spans()
	if len(spans) != len(s.Beats) {
		t.Fatalf("spans = %d, beats = %d", len(spans), len(s.Beats))
	}
	report := timeline.Validate(spans, 60)
	if !report.Valid || len(report.Issues) != 0 {
		t.Errorf("validation = %+v", report)
	}
}
