package vrd

import "testing"

func validDoc() Document {
	return Document{
		ProjectName:       "Acme Launch",
		VideoType:         "product_demo",
		EstimatedDuration: "45s",
		CoreMessage:       "Ship faster",
		Tone:              "confident",
		CTA:               "Book a demo",
	}
}

func TestValidate(t *testing.T) {
	if err := validDoc().Validate(); err != nil {
		t.Fatalf("valid document rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Document)
	}{
		{"missing video type", func(d *Document) { d.VideoType = "" }},
		{"missing duration", func(d *Document) { d.EstimatedDuration = "" }},
		{"non-numeric duration", func(d *Document) { d.EstimatedDuration = "fast" }},
		{"zero duration", func(d *Document) { d.EstimatedDuration = "0s" }},
		{"negative duration", func(d *Document) { d.EstimatedDuration = "-30s" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := validDoc()
			tc.mutate(&d)
			if err := d.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestDurationSeconds(t *testing.T) {
	d := validDoc()
	if sec, err := d.DurationSeconds(); err != nil || sec != 45 {
		t.Errorf("duration = %d (%v), want 45", sec, err)
	}

	// Bare numbers without the unit suffix are accepted.
	d.EstimatedDuration = "90"
	if sec, err := d.DurationSeconds(); err != nil || sec != 90 {
		t.Errorf("duration = %d (%v), want 90", sec, err)
	}

	d.EstimatedDuration = " 30s "
	if sec, err := d.DurationSeconds(); err != nil || sec != 30 {
		t.Errorf("trimmed duration = %d (%v), want 30", sec, err)
	}
}

func TestApplyClarificationsOverwritesByKey(t *testing.T) {
	d := validDoc()
	merged := ApplyClarifications(d, Clarifications{
		"tone":             "playful",
		"midpoint_emotion": "relieved",
		"mascot":           "otter",
	})

	if merged.Tone != "playful" {
		t.Errorf("tone = %q", merged.Tone)
	}
	if merged.MidpointEmotion != "relieved" {
		t.Errorf("midpoint emotion = %q", merged.MidpointEmotion)
	}
	if merged.Extra["mascot"] != "otter" {
		t.Errorf("extra = %v, unknown key lost", merged.Extra)
	}

	// The input document is untouched.
	if d.Tone != "confident" || len(d.Extra) != 0 {
		t.Errorf("input mutated: %+v", d)
	}
}

func TestApplyClarificationsLastWriteWins(t *testing.T) {
	d := validDoc()
	first := ApplyClarifications(d, Clarifications{"cta": "Sign up"})
	second := ApplyClarifications(first, Clarifications{"cta": "Contact sales"})
	if second.CTA != "Contact sales" {
		t.Errorf("cta = %q", second.CTA)
	}
}

func TestQuestionsAutoModeIsSilent(t *testing.T) {
	if qs := Questions(Document{}, ModeAuto); qs != nil {
		t.Errorf("auto mode asked %d questions", len(qs))
	}
}

func TestQuestionsForSparseDocument(t *testing.T) {
	qs := Questions(Document{VideoType: "explainer", EstimatedDuration: "60s"}, ModeInteractive)

	if len(qs) != MaxQuestions {
		t.Fatalf("got %d questions, want cap of %d", len(qs), MaxQuestions)
	}

	// High-priority gaps come first; the optional low-priority question is
	// squeezed out by the cap.
	for i := 0; i < 3; i++ {
		if qs[i].Priority != "high" {
			t.Errorf("question[%d] priority = %q, want high", i, qs[i].Priority)
		}
	}
	for _, q := range qs {
		if q.Key == "visual_metaphors" {
			t.Error("low-priority question survived the cap")
		}
	}
}

func TestQuestionsForCompleteDocument(t *testing.T) {
	qs := Questions(validDoc(), ModeInteractive)

	// Core message, tone, and CTA are answered, so only the creative-direction
	// questions remain.
	keys := make(map[string]bool, len(qs))
	for _, q := range qs {
		keys[q.Key] = true
	}
	for _, unwanted := range []string{"core_message", "tone", "cta"} {
		if keys[unwanted] {
			t.Errorf("asked about already-answered field %q", unwanted)
		}
	}
	for _, wanted := range []string{"midpoint_emotion", "act2_emphasis", "visual_metaphors"} {
		if !keys[wanted] {
			t.Errorf("missing creative question %q", wanted)
		}
	}
}
