package script

import "reelplan/internal/timeline"

// BeatTemplate supplies the fixed narrative and production defaults for one
// segment. ShotTypes is ranked; the first entry is used.
type BeatTemplate struct {
	StoryQuestion  string
	StoryAnswer    string
	ShotTypes      []ShotType
	CameraMovement CameraMovement
	Lighting       string
	Intensity      int
	Complexity     Complexity
}

// TemplateSet maps segments to their beat templates. Passed into the
// generator explicitly so tests can substitute alternate tables.
type TemplateSet map[timeline.Segment]BeatTemplate

// Lookup returns the template for seg, falling back to the hook template for
// unknown segments.
func (t TemplateSet) Lookup(seg timeline.Segment) BeatTemplate {
	if tpl, ok := t[seg]; ok {
		return tpl
	}
	return t[timeline.SegmentHook]
}

// DefaultTemplates returns the built-in eight-part template table.
func DefaultTemplates() TemplateSet {
	return TemplateSet{
		timeline.SegmentHook: {
			StoryQuestion:  "Why should the viewer keep watching?",
			StoryAnswer:    "Create immediate engagement through problem recognition",
			ShotTypes:      []ShotType{ShotCloseup, ShotMediumCloseup},
			CameraMovement: CameraStatic,
			Lighting:       "professional_bright",
			Intensity:      7,
			Complexity:     ComplexityHigh,
		},
		timeline.SegmentIncitingEvent: {
			StoryQuestion:  "What problem does the viewer face?",
			StoryAnswer:    "Establish the core challenge and pain point",
			ShotTypes:      []ShotType{ShotMedium, ShotMediumWide},
			CameraMovement: CameraSlowPush,
			Lighting:       "professional_neutral",
			Intensity:      6,
			Complexity:     ComplexityMedium,
		},
		timeline.SegmentFirstPlotPoint: {
			StoryQuestion:  "What solution exists?",
			StoryAnswer:    "Introduce the product/service as the answer",
			ShotTypes:      []ShotType{ShotWide, ShotMedium},
			CameraMovement: CameraDolly,
			Lighting:       "professional_bright",
			Intensity:      5,
			Complexity:     ComplexityMedium,
		},
		timeline.SegmentFirstPinchPoint: {
			StoryQuestion:  "What obstacles remain?",
			StoryAnswer:    "Show challenges that still need addressing",
			ShotTypes:      []ShotType{ShotCloseup, ShotMedium},
			CameraMovement: CameraStatic,
			Lighting:       "professional_neutral",
			Intensity:      6,
			Complexity:     ComplexityMedium,
		},
		timeline.SegmentMidpoint: {
			StoryQuestion:  "How does the solution transform the situation?",
			StoryAnswer:    "Demonstrate the key breakthrough or insight",
			ShotTypes:      []ShotType{ShotMedium, ShotWide},
			CameraMovement: CameraSlowPush,
			Lighting:       "professional_bright",
			Intensity:      8,
			Complexity:     ComplexityHigh,
		},
		timeline.SegmentSecondPinchPoint: {
			StoryQuestion:  "What proves this works?",
			StoryAnswer:    "Present evidence and social proof",
			ShotTypes:      []ShotType{ShotCloseup, ShotMediumCloseup},
			CameraMovement: CameraStatic,
			Lighting:       "professional_bright",
			Intensity:      7,
			Complexity:     ComplexityMedium,
		},
		timeline.SegmentThirdPlotPoint: {
			StoryQuestion:  "What's the final hurdle?",
			StoryAnswer:    "Address last objections or concerns",
			ShotTypes:      []ShotType{ShotMedium, ShotMediumWide},
			CameraMovement: CameraSlowPush,
			Lighting:       "professional_neutral",
			Intensity:      6,
			Complexity:     ComplexityMedium,
		},
		timeline.SegmentClimax: {
			StoryQuestion:  "What action should the viewer take?",
			StoryAnswer:    "Clear, compelling call-to-action",
			ShotTypes:      []ShotType{ShotMedium, ShotWide},
			CameraMovement: CameraDolly,
			Lighting:       "professional_bright",
			Intensity:      9,
			Complexity:     ComplexityHigh,
		},
	}
}
