package vrd

import "sort"

// MaxQuestions caps how many clarifying questions one round may ask.
const MaxQuestions = 5

// Question describes one clarifying question for the user. Key names the
// document field the answer updates.
type Question struct {
	Question string   `json:"question"`
	Key      string   `json:"key"`
	Type     string   `json:"type"` // "text" or "choice"
	Options  []string `json:"options,omitempty"`
	Priority string   `json:"priority"` // "high", "medium", or "low"
	Default  string   `json:"default,omitempty"`
	Hint     string   `json:"hint,omitempty"`
	Optional bool     `json:"optional,omitempty"`
}

// Questions generates up to MaxQuestions priority-ordered clarifying questions
// for gaps in the document. In auto mode it returns nil: defaults are used and
// the user is never consulted.
func Questions(d Document, mode Mode) []Question {
	if mode == ModeAuto {
		return nil
	}

	var questions []Question

	if d.CoreMessage == "" {
		questions = append(questions, Question{
			Question: "What is the ONE key message viewers should remember after watching?",
			Key:      "core_message",
			Type:     "text",
			Priority: "high",
			Hint:     `Example: "Our platform makes video creation 10x faster"`,
		})
	}

	if d.Tone == "" {
		questions = append(questions, Question{
			Question: "What tone should the video have?",
			Key:      "tone",
			Type:     "choice",
			Options:  []string{"empowering", "urgent", "friendly", "dramatic", "playful", "professional"},
			Priority: "high",
			Default:  DefaultTone,
		})
	}

	questions = append(questions, Question{
		Question: "What emotion should the viewer feel at the midpoint (50% mark)?",
		Key:      "midpoint_emotion",
		Type:     "choice",
		Options:  []string{"hopeful", "inspired", "curious", "confident", "relieved", "excited"},
		Priority: "medium",
		Default:  "hopeful",
		Hint:     `This is the "transformation moment" where understanding clicks`,
	})

	questions = append(questions, Question{
		Question: "In Act 2, should we emphasize the problem or the solution more?",
		Key:      "act2_emphasis",
		Type:     "choice",
		Options: []string{
			"50/50 - Equal balance",
			"60/40 problem - More pain points",
			"60/40 solution - More benefits",
			"70/30 problem - Heavy on challenges",
			"70/30 solution - Heavy on features",
		},
		Priority: "medium",
		Default:  "50/50 - Equal balance",
		Hint:     "Problem-heavy works for aware audiences; solution-heavy for unaware",
	})

	questions = append(questions, Question{
		Question: "Any specific visual metaphors, motifs, or recurring imagery to incorporate?",
		Key:      "visual_metaphors",
		Type:     "text",
		Priority: "low",
		Optional: true,
		Hint:     `Examples: "journey", "transformation", "building blocks", "unlock", etc.`,
	})

	if d.CTA == "" {
		questions = append(questions, Question{
			Question: "What specific action should viewers take after watching?",
			Key:      "cta",
			Type:     "choice",
			Options: []string{
				"Visit website",
				"Start free trial",
				"Book a demo",
				"Download app",
				"Sign up",
				"Contact sales",
				"Learn more",
			},
			Priority: "high",
			Hint:     "Be specific - vague CTAs reduce conversion",
		})
	}

	rank := map[string]int{"high": 0, "medium": 1, "low": 2}
	sort.SliceStable(questions, func(i, j int) bool {
		ri, ok := rank[questions[i].Priority]
		if !ok {
			ri = 3
		}
		rj, ok := rank[questions[j].Priority]
		if !ok {
			rj = 3
		}
		return ri < rj
	})

	if len(questions) > MaxQuestions {
		questions = questions[:MaxQuestions]
	}
	return questions
}
