// Package intake turns a free-text video brief into a requirements document
// with inferred defaults. It is the front door for callers that do not arrive
// with a structured document already in hand.
package intake

import (
	"fmt"
	"strings"

	"reelplan/internal/vrd"
)

const analysisPreviewLen = 80

// Analysis is the keyword read of a raw brief before it becomes a document.
type Analysis struct {
	Summary            string `json:"analysis"`
	VideoType          string `json:"video_type"`
	EstimatedDuration  string `json:"estimated_duration"`
	Tone               string `json:"tone"`
	TargetAudience     string `json:"target_audience"`
	InferredPainPoints string `json:"inferred_pain_points"`
	Structure          string `json:"structure"`
	CTA                string `json:"cta"`
}

var videoTypeKeywords = []struct {
	words    []string
	vtype    string
	duration string
	tone     string
}{
	{[]string{"explainer", "explain", "introduce"}, "explainer", "60s", "professional, educational"},
	{[]string{"demo", "product", "show"}, "product_demo", "45s", "professional, confident"},
	{[]string{"ad", "promo", "social"}, "social_ad", "30s", "energetic, engaging"},
}

var ctaByType = map[string]string{
	"product_demo": "Start Free Trial / Book Demo",
	"explainer":    "Learn More / Get Started",
	"social_ad":    "Shop Now / Sign Up",
}

// Analyze classifies a raw brief by keyword and fills in defaults for
// duration, tone, audience, and call to action. Matching is first hit wins
// over the explainer, demo, ad keyword groups; anything else is general.
func Analyze(brief string) Analysis {
	lower := strings.ToLower(brief)

	a := Analysis{
		VideoType:         "general",
		EstimatedDuration: "60s",
		Tone:              "professional",
		Structure:         "Hook → Problem → Solution → Benefits → CTA",
	}
	for _, group := range videoTypeKeywords {
		if containsAny(lower, group.words) {
			a.VideoType = group.vtype
			a.EstimatedDuration = group.duration
			a.Tone = group.tone
			break
		}
	}

	if strings.Contains(lower, "b2b") || strings.Contains(lower, "saas") {
		a.TargetAudience = "B2B decision-makers, ages 28-55, marketing/product managers"
		a.InferredPainPoints = "Budget constraints, time pressure, need for measurable ROI"
	} else {
		a.TargetAudience = "Business professionals, ages 25-55, tech-savvy"
		a.InferredPainPoints = "Time constraints, resource limitations, need for efficiency"
	}

	a.CTA = ctaByType[a.VideoType]
	if a.CTA == "" {
		a.CTA = "Get Started Today"
	}

	preview := brief
	if len(preview) > analysisPreviewLen {
		preview = preview[:analysisPreviewLen]
	}
	a.Summary = fmt.Sprintf("Analyzed: '%s...'", preview)

	return a
}

// Document converts an analysis into a requirements document ready for the
// pipeline. The project name carries through untouched.
func (a Analysis) Document(projectName string) vrd.Document {
	return vrd.Document{
		ProjectName:        projectName,
		VideoType:          a.VideoType,
		EstimatedDuration:  a.EstimatedDuration,
		Tone:               a.Tone,
		TargetAudience:     a.TargetAudience,
		CoreMessage:        "Solve [key problem] efficiently with our solution",
		CTA:                a.CTA,
		InferredPainPoints: a.InferredPainPoints,
	}
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
