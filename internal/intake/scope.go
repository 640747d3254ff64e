package intake

import (
	"fmt"
	"strings"
)

// Scope renders the analysis as a requirements document in markdown, the
// shape reviewers see before the pipeline runs.
func (a Analysis) Scope() string {
	vtype := strings.ReplaceAll(a.VideoType, "_", " ")
	vtype = titleWords(vtype)

	var b strings.Builder
	b.WriteString("# VIDEO REQUIREMENTS DOCUMENT (VRD)\n\n")

	b.WriteString("## 1. PROJECT INFORMATION\n")
	fmt.Fprintf(&b, "- Type: %s\n", vtype)
	fmt.Fprintf(&b, "- Duration: %s\n", a.EstimatedDuration)
	b.WriteString("- Target Completion: 2 weeks (Recommended)\n\n")

	b.WriteString("## 2. PURPOSE & BACKGROUND\n")
	b.WriteString("- Primary Objective: Drive awareness and conversions\n")
	fmt.Fprintf(&b, "- Business Challenge: %s\n", a.InferredPainPoints)
	b.WriteString("- Success Metrics: Engagement rate, conversion rate, view completion\n\n")

	b.WriteString("## 3. TARGET AUDIENCE (CRITICAL)\n")
	fmt.Fprintf(&b, "- Demographics: %s\n", a.TargetAudience)
	fmt.Fprintf(&b, "- Pain Points: %s\n", a.InferredPainPoints)
	b.WriteString("- Viewing Platforms: Website, social media, email\n\n")

	b.WriteString("## 4. KEY MESSAGE & CTA (CRITICAL)\n")
	b.WriteString("- Core Message: Solve [key problem] efficiently with our solution\n")
	b.WriteString("- Supporting Points:\n")
	b.WriteString("  1. Save time and resources\n")
	b.WriteString("  2. Proven, reliable results\n")
	b.WriteString("  3. Easy to start, risk-free\n")
	fmt.Fprintf(&b, "- Primary CTA: %s\n", a.CTA)
	b.WriteString("- Brand Values: Innovation, Quality, Customer Success\n\n")

	b.WriteString("## 5. CONTENT STRUCTURE (CRITICAL)\n")
	fmt.Fprintf(&b, "- Duration: %s\n", a.EstimatedDuration)
	fmt.Fprintf(&b, "- Structure: Hook (0-5s) → Problem (5-20s) → Solution (20-45s) → Benefits (45-55s) → CTA (55-%s)\n", a.EstimatedDuration)
	b.WriteString("- Must Include: Logo, URL, CTA, brand colors\n\n")

	b.WriteString("## 6. STYLE & MOOD\n")
	b.WriteString("- Style: Modern, professional\n")
	fmt.Fprintf(&b, "- Tone: %s\n", titleWords(a.Tone))
	b.WriteString("- Visual: Clean, contemporary, on-brand\n\n")

	b.WriteString("## 7. PRACTICAL DETAILS\n")
	b.WriteString("- Budget: $2,500-$5,000 (Recommended)\n")
	b.WriteString("- Timeline: 2 weeks\n")
	b.WriteString("- Deliverables: HD video (1920x1080, 30fps, MP4)\n")

	return b.String()
}

func titleWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
