// Package plan selects generation tools for shots and aggregates the full
// production plan with cost and timeline estimates.
package plan

import "reelplan/internal/script"

// Tier names a quality preference when picking a generation tool.
type Tier string

const (
	TierHighQuality Tier = "high_quality"
	TierBalanced    Tier = "balanced"
	TierBudget      Tier = "budget"
)

// Valid reports whether t is a known tier.
func (t Tier) Valid() bool {
	return t == TierHighQuality || t == TierBalanced || t == TierBudget
}

// ToolChoice is one row of the recommendation table: a tool with its quality
// score and per-second generation cost.
type ToolChoice struct {
	Tool          string  `yaml:"tool" json:"tool"`
	Score         float64 `yaml:"score" json:"score"`
	CostPerSecond float64 `yaml:"cost_per_second" json:"cost_per_second"`
	Reason        string  `yaml:"reason" json:"reason"`
}

// VFXTool is the fixed-cost secondary pass appended for shots flagged as
// needing VFX.
type VFXTool struct {
	Tool         string  `yaml:"tool" json:"tool"`
	FixedCostUSD float64 `yaml:"fixed_cost_usd" json:"fixed_cost_usd"`
	TimeSeconds  int     `yaml:"time_seconds" json:"time_seconds"`
	Reason       string  `yaml:"reason" json:"reason"`
}

// Catalog holds the tool recommendation tables. It is passed into the
// selector explicitly rather than read from package state, so deployments can
// override it from configuration and tests can substitute alternates.
type Catalog struct {
	Recommendations map[script.ShotType]map[Tier]ToolChoice `yaml:"recommendations"`
	VFX             VFXTool                                 `yaml:"vfx"`
}

// Lookup resolves the tool for a shot type and tier. Shot types absent from
// the table fall back to medium; unknown tiers fall back to balanced.
func (c Catalog) Lookup(shotType script.ShotType, tier Tier) ToolChoice {
	tiers, ok := c.Recommendations[shotType]
	if !ok {
		tiers = c.Recommendations[script.ShotMedium]
	}
	choice, ok := tiers[tier]
	if !ok {
		choice = tiers[TierBalanced]
	}
	return choice
}

// DefaultCatalog returns the built-in recommendation tables.
func DefaultCatalog() Catalog {
	return Catalog{
		Recommendations: map[script.ShotType]map[Tier]ToolChoice{
			script.ShotWide: {
				TierHighQuality: {Tool: "Google Veo 3", Score: 9.7, CostPerSecond: 0.08, Reason: "4K, physics realism, native audio"},
				TierBalanced:    {Tool: "Runway Gen-3 Alpha", Score: 9.3, CostPerSecond: 0.05, Reason: "Industry standard, reliable"},
				TierBudget:      {Tool: "Luma Dream Machine 1.6", Score: 9.1, CostPerSecond: 0.08, Reason: "Fast generation, cinematic"},
			},
			script.ShotExtremeWide: {
				TierHighQuality: {Tool: "OpenAI Sora", Score: 9.6, CostPerSecond: 0.10, Reason: "Long-form, scene continuity"},
				TierBalanced:    {Tool: "Google Veo 3", Score: 9.7, CostPerSecond: 0.08, Reason: "Epic scale, physics"},
				TierBudget:      {Tool: "Kling AI 1.5/2.1", Score: 9.2, CostPerSecond: 0.06, Reason: "Good quality, affordable"},
			},
			script.ShotCloseup: {
				TierHighQuality: {Tool: "Kling AI 1.5/2.1", Score: 9.2, CostPerSecond: 0.06, Reason: "Best lip-sync, facial realism"},
				TierBalanced:    {Tool: "Runway Gen-3 Alpha", Score: 9.3, CostPerSecond: 0.05, Reason: "Character consistency"},
				TierBudget:      {Tool: "Haiper AI", Score: 8.6, CostPerSecond: 0.05, Reason: "Fast, cost-effective"},
			},
			script.ShotMediumCloseup: {
				TierHighQuality: {Tool: "Kling AI 1.5/2.1", Score: 9.2, CostPerSecond: 0.06, Reason: "Photorealism, detail"},
				TierBalanced:    {Tool: "Runway Gen-3 Alpha", Score: 9.3, CostPerSecond: 0.05, Reason: "Reliable quality"},
				TierBudget:      {Tool: "Haiper AI", Score: 8.6, CostPerSecond: 0.05, Reason: "Quick generation"},
			},
			script.ShotMedium: {
				TierHighQuality: {Tool: "Runway Gen-3 Alpha", Score: 9.3, CostPerSecond: 0.05, Reason: "Best all-around"},
				TierBalanced:    {Tool: "Luma Dream Machine 1.6", Score: 9.1, CostPerSecond: 0.08, Reason: "Fast, reliable"},
				TierBudget:      {Tool: "Haiper AI", Score: 8.6, CostPerSecond: 0.05, Reason: "Cost-effective"},
			},
			script.ShotMediumWide: {
				TierHighQuality: {Tool: "Runway Gen-3 Alpha", Score: 9.3, CostPerSecond: 0.05, Reason: "Scene composition"},
				TierBalanced:    {Tool: "Luma Dream Machine 1.6", Score: 9.1, CostPerSecond: 0.08, Reason: "Good balance"},
				TierBudget:      {Tool: "Haiper AI", Score: 8.6, CostPerSecond: 0.05, Reason: "Affordable"},
			},
		},
		VFX: VFXTool{
			Tool:         "Runway Gen-3 Alpha",
			FixedCostUSD: 0.15,
			TimeSeconds:  30,
			Reason:       "Best VFX and stylization",
		},
	}
}
