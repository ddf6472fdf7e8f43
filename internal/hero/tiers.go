// Package hero holds the pure game rules: tier derivation from point
// totals and budget validation for skill and cosmetic selections.
package hero

import (
	"github.com/mythicforge/hero-forge/internal/domain"
)

// tierThreshold maps a minimum point total to a tier. Tables are kept in
// ascending order; the highest threshold at or below the input wins.
type tierThreshold struct {
	min  int
	tier domain.Tier
}

// statTierThresholds are per-tome because the two tomes were generated with
// different stat point distributions.
var statTierThresholds = map[domain.Tome][]tierThreshold{
	domain.TomeWoodlandRespite: {
		{0, domain.TierCommon},
		{40, domain.TierUncommon},
		{60, domain.TierRare},
		{75, domain.TierEpic},
		{85, domain.TierLegendary},
		{95, domain.TierMythic},
	},
	domain.TomeDawnOfMan: {
		{0, domain.TierCommon},
		{45, domain.TierUncommon},
		{65, domain.TierRare},
		{78, domain.TierEpic},
		{88, domain.TierLegendary},
		{97, domain.TierMythic},
	},
}

var cosmeticTierThresholds = []tierThreshold{
	{0, domain.TierCommon},
	{35, domain.TierUncommon},
	{55, domain.TierRare},
	{70, domain.TierEpic},
	{80, domain.TierLegendary},
	{90, domain.TierMythic},
}

// tierFor walks an ascending threshold table and returns the tier of the
// highest threshold not exceeding points. Inputs below the lowest threshold
// clamp to the lowest tier rather than erroring.
func tierFor(thresholds []tierThreshold, points int) domain.Tier {
	tier := thresholds[0].tier
	for _, t := range thresholds {
		if points >= t.min {
			tier = t.tier
		}
	}
	return tier
}

// StatTier derives the stat tier for a point total within a tome.
// An unknown tome clamps to the Woodland Respite table's lowest tier.
func StatTier(tome domain.Tome, statPoints int) domain.Tier {
	thresholds, ok := statTierThresholds[tome]
	if !ok {
		return domain.TierCommon
	}
	return tierFor(thresholds, statPoints)
}

// CosmeticTier derives the cosmetic tier for a point total
func CosmeticTier(cosmeticPoints int) domain.Tier {
	return tierFor(cosmeticTierThresholds, cosmeticPoints)
}
