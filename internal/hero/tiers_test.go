package hero_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mythicforge/hero-forge/internal/domain"
	"github.com/mythicforge/hero-forge/internal/hero"
)

func TestStatTier_WoodlandRespite(t *testing.T) {
	tests := []struct {
		points int
		want   domain.Tier
	}{
		{-5, domain.TierCommon}, // below the table clamps to the floor
		{0, domain.TierCommon},
		{39, domain.TierCommon},
		{40, domain.TierUncommon},
		{59, domain.TierUncommon},
		{60, domain.TierRare},
		{74, domain.TierRare},
		{75, domain.TierEpic},
		{84, domain.TierEpic},
		{85, domain.TierLegendary},
		{94, domain.TierLegendary},
		{95, domain.TierMythic},
		{200, domain.TierMythic},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d_points", tt.points), func(t *testing.T) {
			assert.Equal(t, tt.want, hero.StatTier(domain.TomeWoodlandRespite, tt.points))
		})
	}
}

func TestStatTier_DawnOfMan(t *testing.T) {
	tests := []struct {
		points int
		want   domain.Tier
	}{
		{44, domain.TierCommon},
		{45, domain.TierUncommon},
		{64, domain.TierUncommon},
		{65, domain.TierRare},
		{78, domain.TierEpic},
		{88, domain.TierLegendary},
		{96, domain.TierLegendary},
		{97, domain.TierMythic},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d_points", tt.points), func(t *testing.T) {
			assert.Equal(t, tt.want, hero.StatTier(domain.TomeDawnOfMan, tt.points))
		})
	}
}

func TestStatTier_UnknownTome(t *testing.T) {
	assert.Equal(t, domain.TierCommon, hero.StatTier(domain.Tome("Forbidden Grimoire"), 99))
}

func TestCosmeticTier(t *testing.T) {
	tests := []struct {
		points int
		want   domain.Tier
	}{
		{0, domain.TierCommon},
		{34, domain.TierCommon},
		{35, domain.TierUncommon},
		{54, domain.TierUncommon},
		{55, domain.TierRare},
		{69, domain.TierRare},
		{70, domain.TierEpic},
		{79, domain.TierEpic},
		{80, domain.TierLegendary},
		{89, domain.TierLegendary},
		{90, domain.TierMythic},
		{150, domain.TierMythic},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d_points", tt.points), func(t *testing.T) {
			assert.Equal(t, tt.want, hero.CosmeticTier(tt.points))
		})
	}
}
