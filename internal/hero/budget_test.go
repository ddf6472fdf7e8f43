package hero_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mythicforge/hero-forge/internal/domain"
	"github.com/mythicforge/hero-forge/internal/hero"
)

func freeTraits() domain.CosmeticTraits {
	return domain.CosmeticTraits{
		Race:         "Human",
		Sex:          "Female",
		FaceStyle:    "Gaunt",
		SkinTone:     "Fair",
		EyeDetail:    "None",
		Eyes:         "Brown",
		FacialHair:   "None",
		Glasses:      "None",
		HairStyle:    "Bald",
		HairColor:    "Brown",
		Necklace:     "None",
		Earring:      "None",
		NosePiercing: "None",
		Scar:         "None",
		Tattoo:       "None",
		Background:   "Plain",
	}
}

func TestValidateSkills(t *testing.T) {
	skills := domain.Skills{
		Constitution: 12,
		Strength:     10,
		Dexterity:    14,
		Intelligence: 8,
		Wisdom:       9,
		Charisma:     7,
	}
	total := skills.Total()

	assert.NoError(t, hero.ValidateSkills(total, skills))
	assert.ErrorIs(t, hero.ValidateSkills(total+1, skills), domain.ErrBudgetMismatch)
	assert.ErrorIs(t, hero.ValidateSkills(total-1, skills), domain.ErrBudgetMismatch)
}

func TestValidateTraits_ExactBudget(t *testing.T) {
	traits := freeTraits()
	traits.Necklace = "Rune Amulet"    // 8
	traits.Background = "Starry Night" // 8

	assert.NoError(t, hero.ValidateTraits(16, traits))
	assert.NoError(t, hero.ValidateTraits(17, traits))
	assert.ErrorIs(t, hero.ValidateTraits(15, traits), domain.ErrBudgetExceeded)
}

func TestValidateTraits_ZeroBudget(t *testing.T) {
	assert.NoError(t, hero.ValidateTraits(0, freeTraits()))
}

func TestValidateTraits_UnknownSelection(t *testing.T) {
	traits := freeTraits()
	traits.Eyes = "Heterochromatic"

	err := hero.ValidateTraits(100, traits)
	assert.ErrorIs(t, err, domain.ErrUnknownTrait)
	assert.Contains(t, err.Error(), "Heterochromatic")
}

func TestValidateTraits_UnknownSelectionBeatsBudget(t *testing.T) {
	// An invalid selection fails even when the budget would cover anything
	traits := freeTraits()
	traits.Background = ""

	assert.ErrorIs(t, hero.ValidateTraits(1000, traits), domain.ErrUnknownTrait)
}

func TestTraitCost(t *testing.T) {
	cost, ok := hero.TraitCost(hero.CategoryEyes, "Violet")
	assert.True(t, ok)
	assert.Equal(t, 5, cost)

	_, ok = hero.TraitCost(hero.CategoryEyes, "Plaid")
	assert.False(t, ok)

	_, ok = hero.TraitCost(hero.TraitCategory("mood"), "Grim")
	assert.False(t, ok)
}

func TestCostedSelections_CoversAllCategories(t *testing.T) {
	selections := hero.CostedSelections(freeTraits())
	assert.Len(t, selections, 15)

	seen := make(map[hero.TraitCategory]bool)
	for _, sel := range selections {
		seen[sel.Category] = true
	}
	assert.Len(t, seen, 15)
}
