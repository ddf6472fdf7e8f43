package schema

import "github.com/mythicforge/hero-forge/internal/domain"

// Skills maps the character's stat columns onto the domain value
func (c *Character) Skills() domain.Skills {
	return domain.Skills{
		Constitution: c.Constitution,
		Strength:     c.Strength,
		Dexterity:    c.Dexterity,
		Intelligence: c.Intelligence,
		Wisdom:       c.Wisdom,
		Charisma:     c.Charisma,
	}
}

// Traits maps the character's cosmetic columns onto the domain value
func (c *Character) Traits() domain.CosmeticTraits {
	return domain.CosmeticTraits{
		Race:         c.Race,
		Sex:          c.Sex,
		FaceStyle:    c.FaceStyle,
		SkinTone:     c.SkinTone,
		EyeDetail:    c.EyeDetail,
		Eyes:         c.Eyes,
		FacialHair:   c.FacialHair,
		Glasses:      c.Glasses,
		HairStyle:    c.HairStyle,
		HairColor:    c.HairColor,
		Necklace:     c.Necklace,
		Earring:      c.Earring,
		NosePiercing: c.NosePiercing,
		Scar:         c.Scar,
		Tattoo:       c.Tattoo,
		Background:   c.Background,
	}
}

// ApplySelections copies skill and trait selections onto the row
func (c *Character) ApplySelections(skills domain.Skills, traits domain.CosmeticTraits) {
	c.Constitution = skills.Constitution
	c.Strength = skills.Strength
	c.Dexterity = skills.Dexterity
	c.Intelligence = skills.Intelligence
	c.Wisdom = skills.Wisdom
	c.Charisma = skills.Charisma

	c.Race = traits.Race
	c.Sex = traits.Sex
	c.FaceStyle = traits.FaceStyle
	c.SkinTone = traits.SkinTone
	c.EyeDetail = traits.EyeDetail
	c.Eyes = traits.Eyes
	c.FacialHair = traits.FacialHair
	c.Glasses = traits.Glasses
	c.HairStyle = traits.HairStyle
	c.HairColor = traits.HairColor
	c.Necklace = traits.Necklace
	c.Earring = traits.Earring
	c.NosePiercing = traits.NosePiercing
	c.Scar = traits.Scar
	c.Tattoo = traits.Tattoo
	c.Background = traits.Background
}
