package hero

import "github.com/mythicforge/hero-forge/internal/domain"

// TraitCategory is the closed enumeration of costed cosmetic categories.
// Race is deliberately absent: it is rendered but never costed.
type TraitCategory string

const (
	CategorySex          TraitCategory = "sex"
	CategoryFaceStyle    TraitCategory = "faceStyle"
	CategorySkinTone     TraitCategory = "skinTone"
	CategoryEyeDetail    TraitCategory = "eyeDetail"
	CategoryEyes         TraitCategory = "eyes"
	CategoryFacialHair   TraitCategory = "facialHair"
	CategoryGlasses      TraitCategory = "glasses"
	CategoryHairStyle    TraitCategory = "hairStyle"
	CategoryHairColor    TraitCategory = "hairColor"
	CategoryNecklace     TraitCategory = "necklace"
	CategoryEarring      TraitCategory = "earring"
	CategoryNosePiercing TraitCategory = "nosePiercing"
	CategoryScar         TraitCategory = "scar"
	CategoryTattoo       TraitCategory = "tattoo"
	CategoryBackground   TraitCategory = "background"
)

// TraitDisplayNames maps categories to the trait_type labels used in
// metadata attribute blocks.
var TraitDisplayNames = map[TraitCategory]string{
	CategorySex:          "Sex",
	CategoryFaceStyle:    "Face Style",
	CategorySkinTone:     "Skin Tone",
	CategoryEyeDetail:    "Eye Detail",
	CategoryEyes:         "Eyes",
	CategoryFacialHair:   "Facial Hair",
	CategoryGlasses:      "Glasses",
	CategoryHairStyle:    "Hair Style",
	CategoryHairColor:    "Hair Color",
	CategoryNecklace:     "Necklace",
	CategoryEarring:      "Earring",
	CategoryNosePiercing: "Nose Piercing",
	CategoryScar:         "Scar",
	CategoryTattoo:       "Tattoo",
	CategoryBackground:   "Background",
}

// SkillDisplayNames maps skill keys to metadata attribute labels
var SkillDisplayNames = map[string]string{
	"constitution": "Constitution",
	"strength":     "Strength",
	"dexterity":    "Dexterity",
	"intelligence": "Intelligence",
	"wisdom":       "Wisdom",
	"charisma":     "Charisma",
}

// traitCosts is the fixed cosmetic point cost table, indexed by category and
// selection. A selection missing from its category map is invalid, never
// free: validation must reject it rather than defaulting the cost to zero.
var traitCosts = map[TraitCategory]map[string]int{
	CategorySex: {
		"Male":   0,
		"Female": 0,
	},
	CategoryFaceStyle: {
		"Gaunt":    0,
		"Rugged":   1,
		"Soft":     1,
		"Chiseled": 3,
		"Regal":    5,
	},
	CategorySkinTone: {
		"Pale":   0,
		"Fair":   0,
		"Tan":    1,
		"Bronze": 2,
		"Ebony":  2,
		"Ashen":  4,
	},
	CategoryEyeDetail: {
		"None":       0,
		"Heavy Lids": 1,
		"Sharp":      2,
		"Glowing":    6,
	},
	CategoryEyes: {
		"Brown":  0,
		"Blue":   1,
		"Green":  1,
		"Grey":   1,
		"Amber":  3,
		"Violet": 5,
	},
	CategoryFacialHair: {
		"None":          0,
		"Stubble":       1,
		"Moustache":     2,
		"Full Beard":    3,
		"Braided Beard": 5,
	},
	CategoryGlasses: {
		"None":      0,
		"Round":     2,
		"Monocle":   4,
		"Half-Moon": 5,
	},
	CategoryHairStyle: {
		"Bald":      0,
		"Short":     1,
		"Long":      2,
		"Ponytail":  2,
		"Mohawk":    4,
		"Windswept": 5,
	},
	CategoryHairColor: {
		"Black":    0,
		"Brown":    0,
		"Blonde":   1,
		"Red":      2,
		"Silver":   4,
		"White":    4,
	},
	CategoryNecklace: {
		"None":         0,
		"Leather Cord": 1,
		"Silver Chain": 3,
		"Gold Chain":   5,
		"Rune Amulet":  8,
	},
	CategoryEarring: {
		"None":     0,
		"Stud":     1,
		"Hoop":     2,
		"Dangling": 4,
	},
	CategoryNosePiercing: {
		"None": 0,
		"Stud": 2,
		"Ring": 3,
	},
	CategoryScar: {
		"None":  0,
		"Cheek": 1,
		"Brow":  1,
		"Cross": 3,
	},
	CategoryTattoo: {
		"None":     0,
		"Tribal":   3,
		"Runic":    5,
		"Warpaint": 4,
	},
	CategoryBackground: {
		"Plain":        0,
		"Forest":       2,
		"Mountains":    2,
		"Tavern":       4,
		"Castle":       6,
		"Starry Night": 8,
	},
}

// HeroTierImageURLs are the stock IPFS images attached to revealed tokens
// before any custom render exists.
var HeroTierImageURLs = map[domain.Tier]string{
	domain.TierCommon:    "ipfs://QmYcJvbhRZnvXDJd9V8nGjzehX1eCuPHuyGumrJbXdL3cm/common.png",
	domain.TierUncommon:  "ipfs://QmYcJvbhRZnvXDJd9V8nGjzehX1eCuPHuyGumrJbXdL3cm/uncommon.png",
	domain.TierRare:      "ipfs://QmYcJvbhRZnvXDJd9V8nGjzehX1eCuPHuyGumrJbXdL3cm/rare.png",
	domain.TierEpic:      "ipfs://QmYcJvbhRZnvXDJd9V8nGjzehX1eCuPHuyGumrJbXdL3cm/epic.png",
	domain.TierLegendary: "ipfs://QmYcJvbhRZnvXDJd9V8nGjzehX1eCuPHuyGumrJbXdL3cm/legendary.png",
	domain.TierMythic:    "ipfs://QmYcJvbhRZnvXDJd9V8nGjzehX1eCuPHuyGumrJbXdL3cm/mythic.png",
}

// TraitCost looks up the cosmetic point cost for one selection.
// The second return value is false for unknown categories or selections.
func TraitCost(category TraitCategory, selection string) (int, bool) {
	costs, ok := traitCosts[category]
	if !ok {
		return 0, false
	}
	cost, ok := costs[selection]
	return cost, ok
}

// CostedSelections returns the (category, selection) pairs of the fifteen
// costed categories, in the fixed category order used everywhere.
func CostedSelections(traits domain.CosmeticTraits) []struct {
	Category  TraitCategory
	Selection string
} {
	return []struct {
		Category  TraitCategory
		Selection string
	}{
		{CategorySex, traits.Sex},
		{CategoryFaceStyle, traits.FaceStyle},
		{CategorySkinTone, traits.SkinTone},
		{CategoryEyeDetail, traits.EyeDetail},
		{CategoryEyes, traits.Eyes},
		{CategoryFacialHair, traits.FacialHair},
		{CategoryGlasses, traits.Glasses},
		{CategoryHairStyle, traits.HairStyle},
		{CategoryHairColor, traits.HairColor},
		{CategoryNecklace, traits.Necklace},
		{CategoryEarring, traits.Earring},
		{CategoryNosePiercing, traits.NosePiercing},
		{CategoryScar, traits.Scar},
		{CategoryTattoo, traits.Tattoo},
		{CategoryBackground, traits.Background},
	}
}
