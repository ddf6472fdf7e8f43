package domain

// Tome represents a named finite pool of revealable token slots
type Tome string

const (
	// TomeWoodlandRespite is the first edition tome
	TomeWoodlandRespite Tome = "Woodland Respite"
	// TomeDawnOfMan is the second edition tome
	TomeDawnOfMan Tome = "Dawn of Man"
)

// Valid reports whether the tome is a known pool
func (t Tome) Valid() bool {
	switch t {
	case TomeWoodlandRespite, TomeDawnOfMan:
		return true
	}
	return false
}

// Stage represents the lifecycle stage of a token
type Stage string

const (
	// StageRevealed means the token has been assigned a slot but not yet customized
	StageRevealed Stage = "revealed"
	// StageCustomized means the owner has spent their budgets and the token carries custom art
	StageCustomized Stage = "customized"
)

// Tier is an ordinal rarity label derived from a point total
type Tier string

const (
	TierCommon    Tier = "Common"
	TierUncommon  Tier = "Uncommon"
	TierRare      Tier = "Rare"
	TierEpic      Tier = "Epic"
	TierLegendary Tier = "Legendary"
	TierMythic    Tier = "Mythic"
)

// tierRanks orders tiers from lowest to highest rarity
var tierRanks = map[Tier]int{
	TierCommon:    0,
	TierUncommon:  1,
	TierRare:      2,
	TierEpic:      3,
	TierLegendary: 4,
	TierMythic:    5,
}

// Rank returns the ordinal position of the tier, lowest first.
// Unknown tiers rank below Common.
func (t Tier) Rank() int {
	rank, ok := tierRanks[t]
	if !ok {
		return -1
	}
	return rank
}

// Skills holds the six stat allocations of a character.
// The sum of all values must equal the token's stat points exactly.
type Skills struct {
	Constitution int `json:"constitution"`
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Intelligence int `json:"intelligence"`
	Wisdom       int `json:"wisdom"`
	Charisma     int `json:"charisma"`
}

// Total returns the sum of all skill allocations
func (s Skills) Total() int {
	return s.Constitution + s.Strength + s.Dexterity + s.Intelligence + s.Wisdom + s.Charisma
}

// CosmeticTraits holds the cosmetic selections of a character.
// Race is rendered but carries no cosmetic point cost; the remaining
// fifteen categories are costed against the token's cosmetic points.
type CosmeticTraits struct {
	Race         string `json:"race"`
	Sex          string `json:"sex"`
	FaceStyle    string `json:"faceStyle"`
	SkinTone     string `json:"skinTone"`
	EyeDetail    string `json:"eyeDetail"`
	Eyes         string `json:"eyes"`
	FacialHair   string `json:"facialHair"`
	Glasses      string `json:"glasses"`
	HairStyle    string `json:"hairStyle"`
	HairColor    string `json:"hairColor"`
	Necklace     string `json:"necklace"`
	Earring      string `json:"earring"`
	NosePiercing string `json:"nosePiercing"`
	Scar         string `json:"scar"`
	Tattoo       string `json:"tattoo"`
	Background   string `json:"background"`
}

// PipelineStage identifies where a customization request is in the pipeline
type PipelineStage string

const (
	PipelineStageValidating        PipelineStage = "validating"
	PipelineStageRendering         PipelineStage = "rendering"
	PipelineStageUploadingImage    PipelineStage = "uploading_image"
	PipelineStageAssembling        PipelineStage = "assembling_metadata"
	PipelineStageUploadingMetadata PipelineStage = "uploading_metadata"
	PipelineStageUpdatingChain     PipelineStage = "updating_chain"
	PipelineStagePersisted         PipelineStage = "persisted"
)

// PipelineRequest carries everything the customization pipeline needs for one
// token. It is the workflow input and must stay JSON-serializable.
type PipelineRequest struct {
	// NFTID is the internal database ID of the token row
	NFTID int64 `json:"nftId"`
	// TokenID is the slot number within the tome, used to name render output
	TokenID int64 `json:"tokenId"`
	// TokenAddress is the on-chain identity of the token
	TokenAddress string `json:"tokenAddress"`
	// TokenName is the display name attached to the metadata document
	TokenName string `json:"tokenName"`
	// MintName is the immutable name assigned at mint time
	MintName string `json:"mintName"`
	Tome     Tome   `json:"tome"`

	StatPoints     int  `json:"statPoints"`
	CosmeticPoints int  `json:"cosmeticPoints"`
	StatTier       Tier `json:"statTier"`
	CosmeticTier   Tier `json:"cosmeticTier"`
	HeroTier       Tier `json:"heroTier"`

	Skills         Skills         `json:"skills"`
	CosmeticTraits CosmeticTraits `json:"cosmeticTraits"`
}

// ShortAddress returns a truncated token address for logs and user messages
func ShortAddress(tokenAddress string) string {
	if len(tokenAddress) <= 8 {
		return tokenAddress
	}
	return tokenAddress[:8] + "..."
}
