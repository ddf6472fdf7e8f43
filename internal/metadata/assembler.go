// Package metadata builds the off-chain metadata documents attached to
// tokens. Assembly is pure: collaborators fetch the prior document and the
// render's content address, the assembler only merges.
package metadata

import (
	"encoding/json"
	"fmt"

	"github.com/gowebpki/jcs"

	"github.com/mythicforge/hero-forge/internal/domain"
	"github.com/mythicforge/hero-forge/internal/hero"
)

// Attribute values for the Stage header entry.
const (
	stageValueRevealed   = "Revealed"
	stageValueCustomized = "Hero"
)

// Attribute is one trait_type/value entry of a metadata document
type Attribute struct {
	TraitType string `json:"trait_type"`
	Value     any    `json:"value"`
}

// FileRef points at one piece of content attached to the document
type FileRef struct {
	URI  string `json:"uri"`
	Type string `json:"type"`
}

// Properties carries the content listing of the document
type Properties struct {
	Files []FileRef `json:"files"`
}

// Document is the metadata document pinned for each token
type Document struct {
	Name        string      `json:"name"`
	MintName    string      `json:"mint_name,omitempty"`
	Description string      `json:"description,omitempty"`
	Image       string      `json:"image"`
	ExternalURL string      `json:"external_url,omitempty"`
	Properties  Properties  `json:"properties"`
	Attributes  []Attribute `json:"attributes"`
}

// Assembler builds metadata documents
type Assembler struct {
	externalURL string
}

// NewAssembler creates an assembler. externalURL is the project website
// written into every document.
func NewAssembler(externalURL string) *Assembler {
	return &Assembler{externalURL: externalURL}
}

// AssembleRevealed builds the pre-customization document for a freshly
// revealed token: stock hero tier artwork and the header attribute block
// only, no trait or skill entries yet.
func (a *Assembler) AssembleRevealed(name string, tome domain.Tome, statPoints, cosmeticPoints int, statTier, cosmeticTier, heroTier domain.Tier) Document {
	image := hero.HeroTierImageURLs[heroTier]

	return Document{
		Name:        name,
		MintName:    name,
		Image:       image,
		ExternalURL: a.externalURL,
		Properties: Properties{
			Files: []FileRef{{URI: image, Type: "image/png"}},
		},
		Attributes: headerAttributes(stageValueRevealed, tome, statPoints, cosmeticPoints, statTier, cosmeticTier, heroTier),
	}
}

// AssembleCustomized merges the prior document with the customization's
// traits and skills. imageURL is the freshly uploaded render's content
// address; when empty the prior document's image is retained and marked as
// the original PNG. The header attribute block keeps its fixed order;
// trait and skill entries are deduplicated by exact (trait_type, value)
// identity, first occurrence winning.
func (a *Assembler) AssembleCustomized(req domain.PipelineRequest, prior *Document, imageURL string) Document {
	image := imageURL
	fileType := "image/jpeg"
	if image == "" && prior != nil {
		image = prior.Image
		fileType = "image/png"
	}

	attributes := headerAttributes(stageValueCustomized, req.Tome,
		req.StatPoints, req.CosmeticPoints, req.StatTier, req.CosmeticTier, req.HeroTier)
	attributes = append(attributes, dedupeAttributes(selectionAttributes(req.Skills, req.CosmeticTraits))...)

	doc := Document{
		Name:        req.TokenName,
		MintName:    req.MintName,
		Image:       image,
		ExternalURL: a.externalURL,
		Properties: Properties{
			Files: []FileRef{{URI: image, Type: fileType}},
		},
		Attributes: attributes,
	}
	if prior != nil {
		doc.Description = prior.Description
	}
	return doc
}

// Canonicalize serializes the document into RFC 8785 canonical JSON, the
// form pinned to IPFS and written to the metadata folder.
func Canonicalize(doc Document) ([]byte, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata: %w", err)
	}

	canonical, err := jcs.Transform(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to canonicalize metadata: %w", err)
	}
	return canonical, nil
}

// Parse decodes a previously pinned document
func Parse(raw []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse metadata: %w", err)
	}
	return &doc, nil
}

func headerAttributes(stage string, tome domain.Tome, statPoints, cosmeticPoints int, statTier, cosmeticTier, heroTier domain.Tier) []Attribute {
	return []Attribute{
		{TraitType: "Stage", Value: stage},
		{TraitType: "Tome", Value: string(tome)},
		{TraitType: "Hero Tier", Value: string(heroTier)},
		{TraitType: "Stat Tier", Value: string(statTier)},
		{TraitType: "Cosmetic Tier", Value: string(cosmeticTier)},
		{TraitType: "Stat Points", Value: statPoints},
		{TraitType: "Cosmetic Points", Value: cosmeticPoints},
	}
}

// selectionAttributes lists the character's cosmetic and skill entries in
// their fixed display order. Race leads the cosmetic block: it is rendered
// even though it carries no point cost.
func selectionAttributes(skills domain.Skills, traits domain.CosmeticTraits) []Attribute {
	attributes := make([]Attribute, 0, 22)

	attributes = append(attributes, Attribute{TraitType: "Race", Value: traits.Race})
	for _, sel := range hero.CostedSelections(traits) {
		attributes = append(attributes, Attribute{
			TraitType: hero.TraitDisplayNames[sel.Category],
			Value:     sel.Selection,
		})
	}

	attributes = append(attributes,
		Attribute{TraitType: hero.SkillDisplayNames["constitution"], Value: skills.Constitution},
		Attribute{TraitType: hero.SkillDisplayNames["strength"], Value: skills.Strength},
		Attribute{TraitType: hero.SkillDisplayNames["dexterity"], Value: skills.Dexterity},
		Attribute{TraitType: hero.SkillDisplayNames["intelligence"], Value: skills.Intelligence},
		Attribute{TraitType: hero.SkillDisplayNames["wisdom"], Value: skills.Wisdom},
		Attribute{TraitType: hero.SkillDisplayNames["charisma"], Value: skills.Charisma},
	)

	return attributes
}

// dedupeAttributes drops repeated (trait_type, value) pairs, keeping the
// first occurrence in place.
func dedupeAttributes(attributes []Attribute) []Attribute {
	seen := make(map[string]bool, len(attributes))
	unique := make([]Attribute, 0, len(attributes))
	for _, attr := range attributes {
		key := fmt.Sprintf("%s\x00%v", attr.TraitType, attr.Value)
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, attr)
	}
	return unique
}
