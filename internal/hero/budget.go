package hero

import (
	"fmt"

	"github.com/mythicforge/hero-forge/internal/domain"
)

// ValidateSkills checks that the skill allocations spend the stat point
// budget exactly. Both over- and under-spending fail.
func ValidateSkills(statPoints int, skills domain.Skills) error {
	if skills.Total() != statPoints {
		return fmt.Errorf("%w: allocated %d of %d stat points",
			domain.ErrBudgetMismatch, skills.Total(), statPoints)
	}
	return nil
}

// ValidateTraits checks that the total cosmetic cost of the fifteen costed
// selections does not exceed the cosmetic point budget. A selection outside
// the closed trait enumeration fails validation outright.
func ValidateTraits(cosmeticPoints int, traits domain.CosmeticTraits) error {
	spent := 0
	for _, sel := range CostedSelections(traits) {
		cost, ok := TraitCost(sel.Category, sel.Selection)
		if !ok {
			return fmt.Errorf("%w: %s %q", domain.ErrUnknownTrait, sel.Category, sel.Selection)
		}
		spent += cost
	}

	if spent > cosmeticPoints {
		return fmt.Errorf("%w: selections cost %d, budget is %d",
			domain.ErrBudgetExceeded, spent, cosmeticPoints)
	}
	return nil
}
