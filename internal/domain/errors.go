package domain

import "errors"

var (
	// ErrTokenNotFound is returned when a token address is unknown
	ErrTokenNotFound = errors.New("token not found")

	// ErrCharacterNotFound is returned when a token has no character record
	ErrCharacterNotFound = errors.New("character not found")

	// ErrTokenNameNotFound is returned when a token has no name history
	ErrTokenNameNotFound = errors.New("token name not found")

	// ErrTokenAlreadyRevealed is returned when revealing a token twice
	ErrTokenAlreadyRevealed = errors.New("token already revealed")

	// ErrTokenNotRevealed is returned when customizing an unrevealed token
	ErrTokenNotRevealed = errors.New("token has not been revealed")

	// ErrTokenAlreadyCustomized is returned when the primary customization
	// flow runs against a token that already has a character
	ErrTokenAlreadyCustomized = errors.New("token already customized")

	// ErrPoolExhausted is returned when a tome has no unrevealed slots left
	ErrPoolExhausted = errors.New("all tokens already revealed")

	// ErrBudgetMismatch is returned when skill allocations do not sum to the
	// token's stat points exactly
	ErrBudgetMismatch = errors.New("skill allocations do not match stat points")

	// ErrBudgetExceeded is returned when the cosmetic cost of the selected
	// traits exceeds the token's cosmetic points
	ErrBudgetExceeded = errors.New("cosmetic trait cost exceeds cosmetic points")

	// ErrUnknownTrait is returned when a trait selection is not part of the
	// closed trait enumeration
	ErrUnknownTrait = errors.New("unknown trait selection")

	// ErrRenderFailed is returned when the external render worker reports a failure
	ErrRenderFailed = errors.New("render failed")

	// ErrUploadFailed is returned when a content-addressed upload fails
	ErrUploadFailed = errors.New("upload failed")

	// ErrChainUpdateFailed is returned when the on-chain metadata update
	// transaction cannot be submitted
	ErrChainUpdateFailed = errors.New("on-chain metadata update failed")
)
