package store

import (
	"context"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/mythicforge/hero-forge/internal/domain"
	"github.com/mythicforge/hero-forge/internal/store/schema"
)

// InitDBFunc initializes a clean store for one test. The raw *gorm.DB is
// returned alongside so tests can seed rows the Store interface has no
// writer for (token_names) and inspect append-only tables.
type InitDBFunc func(t *testing.T) (Store, *gorm.DB)

// =============================================================================
// Test Data Builders
// =============================================================================

// buildTestToken creates a token row ready for CreateToken
func buildTestToken(tokenAddress string, tome domain.Tome, tokenNumber int64) *schema.Token {
	return &schema.Token{
		TokenAddress:   tokenAddress,
		Tome:           tome,
		TokenNumber:    tokenNumber,
		StatPoints:     70,
		CosmeticPoints: 55,
		StatTier:       domain.TierRare,
		CosmeticTier:   domain.TierRare,
		HeroTier:       domain.TierEpic,
		MintName:       "Hero #" + tokenAddress,
	}
}

// buildTestCharacter creates a character row for a token
func buildTestCharacter(nftID int64) *schema.Character {
	character := &schema.Character{NFTID: nftID}
	character.ApplySelections(
		domain.Skills{Constitution: 20, Strength: 10, Dexterity: 10, Intelligence: 10, Wisdom: 10, Charisma: 10},
		domain.CosmeticTraits{
			Race: "Human", Sex: "Male", FaceStyle: "Gaunt", SkinTone: "Pale",
			EyeDetail: "None", Eyes: "Brown", FacialHair: "None", Glasses: "None",
			HairStyle: "Bald", HairColor: "Black", Necklace: "None", Earring: "None",
			NosePiercing: "None", Scar: "None", Tattoo: "None", Background: "Plain",
		},
	)
	return character
}

// mustCreateToken creates a token and fails the test on error
func mustCreateToken(t *testing.T, s Store, tokenAddress string, tome domain.Tome, tokenNumber int64) *schema.Token {
	t.Helper()

	token := buildTestToken(tokenAddress, tome, tokenNumber)
	require.NoError(t, s.CreateToken(context.Background(), token))
	require.NotZero(t, token.ID)
	return token
}

// =============================================================================
// Suite
// =============================================================================

// RunStoreTests runs the store contract tests against an implementation
func RunStoreTests(t *testing.T, initDB InitDBFunc) {
	ctx := context.Background()

	t.Run("CreateAndGetToken", func(t *testing.T) {
		s, _ := initDB(t)

		created := mustCreateToken(t, s, "addr-1", domain.TomeWoodlandRespite, 1)

		byAddress, err := s.GetTokenByAddress(ctx, "addr-1")
		require.NoError(t, err)
		require.NotNil(t, byAddress)
		assert.Equal(t, created.ID, byAddress.ID)
		assert.Equal(t, domain.TomeWoodlandRespite, byAddress.Tome)
		assert.Equal(t, int64(1), byAddress.TokenNumber)

		byID, err := s.GetTokenByID(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, byID)
		assert.Equal(t, "addr-1", byID.TokenAddress)
	})

	t.Run("GetToken_NotFound", func(t *testing.T) {
		s, _ := initDB(t)

		token, err := s.GetTokenByAddress(ctx, "addr-missing")
		require.NoError(t, err)
		assert.Nil(t, token)

		token, err = s.GetTokenByID(ctx, 999999)
		require.NoError(t, err)
		assert.Nil(t, token)
	})

	t.Run("CreateToken_DuplicateAddress", func(t *testing.T) {
		s, _ := initDB(t)

		mustCreateToken(t, s, "addr-1", domain.TomeWoodlandRespite, 1)

		err := s.CreateToken(ctx, buildTestToken("addr-1", domain.TomeWoodlandRespite, 2))
		assert.ErrorIs(t, err, domain.ErrTokenAlreadyRevealed)
	})

	t.Run("CreateToken_DuplicateSlot", func(t *testing.T) {
		s, _ := initDB(t)

		mustCreateToken(t, s, "addr-1", domain.TomeWoodlandRespite, 1)

		// A different address claiming the same slot loses the race
		err := s.CreateToken(ctx, buildTestToken("addr-2", domain.TomeWoodlandRespite, 1))
		assert.ErrorIs(t, err, domain.ErrTokenAlreadyRevealed)

		// The same slot number in the other tome is fine
		require.NoError(t, s.CreateToken(ctx, buildTestToken("addr-3", domain.TomeDawnOfMan, 1)))
	})

	t.Run("ListTokensAndRevealedNumbers", func(t *testing.T) {
		s, _ := initDB(t)

		mustCreateToken(t, s, "addr-1", domain.TomeWoodlandRespite, 3)
		mustCreateToken(t, s, "addr-2", domain.TomeWoodlandRespite, 1)
		mustCreateToken(t, s, "addr-3", domain.TomeDawnOfMan, 2)

		tokens, err := s.ListTokens(ctx)
		require.NoError(t, err)
		assert.Len(t, tokens, 3)

		numbers, err := s.ListRevealedTokenNumbers(ctx, domain.TomeWoodlandRespite)
		require.NoError(t, err)
		assert.ElementsMatch(t, []int64{1, 3}, numbers)

		numbers, err = s.ListRevealedTokenNumbers(ctx, domain.TomeDawnOfMan)
		require.NoError(t, err)
		assert.ElementsMatch(t, []int64{2}, numbers)
	})

	t.Run("TomeSlots", func(t *testing.T) {
		s, _ := initDB(t)

		count, err := s.CountTomeSlots(ctx, domain.TomeWoodlandRespite)
		require.NoError(t, err)
		assert.Equal(t, int64(5), count)

		count, err = s.CountTomeSlots(ctx, domain.TomeDawnOfMan)
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)

		slot, err := s.GetTomeSlot(ctx, domain.TomeWoodlandRespite, 3)
		require.NoError(t, err)
		require.NotNil(t, slot)
		assert.Equal(t, 95, slot.StatPoints)
		assert.Equal(t, 90, slot.CosmeticPoints)
		assert.Equal(t, domain.TierMythic, slot.HeroTier)

		slot, err = s.GetTomeSlot(ctx, domain.TomeWoodlandRespite, 99)
		require.NoError(t, err)
		assert.Nil(t, slot)
	})

	t.Run("CharacterLifecycle", func(t *testing.T) {
		s, _ := initDB(t)

		token := mustCreateToken(t, s, "addr-1", domain.TomeWoodlandRespite, 1)

		character := buildTestCharacter(token.ID)
		require.NoError(t, s.CreateCharacter(ctx, character))

		loaded, err := s.GetCharacterByNFTID(ctx, token.ID)
		require.NoError(t, err)
		require.NotNil(t, loaded)
		assert.Equal(t, 20, loaded.Constitution)
		assert.Equal(t, "Gaunt", loaded.FaceStyle)

		loaded.Background = "Castle"
		require.NoError(t, s.UpdateCharacter(ctx, loaded))

		reloaded, err := s.GetCharacterByNFTID(ctx, token.ID)
		require.NoError(t, err)
		assert.Equal(t, "Castle", reloaded.Background)

		require.NoError(t, s.DeleteCharacter(ctx, token.ID))

		gone, err := s.GetCharacterByNFTID(ctx, token.ID)
		require.NoError(t, err)
		assert.Nil(t, gone)
	})

	t.Run("CreateCharacter_OnePerToken", func(t *testing.T) {
		s, _ := initDB(t)

		token := mustCreateToken(t, s, "addr-1", domain.TomeWoodlandRespite, 1)
		require.NoError(t, s.CreateCharacter(ctx, buildTestCharacter(token.ID)))

		err := s.CreateCharacter(ctx, buildTestCharacter(token.ID))
		assert.ErrorIs(t, err, domain.ErrTokenAlreadyCustomized)
	})

	t.Run("DeleteCharacter_NotFound", func(t *testing.T) {
		s, _ := initDB(t)

		err := s.DeleteCharacter(ctx, 999999)
		assert.ErrorIs(t, err, domain.ErrCharacterNotFound)
	})

	t.Run("ListCharacters_Pagination", func(t *testing.T) {
		s, _ := initDB(t)

		for i := int64(1); i <= 3; i++ {
			token := mustCreateToken(t, s, "addr-"+strings.Repeat("x", int(i)), domain.TomeWoodlandRespite, i)
			character := buildTestCharacter(token.ID)
			// Spread creation times so ordering is deterministic
			character.CreatedAt = time.Now().Add(time.Duration(i) * time.Second)
			require.NoError(t, s.CreateCharacter(ctx, character))
		}

		all, err := s.ListCharacters(ctx, 0, 0)
		require.NoError(t, err)
		assert.Len(t, all, 3)

		page, err := s.ListCharacters(ctx, 2, 0)
		require.NoError(t, err)
		assert.Len(t, page, 2)

		rest, err := s.ListCharacters(ctx, 2, 2)
		require.NoError(t, err)
		require.Len(t, rest, 1)
		assert.Equal(t, all[2].ID, rest[0].ID)
	})

	t.Run("GetLatestTokenName", func(t *testing.T) {
		s, db := initDB(t)

		token := mustCreateToken(t, s, "addr-1", domain.TomeWoodlandRespite, 1)

		name, err := s.GetLatestTokenName(ctx, token.ID)
		require.NoError(t, err)
		assert.Nil(t, name)

		// Names are written by the moderation tooling, not the Store
		older := &schema.TokenName{
			NFTID:           token.ID,
			TokenName:       "First Name",
			TokenNameStatus: schema.NameStatusApproved,
			UpdatedAt:       time.Now().Add(-time.Hour),
		}
		require.NoError(t, db.Create(older).Error)
		newer := &schema.TokenName{
			NFTID:           token.ID,
			TokenName:       "Second Name",
			TokenNameStatus: schema.NameStatusPending,
			UpdatedAt:       time.Now(),
		}
		require.NoError(t, db.Create(newer).Error)

		name, err = s.GetLatestTokenName(ctx, token.ID)
		require.NoError(t, err)
		require.NotNil(t, name)
		assert.Equal(t, "Second Name", name.TokenName)
		assert.Equal(t, schema.NameStatusPending, name.TokenNameStatus)
	})

	t.Run("MetadataRecords_AppendOnlyLog", func(t *testing.T) {
		s, _ := initDB(t)

		token := mustCreateToken(t, s, "addr-1", domain.TomeWoodlandRespite, 1)

		latest, err := s.GetLatestMetadataRecord(ctx, token.ID)
		require.NoError(t, err)
		assert.Nil(t, latest)

		require.NoError(t, s.AppendMetadataRecord(ctx, &schema.MetadataRecord{
			NFTID:       token.ID,
			Stage:       domain.StageRevealed,
			MetadataURL: "ipfs://QmRevealed",
			ImageURL:    "ipfs://QmStock",
			Document:    datatypes.JSON(`{"name":"Hero #1"}`),
			CreatedAt:   time.Now().Add(-time.Hour),
		}))
		require.NoError(t, s.AppendMetadataRecord(ctx, &schema.MetadataRecord{
			NFTID:       token.ID,
			Stage:       domain.StageCustomized,
			MetadataURL: "ipfs://QmCustomized",
			ImageURL:    "ipfs://QmRendered",
			CreatedAt:   time.Now(),
		}))

		latest, err = s.GetLatestMetadataRecord(ctx, token.ID)
		require.NoError(t, err)
		require.NotNil(t, latest)
		assert.Equal(t, domain.StageCustomized, latest.Stage)
		assert.Equal(t, "ipfs://QmCustomized", latest.MetadataURL)
	})

	t.Run("AppendErrorRecord_TruncatesMessage", func(t *testing.T) {
		s, db := initDB(t)

		long := strings.Repeat("a", 400)
		require.NoError(t, s.AppendErrorRecord(ctx, "addr-1", "reveal", long))

		var record schema.ErrorRecord
		require.NoError(t, db.Where("token_address = ?", "addr-1").First(&record).Error)
		assert.Equal(t, "reveal", record.Operation)
		assert.Len(t, record.Message, 250)
	})

	t.Run("AppendErrorRecord_TruncatesOnRuneBoundary", func(t *testing.T) {
		s, db := initDB(t)

		// Multi-byte runes must not be split mid-sequence
		long := strings.Repeat("é", 400)
		require.NoError(t, s.AppendErrorRecord(ctx, "addr-2", "customize", long))

		var record schema.ErrorRecord
		require.NoError(t, db.Where("token_address = ?", "addr-2").First(&record).Error)
		assert.True(t, utf8.ValidString(record.Message))
		assert.Equal(t, 250, utf8.RuneCountInString(record.Message))
	})
}
