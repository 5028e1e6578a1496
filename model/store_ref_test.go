package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStoreRef(t *testing.T) {
	t.Run("valid references", func(t *testing.T) {
		ref, err := ParseStoreRef("account_3")
		assert.NoError(t, err)
		assert.Equal(t, StoreRef{Kind: StoreAccount, ID: 3}, ref)

		ref, err = ParseStoreRef("card_7")
		assert.NoError(t, err)
		assert.Equal(t, StoreRef{Kind: StoreCard, ID: 7}, ref)
	})

	t.Run("account and card ids are separate namespaces", func(t *testing.T) {
		account, _ := ParseStoreRef("account_3")
		card, _ := ParseStoreRef("card_3")
		assert.NotEqual(t, account, card)
	})

	t.Run("invalid references", func(t *testing.T) {
		for _, s := range []string{"", "account", "account_", "account_0", "account_-1", "account_x", "wallet_3", "_3", "3"} {
			_, err := ParseStoreRef(s)
			assert.ErrorIs(t, err, ErrInvalidStoreRef, "input %q", s)
		}
	})
}

func TestStoreRefString(t *testing.T) {
	assert.Equal(t, "account_3", StoreRef{Kind: StoreAccount, ID: 3}.String())
	assert.Equal(t, "card_7", StoreRef{Kind: StoreCard, ID: 7}.String())

	// String and ParseStoreRef must round-trip.
	ref, err := ParseStoreRef(StoreRef{Kind: StoreCard, ID: 7}.String())
	assert.NoError(t, err)
	assert.Equal(t, StoreRef{Kind: StoreCard, ID: 7}, ref)
}
