package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ton_portfolio/internal/domain/entity"
)

func TestHasPositiveBalance(t *testing.T) {
	assert.True(t, HasPositiveBalance("1"))
	assert.True(t, HasPositiveBalance("123456789012345678901234567890"))
	assert.False(t, HasPositiveBalance("0"))
	assert.False(t, HasPositiveBalance("000"))
	assert.False(t, HasPositiveBalance(""))
	assert.False(t, HasPositiveBalance("-5"))
	assert.False(t, HasPositiveBalance("1.5"))
	assert.False(t, HasPositiveBalance("abc"))
}

func TestFilterNonZero(t *testing.T) {
	tokens := []entity.Token{
		{DisplayName: "TON", Balance: "1500000000", Decimals: 9},
		{DisplayName: "Empty", Balance: "0", Decimals: 9},
		{DisplayName: "Missing", Balance: "", Decimals: 6},
		{DisplayName: "USDT", Balance: "2500000", Decimals: 6},
	}

	got := FilterNonZero(tokens)

	if assert.Len(t, got, 2) {
		assert.Equal(t, "TON", got[0].DisplayName)
		assert.Equal(t, "USDT", got[1].DisplayName)
	}
	assert.Empty(t, FilterNonZero(nil))
}

func TestFormatUnits(t *testing.T) {
	assert.Equal(t, "1.234500", FormatUnits("1234500000", 9, 6))
	assert.Equal(t, "2.500000", FormatUnits("2500000", 6, 6))
	assert.Equal(t, "42.000000", FormatUnits("42", 0, 6))
	assert.Equal(t, "0.000001", FormatUnits("1234", 9, 6))
	assert.Equal(t, "0.000000", FormatUnits("not-a-number", 9, 6))
	assert.Equal(t, "3", FormatUnits("3000", 3, 0))
}

func TestLastN(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}
	assert.Equal(t, []int{3, 4, 5, 6, 7}, LastN(items, 5))
	assert.Equal(t, []int{1, 2}, LastN([]int{1, 2}, 5))
	assert.Empty(t, LastN(items, 0))
}
