package people

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func family() []Person {
	return []Person{
		{Name: "Carolus Haverbeke", Sex: "m", Born: 1832, Died: 1905, FatherName: "Carel Haverbeke", MotherName: "Maria van Brussel", Slug: "carolus-haverbeke-1832"},
		{Name: "Emma de Milliano", Sex: "f", Born: 1876, Died: 1956, FatherName: "Petrus de Milliano", MotherName: "Sophia van Damme", Slug: "emma-de-milliano-1876"},
		{Name: "Maria de Rycke", Sex: "f", Born: 1683, Died: 1724, FatherName: "Frederik de Rycke", MotherName: "Laurentia van Vlaenderen", Slug: "maria-de-rycke-1683"},
		{Name: "Jan van Brussel", Sex: "m", Born: 1714, Died: 1748, FatherName: "Jacobus van Brussel", Slug: "jan-van-brussel-1714"},
		{Name: "Philibert Haverbeke", Sex: "m", Born: 1907, Died: 1997, FatherName: "Emile Haverbeke", MotherName: "Emma de Milliano", Slug: "philibert-haverbeke-1907"},
		{Name: "Jan Frans van Brussel", Sex: "m", Born: 1761, Died: 1833, FatherName: "Jacobus Bernardus van Brussel", Slug: "jan-frans-van-brussel-1761"},
		{Name: "Pauwels van Haverbeke", Sex: "m", Born: 1535, Died: 1582, FatherName: "N. van Haverbeke", Slug: "pauwels-van-haverbeke-1535"},
	}
}

func TestCentury(t *testing.T) {
	tests := []struct {
		year int
		want int
	}{
		{1535, 16},
		{1600, 16},
		{1601, 17},
		{1907, 20},
		{2000, 20},
		{0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Century(tt.year), "year %d", tt.year)
	}
}

func TestWithParents_ResolvesMother(t *testing.T) {
	enriched := WithParents(family())

	philibert := enriched[4]
	require.NotNil(t, philibert.Mother)
	assert.Equal(t, "Emma de Milliano", philibert.Mother.Name)
	assert.Equal(t, "emma-de-milliano-1876", philibert.Mother.Slug)
	assert.Nil(t, philibert.Father, "Emile Haverbeke is not in the list")
}

func TestWithParents_NoMatch(t *testing.T) {
	enriched := WithParents(family())

	for _, p := range enriched[:4] {
		assert.Nil(t, p.Mother, p.Name)
		assert.Nil(t, p.Father, p.Name)
	}
}

func TestWithParents_EmptyParentNameNeverMatches(t *testing.T) {
	list := []Person{
		{Name: "", Sex: "f", Born: 1800},
		{Name: "Orphan", Sex: "m", Born: 1820},
	}

	enriched := WithParents(list)

	assert.Nil(t, enriched[1].Mother)
	assert.Nil(t, enriched[1].Father)
}

func TestWithParents_FirstMatchWins(t *testing.T) {
	list := []Person{
		{Name: "Anna", Sex: "f", Born: 1700, Slug: "anna-1700"},
		{Name: "Anna", Sex: "f", Born: 1705, Slug: "anna-1705"},
		{Name: "Child", Sex: "m", Born: 1730, MotherName: "Anna"},
	}

	enriched := WithParents(list)

	require.NotNil(t, enriched[2].Mother)
	assert.Equal(t, "anna-1700", enriched[2].Mother.Slug)
}

func TestWithParents_LeavesInputUntouched(t *testing.T) {
	list := family()

	_ = WithParents(list)

	for _, p := range list {
		assert.Nil(t, p.Mother)
		assert.Nil(t, p.Father)
	}
}

func TestWithParents_Empty(t *testing.T) {
	assert.Empty(t, WithParents(nil))
}
