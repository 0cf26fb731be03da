package catalog

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll_SortedMostRecentFirst(t *testing.T) {
	pubs := All()

	require.NotEmpty(t, pubs)
	assert.True(t, sort.SliceIsSorted(pubs, func(i, j int) bool {
		return pubs[i].Date > pubs[j].Date
	}))
	assert.Equal(t, "800-218A", pubs[0].ID)
}

func TestLookup(t *testing.T) {
	pub, ok := Lookup("800-218A")
	require.True(t, ok)
	assert.Equal(t, "2024-07-26", pub.Date)
	assert.Equal(t, "https://csrc.nist.gov/pubs/sp/800/218/a/final", pub.URL)

	_, ok = Lookup("800-999")
	assert.False(t, ok)
}

func TestVerified_ExcludesInvalidIDs(t *testing.T) {
	verified := Verified()

	ids := make(map[string]bool, len(verified))
	for _, pub := range verified {
		ids[pub.ID] = true
	}
	for _, invalid := range InvalidIDs() {
		assert.False(t, ids[invalid], "invalid id %s must not be in verified set", invalid)
	}
	assert.True(t, ids["800-218A"])
	assert.True(t, ids["800-218"])
}

func TestKeyIDs_AreInCatalogOrPrefixOfRecord(t *testing.T) {
	// Key ids are literal substrings a report must carry; each must
	// correspond to a real catalog record (directly or as an
	// unrevisioned prefix, e.g. 800-171 for 800-171r3).
	for _, key := range KeyIDs() {
		found := false
		for _, pub := range All() {
			if pub.ID == key || len(pub.ID) > len(key) && pub.ID[:len(key)] == key {
				found = true
				break
			}
		}
		assert.True(t, found, "key id %s has no catalog record", key)
	}
}

func TestInvalidIDs_ReturnsCopy(t *testing.T) {
	ids := InvalidIDs()
	require.NotEmpty(t, ids)
	ids[0] = "mutated"
	assert.NotEqual(t, "mutated", InvalidIDs()[0])
}

func TestReferenceGuide_ListsVerifiedRecords(t *testing.T) {
	guide := ReferenceGuide()

	assert.Contains(t, guide, "800-218A")
	assert.Contains(t, guide, "2024-07-26")
	assert.Contains(t, guide, "https://csrc.nist.gov/pubs/sp/800/218/a/final")
	assert.NotContains(t, guide, "800-210:")
}

func TestRef_ImplementsTableAccess(t *testing.T) {
	ref := Ref{}
	assert.Equal(t, Verified(), ref.Verified())
	assert.Equal(t, InvalidIDs(), ref.InvalidIDs())
	assert.Equal(t, KeyIDs(), ref.KeyIDs())
}
