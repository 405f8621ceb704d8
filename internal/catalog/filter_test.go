package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCollection() []*Product {
	desc := "Hand-stitched leather wallet"
	other := "Ceramic mug with lid"
	return []*Product{
		{ID: "p1", Title: "Wallet", Description: &desc, Categories: []string{"leather", "accessories"}, CreatedAt: time.Now()},
		{ID: "p2", Title: "Mug", Description: &other, Categories: []string{"ceramics", "kitchen"}, CreatedAt: time.Now()},
		{ID: "p3", Title: "Leather Belt", Categories: []string{"leather"}, CreatedAt: time.Now()},
		{ID: "p4", Title: "Tote Bag", Categories: []string{"leather", "accessories", "bags"}, CreatedAt: time.Now()},
	}
}

func ids(products []*Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestVisibleIdentity(t *testing.T) {
	products := sampleCollection()
	got := Visible(products, nil, "")
	assert.Equal(t, ids(products), ids(got), "no constraints returns all in input order")
}

func TestVisibleCategorySuperset(t *testing.T) {
	products := sampleCollection()

	got := Visible(products, []string{"leather", "accessories"}, "")
	assert.Equal(t, []string{"p1", "p4"}, ids(got))

	got = Visible(products, []string{"leather"}, "")
	assert.Equal(t, []string{"p1", "p3", "p4"}, ids(got))

	got = Visible(products, []string{"nonexistent"}, "")
	assert.Empty(t, got)
}

func TestVisibleCategoryExactMatch(t *testing.T) {
	products := sampleCollection()
	// "leath" must not prefix-match "leather".
	got := Visible(products, []string{"leath"}, "")
	assert.Empty(t, got)
}

func TestVisibleSearch(t *testing.T) {
	products := sampleCollection()

	t.Run("case-insensitive title match", func(t *testing.T) {
		got := Visible(products, nil, "wALLet")
		assert.Equal(t, []string{"p1"}, ids(got))
	})

	t.Run("description matches too", func(t *testing.T) {
		got := Visible(products, nil, "lid")
		assert.Equal(t, []string{"p2"}, ids(got))
	})

	t.Run("whitespace-only search is empty search", func(t *testing.T) {
		got := Visible(products, nil, "   \t ")
		assert.Equal(t, ids(products), ids(got))
	})

	t.Run("surrounding whitespace trimmed before matching", func(t *testing.T) {
		got := Visible(products, nil, "  mug  ")
		assert.Equal(t, []string{"p2"}, ids(got))
	})

	t.Run("no match", func(t *testing.T) {
		got := Visible(products, nil, "zzz")
		assert.Empty(t, got)
	})
}

func TestVisibleCombined(t *testing.T) {
	products := sampleCollection()
	got := Visible(products, []string{"leather"}, "leather")
	// p1 matches via description, p3 via title; p4 has no text match.
	require.Equal(t, []string{"p1", "p3"}, ids(got))
}
