// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/bookroyalty/internal/core/catalog"
)

func TestSeed(t *testing.T) {
	registry := catalog.NewRegistry(nil)
	require.NoError(t, seed(registry, "2024-01-01"))

	assert.Len(t, registry.Authors(), 3)
	assert.Len(t, registry.Books(), 5)
	assert.Len(t, registry.Contracts(), 6)

	contracts, err := registry.ContractsByDate("2024-01-01")
	require.NoError(t, err)

	var got []string
	for _, c := range contracts {
		got = append(got, c.Book().Title()+"/"+c.Author().Name())
	}
	assert.Equal(t, []string{
		"A Wizard of Earthsea/Ursula K. Le Guin",
		"American Gods/Neil Gaiman",
		"Good Omens/Neil Gaiman",
		"Good Omens/Terry Pratchett",
	}, got)

	gaiman := registry.AuthorsBySlug("Neil Gaiman")
	require.Len(t, gaiman, 1)
	assert.Equal(t, int64(25), gaiman[0].TotalRoyalties())
}

func TestSeed_BlankDate(t *testing.T) {
	registry := catalog.NewRegistry(nil)
	assert.Error(t, seed(registry, " "))
}
