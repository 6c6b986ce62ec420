// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog_test

import (
	"bytes"
	"fmt"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/bookroyalty/internal/core/catalog"
	"github.com/taibuivan/bookroyalty/internal/platform/apperr"
)

func TestRegistry_ListingPreservesOrder(t *testing.T) {
	registry := catalog.NewRegistry(nil)

	var books []*catalog.Book
	for _, title := range []string{"C", "A", "B"} {
		books = append(books, mustBook(t, registry, title))
	}

	assert.Equal(t, books, registry.Books())

	// Returned slices are copies.
	listed := registry.Books()
	listed[0] = nil
	assert.Equal(t, books, registry.Books())
}

func TestRegistry_Lookups(t *testing.T) {
	registry := catalog.NewRegistry(nil)
	book := mustBook(t, registry, "Cien años de soledad")
	author := mustAuthor(t, registry, "Gabriel García Márquez")

	found, ok := registry.BookByID(book.ID())
	require.True(t, ok)
	assert.Same(t, book, found)

	foundAuthor, ok := registry.AuthorByID(author.ID())
	require.True(t, ok)
	assert.Same(t, author, foundAuthor)

	_, ok = registry.BookByID("missing")
	assert.False(t, ok)
	_, ok = registry.ContractByID("missing")
	assert.False(t, ok)

	assert.Equal(t, []*catalog.Book{book}, registry.BooksBySlug("CIEN ANOS DE SOLEDAD"))
	assert.Equal(t, []*catalog.Author{author}, registry.AuthorsBySlug("gabriel garcia marquez"))
	assert.Empty(t, registry.BooksBySlug("unknown"))
}

/*
TestRegistry_Reset verifies lists are emptied and stale entities are rejected.
*/
func TestRegistry_Reset(t *testing.T) {
	var buf bytes.Buffer
	registry := catalog.NewRegistry(slog.New(slog.NewTextHandler(&buf, nil)))

	book := mustBook(t, registry, "Dune")
	author := mustAuthor(t, registry, "Frank Herbert")
	mustSign(t, author, book, "2024-01-01", 10)

	registry.Reset()

	assert.Empty(t, registry.Books())
	assert.Empty(t, registry.Authors())
	assert.Empty(t, registry.Contracts())
	assert.Empty(t, author.Contracts())
	assert.Equal(t, int64(0), author.TotalRoyalties())
	assert.Contains(t, buf.String(), "registry_reset")

	_, err := author.SignContract(book, "2024-01-01", 10)
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)

	fresh := mustBook(t, registry, "Dune Messiah")
	_, err = author.SignContract(fresh, "2024-01-01", 10)
	require.ErrorIs(t, err, apperr.ErrInvalidArgument)
	assert.Equal(t, catalog.FieldAuthor, apperr.As(err).Details[0].Field)
	assert.Empty(t, registry.Contracts())
}

func TestRegistry_LogsEvents(t *testing.T) {
	var buf bytes.Buffer
	registry := catalog.NewRegistry(slog.New(slog.NewTextHandler(&buf, nil)))

	book := mustBook(t, registry, "Dune")
	author := mustAuthor(t, registry, "Frank Herbert")
	mustSign(t, author, book, "2024-01-01", 10)

	out := buf.String()
	assert.Contains(t, out, "msg=book_created")
	assert.Contains(t, out, "msg=author_created")
	assert.Contains(t, out, "msg=contract_signed")
	assert.Contains(t, out, "royalties=10")
}

/*
TestRegistry_Concurrent runs construction and queries in parallel.
Run with -race to check the locking.
*/
func TestRegistry_Concurrent(t *testing.T) {
	registry := catalog.NewRegistry(nil)
	book := mustBook(t, registry, "Shared")

	const workers = 8
	const perWorker = 25

	var wg sync.WaitGroup
	for w := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			author, err := registry.NewAuthor(fmt.Sprintf("Author %d", w))
			if !assert.NoError(t, err) {
				return
			}
			for range perWorker {
				_, err := author.SignContract(book, "2024-01-01", 1)
				assert.NoError(t, err)
				_ = book.Contracts()
				_, _ = registry.ContractsByDate("2024-01-01")
			}
		}()
	}
	wg.Wait()

	assert.Len(t, registry.Contracts(), workers*perWorker)
	assert.Len(t, book.Authors(), workers*perWorker)
	for _, author := range registry.Authors() {
		assert.Equal(t, int64(perWorker), author.TotalRoyalties())
	}
}
