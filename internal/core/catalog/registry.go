// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"log/slog"
	"slices"
	"sync"

	"github.com/taibuivan/bookroyalty/internal/platform/constants"
	"github.com/taibuivan/bookroyalty/internal/platform/logger"
	"github.com/taibuivan/bookroyalty/pkg/slice"
	"github.com/taibuivan/bookroyalty/pkg/slug"
)

// Registry holds every book, author and contract constructed through it,
// in construction order.
//
// # Concurrency
//
// Each list is guarded by its own lock. Construction takes the write lock of
// its list and queries take read locks and return copies. When more than one
// lock is needed they are always acquired books → authors → contracts.
type Registry struct {
	logger *slog.Logger

	booksMu   sync.RWMutex
	books     []*Book
	bookIndex map[string]*Book

	authorsMu   sync.RWMutex
	authors     []*Author
	authorIndex map[string]*Author

	contractsMu   sync.RWMutex
	contracts     []*Contract
	contractIndex map[string]*Contract
}

// NewRegistry creates an empty registry. A nil logger discards all records.
func NewRegistry(log *slog.Logger) *Registry {
	if log == nil {
		log = logger.Discard()
	}

	return &Registry{
		logger:        log,
		bookIndex:     map[string]*Book{},
		authorIndex:   map[string]*Author{},
		contractIndex: map[string]*Contract{},
	}
}

// # Listing

// Books returns every registered book in construction order.
func (registry *Registry) Books() []*Book {
	registry.booksMu.RLock()
	defer registry.booksMu.RUnlock()

	return slices.Clone(registry.books)
}

// Authors returns every registered author in construction order.
func (registry *Registry) Authors() []*Author {
	registry.authorsMu.RLock()
	defer registry.authorsMu.RUnlock()

	return slices.Clone(registry.authors)
}

// Contracts returns every registered contract in construction order.
func (registry *Registry) Contracts() []*Contract {
	registry.contractsMu.RLock()
	defer registry.contractsMu.RUnlock()

	return slices.Clone(registry.contracts)
}

// # Lookups

// BookByID returns the book registered under id.
func (registry *Registry) BookByID(id string) (*Book, bool) {
	registry.booksMu.RLock()
	defer registry.booksMu.RUnlock()

	book, ok := registry.bookIndex[id]
	return book, ok
}

// AuthorByID returns the author registered under id.
func (registry *Registry) AuthorByID(id string) (*Author, bool) {
	registry.authorsMu.RLock()
	defer registry.authorsMu.RUnlock()

	author, ok := registry.authorIndex[id]
	return author, ok
}

// ContractByID returns the contract registered under id.
func (registry *Registry) ContractByID(id string) (*Contract, bool) {
	registry.contractsMu.RLock()
	defer registry.contractsMu.RUnlock()

	contract, ok := registry.contractIndex[id]
	return contract, ok
}

// BooksBySlug returns the books whose title slugs to the same value as s.
// Titles are not unique, so several books may match.
func (registry *Registry) BooksBySlug(s string) []*Book {
	want := slug.From(s)
	return slice.Filter(registry.Books(), func(book *Book) bool {
		return book.slug == want
	})
}

// AuthorsBySlug returns the authors whose name slugs to the same value as s.
func (registry *Registry) AuthorsBySlug(s string) []*Author {
	want := slug.From(s)
	return slice.Filter(registry.Authors(), func(author *Author) bool {
		return author.slug == want
	})
}

// # Lifecycle

// Reset empties all three lists. Entities created before the reset keep their
// values but are no longer registered: their traversal queries return nothing
// and they can no longer take part in new contracts.
func (registry *Registry) Reset() {
	registry.booksMu.Lock()
	defer registry.booksMu.Unlock()
	registry.authorsMu.Lock()
	defer registry.authorsMu.Unlock()
	registry.contractsMu.Lock()
	defer registry.contractsMu.Unlock()

	registry.logger.Warn(constants.EventRegistryReset,
		slog.Int("books", len(registry.books)),
		slog.Int("authors", len(registry.authors)),
		slog.Int("contracts", len(registry.contracts)),
	)

	registry.books, registry.bookIndex = nil, map[string]*Book{}
	registry.authors, registry.authorIndex = nil, map[string]*Author{}
	registry.contracts, registry.contractIndex = nil, map[string]*Contract{}
}

// # Internal

// contractsWhere scans the contract list under a read lock.
func (registry *Registry) contractsWhere(predicate func(*Contract) bool) []*Contract {
	if registry == nil {
		return []*Contract{}
	}

	registry.contractsMu.RLock()
	defer registry.contractsMu.RUnlock()

	return slice.Filter(registry.contracts, predicate)
}

// holdsBook reports whether book is registered here. Callers must hold booksMu.
func (registry *Registry) holdsBook(book *Book) bool {
	return book != nil && registry.bookIndex[book.id] == book
}

// holdsAuthor reports whether author is registered here. Callers must hold authorsMu.
func (registry *Registry) holdsAuthor(author *Author) bool {
	return author != nil && registry.authorIndex[author.id] == author
}

// hasBook is holdsBook for callers that do not hold any lock.
func (registry *Registry) hasBook(book *Book) bool {
	if registry == nil {
		return false
	}

	registry.booksMu.RLock()
	defer registry.booksMu.RUnlock()

	return registry.holdsBook(book)
}
