// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/taibuivan/bookroyalty/internal/platform/constants"
	"github.com/taibuivan/bookroyalty/internal/platform/validate"
	"github.com/taibuivan/bookroyalty/pkg/slice"
	"github.com/taibuivan/bookroyalty/pkg/slug"
	"github.com/taibuivan/bookroyalty/pkg/uuidv7"
)

// Book is a published work. It knows nothing about its authors; they are
// found through the contracts that reference it.
type Book struct {
	id       string
	title    string
	slug     string
	registry *Registry
}

// NewBook registers a book with the trimmed title.
//
// It fails with INVALID_ARGUMENT when the title is blank.
func (registry *Registry) NewBook(title string) (*Book, error) {
	if err := (&validate.Validator{}).Required(FieldTitle, title).Err(); err != nil {
		return nil, err
	}

	title = strings.TrimSpace(title)
	book := &Book{
		id:       uuidv7.New(),
		title:    title,
		slug:     slug.From(title),
		registry: registry,
	}

	registry.booksMu.Lock()
	registry.books = append(registry.books, book)
	registry.bookIndex[book.id] = book
	registry.booksMu.Unlock()

	registry.logger.Info(constants.EventBookCreated,
		slog.String(constants.FieldID, book.id),
		slog.String(constants.FieldTitle, book.title),
	)
	return book, nil
}

func (book *Book) ID() string    { return book.id }
func (book *Book) Title() string { return book.title }
func (book *Book) Slug() string  { return book.slug }

// Contracts returns the contracts signed for this book, in registration order.
func (book *Book) Contracts() []*Contract {
	return book.registry.contractsWhere(func(contract *Contract) bool {
		return contract.book == book
	})
}

// Authors returns the author of each of the book's contracts. An author with
// several contracts for the book appears once per contract.
func (book *Book) Authors() []*Author {
	return slice.Map(book.Contracts(), (*Contract).Author)
}

func (book *Book) String() string {
	return fmt.Sprintf("Book(%q)", book.title)
}
