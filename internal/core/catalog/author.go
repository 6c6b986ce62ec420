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

// Author represents the writer side of a contract. Authors are the factory
// for contracts through [Author.SignContract].
type Author struct {
	id       string
	name     string
	slug     string
	registry *Registry
}

// NewAuthor registers an author with the trimmed name.
//
// It fails with INVALID_ARGUMENT when the name is blank.
func (registry *Registry) NewAuthor(name string) (*Author, error) {
	if err := (&validate.Validator{}).Required(FieldName, name).Err(); err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	author := &Author{
		id:       uuidv7.New(),
		name:     name,
		slug:     slug.From(name),
		registry: registry,
	}

	registry.authorsMu.Lock()
	registry.authors = append(registry.authors, author)
	registry.authorIndex[author.id] = author
	registry.authorsMu.Unlock()

	registry.logger.Info(constants.EventAuthorCreated,
		slog.String(constants.FieldID, author.id),
		slog.String(constants.FieldName, author.name),
	)
	return author, nil
}

func (author *Author) ID() string   { return author.id }
func (author *Author) Name() string { return author.name }
func (author *Author) Slug() string { return author.slug }

// Contracts returns the contracts this author signed, in registration order.
func (author *Author) Contracts() []*Contract {
	return author.registry.contractsWhere(func(contract *Contract) bool {
		return contract.author == author
	})
}

// Books returns the book of each of the author's contracts. Signing twice for
// the same book lists it twice.
func (author *Author) Books() []*Book {
	return slice.Map(author.Contracts(), (*Contract).Book)
}

/*
SignContract creates and registers a contract between this author and book.

Description: Only the book reference is checked here. Date and royalty
validation belongs to [Registry.NewContract], which this delegates to, so
both creation paths enforce identical rules.

Parameters:
  - book: *Book (must be registered in the author's registry)
  - date: string (non-blank, stored trimmed)
  - royalties: int (percentage, >= 0)

Returns:
  - *Contract: The registered contract
  - error: INVALID_ARGUMENT on any rule violation
*/
func (author *Author) SignContract(book *Book, date string, royalties int) (*Contract, error) {
	if !author.registry.hasBook(book) {
		return nil, validate.RequiredError(FieldBook, "Must be a registered book")
	}

	return author.registry.NewContract(author, book, date, royalties)
}

// TotalRoyalties sums the royalties of every contract the author signed.
func (author *Author) TotalRoyalties() int64 {
	return slice.Reduce(author.Contracts(), int64(0), func(total int64, contract *Contract) int64 {
		return total + int64(contract.royalties)
	})
}

func (author *Author) String() string {
	return fmt.Sprintf("Author(%q)", author.name)
}
