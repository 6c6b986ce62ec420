// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/taibuivan/bookroyalty/internal/platform/constants"
	"github.com/taibuivan/bookroyalty/internal/platform/validate"
	"github.com/taibuivan/bookroyalty/pkg/uuidv7"
)

// Contract joins one author to one book. Neither side is owned by the
// contract; both must already be registered in the same registry.
type Contract struct {
	id        string
	author    *Author
	book      *Book
	date      string
	royalties int
}

/*
NewContract validates and registers a contract.

Description: Every argument is checked before the contract list is touched,
so a failure never leaves a partial entry. The date is free text: any
non-blank string is accepted and stored trimmed.

Parameters:
  - author: *Author (registered here)
  - book: *Book (registered here)
  - date: string (non-blank)
  - royalties: int (percentage, >= 0, no upper bound)

Returns:
  - *Contract: The registered contract
  - error: INVALID_ARGUMENT listing every failed field
*/
func (registry *Registry) NewContract(author *Author, book *Book, date string, royalties int) (*Contract, error) {
	registry.booksMu.RLock()
	defer registry.booksMu.RUnlock()
	registry.authorsMu.RLock()
	defer registry.authorsMu.RUnlock()

	validator := &validate.Validator{}
	validator.
		Custom(FieldAuthor, !registry.holdsAuthor(author), "Must be a registered author").
		Custom(FieldBook, !registry.holdsBook(book), "Must be a registered book").
		Required(FieldDate, date).
		NonNegative(FieldRoyalties, royalties)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	contract := &Contract{
		id:        uuidv7.New(),
		author:    author,
		book:      book,
		date:      strings.TrimSpace(date),
		royalties: royalties,
	}

	registry.contractsMu.Lock()
	registry.contracts = append(registry.contracts, contract)
	registry.contractIndex[contract.id] = contract
	registry.contractsMu.Unlock()

	registry.logger.Info(constants.EventContractSigned,
		slog.String(constants.FieldID, contract.id),
		slog.String(constants.FieldAuthorID, author.id),
		slog.String(constants.FieldBookID, book.id),
		slog.String(constants.FieldDate, contract.date),
		slog.Int(constants.FieldRoyalties, contract.royalties),
	)
	return contract, nil
}

// ContractsByDate returns the contracts signed on exactly date (after
// trimming, case-sensitive), ordered by book title then author name.
// Contracts that tie on both keep their registration order.
//
// It fails with INVALID_ARGUMENT when date is blank. No match is not an error.
func (registry *Registry) ContractsByDate(date string) ([]*Contract, error) {
	if err := (&validate.Validator{}).Required(FieldDate, date).Err(); err != nil {
		return nil, err
	}

	date = strings.TrimSpace(date)
	matches := registry.contractsWhere(func(contract *Contract) bool {
		return contract.date == date
	})

	slices.SortStableFunc(matches, func(a, b *Contract) int {
		return cmp.Or(
			strings.Compare(a.book.title, b.book.title),
			strings.Compare(a.author.name, b.author.name),
		)
	})
	return matches, nil
}

func (contract *Contract) ID() string      { return contract.id }
func (contract *Contract) Author() *Author { return contract.author }
func (contract *Contract) Book() *Book     { return contract.book }
func (contract *Contract) Date() string    { return contract.date }
func (contract *Contract) Royalties() int  { return contract.royalties }

// String renders the contract as Contract("Name", "Title", "Date", 10%).
func (contract *Contract) String() string {
	return fmt.Sprintf("Contract(%q, %q, %q, %d%%)",
		contract.author.name, contract.book.title, contract.date, contract.royalties)
}
