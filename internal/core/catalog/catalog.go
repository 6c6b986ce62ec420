// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package catalog models the many-to-many relationship between books and authors.

Authors and books never reference each other directly. They are joined by
contracts, an associative entity carrying the signing date and a royalty
percentage, and every traversal (a book's authors, an author's books, an
author's total royalties) is computed on demand by scanning the contract list.

Architecture:

  - Registry: The single access point. It owns the ordered lists of every book,
    author and contract ever constructed, plus id indexes for lookups.
  - Entities: [Book], [Author] and [Contract] are immutable after construction
    and keep a back-reference to the registry that created them.
  - Validation: All input is checked before any list is touched. A failed
    construction returns an INVALID_ARGUMENT [apperr.AppError] and registers
    nothing.

Usage:

	registry := catalog.NewRegistry(log)
	book, _ := registry.NewBook("Dune")
	author, _ := registry.NewAuthor("Frank Herbert")
	contract, err := author.SignContract(book, "1965-08-01", 10)
*/
package catalog

// Global field names for validation
const (
	FieldTitle     = "title"
	FieldName      = "name"
	FieldAuthor    = "author"
	FieldBook      = "book"
	FieldDate      = "date"
	FieldRoyalties = "royalties"
)
