// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides centralized, immutable values for the entire module.

Categories:

  - Metadata: Application name and version stamped on every log record.
  - Log Keys: Structured logging attribute names shared between packages.
  - Log Events: Event names emitted by the catalog registry.

Using this package ensures Magic Strings are eliminated from the business logic.
*/
package constants

// # Metadata

const (
	AppName    = "bookroyalty"
	AppVersion = "0.1.0-dev"
)

// # Log Keys

const (
	FieldApp       = "app"
	FieldVersion   = "version"
	FieldID        = "id"
	FieldTitle     = "title"
	FieldName      = "name"
	FieldAuthorID  = "author_id"
	FieldBookID    = "book_id"
	FieldDate      = "date"
	FieldRoyalties = "royalties"
	FieldCount     = "count"
	FieldError     = "error"
)

// # Log Events

const (
	EventBookCreated    = "book_created"
	EventAuthorCreated  = "author_created"
	EventContractSigned = "contract_signed"
	EventRegistryReset  = "registry_reset"
)
