// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/bookroyalty/pkg/slug"
)

/*
TestFrom covers accent folding, punctuation and whitespace handling.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain_title", "The Hobbit", "the-hobbit"},
		{"accents", "Cien años de soledad", "cien-anos-de-soledad"},
		{"accented_name", "Gabriel García Márquez", "gabriel-garcia-marquez"},
		{"punctuation", "  Dune: Messiah!  ", "dune-messiah"},
		{"digits", "1984", "1984"},
		{"only_symbols", "***", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.input))
		})
	}
}
