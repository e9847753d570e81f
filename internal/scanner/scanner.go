// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package scanner tokenizes lseq command lines and classifies numeric
// literals before they reach the list core.
package scanner

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"unicode"

	"nickandperla.net/lseq/internal/token"
)

// Scanner tokenizes a command line rune-by-rune.
type Scanner struct {
	reader *bufio.Reader
	buf    strings.Builder
	peeked *Item
	col    int // Current column number (1-based)
}

// Item represents a scanned token with its classified value.
type Item struct {
	Token token.Token
	Word  string  // raw text for WORD and ASSIGN
	Int   int64   // value when Token == INT
	Real  float64 // value when Token == REAL
	Col   int     // column where this token started
}

// New creates a new Scanner from an io.Reader.
func New(r io.Reader) *Scanner {
	return &Scanner{
		reader: bufio.NewReader(r),
		col:    1,
	}
}

// NewFromString creates a new Scanner from a string.
func NewFromString(s string) *Scanner {
	return New(strings.NewReader(s))
}

// Peek returns the next item without consuming it.
func (s *Scanner) Peek() (*Item, error) {
	if s.peeked != nil {
		return s.peeked, nil
	}
	item, err := s.Next()
	if err != nil {
		return nil, err
	}
	s.peeked = item
	return item, nil
}

// Next returns the next token from the input.
func (s *Scanner) Next() (*Item, error) {
	if s.peeked != nil {
		item := s.peeked
		s.peeked = nil
		return item, nil
	}

	if err := s.skipSpace(); err != nil {
		return nil, err
	}

	s.buf.Reset()
	startCol := s.col

	for {
		r, _, err := s.reader.ReadRune()
		if err == io.EOF {
			if s.buf.Len() > 0 {
				return s.classify(startCol), nil
			}
			return &Item{Token: token.EOF, Col: s.col}, nil
		}
		if err != nil {
			return nil, err
		}
		s.col++

		if unicode.IsSpace(r) {
			return s.classify(startCol), nil
		}

		if r == '=' && s.buf.Len() == 0 {
			return &Item{Token: token.ASSIGN, Word: "=", Col: startCol}, nil
		}

		s.buf.WriteRune(r)
	}
}

// All returns the remaining tokens up to EOF, excluding the EOF item.
func (s *Scanner) All() ([]*Item, error) {
	var items []*Item
	for {
		item, err := s.Next()
		if err != nil {
			return nil, err
		}
		if item.Token == token.EOF {
			return items, nil
		}
		items = append(items, item)
	}
}

// classify turns the accumulated word into a classified item. Numeric
// classification happens here, not in the list core: integers first,
// then reals, then plain words.
func (s *Scanner) classify(col int) *Item {
	w := s.buf.String()
	if i, err := strconv.ParseInt(w, 10, 64); err == nil {
		return &Item{Token: token.INT, Word: w, Int: i, Col: col}
	}
	if f, err := strconv.ParseFloat(w, 64); err == nil {
		return &Item{Token: token.REAL, Word: w, Real: f, Col: col}
	}
	return &Item{Token: token.WORD, Word: w, Col: col}
}

// skipSpace consumes and discards whitespace.
func (s *Scanner) skipSpace() error {
	for {
		r, _, err := s.reader.ReadRune()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if !unicode.IsSpace(r) {
			s.reader.UnreadRune()
			return nil
		}
		s.col++
	}
}
