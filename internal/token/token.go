// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package token defines lseq command-language token types.
package token

// Token represents an lseq token type.
type Token int

const (
	EOF Token = iota
	WORD
	INT    // classified integer literal
	REAL   // classified real literal
	ASSIGN // =
)

// String returns the string representation of a token.
func (t Token) String() string {
	switch t {
	case EOF:
		return "EOF"
	case WORD:
		return "WORD"
	case INT:
		return "INT"
	case REAL:
		return "REAL"
	case ASSIGN:
		return "ASSIGN"
	}
	return "UNKNOWN"
}

// IsNumber returns true if the token is a classified numeric literal.
func (t Token) IsNumber() bool {
	return t == INT || t == REAL
}

// Keywords recognized inside a seq construction command.
const (
	KeywordTo    = "to"
	KeywordBy    = "by"
	KeywordCount = "count"
)

// IsKeyword returns true if the word is a seq construction keyword.
func IsKeyword(w string) bool {
	switch w {
	case KeywordTo, KeywordBy, KeywordCount:
		return true
	}
	return false
}
