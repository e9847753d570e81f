// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

package eval

import (
	"fmt"
	"strings"

	"nickandperla.net/lseq/internal/scanner"
	"nickandperla.net/lseq/internal/token"
)

// evalHistory lists recent session history, oldest first. An optional
// integer argument overrides the configured entry limit.
func evalHistory(e *Evaluator, scan *scanner.Scanner) (string, error) {
	limit := e.historyLimit
	item, err := scan.Next()
	if err != nil {
		return "", err
	}
	switch item.Token {
	case token.EOF:
	case token.INT:
		limit = int(item.Int)
		if err := expectEnd(scan); err != nil {
			return "", err
		}
	default:
		return "", fmt.Errorf("expected an entry count, got %q", item.Word)
	}

	if e.store == nil {
		return "", fmt.Errorf("no session history is configured")
	}
	entries, err := e.store.Recent(limit)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for i := len(entries) - 1; i >= 0; i-- {
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%4d  %s", entries[i].Seq, entries[i].Line)
	}
	return b.String(), nil
}
