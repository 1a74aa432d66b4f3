package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/tailored-agentic-units/reqstate/action"
	"github.com/tailored-agentic-units/reqstate/store"
)

// maxActionSize bounds a single log line. Error payloads can carry whole
// response bodies, well past bufio's 64 KiB default.
const maxActionSize = 16 << 20

// replay dispatches every action in r, one JSON object per line, and
// returns how many were dispatched. Blank lines are skipped.
func replay(ctx context.Context, s *store.Store, r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxActionSize)
	dispatch := s.Dispatcher(ctx)

	n := 0
	for line := 1; scanner.Scan(); line++ {
		if err := ctx.Err(); err != nil {
			return n, err
		}

		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		var a action.Action
		if err := json.Unmarshal([]byte(text), &a); err != nil {
			return n, fmt.Errorf("line %d: %w", line, err)
		}
		dispatch(a)
		n++
	}

	return n, scanner.Err()
}
