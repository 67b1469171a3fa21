package id

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatQuoteRef returns a quote reference like "Q-2025-001".
func FormatQuoteRef(year, seq int) string {
	return fmt.Sprintf("Q-%04d-%03d", year, seq)
}

// ParseQuoteRef parses "Q-2025-001" into year and sequence.
func ParseQuoteRef(ref string) (year, seq int, err error) {
	parts := strings.SplitN(ref, "-", 3)
	if len(parts) != 3 || parts[0] != "Q" {
		return 0, 0, fmt.Errorf("invalid quote ref format: %q", ref)
	}

	year, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid year in quote ref %q: %w", ref, err)
	}

	seq, err = strconv.Atoi(parts[2])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid sequence in quote ref %q: %w", ref, err)
	}

	return year, seq, nil
}

// NextSeq returns the next available sequence for a year, given the refs
// already in use. Refs that fail to parse, or belong to another year, are
// skipped.
func NextSeq(refs []string, year int) int {
	maxSeq := 0
	for _, ref := range refs {
		y, seq, err := ParseQuoteRef(ref)
		if err != nil || y != year {
			continue
		}
		if seq > maxSeq {
			maxSeq = seq
		}
	}
	return maxSeq + 1
}
