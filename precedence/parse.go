package precedence

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseManual splits text at its first blank line into a rules block and an
// updates block and parses both. Line numbers in errors refer to text.
// Windows line endings are accepted.
func ParseManual(text string) (*Manual, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimRight(text, " \t\n")
	rulesBlock, updatesBlock, ok := strings.Cut(text, "\n\n")
	if !ok {
		last := text[strings.LastIndexByte(text, '\n')+1:]
		return nil, &ParseError{Line: strings.Count(text, "\n") + 1, Text: last, Err: ErrMissingSeparator}
	}
	rules, err := parseRules(rulesBlock, 1)
	if err != nil {
		return nil, err
	}
	// updates start two lines after the last rule line
	offset := strings.Count(rulesBlock, "\n") + 3
	updates, err := parseUpdates(updatesBlock, offset)
	if err != nil {
		return nil, err
	}

	return &Manual{Rules: rules, Updates: updates}, nil
}

// ParseRules parses one "before|after" rule per line.
func ParseRules(block string) (*Relation, error) {
	return parseRules(strings.TrimRight(block, " \t\r\n"), 1)
}

// ParseUpdates parses one comma-separated update per line.
func ParseUpdates(block string) ([]Update, error) {
	return parseUpdates(strings.TrimRight(block, " \t\r\n"), 1)
}

// ParseUpdate parses a single comma-separated update such as "75,47,61".
func ParseUpdate(line string) (Update, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, ErrEmptyUpdate
	}
	fields := strings.Split(line, ",")
	u := make(Update, 0, len(fields))
	for _, f := range fields {
		p, err := parsePage(f)
		if err != nil {
			return nil, err
		}
		u = append(u, p)
	}

	return u, nil
}

// ParseRule parses a single "before|after" line.
func ParseRule(line string) (Rule, error) {
	before, after, ok := strings.Cut(strings.TrimSpace(line), "|")
	if !ok || strings.Contains(after, "|") {
		return Rule{}, fmt.Errorf("%w: want \"before|after\"", ErrMalformedRule)
	}
	b, err := parsePage(before)
	if err != nil {
		return Rule{}, err
	}
	a, err := parsePage(after)
	if err != nil {
		return Rule{}, err
	}

	return Rule{Before: b, After: a}, nil
}

func parseRules(block string, firstLine int) (*Relation, error) {
	rel := NewRelation()
	if block == "" {
		return rel, nil
	}
	for i, line := range strings.Split(block, "\n") {
		r, err := ParseRule(line)
		if err != nil {
			return nil, &ParseError{Line: firstLine + i, Text: line, Err: err}
		}
		rel.Add(r)
	}

	return rel, nil
}

func parseUpdates(block string, firstLine int) ([]Update, error) {
	lines := strings.Split(block, "\n")
	updates := make([]Update, 0, len(lines))
	for i, line := range lines {
		u, err := ParseUpdate(line)
		if err != nil {
			return nil, &ParseError{Line: firstLine + i, Text: line, Err: err}
		}
		updates = append(updates, u)
	}

	return updates, nil
}

// parsePage parses an unsigned page number, ignoring surrounding spaces.
func parsePage(tok string) (Page, error) {
	tok = strings.TrimSpace(tok)
	n, err := strconv.ParseUint(tok, 10, 31)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedNumber, tok)
	}

	return Page(n), nil
}
