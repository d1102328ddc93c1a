package wordgrid

import "fmt"

// Pattern is a word of 1..MaxPatternLen bytes packed into an integer:
// each byte takes 8 bits and the first byte sits in the highest position,
// so "XMAS" packs to 'X'<<24 | 'M'<<16 | 'A'<<8 | 'S'.
type Pattern uint32

// Pack encodes word as a Pattern.
// Returns ErrPatternLength if word is empty or longer than MaxPatternLen bytes.
func Pack(word string) (Pattern, error) {
	if len(word) == 0 || len(word) > MaxPatternLen {
		return 0, fmt.Errorf("%w: %q has %d bytes, want 1..%d", ErrPatternLength, word, len(word), MaxPatternLen)
	}
	var p Pattern
	for i := 0; i < len(word); i++ {
		p = p<<8 | Pattern(word[i])
	}

	return p, nil
}

// PatternSet is a small collection of equal-width patterns matched together
// in one pass.
type PatternSet struct {
	width    int
	patterns []Pattern
}

// NewPatternSet packs every word into one set.
// All words must have the same length; otherwise ErrPatternLength is returned.
func NewPatternSet(words ...string) (PatternSet, error) {
	if len(words) == 0 {
		return PatternSet{}, fmt.Errorf("%w: no words given", ErrPatternLength)
	}
	set := PatternSet{width: len(words[0]), patterns: make([]Pattern, 0, len(words))}
	for _, w := range words {
		if len(w) != set.width {
			return PatternSet{}, fmt.Errorf("%w: %q has %d bytes, set width is %d", ErrPatternLength, w, len(w), set.width)
		}
		p, err := Pack(w)
		if err != nil {
			return PatternSet{}, err
		}
		set.patterns = append(set.patterns, p)
	}

	return set, nil
}

// Symmetric returns the set {word, reverse(word)}.
func Symmetric(word string) (PatternSet, error) {
	return NewPatternSet(word, reverse(word))
}

// Width reports the byte length shared by every pattern in the set.
func (s PatternSet) Width() int {
	return s.width
}

// Mask keeps exactly Width() bytes of a sliding window.
func (s PatternSet) Mask() Pattern {
	if s.width >= MaxPatternLen {
		return ^Pattern(0)
	}

	return Pattern(1)<<(8*s.width) - 1
}

// Contains reports whether v equals any pattern in the set.
func (s PatternSet) Contains(v Pattern) bool {
	for _, p := range s.patterns {
		if p == v {
			return true
		}
	}

	return false
}

// Matches returns how many patterns in the set equal v. A palindrome packed
// by Symmetric is present twice and so matches twice.
func (s PatternSet) Matches(v Pattern) int {
	n := 0
	for _, p := range s.patterns {
		if p == v {
			n++
		}
	}

	return n
}

// reverse returns word with its bytes in reverse order.
func reverse(word string) string {
	b := []byte(word)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}

	return string(b)
}
