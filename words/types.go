package words

import "errors"

// Letter is one signed generator of a finitely presented group:
// +l is the l-th generator, -l its inverse. Zero is not a letter.
type Letter int16

// Relator is a word that evaluates to the identity in the group.
type Relator []Letter

// MaxRelatorLen bounds the length of a relator. The lifting cursors of the
// search store positions in a relator as uint16, so a relator must be
// strictly shorter than the largest uint16 value.
const MaxRelatorLen = 1<<16 - 1

var (
	// ErrBadLetter indicates a character that cannot start a generator.
	ErrBadLetter = errors.New("words: expected a generator letter")

	// ErrLetterRange indicates a generator index outside [1, rank].
	ErrLetterRange = errors.New("words: generator out of range for rank")

	// ErrBadNumber indicates a numeric word where 'x' or 'X' is not
	// followed by a decimal number.
	ErrBadNumber = errors.New("words: expected a number after 'x' or 'X'")
)
