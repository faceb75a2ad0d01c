// Package words defines the letter and relator types shared by the
// covering-graph and search packages, parsing of textual words, and the
// cyclic relator expansion used to strengthen pruning.
//
// A word in a finitely presented group of rank R is a sequence of non-zero
// signed letters in [-R, R]: letter l > 0 is the l-th generator, letter -l
// its inverse. Textual words come in two encodings:
//
//   - alphabetic, for rank ≤ 26: "aBc" means a·b⁻¹·c;
//   - numeric, for larger ranks: "x1X2x3" means x₁·x₂⁻¹·x₃.
//
// SpinShort expands a set of relators by all cyclic shifts of every relator
// that is not much longer than the maximum degree of the search. Shifted
// copies of a relator cut off failing branches of the search tree earlier,
// because a shifted relator starts failing at a different vertex of the
// partial graph.
//
// Errors:
//
//   - ErrBadLetter       a character that is not a generator letter
//   - ErrLetterRange     a generator index outside [1, rank]
//   - ErrBadNumber       an 'x'/'X' not followed by a number
package words
