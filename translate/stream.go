package translate

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// InvalidNucleotideError is returned when a sequence contains a char
// that is neither a nucleotide of the alphabet nor a whitespace
type InvalidNucleotideError struct {
	Char rune
	// Position is the index of Char in the input, whitespaces
	// included, starting from 0
	Position int
}

func (e *InvalidNucleotideError) Error() string {
	return fmt.Sprintf("invalid nucleotide '%c' at position %d", e.Char, e.Position)
}

// nucleotideStream reads an input once, from left to right, and yields
// its nucleotides in uppercase. Whitespaces and line breaks are skipped
type nucleotideStream struct {
	r        io.RuneReader
	alphabet string
	pos      int
}

func newNucleotideStream(r io.Reader, alphabet string) *nucleotideStream {
	rr, ok := r.(io.RuneReader)
	if !ok {
		rr = bufio.NewReader(r)
	}
	return &nucleotideStream{r: rr, alphabet: alphabet}
}

// next returns the next nucleotide, or io.EOF once the input is consumed
func (s *nucleotideStream) next() (byte, error) {
	for {
		c, _, err := s.r.ReadRune()
		if err != nil {
			return 0, err
		}
		pos := s.pos
		s.pos++

		if unicode.IsSpace(c) {
			continue
		}
		n := unicode.ToUpper(c)
		if n > unicode.MaxASCII || strings.IndexByte(s.alphabet, byte(n)) == -1 {
			return 0, &InvalidNucleotideError{Char: c, Position: pos}
		}
		return byte(n), nil
	}
}

// skip discards the next n nucleotides. It returns io.EOF
// if the stream has less than n nucleotides
func (s *nucleotideStream) skip(n int) error {
	for i := 0; i < n; i++ {
		if _, err := s.next(); err != nil {
			return err
		}
	}
	return nil
}

// codonWindows groups the nucleotides of a stream three by three,
// without overlap
type codonWindows struct {
	s *nucleotideStream
	// nb of nucleotides read after the last complete codon
	leftover int
	codon    [3]byte
}

// next returns the next codon, or io.EOF when less than three
// nucleotides remain. Those are dropped, as they can't be translated
func (w *codonWindows) next() (string, error) {
	for w.leftover = 0; w.leftover < 3; w.leftover++ {
		n, err := w.s.next()
		if err != nil {
			return "", err
		}
		w.codon[w.leftover] = n
	}
	w.leftover = 0
	return string(w.codon[:]), nil
}
