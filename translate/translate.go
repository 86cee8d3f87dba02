// Package translate translates nucleotide sequences to protein sequences
package translate

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/feliixx/gotranslate/codon"
	"github.com/feliixx/gotranslate/geneticcode"
)

// Frame is the number of nucleotides to skip before reading
// the first codon: 0, 1 or 2
type Frame int

// reading frames
const (
	First Frame = iota
	Second
	Third
)

// ParseFrame parses a frame as written on the command line: 1, 2 or 3
func ParseFrame(name string) (Frame, error) {
	switch name {
	case "1":
		return First, nil
	case "2":
		return Second, nil
	case "3":
		return Third, nil
	}
	return First, fmt.Errorf("wrong value for -f | --frame parameter: %s", name)
}

// UnmarshalFlag implements flags.Unmarshaler
func (f *Frame) UnmarshalFlag(value string) error {
	frame, err := ParseFrame(value)
	if err != nil {
		return err
	}
	*f = frame
	return nil
}

// MarshalFlag implements flags.Marshaler
func (f Frame) MarshalFlag() (string, error) {
	return f.String(), nil
}

func (f Frame) String() string {
	return strconv.Itoa(int(f) + 1)
}

// Options struct to store translation command line args. The zero
// value reads frame 1 with the universal code
type Options struct {
	Frame Frame               `short:"f" long:"frame" value-name:"<frame>" description:"Frame to translate. Possible values: [1, 2, 3], default is 1"`
	Code  geneticcode.Variant `short:"g" long:"code" value-name:"<code>" description:"Genetic code to use. Available codes:\n universal (or standard, 1): Standard code\n mitochondrial (or mito, 2): The Vertebrate Mitochondrial Code\n secis (or selenocysteine): Standard code with UGA read as selenocysteine\nDefault is universal"`
	Stop  bool                `short:"S" long:"stop" description:"Stop the translation at the first stop codon, which is not written"`
	DNA   bool                `short:"d" long:"dna" description:"Read sequences as coding DNA (ACGT) instead of mRNA (ACGU)"`
}

// Table returns the codon table matching the options
func (o Options) Table() codon.Table {
	if o.DNA {
		return codon.BuildDNATable(o.Code)
	}
	return codon.BuildTable(o.Code)
}

// Translate reads an mRNA sequence from r and returns the corresponding
// protein sequence, read in frame with the genetic code v.
//
// Letters are case insensitive, and whitespaces are ignored. Any other char
// than A, C, G or U fails with an *InvalidNucleotideError, and no protein
// is returned. Stop codons are written as '*', unless stopAtTermination is
// set, in which case the translation ends before the first stop codon.
// Trailing nucleotides that don't form a complete codon are ignored.
func Translate(r io.Reader, frame Frame, v geneticcode.Variant, stopAtTermination bool) (string, error) {
	protein, _, err := translate(r, codon.BuildTable(v), frame, stopAtTermination)
	return protein, err
}

// TranslateString is like Translate, with an in-memory sequence
func TranslateString(sequence string, frame Frame, v geneticcode.Variant, stopAtTermination bool) (string, error) {
	return Translate(strings.NewReader(sequence), frame, v, stopAtTermination)
}

// TranslateSequence translates a single sequence read from r with
// the specified options
func TranslateSequence(r io.Reader, options Options) (string, error) {
	protein, _, err := translate(r, options.Table(), options.Frame, options.Stop)
	return protein, err
}

// translate returns the protein and the nb of trailing nucleotides
// that were ignored
func translate(r io.Reader, table codon.Table, frame Frame, stopAtTermination bool) (string, int, error) {

	if frame < First || frame > Third {
		return "", 0, fmt.Errorf("invalid frame offset: %d", int(frame))
	}

	stream := newNucleotideStream(r, table.Alphabet())
	err := stream.skip(int(frame))
	if err == io.EOF {
		return "", 0, nil
	}
	if err != nil {
		return "", 0, err
	}

	var protein strings.Builder
	windows := &codonWindows{s: stream}
	stopped := false

	for {
		c, err := windows.next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", 0, err
		}
		if stopped {
			// keep reading to validate the end of the sequence
			continue
		}

		// a validated codon is always in the table
		u, _ := table.Lookup(c)
		if stopAtTermination && u.IsRelease() {
			stopped = true
			continue
		}
		protein.WriteByte(u.Symbol())
	}
	return protein.String(), windows.leftover, nil
}
