package codon

import (
	"bufio"
	"io"
	"sort"
	"strings"

	"github.com/feliixx/gotranslate/geneticcode"
)

// Size is the number of codons of a complete table
const Size = 4 * 4 * 4

// Table maps each codon of an alphabet to its unit for a genetic code
type Table struct {
	alphabet string
	units    map[string]Unit
}

// BuildTable returns the table of the 64 RNA codons for the genetic code v
func BuildTable(v geneticcode.Variant) Table {
	return build(RNAAlphabet, v)
}

// BuildDNATable returns the table of the 64 DNA codons for the genetic
// code v. T is read as U
func BuildDNATable(v geneticcode.Variant) Table {
	return build(DNAAlphabet, v)
}

func build(alphabet string, v geneticcode.Variant) Table {

	t := Table{
		alphabet: alphabet,
		units:    make(map[string]Unit, Size),
	}
	for i := 0; i < len(alphabet); i++ {
		for j := 0; j < len(alphabet); j++ {
			for k := 0; k < len(alphabet); k++ {
				codon := string([]byte{alphabet[i], alphabet[j], alphabet[k]})
				t.units[codon] = resolve(codon, strings.ReplaceAll(codon, "T", "U"), v)
			}
		}
	}
	return t
}

// Alphabet returns the nucleotides the codons of t are made of
func (t Table) Alphabet() string {
	return t.alphabet
}

// Len returns the number of codons in t
func (t Table) Len() int {
	return len(t.units)
}

// Lookup returns the unit of codon. codon has to be uppercase
func (t Table) Lookup(codon string) (Unit, bool) {
	u, ok := t.units[codon]
	return u, ok
}

// Codons returns the codons of t in lexicographic order
func (t Table) Codons() []string {
	codons := make([]string, 0, len(t.units))
	for c := range t.units {
		codons = append(codons, c)
	}
	sort.Strings(codons)
	return codons
}

// Stops returns the codons of t read by a release unit, in
// lexicographic order
func (t Table) Stops() []string {
	var stops []string
	for _, c := range t.Codons() {
		if t.units[c].IsRelease() {
			stops = append(stops, c)
		}
	}
	return stops
}

// WriteTo writes t to w, one codon per line, in the same order
// as NCBI genetic code tables:
//
//    UUU F Phe
//    UCU S Ser
//    UAU Y Tyr
//    UGU C Cys
//    UUC F Phe
//    ...
func (t Table) WriteTo(w io.Writer) (int64, error) {

	bw := bufio.NewWriter(w)
	var n int64
	a := t.alphabet
	for i := 0; i < len(a); i++ {
		for k := 0; k < len(a); k++ {
			for j := 0; j < len(a); j++ {
				u := t.units[string([]byte{a[i], a[j], a[k]})]
				written, err := bw.WriteString(u.String() + "\n")
				n += int64(written)
				if err != nil {
					return n, err
				}
			}
		}
	}
	return n, bw.Flush()
}
