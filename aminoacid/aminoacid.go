// Package aminoacid stores the amino acids used during translation,
// along with the codons encoding them in the universal genetic code.
//
// Relevant documentation:
//
//    https://www.ncbi.nlm.nih.gov/Taxonomy/Utils/wprintgc.cgi?chapter=tgencodes#SG1
//
package aminoacid

// AminoAcid describes a single amino acid
type AminoAcid struct {
	Name         string
	Abbreviation string
	Symbol       byte
	codons       []string
}

var (
	Ala = AminoAcid{"L-Alanine", "Ala", 'A', []string{"GCU", "GCC", "GCA", "GCG"}}
	Arg = AminoAcid{"L-Arginine", "Arg", 'R', []string{"CGU", "CGC", "CGA", "CGG", "AGA", "AGG"}}
	Asn = AminoAcid{"L-Asparagine", "Asn", 'N', []string{"AAU", "AAC"}}
	Asp = AminoAcid{"L-Aspartic acid", "Asp", 'D', []string{"GAU", "GAC"}}
	Cys = AminoAcid{"L-Cysteine", "Cys", 'C', []string{"UGU", "UGC"}}
	Glu = AminoAcid{"L-Glutamic acid", "Glu", 'E', []string{"GAA", "GAG"}}
	Gln = AminoAcid{"L-Glutamine", "Gln", 'Q', []string{"CAA", "CAG"}}
	Gly = AminoAcid{"Glycine", "Gly", 'G', []string{"GGU", "GGC", "GGA", "GGG"}}
	His = AminoAcid{"L-Histidine", "His", 'H', []string{"CAU", "CAC"}}
	Ile = AminoAcid{"L-Isoleucine", "Ile", 'I', []string{"AUU", "AUC", "AUA"}}
	Leu = AminoAcid{"L-Leucine", "Leu", 'L', []string{"UUA", "UUG", "CUU", "CUC", "CUA", "CUG"}}
	Lys = AminoAcid{"L-Lysine", "Lys", 'K', []string{"AAA", "AAG"}}
	Met = AminoAcid{"L-Methionine", "Met", 'M', []string{"AUG"}}
	Phe = AminoAcid{"L-Phenylalanine", "Phe", 'F', []string{"UUU", "UUC"}}
	Pro = AminoAcid{"L-Proline", "Pro", 'P', []string{"CCU", "CCC", "CCA", "CCG"}}
	// Sec is only recognized when a SECIS element recodes UGA, see
	// geneticcode.SECIS
	Sec = AminoAcid{"L-Selenocysteine", "Sec", 'U', []string{"UGA"}}
	Ser = AminoAcid{"L-Serine", "Ser", 'S', []string{"UCU", "UCC", "UCA", "UCG", "AGU", "AGC"}}
	Thr = AminoAcid{"L-Threonine", "Thr", 'T', []string{"ACU", "ACC", "ACA", "ACG"}}
	Trp = AminoAcid{"L-Tryptophan", "Trp", 'W', []string{"UGG"}}
	Tyr = AminoAcid{"L-Tyrosine", "Tyr", 'Y', []string{"UAU", "UAC"}}
	Val = AminoAcid{"L-Valine", "Val", 'V', []string{"GUU", "GUC", "GUA", "GUG"}}

	// catalog order is the tie-break order used when resolving codons
	catalog = [...]AminoAcid{
		Ala, Arg, Asn, Asp, Cys, Glu, Gln, Gly, His, Ile, Leu,
		Lys, Met, Phe, Pro, Sec, Ser, Thr, Trp, Tyr, Val,
	}

	bySymbol = map[byte]AminoAcid{}
)

func init() {
	for _, aa := range catalog {
		bySymbol[aa.Symbol] = aa
	}
}

// All returns every amino acid of the catalog, always in the same order
func All() []AminoAcid {
	all := make([]AminoAcid, len(catalog))
	copy(all, catalog[:])
	return all
}

// BySymbol returns the amino acid with the given one-letter symbol
func BySymbol(symbol byte) (AminoAcid, bool) {
	aa, ok := bySymbol[symbol]
	return aa, ok
}

// UniversalCodons returns a copy of the codons encoding aa
// in the universal genetic code
func (aa AminoAcid) UniversalCodons() []string {
	codons := make([]string, len(aa.codons))
	copy(codons, aa.codons)
	return codons
}

// Encodes reports whether codon (uppercase, RNA alphabet) encodes aa
// in the universal genetic code
func (aa AminoAcid) Encodes(codon string) bool {
	for _, c := range aa.codons {
		if c == codon {
			return true
		}
	}
	return false
}

// Is compares two amino acids by their symbol
func (aa AminoAcid) Is(other AminoAcid) bool {
	return aa.Symbol == other.Symbol
}

func (aa AminoAcid) String() string {
	return aa.Abbreviation
}
