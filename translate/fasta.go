package translate

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"unicode"

	"github.com/op/go-logging"

	"github.com/feliixx/gotranslate/codon"
)

var log = logging.MustGetLogger("translate")

const (
	mb = 1024 * 1024
	// max length of a single line of the input
	maxSeqLength = 100 * mb
)

// TranslateFasta reads sequences from in, translates them with the
// specified options, and writes the proteins to out.
//
// in is either in fasta format, in which case each sequence is written
// as a fasta record wrapped at 60 chars, or a single raw sequence, in
// which case the protein is written on a single line.
func TranslateFasta(in io.Reader, out io.Writer, options Options) error {

	table := options.Table()
	log.Debugf("translating with %s code, frame %s, %d stop codons", options.Code, options.Frame, len(table.Stops()))

	r := bufio.NewReader(in)
	first, skipped, err := peekFirstChar(r)
	if err == io.EOF {
		log.Debug("empty input, nothing to translate")
		return nil
	}
	if err != nil {
		return err
	}

	if first != '>' {
		return translateRaw(r, out, table, options, skipped)
	}
	return translateRecords(r, out, table, options)
}

// peekFirstChar returns the first char of r that is not a space,
// without consuming it, and the number of spaces consumed
func peekFirstChar(r *bufio.Reader) (byte, int, error) {
	skipped := 0
	for {
		b, err := r.ReadByte()
		if err != nil {
			return 0, skipped, err
		}
		if !unicode.IsSpace(rune(b)) {
			return b, skipped, r.UnreadByte()
		}
		skipped++
	}
}

func translateRaw(r io.Reader, out io.Writer, table codon.Table, options Options, skipped int) error {

	protein, leftover, err := translate(r, table, options.Frame, options.Stop)
	if err != nil {
		var invalid *InvalidNucleotideError
		if errors.As(err, &invalid) {
			invalid.Position += skipped
		}
		return err
	}
	if leftover > 0 {
		log.Debugf("%d trailing nucleotides ignored", leftover)
	}

	w := &writer{}
	w.writeProtein(protein)
	return w.flush(out)
}

// fasta format is:
//
// >sequenceID some comments on sequence
// ACAGGCAGAGACACGACAGACGACGACACAGGAGCAGACAGCAGCAGACGACCACAUAUU
// UUUGCGGUCACAUGACGACUUCGGCAGCGA
//
// see https://blast.ncbi.nlm.nih.gov/Blast.cgi?CMD=Web&PAGE_TYPE=BlastDocs&DOC_TYPE=BlastHelp
// section 1 for details
func translateRecords(r io.Reader, out io.Writer, table codon.Table, options Options) error {

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxSeqLength)

	w := &writer{wrap: true}
	seq := bytes.NewBuffer(make([]byte, 0, 4096))
	var id, comment string
	nbRecords := 0

	translateRecord := func() error {
		protein, leftover, err := translate(bytes.NewReader(seq.Bytes()), table, options.Frame, options.Stop)
		if err != nil {
			return fmt.Errorf("record %s: %w", id, err)
		}
		if leftover > 0 {
			log.Debugf("record %s: %d trailing nucleotides ignored", id, leftover)
		}
		w.writeID(id, comment, options.Frame)
		w.writeProtein(protein)

		if w.buf.Len() > maxBufferSize {
			return w.flush(out)
		}
		return nil
	}

	for scanner.Scan() {

		line := scanner.Bytes()
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		if line[0] == '>' {
			if nbRecords > 0 {
				if err := translateRecord(); err != nil {
					return err
				}
			}
			id, comment = parseHeader(line[1:])
			seq.Reset()
			nbRecords++
			continue
		}
		// if the line doesn't start with '>', then it's a part of the
		// nucleotide sequence, so write it to the buffer
		seq.Write(line)
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if err := translateRecord(); err != nil {
		return err
	}
	log.Debugf("%d sequences translated", nbRecords)

	return w.flush(out)
}

// parse the ID of the sequence. ID is formatted like this:
// >sequenceID comments
func parseHeader(header []byte) (id, comment string) {
	idEnd := bytes.IndexByte(header, ' ')
	if idEnd == -1 {
		return string(header), ""
	}
	return string(header[:idEnd]), string(header[idEnd:])
}
