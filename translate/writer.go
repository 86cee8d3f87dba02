package translate

import (
	"bytes"
	"fmt"
	"io"
)

const (
	// max line size for sequence
	maxLineSize = 60

	// size of the buffer for writing to file
	maxBufferSize = 1024 * 1024 * 10
)

type writer struct {
	buf bytes.Buffer
	// wrap protein sequences at maxLineSize
	wrap bool
}

// sequence id should look like
// >sequenceID_<frame> comment
func (w *writer) writeID(id, comment string, frame Frame) {
	w.buf.WriteByte('>')
	w.buf.WriteString(id)
	w.buf.WriteByte('_')
	w.buf.WriteString(frame.String())
	w.buf.WriteString(comment)
	w.buf.WriteByte('\n')
}

func (w *writer) writeProtein(protein string) {

	if !w.wrap {
		w.buf.WriteString(protein)
		w.buf.WriteByte('\n')
		return
	}
	for len(protein) > maxLineSize {
		w.buf.WriteString(protein[:maxLineSize])
		w.buf.WriteByte('\n')
		protein = protein[maxLineSize:]
	}
	if len(protein) > 0 {
		w.buf.WriteString(protein)
		w.buf.WriteByte('\n')
	}
}

func (w *writer) flush(out io.Writer) error {
	_, err := out.Write(w.buf.Bytes())
	w.buf.Reset()
	if err != nil {
		return fmt.Errorf("fail to write to output file: %v", err)
	}
	return nil
}
