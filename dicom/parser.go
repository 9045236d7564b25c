package dicom

import (
	"compress/flate"
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"github.com/codeninja55/go-radx/dicom/uid"
)

// preambleSize is the fixed 128-byte preamble every DICOM Part 10 file
// opens with, followed by the 4-byte "DICM" magic.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part10.html#sect_7.1
const preambleSize = 128

// dicmMagic is the literal magic bytes following the preamble.
const dicmMagic = "DICM"

// Parse reads a DICOM Part 10 stream from source, one pass, and writes a
// human-readable dump of its File Meta Information and main dataset to
// out. It never seeks source backward: a non-seekable io.Reader (a pipe,
// a network socket) works exactly as well as a regular file.
//
// Parse returns nil on normal termination, including documented
// graceful-termination conditions (truncation mid-element, an invalid
// explicit VR token): those produce a best-effort partial dump rather than
// a propagated error. It returns a *ParseError (BadHeader) when the
// preamble or "DICM" magic is missing, and the writer's own error when
// writing the column header line or the closing footer line to out fails.
func Parse(source io.Reader, out io.Writer, opts Options) error {
	r := NewReader(source, binary.LittleEndian)

	if err := readPreambleAndMagic(r); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(out, "%-13s %-4s %-10s %-32s %-32s %s\n", "TAG", "VR", "LENGTH", "KEYWORD", "NAME", "VALUE"); err != nil {
		return err
	}

	state := NewParserState(opts)
	if _, err := walkDataset(r, state, out, 0, false, 0); err != nil {
		return err
	}

	_, err := fmt.Fprintf(out, "[Parsed %d elements]\n", state.ElementCount)
	return err
}

// readPreambleAndMagic discards the 128-byte preamble (its contents are
// application-defined and never interpreted) and validates the "DICM"
// magic that follows it.
func readPreambleAndMagic(r *Reader) error {
	if err := r.Skip(preambleSize); err != nil {
		return newParseError(BadHeader, err)
	}
	magic, err := r.ReadString(len(dicmMagic))
	if err != nil {
		return newParseError(BadHeader, err)
	}
	if magic != dicmMagic {
		return newParseError(BadHeader, ErrInvalidPreamble)
	}
	return nil
}

// lookupTransferSyntax resolves a captured Transfer Syntax UID string
// against the registry, tolerating the trailing padding DICOM UIDs are
// stored with.
func lookupTransferSyntax(rawUID string) (uid.TransferSyntaxInfo, bool) {
	return uid.LookupTransferSyntax(strings.TrimRight(rawUID, "\x00 "))
}

// byteOrderFor returns the binary.ByteOrder a Transfer Syntax's endianness
// flag maps to.
func byteOrderFor(littleEndian bool) binary.ByteOrder {
	if littleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// wrapDeflate installs a flate decompressor ahead of the reader's
// remaining stream, used when the negotiated Transfer Syntax is Deflated
// Explicit VR Little Endian. The deflated dataset is plain DEFLATE with no
// zlib/gzip framing, hence compress/flate rather than compress/zlib.
func wrapDeflate(r *Reader, underlying io.Reader) {
	r.WrapReader(flate.NewReader(underlying))
}
