package dicom

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/codeninja55/go-radx/dicom/element"
	"github.com/codeninja55/go-radx/dicom/tag"
	"github.com/codeninja55/go-radx/dicom/vr"
)

// Sequence/Item delimiter tags, per DICOM Part 5 Section 7.5.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.5
var (
	itemStartTag            = tag.New(0xFFFE, 0xE000)
	itemDelimitationTag     = tag.New(0xFFFE, 0xE00D)
	sequenceDelimitationTag = tag.New(0xFFFE, 0xE0DD)
)

// undefinedValueLength is the DICOM sentinel meaning "length not known up
// front; framed instead by a delimiter".
const undefinedValueLength uint32 = 0xFFFFFFFF

// largeValueThreshold is the size at or above which a value is seeked past
// rather than buffered and rendered.
const largeValueThreshold = 1 << 20 // 1 MiB

// maxBufferedValue is the most value bytes ever read into memory for
// rendering; longer values are truncated at this length before the
// remainder is skipped.
const maxBufferedValue = 4096

// elementHeader is the framing a single data element read resolves to
// before its value is read: tag, VR, and declared length.
type elementHeader struct {
	Tag    tag.Tag
	VR     vr.VR
	Length uint32
	// invalidVR is set when an explicit-VR token failed the whitelist; the
	// caller terminates the stream gracefully rather than treating it as a
	// fatal error.
	invalidVR bool
}

// readElementHeader reads one element's tag, VR, and length using the
// state's current encoding mode, sharing Reader.ReadTag's pushback slot
// instead of duplicating tag-reading.
func readElementHeader(r *Reader, state *ParserState) (elementHeader, error) {
	t, err := r.ReadTag()
	if err != nil {
		return elementHeader{}, err
	}

	var v vr.VR
	var length uint32

	if state.ExplicitVR {
		vrStr, err := r.ReadString(2)
		if err != nil {
			return elementHeader{}, err
		}
		parsed, perr := vr.Parse(vrStr)
		if perr != nil {
			return elementHeader{Tag: t, invalidVR: true}, nil
		}
		v = parsed
		if v.IsLongForm() {
			if _, err := r.ReadUint16(); err != nil { // reserved
				return elementHeader{}, err
			}
			length, err = r.ReadUint32()
			if err != nil {
				return elementHeader{}, err
			}
		} else {
			l16, err := r.ReadUint16()
			if err != nil {
				return elementHeader{}, err
			}
			length = uint32(l16)
		}
	} else {
		v = tag.VROf(t)
		length, err = r.ReadUint32()
		if err != nil {
			return elementHeader{}, err
		}
	}

	return elementHeader{Tag: t, VR: v, Length: length}, nil
}

// formatRow renders one output line for a displayed element.
func formatRow(depth int, t tag.Tag, v vr.VR, length uint32, keyword, name, value string) string {
	indent := strings.Repeat(" ", depth*2)
	lengthStr := strconv.FormatUint(uint64(length), 10)
	if length == undefinedValueLength {
		lengthStr = "UNDEFINED"
	}
	return fmt.Sprintf("%s%-13s %-4s %-10s %-32s %-32s %s",
		indent, t.String(), v.String(), lengthStr, keyword, name, value)
}

// formatMarker renders a bracketed status line (sequence/item framing,
// depth-guard and collapse summaries) at the given depth's indentation.
func formatMarker(depth int, msg string) string {
	return strings.Repeat(" ", depth*2) + msg
}

// readAndRenderValue buffers and renders a non-sequence element's value,
// applying the oversized-value shortcut for values at or above
// largeValueThreshold. Zero-length and empty-after-truncation values fall
// through to element.Element.Render, which already reports "(n/a)" for
// empty data.
func readAndRenderValue(r *Reader, state *ParserState, depth int, h elementHeader) (string, error) {
	if h.Length == undefinedValueLength {
		// Legal only for SQ (handled by the caller before reaching here)
		// and OB (encapsulated pixel data fragments, which this dumper
		// never descends into). Nothing to skip since there's no declared
		// end; reporting a literal is the only safe option.
		return "(undefined length - non-sequence)", nil
	}
	if h.Length >= largeValueThreshold {
		if err := r.Skip(int64(h.Length)); err != nil {
			return "", newParseError(SeekFailure, err)
		}
		return "(too large to display)", nil
	}

	bufLen := h.Length
	if bufLen > maxBufferedValue {
		bufLen = maxBufferedValue
	}
	data, err := r.ReadBytes(int(bufLen))
	if err != nil {
		return "", newParseError(AllocFailure, err)
	}
	if h.Length > maxBufferedValue {
		if err := r.Skip(int64(h.Length - maxBufferedValue)); err != nil {
			return "", newParseError(SeekFailure, err)
		}
	}

	if h.Tag.Equals(tag.TransferSyntaxUID) {
		state.TSUID = strings.TrimRight(string(data), "\x00 ")
	}

	el := element.New(h.Tag, h.VR, h.Length, data)
	return el.Render(state.LittleEndian, state.Display.MaxValueWidth(depth)), nil
}

// walkDataset reads elements from r until EOF, the pixel data tag (checked
// at depth 0 only), or element_count reaching MaxElements (checked at every
// depth). It is used both for the top-level File Meta Information + main
// dataset walk and, recursively, for an Item's nested dataset.
//
// hasBudget/budget bound an Item's or defined-length SQ's body by byte
// count instead of by a delimiter tag; depth 0 never has a budget. Returns
// the number of bytes consumed from r.
func walkDataset(r *Reader, state *ParserState, out io.Writer, depth int, hasBudget bool, budget int64) (int64, error) {
	startPos := r.Position()

	for {
		if state.ReachedLimit() {
			return r.Position() - startPos, nil
		}
		if hasBudget && r.Position()-startPos >= budget {
			return r.Position() - startPos, nil
		}

		t, err := r.ReadTag()
		if err != nil {
			// EOF (or truncation) ends the stream at depth 0 and ends an
			// item's body early at depth > 0; both are silent, matching
			// the graceful-termination error policy.
			return r.Position() - startPos, nil
		}

		if depth > 0 {
			if t.Equals(itemDelimitationTag) {
				if _, err := r.ReadUint32(); err != nil { // delimiter length, always 0
					return r.Position() - startPos, nil
				}
				fmt.Fprintln(out, formatMarker(depth-1, "  (FFFE,E00D) Item Delimitation"))
				state.ElementCount++
				return r.Position() - startPos, nil
			}
			if t.Equals(sequenceDelimitationTag) || t.Equals(itemStartTag) {
				// Belongs to the enclosing sequence parser's loop, not this
				// item's dataset walk: put it back.
				r.UnreadTag(t)
				return r.Position() - startPos, nil
			}
		} else if state.InFileMeta && t.Group != tag.MetadataGroup {
			r.UnreadTag(t)
			enterMainDataset(state, r, out)
			continue
		}

		if depth == 0 && t.Equals(tag.PixelData) {
			el := element.New(t, vr.OtherByte, 0, nil)
			fmt.Fprintln(out, formatRow(depth, t, vr.OtherByte, 0, el.Keyword(), el.Name(), "-- stopping at Pixel Data --"))
			return r.Position() - startPos, nil
		}

		r.UnreadTag(t)
		h, err := readElementHeader(r, state)
		if err != nil {
			return r.Position() - startPos, nil
		}
		if h.invalidVR {
			fmt.Fprintln(out, formatMarker(depth, fmt.Sprintf("[invalid VR at %s, stopping]", h.Tag.String())))
			return r.Position() - startPos, nil
		}

		allowed := state.Filter.Allows(h.Tag)

		if h.VR == vr.SequenceOfItems {
			if err := handleSequence(r, state, out, depth, h.Tag, h.Length, allowed); err != nil {
				// SeekFailure/AllocFailure are local, value-level errors:
				// stop this loop gracefully rather than aborting the dump.
				return r.Position() - startPos, nil
			}
			continue
		}

		if !allowed {
			if err := skipValue(r, h.Length); err != nil {
				return r.Position() - startPos, nil
			}
			state.ElementCount++
			continue
		}

		valueStr, err := readAndRenderValue(r, state, depth, h)
		if err != nil {
			return r.Position() - startPos, nil
		}

		el := element.New(h.Tag, h.VR, h.Length, nil)
		fmt.Fprintln(out, formatRow(depth, h.Tag, h.VR, h.Length, el.Keyword(), el.Name(), valueStr))
		state.ElementCount++
	}
}

// enterMainDataset applies the one-time meta-to-dataset mode switch: looks
// up the captured Transfer Syntax UID, flips the reader's byte order and
// the parser's VR mode, and prints a banner line.
func enterMainDataset(state *ParserState, r *Reader, out io.Writer) {
	info, ok := lookupTransferSyntax(state.TSUID)
	explicitVR, littleEndian := true, true
	name := "Explicit VR Little Endian (assumed)"
	if ok {
		explicitVR, littleEndian, name = info.ExplicitVR, info.LittleEndian, info.Name
	}
	state.EnterMainDataset(explicitVR, littleEndian)
	r.SetByteOrder(byteOrderFor(littleEndian))
	if ok && info.Deflated {
		// The first main-dataset tag was already read (and pushed back)
		// from the still-compressed stream: hand its 4 raw bytes back to
		// the decompressor rather than decoding them as a tag.
		first, _ := r.ReadTag()
		raw := make([]byte, 4)
		binary.LittleEndian.PutUint16(raw[0:2], first.Group)
		binary.LittleEndian.PutUint16(raw[2:4], first.Element)
		r.position -= 4
		wrapDeflate(r, io.MultiReader(bytes.NewReader(raw), r.r))
	}
	fmt.Fprintf(out, "-- Transfer Syntax: %s --\n", name)
}

// skipValue discards a filtered-out element's value, or does nothing for a
// non-sequence undefined-length value (there is nothing safe to skip).
func skipValue(r *Reader, length uint32) error {
	if length == undefinedValueLength || length == 0 {
		return nil
	}
	if err := r.Skip(int64(length)); err != nil {
		return newParseError(SeekFailure, err)
	}
	return nil
}

// handleSequence processes a Sequence of Items element: depth-guarded
// counting, collapsed counting, or full recursive descent.
func handleSequence(r *Reader, state *ParserState, out io.Writer, depth int, t tag.Tag, length uint32, allowed bool) error {
	el := element.New(t, vr.SequenceOfItems, length, nil)

	if allowed {
		fmt.Fprintln(out, formatRow(depth, t, vr.SequenceOfItems, length, el.Keyword(), el.Name(), "(sequence)"))
	}
	// Counted immediately, before descending, so ElementCount never lags
	// behind what was already printed: a limit reached partway through this
	// sequence's items must not retroactively push the running total above
	// MaxElements once the container itself is tallied.
	state.ElementCount++

	switch {
	case state.CollapseSequences:
		count, err := countItems(r, state, depth, length)
		if allowed {
			if count == 0 {
				fmt.Fprintln(out, formatMarker(depth, "[EMPTY SEQUENCE]"))
			} else {
				fmt.Fprintln(out, formatMarker(depth, fmt.Sprintf("[SEQUENCE with %d ITEMS]", count)))
			}
		}
		return err

	case depth+1 > state.MaxSQDepth:
		count, err := countItems(r, state, depth, length)
		if allowed {
			if count == 0 {
				fmt.Fprintln(out, formatMarker(depth, "[EMPTY SEQUENCE ABOVE MAX DEPTH]"))
			} else {
				fmt.Fprintln(out, formatMarker(depth, fmt.Sprintf("[%d ITEMS ABOVE MAX SEQUENCE DEPTH]", count)))
			}
		}
		return err

	default:
		if length == 0 {
			if allowed {
				fmt.Fprintln(out, formatMarker(depth, "(empty sequence)"))
			}
			return nil
		}
		return descendSequence(r, state, out, depth, length, allowed)
	}
}

// descendSequence walks a sequence's items, rendering Item framing and
// recursing into each item's dataset.
func descendSequence(r *Reader, state *ParserState, out io.Writer, depth int, seqLength uint32, allowed bool) error {
	startPos := r.Position()
	itemDepth := depth + 1

	for {
		if state.ReachedLimit() {
			return nil
		}
		if seqLength != undefinedValueLength && r.Position()-startPos >= int64(seqLength) {
			return nil
		}

		t, err := r.ReadTag()
		if err != nil {
			return nil
		}

		if t.Equals(sequenceDelimitationTag) {
			if _, err := r.ReadUint32(); err != nil {
				return nil
			}
			if allowed {
				fmt.Fprintln(out, formatMarker(depth, "(FFFE,E0DD) Sequence Delimitation"))
			}
			state.ElementCount++
			return nil
		}
		if !t.Equals(itemStartTag) {
			// Malformed stream: not a well-formed item boundary. Put the
			// tag back and let the caller's own loop decide what to do
			// with it rather than erroring out.
			r.UnreadTag(t)
			return nil
		}

		itemLength, err := r.ReadUint32()
		if err != nil {
			return nil
		}

		if allowed {
			if itemLength == undefinedValueLength {
				fmt.Fprintln(out, formatMarker(itemDepth-1, "  (FFFE,E000) Item (undefined length)"))
			} else {
				fmt.Fprintln(out, formatMarker(itemDepth-1, fmt.Sprintf("  (FFFE,E000) Item (length=%d)", itemLength)))
			}
		}
		state.ElementCount++

		itemStart := r.Position()
		hasBudget := itemLength != undefinedValueLength
		_, err = walkDataset(r, state, out, itemDepth, hasBudget, int64(itemLength))
		if err != nil {
			return nil
		}

		if hasBudget {
			if under := int64(itemLength) - (r.Position() - itemStart); under > 0 {
				if err := r.Skip(under); err != nil {
					// SeekFailure is local/value-level: stop descending
					// gracefully rather than aborting the dump.
					return nil
				}
			}
		}
	}
}

// countItems fast-scans a sequence's items without emitting any element
// rows, used for collapsed and depth-guarded sequences. It still correctly
// advances the cursor past the sequence's full body, descending into
// nested sequences (in collapsed mode) so undefined-length items and
// sequences within them are skipped to their true end rather than
// mis-framed.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.5
func countItems(r *Reader, state *ParserState, depth int, seqLength uint32) (int, error) {
	startPos := r.Position()
	count := 0

	for {
		if state.ReachedLimit() {
			return count, nil
		}
		if seqLength != undefinedValueLength && r.Position()-startPos >= int64(seqLength) {
			return count, nil
		}

		t, err := r.ReadTag()
		if err != nil {
			return count, nil
		}

		if t.Equals(sequenceDelimitationTag) {
			if _, err := r.ReadUint32(); err != nil {
				return count, nil
			}
			return count, nil
		}
		if !t.Equals(itemStartTag) {
			r.UnreadTag(t)
			return count, nil
		}

		itemLength, err := r.ReadUint32()
		if err != nil {
			return count, nil
		}
		count++

		if itemLength == undefinedValueLength {
			// Walk the item's content against a discard sink so any nested
			// sequences are counted (not rendered) and the item's true
			// (FFFE,E00D) terminator is found.
			if _, err := walkDataset(r, state, io.Discard, depth+1, false, 0); err != nil {
				return count, nil
			}
			continue
		}
		if err := r.Skip(int64(itemLength)); err != nil {
			// SeekFailure is local/value-level: stop counting gracefully
			// rather than aborting the dump.
			return count, nil
		}
	}
}
