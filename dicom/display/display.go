// Package display renders DICOM element values as bounded, human-readable
// text. It is a pure function of (VR, bytes, endianness, width) and never
// touches the input stream itself — the parser decides what bytes to pass
// in, this package only decides how to print them.
//
// Grounded on original_source/src/dicom_display.c's display_value.
package display

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/codeninja55/go-radx/dicom/vr"
)

// textLikeVRs are rendered as a quoted, NUL-terminated, printable-ASCII
// prefix, truncated to a display budget.
var textLikeVRs = map[vr.VR]bool{
	vr.ApplicationEntity: true, vr.AgeString: true, vr.CodeString: true,
	vr.Date: true, vr.DecimalString: true, vr.DateTime: true,
	vr.IntegerString: true, vr.LongString: true, vr.LongText: true,
	vr.PersonName: true, vr.ShortString: true, vr.ShortText: true,
	vr.Time: true, vr.UnlimitedCharacters: true, vr.UniqueIdentifier: true,
	vr.UniversalResourceIdentifier: true, vr.UnlimitedText: true,
}

// binaryVRs are rendered as "(binary: N bytes) " followed by up to 8 hex
// octets.
var binaryVRs = map[vr.VR]bool{
	vr.OtherByte: true, vr.OtherWord: true, vr.OtherDouble: true,
	vr.OtherFloat: true, vr.OtherLong: true,
}

// Render formats data according to v's display rules, bounded by maxWidth
// characters of text output. littleEndian selects byte order for numeric
// and AT decoding. maxWidth should already account for terminal width,
// value-column start, and indentation; pass a very large value (e.g.
// math.MaxInt32) to disable truncation.
func Render(v vr.VR, data []byte, littleEndian bool, maxWidth int) string {
	if len(data) == 0 {
		return "(n/a)"
	}
	if maxWidth <= 0 {
		maxWidth = 20
	}

	order := byteOrder(littleEndian)

	switch {
	case textLikeVRs[v]:
		return renderText(data, maxWidth)
	case v == vr.UnsignedShort:
		return renderUint(data, 2, func(b []byte) uint64 { return uint64(order.Uint16Of(b)) })
	case v == vr.UnsignedLong:
		return renderUint(data, 4, func(b []byte) uint64 { return uint64(order.Uint32Of(b)) })
	case v == vr.SignedShort:
		return renderInt(data, 2, func(b []byte) int64 { return int64(int16(order.Uint16Of(b))) })
	case v == vr.SignedLong:
		return renderInt(data, 4, func(b []byte) int64 { return int64(int32(order.Uint32Of(b))) })
	case v == vr.FloatingPointSingle:
		return renderFloat(data, 4, func(b []byte) float64 { return float64(math.Float32frombits(order.Uint32Of(b))) })
	case v == vr.FloatingPointDouble:
		return renderFloat(data, 8, func(b []byte) float64 { return math.Float64frombits(order.Uint64Of(b)) })
	case v == vr.AttributeTag:
		return renderAttributeTag(data, order)
	case v == vr.SequenceOfItems:
		return "(sequence)"
	case v == vr.Unknown && len(data) > 0 && len(data) < 256:
		return renderUnknown(data, maxWidth)
	case binaryVRs[v]:
		return renderBinary(data)
	default:
		return fmt.Sprintf("(UNKNOWN VR: %d BYTES)", len(data))
	}
}

// endianOrder is a tiny seam over binary.ByteOrder so numeric decoding can
// share one code path for both endiannesses.
type endianOrder struct {
	order binary.ByteOrder
}

func byteOrder(littleEndian bool) endianOrder {
	if littleEndian {
		return endianOrder{binary.LittleEndian}
	}
	return endianOrder{binary.BigEndian}
}

func (e endianOrder) Uint16Of(b []byte) uint16 { return e.order.Uint16(b) }
func (e endianOrder) Uint32Of(b []byte) uint32 { return e.order.Uint32(b) }
func (e endianOrder) Uint64Of(b []byte) uint64 { return e.order.Uint64(b) }

func renderText(data []byte, maxWidth int) string {
	displayLen := len(data)
	if displayLen > maxWidth {
		displayLen = maxWidth
	}

	var sb strings.Builder
	sb.WriteByte('"')
	for i := 0; i < displayLen; i++ {
		c := data[i]
		if c >= 32 && c < 127 {
			sb.WriteByte(c)
		} else if c == 0 {
			break
		}
	}
	if len(data) > maxWidth {
		sb.WriteString("...")
	}
	sb.WriteByte('"')
	return sb.String()
}

func renderUint(data []byte, width int, decode func([]byte) uint64) string {
	if len(data) < width {
		return ""
	}
	val := decode(data[:width])
	s := strconv.FormatUint(val, 10)
	if extra := len(data)/width - 1; extra > 0 {
		s += fmt.Sprintf(" [+%d more]", extra)
	}
	return s
}

func renderInt(data []byte, width int, decode func([]byte) int64) string {
	if len(data) < width {
		return ""
	}
	val := decode(data[:width])
	s := strconv.FormatInt(val, 10)
	if extra := len(data)/width - 1; extra > 0 {
		s += fmt.Sprintf(" [+%d more]", extra)
	}
	return s
}

func renderFloat(data []byte, width int, decode func([]byte) float64) string {
	if len(data) < width {
		return ""
	}
	val := decode(data[:width])
	s := strconv.FormatFloat(val, 'g', -1, 64)
	if extra := len(data)/width - 1; extra > 0 {
		s += fmt.Sprintf(" [+%d more]", extra)
	}
	return s
}

func renderAttributeTag(data []byte, order endianOrder) string {
	if len(data) < 4 {
		return ""
	}
	group := order.Uint16Of(data[0:2])
	element := order.Uint16Of(data[2:4])
	s := fmt.Sprintf("(%04X,%04X)", group, element)
	if extra := len(data)/4 - 1; extra > 0 {
		s += fmt.Sprintf(" [+%d more]", extra)
	}
	return s
}

func renderBinary(data []byte) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "(binary: %d bytes) ", len(data))
	showBytes := len(data)
	if showBytes > 8 {
		showBytes = 8
	}
	for i := 0; i < showBytes; i++ {
		fmt.Fprintf(&sb, "%02X ", data[i])
	}
	if len(data) > 8 {
		sb.WriteString("...")
	}
	return sb.String()
}

// renderUnknown implements the UN printable-heuristic: if more than half of
// the first min(length, 100) bytes look like text, render as text with an
// "[interpreted]" suffix; otherwise fall back to the binary rendering.
func renderUnknown(data []byte, maxWidth int) string {
	sampleLen := len(data)
	if sampleLen > 100 {
		sampleLen = 100
	}
	printable := 0
	for i := 0; i < sampleLen; i++ {
		c := data[i]
		if (c >= 32 && c < 127) || c == '\n' || c == '\r' || c == '\t' {
			printable++
		}
	}
	if printable*10 > sampleLen*5 {
		return renderText(data, maxWidth) + " [interpreted]"
	}
	return renderBinary(data)
}
