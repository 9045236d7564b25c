// Package element provides the DICOM data element structure the stream
// parser builds per element read: a tag, its VR, declared length, and raw
// value bytes. Unlike a dataset-building parser, this one never retains a
// typed value tree — display.Render formats the raw bytes directly — so
// Element only carries framing metadata plus the bytes the renderer needs.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.1
package element

import (
	"fmt"
	"strings"

	"github.com/codeninja55/go-radx/dicom/display"
	"github.com/codeninja55/go-radx/dicom/tag"
	"github.com/codeninja55/go-radx/dicom/vr"
)

// UndefinedLength is the DICOM sentinel meaning "length not known up
// front", legal for SQ, OB, and the pixel data element.
const UndefinedLength uint32 = 0xFFFFFFFF

// Element is a single DICOM data element as read off the wire: a tag, its
// VR, the declared value length, and (for non-sequence elements) the raw
// value bytes buffered for rendering.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.1
type Element struct {
	tag    tag.Tag
	vr     vr.VR
	length uint32
	data   []byte
}

// New creates an Element from its wire framing. data may be nil for
// elements whose value was never buffered (e.g. an oversized value that
// was seeked past, or a sequence, whose value is its nested items rather
// than a byte buffer).
func New(t tag.Tag, v vr.VR, length uint32, data []byte) *Element {
	return &Element{tag: t, vr: v, length: length, data: data}
}

// Tag returns the DICOM tag of this element.
func (e *Element) Tag() tag.Tag {
	return e.tag
}

// VR returns the Value Representation of this element.
func (e *Element) VR() vr.VR {
	return e.vr
}

// Length returns the declared value length in bytes, or UndefinedLength.
func (e *Element) Length() uint32 {
	return e.length
}

// Data returns the buffered raw value bytes, or nil if none were buffered.
func (e *Element) Data() []byte {
	return e.data
}

// IsUndefinedLength reports whether this element declared the 0xFFFFFFFF
// undefined-length sentinel.
func (e *Element) IsUndefinedLength() bool {
	return e.length == UndefinedLength
}

// Name returns the human-readable name of this element from the DICOM
// dictionary, or "[N/A]" if the tag is unknown.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part06.html#chapter_6
func (e *Element) Name() string {
	if name := tag.NameOf(e.tag); name != "" {
		return name
	}
	return "[N/A]"
}

// Keyword returns the keyword identifier of this element from the DICOM
// dictionary, prefixed "[PRIVATE TAG]" for odd-group tags (just
// "[PRIVATE TAG]" when the dictionary has no keyword for it), or "[N/A]"
// for an unrecognized standard tag.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part06.html#chapter_6
func (e *Element) Keyword() string {
	if e.tag.IsPrivate() {
		if kw := tag.KeywordOf(e.tag); kw != "" {
			return "[PRIVATE TAG] " + kw
		}
		return "[PRIVATE TAG]"
	}
	if kw := tag.KeywordOf(e.tag); kw != "" {
		return kw
	}
	return "[N/A]"
}

// Render formats this element's value bytes via display.Render, bounded by
// maxWidth.
func (e *Element) Render(littleEndian bool, maxWidth int) string {
	return display.Render(e.vr, e.data, littleEndian, maxWidth)
}

// String returns a compact human-readable representation, primarily useful
// for debugging and test failure messages.
//
// Format: (GGGG,EEEE) VR [Name] = value
func (e *Element) String() string {
	var sb strings.Builder

	sb.WriteString(e.tag.String())
	sb.WriteString(" ")
	sb.WriteString(e.vr.String())
	sb.WriteString(" ")

	if name := tag.NameOf(e.tag); name != "" {
		sb.WriteString("[")
		sb.WriteString(name)
		sb.WriteString("] ")
	}

	sb.WriteString("= ")
	valueStr := e.Render(true, 80)

	const maxValueLen = 80
	if len(valueStr) > maxValueLen {
		valueStr = valueStr[:maxValueLen] + "..."
	}
	sb.WriteString(valueStr)

	return sb.String()
}

// Equals returns true if this element equals another element: same tag,
// VR, length, and data bytes.
func (e *Element) Equals(other *Element) bool {
	if other == nil {
		return false
	}
	if !e.tag.Equals(other.tag) {
		return false
	}
	if e.vr != other.vr {
		return false
	}
	if e.length != other.length {
		return false
	}
	return fmt.Sprintf("%x", e.data) == fmt.Sprintf("%x", other.data)
}
