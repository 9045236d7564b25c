package tag

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"

	"github.com/codeninja55/go-radx/dicom/vr"
)

// maskedEntry describes a repeating-group dictionary entry. Glob is the
// compiled form of an 8-character hex pattern using 'x' for the wildcard
// nibbles DICOM PS3.6 uses to denote a group or element that repeats across
// a range (e.g. 50xx,eeee), compiled once at init time rather than
// re-parsed on every lookup.
type maskedEntry struct {
	Glob glob.Glob
	Info Info
}

// maskedDict holds the repeating-group entries. It is small by design: a
// header dumper only needs enough of this table to name the handful of
// repeating groups that still appear in the wild (curve data, overlay
// planes, and variable pixel data), not the full retired repeating-group
// section of PS3.6.
var maskedDict []maskedEntry

// addMasked compiles pattern (an 8 hex-digit string, 'x' marking a wildcard
// nibble) into a glob and registers it. Wildcard nibbles are rewritten to
// glob's single-character '?' before compiling, since 'x'/'X' themselves
// are ordinary literal characters to gobwas/glob.
func addMasked(pattern string, vrs []vr.VR, name, keyword, vm string, retired bool) {
	compiled := strings.ReplaceAll(strings.ToUpper(pattern), "X", "?")
	g, err := glob.Compile(compiled)
	if err != nil {
		panic(fmt.Sprintf("tag: invalid masked pattern %q: %v", pattern, err))
	}
	maskedDict = append(maskedDict, maskedEntry{
		Glob: g,
		Info: Info{VRs: vrs, Name: name, Keyword: keyword, VM: vm, Retired: retired},
	})
}

func init() {
	// Overlay Data / Overlay planes, repeating group 60xx.
	addMasked("60xx3000", []vr.VR{vr.OtherWord, vr.OtherByte}, "Overlay Data", "OverlayData", "1", true)
	addMasked("60xx0010", []vr.VR{vr.UnsignedShort}, "Overlay Rows", "OverlayRows", "1", true)
	addMasked("60xx0011", []vr.VR{vr.UnsignedShort}, "Overlay Columns", "OverlayColumns", "1", true)
	addMasked("60xx0022", []vr.VR{vr.LongString}, "Overlay Description", "OverlayDescription", "1", true)
	addMasked("60xx0040", []vr.VR{vr.CodeString}, "Overlay Type", "OverlayType", "1", true)

	// Curve Data, retired repeating group 50xx.
	addMasked("50xx0005", []vr.VR{vr.UnsignedShort}, "Curve Dimensions", "CurveDimensions", "1", true)
	addMasked("50xx0010", []vr.VR{vr.UnsignedShort}, "Number of Points", "NumberOfPoints", "1", true)
	addMasked("50xx0020", []vr.VR{vr.CodeString}, "Type of Data", "TypeOfData", "1", true)
	addMasked("50xx0030", []vr.VR{vr.ShortString}, "Axis Units", "AxisUnits", "2", true)
	addMasked("50xx3000", []vr.VR{vr.OtherWord, vr.OtherByte}, "Curve Data", "CurveData", "1", true)

	// Variable Pixel Data, legacy repeating group 7Fxx.
	addMasked("7Fxx0010", []vr.VR{vr.OtherWord, vr.OtherByte}, "Variable Pixel Data", "VariablePixelData", "1", true)
}

// FindMasked looks up t against the repeating-group dictionary, returning
// the first entry whose pattern matches. Unlike Find, the returned
// Info.Tag always echoes the queried tag rather than a canonical one, since
// a masked entry has no single canonical (group,element).
func FindMasked(t Tag) (Info, bool) {
	candidate := fmt.Sprintf("%04X%04X", t.Group, t.Element)
	for _, m := range maskedDict {
		if !m.Glob.Match(candidate) {
			continue
		}
		info := m.Info
		info.Tag = t
		return info, true
	}
	return Info{}, false
}
