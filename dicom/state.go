package dicom

import "github.com/codeninja55/go-radx/dicom/tag"

// valueColumnStart is the fixed starting column of the VALUE column in the
// output table.
const valueColumnStart = 108

// defaultTerminalWidth is used when the output isn't attached to a
// controlling terminal (or terminal-width detection is unavailable).
const defaultTerminalWidth = 90

// minDisplayWidth is the floor maxWidth is clamped to when terminal width
// is too narrow to leave any room for a value.
const minDisplayWidth = 20

// Options configures a Parse call. It is the core package's only
// CLI-framework-free surface: cmd/dcmdump's commands.DumpCmd converts its
// kong-parsed flags into this via toOptions.
type Options struct {
	// MaxElements caps element_count; parsing halts once reached. 0 means
	// "parse nothing but the footer".
	MaxElements int
	// CollapseSequences, if true, never descends into a sequence: it only
	// counts items and emits a summary line.
	CollapseSequences bool
	// MaxSQDepth bounds sequence recursion; deeper sequences are counted,
	// not descended into.
	MaxSQDepth int
	// ShowFullValues disables value truncation (the CLI's "-v" flag).
	ShowFullValues bool
	// Filter restricts displayed tags; an empty Filter displays everything.
	Filter Filter
	// TerminalWidth is the terminal width values are fitted to; 0 or less
	// selects defaultTerminalWidth. The core never detects it itself:
	// cmd/dcmdump fills it in from the terminal.
	TerminalWidth int
}

// DisplayContext carries the value-rendering configuration threaded through
// the parser and into display.Render, replacing what the C source modeled
// as globals (terminal width, value-column constant, truncation override).
type DisplayContext struct {
	TerminalWidth       int
	ValueColumnStart    int
	OverwriteMaxDispLen bool
}

// MaxValueWidth computes the per-element rendering budget at the given
// recursion depth:
// terminal_width - value_column_start - (depth*4) - 10, floored at 20.
func (c DisplayContext) MaxValueWidth(depth int) int {
	if c.OverwriteMaxDispLen {
		return int(^uint(0) >> 1) // INT_MAX equivalent
	}
	width := c.TerminalWidth - c.ValueColumnStart - (depth * 4) - 10
	if width < minDisplayWidth {
		return minDisplayWidth
	}
	return width
}

// ParserState is the core's mutable state, created when parsing begins and
// dropped when it ends. It owns nothing the caller needs after Parse
// returns; TSUID is exposed only because the banner line between the meta
// group and the main dataset needs it mid-parse.
type ParserState struct {
	ExplicitVR   bool
	LittleEndian bool
	InFileMeta   bool

	CollapseSequences bool
	MaxSQDepth        int
	ShowFullValues    bool

	MaxElements  int
	ElementCount int

	Filter Filter

	// TSUID holds the Transfer Syntax UID captured from (0002,0010), right
	// trimmed of trailing spaces and NULs. Empty until that element is read.
	TSUID string

	Display DisplayContext
}

// NewParserState builds the initial state for a Parse call: File Meta
// Information is always explicit-VR little-endian regardless of opts.
func NewParserState(opts Options) *ParserState {
	width := opts.TerminalWidth
	if width <= 0 {
		width = defaultTerminalWidth
	}
	return &ParserState{
		ExplicitVR:        true,
		LittleEndian:      true,
		InFileMeta:        true,
		CollapseSequences: opts.CollapseSequences,
		MaxSQDepth:        opts.MaxSQDepth,
		ShowFullValues:    opts.ShowFullValues,
		MaxElements:       opts.MaxElements,
		Filter:            opts.Filter,
		Display: DisplayContext{
			TerminalWidth:       width,
			ValueColumnStart:    valueColumnStart,
			OverwriteMaxDispLen: opts.ShowFullValues,
		},
	}
}

// ReachedLimit reports whether the parser must stop: element_count has hit
// MaxElements.
func (s *ParserState) ReachedLimit() bool {
	return s.ElementCount >= s.MaxElements
}

// EnterMainDataset applies the transfer-syntax-derived mode switch exactly
// once, at the first top-level tag whose group isn't the meta group.
func (s *ParserState) EnterMainDataset(explicitVR, littleEndian bool) {
	s.InFileMeta = false
	s.ExplicitVR = explicitVR
	s.LittleEndian = littleEndian
}

// Filter restricts which tags are displayed. An empty Filter (no tags
// added) displays everything. Tag (0002,0010) is always read regardless of
// filter membership, since the parser depends on its value to pick the
// main-dataset mode.
type Filter struct {
	tags map[tag.Tag]bool
}

// NewFilter builds a Filter over the given tags.
func NewFilter(tags ...tag.Tag) Filter {
	if len(tags) == 0 {
		return Filter{}
	}
	m := make(map[tag.Tag]bool, len(tags))
	for _, t := range tags {
		m[t] = true
	}
	return Filter{tags: m}
}

// Empty reports whether the filter has no entries, meaning "display all".
func (f Filter) Empty() bool {
	return len(f.tags) == 0
}

// Allows reports whether t should be displayed. (0002,0010) is always
// allowed, since the Transfer Syntax UID element must always be read
// regardless of filter to negotiate the main dataset's encoding.
func (f Filter) Allows(t tag.Tag) bool {
	if f.Empty() {
		return true
	}
	if t.Equals(tag.TransferSyntaxUID) {
		return true
	}
	return f.tags[t]
}
