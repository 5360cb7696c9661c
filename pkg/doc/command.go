// Package doc holds the layout-command representation of a report document
// and the primitives that append commands to it. The command stream is the
// contract between the report assembler and the serialization sinks: the
// assembler decides what appears, a Sink decides how the bytes look.
package doc

import "io"

// Alignment of a paragraph.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Command is one ordered layout directive. The set is closed; sinks switch
// on the concrete type.
type Command interface {
	isCommand()
}

// Paragraph is a plain text paragraph.
type Paragraph struct {
	Text      string
	Size      int // font size in points; 0 means body size
	Bold      bool
	Align     Alignment
	Indented  bool // first-line indent, used by essay paragraphs
	LeftPad   bool // whole-paragraph indent under a detail heading
	SpaceGap  bool // extra spacing before the paragraph
}

// Heading is one of the four numbered heading tiers.
//
//	level 1: Roman numeral label  "I."
//	level 2: Arabic label         "1."
//	level 3: Arabic + parenthesis "1)"
//	level 4: circled digit        "①"
//
// Suffix carries inline summary text appended after a level-2 title.
type Heading struct {
	Level  int
	Label  string
	Title  string
	Suffix string
}

// BulletMain is a top-level "●" line, optionally a label:value pair.
// Bold and Underline apply to the value only.
type BulletMain struct {
	Label     string
	Value     string
	Bold      bool
	Underline bool
}

// BulletSub is a "-" line nested under the preceding main bullet.
type BulletSub struct {
	Text string
}

// ArrowNote is a "→" analytical call-out rendered in a distinguishing color.
type ArrowNote struct {
	Text string
}

// Table renders a header row followed by data rows. Column widths are fixed
// per call site in centimeters; they are never auto-computed.
type Table struct {
	Headers   []string
	Rows      [][]string
	ColWidths []float64
}

// Image places a single picture. Chart selects the standard chart width.
type Image struct {
	Path    string
	WidthCm float64
	Chart   bool
}

// ImageGrid lays out photos two per row when more than one, else one
// full-width image, preserving input order.
type ImageGrid struct {
	Paths []string
}

// Rule is a horizontal rule.
type Rule struct{}

// PageBreak starts a new page.
type PageBreak struct{}

func (Paragraph) isCommand()  {}
func (Heading) isCommand()    {}
func (BulletMain) isCommand() {}
func (BulletSub) isCommand()  {}
func (ArrowNote) isCommand()  {}
func (Table) isCommand()      {}
func (Image) isCommand()      {}
func (ImageGrid) isCommand()  {}
func (Rule) isCommand()       {}
func (PageBreak) isCommand()  {}

// Document is the ordered command stream plus document-level directives.
type Document struct {
	Commands []Command
	// PageFooter asks the sink for a right-aligned page-number footer,
	// registered at most once per document.
	PageFooter bool
}

// Append adds commands in order.
func (d *Document) Append(cmds ...Command) {
	d.Commands = append(d.Commands, cmds...)
}

// Sink persists a finished Document to a writer in some binary format.
type Sink interface {
	Write(d *Document, w io.Writer) error
}
