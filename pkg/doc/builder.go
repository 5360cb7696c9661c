package doc

import "os"

// Font sizes of the fixed template, in points.
const (
	SizeTocTitle   = 20
	SizeTocItem    = 14
	SizeSection    = 16
	SizeSubsection = 14
	SizeSub2       = 12
	SizeDetail     = 11
	SizeBody       = 11
)

// Image widths of the fixed template, in centimeters.
const (
	WidthContent = 15.0
	WidthChart   = 12.0
	WidthPoster  = 10.0
	WidthGrid    = 7.5
)

// Builder appends layout commands to a Document. Image primitives silently
// skip paths that do not exist on disk; a partial upload must never block
// report generation.
type Builder struct {
	doc *Document
}

func NewBuilder() *Builder {
	return &Builder{doc: &Document{}}
}

// Document returns the accumulated command stream.
func (b *Builder) Document() *Document {
	return b.doc
}

func (b *Builder) Paragraph(p Paragraph) {
	b.doc.Append(p)
}

// Text appends a body paragraph with default styling.
func (b *Builder) Text(text string) {
	b.doc.Append(Paragraph{Text: text, Size: SizeBody})
}

// BlankLine appends an empty spacing paragraph.
func (b *Builder) BlankLine() {
	b.doc.Append(Paragraph{})
}

func (b *Builder) Heading(level int, label, title string) {
	b.doc.Append(Heading{Level: level, Label: label, Title: title})
}

// HeadingSuffix appends a heading with inline summary text after the title.
func (b *Builder) HeadingSuffix(level int, label, title, suffix string) {
	b.doc.Append(Heading{Level: level, Label: label, Title: title, Suffix: suffix})
}

func (b *Builder) BulletMain(label, value string, bold, underline bool) {
	b.doc.Append(BulletMain{Label: label, Value: value, Bold: bold, Underline: underline})
}

func (b *Builder) BulletSub(text string) {
	b.doc.Append(BulletSub{Text: text})
}

func (b *Builder) ArrowNote(text string) {
	b.doc.Append(ArrowNote{Text: text})
}

func (b *Builder) Table(headers []string, rows [][]string, colWidths []float64) {
	b.doc.Append(Table{Headers: headers, Rows: rows, ColWidths: colWidths})
}

// Image places one picture; missing files are skipped.
func (b *Builder) Image(path string, widthCm float64, chart bool) {
	if !FileExists(path) {
		return
	}
	if widthCm <= 0 {
		widthCm = WidthContent
		if chart {
			widthCm = WidthChart
		}
	}
	b.doc.Append(Image{Path: path, WidthCm: widthCm, Chart: chart})
}

// ImagesAuto lays out the existing subset of paths as a grid, preserving
// order. Nothing is emitted when no path survives the existence filter.
func (b *Builder) ImagesAuto(paths []string) {
	valid := ExistingFiles(paths)
	if len(valid) == 0 {
		return
	}
	b.doc.Append(ImageGrid{Paths: valid})
}

func (b *Builder) Rule() {
	b.doc.Append(Rule{})
}

func (b *Builder) PageBreak() {
	b.doc.Append(PageBreak{})
}

// PageNumberFooter registers the right-aligned page-number footer. Repeat
// calls are idempotent.
func (b *Builder) PageNumberFooter() {
	b.doc.PageFooter = true
}

// FileExists reports whether path names an existing file.
func FileExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// ExistingFiles filters paths down to those present on disk, keeping order.
func ExistingFiles(paths []string) []string {
	var valid []string
	for _, p := range paths {
		if FileExists(p) {
			valid = append(valid, p)
		}
	}
	return valid
}
