// Package docx serializes a doc.Document into a Word document using
// github.com/fumiama/go-docx. It is the only package that knows about the
// OOXML representation; everything above it works on the command stream.
package docx

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	godocx "github.com/fumiama/go-docx"

	"github.com/gallery-tools/exhibit-atlas/pkg/doc"
)

const (
	arrowColor = "C45911"
	ruleColor  = "A6A6A6"

	emuPerCm   = 360000
	twipsPerCm = 567
)

// Sink writes documents in .docx format.
type Sink struct{}

func NewSink() *Sink {
	return &Sink{}
}

// Write serializes the command stream in order. Unknown commands cannot occur
// because the command set is closed.
func (s *Sink) Write(d *doc.Document, w io.Writer) error {
	file := godocx.New().WithDefaultTheme()

	for _, cmd := range d.Commands {
		switch c := cmd.(type) {
		case doc.Paragraph:
			writeParagraph(file, c)
		case doc.Heading:
			writeHeading(file, c)
		case doc.BulletMain:
			writeBulletMain(file, c)
		case doc.BulletSub:
			para := file.AddParagraph()
			para.AddText("　- " + c.Text).Size(sz(doc.SizeBody))
		case doc.ArrowNote:
			para := file.AddParagraph()
			para.AddText("→ " + c.Text).Size(sz(doc.SizeBody)).Color(arrowColor)
		case doc.Table:
			writeTable(file, c)
		case doc.Image:
			writeImage(file, c.Path, c.WidthCm, doc.AlignLeft)
		case doc.ImageGrid:
			writeImageGrid(file, c.Paths)
		case doc.Rule:
			para := file.AddParagraph()
			para.AddText(strings.Repeat("─", 42)).Color(ruleColor)
		case doc.PageBreak:
			file.AddParagraph().AddPageBreaks()
		}
	}

	// The underlying library has no footer support yet; the page-number
	// directive is accepted and dropped here rather than failing the write.
	// TODO: emit footer1.xml once go-docx exposes header/footer parts.

	_, err := file.WriteTo(w)
	if err != nil {
		return fmt.Errorf("failed to write docx: %w", err)
	}
	return nil
}

// WriteFile serializes to a file path, propagating I/O failures.
func (s *Sink) WriteFile(d *doc.Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := s.Write(d, f); err != nil {
		return err
	}
	return f.Close()
}

func writeParagraph(file *godocx.Docx, p doc.Paragraph) {
	para := file.AddParagraph()
	if p.Text == "" {
		return
	}

	text := p.Text
	if p.Indented || p.LeftPad {
		text = "　" + text
	}

	size := p.Size
	if size == 0 {
		size = doc.SizeBody
	}
	run := para.AddText(text).Size(sz(size))
	if p.Bold {
		run.Bold()
	}
	switch p.Align {
	case doc.AlignCenter:
		para.Justification("center")
	case doc.AlignRight:
		para.Justification("right")
	}
}

func writeHeading(file *godocx.Docx, h doc.Heading) {
	var text string
	var size int
	switch h.Level {
	case 1:
		text = h.Label + ". " + h.Title
		size = doc.SizeSection
	case 2:
		text = h.Label + ". " + h.Title
		size = doc.SizeSubsection
	case 3:
		text = h.Label + ") " + h.Title
		size = doc.SizeSub2
	default:
		text = h.Label + " " + h.Title
		size = doc.SizeDetail
	}

	para := file.AddParagraph()
	run := para.AddText(text).Size(sz(size))
	run.Bold()
	if h.Suffix != "" {
		para.AddText(h.Suffix).Size(sz(doc.SizeBody))
	}
}

func writeBulletMain(file *godocx.Docx, b doc.BulletMain) {
	para := file.AddParagraph()
	if b.Label != "" {
		para.AddText("● " + b.Label + ": ").Size(sz(doc.SizeBody))
	} else {
		para.AddText("● ").Size(sz(doc.SizeBody))
	}

	value := para.AddText(b.Value).Size(sz(doc.SizeBody))
	if b.Bold {
		value.Bold()
	}
	if b.Underline {
		value.Underline("single")
	}
}

func writeTable(file *godocx.Docx, t doc.Table) {
	rows := len(t.Rows) + 1
	cols := len(t.Headers)

	rowHeights := make([]int64, rows)
	colWidths := make([]int64, cols)
	for i := range colWidths {
		if i < len(t.ColWidths) {
			colWidths[i] = int64(t.ColWidths[i] * twipsPerCm)
		}
	}

	table := file.AddTableTwips(rowHeights, colWidths, 0, nil)

	fill := func(row, col int, text string, bold bool) {
		if row >= len(table.TableRows) || col >= len(table.TableRows[row].TableCells) {
			return
		}
		run := table.TableRows[row].TableCells[col].AddParagraph().AddText(text).Size(sz(doc.SizeBody))
		if bold {
			run.Bold()
		}
	}

	for j, h := range t.Headers {
		fill(0, j, h, true)
	}
	for i, row := range t.Rows {
		for j := 0; j < cols; j++ {
			var cell string
			if j < len(row) {
				cell = row[j]
			}
			fill(i+1, j, cell, false)
		}
	}
}

func writeImage(file *godocx.Docx, path string, widthCm float64, align doc.Alignment) {
	para := file.AddParagraph()
	if align == doc.AlignCenter {
		para.Justification("center")
	}
	addDrawing(para, path, widthCm)
}

func writeImageGrid(file *godocx.Docx, paths []string) {
	if len(paths) == 1 {
		writeImage(file, paths[0], doc.WidthContent, doc.AlignCenter)
		return
	}
	for i := 0; i < len(paths); i += 2 {
		para := file.AddParagraph()
		para.Justification("center")
		addDrawing(para, paths[i], doc.WidthGrid)
		if i+1 < len(paths) {
			para.AddText(" ")
			addDrawing(para, paths[i+1], doc.WidthGrid)
		}
	}
}

// addDrawing inserts the picture and rescales its extent to the requested
// width, keeping the aspect ratio. Unreadable images are skipped the same way
// missing ones are skipped upstream.
func addDrawing(para *godocx.Paragraph, path string, widthCm float64) {
	run, err := para.AddInlineDrawingFrom(path)
	if err != nil {
		return
	}
	targetCX := int64(widthCm * emuPerCm)
	for _, child := range run.Children {
		drawing, ok := child.(*godocx.Drawing)
		if !ok || drawing.Inline == nil || drawing.Inline.Extent == nil {
			continue
		}
		extent := drawing.Inline.Extent
		if extent.CX > 0 {
			extent.CY = extent.CY * targetCX / extent.CX
		}
		extent.CX = targetCX
	}
}

// sz converts points to the half-point units of w:sz.
func sz(points int) string {
	return strconv.Itoa(points * 2)
}
