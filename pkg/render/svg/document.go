// Package svg builds small standalone SVG documents. It covers
// exactly what the trajectory plot needs — a sized canvas, an optional
// background, and a list of raw element fragments — rather than a
// general SVG model.
package svg

import (
	"fmt"
	"os"
	"strings"
)

// Color is an SVG color value.
type Color string

// Named colors used by the plots.
const (
	Black  Color = "black"
	White  Color = "white"
	Blue   Color = "blue"
	Green  Color = "green"
	Red    Color = "red"
	Yellow Color = "yellow"
)

// RGB returns an rgb(r,g,b) color.
func RGB(r, g, b uint8) Color {
	return Color(fmt.Sprintf("rgb(%d,%d,%d)", r, g, b))
}

// Document accumulates SVG elements on a fixed-size canvas.
type Document struct {
	Width      float64
	Height     float64
	Background Color // empty means transparent
	elements   []string
}

// NewDocument creates a document with the given canvas size and
// background.
func NewDocument(width, height float64, background Color) *Document {
	return &Document{
		Width:      width,
		Height:     height,
		Background: background,
	}
}

// Add appends a raw element fragment to the document body.
func (d *Document) Add(element string) {
	d.elements = append(d.elements, element)
}

// Addf appends a formatted element fragment to the document body.
func (d *Document) Addf(format string, args ...any) {
	d.Add(fmt.Sprintf(format, args...))
}

// writeBody writes the background and every element, ensuring each
// fragment ends with a newline.
func (d *Document) writeBody(b *strings.Builder) {
	if d.Background != "" {
		fmt.Fprintf(b, "<rect width=\"100%%\" height=\"100%%\" fill=\"%s\" />\n", d.Background)
	}
	for _, element := range d.elements {
		b.WriteString(element)
		if !strings.HasSuffix(element, "\n") {
			b.WriteByte('\n')
		}
	}
}

// String renders the complete SVG file.
func (d *Document) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "<svg version=\"1.1\"\nbaseProfile=\"full\"\nwidth=\"%.2f\" height=\"%.2f\"\nxmlns=\"http://www.w3.org/2000/svg\"\nxmlns:xlink=\"http://www.w3.org/1999/xlink\">\n",
		d.Width, d.Height)
	d.writeBody(&b)
	b.WriteString("</svg>\n")
	return b.String()
}

// InlineString renders the document without the XML preamble, for
// embedding inside HTML.
func (d *Document) InlineString() string {
	var b strings.Builder
	fmt.Fprintf(&b, "<svg width=\"%.2f\" height=\"%.2f\">\n", d.Width, d.Height)
	d.writeBody(&b)
	b.WriteString("</svg>\n")
	return b.String()
}

// WriteFile writes the rendered document to path.
func (d *Document) WriteFile(path string) error {
	if err := os.WriteFile(path, []byte(d.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write SVG file: %w", err)
	}
	return nil
}
