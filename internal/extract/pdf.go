package extract

import (
	"bytes"
	"fmt"
	"strings"

	rpdf "rsc.io/pdf"
)

// extractPDF returns a metadata segment followed by one text segment per
// page. The rsc.io/pdf reader panics on malformed input, so the whole
// extraction runs under a recover that degrades to an error segment.
func extractPDF(f File) (segments []string) {
	defer func() {
		if r := recover(); r != nil {
			segments = []string{fmt.Sprintf("Error processing PDF file %s: %v", f.Name, r)}
		}
	}()

	reader, err := rpdf.NewReader(bytes.NewReader(f.Data), int64(len(f.Data)))
	if err != nil {
		return []string{fmt.Sprintf("Error processing PDF file %s: %v", f.Name, err)}
	}

	segments = append(segments, pdfMetadata(reader, f.Name))

	for i := 1; i <= reader.NumPage(); i++ {
		segments = append(segments, strings.TrimSpace(pdfPageText(reader.Page(i))))
	}
	return segments
}

// pdfMetadata renders the filename plus any document info entries present
// in the trailer.
func pdfMetadata(r *rpdf.Reader, name string) string {
	lines := []string{"Filename: " + name}

	info := r.Trailer().Key("Info")
	for _, key := range []string{"Title", "Author", "Subject", "Creator", "Producer"} {
		v := info.Key(key)
		if v.Kind() == rpdf.String && v.Text() != "" {
			lines = append(lines, key+": "+v.Text())
		}
	}
	return strings.Join(lines, "\n")
}

// pdfPageText concatenates the page's text runs in content order, breaking
// lines when the baseline moves.
func pdfPageText(page rpdf.Page) string {
	content := page.Content()

	var b strings.Builder
	lastY := -1.0
	for _, t := range content.Text {
		if lastY >= 0 && t.Y != lastY {
			b.WriteByte('\n')
		}
		b.WriteString(t.S)
		lastY = t.Y
	}
	return b.String()
}
