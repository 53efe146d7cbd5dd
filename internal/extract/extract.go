// Package extract pulls plain text out of uploaded documents so it can be
// fed to the LLM as prompt content. Extraction is best-effort: a file that
// cannot be read contributes an error segment instead of failing the batch,
// because the model can still work with the remaining files.
package extract

import (
	"fmt"
	"path/filepath"
	"strings"
)

// File is one uploaded document held in memory.
type File struct {
	Name string
	Data []byte
}

// Extract returns one segment list per input file, in input order.
// PDFs yield a metadata segment followed by one segment per page; DOCX
// files yield a single segment. Unsupported types and per-file failures
// yield a single placeholder or error segment.
func Extract(files []File) [][]string {
	if len(files) == 0 {
		return nil
	}

	batch := make([][]string, 0, len(files))
	for _, f := range files {
		switch strings.ToLower(filepath.Ext(f.Name)) {
		case ".pdf":
			batch = append(batch, extractPDF(f))
		case ".docx":
			batch = append(batch, extractDOCX(f))
		default:
			batch = append(batch, []string{fmt.Sprintf("%s\n------------\n\nUnsupported file type.", f.Name)})
		}
	}
	return batch
}

// Join flattens an extraction batch into a single prompt-ready string,
// separating segments and files with blank lines.
func Join(batch [][]string) string {
	parts := make([]string, 0, len(batch))
	for _, segments := range batch {
		parts = append(parts, strings.Join(segments, "\n\n"))
	}
	return strings.Join(parts, "\n\n")
}
