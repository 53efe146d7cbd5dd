package extract

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"
)

func TestExtract_EmptyBatch(t *testing.T) {
	if got := Extract(nil); got != nil {
		t.Fatalf("expected nil batch, got %v", got)
	}
	if got := Extract([]File{}); got != nil {
		t.Fatalf("expected nil batch for empty slice, got %v", got)
	}
}

func TestExtract_UnsupportedType(t *testing.T) {
	batch := Extract([]File{{Name: "notes.txt", Data: []byte("hello")}})
	if len(batch) != 1 || len(batch[0]) != 1 {
		t.Fatalf("expected one file with one segment, got %v", batch)
	}
	seg := batch[0][0]
	if !strings.Contains(seg, "notes.txt") || !strings.Contains(seg, "Unsupported file type.") {
		t.Fatalf("unexpected placeholder segment: %q", seg)
	}
}

func TestExtract_CorruptPDFYieldsErrorSegment(t *testing.T) {
	batch := Extract([]File{
		{Name: "broken.pdf", Data: []byte("not a pdf at all")},
		{Name: "other.txt", Data: []byte("x")},
	})
	if len(batch) != 2 {
		t.Fatalf("expected both files in batch, got %d", len(batch))
	}
	if !strings.Contains(batch[0][0], "Error processing PDF file broken.pdf") {
		t.Fatalf("expected error segment for corrupt PDF, got: %q", batch[0][0])
	}
	// The failure must not abort the rest of the batch.
	if !strings.Contains(batch[1][0], "Unsupported file type.") {
		t.Fatalf("expected second file to be processed, got: %q", batch[1][0])
	}
}

func buildDOCX(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte(documentXML)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestExtract_DOCXParagraphs(t *testing.T) {
	docXML := `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>First paragraph.</w:t></w:r></w:p>
    <w:p><w:r><w:t>Second </w:t></w:r><w:r><w:t>paragraph.</w:t></w:r></w:p>
  </w:body>
</w:document>`

	batch := Extract([]File{{Name: "doc.docx", Data: buildDOCX(t, docXML)}})
	if len(batch) != 1 || len(batch[0]) != 1 {
		t.Fatalf("expected single segment, got %v", batch)
	}
	want := "First paragraph.\nSecond paragraph."
	if batch[0][0] != want {
		t.Fatalf("expected %q, got %q", want, batch[0][0])
	}
}

func TestExtract_DOCXMissingDocumentXML(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, _ := zw.Create("word/other.xml")
	w.Write([]byte("<x/>"))
	zw.Close()

	batch := Extract([]File{{Name: "empty.docx", Data: buf.Bytes()}})
	if !strings.Contains(batch[0][0], "Error processing Word file empty.docx") {
		t.Fatalf("expected error segment, got %q", batch[0][0])
	}
}

func TestJoin(t *testing.T) {
	batch := [][]string{
		{"file one page one", "file one page two"},
		{"file two"},
	}
	got := Join(batch)
	want := "file one page one\n\nfile one page two\n\nfile two"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestJoin_EmptyBatch(t *testing.T) {
	if got := Join(nil); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}
