package server

import (
	"fmt"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/eduforge/eduforge/internal/extract"
)

// readUploads pulls the "files" multipart field into memory and returns
// the extracted text, joined across files. Endpoints that tolerate
// missing uploads get an empty string back.
func readUploads(c *gin.Context) (string, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return "", fmt.Errorf("read multipart form: %w", err)
	}

	headers := form.File["files"]
	files := make([]extract.File, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			return "", fmt.Errorf("open upload %s: %w", fh.Filename, err)
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return "", fmt.Errorf("read upload %s: %w", fh.Filename, err)
		}
		files = append(files, extract.File{Name: fh.Filename, Data: data})
	}

	return extract.Join(extract.Extract(files)), nil
}
