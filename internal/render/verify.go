// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"

	pdflib "github.com/ledongthuc/pdf"
)

// VerifyPDF checks that path holds a readable PDF with at least one page.
// A headless browser can exit zero yet leave a truncated or empty file
// behind; this catches that before the batch reports success.
func VerifyPDF(path string) error {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return fmt.Errorf("opening PDF: %w", err)
	}
	defer f.Close()

	if reader.NumPage() < 1 {
		return fmt.Errorf("PDF has no pages")
	}
	return nil
}
