// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import (
	"bytes"
	"context"
	"fmt"
	"os"
)

// imageMarkitdown is the container image used for PDF-to-Markdown
// conversion.
const imageMarkitdown = "markitdown:latest"

// fetchPDF reads the PDF at path and pipes it through the markitdown
// container, returning the resulting Markdown text.
func (f *Fetcher) fetchPDF(ctx context.Context, path string) (string, error) {
	if f.Runtime == nil {
		return "", fmt.Errorf("no container runtime configured for PDF conversion")
	}
	if err := f.Runtime.ImageExists(imageMarkitdown); err != nil {
		return "", fmt.Errorf("markitdown image not available in %s: %w", f.Runtime.Name(), err)
	}

	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening PDF %s: %w", path, err)
	}
	defer file.Close()

	var out bytes.Buffer
	if err := f.Runtime.Run(ctx, imageMarkitdown, file, &out); err != nil {
		return "", fmt.Errorf("converting %s with markitdown: %w", path, err)
	}

	if out.Len() == 0 {
		return "", fmt.Errorf("markitdown produced empty output for %s", path)
	}
	return out.String(), nil
}
