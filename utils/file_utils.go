package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/h2non/filetype"
)

// DeriveTitleFromFilename turns a background filename into a usable display
// title: extension and leading id digits stripped, separators spaced out.
func DeriveTitleFromFilename(filePath string) string {
	base := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	base = regexp.MustCompile(`^[0-9]+[-_. ]+`).ReplaceAllString(base, "")
	base = strings.NewReplacer("_", " ", "-", " ").Replace(base)
	fields := strings.Fields(base)
	if len(fields) == 0 {
		return base
	}
	return strings.Join(fields, " ")
}

// ValidateImageFile checks that filePath exists and sniffs as an image.
func ValidateImageFile(filePath string) error {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return fmt.Errorf("file does not exist: %s", filePath)
	}

	f, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	// filetype needs at most 261 bytes to match
	header := make([]byte, 261)
	n, err := f.Read(header)
	if err != nil && n == 0 {
		return fmt.Errorf("failed to read file header: %w", err)
	}

	if !filetype.IsImage(header[:n]) {
		kind, _ := filetype.Match(header[:n])
		return fmt.Errorf("file is not an image: %s", kind.Extension)
	}

	return nil
}
