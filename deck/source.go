// Package deck loads slide images from image directories and PDF documents.
package deck

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gen2brain/go-fitz"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Source is an ordered set of pages that can be rendered independently.
// Render must be safe to call from several goroutines at once.
type Source interface {
	Len() int
	Name(index int) string
	Render(ctx context.Context, index int) (image.Image, error)
	Close() error
}

// imageExts are the extensions ImageDir picks up, lowercase.
var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
	".webp": true,
}

// ImageDir is a Source over image files, one page per file in name order.
type ImageDir struct {
	paths []string
}

// OpenImages returns an ImageDir for path: every supported image in a
// directory, or the single file path names.
func OpenImages(path string) (*ImageDir, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("open images: %w", err)
	}
	if !fi.IsDir() {
		return &ImageDir{paths: []string{path}}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("open images: %w", err)
	}
	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if imageExts[strings.ToLower(filepath.Ext(entry.Name()))] {
			paths = append(paths, filepath.Join(path, entry.Name()))
		}
	}
	sort.Strings(paths)
	return &ImageDir{paths: paths}, nil
}

func (s *ImageDir) Len() int { return len(s.paths) }

// Name returns the file name without its extension.
func (s *ImageDir) Name(index int) string {
	base := filepath.Base(s.paths[index])
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func (s *ImageDir) Render(ctx context.Context, index int) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.paths[index])
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.paths[index], err)
	}
	return img, nil
}

func (s *ImageDir) Close() error { return nil }

// DefaultDPI is the resolution PDF pages are rendered at when none is given.
const DefaultDPI = 150

// PDF is a Source over the pages of a PDF document.
type PDF struct {
	doc  *fitz.Document
	path string
	dpi  int
}

// OpenPDF opens the document at path. Pages render at dpi, or DefaultDPI
// when dpi is not positive.
func OpenPDF(path string, dpi int) (*PDF, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", path, err)
	}
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	return &PDF{doc: doc, path: path, dpi: dpi}, nil
}

func (p *PDF) Len() int { return p.doc.NumPage() }

func (p *PDF) Name(index int) string { return fmt.Sprintf("page-%03d", index+1) }

// Render opens a private document per call; a fitz.Document is not safe for
// concurrent use.
func (p *PDF) Render(ctx context.Context, index int) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	workerDoc, err := fitz.New(p.path)
	if err != nil {
		return nil, err
	}
	defer workerDoc.Close()

	img, err := workerDoc.ImageDPI(index, float64(p.dpi))
	if err != nil {
		return nil, fmt.Errorf("render page %d: %w", index+1, err)
	}
	return img, nil
}

func (p *PDF) Close() error { return p.doc.Close() }

// Open picks a Source for path: OpenPDF for a .pdf file, OpenImages
// otherwise.
func Open(path string, dpi int) (Source, error) {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return OpenPDF(path, dpi)
	}
	return OpenImages(path)
}
