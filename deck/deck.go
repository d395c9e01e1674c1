package deck

import (
	"context"
	"fmt"
	"image"
	"runtime"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/sync/errgroup"

	"github.com/phanxgames/slides"
)

// Page is one rendered page of a Source.
type Page struct {
	Index int
	Name  string
	Image image.Image
}

// Load renders every page of src with up to workers pages in flight
// (runtime.NumCPU when workers is not positive). Pages come back in source
// order. The first error cancels the remaining renders.
func Load(ctx context.Context, src Source, workers int) ([]Page, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	pages := make([]Page, src.Len())

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range pages {
		g.Go(func() error {
			img, err := src.Render(ctx, i)
			if err != nil {
				return fmt.Errorf("load %s: %w", src.Name(i), err)
			}
			pages[i] = Page{Index: i, Name: src.Name(i), Image: img}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return pages, nil
}

// Nodes uploads each page to the GPU and returns one image node per page,
// ready to add to a slide container. Must run on the game goroutine or
// before ebiten.RunGame.
func Nodes(pages []Page) []*slides.Node {
	nodes := make([]*slides.Node, len(pages))
	for i, p := range pages {
		nodes[i] = slides.NewImage(p.Name, ebiten.NewImageFromImage(p.Image))
	}
	return nodes
}

// LoadInto loads the deck at path and appends its pages to container.
// It returns the number of slides added.
func LoadInto(ctx context.Context, container *slides.Node, path string, dpi, workers int) (int, error) {
	src, err := Open(path, dpi)
	if err != nil {
		return 0, err
	}
	defer src.Close()

	pages, err := Load(ctx, src, workers)
	if err != nil {
		return 0, err
	}
	for _, n := range Nodes(pages) {
		container.AddChild(n)
	}
	return len(pages), nil
}
