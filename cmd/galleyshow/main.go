// galleyshow is a small page viewer for galley render output: point it at
// the output directory and page through the rendered PNGs.
package main

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	_ "image/png"
)

func main() {
	dir := "out"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	pages, err := loadPages(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(pages) == 0 {
		fmt.Fprintf(os.Stderr, "No page-*.png files in %s\n", dir)
		os.Exit(1)
	}

	a := app.New()
	w := a.NewWindow("galley pages")
	w.Resize(fyne.NewSize(700, 900))

	current := 0
	img := canvas.NewImageFromImage(pages[current])
	img.FillMode = canvas.ImageFillContain
	status := widget.NewLabel(pageLabel(current, len(pages)))

	show := func(i int) {
		if i < 0 || i >= len(pages) {
			return
		}
		current = i
		img.Image = pages[current]
		img.Refresh()
		status.SetText(pageLabel(current, len(pages)))
	}

	prev := widget.NewButton("< Prev", func() { show(current - 1) })
	next := widget.NewButton("Next >", func() { show(current + 1) })
	nav := container.NewBorder(nil, nil, prev, next, status)

	w.SetContent(container.NewBorder(nil, nav, nil, nil, img))
	w.ShowAndRun()
}

func pageLabel(i, n int) string {
	return fmt.Sprintf("page %d of %d", i+1, n)
}

func loadPages(dir string) ([]image.Image, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "page-*.png"))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	var pages []image.Image
	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", p, err)
		}
		img, _, err := image.Decode(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", p, err)
		}
		pages = append(pages, img)
	}
	return pages, nil
}
