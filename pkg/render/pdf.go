package render

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"

	sp "github.com/akeil/spritepack"
	"github.com/akeil/spritepack/internal/imaging"
	"github.com/akeil/spritepack/internal/logging"
)

// PDFOptions control the contact sheet produced by PDF.
type PDFOptions struct {
	// Scale enlarges sheet images by an integer factor before they are
	// placed on the page. Images are still shrunk to fit the page.
	Scale int
	// Outline draws anchor frames on the sheet images.
	Outline bool
	Title   string
}

// PDF renders a contact sheet with one page per sprite sheet and writes
// the document to w.
func PDF(sheets []sp.SpriteSheet, opts PDFOptions, w io.Writer) error {
	if len(sheets) == 0 {
		return fmt.Errorf("no sheets to render")
	}
	logging.Debug("Render PDF for %d sheets", len(sheets))
	pdf := setupPDF(opts.Title)

	for i := range sheets {
		err := renderSheetPage(pdf, &sheets[i], i, opts)
		if err != nil {
			return err
		}
	}

	if pdf.Err() {
		return pdf.Error()
	}
	return pdf.Output(w)
}

func setupPDF(title string) *gofpdf.Fpdf {
	orientation := "P"
	sizeUnit := "pt"
	fontDir := ""
	pdf := gofpdf.New(orientation, sizeUnit, "A4", fontDir)

	pdf.SetMargins(24, 24, 24) // left, top, right
	pdf.SetFont("helvetica", "", 8)
	pdf.SetTextColor(127, 127, 127)
	pdf.SetProducer("spritepack", true)
	if title != "" {
		pdf.SetTitle(title, true)
	}

	return pdf
}

func renderSheetPage(pdf *gofpdf.Fpdf, s *sp.SpriteSheet, i int, opts PDFOptions) error {
	src := s.Image()
	if src == nil {
		return fmt.Errorf("cannot render sheet with %d bytes per pixel", s.BytesPerPixel)
	}

	var img image.Image = src
	if opts.Outline {
		o, err := Outline(s, OutlineColor)
		if err != nil {
			return err
		}
		img = o
	}
	img = imaging.Scale(img, opts.Scale)

	var buf bytes.Buffer
	err := png.Encode(&buf, img)
	if err != nil {
		return err
	}

	name := uuid.New().String()
	imgOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.AddPage()
	pdf.RegisterImageOptionsReader(name, imgOpts, &buf)

	pdf.Cellf(0, 10, "Sheet %d  |  %v  |  %d sprites", i+1, s.Dimensions, len(s.Anchors))
	pdf.Ln(14)

	// fit the image into the usable page area, never enlarge it
	wPage, hPage := pdf.GetPageSize()
	left, top, right, _ := pdf.GetMargins()
	maxW := wPage - left - right
	maxH := hPage - pdf.GetY() - top
	w := float64(img.Bounds().Dx())
	h := float64(img.Bounds().Dy())
	if w > maxW {
		h = h * maxW / w
		w = maxW
	}
	if h > maxH {
		w = w * maxH / h
		h = maxH
	}

	flow := false
	link := 0
	linkStr := ""
	pdf.ImageOptions(name, left, pdf.GetY(), w, h, flow, imgOpts, link, linkStr)
	return nil
}
