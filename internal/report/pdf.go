package report

import (
	"fmt"
	"io"

	"github.com/signintech/gopdf"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	fontRegular = "Go"
	fontBold    = "GoBold"

	titleFontSize = 20
	rowFontSize   = 10

	pointsPerMM = 72.0 / 25.4
)

func mm(v float64) float64 {
	return v * pointsPerMM
}

// RenderPDF draws paginated pages onto A4 sheets and writes the document to w.
// Layout positions are read in millimetres.
func RenderPDF(pages []Page, layout Layout, w io.Writer) error {
	pdf := gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})

	if err := pdf.AddTTFFontData(fontRegular, goregular.TTF); err != nil {
		return fmt.Errorf("failed to load regular font: %w", err)
	}
	if err := pdf.AddTTFFontData(fontBold, gobold.TTF); err != nil {
		return fmt.Errorf("failed to load bold font: %w", err)
	}

	for _, page := range pages {
		pdf.AddPage()

		if page.Title != "" {
			if err := pdf.SetFont(fontBold, "", titleFontSize); err != nil {
				return fmt.Errorf("failed to set title font: %w", err)
			}
			pdf.SetX(mm(layout.LabelX))
			pdf.SetY(mm(layout.TopMargin))
			if err := pdf.Cell(nil, page.Title); err != nil {
				return fmt.Errorf("failed to draw title on page %d: %w", page.Number, err)
			}
		}

		if err := pdf.SetFont(fontRegular, "", rowFontSize); err != nil {
			return fmt.Errorf("failed to set row font: %w", err)
		}
		for _, e := range page.Entries {
			pdf.SetX(mm(layout.LabelX))
			pdf.SetY(mm(e.Y))
			if err := pdf.Cell(nil, e.Label); err != nil {
				return fmt.Errorf("failed to draw row on page %d: %w", page.Number, err)
			}
			pdf.SetX(mm(layout.AmountX))
			pdf.SetY(mm(e.Y))
			if err := pdf.Cell(nil, e.Amount); err != nil {
				return fmt.Errorf("failed to draw amount on page %d: %w", page.Number, err)
			}
		}
	}

	if _, err := pdf.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}
