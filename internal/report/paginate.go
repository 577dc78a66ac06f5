package report

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"fjacquet/fintrack/internal/apperror"
	"fjacquet/fintrack/internal/models"
)

// Layout describes the vertical budget of a document page, in millimetres.
// Rows are placed from TopMargin+HeaderHeight on the first page and from TopMargin
// on the following ones; a new page starts once the cursor passes PageHeight.
type Layout struct {
	Title        string
	PageHeight   float64
	TopMargin    float64
	HeaderHeight float64
	LineHeight   float64

	// Rendering only.
	LabelX    float64
	AmountX   float64
	TextWidth int
}

// DefaultLayout returns the layout of the "Financial Report" document.
func DefaultLayout() Layout {
	return Layout{
		Title:        "Financial Report",
		PageHeight:   280,
		TopMargin:    20,
		HeaderHeight: 20,
		LineHeight:   10,
		LabelX:       20,
		AmountX:      150,
		TextWidth:    60,
	}
}

// Validate rejects layouts that cannot hold a single row.
func (l Layout) Validate() error {
	switch {
	case l.PageHeight <= 0:
		return &apperror.ValidationError{Field: "page_height", Reason: "must be positive"}
	case l.LineHeight <= 0:
		return &apperror.ValidationError{Field: "line_height", Reason: "must be positive"}
	case l.TopMargin < 0 || l.HeaderHeight < 0:
		return &apperror.ValidationError{Field: "top_margin", Reason: "margins cannot be negative"}
	case l.TopMargin+l.HeaderHeight > l.PageHeight:
		return &apperror.ValidationError{Field: "header_height", Reason: "header does not fit on the page"}
	case l.LineHeight > l.PageHeight-l.TopMargin:
		return &apperror.ValidationError{
			Field:  "line_height",
			Reason: fmt.Sprintf("line height %.1f exceeds usable height %.1f", l.LineHeight, l.PageHeight-l.TopMargin),
		}
	}
	return nil
}

// Capacity returns how many rows fit on the first page or on any following page.
// A row fits while its y does not exceed PageHeight; Paginate breaks pages on this count.
func (l Layout) Capacity(first bool) int {
	start := l.startY(first)
	if l.LineHeight <= 0 || start > l.PageHeight {
		return 0
	}
	return int(math.Floor((l.PageHeight-start)/l.LineHeight+1e-9)) + 1
}

func (l Layout) startY(first bool) float64 {
	if first {
		return l.TopMargin + l.HeaderHeight
	}
	return l.TopMargin
}

// Entry is one transaction row placed on a page.
type Entry struct {
	Y      float64
	Label  string
	Amount string
}

// Page is one page of the document. Only the first page carries the title.
type Page struct {
	Number  int
	Title   string
	Entries []Entry
}

// Paginate lays transactions out over pages, in input order. An empty input
// still yields the title page.
func Paginate(txs []models.Transaction, layout Layout) []Page {
	pages := []Page{{Number: 1, Title: layout.Title, Entries: []Entry{}}}
	start := layout.startY(true)
	capacity := layout.Capacity(true)
	row := 0

	for _, tx := range txs {
		if row >= capacity {
			pages = append(pages, Page{Number: len(pages) + 1, Entries: []Entry{}})
			start = layout.startY(false)
			// A following page always takes at least one row.
			capacity = max(layout.Capacity(false), 1)
			row = 0
		}
		last := len(pages) - 1
		pages[last].Entries = append(pages[last].Entries, Entry{
			Y:      start + float64(row)*layout.LineHeight,
			Label:  fmt.Sprintf("%s - %s", tx.Date, tx.Title),
			Amount: SignedAmount(tx),
		})
		row++
	}
	return pages
}

// SignedAmount renders the magnitude of the amount prefixed by "+" for income or "-" for expenses.
func SignedAmount(tx models.Transaction) string {
	sign := "+"
	if tx.IsExpense() {
		sign = "-"
	}
	return sign + tx.Amount.Abs().String()
}

// Lines renders the page as plain text: the title, if any, then one line per
// entry with the amount right-aligned to width runes.
func (p Page) Lines(width int) []string {
	lines := make([]string, 0, len(p.Entries)+1)
	if p.Title != "" {
		lines = append(lines, p.Title)
	}
	for _, e := range p.Entries {
		lines = append(lines, alignLine(e.Label, e.Amount, width))
	}
	return lines
}

func alignLine(label, amount string, width int) string {
	room := width - utf8.RuneCountInString(amount) - 1
	if room < 0 {
		room = 0
	}
	if utf8.RuneCountInString(label) > room {
		label = string([]rune(label)[:room])
	}
	pad := width - utf8.RuneCountInString(label) - utf8.RuneCountInString(amount)
	if pad < 1 {
		pad = 1
	}
	return label + strings.Repeat(" ", pad) + amount
}

// WriteText writes every page as text, separated by a form feed.
func WriteText(pages []Page, width int) (string, error) {
	if width <= 0 {
		return "", errors.New("text width must be positive")
	}
	var sb strings.Builder
	for i, p := range pages {
		if i > 0 {
			sb.WriteString("\f\n")
		}
		for _, line := range p.Lines(width) {
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
	}
	return sb.String(), nil
}
