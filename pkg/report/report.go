// Package report renders a stored diagnosis as a printable A4 PDF.
package report

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"
	"go.uber.org/zap"

	"isharati.xyz/netdiag-service/pkg/common"
	"isharati.xyz/netdiag-service/pkg/models"
)

const (
	Platform = "ISHARATI PRO v1.0"
	Title    = "ISHARATI PRO - Network Analysis Report"

	footerLine    = "Generated by ISHARATI PRO v1.0 - Advanced Network Diagnostic Platform"
	supportLine   = "For support: isharatipro@gmail.com"
	notAvailable  = "N/A"
	qrImageName   = "permalink-qr"
	qrSizePx      = 256
	qrSizeMm      = 32.0
	labelColWidth = 70.0
	valueColWidth = 100.0
	rowHeight     = 8.0
)

type Options struct {
	// BaseURL is the public address of the service. When set, the report
	// carries a QR code pointing at <BaseURL>/diagnoses/<id>.
	BaseURL string
}

func Filename(id string) string {
	return fmt.Sprintf("ISHARATI_Analytics_%s.pdf", id)
}

func PermalinkURL(baseURL, id string) string {
	return strings.TrimRight(baseURL, "/") + "/diagnoses/" + id
}

type rgb struct{ r, g, b int }

var (
	brandBlue  = rgb{0x00, 0x52, 0xFF}
	scoreGreen = rgb{0x10, 0xB9, 0x81}
	coverBg    = rgb{0xF8, 0xFA, 0xFC}
	gridGrey   = rgb{0xE2, 0xE8, 0xF0}
)

type writer struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

// latin1 drops runes the core fonts cannot draw, emoji and Arabic script included.
func latin1(s string) string {
	return strings.TrimSpace(strings.Map(func(r rune) rune {
		if r > unicode.MaxLatin1 || (unicode.IsControl(r) && r != '\n') {
			return -1
		}
		return r
	}, s))
}

// text encodes what latin1 keeps as cp1252.
func (w *writer) text(s string) string {
	return w.tr(latin1(s))
}

func (w *writer) heading(title string) {
	w.pdf.Ln(4)
	w.pdf.SetFont("Helvetica", "B", 14)
	w.pdf.SetTextColor(brandBlue.r, brandBlue.g, brandBlue.b)
	w.pdf.CellFormat(0, 10, w.text(title), "", 1, "L", false, 0, "")
	w.pdf.SetTextColor(0, 0, 0)
}

func (w *writer) table(header []string, rows [][2]string, headerFill rgb, bodyFill *rgb) {
	if header != nil {
		w.pdf.SetFont("Helvetica", "B", 11)
		w.pdf.SetFillColor(headerFill.r, headerFill.g, headerFill.b)
		w.pdf.SetTextColor(255, 255, 255)
		w.pdf.CellFormat(labelColWidth, rowHeight, w.text(header[0]), "1", 0, "L", true, 0, "")
		w.pdf.CellFormat(valueColWidth, rowHeight, w.text(header[1]), "1", 1, "L", true, 0, "")
		w.pdf.SetTextColor(0, 0, 0)
	}

	fill := bodyFill != nil
	if fill {
		w.pdf.SetFillColor(bodyFill.r, bodyFill.g, bodyFill.b)
	}
	for _, row := range rows {
		w.pdf.SetFont("Helvetica", "B", 10)
		w.pdf.CellFormat(labelColWidth, rowHeight, w.text(row[0]), "1", 0, "L", fill, 0, "")
		w.pdf.SetFont("Helvetica", "", 10)
		w.pdf.CellFormat(valueColWidth, rowHeight, w.text(row[1]), "1", 1, "L", fill, 0, "")
	}
}

func (w *writer) paragraph(s string) {
	w.pdf.SetFont("Helvetica", "", 10)
	w.pdf.MultiCell(0, 6, w.text(s), "", "L", false)
}

// orNA also covers values that would print as nothing, such as a city named in Arabic.
func orNA(s string) string {
	if latin1(s) == "" {
		return notAvailable
	}
	return s
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func coverRows(rec *models.DiagnosisRecord) [][2]string {
	return [][2]string{
		{"Report ID:", "RPT-" + strings.ToUpper(rec.ID)},
		{"Date & Time:", strings.TrimSpace(rec.Date + " " + rec.Time)},
		{"Location:", fmt.Sprintf("%s, %s", orNA(rec.City), orNA(rec.Wilaya))},
		{"Operator:", orNA(rec.Operator)},
		{"Network Type:", orNA(rec.NetworkType)},
		{"Platform:", Platform},
	}
}

func scoreRows(rec *models.DiagnosisRecord) [][2]string {
	b := rec.ScoreBreakdown
	rows := [][2]string{
		{"Overall Quality", fmt.Sprintf("%s/100", formatFloat(b.Overall))},
		{"Coverage (RSRP)", fmt.Sprintf("%d/100", b.Coverage)},
		{"Signal Quality (SINR)", fmt.Sprintf("%d/100", b.Quality)},
	}
	if b.Speed != nil {
		rows = append(rows, [2]string{"Speed Performance", fmt.Sprintf("%d/100", *b.Speed)})
	}
	rows = append(rows, [2]string{"Rating", fmt.Sprintf("%d/5 stars", int(b.Stars))})
	return rows
}

func parameterRows(rec *models.DiagnosisRecord) [][2]string {
	rows := [][2]string{
		{"Latitude", formatFloat(rec.Latitude)},
		{"Longitude", formatFloat(rec.Longitude)},
		{"RSRP (Signal Strength)", fmt.Sprintf("%d dBm", rec.RSRP)},
		{"SINR (Signal Quality)", fmt.Sprintf("%d dB", rec.SINR)},
		{"Network Type", orNA(rec.NetworkType)},
		{"Operator", orNA(rec.Operator)},
		{"Location Type", orNA(rec.Place)},
		{"City", orNA(rec.City)},
		{"Wilaya", orNA(rec.Wilaya)},
	}
	if s := rec.SpeedData; s != nil {
		rows = append(rows,
			[2]string{"Download Speed", formatFloat(s.Download) + " Mbps"},
			[2]string{"Upload Speed", formatFloat(s.Upload) + " Mbps"},
			[2]string{"Ping", formatFloat(s.Ping) + " ms"},
		)
	}
	return rows
}

func (w *writer) permalink(url string) error {
	png, err := qrcode.Encode(url, qrcode.Medium, qrSizePx)
	if err != nil {
		return fmt.Errorf("encode qr code: %w", err)
	}

	opts := fpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
	w.pdf.RegisterImageOptionsReader(qrImageName, opts, bytes.NewReader(png))

	w.pdf.Ln(4)
	y := w.pdf.GetY()
	w.pdf.ImageOptions(qrImageName, w.pdf.GetX(), y, qrSizeMm, qrSizeMm, false, opts, 0, url)
	w.pdf.SetXY(w.pdf.GetX()+qrSizeMm+4, y+qrSizeMm/2-3)
	w.pdf.SetFont("Helvetica", "", 9)
	w.pdf.CellFormat(0, 6, w.text(url), "", 1, "L", false, 0, url)
	w.pdf.SetY(y + qrSizeMm + 2)
	return nil
}

func Render(out io.Writer, rec *models.DiagnosisRecord, opts Options) error {
	if rec == nil {
		return fmt.Errorf("render report: nil record")
	}

	logger := common.GetLoggerWith(common.LoggerNameReport, zap.String("id", rec.ID))

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.SetTitle(Title, false)
	pdf.SetCreator(Platform, false)

	w := &writer{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(120, 120, 120)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(brandBlue.r, brandBlue.g, brandBlue.b)
	pdf.CellFormat(0, 12, w.text(Title), "", 1, "C", false, 0, "")
	pdf.Ln(6)
	pdf.SetTextColor(0, 0, 0)

	pdf.SetDrawColor(gridGrey.r, gridGrey.g, gridGrey.b)
	w.table(nil, coverRows(rec), rgb{}, &coverBg)
	pdf.SetDrawColor(0, 0, 0)

	w.heading("Network Quality Score")
	w.table([]string{"Category", "Score"}, scoreRows(rec), scoreGreen, nil)

	w.heading("Technical Parameters")
	w.table([]string{"Parameter", "Value"}, parameterRows(rec), brandBlue, nil)

	w.heading("Diagnosis")
	w.paragraph(fmt.Sprintf("Issue: %s. %s", rec.IssueType.Type, rec.IssueType.Explanation))
	for _, line := range rec.Summary {
		w.paragraph("- " + line)
	}
	pdf.Ln(2)
	w.paragraph(rec.ShortRecommendation)

	if opts.BaseURL != "" {
		if err := w.permalink(PermalinkURL(opts.BaseURL, rec.ID)); err != nil {
			return err
		}
	}

	pdf.Ln(8)
	w.paragraph("---------------------------------------------------------------------")
	w.paragraph(footerLine)
	w.paragraph(supportLine)

	if err := pdf.Output(out); err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	logger.Info("Rendered report", zap.Bool("permalink", opts.BaseURL != ""))
	return nil
}
