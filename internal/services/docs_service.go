package services

import (
	"bytes"
	"fmt"
	"strings"

	"becak/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders downloadable documents.
type DocsService struct {
	RequestID string
}

// ReceiptPDF renders the payment receipt as a one-page PDF.
func (s DocsService) ReceiptPDF(r Receipt) ([]byte, string, error) {
	utils.LogEvent(s.RequestID, "docs", "receipt_pdf", "receipt="+r.ReceiptNumber)

	pdf := gofpdf.New("P", "mm", "A5", "")
	pdf.SetTitle("Bukti Pembayaran", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "BUKTI PEMBAYARAN")
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, "Pembayaran QRIS - "+safe(r.PaidAtText, "-"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 11)
	lines := []string{
		fmt.Sprintf("No Struk      : %s", safe(r.ReceiptNumber, "-")),
		fmt.Sprintf("No Pesanan    : %s", safe(r.OrderNumber, "-")),
		fmt.Sprintf("No HP         : %s", safe(r.Phone, "-")),
		fmt.Sprintf("Kendaraan     : %s", safe(r.VehicleCode, "-")),
		fmt.Sprintf("Pengemudi     : %s", safe(r.DriverName, "-")),
		fmt.Sprintf("Tarif         : %s (%s)", safe(r.TariffName, "-"), safe(r.DistanceRange, "-")),
		fmt.Sprintf("Tujuan        : %s", safe(r.Destination, "-")),
		fmt.Sprintf("Waktu Pesan   : %s", safe(r.OrderedAtText, "-")),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Total: "+utils.FormatRupiah(r.Amount))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 9)
	pdf.MultiCell(0, 5, "Simpan bukti ini dan tunjukkan kepada pengemudi sebelum perjalanan dimulai.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("STRUK_%s.pdf", safeFilenamePart(r.OrderNumber))
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
