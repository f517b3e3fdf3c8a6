package infra

// pdf.go — Invoice PDF generation using go-pdf/fpdf.
// Generates an A4 factura with:
//   - Workshop name header and invoice number
//   - Client / vehicle snapshot block
//   - Item table (description, quantity, unit price, line total in USD)
//   - USD totals (subtotal, IVA, total)
//   - Bolívar conversion block at the frozen exchange rate
//   - IGTF line when applicable and final total in Bs
//
// The output file is saved to storagePath/factura_{numero}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/TiendaCompu/Trieste-IA/internal/model"
)

// GenerateFacturaPDF renders a Factura to PDF. storagePath is created if
// needed. Returns the absolute path to the generated file.
func GenerateFacturaPDF(factura *model.Factura, nombreTaller, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("factura_%s.pdf", strings.ReplaceAll(factura.NumeroFactura, "/", "-"))
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, tr(nombreTaller), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW, 7, tr("FACTURA "+factura.NumeroFactura), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, factura.CreatedAt.Format("02/01/2006 15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// ── Vehicle snapshot ─────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(contentW, 5, tr("Vehículo"), "B", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW/2, 5, tr("Matrícula: "+factura.VehiculoMatricula), "", 0, "L", false, 0, "")
	if factura.VehiculoColor != nil {
		pdf.CellFormat(contentW/2, 5, tr("Color: "+*factura.VehiculoColor), "", 1, "L", false, 0, "")
	} else {
		pdf.Ln(5)
	}
	if factura.VehiculoAnio != nil {
		pdf.CellFormat(contentW/2, 5, fmt.Sprintf("Año: %d", *factura.VehiculoAnio), "", 0, "L", false, 0, "")
	}
	if factura.KmIngreso != nil {
		pdf.CellFormat(contentW/2, 5, fmt.Sprintf("Km ingreso: %d", *factura.KmIngreso), "", 1, "L", false, 0, "")
	} else {
		pdf.Ln(5)
	}
	pdf.Ln(4)

	// ── Items table ──────────────────────────────────────────────────────────
	col1 := contentW * 0.46 // description
	col2 := contentW * 0.12 // qty
	col3 := contentW * 0.20 // unit price
	col4 := contentW * 0.22 // line total

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1, 6, tr("Descripción"), "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 6, "Cant", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 6, "P. Unit USD", "B", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 6, "Total USD", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, item := range factura.Items {
		desc := item.Descripcion
		if len(desc) > 48 {
			desc = desc[:47] + "…"
		}
		pdf.CellFormat(col1, 6, tr(desc), "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 6, fmt.Sprintf("x%d", item.Cantidad), "", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 6, "$"+item.PrecioUnitarioUSD.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(col4, 6, "$"+item.TotalUSD.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(2)

	// ── USD totals ───────────────────────────────────────────────────────────
	labelW := col1 + col2 + col3
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(labelW, 6, "Subtotal:", "", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 6, "$"+factura.SubtotalUSD.StringFixed(2), "", 1, "R", false, 0, "")
	pdf.CellFormat(labelW, 6, "IVA (16%):", "", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 6, "$"+factura.IVAUSD.StringFixed(2), "", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(labelW, 7, "TOTAL USD:", "", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 7, "$"+factura.TotalUSD.StringFixed(2), "", 1, "R", false, 0, "")
	pdf.Ln(3)

	// ── Bolívar conversion ───────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(contentW, 6, fmt.Sprintf("Conversión a Bolívares (tasa %s Bs/USD)", factura.TasaCambio.StringFixed(4)), "B", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(labelW, 6, "Subtotal Bs:", "", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 6, factura.SubtotalBs.StringFixed(2), "", 1, "R", false, 0, "")
	pdf.CellFormat(labelW, 6, "IVA Bs:", "", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 6, factura.IVABs.StringFixed(2), "", 1, "R", false, 0, "")
	pdf.CellFormat(labelW, 6, "Total Bs:", "", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 6, factura.TotalBs.StringFixed(2), "", 1, "R", false, 0, "")

	if factura.AplicaIGTF {
		pdf.CellFormat(labelW, 6, "IGTF (3%) Bs:", "", 0, "R", false, 0, "")
		pdf.CellFormat(col4, 6, factura.IGTFBs.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(labelW, 8, "TOTAL A PAGAR Bs:", "", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 8, factura.TotalFinalBs.StringFixed(2), "", 1, "R", false, 0, "")

	// ── Footer ────────────────────────────────────────────────────────────────
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(contentW, 5, tr("Gracias por confiar en nuestro taller"), "", 1, "C", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}
