package export

import (
	"bytes"
	"fmt"

	"controle_pragas/internal/domain/entities"
	"controle_pragas/internal/domain/money"
	"controle_pragas/internal/usecase/interfaces"

	"github.com/xuri/excelize/v2"
)

const evaluationsSheet = "Avaliações"

// EvaluationHeader is the first row of the exported sheet.
var EvaluationHeader = []string{
	"ID",
	"Unidade",
	"Local",
	"Serviço Principal",
	"Mês",
	"Ano",
	"Avaliador",
	"Função",
	"Status",
	"Valor Total (R$)",
	"Desconto Total (R$)",
	"Valor Final (R$)",
	"Conformidade",
	"Registrada em",
}

var columnWidths = []float64{12, 24, 24, 22, 12, 8, 24, 12, 18, 18, 18, 18, 14, 20}

// EvaluationXLSXExporter renders evaluation lists as a single-sheet workbook.
type EvaluationXLSXExporter struct{}

var _ interfaces.IEvaluationExporter = (*EvaluationXLSXExporter)(nil)

func NewEvaluationXLSXExporter() *EvaluationXLSXExporter {
	return &EvaluationXLSXExporter{}
}

func (x *EvaluationXLSXExporter) Export(evals []entities.Evaluation) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(evaluationsSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to delete default sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	moneyFormat := "#,##0.00"
	moneyStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &moneyFormat})
	if err != nil {
		return nil, fmt.Errorf("failed to create money style: %w", err)
	}

	if err := f.SetSheetRow(evaluationsSheet, "A1", &EvaluationHeader); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	lastCol, _ := excelize.ColumnNumberToName(len(EvaluationHeader))
	if err := f.SetCellStyle(evaluationsSheet, "A1", lastCol+"1", headerStyle); err != nil {
		return nil, fmt.Errorf("failed to set header style: %w", err)
	}
	for i, w := range columnWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(evaluationsSheet, col, col, w); err != nil {
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}

	for i, e := range evals {
		row := i + 2
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, fmt.Errorf("failed to convert coordinates: %w", err)
		}
		values := evaluationRow(e)
		if err := f.SetSheetRow(evaluationsSheet, cell, &values); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", row, err)
		}
		first, _ := excelize.CoordinatesToCellName(10, row)
		last, _ := excelize.CoordinatesToCellName(12, row)
		if err := f.SetCellStyle(evaluationsSheet, first, last, moneyStyle); err != nil {
			return nil, fmt.Errorf("failed to set money style: %w", err)
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func evaluationRow(e entities.Evaluation) []any {
	totals := e.Financials.Totals
	recorded := ""
	if !e.RecordedAt.IsZero() {
		recorded = e.RecordedAt.Format("02/01/2006 15:04")
	}
	return []any{
		e.DisplayID(),
		e.Unit,
		e.Location,
		string(e.PrimaryServiceType),
		e.ReferenceMonth,
		e.ReferenceYear,
		e.EvaluatorName,
		string(e.EvaluatorRole),
		string(e.Status),
		money.CentsToDecimal(totals.TotalValueCents).InexactFloat64(),
		money.CentsToDecimal(totals.TotalDiscountCents).InexactFloat64(),
		money.CentsToDecimal(totals.TotalFinalCents).InexactFloat64(),
		fmt.Sprintf("%d%%", e.ComplianceScore),
		recorded,
	}
}
