package export

import (
	"bytes"
	"testing"
	"time"

	"controle_pragas/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestEvaluationXLSXExporter_Export(t *testing.T) {
	evals := []entities.Evaluation{{
		ID:                 "abcdef12-0000",
		Unit:               "Sede",
		Location:           "Sede",
		PrimaryServiceType: entities.ServiceTypeDesinsetizacao,
		ReferenceMonth:     "Março",
		ReferenceYear:      2026,
		EvaluatorName:      "Ana",
		EvaluatorRole:      entities.RoleTitular,
		Status:             entities.EvaluationStatusConcluido,
		ComplianceScore:    100,
		Financials: entities.EvaluationFinancials{Totals: entities.FinancialTotals{
			TotalValueCents:    2275000,
			TotalDiscountCents: 22750,
			TotalFinalCents:    2252250,
		}},
		RecordedAt: time.Date(2026, time.March, 20, 9, 30, 0, 0, time.UTC),
	}}

	data, err := NewEvaluationXLSXExporter().Export(evals)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{evaluationsSheet}, f.GetSheetList())

	rows, err := f.GetRows(evaluationsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, EvaluationHeader, rows[0])
	assert.Equal(t, "#EV-ABCDEF", rows[1][0])
	assert.Equal(t, "Sede", rows[1][1])
	assert.Equal(t, "2026", rows[1][5])
	assert.Equal(t, "100%", rows[1][12])
	assert.Equal(t, "20/03/2026 09:30", rows[1][13])

	raw, err := f.GetCellValue(evaluationsSheet, "L2", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "22522.5", raw)
}

func TestEvaluationXLSXExporter_Empty(t *testing.T) {
	data, err := NewEvaluationXLSXExporter().Export(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(evaluationsSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
