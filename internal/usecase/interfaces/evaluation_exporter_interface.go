package interfaces

import "controle_pragas/internal/domain/entities"

// IEvaluationExporter renders evaluations as a spreadsheet.
type IEvaluationExporter interface {
	Export(evaluations []entities.Evaluation) ([]byte, error)
}
