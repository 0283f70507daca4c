package evaluation

import (
	"testing"

	"controle_pragas/internal/domain/entities"

	"github.com/stretchr/testify/assert"
)

func TestAggregate(t *testing.T) {
	details := baseline("100", 1000, 2000, 3000)
	details.Insect.DiscountCents = 500
	details.Rodent.DiscountCents = 1000
	details.Termite.DiscountCents = 300000

	t.Run("only selected categories count", func(t *testing.T) {
		s := Aggregate(entities.ServiceSelection{Insect: true, Rodent: true}, details)
		assert.Len(t, s.PerCategory, 2)
		assert.Equal(t, entities.CategoryInsect, s.PerCategory[0].Category)
		assert.Equal(t, entities.CategoryRodent, s.PerCategory[1].Category)
		assert.Equal(t, int64(300000), s.TotalValueCents)
		assert.Equal(t, int64(1500), s.TotalDiscountCents)
		assert.Equal(t, int64(298500), s.TotalFinalCents)
		assert.Empty(t, s.NegativeFinals())
	})

	t.Run("nothing selected", func(t *testing.T) {
		s := Aggregate(entities.ServiceSelection{}, details)
		assert.Empty(t, s.PerCategory)
		assert.Equal(t, entities.FinancialTotals{}, s.Totals())
	})

	t.Run("manual override above value is tolerated", func(t *testing.T) {
		over := details
		over.Insect.DiscountCents = 150000
		s := Aggregate(entities.ServiceSelection{Insect: true}, over)
		assert.Equal(t, int64(-50000), s.TotalFinalCents)
		assert.Equal(t, []entities.ServiceCategory{entities.CategoryInsect}, s.NegativeFinals())
	})
}
