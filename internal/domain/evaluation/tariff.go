package evaluation

import (
	"strings"
	"unicode"

	"controle_pragas/internal/domain/entities"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Keyword groups are checked in order; the first group matching a label wins.
var tariffKeywords = []struct {
	category entities.ServiceCategory
	keywords []string
}{
	{entities.CategoryInsect, []string{"insetos", "desinsetizacao"}},
	{entities.CategoryRodent, []string{"roedores", "desratizacao"}},
	{entities.CategoryTermite, []string{"cupim", "descupinizacao", "desinfeccao"}},
}

// NormalizeLabel lowercases a label and strips its diacritics.
func NormalizeLabel(label string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, label)
	if err != nil {
		out = label
	}
	return strings.ToLower(out)
}

// ClassifyTariff assigns a tariff label to exactly one category, or reports false
// when no keyword matches.
func ClassifyTariff(label string) (entities.ServiceCategory, bool) {
	normalized := NormalizeLabel(label)
	for _, group := range tariffKeywords {
		for _, kw := range group.keywords {
			if strings.Contains(normalized, kw) {
				return group.category, true
			}
		}
	}
	return "", false
}

// UnitPrices picks the unit price of each category from the tariff table. When
// several tariffs match a category the last one wins; categories without a match
// are absent from the map.
func UnitPrices(tariffs []entities.Tariff) map[entities.ServiceCategory]int64 {
	prices := make(map[entities.ServiceCategory]int64, len(tariffs))
	for _, t := range tariffs {
		if c, ok := ClassifyTariff(t.Label); ok {
			prices[c] = t.UnitPriceCents()
		}
	}
	return prices
}

// ResolveBaseline produces the (area, unit price) pair of every category. A nil
// unit yields zero area and unmatched categories a zero price; resolution never
// fails.
func ResolveBaseline(unit *entities.Unit, tariffs []entities.Tariff) entities.FinancialDetails {
	area := decimal.Zero
	if unit != nil {
		area = unit.FloorArea()
	}
	prices := UnitPrices(tariffs)

	var details entities.FinancialDetails
	for _, c := range entities.Categories() {
		row := details.For(c)
		row.AreaSquareMeters = area
		row.UnitPriceCents = prices[c]
	}
	return details
}
