package evaluation

var monthNames = [12]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// MonthName returns the stored name of a zero-based month index.
func MonthName(idx int) (string, bool) {
	if idx < 0 || idx >= len(monthNames) {
		return "", false
	}
	return monthNames[idx], true
}

// MonthIndex resolves a stored month name by exact match.
func MonthIndex(name string) (int, bool) {
	for i, m := range monthNames {
		if m == name {
			return i, true
		}
	}
	return 0, false
}
