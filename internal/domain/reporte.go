package domain

// GraficaItem is one bar of the report chart: a state label and how many
// report rows carry it.
type GraficaItem struct {
	Name     string `json:"name"`
	Cantidad int    `json:"Cantidad"`
}

// Agrupar groups report rows by state label and counts occurrences. The
// result preserves first-seen order. It is a pure derivation, recomputed
// from the rows on every render.
func Agrupar(rows []ReporteRow) []GraficaItem {
	items := make([]GraficaItem, 0, len(rows))
	for _, row := range rows {
		found := false
		for i := range items {
			if items[i].Name == row.Estado {
				items[i].Cantidad++
				found = true
				break
			}
		}
		if !found {
			items = append(items, GraficaItem{Name: row.Estado, Cantidad: 1})
		}
	}
	return items
}
