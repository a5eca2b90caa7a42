package utils

import "time"

// EndOfDay estende uma data ISO (YYYY-MM-DD) até o último segundo do dia,
// para filtros inclusivos sobre colunas de data armazenadas como string.
func EndOfDay(dateStr string) string {
	if dateStr == "" {
		return ""
	}
	return dateStr + "T23:59:59"
}

// MonthsSpanned conta os meses de calendário tocados pelo intervalo
// [start, end], inclusivo. Meses parciais contam inteiros: um filtro de
// 25/01 a 03/02 cobre 2 meses.
func MonthsSpanned(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}
	return (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month()) + 1
}

// FirstDayOfMonth retorna o dia 1 do mês de t.
func FirstDayOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// PreviousMonthStart retorna o dia 1 do mês anterior ao de t.
func PreviousMonthStart(t time.Time) time.Time {
	return FirstDayOfMonth(FirstDayOfMonth(t).AddDate(0, 0, -1))
}
