package render

import (
	"fmt"
	"strconv"

	"github.com/iWorld-y/place_radar/app/place_radar/pkg/model"
)

// formatNumber 输出最短表示，72 而不是 72.000000
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ratingText 缺失、null 与 0 都显示为 N/A
func ratingText(rating *float64) string {
	if rating == nil || *rating == 0 {
		return "N/A"
	}
	return formatNumber(*rating)
}

func weatherLine(day string, w *model.DayWeather) string {
	return fmt.Sprintf("%s: %s, %s°F, %s", day, w.Date, formatNumber(w.Temperature), w.Description)
}
