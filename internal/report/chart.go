package report

// Series colors for favorable, neutral, unfavorable.
var verdictColors = []string{"#10B981", "#F59E0B", "#EF4444"}

// MatchupChart stacks the verdict counts for every enemy race. Nil when
// there is nothing to plot.
func MatchupChart(title string, s Summary) *ChartConfig {
	if len(s.ByEnemy) == 0 {
		return nil
	}

	names := []string{"favorable", "neutral", "unfavorable"}
	series := make([]ChartSeries, len(names))
	for i, name := range names {
		series[i] = ChartSeries{
			Name:  name,
			Data:  make([]ChartPoint, 0, len(s.ByEnemy)),
			Color: verdictColors[i],
		}
	}
	for _, rt := range s.ByEnemy {
		label := rt.Race.String()
		series[0].Data = append(series[0].Data, ChartPoint{Label: label, Value: float64(rt.Favorable)})
		series[1].Data = append(series[1].Data, ChartPoint{Label: label, Value: float64(rt.Neutral)})
		series[2].Data = append(series[2].Data, ChartPoint{Label: label, Value: float64(rt.Unfavorable)})
	}

	return &ChartConfig{
		ChartType:  "stacked_bar",
		Title:      title,
		XAxis:      "Enemy Race",
		YAxis:      "Matchups",
		Series:     series,
		Colors:     append([]string(nil), verdictColors...),
		ShowLegend: true,
		ShowGrid:   true,
	}
}
