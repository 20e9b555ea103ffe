package api

import (
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/atarik0/workout-tracker/internal/domain"
)

// statsPage renders duration and calories per session as a line chart,
// oldest session first.
func (h *Handler) statsPage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	workouts, err := h.service.ListWorkouts(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	line := buildStatsChart(workouts)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := line.Render(w); err != nil {
		writeError(w, http.StatusInternalServerError, "Server Error")
	}
}

func buildStatsChart(workouts []domain.Workout) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: "macarons"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Workout History",
			Subtitle: "Duration and calories per session",
		}),
	)

	// List order is newest first; the chart reads left to right in time.
	dates := make([]string, 0, len(workouts))
	durations := make([]opts.LineData, 0, len(workouts))
	calories := make([]opts.LineData, 0, len(workouts))
	for i := len(workouts) - 1; i >= 0; i-- {
		w := workouts[i]
		dates = append(dates, w.Date.Format("2006-01-02"))
		durations = append(durations, opts.LineData{Value: w.Duration})
		burned := 0
		if w.Calories != nil {
			burned = *w.Calories
		}
		calories = append(calories, opts.LineData{Value: burned})
	}

	line.SetXAxis(dates)
	line.AddSeries("Duration (min)", durations)
	line.AddSeries("Calories (kcal)", calories)
	line.SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))
	return line
}
