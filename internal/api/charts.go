package api

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/banshee-data/motion.report/internal/db"
)

// jointChannelNames label the columns of a joint series in chart legends.
var jointChannelNames = []string{"flexion", "abduction", "extension"}

// segmentChannelNames label the columns of a segment series.
var segmentChannelNames = []string{"w", "x", "y", "z"}

// chartSeries renders a stored channel series as a go-echarts line chart
// (HTML). Query params:
//   - series_id (required)
func (s *Server) chartSeries(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeJSONError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	seriesID := r.URL.Query().Get("series_id")
	if seriesID == "" {
		s.writeJSONError(w, http.StatusBadRequest, "Missing 'series_id' parameter")
		return
	}

	series, err := s.db.GetSeries(seriesID)
	if err != nil {
		s.writeJSONError(w, http.StatusNotFound, err.Error())
		return
	}

	channelNames := segmentChannelNames
	yAxisName := "Component"
	if series.Kind == db.KindJoint {
		channelNames = jointChannelNames
		yAxisName = "Angle (deg)"
	}

	frameLabels := make([]string, len(series.Values))
	for i := range series.Values {
		frameLabels[i] = strconv.Itoa(i)
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Channel Series", Width: "1200px", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("%s %s", series.Kind, series.Label),
			Subtitle: fmt.Sprintf("frames=%d width=%d start_index=%d", series.FrameCount, series.Width, series.StartIndex),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Frame"}),
		charts.WithYAxisOpts(opts.YAxis{Name: yAxisName}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	line.SetXAxis(frameLabels)
	for j := 0; j < series.Width; j++ {
		data := make([]opts.LineData, len(series.Values))
		for i, row := range series.Values {
			if j < len(row) {
				data[i] = opts.LineData{Value: row[j]}
			}
		}
		name := fmt.Sprintf("col %d", j)
		if j < len(channelNames) {
			name = channelNames[j]
		}
		line.AddSeries(name, data)
	}

	var buf bytes.Buffer
	if err := line.Render(&buf); err != nil {
		s.writeJSONError(w, http.StatusInternalServerError, fmt.Sprintf("failed to render chart: %v", err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}
