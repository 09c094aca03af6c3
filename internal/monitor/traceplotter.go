// Package monitor renders extracted channel matrices as time-series plots.
package monitor

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/banshee-data/motion.report/internal/mocap"
	"github.com/banshee-data/motion.report/internal/security"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// TracePlotter renders extracted matrices as PNG line plots, one line per
// column, frame index on the x-axis.
type TracePlotter struct {
	outputDir string

	// ColumnLabels names the matrix columns in the legend. When empty or
	// too short, columns fall back to "col N".
	ColumnLabels []string
}

// NewTracePlotter creates a plotter writing into outputDir, creating the
// directory if needed.
func NewTracePlotter(outputDir string) (*TracePlotter, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output dir: %w", err)
	}
	return &TracePlotter{outputDir: outputDir}, nil
}

// JointLabels are the conventional legend labels for a joint-angle matrix.
var JointLabels = []string{"flexion", "abduction", "extension"}

// SegmentLabels are the conventional legend labels for an orientation matrix.
var SegmentLabels = []string{"w", "x", "y", "z"}

// Plot renders m into <name>.png and returns the written path. The title
// and y-axis label describe the channel being drawn.
func (tp *TracePlotter) Plot(name, title, yLabel string, m mocap.Matrix) (string, error) {
	rows, cols := m.Dims()
	if rows == 0 {
		return "", fmt.Errorf("nothing to plot for %q: empty matrix", name)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Frame"
	p.Y.Label.Text = yLabel

	colors := generateColors(cols)
	for j := 0; j < cols; j++ {
		pts := make(plotter.XYs, rows)
		for i, v := range m.Col(j) {
			pts[i] = plotter.XY{X: float64(i), Y: v}
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return "", fmt.Errorf("column %d: %w", j, err)
		}
		line.Color = colors[j]
		line.Width = vg.Points(1)
		p.Add(line)
		p.Legend.Add(tp.columnLabel(j), line)
	}

	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10

	// name may come from user-supplied labels; keep the output inside
	// the configured directory.
	outFile := filepath.Join(tp.outputDir, name+".png")
	if err := security.ValidatePathWithinDirectory(outFile, tp.outputDir); err != nil {
		return "", err
	}
	if err := p.Save(14*vg.Inch, 6*vg.Inch, outFile); err != nil {
		return "", fmt.Errorf("save plot: %w", err)
	}
	return outFile, nil
}

func (tp *TracePlotter) columnLabel(j int) string {
	if j < len(tp.ColumnLabels) {
		return tp.ColumnLabels[j]
	}
	return fmt.Sprintf("col %d", j)
}

// generateColors produces n visually distinct colors for plot lines.
func generateColors(n int) []color.Color {
	if n <= 0 {
		return nil
	}

	colors := make([]color.Color, n)
	for i := 0; i < n; i++ {
		hue := float64(i) / float64(n)
		r, g, b := hslToRGB(hue, 0.7, 0.5)
		colors[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return colors
}

// hslToRGB converts HSL to RGB (0-255 range)
func hslToRGB(h, s, l float64) (r, g, b uint8) {
	var rf, gf, bf float64

	if s == 0 {
		rf, gf, bf = l, l, l
	} else {
		var q float64
		if l < 0.5 {
			q = l * (1 + s)
		} else {
			q = l + s - l*s
		}
		p := 2*l - q
		rf = hueToRGB(p, q, h+1.0/3.0)
		gf = hueToRGB(p, q, h)
		bf = hueToRGB(p, q, h-1.0/3.0)
	}

	return uint8(rf * 255), uint8(gf * 255), uint8(bf * 255)
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t += 1
	}
	if t > 1 {
		t -= 1
	}
	if t < 1.0/6.0 {
		return p + (q-p)*6*t
	}
	if t < 1.0/2.0 {
		return q
	}
	if t < 2.0/3.0 {
		return p + (q-p)*(2.0/3.0-t)*6
	}
	return p
}
