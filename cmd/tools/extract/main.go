// Package main provides a command line extractor for frame dumps.
// It reads an already-parsed capture (JSON frame dump), extracts one joint
// or segment channel, and writes the resulting matrix as CSV, optionally
// rendering a PNG trace plot.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/banshee-data/motion.report/internal/mocap"
	"github.com/banshee-data/motion.report/internal/monitor"
	"github.com/banshee-data/motion.report/internal/units"
)

var (
	inFile     = flag.String("in", "", "Frame dump JSON file (required)")
	jointLabel = flag.String("joint", "", "Joint label to extract (e.g. jRightKnee)")
	segment    = flag.String("segment", "", "Segment label to extract (e.g. Pelvis)")
	index      = flag.Int("index", -1, "Flat-array start index (alternative to -joint/-segment)")
	kind       = flag.String("kind", "joint", "Channel kind when using -index: joint or segment")
	frameCount = flag.Int("frames", 0, "Number of frames to extract (default: all)")
	outFile    = flag.String("out", "", "CSV output file (default: stdout)")
	plotDir    = flag.String("plot", "", "Directory to write a PNG trace plot (optional)")
	unitsFlag  = flag.String("units", units.DEG, "Angle units for joint output: deg or rad")
)

func run() error {
	if *inFile == "" {
		return fmt.Errorf("-in is required")
	}
	if !units.IsValid(*unitsFlag) {
		return fmt.Errorf("invalid units %q (valid: %s)", *unitsFlag, units.GetValidUnitsString())
	}

	dump, err := mocap.ReadDump(*inFile)
	if err != nil {
		return err
	}

	frames := len(dump.Frames)
	if *frameCount > 0 {
		frames = *frameCount
	}

	var (
		matrix  mocap.Matrix
		isJoint bool
		name    string
	)
	switch {
	case *jointLabel != "":
		matrix, err = mocap.JointAnglesByName(dump.Frames, frames, *jointLabel)
		isJoint = true
		name = *jointLabel
	case *segment != "":
		matrix, err = mocap.SegmentOrientationsByName(dump.Frames, frames, *segment)
		name = *segment
	case *index >= 0:
		switch *kind {
		case "joint":
			matrix, err = mocap.JointAngles(dump.Frames, frames, *index)
			isJoint = true
		case "segment":
			matrix, err = mocap.SegmentOrientations(dump.Frames, frames, *index)
		default:
			return fmt.Errorf("invalid -kind %q (valid: joint, segment)", *kind)
		}
		name = fmt.Sprintf("%s_%d", *kind, *index)
	default:
		return fmt.Errorf("one of -joint, -segment or -index is required")
	}
	if err != nil {
		return err
	}

	values := [][]float64(matrix)
	if isJoint {
		values = units.ConvertMatrix(values, *unitsFlag)
	}

	out := os.Stdout
	if *outFile != "" {
		f, err := os.Create(*outFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	writer := csv.NewWriter(out)
	for _, row := range values {
		record := make([]string, len(row))
		for j, v := range row {
			record[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}

	if *plotDir != "" {
		tp, err := monitor.NewTracePlotter(*plotDir)
		if err != nil {
			return err
		}
		yLabel := "Component"
		if isJoint {
			tp.ColumnLabels = monitor.JointLabels
			yLabel = fmt.Sprintf("Angle (%s)", *unitsFlag)
		} else {
			tp.ColumnLabels = monitor.SegmentLabels
		}
		path, err := tp.Plot(name, name, yLabel, mocap.Matrix(values))
		if err != nil {
			return err
		}
		log.Printf("wrote plot %s", path)
	}

	// Per-channel summary on stderr so the CSV stays clean on stdout. It is
	// computed from the converted values so it shares the CSV's units.
	summary, err := mocap.Summarize(values)
	if err == nil {
		for _, s := range summary {
			log.Printf("col %d: min=%.3f max=%.3f mean=%.3f std=%.3f range=%.3f",
				s.Column, s.Min, s.Max, s.Mean, s.StdDev, s.Range)
		}
	}

	return nil
}

func main() {
	flag.Parse()
	if err := run(); err != nil {
		log.Fatalf("extract: %v", err)
	}
}
