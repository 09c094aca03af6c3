package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	_ "modernc.org/sqlite"

	"github.com/banshee-data/motion.report/internal/api"
	"github.com/banshee-data/motion.report/internal/config"
	"github.com/banshee-data/motion.report/internal/db"
	"github.com/banshee-data/motion.report/internal/mocap"
	"github.com/banshee-data/motion.report/internal/version"
)

var (
	devMode    = flag.Bool("dev", false, "Run in dev mode (loads the fixture capture into a session at startup)")
	listen     = flag.String("listen", "", "Listen address (overrides config)")
	dbFile     = flag.String("db", "", "Path to sqlite database (overrides config)")
	unitsFlag  = flag.String("units", "", "Default angle units, deg or rad (overrides config)")
	configFile = flag.String("config", "", "Path to JSON service config")
)

// loadDevFixture reads the configured frame dump and persists every joint
// and segment channel so dev mode starts with a browsable session.
func loadDevFixture(database *db.DB, path string, defaultRate float64) error {
	dump, err := mocap.ReadDump(path)
	if err != nil {
		return err
	}

	sampleRate := dump.SampleRateHz
	if sampleRate == 0 {
		sampleRate = defaultRate
	}
	label := dump.Label
	if label == "" {
		label = "dev-fixture"
	}

	session := &db.Session{
		Label:        label,
		FrameCount:   len(dump.Frames),
		SampleRateHz: sampleRate,
	}
	if err := database.RecordSession(session); err != nil {
		return err
	}

	for _, joint := range mocap.Joints {
		offset, err := mocap.JointOffset(joint)
		if err != nil {
			return err
		}
		matrix, err := mocap.JointAngles(dump.Frames, len(dump.Frames), offset)
		if err != nil {
			// Short fixtures may not carry the full joint layout; skip
			// channels the dump doesn't cover.
			log.Printf("fixture: skipping joint %s: %v", joint, err)
			continue
		}
		series := &db.Series{
			SessionID:  session.SessionID,
			Kind:       db.KindJoint,
			Label:      joint,
			StartIndex: offset,
			Width:      mocap.JointWidth,
			Values:     matrix,
		}
		if err := database.RecordSeries(series); err != nil {
			return err
		}
	}

	for _, segment := range mocap.Segments {
		offset, err := mocap.SegmentOffset(segment)
		if err != nil {
			return err
		}
		matrix, err := mocap.SegmentOrientations(dump.Frames, len(dump.Frames), offset)
		if err != nil {
			log.Printf("fixture: skipping segment %s: %v", segment, err)
			continue
		}
		series := &db.Series{
			SessionID:  session.SessionID,
			Kind:       db.KindSegment,
			Label:      segment,
			StartIndex: offset,
			Width:      mocap.SegmentWidth,
			Values:     matrix,
		}
		if err := database.RecordSeries(series); err != nil {
			return err
		}
	}

	log.Printf("loaded dev fixture %q as session %s (%d frames)", path, session.SessionID, len(dump.Frames))
	return nil
}

// Main
func main() {
	flag.Parse()

	log.Printf("motion.report %s", version.String())

	cfg := config.Defaults()
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
	}
	if *listen != "" {
		cfg.Listen = listen
	}
	if *dbFile != "" {
		cfg.DBPath = dbFile
	}
	if *unitsFlag != "" {
		cfg.Units = unitsFlag
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	database, err := db.NewDB(*cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	if err := database.MigrateUp(*cfg.MigrationsDir); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if *devMode {
		if err := loadDevFixture(database, *cfg.DevFixture, *cfg.SampleRateHz); err != nil {
			log.Fatalf("failed to load dev fixture: %v", err)
		}
	}

	var wg sync.WaitGroup
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// HTTP server goroutine
	wg.Add(1)
	go func() {
		defer wg.Done()

		mux := api.NewServer(database, *cfg.Units).ServeMux()

		server := &http.Server{
			Addr:    *cfg.Listen,
			Handler: api.LoggingMiddleware(mux),
		}

		// Start server in a goroutine so it doesn't block
		go func() {
			log.Printf("listening on %s", *cfg.Listen)
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Fatalf("failed to start server: %v", err)
			}
		}()

		// Wait for context cancellation to shut down server
		<-ctx.Done()
		log.Println("shutting down HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("HTTP server shutdown error: %v", err)
		}

		log.Printf("HTTP server routine stopped")
	}()

	wg.Wait()
	log.Printf("Graceful shutdown complete")
}
