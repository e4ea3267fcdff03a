// Command uat978dec is the UAT978 receiver's CLI binary: it reads a
// raw I/Q byte stream from stdin (or a file), decodes UAT frames, and
// writes raw-line or decoded-block output to stdout.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"

	"github.com/kb9hzx/uat978/internal/archive"
	"github.com/kb9hzx/uat978/internal/config"
	"github.com/kb9hzx/uat978/internal/metrics"
	"github.com/kb9hzx/uat978/internal/render"
	"github.com/kb9hzx/uat978/internal/tracker"
	"github.com/kb9hzx/uat978/uat"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

func run(args []string, stdin io.Reader, stdout io.Writer) int {
	flags := pflag.NewFlagSet("uat978dec", pflag.ContinueOnError)

	input := flags.StringP("input", "i", "-", `Input file of raw I/Q bytes, or "-" for stdin.`)
	raw := flags.Bool("raw", false, "Emit only the raw frame line; skip decoded-block rendering.")
	configPath := flags.StringP("config", "c", "", "YAML config file path.")
	stationFlag := flags.String("station", "", "Receiver position \"lat,lon[,elev_ft]\" for range/bearing/UTM enrichment.")
	archivePath := flags.String("archive", "", "Optional sqlite frame archive path.")
	metricsAddr := flags.String("metrics-addr", "", "Optional host:port to expose Prometheus /metrics.")
	statsEvery := flags.Duration("stats", 0, "Print a periodic distinct-aircraft summary every this long. 0 disables.")
	timeFormat := flags.String("time-format", "", "strftime layout for wall-clock timestamps alongside sample-index time.")
	startTimeFlag := flags.String("start-time", "", "RFC3339 stream start time, used with -time-format.")
	logLevel := flags.String("log-level", "info", "Logging verbosity: debug, info, warn, error.")
	logJSON := flags.Bool("log-json", false, "Emit logs as JSON instead of the default console format.")

	if err := flags.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		fmt.Fprintln(stdout, err)
		return 2
	}

	logger := newLogger(*logLevel, *logJSON)

	cfg := &config.Config{}
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			logger.Error("loading config", "err", err)
			return 1
		}
		cfg = loaded
		if !flags.Changed("log-level") && cfg.LogLevel != "" {
			*logLevel = cfg.LogLevel
		}
		if !flags.Changed("log-json") {
			*logJSON = cfg.LogJSON
		}
		logger = newLogger(*logLevel, *logJSON)
	}

	opts := render.Options{}
	opts.TimeFormat = *timeFormat
	if opts.TimeFormat == "" {
		opts.TimeFormat = cfg.TimeFormat
	}

	if *stationFlag != "" {
		st, err := config.ParseStation(*stationFlag)
		if err != nil {
			logger.Error("parsing -station", "err", err)
			return 2
		}
		opts.Station = &st
	} else if cfg.Station != nil {
		opts.Station = cfg.Station
	}

	startTimeStr := *startTimeFlag
	if startTimeStr == "" {
		startTimeStr = cfg.StartTime
	}
	if startTimeStr != "" {
		t, err := time.Parse(time.RFC3339, startTimeStr)
		if err != nil {
			logger.Error("parsing -start-time", "err", err)
			return 2
		}
		opts.StartTime = t
	} else {
		opts.StartTime = time.Now()
	}

	if *statsEvery == 0 && cfg.StatsEvery != "" {
		d, err := time.ParseDuration(cfg.StatsEvery)
		if err != nil {
			logger.Error("parsing stats_every", "err", err)
			return 1
		}
		*statsEvery = d
	}

	var arc *archive.Archive
	archivePathResolved := *archivePath
	if archivePathResolved == "" {
		archivePathResolved = cfg.ArchivePath
	}
	if archivePathResolved != "" {
		a, err := archive.Open(archivePathResolved)
		if err != nil {
			logger.Error("opening archive", "err", err)
			return 1
		}
		defer a.Close()
		arc = a
	}

	m := metrics.New()
	metricsAddrResolved := *metricsAddr
	if metricsAddrResolved == "" {
		metricsAddrResolved = cfg.MetricsAddr
	}
	if metricsAddrResolved != "" {
		go func() {
			if err := m.ListenAndServe(metricsAddrResolved); err != nil {
				logger.Error("metrics listener", "err", err)
			}
		}()
	}

	trk := tracker.New()

	var reader io.Reader = stdin
	if *input != "-" {
		f, err := os.Open(*input)
		if err != nil {
			logger.Error("opening input", "err", err)
			return 1
		}
		defer f.Close()
		reader = f
	}

	sink := uat.SinkFunc(func(f uat.RawFrame) {
		m.RSCorrections.Observe(float64(f.RSErrors))
		kind := "adsb-basic"
		if f.Direction == uat.DirectionUplink {
			kind = "uplink"
		} else if len(f.Payload) > 18 {
			kind = "adsb-long"
		}
		m.FramesTotal.WithLabelValues(kind).Inc()

		if f.Direction == uat.DirectionDownlink {
			addr := uint32(f.Payload[1])<<16 | uint32(f.Payload[2])<<8 | uint32(f.Payload[3])
			trk.Seen(addr)
		}

		if arc != nil {
			rec := archive.Record{
				Timestamp: opts.StartTime.Add(time.Duration(float64(f.SampleIndex) / 2083334.0 * float64(time.Second))),
				Direction: string(f.Direction),
				Hex:       fmt.Sprintf("%X", f.Payload),
				RSErrors:  f.RSErrors,
			}
			if err := arc.Insert(rec); err != nil {
				logger.Warn("archive insert failed", "err", err)
			}
		}

		if *raw {
			if f.RSErrors >= 1 {
				fmt.Fprintf(stdout, "%c%x;rs=%d;\n", f.Direction, f.Payload, f.RSErrors)
			} else {
				fmt.Fprintf(stdout, "%c%x;\n", f.Direction, f.Payload)
			}
			return
		}

		msg := uat.DecodeMessage(f.Payload)
		fmt.Fprint(stdout, render.Frame(f, msg, opts))
	})

	if *statsEvery > 0 {
		ticker := time.NewTicker(*statsEvery)
		defer ticker.Stop()
		done := make(chan struct{})
		defer close(done)
		go func() {
			for {
				select {
				case <-ticker.C:
					logger.Info("stats", "distinct_aircraft", trk.DistinctCount(), "frames", humanize.Comma(int64(trk.TotalFrames())))
				case <-done:
					return
				}
			}
		}()
	}

	p := uat.NewPipeline(sink)
	if err := p.Run(reader); err != nil && err != io.EOF {
		logger.Error("pipeline error", "err", err)
		return 1
	}

	return 0
}

func newLogger(level string, jsonFmt bool) *log.Logger {
	opts := log.Options{ReportTimestamp: true}
	if jsonFmt {
		opts.Formatter = log.JSONFormatter
	}
	logger := log.NewWithOptions(os.Stderr, opts)

	switch level {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "warn":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}

	return logger
}
