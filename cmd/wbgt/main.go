// Command wbgt computes wet bulb globe temperatures for a batch of
// meteorological records and writes a fixed-width result table to
// stdout. Input is either a whitespace-delimited station file, whose
// header line carries the site description, or a CSV file with one
// fully-specified record per row paired with a site config file.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/chrissnell/wbgt/internal/log"
	"github.com/chrissnell/wbgt/internal/tabular"
	"github.com/chrissnell/wbgt/pkg/config"
	"github.com/chrissnell/wbgt/pkg/solarpos"
	"github.com/chrissnell/wbgt/pkg/wbgt"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

func main() {
	cfgPath := flag.String("config", "", "site configuration file (.yaml, .yml, or .toml)")
	inputPath := flag.String("input", "-", "input file, or - for stdin")
	format := flag.String("format", "station", "input format: station or csv")
	solarModel := flag.String("solar", "", "solar position model: almanac or meeus (overrides config)")
	stats := flag.Bool("stats", false, "print summary statistics of the computed WBGT values to stderr")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	if err := log.Init(*debug); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	var site *config.Site
	if *cfgPath != "" {
		provider, err := config.NewProvider(*cfgPath)
		if err != nil {
			log.Fatalf("config: %v", err)
		}
		cfg, err := provider.Load()
		if err != nil {
			log.Fatalf("config: %v", err)
		}
		site = &cfg.Site
	}

	model := *solarModel
	if model == "" && site != nil {
		model = site.SolarModel
	}
	pos, err := solarpos.New(model)
	if err != nil {
		log.Fatalf("solar model: %v", err)
	}

	in := os.Stdin
	if *inputPath != "-" {
		f, err := os.Open(*inputPath)
		if err != nil {
			log.Fatalf("opening input: %v", err)
		}
		defer f.Close()
		in = f
	}

	out := tabular.NewWriter(os.Stdout)
	if err := out.WriteHeader(); err != nil {
		log.Fatalf("writing output: %v", err)
	}

	var wbgts []float64
	var failed int
	switch *format {
	case "station":
		wbgts, failed, err = runStation(in, site, pos, out)
	case "csv":
		if site == nil {
			log.Fatalf("csv input requires -config for the site coordinates")
		}
		wbgts, failed, err = runCSV(in, site, pos, out)
	default:
		log.Fatalf("unknown input format %q: use station or csv", *format)
	}
	if err != nil {
		log.Fatalf("%v", err)
	}

	if failed > 0 {
		log.Warnf("%d of %d records did not produce a WBGT", failed, failed+len(wbgts))
	}
	if *stats {
		printStats(wbgts)
	}
}

// runStation evaluates every observation of a whitespace-delimited
// station file. The site header in the file provides the coordinates
// and wind setup; cfg, when non-nil, supplies the instrument options
// the file format has no column for.
func runStation(r io.Reader, cfg *config.Site, pos solarpos.Positioner, out *tabular.Writer) ([]float64, int, error) {
	hdr, observations, err := tabular.ReadStationFile(r)
	if err != nil {
		return nil, 0, err
	}
	log.Debugf("station at %.3f, %.3f: %d observations", hdr.Latitude, hdr.Longitude, len(observations))

	var wbgts []float64
	var failed int
	for _, o := range observations {
		speed, zspeed, dt, err := selectWind(hdr, o)
		if err != nil {
			log.Warnf("day %d %04d: %v, skipping", o.Day, o.Time, err)
			failed++
			continue
		}

		in := wbgt.Input{
			Year:       hdr.Year,
			Month:      0,
			Day:        o.Day,
			Hour:       o.Hour(),
			Minute:     o.Minute(),
			GMTOffset:  hdr.GMTOffset,
			AvgPeriod:  hdr.AvgPeriod,
			Latitude:   hdr.Latitude,
			Longitude:  hdr.Longitude,
			Solar:      o.Solar,
			Pressure:   o.Pressure,
			AirTemp:    o.AirTemp,
			RelHum:     o.RelHum,
			WindSpeed:  speed,
			WindHeight: zspeed,
			DeltaT:     dt,
			Urban:      hdr.Urban,
			Positioner: pos,
		}
		if cfg != nil {
			in.MinWindSpeed = cfg.MinWindSpeed
			in.GlobeDiameter = cfg.GlobeDiameter
		}

		day := float64(o.Day) + (float64(o.Hour())+float64(o.Minute())/60.0)/24.0
		failed += evaluate(in, day, out, &wbgts)
	}
	return wbgts, failed, nil
}

// selectWind picks the anemometer reading for the configured
// measurement height, falling back to the other heights when that
// instrument reported no data. The temperature difference column is
// matched to the height in use.
func selectWind(hdr tabular.Header, o tabular.Observation) (speed, zspeed, dt float64, err error) {
	type reading struct {
		speed, height, dt float64
	}
	readings := []reading{
		{o.Wind2m, 2.0, 0.0},
		{o.Wind10m, 10.0, o.DeltaT10},
		{o.Wind30m, 30.0, o.DeltaT30},
	}

	// configured height first, then any height with a working instrument
	for _, r := range readings {
		if r.height == hdr.WindHeight && r.speed >= 0.0 {
			return r.speed, r.height, r.dt, nil
		}
	}
	for _, r := range readings {
		if r.speed >= 0.0 {
			return r.speed, r.height, r.dt, nil
		}
	}
	return 0, 0, 0, fmt.Errorf("no usable wind speed at any height")
}

// runCSV evaluates per-record CSV observations against the configured
// site.
func runCSV(r io.Reader, cfg *config.Site, pos solarpos.Positioner, out *tabular.Writer) ([]float64, int, error) {
	records, err := tabular.ReadRecords(r)
	if err != nil {
		return nil, 0, err
	}
	log.Debugf("%d CSV records", len(records))

	var wbgts []float64
	var failed int
	for _, rec := range records {
		in := wbgt.Input{
			Year:          rec.Year,
			Month:         rec.Month,
			Day:           rec.Day,
			Hour:          rec.Hour,
			Minute:        rec.Minute,
			Second:        rec.Second,
			GMTOffset:     cfg.GMTOffset,
			AvgPeriod:     cfg.AvgPeriod,
			Latitude:      cfg.Latitude,
			Longitude:     cfg.Longitude,
			Solar:         rec.Solar,
			Pressure:      rec.Pressure,
			AirTemp:       rec.AirTemp,
			RelHum:        rec.RelHum,
			WindSpeed:     rec.WindSpeed,
			WindHeight:    rec.WindHeight,
			DeltaT:        rec.DeltaT,
			Urban:         cfg.Urban,
			MinWindSpeed:  cfg.MinWindSpeed,
			GlobeDiameter: cfg.GlobeDiameter,
			Positioner:    pos,
		}

		day := float64(rec.Day) +
			(float64(rec.Hour)+float64(rec.Minute)/60.0+float64(rec.Second)/3600.0)/24.0
		failed += evaluate(in, day, out, &wbgts)
	}
	return wbgts, failed, nil
}

// evaluate runs one record through the calculator and writes the result
// row. It returns 1 when the record produced no usable WBGT.
func evaluate(in wbgt.Input, day float64, out *tabular.Writer, wbgts *[]float64) int {
	res, err := wbgt.Calculate(in)
	if err != nil {
		log.Warnf("day %.4f: %v, skipping", day, err)
		return 1
	}
	if err := out.WriteRow(day, res); err != nil {
		log.Fatalf("writing output: %v", err)
	}
	if !res.Converged {
		log.Warnf("day %.4f: solver did not converge", day)
		return 1
	}
	*wbgts = append(*wbgts, res.WBGT)
	return 0
}

// printStats writes a summary of the converged WBGT values to stderr.
func printStats(wbgts []float64) {
	if len(wbgts) == 0 {
		fmt.Fprintln(os.Stderr, "No converged records to summarize")
		return
	}

	sorted := append([]float64(nil), wbgts...)
	sort.Float64s(sorted)

	fmt.Fprintf(os.Stderr, "WBGT summary (%d records)\n", len(wbgts))
	fmt.Fprintf(os.Stderr, "  Mean:   %6.2f degC\n", stat.Mean(sorted, nil))
	fmt.Fprintf(os.Stderr, "  StdDev: %6.2f degC\n", stat.StdDev(sorted, nil))
	fmt.Fprintf(os.Stderr, "  Min:    %6.2f degC\n", floats.Min(sorted))
	fmt.Fprintf(os.Stderr, "  Median: %6.2f degC\n", stat.Quantile(0.5, stat.Empirical, sorted, nil))
	fmt.Fprintf(os.Stderr, "  Max:    %6.2f degC\n", floats.Max(sorted))
}
