// Package tabular reads meteorological observation files for batch
// WBGT runs and writes fixed-width result tables. Two input layouts
// are supported: the classic whitespace-delimited station file with a
// site header line, and CSV with one fully-specified record per row.
package tabular

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
)

// Header is the site line of a whitespace-delimited station file:
// latitude, longitude, year, GMT offset, averaging period, wind
// measurement height, and the urban/rural flag.
type Header struct {
	Latitude   float64
	Longitude  float64
	Year       int
	GMTOffset  int
	AvgPeriod  int
	WindHeight float64
	Urban      bool
}

// Observation is one data row of a station file. Wind speed is
// reported at three heights; a negative value marks a height with no
// working anemometer. Time is local standard time encoded HHMM.
type Observation struct {
	Day      int // day of year
	Time     int // HHMM
	Wind30m  float64
	Wind10m  float64
	Wind2m   float64
	Solar    float64 // W/m²
	Pressure float64 // mb
	RelHum   float64 // %
	AirTemp  float64 // degC
	DeltaT30 float64 // T(30m) - T(2m), degC
	DeltaT10 float64 // T(10m) - T(2m), degC
}

// Hour returns the hour portion of the HHMM time.
func (o Observation) Hour() int { return o.Time / 100 }

// Minute returns the minute portion of the HHMM time.
func (o Observation) Minute() int { return o.Time % 100 }

// ReadStationFile parses a whitespace-delimited station file: a
// descriptive line, the site header, a column label line, then one
// observation per line.
func ReadStationFile(r io.Reader) (Header, []Observation, error) {
	scanner := bufio.NewScanner(r)

	// descriptive header line
	if !scanner.Scan() {
		return Header{}, nil, fmt.Errorf("station file is empty")
	}

	if !scanner.Scan() {
		return Header{}, nil, fmt.Errorf("station file missing site header line")
	}
	hdr, err := parseHeader(scanner.Text())
	if err != nil {
		return Header{}, nil, err
	}

	// column label line
	if !scanner.Scan() {
		return hdr, nil, nil
	}

	var obs []Observation
	line := 3
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		o, err := parseObservation(text)
		if err != nil {
			return hdr, nil, fmt.Errorf("line %d: %w", line, err)
		}
		obs = append(obs, o)
	}
	if err := scanner.Err(); err != nil {
		return hdr, nil, fmt.Errorf("reading station file: %w", err)
	}
	return hdr, obs, nil
}

func parseHeader(line string) (Header, error) {
	fields := strings.Fields(line)
	if len(fields) != 7 {
		return Header{}, fmt.Errorf("site header has %d fields, want 7 (lat lon year gmt avg zspeed urban)", len(fields))
	}

	vals := make([]float64, 7)
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return Header{}, fmt.Errorf("site header field %d: %w", i+1, err)
		}
		vals[i] = v
	}

	return Header{
		Latitude:   vals[0],
		Longitude:  vals[1],
		Year:       int(vals[2]),
		GMTOffset:  int(vals[3]),
		AvgPeriod:  int(vals[4]),
		WindHeight: vals[5],
		Urban:      vals[6] != 0,
	}, nil
}

func parseObservation(line string) (Observation, error) {
	fields := strings.Fields(line)
	if len(fields) != 11 {
		return Observation{}, fmt.Errorf("observation has %d fields, want 11", len(fields))
	}

	vals := make([]float64, 11)
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return Observation{}, fmt.Errorf("field %d: %w", i+1, err)
		}
		vals[i] = v
	}

	return Observation{
		Day:      int(vals[0]),
		Time:     int(vals[1]),
		Wind30m:  vals[2],
		Wind10m:  vals[3],
		Wind2m:   vals[4],
		Solar:    vals[5],
		Pressure: vals[6],
		RelHum:   vals[7],
		AirTemp:  vals[8],
		DeltaT30: vals[9],
		DeltaT10: vals[10],
	}, nil
}

// Record is one CSV row carrying a complete observation, including the
// per-record date and site fields that the station file factors into
// its header.
type Record struct {
	Year       int     `csv:"year"`
	Month      int     `csv:"month"`
	Day        int     `csv:"day"`
	Hour       int     `csv:"hour"`
	Minute     int     `csv:"minute"`
	Second     int     `csv:"second"`
	Solar      float64 `csv:"solar"`
	Pressure   float64 `csv:"pressure"`
	AirTemp    float64 `csv:"tair"`
	RelHum     float64 `csv:"relhum"`
	WindSpeed  float64 `csv:"speed"`
	WindHeight float64 `csv:"zspeed"`
	DeltaT     float64 `csv:"dt"`
}

// ReadRecords parses CSV observations with a header row naming the
// columns of Record.
func ReadRecords(r io.Reader) ([]Record, error) {
	var recs []Record
	if err := gocsv.Unmarshal(r, &recs); err != nil {
		return nil, fmt.Errorf("parsing CSV records: %w", err)
	}
	return recs, nil
}
