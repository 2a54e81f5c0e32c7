// Command solar-position prints the apparent solar position for a site
// and instant, for checking the solar geometry feeding the WBGT
// calculation.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/chrissnell/wbgt/pkg/solarpos"
)

func main() {
	model := flag.String("model", "almanac", "position model: almanac or meeus")
	year := flag.Int("year", 0, "four-digit year (1950-2049)")
	month := flag.Int("month", 0, "month 1-12, or 0 when -day holds a day of year")
	day := flag.Float64("day", 0, "day of month (or year) with UT fraction, e.g. 21.5 for noon UT on the 21st")
	lat := flag.Float64("lat", 0, "latitude in degrees, north positive")
	lon := flag.Float64("lon", 0, "longitude in degrees, east positive")
	flag.Parse()

	pos, err := solarpos.New(*model)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	p, err := pos.Position(solarpos.Request{
		Year:      *year,
		Month:     *month,
		Day:       *day,
		Latitude:  *lat,
		Longitude: *lon,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Solar position (%s model) for %d-%02d-%06.3f at %.4f, %.4f\n",
		*model, *year, *month, *day, *lat, *lon)
	fmt.Printf("  Right Ascension: %8.4f h\n", p.RightAscension)
	fmt.Printf("  Declination:     %8.4f°\n", p.Declination)
	fmt.Printf("  Altitude:        %8.4f°\n", p.Altitude)
	fmt.Printf("  Refraction:      %8.4f°\n", p.Refraction)
	fmt.Printf("  Azimuth:         %8.4f°\n", p.Azimuth)
	fmt.Printf("  Distance:        %8.5f AU\n", p.Distance)
}
