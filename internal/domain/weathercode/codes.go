// Package weathercode translates WMO weather interpretation codes into
// human-readable conditions, icon identifiers and weather categories. The
// mapping table is data, not logic, and lives in the embedded codes.yml.
package weathercode

import (
	"bytes"
	_ "embed"
	"log"
	"strconv"

	"github.com/spf13/viper"
)

// Details is the translation result for one code and day/night flag.
type Details struct {
	Condition   string `json:"condition"`
	Icon        string `json:"icon"`
	WeatherType string `json:"weatherType"`
}

// Unknown is returned for any code not present in the table. Lookup is total:
// it never fails, whatever the code.
var Unknown = Details{
	Condition:   "Unknown",
	Icon:        "mdi-weather-alert",
	WeatherType: "default",
}

type mapping struct {
	Condition string `mapstructure:"condition"`
	DayIcon   string `mapstructure:"day-icon"`
	NightIcon string `mapstructure:"night-icon"`
	Category  string `mapstructure:"category"`
}

//go:embed codes.yml
var codesYAML []byte

var codes map[int]mapping

func init() {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(bytes.NewReader(codesYAML)); err != nil {
		log.Fatalf("Fail to read weather code table: %v", err)
	}

	codes = make(map[int]mapping, len(v.AllSettings()))
	for key := range v.AllSettings() {
		code, err := strconv.Atoi(key)
		if err != nil {
			log.Fatalf("Invalid weather code key '%s' in table", key)
		}

		var m mapping
		if err := v.UnmarshalKey(key, &m); err != nil {
			log.Fatalf("Fail to parse weather code %d: %v", code, err)
		}
		codes[code] = m
	}
}

// Lookup returns the condition text, icon identifier and weather category for
// the given WMO code, picking the day or night icon variant.
func Lookup(code int, isDay bool) Details {
	m, ok := codes[code]
	if !ok {
		return Unknown
	}

	icon := m.NightIcon
	if isDay {
		icon = m.DayIcon
	}

	return Details{
		Condition:   m.Condition,
		Icon:        icon,
		WeatherType: m.Category,
	}
}

// Codes returns every code present in the table.
func Codes() []int {
	out := make([]int, 0, len(codes))
	for code := range codes {
		out = append(out, code)
	}
	return out
}
