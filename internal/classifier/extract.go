package classifier

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

const defaultCity = "Lahore"

// GPS is optional structured location data supplied alongside a report.
type GPS struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address"`
}

// locationPatterns are tried in order against the lowercased report; first
// match wins.
var locationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`at (.+?)(?:\.|$|,)`),
	regexp.MustCompile(`in (.+?)(?:\.|$|,)`),
	regexp.MustCompile(`on (.+?)(?:\.|$|,)`),
	regexp.MustCompile(`near (.+?)(?:\.|$|,)`),
	regexp.MustCompile(`address is (.+?)(?:\.|$|,)`),
	regexp.MustCompile(`location (.+?)(?:\.|$|,)`),
}

var (
	agePattern   = regexp.MustCompile(`(?:i am|i'm|age|years old)\s*(\d+)`)
	namePattern  = regexp.MustCompile(`(?:my name is|i am|i'm|name is)\s*([a-zA-Z\s]+)`)
	phonePattern = regexp.MustCompile(`(?:phone|number|call me|contact)\s*(?:is|at)?\s*([+\d\s\-()]+)`)

	nonWordPattern  = regexp.MustCompile(`[^\w\s]`)
	nonPhonePattern = regexp.MustCompile(`[^\d+]`)
)

// gazetteer of known cities, checked before the prefix patterns.
var knownCities = []string{
	"lahore", "karachi", "islamabad", "rawalpindi", "faisalabad",
	"multan", "peshawar", "quetta", "sialkot", "gujranwala",
}

// cityCoordinates is ordered so that distance ties during nearest-city lookup
// always resolve to the earlier entry.
var cityCoordinates = []struct {
	name     string
	lat, lng float64
}{
	{"Lahore", 31.5204, 74.3587},
	{"Karachi", 24.8607, 67.0011},
	{"Islamabad", 33.6844, 73.0479},
	{"Rawalpindi", 33.5651, 73.0169},
	{"Faisalabad", 31.4504, 73.1350},
	{"Multan", 30.1575, 71.5249},
	{"Peshawar", 34.0151, 71.5249},
	{"Quetta", 30.1798, 66.9750},
	{"Sialkot", 32.4945, 74.5229},
	{"Gujranwala", 32.1877, 74.1945},
}

// ExtractLocation resolves a location for the report, preferring structured GPS
// data over text extraction. Nothing matching falls back to the default city.
func ExtractLocation(report string, gps *GPS) string {
	if gps != nil {
		if gps.Address != "" {
			return gps.Address
		}
		if gps.Lat != 0 && gps.Lng != 0 {
			city := nearestCity(gps.Lat, gps.Lng)
			return fmt.Sprintf("%s (GPS: %.4f, %.4f)", city, gps.Lat, gps.Lng)
		}
	}

	text := strings.ToLower(report)

	for _, city := range knownCities {
		if strings.Contains(text, city) {
			return titleCase(city)
		}
	}

	for _, pattern := range locationPatterns {
		match := pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		location := nonWordPattern.ReplaceAllString(strings.TrimSpace(match[1]), "")
		if len(location) > 2 {
			return titleCase(location)
		}
	}

	return defaultCity
}

func nearestCity(lat, lng float64) string {
	closest := defaultCity
	minDistance := math.Inf(1)
	for _, city := range cityCoordinates {
		distance := math.Hypot(lat-city.lat, lng-city.lng)
		if distance < minDistance {
			minDistance = distance
			closest = city.name
		}
	}
	return closest
}

// PersonalInfo holds the optional fields pulled from a report. Zero values mean
// the field was absent or unparseable, never an error.
type PersonalInfo struct {
	Name  string
	Age   int
	Phone string
}

func (p PersonalInfo) fieldCount() int {
	count := 0
	if p.Name != "" {
		count++
	}
	if p.Age != 0 {
		count++
	}
	if p.Phone != "" {
		count++
	}
	return count
}

// ExtractPersonalInfo applies three independent regexes for age, name, and
// phone. Each field may or may not populate; a bad value is simply dropped.
func ExtractPersonalInfo(report string) PersonalInfo {
	text := strings.ToLower(report)
	var info PersonalInfo

	if match := agePattern.FindStringSubmatch(text); match != nil {
		if age, err := strconv.Atoi(strings.TrimSpace(match[1])); err == nil {
			info.Age = age
		}
	}

	if match := namePattern.FindStringSubmatch(text); match != nil {
		name := titleCase(nonWordPattern.ReplaceAllString(strings.TrimSpace(match[1]), ""))
		if len(name) > 1 {
			info.Name = name
		}
	}

	if match := phonePattern.FindStringSubmatch(text); match != nil {
		phone := nonPhonePattern.ReplaceAllString(match[1], "")
		if len(phone) >= 10 {
			info.Phone = phone
		}
	}

	return info
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
