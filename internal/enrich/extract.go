package enrich

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sells-group/customs-cli/internal/model"
)

// The extraction passes below populate the reporting side of an enrichment
// result. They read the same aggregated text the merger does but never feed
// back into the merged description.

var (
	extractBrandRe = regexp.MustCompile(`(?i)\b(Apple|Samsung|Huawei|Xiaomi|BMW|Mercedes|Nike|Adidas|Coca Cola|Pepsi|Sony|LG|Dell|HP|Lenovo|Asus)\b`)

	extractModelRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\biPhone\s+\d+\s*(?:Pro|Max|Plus|Mini|SE)?\b`),
		regexp.MustCompile(`(?i)\bGalaxy\s+[A-Z]+\d+\s*(?:Ultra|Plus|Pro)?\b`),
		regexp.MustCompile(`(?i)\bPixel\s+\d+\s*(?:Pro|XL)?\b`),
	}

	memoryRe       = regexp.MustCompile(`(?i)\b\d+(?:GB|TB|MB)\b`)
	displayRe      = regexp.MustCompile(`(?i)\b\d+\.?\d*(?:inch|")`)
	cameraRe       = regexp.MustCompile(`(?i)\b\d+MP\b`)
	batteryRe      = regexp.MustCompile(`(?i)\b\d+mAh\b`)
	connectivityRe = regexp.MustCompile(`(?i)\b(?:WiFi|Bluetooth|5G|4G|LTE|NFC|USB|HDMI|Ethernet)\b`)

	colorRe     = regexp.MustCompile(`(?i)\b(?:Black|White|Red|Blue|Green|Yellow|Orange|Purple|Pink|Gray|Grey|Silver|Gold|Rose|Space|Midnight|Starlight|Alpine|Sierra|Pacific|Phantom|Mystic|Prism|Aura|Titanium|Ceramic)\b`)
	materialRe  = regexp.MustCompile(`(?i)\b(?:Aluminum|Steel|Plastic|Glass|Carbon|Fiber|Leather|Silicone|Rubber|Wood|Metal|Ceramic|Titanium)\b`)
	dimensionRe = regexp.MustCompile(`(?i)\b\d+\.?\d*\s*(?:mm|cm|inch|")`)
	weightRe    = regexp.MustCompile(`(?i)\b\d+\.?\d*\s*(?:g|kg|lbs|oz)\b`)

	osRe      = regexp.MustCompile(`(?i)\b(Android|iOS|Windows|macOS|Linux|Chrome OS)\s*(\d+(?:\.\d+)?)?\b`)
	yearRe    = regexp.MustCompile(`\b20[0-9]{2}\b`)
	featureRe = regexp.MustCompile(`(?i)\b(?:Waterproof|Wireless|Fast Charging|Face ID|Touch ID|Fingerprint|Dual SIM|Triple Camera|Quad Camera|Smart|Pro|Max|Ultra|Premium|Limited Edition)\b`)
	countryRe = regexp.MustCompile(`(?i)\b(?:Made in|Manufactured in|Origin|Country of origin|Assembled in)\s+([A-Za-z]+(?:\s+[A-Za-z]+)?)\b`)

	titleCaser = cases.Title(language.English)
)

// ExtractCategories runs all four reporting passes over aggregated text.
func ExtractCategories(aggregatedText string) model.ExtractedCategories {
	return model.ExtractedCategories{
		BrandModel:         extractBrandModel(aggregatedText),
		TechnicalDetails:   extractTechnicalDetails(aggregatedText),
		PhysicalAttributes: extractPhysicalAttributes(aggregatedText),
		AdditionalSpecs:    extractAdditionalSpecs(aggregatedText),
	}
}

func extractBrandModel(text string) model.BrandModel {
	var bm model.BrandModel
	if m := extractBrandRe.FindString(text); m != "" {
		bm.Brand = m
	}
	for _, re := range extractModelRes {
		if m := re.FindString(text); m != "" {
			bm.Model = m
			break
		}
	}
	return bm
}

func extractTechnicalDetails(text string) model.TechnicalDetails {
	return model.TechnicalDetails{
		Memory:       distinct(memoryRe.FindAllString(text, -1)),
		Display:      distinct(displayRe.FindAllString(text, -1)),
		Camera:       distinct(cameraRe.FindAllString(text, -1)),
		Battery:      distinct(batteryRe.FindAllString(text, -1)),
		Connectivity: distinct(connectivityRe.FindAllString(text, -1)),
	}
}

func extractPhysicalAttributes(text string) model.PhysicalAttributes {
	return model.PhysicalAttributes{
		Color:      distinct(colorRe.FindAllString(text, -1)),
		Material:   distinct(materialRe.FindAllString(text, -1)),
		Dimensions: distinct(dimensionRe.FindAllString(text, -1)),
		Weight:     distinct(weightRe.FindAllString(text, -1)),
	}
}

func extractAdditionalSpecs(text string) model.AdditionalSpecs {
	specs := model.AdditionalSpecs{
		Year:            distinct(yearRe.FindAllString(text, -1)),
		SpecialFeatures: distinct(featureRe.FindAllString(text, -1)),
	}

	for _, m := range osRe.FindAllStringSubmatch(text, -1) {
		entry := m[1]
		if m[2] != "" {
			entry += " " + m[2]
		}
		specs.OperatingSystem = append(specs.OperatingSystem, entry)
	}
	specs.OperatingSystem = distinct(specs.OperatingSystem)

	for _, m := range countryRe.FindAllStringSubmatch(text, -1) {
		specs.CountryOrigin = append(specs.CountryOrigin, titleCaser.String(strings.ToLower(m[1])))
	}
	specs.CountryOrigin = distinct(specs.CountryOrigin)

	return specs
}

// distinct dedupes case-insensitively, keeping first-seen order and casing.
func distinct(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(values))
	var out []string
	for _, v := range values {
		key := strings.ToLower(v)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, v)
	}
	return out
}
