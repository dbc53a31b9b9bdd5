package enrich

import (
	"regexp"
	"strings"
)

// maxSpecTokens bounds how many novel spec tokens one merge inserts.
const maxSpecTokens = 5

// mergeBrands are the brand names the merger recognizes in scraped text,
// in canonical casing. Page text is matched case-insensitively and the
// canonical form is what gets prepended.
var mergeBrands = []string{
	"Apple", "Samsung", "Huawei", "Xiaomi", "Sony", "LG", "Dell", "HP",
	"Lenovo", "Asus", "MSI", "Canon", "Nikon", "Bose", "JBL", "Rolex",
	"Omega", "Gucci", "Prada", "Louis Vuitton", "Chanel", "Nike", "Adidas",
	"Coca Cola", "Pepsi", "BMW", "Mercedes", "Audi", "Toyota", "Honda",
	"Ford", "Volkswagen", "Porsche", "Jaguar", "Volvo", "Tesla", "Hyundai",
	"Kia", "Mazda", "Nissan", "Lexus", "Chevrolet", "Cadillac", "Ferrari",
	"Lamborghini", "Bentley",
}

var (
	mergeBrandRe   *regexp.Regexp
	brandCanonical = make(map[string]string, len(mergeBrands))
)

func init() {
	parts := make([]string, len(mergeBrands))
	for i, b := range mergeBrands {
		parts[i] = regexp.QuoteMeta(b)
		brandCanonical[strings.ToLower(b)] = b
	}
	mergeBrandRe = regexp.MustCompile(`(?i)\b(` + strings.Join(parts, "|") + `)\b`)
}

// mergeModelRes are tried in order; the first hit wins.
var mergeModelRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\biPhone\s+\d+\s*(?:Pro|Max|Plus|Mini|SE)?\b`),
	regexp.MustCompile(`(?i)\bGalaxy\s+[A-Z]+\d+\s*(?:Ultra|Plus|Pro)?\b`),
	regexp.MustCompile(`(?i)\bPixel\s+\d+\s*(?:Pro|XL)?\b`),
	regexp.MustCompile(`(?i)\bMacBook\s+(?:Air|Pro)\s*\d*\b`),
	regexp.MustCompile(`(?i)\biPad\s+(?:Pro|Air|Mini)?\s*\d*\b`),
}

// mergeSpecRes match the unit-bearing spec tokens worth appending.
var mergeSpecRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b\d+(?:GB|TB|MB)\b`),
	regexp.MustCompile(`(?i)\b\d+\.?\d*(?:inch|")`),
	regexp.MustCompile(`(?i)\b\d+MP\b`),
	regexp.MustCompile(`(?i)\b\d+mAh\b`),
	regexp.MustCompile(`(?i)\b(?:4K|8K|HD|Full HD|UHD)\b`),
	regexp.MustCompile(`(?i)\b(?:WiFi|Bluetooth|5G|4G|LTE|NFC)\b`),
}

var (
	mergeColorRe = regexp.MustCompile(`(?i)\b(?:Black|White|Red|Blue|Green|Yellow|Orange|Purple|Pink|Gray|Grey|Silver|Gold|Rose|Space|Midnight|Starlight|Alpine|Sierra|Pacific|Phantom|Mystic|Prism|Aura|Titanium|Ceramic|Leather|Aluminum|Steel|Plastic|Glass|Carbon|Fiber)\b`)
	mergeYearRe  = regexp.MustCompile(`\b20[0-9]{2}\b`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Merge inserts tokens found in aggregated scraped text into a description.
// The insertion order is fixed: brand is prepended, the first model match is
// appended, novel spec tokens follow as one joined clause, then color and
// year. Every step checks that the candidate is absent (case-insensitively)
// from the running string, so merging is idempotent over its own output.
func Merge(original, aggregatedText string) string {
	enhanced := original

	if brand := mergeBrandRe.FindString(aggregatedText); brand != "" && !containsFold(enhanced, brand) {
		if canonical, ok := brandCanonical[strings.ToLower(brand)]; ok {
			brand = canonical
		}
		enhanced = brand + " " + enhanced
	}

	for _, re := range mergeModelRes {
		if m := re.FindString(aggregatedText); m != "" && !containsFold(enhanced, m) {
			enhanced = enhanced + " " + m
			break
		}
	}

	var specs []string
	seen := make(map[string]bool)
	for _, re := range mergeSpecRes {
		for _, token := range re.FindAllString(aggregatedText, -1) {
			key := strings.ToLower(token)
			if seen[key] || containsFold(enhanced, token) {
				continue
			}
			seen[key] = true
			specs = append(specs, token)
			if len(specs) == maxSpecTokens {
				break
			}
		}
		if len(specs) == maxSpecTokens {
			break
		}
	}
	if len(specs) > 0 {
		enhanced += " - " + strings.Join(specs, ", ")
	}

	if color := mergeColorRe.FindString(aggregatedText); color != "" && !containsFold(enhanced, color) {
		enhanced += " - " + color
	}

	if year := mergeYearRe.FindString(aggregatedText); year != "" && !strings.Contains(enhanced, year) {
		enhanced += " (" + year + " model)"
	}

	return strings.TrimSpace(whitespaceRe.ReplaceAllString(enhanced, " "))
}

// trackImprovements diffs the enhanced description against the original and
// emits one note per kind of material change.
func trackImprovements(original, enhanced string) []string {
	var notes []string

	if len(enhanced) > len(original)*6/5 {
		notes = append(notes, "Description lengthened")
	}
	if newlyPresent(original, enhanced, "apple", "samsung", "bmw", "mercedes", "nike", "adidas") {
		notes = append(notes, "Brand added")
	}
	if newlyPresent(original, enhanced, "gb", "tb", "inch", "mp", "mah") {
		notes = append(notes, "Technical specs added")
	}
	if newlyPresent(original, enhanced, "black", "white", "red", "blue", "silver", "gold") {
		notes = append(notes, "Color information added")
	}
	if mergeYearRe.MatchString(enhanced) && !mergeYearRe.MatchString(original) {
		notes = append(notes, "Year information added")
	}

	return notes
}

// newlyPresent reports whether any token appears in enhanced but not in the
// original, case-insensitively.
func newlyPresent(original, enhanced string, tokens ...string) bool {
	for _, t := range tokens {
		if containsFold(enhanced, t) && !containsFold(original, t) {
			return true
		}
	}
	return false
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
