// Package classify buckets descriptions into coarse product domains and
// plans the bounded search-query list used for enrichment.
package classify

import "strings"

// Domain is a coarse product bucket used only to pick query templates.
type Domain string

const (
	DomainElectronics  Domain = "electronics"
	DomainAutomotive   Domain = "automotive"
	DomainClothing     Domain = "clothing"
	DomainFoodBeverage Domain = "food_beverage"
	DomainGeneral      Domain = "general"
)

// domainKeywords is an ordered table so tie-breaks are deterministic:
// the first domain with the highest keyword count wins.
var domainKeywords = []struct {
	domain   Domain
	keywords []string
}{
	{DomainElectronics, []string{"phone", "smartphone", "laptop", "computer", "tablet", "tv", "camera", "headphones", "watch", "smartwatch"}},
	{DomainAutomotive, []string{"car", "vehicle", "auto", "truck", "motorcycle", "bike", "sedan", "suv", "bmw", "mercedes", "toyota"}},
	{DomainClothing, []string{"shirt", "pants", "dress", "shoes", "jacket", "clothing", "apparel", "fashion", "nike", "adidas"}},
	{DomainFoodBeverage, []string{"food", "drink", "beverage", "juice", "water", "coffee", "tea", "snack", "coca", "pepsi"}},
}

// Classify returns the domain whose keywords appear most often in the
// lower-cased description. All-zero counts yield DomainGeneral.
func Classify(description string) Domain {
	lower := strings.ToLower(description)

	best := DomainGeneral
	bestCount := 0
	for _, entry := range domainKeywords {
		count := 0
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				count++
			}
		}
		if count > bestCount {
			best = entry.domain
			bestCount = count
		}
	}
	return best
}
