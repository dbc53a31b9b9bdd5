package classify

import (
	"fmt"

	"github.com/sells-group/customs-cli/internal/catalog"
)

// MaxQueries bounds the number of external searches per product.
const MaxQueries = 6

// queryTemplates holds the four specificity-seeking query phrasings per
// domain. The raw description is interpolated into each.
var queryTemplates = map[Domain][]string{
	DomainElectronics: {
		"%s full specifications technical details",
		"%s official specs features",
		"%s complete description model",
		"%s dimensions weight materials",
	},
	DomainAutomotive: {
		"%s specifications engine details",
		"%s model year features",
		"%s technical specs dimensions",
		"%s official description",
	},
	DomainClothing: {
		"%s material composition size",
		"%s brand collection details",
		"%s fabric specifications",
		"%s product details",
	},
	DomainFoodBeverage: {
		"%s ingredients nutritional information",
		"%s product specifications",
		"%s brand details packaging",
		"%s official product information",
	},
	DomainGeneral: {
		"%s full product description",
		"%s specifications features",
		"%s complete details",
		"%s official information",
	},
}

// categoryQueries maps a missing category to its dedicated extra query
// suffix. category_identifiers has no dedicated query.
var categoryQueries = []struct {
	category catalog.Category
	suffix   string
}{
	{catalog.Brand, "brand manufacturer who makes"},
	{catalog.Model, "model number version type"},
	{catalog.TechnicalSpecs, "technical specifications features"},
	{catalog.PhysicalAttributes, "dimensions size weight color material"},
	{catalog.YearModel, "year model when released"},
}

// Plan builds the ordered search-query list: the four domain templates
// first, then one query per missing category in table order, truncated to
// MaxQueries. The cap bounds external calls per product; no ranking or
// dedup is applied.
func Plan(description string, domain Domain, missing []catalog.Category) []string {
	templates, ok := queryTemplates[domain]
	if !ok {
		templates = queryTemplates[DomainGeneral]
	}

	queries := make([]string, 0, len(templates)+len(categoryQueries))
	for _, tmpl := range templates {
		queries = append(queries, fmt.Sprintf(tmpl, description))
	}

	missingSet := make(map[catalog.Category]bool, len(missing))
	for _, c := range missing {
		missingSet[c] = true
	}
	for _, cq := range categoryQueries {
		if missingSet[cq.category] {
			queries = append(queries, description+" "+cq.suffix)
		}
	}

	if len(queries) > MaxQueries {
		queries = queries[:MaxQueries]
	}
	return queries
}
