// Package catalog holds the declarative table of customs-relevant
// information categories: per-category weights and ordered detection rules.
// The table is pure data; scoring lives in the analyzer.
package catalog

import "regexp"

// Category identifies one of the six fixed information categories.
type Category string

const (
	Brand               Category = "brand"
	Model               Category = "model"
	TechnicalSpecs      Category = "technical_specs"
	PhysicalAttributes  Category = "physical_attributes"
	CategoryIdentifiers Category = "category_identifiers"
	YearModel           Category = "year_model"
)

// MissingTooShort is the sentinel missing entry reported when a description
// is empty or shorter than the minimum analyzable length. It is not a member
// of Categories.
const MissingTooShort Category = "description too short or empty"

// Categories is the closed category set in detection order. The analyzer
// iterates this slice, never the spec map, so reports are deterministic.
var Categories = []Category{
	Brand,
	Model,
	TechnicalSpecs,
	PhysicalAttributes,
	CategoryIdentifiers,
	YearModel,
}

// TotalWeight is the sum of all category weights.
const TotalWeight = 25 + 20 + 30 + 15 + 20 + 10

// Spec describes how one category is detected and how much finding it
// contributes to the completeness score.
type Spec struct {
	Weight int
	// Rules are evaluated in order; a category counts as found when any
	// rule matches. Rules are independent: adding or removing one never
	// changes another category's outcome.
	Rules []*regexp.Regexp
	// Advice is the fixed recommendation emitted when the category is
	// missing from a description.
	Advice string
}

// Lookup returns the spec for a category.
func Lookup(c Category) (Spec, bool) {
	s, ok := specs[c]
	return s, ok
}

// Weight returns the weight for a category, or 0 for unknown categories.
func Weight(c Category) int {
	return specs[c].Weight
}

const brandLexicon = `(?i)\b(apple|samsung|huawei|xiaomi|oppo|vivo|oneplus|google|sony|lg|nokia|motorola|realme|asus|acer|hp|dell|lenovo|msi|razer|alienware|microsoft|surface|bmw|mercedes|audi|toyota|honda|ford|volkswagen|hyundai|tesla|mazda|nissan|kia|lexus|porsche|jaguar|volvo|nike|adidas|puma|reebok|new balance|converse|vans|under armour|fila|gucci|prada|louis vuitton|chanel|hermes|versace|armani|calvin klein|tommy hilfiger|zara|h&m|uniqlo|gap|coca cola|pepsi|nestle|unilever|rolex|omega|seiko|casio|citizen|tissot|tag heuer|breitling|cartier|bulgari|tiffany|pandora|swarovski|canon|nikon|fujifilm|olympus|panasonic|leica|pentax|gopro|dji|bose|sennheiser|audio technica|beats|jbl|harman kardon|marshall|klipsch|yamaha|pioneer|kenwood|alpine|dior|ysl|tom ford|dove|loreal|maybelline|revlon|clinique|lancome)\b`

var specs = map[Category]Spec{
	Brand: {
		Weight: 25,
		Rules: []*regexp.Regexp{
			regexp.MustCompile(brandLexicon),
			// Permissive fallback: any capitalized word sequence counts as
			// a potential brand. Accepts false positives on purpose; the
			// readiness thresholds are tuned for it. Case-sensitive.
			regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\b`),
		},
		Advice: "Add the brand name (e.g. Apple, Samsung, BMW)",
	},
	Model: {
		Weight: 20,
		Rules: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\biphone\s+\d+\s*(?:pro|max|plus|mini|se)?\b`),
			regexp.MustCompile(`(?i)\bgalaxy\s+[a-z]+\d+\s*(?:ultra|plus|pro)?\b`),
			regexp.MustCompile(`(?i)\bpixel\s+\d+\s*(?:pro|xl)?\b`),
			regexp.MustCompile(`(?i)\bmacbook\s+(?:air|pro)\s*\d*\b`),
			regexp.MustCompile(`(?i)\bsurface\s+(?:pro|laptop|book|studio)\s*\d*\b`),
			regexp.MustCompile(`(?i)\bipad\s+(?:pro|air|mini)?\s*\d*\b`),
			regexp.MustCompile(`(?i)\bwatch\s+(?:series|se)\s*\d*\b`),
			// Generic two-token fallback, as permissive as the brand one.
			regexp.MustCompile(`(?i)\b[a-z]+\s+[a-z0-9]+\s*(?:pro|max|ultra|plus|lite|se|air|mini)?\b`),
		},
		Advice: "Add the model name (e.g. iPhone 15, Galaxy S24, X5)",
	},
	TechnicalSpecs: {
		Weight: 30,
		Rules: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b\d+\s*(?:gb|tb|mb)\s*(?:ram|memory|storage|ssd|hdd|rom)?\b`),
			regexp.MustCompile(`(?i)\b\d+\.?\d*\s*(?:inch|"|')\s*(?:display|screen|monitor)?\b`),
			regexp.MustCompile(`(?i)\b\d+\s*(?:mp|megapixels?)\s*(?:camera)?\b`),
			regexp.MustCompile(`(?i)\b\d+\s*(?:mah|wh|hours?)\s*(?:battery)?\b`),
			regexp.MustCompile(`(?i)\b\d+\s*(?:hz|ghz|mhz)\s*(?:refresh|processor|cpu)?\b`),
			regexp.MustCompile(`(?i)\b\d+\s*cores?\s*(?:processor|cpu)?\b`),
			regexp.MustCompile(`(?i)\b(?:\d+k|4k|8k|uhd|hd|full hd|qhd)\b`),
			regexp.MustCompile(`(?i)\b(?:wifi|wi-fi|bluetooth|5g|4g|lte|3g|nfc|usb|hdmi|ethernet)\b`),
			regexp.MustCompile(`(?i)\b(?:android|ios|windows|macos|linux|chrome os)\s*(?:\d+(?:\.\d+)?)?\b`),
			regexp.MustCompile(`(?i)\b(?:amoled|oled|lcd|led|qled|ips|tn|va|retina|super retina)\b`),
		},
		Advice: "Add technical specifications (e.g. 256GB, 12MP, 6.7 inch)",
	},
	PhysicalAttributes: {
		Weight: 15,
		Rules: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(?:black|white|red|blue|green|yellow|orange|purple|pink|gray|grey|silver|gold|rose|bronze|copper|titanium|platinum|space|midnight|starlight|alpine|sierra|pacific|phantom|mystic|prism|aura|gradient|matte|glossy|transparent|clear|frosted)\b`),
			regexp.MustCompile(`(?i)\b\d+\.?\d*\s*(?:kg|g|pounds?|lbs?|oz)\s*(?:weight)?\b`),
			regexp.MustCompile(`(?i)\b\d+\.?\d*\s*(?:mm|cm|m|inches?|ft|feet)\s*(?:length|width|height|depth|diameter|size)?\b`),
			regexp.MustCompile(`(?i)\b\d+\.?\d*\s*(?:l|ml|liters?|litres?|gallons?|fl oz|cups?)\s*(?:capacity|volume)?\b`),
			regexp.MustCompile(`(?i)\b(?:leather|silicone|metal|aluminum|steel|plastic|glass|ceramic|carbon|titanium|rubber|fabric|wood|bamboo|stone|marble|granite)\b`),
		},
		Advice: "Add physical attributes (e.g. color, size, weight)",
	},
	CategoryIdentifiers: {
		Weight: 20,
		Rules: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(?:smartphone|phone|mobile|cellular|handset|device)\b`),
			regexp.MustCompile(`(?i)\b(?:laptop|notebook|computer|pc|desktop|workstation|ultrabook|chromebook|macbook)\b`),
			regexp.MustCompile(`(?i)\b(?:tablet|ipad|slate|e-reader|kindle)\b`),
			regexp.MustCompile(`(?i)\b(?:television|tv|monitor|display|smart tv|led tv|oled tv)\b`),
			regexp.MustCompile(`(?i)\b(?:camera|dslr|mirrorless|camcorder|webcam|action cam|security cam)\b`),
			regexp.MustCompile(`(?i)\b(?:headphones|earphones|earbuds|headset|speakers|soundbar|audio)\b`),
			regexp.MustCompile(`(?i)\b(?:watch|smartwatch|fitness tracker|wearable|band|strap)\b`),
			regexp.MustCompile(`(?i)\b(?:car|vehicle|automobile|sedan|suv|hatchback|coupe|truck|van|motorcycle|bike|scooter)\b`),
			regexp.MustCompile(`(?i)\b(?:shirt|t-shirt|pants|jeans|dress|jacket|coat|shoes|sneakers|boots|sandals|clothing|apparel)\b`),
			regexp.MustCompile(`(?i)\b(?:food|beverage|drink|juice|soda|water|coffee|tea|snack|candy|chocolate|supplement|vitamin)\b`),
			regexp.MustCompile(`(?i)\b(?:furniture|chair|table|bed|sofa|desk|cabinet|shelf|lamp|mirror|curtain|carpet)\b`),
			regexp.MustCompile(`(?i)\b(?:appliance|refrigerator|washing machine|microwave|oven|dishwasher|vacuum|cleaner|air conditioner)\b`),
		},
		Advice: "Name the product type (e.g. smartphone, laptop, car)",
	},
	YearModel: {
		Weight: 10,
		Rules: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b20[0-9]{2}\s*(?:model|year|edition|version)?\b`),
			regexp.MustCompile(`(?i)\b(?:model|year|edition|version)\s*20[0-9]{2}\b`),
			regexp.MustCompile(`(?i)\b(?:generation|gen)\s*\d+\b`),
			regexp.MustCompile(`(?i)\b\d+(?:st|nd|rd|th)\s*(?:generation|gen)\b`),
		},
		Advice: "Add the production year or generation (e.g. 2024, Gen 5)",
	},
}
