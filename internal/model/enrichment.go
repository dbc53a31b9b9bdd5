package model

// SearchResult is a single ranked web search hit. Discarded once the page
// behind it has been fetched.
type SearchResult struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// PageExtract holds the text and structured hints pulled from one page.
type PageExtract struct {
	RawText         string            `json:"raw_text"`
	Title           string            `json:"title"`
	MetaDescription string            `json:"meta_description"`
	SpecTable       map[string]string `json:"spec_table,omitempty"`
	Features        []string          `json:"features,omitempty"`
}

// HasStructured reports whether the extract carries any structured hint
// beyond raw text.
func (p *PageExtract) HasStructured() bool {
	return p.MetaDescription != "" || len(p.SpecTable) > 0 || len(p.Features) > 0
}

// Source records where a piece of aggregated text came from.
type Source struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// BrandModel is the brand/model pair extracted for reporting.
type BrandModel struct {
	Brand  string `json:"brand,omitempty"`
	Model  string `json:"model,omitempty"`
	Series string `json:"series,omitempty"`
}

// TechnicalDetails buckets unit-bearing spec tokens found in scraped text.
type TechnicalDetails struct {
	Memory       []string `json:"memory,omitempty"`
	Display      []string `json:"display,omitempty"`
	Camera       []string `json:"camera,omitempty"`
	Battery      []string `json:"battery,omitempty"`
	Connectivity []string `json:"connectivity,omitempty"`
}

// PhysicalAttributes buckets appearance and build tokens.
type PhysicalAttributes struct {
	Color      []string `json:"color,omitempty"`
	Material   []string `json:"material,omitempty"`
	Dimensions []string `json:"dimensions,omitempty"`
	Weight     []string `json:"weight,omitempty"`
}

// AdditionalSpecs holds the remaining reporting-only extraction buckets.
type AdditionalSpecs struct {
	OperatingSystem []string `json:"operating_system,omitempty"`
	Year            []string `json:"year,omitempty"`
	SpecialFeatures []string `json:"special_features,omitempty"`
	CountryOrigin   []string `json:"country_origin,omitempty"`
}

// ExtractedCategories groups the four reporting-only extraction passes.
// These never feed back into the merged description.
type ExtractedCategories struct {
	BrandModel         BrandModel         `json:"brand_model"`
	TechnicalDetails   TechnicalDetails   `json:"technical_details"`
	PhysicalAttributes PhysicalAttributes `json:"physical_attributes"`
	AdditionalSpecs    AdditionalSpecs    `json:"additional_specs"`
}

// EnrichmentResult is the outcome of one best-effort enhancement pass.
type EnrichmentResult struct {
	OriginalDescription string              `json:"original_description"`
	EnhancedDescription string              `json:"enhanced_description"`
	Improvements        []string            `json:"improvements"`
	ExtractedCategories ExtractedCategories `json:"extracted_categories"`
	SourcesUsed         []string            `json:"sources_used"`
	ConfidenceScore     float64             `json:"confidence_score"`
	ReadinessImproved   bool                `json:"readiness_improved"`
}
