package domain

// Category names. Each maps to one scored section of the report.
const (
	CategoryPerformance   = "performance"
	CategoryAccessibility = "accessibility"
	CategorySEO           = "seo"
	CategoryBestPractices = "best-practices"
	CategoryPWA           = "pwa"
)

// CategoryWeights is the top-level weight table: each category's share of
// the overall score. The values sum to 100; weights_test.go enforces this
// so the invariant holds at build time rather than being recomputed at
// runtime.
var CategoryWeights = map[string]int{
	CategoryPerformance:   30,
	CategoryAccessibility: 25,
	CategorySEO:           20,
	CategoryBestPractices: 15,
	CategoryPWA:           10,
}

// SubWeights assigns each sub-metric its fractional share of the category
// score. Every row sums to 1.0 (enforced by weights_test.go). When a
// sub-metric's audit produced no data the sub-metric scores 0 under its
// full weight; remaining weights are never renormalized.
var SubWeights = map[string]map[string]float64{
	CategoryPerformance: {
		"load_time":              0.30,
		"first_contentful_paint": 0.25,
		"dom_content_loaded":     0.15,
		"page_weight":            0.15,
		"request_count":          0.15,
	},
	CategoryAccessibility: {
		"image_alt":         0.30,
		"form_labels":       0.25,
		"document_language": 0.15,
		"landmarks":         0.15,
		"tab_order":         0.15,
	},
	CategorySEO: {
		"meta_description": 0.25,
		"title":            0.20,
		"headings":         0.15,
		"canonical":        0.10,
		"image_alt_text":   0.10,
		"robots_txt":       0.10,
		"sitemap":          0.10,
	},
	CategoryBestPractices: {
		"hsts":                   0.25,
		"csp":                    0.20,
		"https":                  0.20,
		"x_content_type_options": 0.10,
		"x_frame_options":        0.10,
		"referrer_policy":        0.05,
		"deprecated_markup":      0.10,
	},
	CategoryPWA: {
		"manifest":       0.25,
		"service_worker": 0.25,
		"https":          0.20,
		"installable":    0.15,
		"viewport":       0.10,
		"theme_color":    0.05,
	},
}

// SubMetricOrder fixes the iteration order of sub-metrics per category so
// issue lists and degraded lists come out identical across runs. Go map
// iteration is randomized; the aggregator must not depend on it.
var SubMetricOrder = map[string][]string{
	CategoryPerformance: {
		"load_time", "first_contentful_paint", "dom_content_loaded",
		"page_weight", "request_count",
	},
	CategoryAccessibility: {
		"image_alt", "form_labels", "document_language", "landmarks", "tab_order",
	},
	CategorySEO: {
		"meta_description", "title", "headings", "canonical",
		"image_alt_text", "robots_txt", "sitemap",
	},
	CategoryBestPractices: {
		"hsts", "csp", "https", "x_content_type_options",
		"x_frame_options", "referrer_policy", "deprecated_markup",
	},
	CategoryPWA: {
		"manifest", "service_worker", "https", "installable",
		"viewport", "theme_color",
	},
}
