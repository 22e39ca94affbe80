package domain

import "fmt"

// FeatureColumns is the exact column order the deployed model artifact
// was trained against. Both the scorer and the offline generator must
// keep this order; reordering or renaming breaks artifact compatibility.
var FeatureColumns = [8]string{
	"platform",
	"country",
	"product_category",
	"spend",
	"impressions",
	"clicks",
	"conversions",
	"reach",
}

// SchemaError reports the first missing or mistyped field of an inbound
// campaign payload. It is a client error, not a server fault.
type SchemaError struct {
	Field  string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("invalid field %q: %s", e.Field, e.Reason)
}

// FeaturePayload is the wire form of a campaign description. Pointer
// fields distinguish absent keys from zero values so validation can name
// the first offending field. Type mismatches are caught by the JSON
// decoder before validation runs.
type FeaturePayload struct {
	Platform        *string  `json:"platform"`
	Country         *string  `json:"country"`
	ProductCategory *string  `json:"product_category"`
	Spend           *float64 `json:"spend"`
	Impressions     *int64   `json:"impressions"`
	Clicks          *int64   `json:"clicks"`
	Conversions     *int64   `json:"conversions"`
	Reach           *int64   `json:"reach"`
}

// Features validates the payload and canonicalizes it into a
// CampaignFeatures value. Fields are checked in FeatureColumns order and
// the first absent one fails the whole payload. Empty strings and
// negative numbers are accepted; validation is schema-shaped, not
// semantic.
func (p FeaturePayload) Features() (CampaignFeatures, error) {
	checks := []struct {
		name    string
		present bool
	}{
		{"platform", p.Platform != nil},
		{"country", p.Country != nil},
		{"product_category", p.ProductCategory != nil},
		{"spend", p.Spend != nil},
		{"impressions", p.Impressions != nil},
		{"clicks", p.Clicks != nil},
		{"conversions", p.Conversions != nil},
		{"reach", p.Reach != nil},
	}
	for _, c := range checks {
		if !c.present {
			return CampaignFeatures{}, &SchemaError{Field: c.name, Reason: "field required"}
		}
	}
	return CampaignFeatures{
		Platform:        *p.Platform,
		Country:         *p.Country,
		ProductCategory: *p.ProductCategory,
		Spend:           *p.Spend,
		Impressions:     *p.Impressions,
		Clicks:          *p.Clicks,
		Conversions:     *p.Conversions,
		Reach:           *p.Reach,
	}, nil
}
