// Package country maps ISO-3166 alpha-2 codes to display names.
package country

import "strings"

var names = map[string]string{
	// Americas
	"AR": "Argentina",
	"BR": "Brazil",
	"CA": "Canada",
	"CL": "Chile",
	"CO": "Colombia",
	"MX": "Mexico",
	"US": "United States",
	"VE": "Venezuela",
	"PE": "Peru",

	// Europe
	"DE": "Germany",
	"ES": "Spain",
	"FR": "France",
	"GB": "United Kingdom",
	"GR": "Greece",
	"IT": "Italy",
	"NL": "Netherlands",
	"PL": "Poland",
	"PT": "Portugal",
	"RU": "Russia",
	"SE": "Sweden",
	"TR": "Turkey",
	"UA": "Ukraine",

	// Asia
	"BD": "Bangladesh",
	"CN": "China",
	"ID": "Indonesia",
	"IN": "India",
	"JP": "Japan",
	"KR": "South Korea",
	"MY": "Malaysia",
	"PH": "Philippines",
	"PK": "Pakistan",
	"SA": "Saudi Arabia",
	"SG": "Singapore",
	"TH": "Thailand",
	"VN": "Vietnam",
	"AE": "United Arab Emirates",

	// Africa
	"EG": "Egypt",
	"KE": "Kenya",
	"MA": "Morocco",
	"NG": "Nigeria",
	"ZA": "South Africa",

	// Oceania
	"AU": "Australia",
	"NZ": "New Zealand",

	// Other
	"IL": "Israel",
	"HK": "Hong Kong",
	"TW": "Taiwan",
}

// Name returns the display name for an alpha-2 code. Unknown or non-standard
// codes pass through unchanged so they stay displayable.
func Name(code string) string {
	if name, ok := names[strings.ToUpper(strings.TrimSpace(code))]; ok {
		return name
	}
	return code
}
