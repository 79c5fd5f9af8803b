package services

import "strings"

// PropertyResidential is the property type eligible for the government
// subsidy, and the documented default when the customer record carries none.
const PropertyResidential = "residential"

// NormalizePropertyType resolves a possibly-absent property type to the
// documented default. The second return value reports that the default was
// substituted, so the caller can log a warning.
func NormalizePropertyType(propertyType string) (string, bool) {
	if strings.TrimSpace(propertyType) == "" {
		return PropertyResidential, true
	}
	return propertyType, false
}

// Subsidy returns the government subsidy for a system of the given capacity.
// Only residential on-grid and hybrid systems qualify. The tiers are looked
// up on the unrounded capacity, so boundary systems (exactly 1, 2 or 10 kW)
// land in the lower tier.
func Subsidy(kw float64, propertyType string, projectType ProjectType) float64 {
	if propertyType != PropertyResidential {
		return 0
	}
	if projectType != ProjectOnGrid && projectType != ProjectHybrid {
		return 0
	}
	switch {
	case kw <= 0:
		return 0
	case kw <= 1:
		return 30000
	case kw <= 2:
		return 60000
	case kw <= 10:
		return 78000
	default:
		return 0
	}
}
