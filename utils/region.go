package utils

import (
	"strings"
)

// RegionGlobal is the canonical identifier for the worldwide region
const RegionGlobal = "Global"

// NormalizeRegion maps a free-form region identifier to its canonical key.
// Country codes are upper-cased; "global" in any casing becomes RegionGlobal.
// Region values are otherwise opaque and not validated against an enumeration,
// but every component must normalize before touching the store so the same
// logical region is never split across differently-cased keys.
func NormalizeRegion(region string) string {
	region = strings.TrimSpace(region)
	if region == "" {
		return ""
	}
	if strings.EqualFold(region, RegionGlobal) {
		return RegionGlobal
	}
	return strings.ToUpper(region)
}
