package models

import (
	"regexp"
	"strings"
)

// FlavorNotOffered is returned by every barista for flavors outside the menu
const FlavorNotOffered = "We don't offer this flavor. Please pick one of Black Coffee, Melange, Espresso, Ristretto or Cappuccino."

var knownFlavors = regexp.MustCompile(`^(melange|black|espresso|ristretto|cappuccino)$`)

// IsKnownFlavor reports whether the flavor is on the menu, ignoring case
func IsKnownFlavor(flavor string) bool {
	return knownFlavors.MatchString(strings.ToLower(flavor))
}
