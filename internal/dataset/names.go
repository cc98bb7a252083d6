package dataset

import (
	"strings"

	"github.com/biter777/countries"
)

// DisplayName returns the country name for an ISO 3166 code such as "AUS".
// Codes the registry does not know are returned unchanged.
func DisplayName(code string) string {
	c := countries.ByName(strings.TrimSpace(code))
	if c == countries.Unknown {
		return code
	}
	return c.String()
}
