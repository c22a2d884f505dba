package percentile

import (
	"fmt"
	"strings"
)

// Band is a percentile bucket. Bands are ordered, so they can be compared
// directly: BandP0 < BandP10 < ... < BandP90.
type Band int

const (
	// BandP0 means the amount is below every recorded threshold for the month.
	BandP0 Band = iota
	BandP10
	BandP25
	BandP50
	BandP75
	BandP90
)

var bandNames = [...]string{"p0", "p10", "p25", "p50", "p75", "p90"}

// thresholdBands is the walk order used by the classifier.
var thresholdBands = [...]Band{BandP10, BandP25, BandP50, BandP75, BandP90}

func (b Band) String() string {
	if b < BandP0 || b > BandP90 {
		return fmt.Sprintf("Band(%d)", int(b))
	}
	return bandNames[b]
}

// Label is the display form of the band, e.g. "P25".
func (b Band) Label() string {
	return strings.ToUpper(b.String())
}

// Category maps the band to its risk category.
func (b Band) Category() Category {
	return CategoryFor(b)
}

func (b Band) MarshalText() ([]byte, error) {
	if b < BandP0 || b > BandP90 {
		return nil, fmt.Errorf("invalid band %d", int(b))
	}
	return []byte(b.String()), nil
}

func (b *Band) UnmarshalText(text []byte) error {
	parsed, err := ParseBand(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// ParseBand accepts "p25", "P25" and the "p_25" column spelling.
func ParseBand(s string) (Band, error) {
	normalized := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "_", ""))
	for i, name := range bandNames {
		if name == normalized {
			return Band(i), nil
		}
	}
	return BandP0, fmt.Errorf("unknown percentile band %q", s)
}

// AllBands returns every band in ascending order, including BandP0.
func AllBands() []Band {
	return []Band{BandP0, BandP10, BandP25, BandP50, BandP75, BandP90}
}
