// internal/scraper/normalizer.go
package scraper

import (
	"strings"

	"github.com/troveworks/trove-backend/internal/models"
)

// Normalized is a flat record over the canonical vocabulary plus a side map
// of source labels the mapper has no entry for. Extras are keyed by their
// composite "{category}: {label}" form so the table heading survives.
type Normalized struct {
	Fields models.SpecFields
	Extras map[string]string
}

// Normalize applies the field mapper to a raw extraction. Every canonical
// column starts empty; matched rows overwrite in document order, so when
// several labels map to one column the last row on the page wins.
func Normalize(raw []RawField) *Normalized {
	n := &Normalized{}

	matched := make(map[string]bool, len(raw))
	for _, f := range raw {
		if canonical := CanonicalField(f.Key); canonical != "" {
			n.Fields.Set(canonical, f.Value)
			matched[f.Key] = true
		}
	}

	// A row is unmapped only when neither its bare nor its composite key
	// matched. The composite entry carries the needed context.
	for _, f := range raw {
		category, bare, ok := splitComposite(f.Key)
		if !ok {
			continue
		}
		if matched[f.Key] || matched[bare] {
			continue
		}
		if n.Extras == nil {
			n.Extras = make(map[string]string)
		}
		n.Extras[category+": "+bare] = f.Value
	}

	return n
}

func splitComposite(key string) (category, label string, ok bool) {
	category, label, ok = strings.Cut(key, ": ")
	return
}
