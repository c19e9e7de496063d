package score

import (
	"strings"

	"github.com/osintlab/namesake/internal/model"
	"github.com/osintlab/namesake/internal/textutil"
)

// Per-attribute weights for the qualified resolution mode. Only the
// attributes the caller actually supplied participate; with none supplied
// the name weight alone is used.
var attributeWeights = []struct {
	key    string
	weight float64
}{
	{"name", 0.4},
	{"company", 0.3},
	{"designation", 0.2},
	{"location", 0.1},
}

// AttributeInput is the caller-supplied identity to match extractions
// against.
type AttributeInput struct {
	Name        string
	Company     string
	Designation string
	Location    string
}

func (in AttributeInput) value(key string) string {
	switch key {
	case "name":
		return in.Name
	case "company":
		return in.Company
	case "designation":
		return in.Designation
	case "location":
		return in.Location
	}
	return ""
}

func extractedValue(ex model.ExtractedAttributes, key string) string {
	var p *string
	switch key {
	case "name":
		p = ex.Name
	case "company":
		p = ex.Company
	case "designation":
		p = ex.Designation
	case "location":
		p = ex.Location
	}
	if p == nil {
		return ""
	}
	return *p
}

// StringMatch compares an input value against an extracted value:
// 1.0 for an exact normalized match, 0.5 for a substring match either way
// or a token overlap of at least 0.7, else 0.
func StringMatch(inputValue, extractedVal string) float64 {
	if inputValue == "" || extractedVal == "" {
		return 0.0
	}
	left := strings.ToLower(textutil.NormalizeWhitespace(inputValue))
	right := strings.ToLower(textutil.NormalizeWhitespace(extractedVal))
	if left == "" || right == "" {
		return 0.0
	}
	if left == right {
		return 1.0
	}
	if strings.Contains(right, left) || strings.Contains(left, right) {
		return 0.5
	}

	leftTokens := tokenSet(left)
	rightTokens := tokenSet(right)
	if len(leftTokens) == 0 || len(rightTokens) == 0 {
		return 0.0
	}
	overlap := 0
	for tok := range leftTokens {
		if rightTokens[tok] {
			overlap++
		}
	}
	if float64(overlap)/float64(len(leftTokens)) >= 0.7 {
		return 0.5
	}
	return 0.0
}

// AttributeMatch computes the weighted attribute-match score of an
// extraction against the caller's stated identity.
func AttributeMatch(in AttributeInput, extracted model.ExtractedAttributes) float64 {
	total := 0.0
	sum := 0.0
	active := 0
	for _, aw := range attributeWeights {
		if textutil.NormalizeWhitespace(in.value(aw.key)) == "" {
			continue
		}
		active++
		total += aw.weight
		sum += StringMatch(in.value(aw.key), extractedValue(extracted, aw.key)) * aw.weight
	}
	if active == 0 {
		// Nothing supplied: fall back to the name weight alone.
		total = attributeWeights[0].weight
		sum = StringMatch(in.Name, extractedValue(extracted, "name")) * total
	}
	if total <= 0 {
		return 0.0
	}
	return Round3(sum / total)
}

func tokenSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range textutil.NameTokens(s) {
		set[tok] = true
	}
	return set
}
