package topic

import "strings"

// Label tags a turn with the broad subject of the user's utterance.
type Label string

const (
	General     Label = "general"
	Math        Label = "math"
	Programming Label = "programming"
	Company     Label = "company"
)

var keywordBuckets = map[Label][]string{
	Math: {
		"math", "calculation", "add", "subtract", "multiply", "divide", "number", "equation",
	},
	Programming: {
		"code", "program", "develop", "software", "app", "website", "python", "javascript",
	},
	Company: {
		"company", "business", "service", "product", "solution", "help", "support",
	},
}

// order fixes the precedence between buckets when several match.
var order = []Label{Math, Programming, Company}

// Detect returns the first bucket with a keyword hit, or General when the
// text matches none.
func Detect(text string) Label {
	lowered := strings.ToLower(text)
	for _, label := range order {
		for _, keyword := range keywordBuckets[label] {
			if strings.Contains(lowered, keyword) {
				return label
			}
		}
	}
	return General
}
