package meeting

import (
	"regexp"
	"strings"
)

// Sections holds the text extracted from the five numbered headings of a
// generated meeting narrative. ActionItems carries the textual section for
// completeness; persisted action items come from the structured extraction
// call instead.
type Sections struct {
	Overview    string
	Discussion  string
	Decisions   string
	ActionItems string
	NextSteps   string
}

// sectionHeading matches lines like "## 1. 미팅 개요" or "##2. 주요 논의 사항"
var sectionHeading = regexp.MustCompile(`(?m)^\s*#{1,3}\s*([1-5])\s*[.)]`)

// ParseSections extracts the five numbered sections from a generated
// narrative. Each section runs from its heading to the next heading or the
// end of the text. A missing heading yields an empty string for that
// section; malformed input never produces an error.
func ParseSections(narrative string) Sections {
	var parsed Sections
	if narrative == "" {
		return parsed
	}

	matches := sectionHeading.FindAllStringSubmatchIndex(narrative, -1)
	for i, m := range matches {
		number := narrative[m[2]:m[3]]

		// Body starts after the heading line
		bodyStart := m[1]
		if nl := strings.IndexByte(narrative[bodyStart:], '\n'); nl >= 0 {
			bodyStart += nl + 1
		} else {
			bodyStart = len(narrative)
		}

		bodyEnd := len(narrative)
		if i+1 < len(matches) {
			bodyEnd = matches[i+1][0]
		}

		body := strings.TrimSpace(narrative[bodyStart:bodyEnd])

		// First heading with a given number wins
		switch number {
		case "1":
			if parsed.Overview == "" {
				parsed.Overview = body
			}
		case "2":
			if parsed.Discussion == "" {
				parsed.Discussion = body
			}
		case "3":
			if parsed.Decisions == "" {
				parsed.Decisions = body
			}
		case "4":
			if parsed.ActionItems == "" {
				parsed.ActionItems = body
			}
		case "5":
			if parsed.NextSteps == "" {
				parsed.NextSteps = body
			}
		}
	}

	return parsed
}
