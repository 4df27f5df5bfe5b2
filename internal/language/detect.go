// Package language classifies a question as Marathi, Hindi or English using
// two small Devanagari marker lists and a script tie-break.
package language

import "strings"

type Language string

const (
	Marathi Language = "marathi"
	Hindi   Language = "hindi"
	English Language = "english"
)

var marathiMarkers = []string{
	"कसे", "करावे", "आहे", "आहेत", "ला", "ची", "चे", "काय", "कधी", "कुठे", "किती", "पिक", "शेती", "पाणी", "खत",
}

var hindiMarkers = []string{
	"कैसे", "करें", "है", "हैं", "का", "की", "के", "को", "में", "और", "या", "फसल", "खेती", "पानी", "खाद",
}

// Detect counts which marker list has more substring hits. On a tie, any
// non-ASCII rune means Marathi; otherwise English.
func Detect(text string) Language {
	mr := countMarkers(text, marathiMarkers)
	hi := countMarkers(text, hindiMarkers)

	switch {
	case mr > hi:
		return Marathi
	case hi > mr:
		return Hindi
	case hasNonASCII(text):
		return Marathi
	default:
		return English
	}
}

// countMarkers counts markers present in text, not occurrences of each.
func countMarkers(text string, markers []string) int {
	n := 0
	for _, m := range markers {
		if strings.Contains(text, m) {
			n++
		}
	}
	return n
}

func hasNonASCII(text string) bool {
	for _, r := range text {
		if r > 127 {
			return true
		}
	}
	return false
}
