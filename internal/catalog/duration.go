package catalog

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	hoursRe   = regexp.MustCompile(`(\d+)H`)
	minutesRe = regexp.MustCompile(`(\d+)M`)
	secondsRe = regexp.MustCompile(`(\d+)S`)
)

// ParseDuration converts a compact duration code like "PT1H2M30S" into
// minutes. Missing or unparseable components count as zero; it never fails.
func ParseDuration(code string) float64 {
	code = strings.TrimPrefix(code, "PT")

	var total float64
	if n, ok := component(hoursRe, code); ok {
		total += n * 60
	}
	if n, ok := component(minutesRe, code); ok {
		total += n
	}
	if n, ok := component(secondsRe, code); ok {
		total += n / 60
	}
	return total
}

func component(re *regexp.Regexp, s string) (float64, bool) {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	n, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
