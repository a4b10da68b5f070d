// Package timeutil parses the compact report windows accepted by the CLI.
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DefaultWindow is used when no window is given.
const DefaultWindow = "1w"

type unit struct {
	token   string
	value   time.Duration
	aliases []string
}

var (
	units = []unit{
		{"w", 7 * 24 * time.Hour, []string{"wk", "wks", "week", "weeks"}},
		{"d", 24 * time.Hour, []string{"day", "days"}},
		{"h", time.Hour, []string{"hr", "hrs", "hour", "hours"}},
		{"m", time.Minute, []string{"min", "mins", "minute", "minutes"}},
		{"s", time.Second, []string{"sec", "secs", "second", "seconds"}},
	}
	byName = func() map[string]time.Duration {
		m := make(map[string]time.Duration)
		for _, u := range units {
			m[u.token] = u.value
			for _, a := range u.aliases {
				m[a] = u.value
			}
		}
		return m
	}()
	segment = regexp.MustCompile(`^(\d+)\s*([a-z]+)\s*`)
)

// ParseWindow parses windows such as "3d", "1w2d6h" or "2 days" and returns
// the duration with its canonical compact label.
func ParseWindow(input string) (time.Duration, string, error) {
	rest := strings.ToLower(strings.TrimSpace(input))
	if rest == "" {
		rest = DefaultWindow
	}

	var total time.Duration
	for rest != "" {
		m := segment.FindStringSubmatch(rest)
		if m == nil {
			return 0, "", fmt.Errorf("invalid window segment %q", rest)
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, "", fmt.Errorf("invalid window count %q: %w", m[1], err)
		}
		per, ok := byName[m[2]]
		if !ok {
			return 0, "", fmt.Errorf("unknown window unit %q", m[2])
		}
		total += time.Duration(n) * per
		rest = rest[len(m[0]):]
	}
	if total <= 0 {
		return 0, "", fmt.Errorf("window %q must be positive", input)
	}
	return total, FormatWindow(total), nil
}

// FormatWindow renders d with the largest units first, for example "1w2d".
func FormatWindow(d time.Duration) string {
	if d <= 0 {
		return "0s"
	}
	var b strings.Builder
	for _, u := range units {
		if d < u.value {
			continue
		}
		n := d / u.value
		d -= n * u.value
		fmt.Fprintf(&b, "%d%s", n, u.token)
	}
	if b.Len() == 0 {
		return "0s"
	}
	return b.String()
}
