package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Month prints a calendar of then's month with the days that have a non-zero
// count in bold.
func (pp *PrettyPrint) Month(then time.Time, count []int) {
	d := StartDay(then)

	tf := color.New(color.FgWhite, color.Italic)

	m := then.Month().String()
	mid := (width - len(m)) / 2
	_, _ = tf.Fprintf(pp.out(), "%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", width-mid-len(m)))

	// Pad out the start of the month.
	_, _ = fmt.Fprint(pp.out(), strings.Repeat("   ", int(d)))

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiGreen)

	for i := 0; i < DaysIn(then); i++ {
		if i < len(count) && count[i] > 0 {
			_, _ = l2.Fprintf(pp.out(), "%2d ", i+1)
		} else {
			_, _ = l1.Fprintf(pp.out(), "%2d ", i+1)
		}

		d++
		if d > time.Saturday {
			d = time.Sunday
			_, _ = fmt.Fprint(pp.out(), "\n")
		}
	}
	_, _ = fmt.Fprint(pp.out(), "\n\n")
}

// CompletedPerDay counts completions per day of then's month.
func CompletedPerDay(then time.Time, completed []time.Time) []int {
	count := make([]int, DaysIn(then))
	for _, at := range completed {
		at = at.In(then.Location())
		if at.Year() == then.Year() && at.Month() == then.Month() {
			count[at.Day()-1]++
		}
	}
	return count
}

func DaysIn(then time.Time) int {
	return time.Date(then.Year(), then.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func StartDay(then time.Time) time.Weekday {
	return time.Date(then.Year(), then.Month(), 1, 1, 0, 0, 0, time.UTC).Weekday()
}
