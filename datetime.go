// SPDX-License-Identifier: GPL-3.0-or-later

package pdf

import (
	"fmt"
	"io"
	"strconv"
	"time"
)

// DatePrecision records how much of a date string was actually
// present, so Format can round-trip a partially-specified date
// (spec §8 scenario 2: "D:19981223" must not grow spurious
// hour/minute/second fields on re-encode).
type DatePrecision int

const (
	PrecisionYear DatePrecision = iota
	PrecisionMonth
	PrecisionDay
	PrecisionHour
	PrecisionMinute
	PrecisionSecond
)

// DateTime is the decoded form of a PDF date string (spec §4.D #4).
type DateTime struct {
	Year      int
	Month     int
	Day       int
	Hour      int
	Minute    int
	Second    int
	Offset    int // seconds east of UTC; 0 for 'Z' or unspecified
	Precision DatePrecision
}

// PDF implements Object, rendering the date back into its string
// form.
func (d DateTime) PDF(w io.Writer) error {
	return String(d.Format()).PDF(w)
}

// Format renders d as a PDF date string, truncated to its recorded
// precision.
func (d DateTime) Format() string {
	s := fmt.Sprintf("D:%04d", d.Year)
	if d.Precision < PrecisionMonth {
		return s
	}
	s += fmt.Sprintf("%02d", d.Month)
	if d.Precision < PrecisionDay {
		return s
	}
	s += fmt.Sprintf("%02d", d.Day)
	if d.Precision < PrecisionHour {
		return s
	}
	s += fmt.Sprintf("%02d", d.Hour)
	if d.Precision < PrecisionMinute {
		return s
	}
	s += fmt.Sprintf("%02d", d.Minute)
	if d.Precision < PrecisionSecond {
		return s
	}
	s += fmt.Sprintf("%02d", d.Second)

	switch {
	case d.Offset == 0:
		s += "Z"
	case d.Offset > 0:
		s += fmt.Sprintf("+%02d'%02d'", d.Offset/3600, (d.Offset%3600)/60)
	default:
		neg := -d.Offset
		s += fmt.Sprintf("-%02d'%02d'", neg/3600, (neg%3600)/60)
	}
	return s
}

// ToTime converts d to a time.Time in a fixed zone matching its
// recorded UTC offset.
func (d DateTime) ToTime() time.Time {
	loc := time.FixedZone("", d.Offset)
	return time.Date(d.Year, time.Month(maxInt(d.Month, 1)), maxInt(d.Day, 1), d.Hour, d.Minute, d.Second, 0, loc)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// ParseDateString parses a PDF date string of the form
// "D:YYYY[MM[DD[hh[mm[ss[O[HH'[mm']]]]]]]]" (spec §4.D #4, §8
// scenarios 1-2). The leading "D:" is required, as the source treats
// dates lacking it as a plain string rather than attempting a lenient
// parse.
func ParseDateString(s string) (DateTime, error) {
	if len(s) < 6 || s[:2] != "D:" {
		return DateTime{}, fmt.Errorf("pdf: not a date string: %q", s)
	}
	body := s[2:]

	readDigits := func(n int) (int, bool) {
		if len(body) < n {
			return 0, false
		}
		v, err := strconv.Atoi(body[:n])
		if err != nil {
			return 0, false
		}
		body = body[n:]
		return v, true
	}

	year, ok := readDigits(4)
	if !ok {
		return DateTime{}, fmt.Errorf("pdf: malformed date string: %q", s)
	}
	d := DateTime{Year: year, Month: 1, Day: 1, Precision: PrecisionYear}

	if month, ok := readDigits(2); ok {
		d.Month = month
		d.Precision = PrecisionMonth
	} else {
		return d, nil
	}

	if day, ok := readDigits(2); ok {
		d.Day = day
		d.Precision = PrecisionDay
	} else {
		return d, nil
	}

	if hour, ok := readDigits(2); ok {
		d.Hour = hour
		d.Precision = PrecisionHour
	} else {
		return d, nil
	}

	if minute, ok := readDigits(2); ok {
		d.Minute = minute
		d.Precision = PrecisionMinute
	} else {
		return d, nil
	}

	if len(body) > 0 && body[0] >= '0' && body[0] <= '9' {
		if sec, ok := readDigits(2); ok {
			d.Second = sec
			d.Precision = PrecisionSecond
		}
	}

	if len(body) == 0 || body == "Z" {
		return d, nil
	}

	sign := body[0]
	if sign != '+' && sign != '-' {
		return d, nil
	}
	body = body[1:]

	offHour, ok := readDigits(2)
	if !ok {
		return d, nil
	}
	offset := offHour * 3600

	if len(body) > 0 && body[0] == '\'' {
		body = body[1:]
		if offMin, ok := readDigits(2); ok {
			offset += offMin * 60
		}
	}

	if sign == '-' {
		offset = -offset
	}
	d.Offset = offset
	return d, nil
}
