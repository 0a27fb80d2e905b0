// SPDX-License-Identifier: GPL-3.0-or-later

package pdf

import "testing"

func TestParseDateStringMinutePrecisionWithOffset(t *testing.T) {
	got, err := ParseDateString("D:199812231952-08'00")
	if err != nil {
		t.Fatal(err)
	}
	want := DateTime{
		Year: 1998, Month: 12, Day: 23, Hour: 19, Minute: 52, Second: 0,
		Offset: -8 * 3600, Precision: PrecisionMinute,
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestParseDateStringDayOnly(t *testing.T) {
	got, err := ParseDateString("D:19981223")
	if err != nil {
		t.Fatal(err)
	}
	want := DateTime{Year: 1998, Month: 12, Day: 23, Precision: PrecisionDay}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestParseDateStringRejectsMissingPrefix(t *testing.T) {
	if _, err := ParseDateString("19981223"); err == nil {
		t.Error("expected an error for a date string lacking the D: prefix")
	}
}

func TestDateConverterParsesOnRead(t *testing.T) {
	c := dateConverter{}
	out, err := c.Convert(String("D:20230401"), nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	dt, ok := out.(DateTime)
	if !ok {
		t.Fatalf("expected DateTime, got %T", out)
	}
	if dt.Year != 2023 || dt.Month != 4 || dt.Day != 1 {
		t.Errorf("unexpected date %+v", dt)
	}
}

func TestDateConverterLeavesUnparsableStringAlone(t *testing.T) {
	c := dateConverter{}
	out, err := c.Convert(String("not a date"), nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := out.(String); !ok {
		t.Errorf("expected the raw string to pass through unchanged, got %T", out)
	}
}
