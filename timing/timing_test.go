//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package timing

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

var byteSizeTests = []struct {
	size     ByteSize
	expected string
}{
	{0, "0 B"},
	{1000, "1000 B"},
	{1001, "1 kB"},
	{64 * 1000 * 1000, "64 MB"},
	{3 * 1000 * 1000 * 1000, "3 GB"},
	{5000 * 1000 * 1000 * 1000, "5 TB"},
}

func TestByteSize(t *testing.T) {
	for _, test := range byteSizeTests {
		if s := test.size.String(); s != test.expected {
			t.Errorf("ByteSize(%d)=%q, expected %q",
				uint64(test.size), s, test.expected)
		}
	}
}

func TestRate(t *testing.T) {
	if r := Rate(2000*1000, time.Second); r != "2 MB/s" {
		t.Errorf("Rate=%q, expected %q", r, "2 MB/s")
	}
	if r := Rate(100, 0); r != "-" {
		t.Errorf("Rate with zero duration=%q, expected %q", r, "-")
	}
}

func TestTiming(t *testing.T) {
	timing := New()
	if d, b := timing.Total(); d != 0 || b != 0 {
		t.Fatalf("empty Total: %v %v", d, b)
	}

	s := timing.Sample("grouped", 6400)
	s.AbsSubSample("expand", time.Millisecond, 6400)
	timing.Sample("sequential", 3200)

	_, b := timing.Total()
	if b != 9600 {
		t.Errorf("Total bytes=%d, expected 9600", b)
	}

	var out bytes.Buffer
	timing.Print(&out)
	report := out.String()
	for _, label := range []string{"grouped", "sequential", "expand", "Total"} {
		if !strings.Contains(report, label) {
			t.Errorf("report does not contain %q:\n%s", label, report)
		}
	}
}

func TestSubSample(t *testing.T) {
	timing := New()
	mid := timing.Start.Add(time.Millisecond)
	end := timing.Start.Add(3 * time.Millisecond)

	s := &Sample{
		Label: "stream",
		Start: timing.Start,
		End:   end,
		Bytes: 128,
	}
	s.SubSample("expand", mid, 128)
	s.SubSample("compress", end, 128)

	if len(s.Samples) != 2 {
		t.Fatalf("%d sub-samples, expected 2", len(s.Samples))
	}
	if d := s.Samples[0].Duration(); d != time.Millisecond {
		t.Errorf("expand: %v, expected %v", d, time.Millisecond)
	}
	if !s.Samples[1].Start.Equal(mid) {
		t.Errorf("compress does not start where expand ends")
	}
	if d := s.Samples[1].Duration(); d != 2*time.Millisecond {
		t.Errorf("compress: %v, expected %v", d, 2*time.Millisecond)
	}
}
