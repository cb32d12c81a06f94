//
// Copyright (c) 2020-2025 Markku Rossi
//
// All rights reserved.
//

// Package timing records timing samples of block compression runs and
// renders a profiling report.
package timing

import (
	"fmt"
	"io"
	"time"

	"github.com/markkurossi/tabulate"
)

// Timing records timing samples and renders a profiling report.
type Timing struct {
	Start   time.Time
	Samples []*Sample
}

// New creates a new Timing instance.
func New() *Timing {
	return &Timing{
		Start: time.Now(),
	}
}

// Sample adds a timing sample with label and the number of bytes
// processed since the previous sample.
func (t *Timing) Sample(label string, bytes uint64) *Sample {
	start := t.Start
	if len(t.Samples) > 0 {
		start = t.Samples[len(t.Samples)-1].End
	}
	sample := &Sample{
		Label: label,
		Start: start,
		End:   time.Now(),
		Bytes: bytes,
	}
	t.Samples = append(t.Samples, sample)
	return sample
}

// Total returns the total duration and the number of bytes of all
// samples.
func (t *Timing) Total() (time.Duration, uint64) {
	if len(t.Samples) == 0 {
		return 0, 0
	}
	var bytes uint64
	for _, sample := range t.Samples {
		bytes += sample.Bytes
	}
	return t.Samples[len(t.Samples)-1].End.Sub(t.Start), bytes
}

// Print prints profiling report to out.
func (t *Timing) Print(out io.Writer) {
	if len(t.Samples) == 0 {
		return
	}

	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Op").SetAlign(tabulate.ML)
	tab.Header("Time").SetAlign(tabulate.MR)
	tab.Header("%").SetAlign(tabulate.MR)
	tab.Header("Data").SetAlign(tabulate.MR)
	tab.Header("Rate").SetAlign(tabulate.MR)

	total, bytes := t.Total()
	for _, sample := range t.Samples {
		row := tab.Row()
		row.Column(sample.Label)

		duration := sample.Duration()
		row.Column(duration.String())
		row.Column(fmt.Sprintf("%.2f%%",
			float64(duration)/float64(total)*100))
		row.Column(ByteSize(sample.Bytes).String())
		row.Column(Rate(sample.Bytes, duration))

		for idx, sub := range sample.Samples {
			row := tab.Row()

			var prefix string
			if idx+1 >= len(sample.Samples) {
				prefix = "\u2570\u2574"
			} else {
				prefix = "\u251C\u2574"
			}
			row.Column(prefix + sub.Label).SetFormat(tabulate.FmtItalic)

			d := sub.Duration()
			row.Column(d.String()).SetFormat(tabulate.FmtItalic)
			row.Column(
				fmt.Sprintf("%.2f%%", float64(d)/float64(duration)*100)).
				SetFormat(tabulate.FmtItalic)
			row.Column(ByteSize(sub.Bytes).String()).
				SetFormat(tabulate.FmtItalic)
			row.Column(Rate(sub.Bytes, d)).SetFormat(tabulate.FmtItalic)
		}
	}
	row := tab.Row()
	row.Column("Total").SetFormat(tabulate.FmtBold)
	row.Column(total.String()).SetFormat(tabulate.FmtBold)
	row.Column("").SetFormat(tabulate.FmtBold)
	row.Column(ByteSize(bytes).String()).SetFormat(tabulate.FmtBold)
	row.Column(Rate(bytes, total)).SetFormat(tabulate.FmtBold)

	tab.Print(out)
}

// Sample contains information about one timing sample.
type Sample struct {
	Label   string
	Start   time.Time
	End     time.Time
	Abs     time.Duration
	Bytes   uint64
	Samples []*Sample
}

// Duration returns the sample duration.
func (s *Sample) Duration() time.Duration {
	if s.Abs > 0 {
		return s.Abs
	}
	return s.End.Sub(s.Start)
}

// SubSample adds a sub-sample for a timing sample.
func (s *Sample) SubSample(label string, end time.Time, bytes uint64) {
	start := s.Start
	if len(s.Samples) > 0 {
		start = s.Samples[len(s.Samples)-1].End
	}
	s.Samples = append(s.Samples, &Sample{
		Label: label,
		Start: start,
		End:   end,
		Bytes: bytes,
	})
}

// AbsSubSample adds an absolute sub-sample for a timing sample.
func (s *Sample) AbsSubSample(label string, duration time.Duration,
	bytes uint64) {
	s.Samples = append(s.Samples, &Sample{
		Label: label,
		Abs:   duration,
		Bytes: bytes,
	})
}

// ByteSize is a data size in bytes.
type ByteSize uint64

func (s ByteSize) String() string {
	if s > 1000*1000*1000*1000 {
		return fmt.Sprintf("%d TB", s/(1000*1000*1000*1000))
	} else if s > 1000*1000*1000 {
		return fmt.Sprintf("%d GB", s/(1000*1000*1000))
	} else if s > 1000*1000 {
		return fmt.Sprintf("%d MB", s/(1000*1000))
	} else if s > 1000 {
		return fmt.Sprintf("%d kB", s/1000)
	} else {
		return fmt.Sprintf("%d B", s)
	}
}

// Rate formats the throughput of bytes processed in duration d.
func Rate(bytes uint64, d time.Duration) string {
	if d <= 0 {
		return "-"
	}
	perSec := uint64(float64(bytes) / d.Seconds())
	return ByteSize(perSec).String() + "/s"
}
