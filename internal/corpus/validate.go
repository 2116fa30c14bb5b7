package corpus

import (
	"fmt"
	"math"

	"ecorpus/internal/flog"
)

// Counts is a per-value tally.
type Counts [256]uint64

func (c *Counts) Add(b byte) {
	c[b]++
}

// Observed returns the alphabet of values with a non-zero count, or nil
// when nothing was counted.
func (c *Counts) Observed() *Alphabet {
	a := &Alphabet{}
	for i, n := range c {
		if n > 0 {
			a.add(byte(i))
		}
	}
	if a.count == 0 {
		return nil
	}
	return a
}

type Outlier struct {
	Value byte
	Count uint64
}

// Report summarizes how evenly a tally spreads over an alphabet.
type Report struct {
	Size      int
	Total     uint64
	Mean      float64
	StdDev    float64
	Outliers  []Outlier
	Uncovered []byte
}

// Validate computes the mean and population standard deviation of the
// counts of alphabet members. Two-sigma outliers are only scanned when the
// deviation exceeds 1; below that the tally counts as uniform, which is
// typical of short uniform-cycling runs.
func Validate(c *Counts, a *Alphabet) Report {
	r := Report{Size: a.Len()}
	if r.Size == 0 {
		return r
	}
	vals := a.Values()
	for _, v := range vals {
		r.Total += c[v]
		if c[v] == 0 {
			r.Uncovered = append(r.Uncovered, v)
		}
	}
	r.Mean = float64(r.Total) / float64(r.Size)

	var sumSq float64
	for _, v := range vals {
		d := float64(c[v]) - r.Mean
		sumSq += d * d
	}
	r.StdDev = math.Sqrt(sumSq / float64(r.Size))

	if r.StdDev > 1 {
		lo := r.Mean - 2*r.StdDev
		hi := r.Mean + 2*r.StdDev
		for _, v := range vals {
			n := float64(c[v])
			if n < lo || n > hi {
				r.Outliers = append(r.Outliers, Outlier{Value: v, Count: c[v]})
			}
		}
	}
	return r
}

func (r Report) Covered() bool {
	return len(r.Uncovered) == 0
}

// CoverageError returns ErrCoverage naming the first uncovered value, or
// nil when every alphabet value was produced.
func (r Report) CoverageError(size uint32) error {
	if r.Covered() {
		return nil
	}
	return fmt.Errorf("%w: byte (%d) not covered, try increasing the corpus size from %d",
		ErrCoverage, r.Uncovered[0], size)
}

func (r Report) Log() {
	flog.Infof("mean count per byte value = %.2f", r.Mean)
	flog.Infof("standard deviation: %.2f", r.StdDev)
	if len(r.Outliers) == 0 {
		return
	}
	flog.Infof("two standard deviations outliers:")
	for _, o := range r.Outliers {
		flog.Infof(" byte value = %d  count = %d", o.Value, o.Count)
	}
	flog.Infof("total outlier count: %d", len(r.Outliers))
}
