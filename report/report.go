package report

import (
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/primeasn/internal/conv"
)

// Report is the outcome of one run.
type Report struct {
	// Sources are the dataset locations, in the order their candidates were read.
	Sources []string `json:"sources"`
	// Bound is the sieve's upper bound N.
	Bound int `json:"bound"`
	// Candidates is the number of candidate integers checked.
	Candidates int `json:"candidates"`
	// Primes are the prime candidates in input order.
	Primes []int `json:"primes"`
	// GeneratedAt is when the report was produced.
	GeneratedAt time.Time `json:"generated_at"`
}

// Bitmap returns the primes as a Roaring bitmap.
func (r *Report) Bitmap() (*roaring.Bitmap, error) {
	bm := roaring.New()
	for _, p := range r.Primes {
		v, err := conv.IntToUint32(p)
		if err != nil {
			return nil, err
		}
		bm.Add(v)
	}
	bm.RunOptimize()
	return bm, nil
}

// PrimesFromBitmap lists the members of bm in ascending order.
func PrimesFromBitmap(bm *roaring.Bitmap) ([]int, error) {
	out := make([]int, 0, bm.GetCardinality())
	it := bm.Iterator()
	for it.HasNext() {
		v, err := conv.Uint32ToInt(it.Next())
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
