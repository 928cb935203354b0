// internals/features/submissions/service/scorer.go
package service

import "math/rand"

// Scorer memberi nilai sebuah submission setelah ingest. Injectable supaya
// algoritma penilaian sungguhan bisa disubstitusi nanti.
type Scorer func() int

// RandomScorer: placeholder — integer acak di [min, max].
func RandomScorer(min, max int) Scorer {
	if max < min {
		min, max = max, min
	}
	return func() int {
		return min + rand.Intn(max-min+1)
	}
}

// DefaultScorer dipakai saat tidak ada Scorer yang diinject.
func DefaultScorer() Scorer { return RandomScorer(60, 100) }
