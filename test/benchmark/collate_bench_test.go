package benchmark

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/muyun-chen/stroke-sort/internal/collation"
	"github.com/muyun-chen/stroke-sort/internal/collation/codetable"
	"github.com/muyun-chen/stroke-sort/internal/collation/surname"
)

// newBenchCollator builds a collator over a synthetic code table covering a
// block of CJK characters, with a handful of compound surnames.
func newBenchCollator(tableSize int) *collation.Collator {
	records := make([]codetable.Record, 0, tableSize)
	for i := 0; i < tableSize; i++ {
		r := rune(0x4E00 + i)
		records = append(records, codetable.Record{
			Word:  string(r),
			Order: fmt.Sprintf("%d", i%2000),
		})
	}
	table := codetable.Build(records, "")
	set := surname.NewSet([]string{"欧阳", "司马", "上官", "诸葛", "东方"})
	return collation.New(table, set)
}

func randomNames(n int, rng *rand.Rand) []string {
	names := make([]string, n)
	for i := range names {
		length := 2 + rng.Intn(2)
		runes := make([]rune, length)
		for j := range runes {
			runes[j] = rune(0x4E00 + rng.Intn(3000))
		}
		names[i] = string(runes)
	}
	return names
}

func BenchmarkCompareNames(b *testing.B) {
	c := newBenchCollator(3000)
	rng := rand.New(rand.NewSource(1))
	names := randomNames(1000, rng)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a := names[i%len(names)]
		z := names[(i+1)%len(names)]
		_ = c.CompareNames(a, z)
	}
}

func BenchmarkSort(b *testing.B) {
	sizes := []int{100, 1000, 10000}
	for _, size := range sizes {
		b.Run(fmt.Sprintf("names_%d", size), func(b *testing.B) {
			c := newBenchCollator(3000)
			rng := rand.New(rand.NewSource(1))
			base := randomNames(size, rng)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				names := make([]string, len(base))
				copy(names, base)
				b.StartTimer()
				if err := c.Sort(names); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkSortParallel(b *testing.B) {
	c := newBenchCollator(3000)
	rng := rand.New(rand.NewSource(1))
	base := randomNames(500, rng)
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			names := make([]string, len(base))
			copy(names, base)
			if err := c.Sort(names); err != nil {
				b.Error(err)
				return
			}
		}
	})
}
