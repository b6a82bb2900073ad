package bump

import (
	"math/rand"
	"testing"
)

const KB = 1024
const MB = 1024 * KB

const benchCapacity = 4 * MB

type benchLayouts struct {
	name    string
	layouts []Layout
}

func benchLayoutSets() []benchLayouts {
	r := rand.New(rand.NewSource(42))
	small := make([]Layout, 1024)
	medium := make([]Layout, 1024)
	big := make([]Layout, 64)
	for i := range small {
		small[i] = Layout{Size: uintptr(1 + r.Intn(16)), Align: 1 << uint(r.Intn(4))}
	}
	for i := range medium {
		medium[i] = Layout{Size: uintptr(64 + r.Intn(512)), Align: 1 << uint(r.Intn(7))}
	}
	for i := range big {
		big[i] = Layout{Size: uintptr(16*KB + r.Intn(32*KB)), Align: 64}
	}
	return []benchLayouts{
		{name: "small", layouts: small},
		{name: "medium", layouts: medium},
		{name: "big", layouts: big},
	}
}

func benchmarkVariant(b *testing.B, v variant) {
	for _, set := range benchLayoutSets() {
		for _, s := range strategies {
			set, s := set, s
			b.Run(v.name+"/"+s.name+"/"+set.name, func(b *testing.B) {
				b.ReportAllocs()
				a, err := v.newArena(benchCapacity)
				if err != nil {
					b.Fatal(err)
				}
				defer a.Release()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					for _, l := range set.layouts {
						if _, allocErr := s.alloc(a, l); allocErr != nil {
							a.Clear()
						}
					}
				}
			})
		}
	}
}

func BenchmarkAlign8(b *testing.B) {
	for _, v := range variantsFor[Align8]() {
		benchmarkVariant(b, v)
	}
}

func BenchmarkAlign1(b *testing.B) {
	for _, v := range variantsFor[Align1]() {
		benchmarkVariant(b, v)
	}
}

func BenchmarkMakeSlice(b *testing.B) {
	b.ReportAllocs()
	a, err := NewUpArena[Align8](benchCapacity)
	if err != nil {
		b.Fatal(err)
	}
	defer a.Release()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, allocErr := MakeSlice[point](a, 64); allocErr != nil {
			a.Clear()
		}
	}
}
