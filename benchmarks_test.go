package classix

import (
	"strings"
	"testing"
)

var benchmarkText = strings.Repeat("The quick brown fox jumps over the lazy dog. ", 64)

func BenchmarkCaesar(b *testing.B) {
	var enc Encoder
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := enc.Caesar(benchmarkText, DefaultShift, false); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkVigenere(b *testing.B) {
	var enc Encoder
	p := VigenereParams{Key: "LEMON"}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := enc.Vigenere(benchmarkText, p); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkHill(b *testing.B) {
	var enc Encoder
	for _, key := range []string{"DCFH", "GYBNQKURP"} {
		b.Run(key, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := enc.Hill(benchmarkText, key, false); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkGenerateHillKey(b *testing.B) {
	rng := newTestRand()
	for i := 0; i < b.N; i++ {
		if _, err := GenerateHillKey(rng, Latin, 3); err != nil {
			b.Fatal(err)
		}
	}
}
