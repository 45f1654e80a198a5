package hunkicon

import (
	"io"
	"testing"
)

func Benchmark_Render(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := g.Render(DefaultTheme); err != nil {
			b.FailNow()
		}
	}
}

func Benchmark_EncodePNG(b *testing.B) {
	raw, err := g.Render(DefaultTheme)
	if err != nil {
		b.Fatalf("could not render the sample icon: %v", err)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if err := EncodePNG(io.Discard, testSize, testSize, raw); err != nil {
			b.FailNow()
		}
	}
}
