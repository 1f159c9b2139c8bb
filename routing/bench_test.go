package routing_test

import (
	"testing"

	"github.com/katalvlaran/borderpath/preload"
	"github.com/katalvlaran/borderpath/routing"
)

// BenchmarkFindRoute measures typical queries on the embedded world dataset.
func BenchmarkFindRoute(b *testing.B) {
	g, err := preload.LoadDefault()
	if err != nil {
		b.Fatal(err)
	}
	r, err := routing.New(g)
	if err != nil {
		b.Fatal(err)
	}

	cases := []struct {
		name                string
		origin, destination string
	}{
		{"LongRoute", "PRT", "VNM"},
		{"Neighbors", "CZE", "AUT"},
		{"ShortRoute", "CZE", "ITA"},
		{"DifferentComponents", "USA", "FRA"},
		{"SameCountry", "DEU", "deu"},
		{"UnknownCountry", "ZZZ", "DEU"},
	}
	for _, bc := range cases {
		b.Run(bc.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = r.FindRoute(bc.origin, bc.destination)
			}
		})
	}
}

// BenchmarkLoadDefault measures parsing and building the embedded dataset.
func BenchmarkLoadDefault(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := preload.LoadDefault(); err != nil {
			b.Fatal(err)
		}
	}
}
