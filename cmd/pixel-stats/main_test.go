package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"pixel-art/internal/algorithm"
	"pixel-art/internal/palette"
)

func TestSweepCoversEveryCombination(t *testing.T) {
	cmd := &SweepCmd{Width: 24, Height: 16, PixelSize: 2, Runs: 2, Workers: 3, Stats: true}
	results, err := cmd.sweep(context.Background(), 11)
	if err != nil {
		t.Fatal(err)
	}
	if want := len(palette.All()) * len(algorithm.All()); len(results) != want {
		t.Fatalf("got %d results, want %d", len(results), want)
	}
	seen := map[[2]int]bool{}
	for i, r := range results {
		seen[[2]int{int(r.Palette), int(r.Algorithm)}] = true
		if r.Unique < 1 {
			t.Fatalf("%s / %s reported %d unique colors", r.Palette, r.Algorithm, r.Unique)
		}
		if i > 0 && results[i-1].Elapsed < r.Elapsed {
			t.Fatal("results are not sorted slowest first")
		}
	}
	if len(seen) != len(results) {
		t.Fatalf("duplicate combinations: %d distinct of %d", len(seen), len(results))
	}

	var out bytes.Buffer
	if err := writeSweep(&out, results); err != nil {
		t.Fatal(err)
	}
	if lines := strings.Count(out.String(), "\n"); lines != len(results)+1 {
		t.Fatalf("table has %d lines", lines)
	}
}

func TestGenerateOutput(t *testing.T) {
	cmd := &GenerateCmd{
		ImageFlags: ImageFlags{Width: 20, Height: 10, PixelSize: 10, Palette: "Warm", Algorithm: "Standard", Top: 5},
		Count:      2,
		Thumbnail:  8,
		Bars:       true,
	}
	if err := cmd.Validate(nil); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	if err := cmd.run(context.Background(), &out, 3); err != nil {
		t.Fatal(err)
	}
	s := out.String()
	for _, want := range []string{"Warm / Standard, 20x10, pixel size 10", "Blocks: 2", "Generated: 2 times", "Unique colors:", "data:image/png;base64,"} {
		if !strings.Contains(s, want) {
			t.Fatalf("output missing %q:\n%s", want, s)
		}
	}
}

func TestImageFlagsValidate(t *testing.T) {
	f := ImageFlags{Palette: "Nope", Algorithm: "Standard", Top: 5}
	if err := f.Validate(nil); err == nil {
		t.Fatal("unknown palette accepted")
	}
	f = ImageFlags{Palette: "Random", Algorithm: "Nope", Top: 5}
	if err := f.Validate(nil); err == nil {
		t.Fatal("unknown algorithm accepted")
	}
	f = ImageFlags{Palette: "Random", Algorithm: "Rings", Top: 0}
	if err := f.Validate(nil); err == nil {
		t.Fatal("zero top accepted")
	}
}
