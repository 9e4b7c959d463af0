package stats

import (
	"errors"
	"testing"

	"pixel-art/internal/core"
)

func fill(w, h, size int, colors ...core.Color) *core.Buffer {
	buf := core.NewBuffer(w, h)
	i := 0
	for y := 0; y < h; y += size {
		for x := 0; x < w; x += size {
			buf.FillBlock(x, y, size, colors[i%len(colors)])
			i++
		}
	}
	return buf
}

func TestBlockCount(t *testing.T) {
	tests := []struct {
		w, h, p int
		want    float64
	}{
		{100, 100, 10, 100},
		{20, 10, 10, 2},
		{10, 10, 3, 11.11},
		{7, 3, 2, 5.25},
		{5, 5, 0, 25},
	}
	for _, tc := range tests {
		if got := BlockCount(tc.w, tc.h, tc.p); got != tc.want {
			t.Fatalf("BlockCount(%d, %d, %d) = %v, want %v", tc.w, tc.h, tc.p, got, tc.want)
		}
	}
}

func TestHistoryRecord(t *testing.T) {
	var h History
	if b := h.Record(10); b.TimesGenerated != 1 || b.AverageGenerationTime != 10 || b.GenerationTime != 10 {
		t.Fatalf("first record = %+v", b)
	}
	h.Record(3)
	b := h.Record(4)
	if b.TimesGenerated != 3 {
		t.Fatalf("TimesGenerated = %d, want 3", b.TimesGenerated)
	}
	if b.AverageGenerationTime != 5 {
		t.Fatalf("AverageGenerationTime = %d, want floor(17/3) = 5", b.AverageGenerationTime)
	}
	if h.Count() != 3 {
		t.Fatalf("Count() = %d", h.Count())
	}
}

func TestHexRoundTrip(t *testing.T) {
	for _, c := range []core.Color{
		core.RGB(0, 0, 0),
		core.RGB(255, 255, 255),
		core.RGB(1, 2, 3),
		core.RGB(171, 205, 239),
		core.RGB(128, 127, 129),
	} {
		hex := RGBToHex(c)
		got, err := HexToRGB(hex)
		if err != nil {
			t.Fatalf("HexToRGB(%q): %v", hex, err)
		}
		if got != c {
			t.Fatalf("round trip of %v through %q gave %v", c, hex, got)
		}
	}
	if got := RGBToHex(core.RGB(1, 2, 3)); got != "#010203" {
		t.Fatalf("RGBToHex = %q, want #010203", got)
	}
	if got := PackedToHex(0xabcdef); got != "#abcdef" {
		t.Fatalf("PackedToHex = %q", got)
	}
	if got, err := HexToRGB("ff8000"); err != nil || got != core.RGB(255, 128, 0) {
		t.Fatalf("HexToRGB without # = %v, %v", got, err)
	}
	if _, err := HexToRGB("#zzzzzz"); err == nil {
		t.Fatal("expected an error for an invalid hex string")
	}
}

func TestExtremesAndUniqueColors(t *testing.T) {
	red := core.RGB(200, 0, 0)
	gray := core.RGB(100, 100, 100)
	navy := core.RGB(0, 0, 60)
	buf := fill(30, 10, 10, red, gray, navy)

	adv, err := ComputeAdvanced(buf, 10, 5)
	if err != nil {
		t.Fatal(err)
	}
	if adv.UniqueColors != 3 {
		t.Fatalf("UniqueColors = %d, want 3", adv.UniqueColors)
	}
	if adv.Darkest.Color != navy || adv.Darkest.Value != 60 {
		t.Fatalf("Darkest = %+v", adv.Darkest)
	}
	if adv.Lightest.Color != gray || adv.Lightest.Value != 300 {
		t.Fatalf("Lightest = %+v", adv.Lightest)
	}
	if adv.Blocks != 3 {
		t.Fatalf("Blocks = %d", adv.Blocks)
	}
}

func TestExtremesOfUniformImages(t *testing.T) {
	white := fill(4, 4, 2, core.RGB(255, 255, 255))
	adv, err := ComputeAdvanced(white, 2, 5)
	if err != nil {
		t.Fatal(err)
	}
	// White never beats the initial darkest, so it stays white.
	if adv.Darkest.Color != core.RGB(255, 255, 255) || adv.Lightest.Color != core.RGB(255, 255, 255) {
		t.Fatalf("white image extremes: %+v / %+v", adv.Darkest, adv.Lightest)
	}

	black := fill(4, 4, 2, core.RGB(0, 0, 0))
	adv, err = ComputeAdvanced(black, 2, 5)
	if err != nil {
		t.Fatal(err)
	}
	if adv.Darkest.Color != (core.Color{}) || adv.Lightest.Color != (core.Color{}) || adv.Lightest.Value != 0 {
		t.Fatalf("black image extremes: %+v / %+v", adv.Darkest, adv.Lightest)
	}
}

func TestTopColorsTiesKeepEncounterOrder(t *testing.T) {
	a := core.RGB(1, 1, 1)
	b := core.RGB(2, 2, 2)
	c := core.RGB(3, 3, 3)
	d := core.RGB(4, 4, 4)
	// Row-major: a b c d | c b a d | d d c b
	buf := core.NewBuffer(4, 3)
	for i, col := range []core.Color{a, b, c, d, c, b, a, d, d, d, c, b} {
		buf.Set(i%4, i/4, col)
	}

	adv, err := ComputeAdvanced(buf, 1, 3)
	if err != nil {
		t.Fatal(err)
	}
	// Counts: a 2, b 3, c 3, d 4.
	want := []Swatch{swatch(d, 4), swatch(b, 3), swatch(c, 3)}
	if len(adv.TopColors) != len(want) {
		t.Fatalf("TopColors = %+v", adv.TopColors)
	}
	for i := range want {
		if adv.TopColors[i] != want[i] {
			t.Fatalf("TopColors[%d] = %+v, want %+v", i, adv.TopColors[i], want[i])
		}
	}
	if adv.LongestRun.Color != d || adv.LongestRun.Value != 3 {
		t.Fatalf("LongestRun = %+v, want d x3", adv.LongestRun)
	}
}

func TestTopColorsDefaultLimit(t *testing.T) {
	var colors []core.Color
	for i := 0; i < 8; i++ {
		colors = append(colors, core.RGB(uint8(i), 0, 0))
	}
	adv, err := ComputeAdvanced(fill(8, 1, 1, colors...), 1, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(adv.TopColors) != DefaultTopN {
		t.Fatalf("len(TopColors) = %d, want %d", len(adv.TopColors), DefaultTopN)
	}
	for i, s := range adv.TopColors {
		if s.Color != colors[i] {
			t.Fatalf("TopColors[%d] = %v, want encounter order", i, s.Color)
		}
	}
}

func TestLongestRunFirstWins(t *testing.T) {
	a := core.RGB(10, 0, 0)
	b := core.RGB(0, 10, 0)
	buf := core.NewBuffer(6, 1)
	for x, col := range []core.Color{a, a, b, b, a, b} {
		buf.Set(x, 0, col)
	}
	adv, err := ComputeAdvanced(buf, 1, 5)
	if err != nil {
		t.Fatal(err)
	}
	if adv.LongestRun.Color != a || adv.LongestRun.Value != 2 {
		t.Fatalf("LongestRun = %+v, want the first run of two", adv.LongestRun)
	}
}

func TestAverageRoundsHalfUp(t *testing.T) {
	buf := fill(2, 1, 1, core.RGB(0, 10, 255), core.RGB(1, 11, 254))
	adv, err := ComputeAdvanced(buf, 1, 5)
	if err != nil {
		t.Fatal(err)
	}
	if want := core.RGB(1, 11, 255); adv.Average.Color != want {
		t.Fatalf("Average = %v, want %v", adv.Average.Color, want)
	}
}

func TestSamplesTopLeftOfClippedBlocks(t *testing.T) {
	buf := fill(5, 5, 3, core.RGB(9, 9, 9), core.RGB(7, 7, 7))
	// Overwrite a pixel that is not a block corner; it must not be sampled.
	buf.Set(1, 1, core.RGB(255, 0, 0))
	adv, err := ComputeAdvanced(buf, 3, 5)
	if err != nil {
		t.Fatal(err)
	}
	if adv.Blocks != 4 || adv.UniqueColors != 2 {
		t.Fatalf("Blocks = %d, UniqueColors = %d", adv.Blocks, adv.UniqueColors)
	}
}

func TestEmptyBuffer(t *testing.T) {
	for _, buf := range []*core.Buffer{nil, core.NewBuffer(0, 0), core.NewBuffer(10, 0)} {
		if _, err := ComputeAdvanced(buf, 1, 5); !errors.Is(err, core.ErrEmptyBuffer) {
			t.Fatalf("ComputeAdvanced(%v) error = %v", buf, err)
		}
	}
	bad := &core.Buffer{W: 2, H: 2, Pix: make([]uint8, 4)}
	if _, err := ComputeAdvanced(bad, 1, 5); !errors.Is(err, core.ErrBufferSizeMismatch) {
		t.Fatalf("short buffer error = %v", err)
	}
}
