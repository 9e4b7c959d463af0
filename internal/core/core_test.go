package core

import (
	"testing"
	"time"
)

func TestPackUnpackRoundTrip(t *testing.T) {
	for r := 0; r < 256; r += 3 {
		for g := 0; g < 256; g += 5 {
			for b := 0; b < 256; b++ {
				c := RGB(uint8(r), uint8(g), uint8(b))
				if got := Unpack(c.Pack()); got != c {
					t.Fatalf("Unpack(Pack(%v)) = %v", c, got)
				}
			}
		}
	}
	if got := RGB(1, 2, 3).Pack(); got != 65536+2*256+3 {
		t.Fatalf("Pack(1,2,3) = %d", got)
	}
	if got := Unpack(0xffffff); got != RGB(255, 255, 255) {
		t.Fatalf("Unpack(0xffffff) = %v", got)
	}
}

func TestColorSum(t *testing.T) {
	if got := RGB(255, 255, 255).Sum(); got != 765 {
		t.Fatalf("white sum = %d, want 765", got)
	}
	if got := RGB(10, 20, 30).Sum(); got != 60 {
		t.Fatalf("sum = %d, want 60", got)
	}
}

func TestFillBlockClipsAtEdges(t *testing.T) {
	buf := NewBuffer(5, 3)
	c := RGB(9, 8, 7)
	buf.FillBlock(3, 2, 4, c)

	for y := 0; y < buf.H; y++ {
		for x := 0; x < buf.W; x++ {
			i := buf.Index(x, y)
			inside := x >= 3 && y >= 2
			if inside {
				if buf.At(x, y) != c || buf.Pix[i+3] != 255 {
					t.Fatalf("pixel (%d,%d) not filled", x, y)
				}
				continue
			}
			if buf.Pix[i+3] != 0 {
				t.Fatalf("pixel (%d,%d) outside the block was written", x, y)
			}
		}
	}
}

func TestBufferBlocks(t *testing.T) {
	buf := NewBuffer(25, 10)
	cols, rows := buf.Blocks(10)
	if cols != 3 || rows != 1 {
		t.Fatalf("Blocks(10) = %d,%d want 3,1", cols, rows)
	}
	cols, rows = buf.Blocks(0)
	if cols != 25 || rows != 10 {
		t.Fatalf("Blocks(0) = %d,%d want 25,10", cols, rows)
	}
}

func TestNewBufferNegative(t *testing.T) {
	buf := NewBuffer(-3, 4)
	if buf.W != 0 || len(buf.Pix) != 0 {
		t.Fatalf("expected empty buffer, got %dx%d with %d bytes", buf.W, buf.H, len(buf.Pix))
	}
}

func TestIntervalDue(t *testing.T) {
	clock := time.Unix(100, 0)
	iv := NewInterval(time.Second)
	iv.now = func() time.Time { return clock }

	if iv.Due() {
		t.Fatal("interval must not fire on the first poll")
	}
	clock = clock.Add(600 * time.Millisecond)
	if iv.Due() {
		t.Fatal("interval fired before the period elapsed")
	}
	clock = clock.Add(500 * time.Millisecond)
	if !iv.Due() {
		t.Fatal("interval should fire once the period elapsed")
	}
	if iv.Due() {
		t.Fatal("interval fired twice for one period")
	}
	iv.Reset()
	clock = clock.Add(999 * time.Millisecond)
	if iv.Due() {
		t.Fatal("Reset should restart the countdown")
	}
}

func TestIntervalDefaultPeriod(t *testing.T) {
	if got := NewInterval(0).Period(); got != 5*time.Second {
		t.Fatalf("default period = %v, want 5s", got)
	}
}

func TestSnapshotFind(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{{
		Name:   "Canvas",
		Params: []Parameter{{Key: "width", Value: "10"}},
	}}}
	if p, ok := snap.Find("width"); !ok || p.Value != "10" {
		t.Fatalf("Find(width) = %+v, %v", p, ok)
	}
	if _, ok := snap.Find("missing"); ok {
		t.Fatal("Find should miss unknown keys")
	}
}
