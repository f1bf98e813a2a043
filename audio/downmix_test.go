package audio

import (
	"errors"
	"math"
	"testing"
)

func TestDownmix_Stereo(t *testing.T) {
	t.Parallel()

	buf := NewBuffer(44100, 2, 4)
	buf.Data[0] = []float32{1.0, 0.5, -0.5, 0.0}
	buf.Data[1] = []float32{0.0, 0.5, -1.0, 0.0}

	out, err := Downmix(buf)
	if err != nil {
		t.Fatalf("Downmix() error = %v", err)
	}

	if out.Channels() != 1 {
		t.Fatalf("Channels() = %d, want 1", out.Channels())
	}

	if out.SampleRate != 44100 {
		t.Errorf("SampleRate = %d, want 44100", out.SampleRate)
	}

	want := []float32{0.5, 0.5, -0.75, 0.0}
	for i, w := range want {
		if out.Data[0][i] != w {
			t.Errorf("Data[0][%d] = %v, want %v", i, out.Data[0][i], w)
		}
	}
}

func TestDownmix_Quad(t *testing.T) {
	t.Parallel()

	buf := NewBuffer(48000, 4, 2)
	for ch := range buf.Data {
		buf.Data[ch][0] = 0.4
		buf.Data[ch][1] = float32(ch) * 0.1
	}

	out, err := Downmix(buf)
	if err != nil {
		t.Fatalf("Downmix() error = %v", err)
	}

	if out.Channels() != 1 {
		t.Fatalf("Channels() = %d, want 1", out.Channels())
	}

	if math.Abs(float64(out.Data[0][0])-0.4) > 1e-6 {
		t.Errorf("Data[0][0] = %v, want 0.4", out.Data[0][0])
	}

	// (0.0 + 0.1 + 0.2 + 0.3) / 4 = 0.15
	if math.Abs(float64(out.Data[0][1])-0.15) > 1e-6 {
		t.Errorf("Data[0][1] = %v, want 0.15", out.Data[0][1])
	}
}

func TestDownmix_GenericChannelCount(t *testing.T) {
	t.Parallel()

	// 6 channels of constant 0.5 average to 0.5
	buf := constantBuffer(48000, 6, 100, 0.5)

	out, err := Downmix(buf)
	if err != nil {
		t.Fatalf("Downmix() error = %v", err)
	}

	for i, s := range out.Data[0] {
		if math.Abs(float64(s)-0.5) > 1e-6 {
			t.Fatalf("Data[0][%d] = %v, want 0.5", i, s)
		}
	}
}

func TestDownmix_MonoPassthrough(t *testing.T) {
	t.Parallel()

	buf := sineBuffer(16000, 1, 1000, 440.0)

	out, err := Downmix(buf)
	if err != nil {
		t.Fatalf("Downmix() error = %v", err)
	}

	for i := range buf.Data[0] {
		if out.Data[0][i] != buf.Data[0][i] {
			t.Fatalf("Data[0][%d] = %v, want %v", i, out.Data[0][i], buf.Data[0][i])
		}
	}

	// Mono comes back as a copy, not the same slices
	out.Data[0][0] = 42
	if buf.Data[0][0] == 42 {
		t.Error("Downmix() aliases mono input")
	}
}

func TestDownmix_EmptyFrames(t *testing.T) {
	t.Parallel()

	buf := NewBuffer(8000, 2, 0)

	out, err := Downmix(buf)
	if err != nil {
		t.Fatalf("Downmix() error = %v", err)
	}

	if out.Frames() != 0 {
		t.Errorf("Frames() = %d, want 0", out.Frames())
	}
}

func TestDownmix_InvalidBuffer(t *testing.T) {
	t.Parallel()

	bad := &Buffer{SampleRate: 44100}

	if _, err := Downmix(bad); !errors.Is(err, ErrNoChannels) {
		t.Errorf("Downmix() error = %v, want ErrNoChannels", err)
	}
}

// BenchmarkDownmix measures folding one second of stereo audio.
func BenchmarkDownmix(b *testing.B) {
	buf := sineBuffer(44100, 2, 44100, 440.0)

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		_, _ = Downmix(buf)
	}
}
