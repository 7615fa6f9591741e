package synth

import (
	"testing"

	"github.com/fdischner/chipplayer/internal/voice"
)

func TestSampleSilentVoicesOutputsRestLevel(t *testing.T) {
	var v voice.State
	v.Reset()
	// All steps and volumes are zero: no voice contributes anything besides
	// the triangle/volume-zero rest level baked into the -32 offset.
	s := Sample(&v)
	if s != 0x60 {
		t.Fatalf("silent sample = %#x, want 0x60", s)
	}
}

func TestSamplePulseAFullDutyAverages(t *testing.T) {
	var v voice.State
	v.Reset()
	v.Step[voice.ChPulseA] = 0x8000 // two samples per full cycle
	v.Volume[voice.ChPulseA] = 20
	v.Duty[0] = 0x80 // 50% duty

	var sum int
	const n = 4
	for i := 0; i < n; i++ {
		sum += int(Sample(&v))
	}
	avg := sum / n
	if avg < 0x5E || avg > 0x62 {
		t.Fatalf("average sample %d far from rest level 0x60", avg)
	}
}

func TestNoiseLFSRNeverLocksAtZero(t *testing.T) {
	var v voice.State
	v.Reset()
	v.Step[voice.ChNoise] = 0xFFFF
	v.Volume[voice.ChNoise] = 10

	for i := 0; i < 200000; i++ {
		Sample(&v)
		if v.LFSR == 0 {
			t.Fatalf("LFSR reached 0 after %d samples", i)
		}
	}
}

func TestFrameFillsWholeBuffer(t *testing.T) {
	var v voice.State
	v.Reset()
	v.Step[voice.ChPulseA] = 100
	v.Volume[voice.ChPulseA] = 10

	var out voice.FrameBuffer
	Frame(&v, &out)

	allSame := true
	for i := 1; i < len(out); i++ {
		if out[i] != out[0] {
			allSame = false
			break
		}
	}
	if allSame {
		t.Fatalf("frame output looks uninitialized or frozen: all samples %#x", out[0])
	}
}
