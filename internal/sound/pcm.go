package sound

import "math"

// SampleRate is shared by the synthesized clips and the audio context.
const SampleRate = 44100

// tone renders a decaying sine as 16-bit little-endian stereo PCM.
func tone(freq, durSec, amp, decay float64) []byte {
	n := int(SampleRate * durSec)
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		v := int16(math.Sin(2*math.Pi*freq*t) * amp * math.Exp(-decay*t))
		for ch := 0; ch < 2; ch++ {
			idx := i*4 + ch*2
			buf[idx] = byte(v)
			buf[idx+1] = byte(v >> 8)
		}
	}
	return buf
}

// arpeggio joins equal-length tones, used for the background loop.
func arpeggio(notes []float64, noteSec float64) []byte {
	var out []byte
	for _, f := range notes {
		out = append(out, tone(f, noteSec, 2000, 2)...)
	}
	return out
}
