package audio

import "math"

const numCoefficients = 5

// Highpass biquad based on https://www.w3.org/2011/audio/audio-eq-cookbook.html
type filter struct {
	coefficients [numCoefficients]float64

	// state
	y1, y2 float64 // y[n-1] y[n-2]
}

func (f *filter) process(in float64) float64 {
	out := f.coefficients[0]*in + f.y1
	f.y1 = f.coefficients[1]*in - f.coefficients[3]*out + f.y2
	f.y2 = f.coefficients[2]*in - f.coefficients[4]*out
	return out
}

func (f *filter) reset() {
	f.y1 = 0.
	f.y2 = 0.
}

func (f *filter) setHighpass(freq float64) {
	omega := 2 * math.Pi * freq / sampleRate
	cos := math.Cos(omega)
	sin := math.Sin(omega)

	const q = 0.707
	alpha := sin / (2. * q)

	var b0, b1, b2, a0, a1, a2 float64

	b0 = (1 + cos) / 2
	b1 = -(1 + cos)
	b2 = b0
	a0 = 1 + alpha
	a1 = -2 * cos
	a2 = 1 - alpha

	f.coefficients[0] = b0 / a0
	f.coefficients[1] = b1 / a0
	f.coefficients[2] = b2 / a0
	f.coefficients[3] = a1 / a0
	f.coefficients[4] = a2 / a0
}
