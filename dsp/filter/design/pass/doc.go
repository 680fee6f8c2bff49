// Package pass provides lowpass, highpass, and bandpass filter design
// for biquad cascades.
//
// Butterworth designs are returned as second-order sections suitable for
// [biquad.NewChain]. The bandpass variant cascades a highpass at the low
// cutoff with a lowpass at the high cutoff, which reproduces the maximally
// flat passband of the classic Butterworth bandpass.
package pass
