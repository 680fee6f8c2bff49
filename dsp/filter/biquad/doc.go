// Package biquad provides biquad (second-order IIR) filter runtime primitives.
//
// A [Section] implements Direct Form II Transposed processing for a single
// second-order section defined by [Coefficients]. Multiple sections can be
// cascaded via [Chain] for higher-order filters such as the Butterworth
// bandpass used for ECG baseline and noise rejection. Coefficient design
// lives in dsp/filter/design/pass.
//
// Processing is causal: each output sample depends only on the current and
// past input samples, so the cascade introduces the usual IIR phase lag.
package biquad
