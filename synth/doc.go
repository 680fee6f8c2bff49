// Package synth generates single-lead ECG test signals with a
// time-varying heart rate.
//
// A signal is built in three steps: [RateSchedule] produces per-beat
// target rates, [Cycle] renders one cardiac cycle as a sum of Gaussian
// pulses (P, Q, QRS, S, T, U), and [Generator.Compose] concatenates one
// cycle per scheduled beat into a continuous waveform with its time grid.
// [Generator.AddArtifacts] then corrupts the clean waveform with
// sinusoidal baseline wander and Gaussian broadband noise from a seeded
// source, so runs are reproducible.
package synth
