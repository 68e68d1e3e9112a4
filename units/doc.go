// Package units provides the numeric types used throughout the engine:
// exact fixed-point time in samples, frequency in cycles per sample,
// normalized phase, linear gain, pitch intervals, and sample rates.
//
// Two families of quantities coexist. Sample-domain quantities (Time, Freq)
// are what the signal graph computes with; real-world quantities (RawTime in
// seconds, RawFreq in hertz) are what callers specify. Converting between the
// two always requires an explicit SampleRate so that unit confusion cannot
// pass silently.
package units
