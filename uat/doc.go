// Package uat implements a software-radio receiver for the 978 MHz
// Universal Access Transceiver datalink: sync-word correlation,
// differential-phase demodulation, ADS-B and uplink framing with
// Reed-Solomon correction, and the UAT message binary decoder.
//
// The package does no tuning, gain control, or RF front-end work; it
// consumes a pre-produced stream of interleaved I/Q bytes at 2.083334
// Msps and emits RawFrame values to a Sink; DecodeMessage turns an
// ADS-B payload into its decoded message structure.
package uat
