// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files with github.com/jfreymuth/oggvorbis.
//
// The source keeps the file's channel layout and sample rate and writes
// interleaved float32 samples directly into the caller's slice:
//
//	[L0, R0, L1, R1, ...]
//
// Registered under "ogg" and "oga".
package vorbis
