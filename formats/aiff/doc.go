// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF files with github.com/go-audio/aiff.
//
// Signed PCM at 8, 16, 24 or 32 bits is supported, any channel count and
// sample rate. Input that is not an io.ReadSeeker is read into memory
// first, since the go-audio decoder seeks between chunks.
//
// Registered under "aiff" and "aif".
package aiff
