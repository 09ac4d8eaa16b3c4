// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes uncompressed AIFF files with github.com/go-audio/aiff.
//
// Any channel count and sample rate is accepted at 8, 16, 24 or 32 bits.
// Like MP3 and Vorbis, AIFF is read-only here and only used as noise material.
package aiff
