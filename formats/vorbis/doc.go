// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files with github.com/jfreymuth/oggvorbis.
//
// Samples are interleaved float32 and always handed out in whole frames.
// Ogg files are accepted as noise material; there is no encoder.
package vorbis
