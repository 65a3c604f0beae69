// SPDX-License-Identifier: EPL-2.0

package native

import (
	"github.com/ik5/audiofile/audio"
	"github.com/ik5/audiofile/formats/aiff"
	"github.com/ik5/audiofile/formats/flac"
	"github.com/ik5/audiofile/formats/mp3"
	"github.com/ik5/audiofile/formats/vorbis"
	"github.com/ik5/audiofile/formats/wav"
)

// codecNames reports a codec per extension for sources that cannot name
// their own.
var codecNames = map[string]string{
	"mp3":    "mp3",
	"ogg":    "vorbis",
	"oga":    "vorbis",
	"vorbis": "vorbis",
	"flac":   "flac",
}

// NewRegistry returns a registry with every decoder this module ships.
func NewRegistry() *audio.Registry {
	r := audio.NewRegistry()

	r.Register("wav", wav.Decoder{})
	r.Register("wave", wav.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("oga", vorbis.Decoder{})
	r.Register("vorbis", vorbis.Decoder{})
	r.Register("aif", aiff.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("flac", flac.Decoder{})

	return r
}

func codecName(src audio.Source, ext string) string {
	if namer, ok := src.(audio.CodecNamer); ok {
		return namer.Codec()
	}
	if name, ok := codecNames[ext]; ok {
		return name
	}
	return ext
}
