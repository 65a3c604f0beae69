// SPDX-License-Identifier: EPL-2.0

package audiofile

import (
	"path/filepath"
	"slices"
	"strings"
)

// fileExtensions is sorted so lookups can binary search.
var fileExtensions = []string{
	"3g2", "3gp",
	"aa", "aa3", "aac", "aax", "aiff", "alac", "amr", "ape", "asf", "at3", "at9", "au", "avi", "awb",
	"celt",
	"dct", "dss", "dvf",
	"eac",
	"flac", "flv",
	"gsm",
	"m4a", "m4b", "m4p", "m4v", "mid", "midi", "mkv", "mmf", "mov", "mp2", "mp3", "mp4", "mpc", "mpeg", "mpg", "mpv", "msv",
	"oga", "ogg", "ogv", "oma", "opus",
	"pcm",
	"qt",
	"ra", "ram", "raw", "riff", "rm", "rmvb",
	"shn", "sln",
	"theora", "tta",
	"vob", "vorbis", "vox",
	"wav", "webm", "wma", "wmv", "wv",
	"yuv",
}

// FileExtensions lists the audio and video container extensions, without
// the dot, that are routed to AudioFile.
func FileExtensions() []string {
	return slices.Clone(fileExtensions)
}

// IsSupportedExtension reports whether the extension of path is in
// FileExtensions, ignoring case.
func IsSupportedExtension(path string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "" {
		return false
	}

	_, found := slices.BinarySearch(fileExtensions, ext)
	return found
}
