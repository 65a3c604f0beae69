// SPDX-License-Identifier: EPL-2.0

package audiofile

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"sync"
	"testing"

	"github.com/ik5/audiofile/audio"
	"github.com/ik5/audiofile/config"
	"github.com/ik5/audiofile/formats/wav"
	"github.com/ik5/audiofile/tempfile"
)

type fakeProber struct {
	props audio.Properties
	err   error
	calls int
}

func (p *fakeProber) Probe(context.Context, string) (audio.Properties, error) {
	p.calls++
	return p.props, p.err
}

// fakeConverter writes samples as a canonical WAV file at the target rate,
// or fails with err. garbage writes bytes no codec accepts.
type fakeConverter struct {
	samples []int16
	err     error
	garbage bool

	calls   int
	src     string
	dst     string
	target  audio.Format
	existed bool
}

func (c *fakeConverter) Convert(_ context.Context, src, dst string, target audio.Format) error {
	c.calls++
	c.src, c.dst, c.target = src, dst, target

	_, statErr := os.Stat(dst)
	c.existed = statErr == nil

	if c.err != nil {
		return c.err
	}
	if c.garbage {
		return os.WriteFile(dst, []byte("not a wave file at all"), 0o600)
	}

	return wav.Codec{}.Encode(dst, target.SampleRate, c.samples)
}

// trackingTemp records every file it hands out and whether it was
// released.
type trackingTemp struct {
	dir *tempfile.Dir

	mtx      sync.Mutex
	created  []string
	released int
}

func newTrackingTemp(t *testing.T) *trackingTemp {
	t.Helper()
	return &trackingTemp{dir: tempfile.New(t.TempDir())}
}

func (tt *trackingTemp) Create(suffix string) (string, func() error, error) {
	path, release, err := tt.dir.Create(suffix)
	if err != nil {
		return "", nil, err
	}

	tt.mtx.Lock()
	tt.created = append(tt.created, path)
	tt.mtx.Unlock()

	return path, func() error {
		tt.mtx.Lock()
		tt.released++
		tt.mtx.Unlock()
		return release()
	}, nil
}

type failingCodec struct {
	wav.Codec
	err error
}

func (c failingCodec) Encode(string, int, []int16) error { return c.err }

func testConfig(rate int) config.Config {
	cfg := config.Default()
	cfg.SampleRate = rate
	return cfg
}

// logBuffer returns a debug logger writing text records into the buffer.
func logBuffer() (*slog.Logger, *bytes.Buffer) {
	buf := new(bytes.Buffer)
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}
