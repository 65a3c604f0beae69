// SPDX-License-Identifier: EPL-2.0

package ffmpeg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/ik5/audiofile/audio"
)

// stderrTail bounds how much of a failing tool's stderr ends up in errors.
const stderrTail = 512

// run executes bin with args and returns its stdout.
func run(ctx context.Context, bin string, args ...string) ([]byte, error) {
	path, err := exec.LookPath(bin)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", audio.ErrUnavailable, bin, err)
	}

	cmd := exec.CommandContext(ctx, path, args...) //nolint:gosec // binary comes from configuration, args are fixed

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%s cancelled: %w", bin, ctx.Err())
		}

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, fmt.Errorf("%w: %s exited with %d: %s",
				audio.ErrUnsupported, bin, exitErr.ExitCode(), tail(stderr.String()))
		}

		return nil, fmt.Errorf("%w: %s: %w", audio.ErrUnavailable, bin, err)
	}

	return stdout.Bytes(), nil
}

func tail(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > stderrTail {
		s = "..." + s[len(s)-stderrTail:]
	}
	return s
}
