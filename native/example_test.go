// SPDX-License-Identifier: EPL-2.0

package native_test

import (
	"context"
	"fmt"
	"log"

	"github.com/ik5/audiofile/audio"
	"github.com/ik5/audiofile/native"
)

func ExampleBackend_Convert() {
	backend := native.New(nil, nil)

	ctx := context.Background()
	if err := backend.Convert(ctx, "speech.mp3", "speech.wav", audio.Canonical(16000)); err != nil {
		log.Fatal(err)
	}

	props, err := backend.Probe(ctx, "speech.wav")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(props.Codec, props.SampleRate, props.Channels)
}
