// SPDX-License-Identifier: EPL-2.0

package voice_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/ik5/padbx/asset"
	"github.com/ik5/padbx/graph"
	"github.com/ik5/padbx/internal/audiotest"
	"github.com/ik5/padbx/slot"
	"github.com/ik5/padbx/voice"
)

func ExampleManager_Trigger() {
	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := asset.NewStore(asset.MemFetcher{
		7: audiotest.ToneWAV(44100, 4410, 220, 0.5),
	}, asset.NewDecoder(nil), asset.WithLogger(quiet))

	dev := graph.NewOffline(44100)
	m := voice.NewManager(dev, store, voice.WithLogger(quiet))

	cfg := slot.Default(3)
	cfg.SampleID = slot.Sample(7)
	cfg.Volume = 0.75
	cfg.Pitch = -5

	st, err := m.Trigger(context.Background(), 3, cfg)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(st)
	fmt.Println(dev.State(), m.ActiveSlots())
	// Output:
	// Pad 3 ▶ sampleId 7 | vol 0.75 | pitch -5 st | pan 0
	// running [3]
}
