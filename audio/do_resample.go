// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/padbx/utils"
)

// ResampleToMono16 drains src through a Resampler and a MonoMixer and
// returns the result as signed 16-bit PCM at targetRate.
//
//	pcm, rate, err := audio.ResampleToMono16(audio.NewBufferReader(buf), 22050, 4096)
//
// bufferSize is the number of mono samples pulled per read.
func ResampleToMono16(src Source, targetRate int, bufferSize int) ([]int16, int, error) {
	mono := NewMonoMixer(NewResampler(src, targetRate))

	var pcm16 []int16
	buf := make([]float32, max(bufferSize, 1))

	for {
		n, err := mono.ReadSamples(buf)
		for _, s := range buf[:n] {
			pcm16 = append(pcm16, utils.Float32ToInt16(s))
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, targetRate, fmt.Errorf("%w", err)
		}
		if n == 0 {
			break
		}
	}

	return pcm16, targetRate, nil
}
