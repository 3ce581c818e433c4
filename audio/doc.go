// SPDX-License-Identifier: EPL-2.0

// Package audio provides the PCM primitives the sampler is built on.
//
//   - Source and Decoder for streaming, interleaved float32 input
//   - Registry mapping format keys to decoders, with content sniffing
//   - Buffer, a fully decoded de-interleaved clip shared read-only by voices
//   - Resampler and MonoMixer for rate and channel conversion
//
// # Source Interface
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Decoders, resamplers and mixers all implement Source so they can be
// chained.
//
// # Buffers
//
// ReadAll drains a Source into a Buffer. Reverse returns a fresh Buffer
// with every channel reversed; it never shares storage with its input, so
// reversing twice yields the original samples. BufferReader streams a
// Buffer back out as a Source:
//
//	buf, err := audio.ReadAll(src)
//	rev := audio.Reverse(buf)
//	pcm, rate, err := audio.ResampleToMono16(audio.NewBufferReader(rev), 22050, 4096)
//
// # Format Registry
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	format, dec, ok := registry.Detect(payload[:audio.SniffLen])
//
// Detect asks every decoder implementing Sniffer, in registration order,
// whether it recognizes the leading bytes of a payload.
//
// # Sample Format
//
// Samples are float32 in [-1.0, 1.0]. 0.0 is silence.
//
// # Error Handling
//
// ReadSamples returns io.EOF when the stream is finished; the final call
// may carry samples together with io.EOF.
package audio
