// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"encoding/binary"
	"math/bits"
)

// AIFF16 builds a FORM/AIFF file holding big-endian 16-bit PCM.
func AIFF16(sampleRate, channels int, samples []int16) []byte {
	ssnd := new(bytes.Buffer)
	_ = binary.Write(ssnd, binary.BigEndian, uint32(0)) // offset
	_ = binary.Write(ssnd, binary.BigEndian, uint32(0)) // block size
	_ = binary.Write(ssnd, binary.BigEndian, samples)

	comm := new(bytes.Buffer)
	_ = binary.Write(comm, binary.BigEndian, uint16(channels))
	_ = binary.Write(comm, binary.BigEndian, uint32(len(samples)/max(channels, 1)))
	_ = binary.Write(comm, binary.BigEndian, uint16(16))
	comm.Write(extended(uint64(sampleRate)))

	body := new(bytes.Buffer)
	body.WriteString("AIFF")
	writeChunk(body, "COMM", comm.Bytes())
	writeChunk(body, "SSND", ssnd.Bytes())

	out := new(bytes.Buffer)
	out.WriteString("FORM")
	_ = binary.Write(out, binary.BigEndian, uint32(body.Len()))
	out.Write(body.Bytes())

	return out.Bytes()
}

func writeChunk(w *bytes.Buffer, id string, payload []byte) {
	w.WriteString(id)
	_ = binary.Write(w, binary.BigEndian, uint32(len(payload)))
	w.Write(payload)
	if len(payload)%2 == 1 {
		w.WriteByte(0)
	}
}

// extended encodes a positive integer as an 80-bit IEEE 754 extended float.
func extended(v uint64) []byte {
	out := make([]byte, 10)
	if v == 0 {
		return out
	}

	shift := bits.LeadingZeros64(v)
	binary.BigEndian.PutUint16(out[0:2], uint16(16383+63-shift))
	binary.BigEndian.PutUint64(out[2:10], v<<shift)

	return out
}
