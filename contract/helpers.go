package contract

import (
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"strconv"
)

// ---------- Require ----------

func require(cond bool, msg string, chain SDKInterface) {
	if !cond {
		chain.Abort(msg)
	}
}

// requireAuth asserts that the named principal authorized this
// invocation, i.e. that it is the authenticated sender.
func requireAuth(player string, chain SDKInterface) {
	require(string(chain.GetEnv().Sender.Address) == player, "unauthorized", chain)
}

// ---------- JSON Conversions ----------

func ToJSON[T any](v T, objectType string, chain SDKInterface) string {
	b, err := json.Marshal(v)
	if err != nil {
		chain.Abort("failed to marshal " + objectType)
	}
	return string(b)
}

func FromJSON[T any](data string, objectType string, chain SDKInterface) T {
	var v T
	if err := json.Unmarshal([]byte(data), &v); err != nil {
		chain.Abort("invalid " + objectType)
	}
	return v
}

// ---------- UInt/String Helpers ----------

func UInt32ToString(val uint32) string {
	return strconv.FormatUint(uint64(val), 10)
}

// parseBoardHash decodes the hex wire form of a board commitment.
func parseBoardHash(s string, chain SDKInterface) BoardHash {
	var h BoardHash
	b, err := hex.DecodeString(s)
	if err != nil || len(b) != len(h) {
		chain.Abort("invalid board hash")
	}
	copy(h[:], b)
	return h
}

// ---------- Binary Write Helpers ----------

func appendU32(out []byte, v uint32) []byte {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], v)
	return append(out, tmp[:]...)
}

func appendString16(out []byte, s string, chain SDKInterface) []byte {
	if len(s) > 65535 {
		chain.Abort("string too long")
	}
	var tmp [2]byte
	binary.BigEndian.PutUint16(tmp[:], uint16(len(s)))
	out = append(out, tmp[:]...)
	return append(out, s...)
}

// rd is a binary reader over a byte slice, providing big-endian
// integer reads with bounds checks that abort on short input.
type rd struct {
	b     []byte
	i     int
	chain SDKInterface
}

func (r *rd) need(n int) {
	if r.i+n > len(r.b) {
		r.chain.Abort("decode overflow")
	}
}

func (r *rd) u8() byte {
	r.need(1)
	v := r.b[r.i]
	r.i++
	return v
}

func (r *rd) u16() uint16 {
	r.need(2)
	v := binary.BigEndian.Uint16(r.b[r.i : r.i+2])
	r.i += 2
	return v
}

func (r *rd) u32() uint32 {
	r.need(4)
	v := binary.BigEndian.Uint32(r.b[r.i : r.i+4])
	r.i += 4
	return v
}

func (r *rd) bytes(n int) []byte {
	r.need(n)
	v := r.b[r.i : r.i+n]
	r.i += n
	return v
}

func (r *rd) str() string {
	l := int(r.u16())
	return string(r.bytes(l))
}

// mustEnd verifies that the reader consumed all bytes exactly.
func (r *rd) mustEnd() {
	if r.i != len(r.b) {
		r.chain.Abort("trailing bytes")
	}
}
