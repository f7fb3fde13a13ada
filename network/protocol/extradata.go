package protocol

import (
	"github.com/PIXRA-Network/typeconv/lib/encoding"
	"github.com/PIXRA-Network/typeconv/lib/nbt"
	"github.com/cockroachdb/errors"
)

// ErrPacketDecode is matched by every error returned from the Read functions
var ErrPacketDecode = errors.New("protocol: malformed packet data")

const (
	// nbtMarker announces a tag tree in the extra data; 0 means no tree
	nbtMarker uint16 = 0xffff
	// nbtDataVersion is the only tag data version clients send
	nbtDataVersion byte = 1
)

// ExtraData is implemented by both extra data shapes
type ExtraData interface {
	// Tag returns the auxiliary tag tree, or nil
	Tag() *nbt.Compound
	// Write appends the encoded payload to w
	Write(w *encoding.Writer)
}

// ItemStackExtraData is the extra data payload of ordinary item stacks
type ItemStackExtraData struct {
	Nbt        *nbt.Compound
	CanPlaceOn []string
	CanDestroy []string
}

func (d ItemStackExtraData) Tag() *nbt.Compound { return d.Nbt }

func (d ItemStackExtraData) Write(w *encoding.Writer) {
	if d.Nbt != nil {
		w.WriteUint16(nbtMarker)
		_ = w.WriteByte(nbtDataVersion)
		nbt.WriteRoot(w, "", d.Nbt)
	} else {
		w.WriteUint16(0)
	}
	writeStrings(w, d.CanPlaceOn)
	writeStrings(w, d.CanDestroy)
}

// ItemStackExtraDataShield is the extra data payload of shields
type ItemStackExtraDataShield struct {
	ItemStackExtraData
	BlockingTick int64
}

func (d ItemStackExtraDataShield) Write(w *encoding.Writer) {
	d.ItemStackExtraData.Write(w)
	w.WriteInt64(d.BlockingTick)
}

// EncodeExtraData returns the encoded payload of d. Strings in d must fit
// encoding.MaxString16 (see nbt.CheckLengths); longer ones panic.
func EncodeExtraData(d ExtraData) []byte {
	w := encoding.NewWriter(16)
	d.Write(w)
	return w.Bytes()
}

// --------------------------------------------------------------------------
// Decoding
// --------------------------------------------------------------------------

func decodeError(err error, what string) error {
	return errors.Mark(errors.Wrapf(err, "item extra data: %s", what), ErrPacketDecode)
}

// ReadItemStackExtraData decodes the generic payload. The whole input must be consumed.
func ReadItemStackExtraData(raw []byte) (ItemStackExtraData, error) {
	r := encoding.NewReader(raw)
	d, err := readCommon(r)
	if err != nil {
		return ItemStackExtraData{}, err
	}
	if err := r.ExpectEOF(); err != nil {
		return ItemStackExtraData{}, decodeError(err, "end")
	}
	return d, nil
}

// ReadItemStackExtraDataShield decodes the shield payload. The whole input must be consumed.
func ReadItemStackExtraDataShield(raw []byte) (ItemStackExtraDataShield, error) {
	r := encoding.NewReader(raw)
	d, err := readCommon(r)
	if err != nil {
		return ItemStackExtraDataShield{}, err
	}
	tick, err := r.ReadInt64()
	if err != nil {
		return ItemStackExtraDataShield{}, decodeError(err, "blocking tick")
	}
	if err := r.ExpectEOF(); err != nil {
		return ItemStackExtraDataShield{}, decodeError(err, "end")
	}
	return ItemStackExtraDataShield{ItemStackExtraData: d, BlockingTick: tick}, nil
}

func readCommon(r *encoding.Reader) (ItemStackExtraData, error) {
	var d ItemStackExtraData

	nbtLen, err := r.ReadUint16()
	if err != nil {
		return d, decodeError(err, "nbt length")
	}
	switch nbtLen {
	case nbtMarker:
		version, err := r.ReadByte()
		if err != nil {
			return d, decodeError(err, "nbt version")
		}
		if version != nbtDataVersion {
			return d, decodeError(errors.Newf("unexpected nbt data version %d", version), "nbt version")
		}
		if d.Nbt, err = nbt.ReadRoot(r); err != nil {
			return d, decodeError(err, "nbt")
		}
	case 0:
	default:
		return d, decodeError(errors.Newf("unexpected fake nbt length %d", nbtLen), "nbt length")
	}

	if d.CanPlaceOn, err = readStrings(r); err != nil {
		return d, decodeError(err, "can place on")
	}
	if d.CanDestroy, err = readStrings(r); err != nil {
		return d, decodeError(err, "can destroy")
	}
	return d, nil
}

func writeStrings(w *encoding.Writer, values []string) {
	w.WriteInt32(int32(len(values)))
	for _, v := range values {
		w.WriteString16(v)
	}
}

func readStrings(r *encoding.Reader) ([]string, error) {
	n, err := r.ReadInt32()
	if err != nil {
		return nil, err
	}
	// every entry needs at least its two byte length prefix
	if n < 0 || int64(n)*2 > int64(r.Remaining()) {
		return nil, errors.Newf("invalid string count %d", n)
	}
	if n == 0 {
		return nil, nil
	}
	out := make([]string, n)
	for i := range out {
		if out[i], err = r.ReadString16(); err != nil {
			return nil, err
		}
	}
	return out, nil
}
