package nbt

import (
	"github.com/PIXRA-Network/typeconv/lib/encoding"
	"github.com/cockroachdb/errors"
	"strconv"
)

// ErrStringTooLong is matched by errors from CheckLengths
var ErrStringTooLong = errors.New("nbt: string exceeds the serializable length")

// CheckLengths reports an error if any entry name or string value below t is
// longer than the serializer can encode. Trees that pass can be marshaled
// without loss.
func CheckLengths(t Tag) error {
	return checkLengths(t, "", 0)
}

func checkLengths(t Tag, path string, depth int) error {
	if depth > MaxDepth {
		return errors.Newf("nbt: %s nested deeper than %d", path, MaxDepth)
	}
	switch v := t.(type) {
	case String:
		if len(v) > encoding.MaxString16 {
			return errors.Wrapf(ErrStringTooLong, "value at %q has %d bytes", path, len(v))
		}
	case *Compound:
		if v == nil {
			return nil
		}
		for _, name := range v.names {
			if len(name) > encoding.MaxString16 {
				return errors.Wrapf(ErrStringTooLong, "entry name of %d bytes below %q", len(name), path)
			}
			if err := checkLengths(v.tags[name], path+"/"+name, depth+1); err != nil {
				return err
			}
		}
	case *List:
		if v == nil {
			return nil
		}
		for i, e := range v.values {
			if err := checkLengths(e, path+"/"+strconv.Itoa(i), depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}
