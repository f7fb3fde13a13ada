package dictionary

import (
	"github.com/cockroachdb/errors"
	"github.com/klauspost/compress/zstd"
	"github.com/lni/dragonboat/v4/logger"
	"gopkg.in/yaml.v3"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

var Logger = logger.GetLogger("dictionary")

// ErrUnknownProtocol is returned by loaders that have no dictionaries for a version
var ErrUnknownProtocol = errors.New("no dictionaries for protocol")

// ParsePalette decodes a YAML palette document
func ParsePalette(raw []byte) (*Palette, error) {
	var f PaletteFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, errors.Wrap(err, "palette yaml")
	}
	return NewPalette(f)
}

// LoadPaletteFile reads a palette from path. Files ending in .zst are
// decompressed with zstd first.
func LoadPaletteFile(path string) (*Palette, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".zst") {
		dec, err := zstd.NewReader(f)
		if err != nil {
			return nil, errors.Wrapf(err, "open zstd stream %s", path)
		}
		defer dec.Close()
		r = dec
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	p, err := ParsePalette(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	return p, nil
}

// DirLoader loads <dir>/<protocol>.yaml.zst or <dir>/<protocol>.yaml
func DirLoader(dir string) Loader {
	return func(protocolID int) (Set, error) {
		base := filepath.Join(dir, strconv.Itoa(protocolID))
		for _, path := range []string{base + ".yaml.zst", base + ".yaml"} {
			if _, err := os.Stat(path); err != nil {
				continue
			}
			p, err := LoadPaletteFile(path)
			if err != nil {
				return Set{}, err
			}
			if p.Protocol() != protocolID {
				return Set{}, errors.Newf("%s declares protocol %d, expected %d", path, p.Protocol(), protocolID)
			}
			Logger.Infof("loaded palette for protocol %d from %s (%d item types, %d block states)",
				protocolID, path, len(p.stringToInt), len(p.states))
			return p.Set(), nil
		}
		return Set{}, errors.Wrapf(ErrUnknownProtocol, "protocol %d (looked in %s)", protocolID, dir)
	}
}

// StaticLoader serves already built palettes
func StaticLoader(palettes ...*Palette) Loader {
	byProtocol := make(map[int]*Palette, len(palettes))
	for _, p := range palettes {
		byProtocol[p.Protocol()] = p
	}
	return func(protocolID int) (Set, error) {
		p, ok := byProtocol[protocolID]
		if !ok {
			return Set{}, errors.Wrapf(ErrUnknownProtocol, "protocol %d", protocolID)
		}
		return p.Set(), nil
	}
}
