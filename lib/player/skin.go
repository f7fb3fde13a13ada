package player

import (
	"github.com/cockroachdb/errors"
)

// Accepted skin image sizes in bytes (RGBA): 64x32, 64x64 and 128x128
var acceptedSkinSizes = map[int]struct{}{
	64 * 32 * 4:   {},
	64 * 64 * 4:   {},
	128 * 128 * 4: {},
}

// Skin is the server-side representation of a player skin
type Skin struct {
	SkinID       string
	PlayFabID    string
	SkinData     []byte
	CapeData     []byte
	GeometryName string
	GeometryData []byte
}

// Validate checks the skin image and cape sizes
func (s Skin) Validate() error {
	if s.SkinID == "" {
		return errors.New("skin: id must not be empty")
	}
	if _, ok := acceptedSkinSizes[len(s.SkinData)]; !ok {
		return errors.Newf("skin: invalid skin data size %d bytes", len(s.SkinData))
	}
	if len(s.CapeData) != 0 && len(s.CapeData) != 64*32*4 {
		return errors.Newf("skin: invalid cape data size %d bytes", len(s.CapeData))
	}
	return nil
}
