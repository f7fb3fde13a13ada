package convert

import (
	"bytes"
	"encoding/json"
	"github.com/PIXRA-Network/typeconv/lib/player"
	"github.com/PIXRA-Network/typeconv/network/protocol"
	"github.com/cockroachdb/errors"
)

// SkinAdapter converts player skins to the protocol's skin data and back.
// Creation hooks may install a different adapter per protocol version.
type SkinAdapter interface {
	ToSkinData(skin player.Skin) protocol.SkinData
	FromSkinData(data protocol.SkinData) (player.Skin, error)
}

// PersonaSkinID is the id of the skin that replaces persona skins
const PersonaSkinID = "Standard_Custom"

var (
	capeWidth, capeHeight uint32 = 64, 32

	// persona skins cannot be represented, they are replaced by a plain skin
	personaSkinData = bytes.Repeat([]byte{0x80, 0x80, 0x80, 0xff}, 64*64)
)

// LegacySkinAdapter maps classic skins with a named geometry
type LegacySkinAdapter struct{}

type resourcePatch struct {
	Geometry struct {
		Default string `json:"default"`
	} `json:"geometry"`
}

func (LegacySkinAdapter) ToSkinData(skin player.Skin) protocol.SkinData {
	var patch resourcePatch
	patch.Geometry.Default = skin.GeometryName
	rawPatch, _ := json.Marshal(patch)

	var cape protocol.SkinImage
	if len(skin.CapeData) > 0 {
		cape = protocol.SkinImage{Width: capeWidth, Height: capeHeight, Data: skin.CapeData}
	}

	return protocol.SkinData{
		SkinID:        skin.SkinID,
		PlayFabID:     skin.PlayFabID,
		ResourcePatch: string(rawPatch),
		SkinImage:     skinImageFromLegacy(skin.SkinData),
		CapeImage:     cape,
		GeometryData:  string(skin.GeometryData),
		FullSkinID:    skin.SkinID,
	}
}

func (LegacySkinAdapter) FromSkinData(data protocol.SkinData) (player.Skin, error) {
	if data.PersonaSkin {
		return player.Skin{
			SkinID:    PersonaSkinID,
			PlayFabID: data.PlayFabID,
			SkinData:  append([]byte(nil), personaSkinData...),
		}, nil
	}

	var capeData []byte
	if !data.PersonaCapeOnClassic {
		capeData = data.CapeImage.Data
	}

	var patch resourcePatch
	if err := json.Unmarshal([]byte(data.ResourcePatch), &patch); err != nil {
		return player.Skin{}, conversionError(err, "skin resource patch")
	}
	if patch.Geometry.Default == "" {
		return player.Skin{}, conversionError(nil, "skin resource patch has no geometry name")
	}

	skin := player.Skin{
		SkinID:       data.SkinID,
		PlayFabID:    data.PlayFabID,
		SkinData:     data.SkinImage.Data,
		CapeData:     capeData,
		GeometryName: patch.Geometry.Default,
		GeometryData: []byte(data.GeometryData),
	}
	if err := skin.Validate(); err != nil {
		return player.Skin{}, conversionError(errors.Wrap(err, "invalid skin"), "skin %s", data.SkinID)
	}
	return skin, nil
}

// skinImageFromLegacy derives the image size from the length of RGBA data
func skinImageFromLegacy(data []byte) protocol.SkinImage {
	switch len(data) {
	case 64 * 32 * 4:
		return protocol.SkinImage{Width: 64, Height: 32, Data: data}
	case 64 * 64 * 4:
		return protocol.SkinImage{Width: 64, Height: 64, Data: data}
	case 128 * 128 * 4:
		return protocol.SkinImage{Width: 128, Height: 128, Data: data}
	default:
		// unknown sizes are sent as a single row and rejected by the client
		return protocol.SkinImage{Width: uint32(len(data) / 4), Height: 1, Data: data}
	}
}

// ToSkinData converts a skin with the converter's skin adapter
func (c *TypeConverter) ToSkinData(skin player.Skin) protocol.SkinData {
	return c.skinAdapter.ToSkinData(skin)
}

// FromSkinData converts client skin data with the converter's skin adapter
func (c *TypeConverter) FromSkinData(data protocol.SkinData) (player.Skin, error) {
	return c.skinAdapter.FromSkinData(data)
}
