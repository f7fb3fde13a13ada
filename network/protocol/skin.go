package protocol

// SkinImage is an RGBA image of a skin or cape
type SkinImage struct {
	Width  uint32
	Height uint32
	Data   []byte
}

// SkinData is the skin payload of the protocol
type SkinData struct {
	SkinID               string
	PlayFabID            string
	ResourcePatch        string
	SkinImage            SkinImage
	CapeImage            SkinImage
	GeometryData         string
	GeometryDataEngine   string
	PremiumSkin          bool
	PersonaSkin          bool
	PersonaCapeOnClassic bool
	CapeID               string
	FullSkinID           string
}
