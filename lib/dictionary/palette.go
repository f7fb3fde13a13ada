package dictionary

import (
	"github.com/cockroachdb/errors"
)

// --------------------------------------------------------------------------
// File format
// --------------------------------------------------------------------------

// PaletteFile is the on-disk form of a Palette
type PaletteFile struct {
	Protocol    int               `yaml:"protocol"`
	ItemTypes   []ItemTypeEntry   `yaml:"item_types"`
	BlockStates []BlockStateEntry `yaml:"block_states"`
	BlockItems  map[string]string `yaml:"block_items"`
	Downgrades  []DowngradeEntry  `yaml:"downgrades"`
}

type ItemTypeEntry struct {
	Name string `yaml:"name"`
	ID   int32  `yaml:"id"`
}

// BlockStateEntry is one block state. Meta is nil for states without a
// legacy meta value.
type BlockStateEntry struct {
	Block     string `yaml:"block"`
	Meta      *int   `yaml:"meta,omitempty"`
	RuntimeID int32  `yaml:"runtime_id"`
}

// DowngradeEntry maps a current id to an older one. A nil FromMeta matches
// every meta; a nil ToMeta keeps the input meta.
type DowngradeEntry struct {
	From     string `yaml:"from"`
	FromMeta *int   `yaml:"from_meta,omitempty"`
	To       string `yaml:"to"`
	ToMeta   *int   `yaml:"to_meta,omitempty"`
}

// --------------------------------------------------------------------------
// Palette
// --------------------------------------------------------------------------

type idMeta struct {
	id   string
	meta int
}

type blockState struct {
	block   string
	meta    int
	hasMeta bool
}

// Palette holds every dictionary of one protocol version. It is immutable
// after construction and safe for concurrent use.
type Palette struct {
	protocol int

	stringToInt map[string]int32
	intToString map[int32]string

	states      map[int32]blockState
	stateByMeta map[idMeta]int32

	blockItems map[string]string

	downgradeExact  map[idMeta]DowngradeEntry
	downgradeRename map[string]DowngradeEntry
	upgradeExact    map[idMeta]idMeta
	upgradeRename   map[string]string
}

// NewPalette validates f and builds the lookup tables
func NewPalette(f PaletteFile) (*Palette, error) {
	p := &Palette{
		protocol:        f.Protocol,
		stringToInt:     make(map[string]int32, len(f.ItemTypes)),
		intToString:     make(map[int32]string, len(f.ItemTypes)),
		states:          make(map[int32]blockState, len(f.BlockStates)),
		stateByMeta:     make(map[idMeta]int32, len(f.BlockStates)),
		blockItems:      make(map[string]string, len(f.BlockItems)),
		downgradeExact:  make(map[idMeta]DowngradeEntry),
		downgradeRename: make(map[string]DowngradeEntry),
		upgradeExact:    make(map[idMeta]idMeta),
		upgradeRename:   make(map[string]string),
	}

	for _, e := range f.ItemTypes {
		if e.Name == "" {
			return nil, errors.Newf("protocol %d: item type with empty name", f.Protocol)
		}
		if _, ok := p.stringToInt[e.Name]; ok {
			return nil, errors.Newf("protocol %d: duplicate item type %s", f.Protocol, e.Name)
		}
		if other, ok := p.intToString[e.ID]; ok {
			return nil, errors.Newf("protocol %d: item id %d used by %s and %s", f.Protocol, e.ID, other, e.Name)
		}
		p.stringToInt[e.Name] = e.ID
		p.intToString[e.ID] = e.Name
	}

	for _, e := range f.BlockStates {
		if e.RuntimeID == NoBlockRuntimeID {
			return nil, errors.Newf("protocol %d: block state %s uses reserved runtime id %d", f.Protocol, e.Block, NoBlockRuntimeID)
		}
		if _, ok := p.states[e.RuntimeID]; ok {
			return nil, errors.Newf("protocol %d: duplicate block runtime id %d", f.Protocol, e.RuntimeID)
		}
		state := blockState{block: e.Block}
		if e.Meta != nil {
			state.meta, state.hasMeta = *e.Meta, true
			key := idMeta{e.Block, *e.Meta}
			if _, ok := p.stateByMeta[key]; ok {
				return nil, errors.Newf("protocol %d: duplicate block state %s:%d", f.Protocol, e.Block, *e.Meta)
			}
			p.stateByMeta[key] = e.RuntimeID
		}
		p.states[e.RuntimeID] = state
	}

	for itemID, blockID := range f.BlockItems {
		p.blockItems[itemID] = blockID
	}

	for _, e := range f.Downgrades {
		if e.From == "" || e.To == "" {
			return nil, errors.Newf("protocol %d: downgrade entry with empty id", f.Protocol)
		}
		if e.FromMeta != nil {
			p.downgradeExact[idMeta{e.From, *e.FromMeta}] = e
		} else {
			p.downgradeRename[e.From] = e
		}
		switch {
		case e.ToMeta != nil:
			fromMeta := 0
			if e.FromMeta != nil {
				fromMeta = *e.FromMeta
			}
			p.upgradeExact[idMeta{e.To, *e.ToMeta}] = idMeta{e.From, fromMeta}
		case e.FromMeta == nil:
			p.upgradeRename[e.To] = e.From
		}
	}

	return p, nil
}

// Protocol returns the protocol version the palette belongs to
func (p *Palette) Protocol() int { return p.protocol }

// Set bundles the palette and a translator built on it
func (p *Palette) Set() Set {
	return Set{
		ProtocolID:  p.protocol,
		ItemTypes:   p,
		BlockStates: p,
		BlockItems:  p,
		Downgrader:  p,
		Translator:  NewItemTranslator(p, p, p, p, p),
	}
}

// --------------------------------------------------------------------------
// Interface Methods
// --------------------------------------------------------------------------

func (p *Palette) FromStringID(id string) (int32, bool) {
	v, ok := p.stringToInt[id]
	return v, ok
}

func (p *Palette) FromIntID(id int32) (string, bool) {
	v, ok := p.intToString[id]
	return v, ok
}

func (p *Palette) LookupStateIDFromIDMeta(blockID string, meta int) (int32, bool) {
	v, ok := p.stateByMeta[idMeta{blockID, meta}]
	return v, ok
}

func (p *Palette) IDMetaFromStateID(runtimeID int32) (string, int, bool) {
	s, ok := p.states[runtimeID]
	return s.block, s.meta, ok
}

func (p *Palette) MetaFromStateID(runtimeID int32) (int, bool) {
	s, ok := p.states[runtimeID]
	if !ok || !s.hasMeta {
		return 0, false
	}
	return s.meta, true
}

func (p *Palette) LookupBlockID(itemID string) (string, bool) {
	v, ok := p.blockItems[itemID]
	return v, ok
}

func (p *Palette) Downgrade(id string, meta int) (string, int) {
	e, ok := p.downgradeExact[idMeta{id, meta}]
	if !ok {
		e, ok = p.downgradeRename[id]
	}
	if !ok {
		return id, meta
	}
	if e.ToMeta != nil {
		return e.To, *e.ToMeta
	}
	return e.To, meta
}

func (p *Palette) Upgrade(id string, meta int) (string, int) {
	if v, ok := p.upgradeExact[idMeta{id, meta}]; ok {
		return v.id, v.meta
	}
	if v, ok := p.upgradeRename[id]; ok {
		return v, meta
	}
	return id, meta
}
