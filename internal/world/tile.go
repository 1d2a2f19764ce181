// Package world holds the cave's tile grid: the closed set of tile kinds,
// their capability flags, and the bounds-checked two-layer grid that the
// generator, liquid automaton, player controller and explosions share.
package world

import "strings"

// TileKind identifies what occupies a grid cell. The set is closed.
type TileKind uint8

const (
	// None marks an empty decor slot. It never appears in the tile layer.
	None TileKind = iota
	Barrier
	CaveBackground
	Dirt
	Stone
	Acid
	Water
	LabBlock1
	LabBlock2
	LabBlock3
	Stalactite
	Stalagmite
	Bat
	Flower
	Vine

	kindCount
)

// Traits are the capability flags of a tile kind.
type Traits struct {
	Name        string
	Solid       bool // blocks movement
	Immovable   bool // survives explosions
	Liquid      bool // flows, slows the player
	Harmful     bool // damages the player on contact
	Transparent bool // drawn over the background layer
	Decor       bool // lives in the decor layer only
	UpdateRate  int  // ticks between flow steps, 0 for static kinds
	Glyph       rune // ASCII preview character
}

var traits = [kindCount]Traits{
	None:           {Name: "none", Glyph: ' '},
	Barrier:        {Name: "barrier", Solid: true, Immovable: true, Glyph: '█'},
	CaveBackground: {Name: "background", Transparent: true, Glyph: ' '},
	Dirt:           {Name: "dirt", Solid: true, Glyph: '▒'},
	Stone:          {Name: "stone", Solid: true, Glyph: '▓'},
	Acid:           {Name: "acid", Liquid: true, Harmful: true, UpdateRate: 50, Glyph: '≈'},
	Water:          {Name: "water", Liquid: true, UpdateRate: 25, Glyph: '~'},
	LabBlock1:      {Name: "lab1", Solid: true, Immovable: true, Glyph: '#'},
	LabBlock2:      {Name: "lab2", Solid: true, Immovable: true, Glyph: '%'},
	LabBlock3:      {Name: "lab3", Solid: true, Immovable: true, Glyph: '='},
	Stalactite:     {Name: "stalactite", Transparent: true, Decor: true, Glyph: 'v'},
	Stalagmite:     {Name: "stalagmite", Transparent: true, Decor: true, Glyph: '^'},
	Bat:            {Name: "bat", Transparent: true, Decor: true, Glyph: 'w'},
	Flower:         {Name: "flower", Transparent: true, Decor: true, Glyph: '*'},
	Vine:           {Name: "vine", Transparent: true, Decor: true, Glyph: '|'},
}

// Traits returns the capability flags for k. Unknown kinds report no capabilities.
func (k TileKind) Traits() Traits {
	if k >= kindCount {
		return Traits{Name: "unknown", Glyph: '?'}
	}
	return traits[k]
}

func (k TileKind) Solid() bool       { return k.Traits().Solid }
func (k TileKind) Immovable() bool   { return k.Traits().Immovable }
func (k TileKind) Liquid() bool      { return k.Traits().Liquid }
func (k TileKind) Harmful() bool     { return k.Traits().Harmful }
func (k TileKind) Transparent() bool { return k.Traits().Transparent }
func (k TileKind) Decor() bool       { return k.Traits().Decor }
func (k TileKind) UpdateRate() int   { return k.Traits().UpdateRate }
func (k TileKind) Glyph() rune       { return k.Traits().Glyph }

// Lab reports whether k is one of the lab block kinds.
func (k TileKind) Lab() bool {
	return k == LabBlock1 || k == LabBlock2 || k == LabBlock3
}

// String returns the kind's config name.
func (k TileKind) String() string {
	return k.Traits().Name
}

// Kinds returns every tile kind except None, in declaration order.
func Kinds() []TileKind {
	out := make([]TileKind, 0, kindCount-1)
	for k := Barrier; k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

// ParseKind resolves a config name such as "stone" or "Stalactite".
func ParseKind(name string) (TileKind, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k := Barrier; k < kindCount; k++ {
		if traits[k].Name == name {
			return k, true
		}
	}
	return None, false
}
