package gamedata

import "strings"

type BlockRegistry interface {
	ByID(id int) (Block, bool)
	ByName(name string) (Block, bool)
	All() []Block
}

type BiomeRegistry interface {
	ByID(id int) (Biome, bool)
	ByName(name string) (Biome, bool)
	All() []Biome
}

// normalizeName maps "minecraft:Extreme Hills" and "extreme_hills" to the
// same key.
func normalizeName(name string) string {
	name = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(name)), "minecraft:")
	return strings.ReplaceAll(name, " ", "_")
}

type blockTable struct {
	all    []Block
	byID   map[int]int
	byName map[string]int
}

func newBlockTable(blocks []Block) *blockTable {
	t := &blockTable{
		all:    blocks,
		byID:   make(map[int]int, len(blocks)),
		byName: make(map[string]int, len(blocks)),
	}
	for i, b := range blocks {
		t.byID[b.ID] = i
		t.byName[normalizeName(b.Name)] = i
	}
	return t
}

func (t *blockTable) ByID(id int) (Block, bool) {
	i, ok := t.byID[id]
	if !ok {
		return Block{}, false
	}
	return t.all[i], true
}

func (t *blockTable) ByName(name string) (Block, bool) {
	i, ok := t.byName[normalizeName(name)]
	if !ok {
		return Block{}, false
	}
	return t.all[i], true
}

func (t *blockTable) All() []Block { return t.all }

type biomeTable struct {
	all    []Biome
	byID   map[int]int
	byName map[string]int
}

func newBiomeTable(biomes []Biome) *biomeTable {
	t := &biomeTable{
		all:    biomes,
		byID:   make(map[int]int, len(biomes)),
		byName: make(map[string]int, len(biomes)),
	}
	for i, b := range biomes {
		t.byID[b.ID] = i
		t.byName[normalizeName(b.Name)] = i
		if b.DisplayName != "" {
			if _, taken := t.byName[normalizeName(b.DisplayName)]; !taken {
				t.byName[normalizeName(b.DisplayName)] = i
			}
		}
	}
	return t
}

func (t *biomeTable) ByID(id int) (Biome, bool) {
	i, ok := t.byID[id]
	if !ok {
		return Biome{}, false
	}
	return t.all[i], true
}

func (t *biomeTable) ByName(name string) (Biome, bool) {
	i, ok := t.byName[normalizeName(name)]
	if !ok {
		return Biome{}, false
	}
	return t.all[i], true
}

func (t *biomeTable) All() []Biome { return t.all }
