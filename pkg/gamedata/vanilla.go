package gamedata

// Vanilla is the built-in version name.
const Vanilla = "vanilla"

func init() {
	Register(Vanilla, func() *GameData {
		return New(Vanilla, vanillaBlocks(), vanillaBiomes())
	})
}

// vanillaBlocks returns the 1.8 blocks used by the built-in generators.
func vanillaBlocks() []Block {
	return []Block{
		{ID: 0, Name: "air", DisplayName: "Air", Transparent: true},
		{ID: 1, Name: "stone", DisplayName: "Stone", Diggable: true, Material: "rock"},
		{ID: 2, Name: "grass", DisplayName: "Grass Block", Diggable: true, Material: "dirt"},
		{ID: 3, Name: "dirt", DisplayName: "Dirt", Diggable: true, Material: "dirt"},
		{ID: 4, Name: "cobblestone", DisplayName: "Cobblestone", Diggable: true, Material: "rock"},
		{ID: 5, Name: "planks", DisplayName: "Wood Planks", Diggable: true, Material: "wood"},
		{ID: 7, Name: "bedrock", DisplayName: "Bedrock"},
		{ID: 8, Name: "flowing_water", DisplayName: "Water", Transparent: true},
		{ID: 9, Name: "water", DisplayName: "Stationary Water", Transparent: true},
		{ID: 10, Name: "flowing_lava", DisplayName: "Lava", Transparent: true, EmitLight: 15},
		{ID: 11, Name: "lava", DisplayName: "Stationary Lava", Transparent: true, EmitLight: 15},
		{ID: 12, Name: "sand", DisplayName: "Sand", Diggable: true, Material: "dirt"},
		{ID: 13, Name: "gravel", DisplayName: "Gravel", Diggable: true, Material: "dirt"},
		{ID: 17, Name: "log", DisplayName: "Wood", Diggable: true, Material: "wood", Variations: []Variation{
			{Metadata: 0, DisplayName: "Oak Wood"},
			{Metadata: 1, DisplayName: "Spruce Wood"},
			{Metadata: 2, DisplayName: "Birch Wood"},
		}},
		{ID: 18, Name: "leaves", DisplayName: "Leaves", Diggable: true, Material: "leaves", Transparent: true, Variations: []Variation{
			{Metadata: 0, DisplayName: "Oak Leaves"},
			{Metadata: 1, DisplayName: "Spruce Leaves"},
			{Metadata: 2, DisplayName: "Birch Leaves"},
		}},
		{ID: 24, Name: "sandstone", DisplayName: "Sandstone", Diggable: true, Material: "rock"},
		{ID: 31, Name: "tallgrass", DisplayName: "Grass", Diggable: true, Transparent: true},
		{ID: 37, Name: "yellow_flower", DisplayName: "Dandelion", Diggable: true, Transparent: true},
		{ID: 38, Name: "red_flower", DisplayName: "Poppy", Diggable: true, Transparent: true},
		{ID: 81, Name: "cactus", DisplayName: "Cactus", Diggable: true, Material: "plant"},
	}
}

// vanillaBiomes returns the 1.8 overworld biomes.
func vanillaBiomes() []Biome {
	return []Biome{
		{ID: 0, Name: "ocean", DisplayName: "Ocean", Category: "ocean", Temperature: 0.5, Rainfall: 0.5},
		{ID: 1, Name: "plains", DisplayName: "Plains", Category: "plains", Temperature: 0.8, Rainfall: 0.4},
		{ID: 2, Name: "desert", DisplayName: "Desert", Category: "desert", Temperature: 2, Rainfall: 0},
		{ID: 3, Name: "extreme_hills", DisplayName: "Extreme Hills", Category: "extreme_hills", Temperature: 0.2, Rainfall: 0.3},
		{ID: 4, Name: "forest", DisplayName: "Forest", Category: "forest", Temperature: 0.7, Rainfall: 0.8},
		{ID: 5, Name: "taiga", DisplayName: "Taiga", Category: "taiga", Temperature: 0.25, Rainfall: 0.8},
		{ID: 12, Name: "ice_plains", DisplayName: "Ice Plains", Category: "icy", Temperature: 0, Rainfall: 0.5},
		{ID: 16, Name: "beach", DisplayName: "Beach", Category: "beach", Temperature: 0.8, Rainfall: 0.4},
		{ID: 21, Name: "jungle", DisplayName: "Jungle", Category: "jungle", Temperature: 0.95, Rainfall: 0.9},
		{ID: 29, Name: "roofed_forest", DisplayName: "Roofed Forest", Category: "forest", Temperature: 0.7, Rainfall: 0.8},
		{ID: 30, Name: "cold_taiga", DisplayName: "Cold Taiga", Category: "taiga", Temperature: -0.5, Rainfall: 0.4},
		{ID: 35, Name: "savanna", DisplayName: "Savanna", Category: "savanna", Temperature: 1.2, Rainfall: 0},
	}
}

// MustVanilla returns the built-in GameData.
func MustVanilla() *GameData {
	gd, err := Load(Vanilla)
	if err != nil {
		panic(err)
	}
	return gd
}
