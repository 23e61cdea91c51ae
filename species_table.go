package npc

// DefaultSpecies returns the built-in species table without constructors.
func DefaultSpecies() []Species {
	return []Species{
		{Key: "Human", Name: "Human", NetworkID: "minecraft:player", Height: 1.8, Width: 0.6, Human: true},

		{Key: "Allay", Name: "Allay", NetworkID: "minecraft:allay", Height: 0.6, Width: 0.35},
		{Key: "Armadillo", Name: "Armadillo", NetworkID: "minecraft:armadillo", Height: 0.65, Width: 0.7, Ageable: true},
		{Key: "Axolotl", Name: "Axolotl", NetworkID: "minecraft:axolotl", Height: 0.42, Width: 0.75, Ageable: true},
		{Key: "Bat", Name: "Bat", NetworkID: "minecraft:bat", Height: 0.9, Width: 0.5},
		{Key: "Bee", Name: "Bee", NetworkID: "minecraft:bee", Height: 0.5, Width: 0.55, Ageable: true},
		{Key: "Blaze", Name: "Blaze", NetworkID: "minecraft:blaze", Height: 1.8, Width: 0.6},
		{Key: "Camel", Name: "Camel", NetworkID: "minecraft:camel", Height: 2.375, Width: 1.7, Ageable: true},
		{Key: "Cat", Name: "Cat", NetworkID: "minecraft:cat", Height: 0.7, Width: 0.6, Ageable: true},
		{Key: "CaveSpider", Name: "Cave Spider", NetworkID: "minecraft:cave_spider", Height: 0.5, Width: 0.7},
		{Key: "Chicken", Name: "Chicken", NetworkID: "minecraft:chicken", Height: 0.7, Width: 0.4, Ageable: true},
		{Key: "Cod", Name: "Cod", NetworkID: "minecraft:cod", Height: 0.3, Width: 0.5},
		{Key: "Cow", Name: "Cow", NetworkID: "minecraft:cow", Height: 1.4, Width: 0.9, Ageable: true},
		{Key: "Creeper", Name: "Creeper", NetworkID: "minecraft:creeper", Height: 1.8, Width: 0.6},
		{Key: "Dolphin", Name: "Dolphin", NetworkID: "minecraft:dolphin", Height: 0.6, Width: 0.9},
		{Key: "Donkey", Name: "Donkey", NetworkID: "minecraft:donkey", Height: 1.6, Width: 1.4, Ageable: true},
		{Key: "Drowned", Name: "Drowned", NetworkID: "minecraft:drowned", Height: 1.95, Width: 0.6, Ageable: true},
		{Key: "ElderGuardian", Name: "Elder Guardian", NetworkID: "minecraft:elder_guardian", Height: 1.99, Width: 1.99},
		{Key: "EnderDragon", Name: "Ender Dragon", NetworkID: "minecraft:ender_dragon", Height: 4, Width: 13},
		{Key: "Enderman", Name: "Enderman", NetworkID: "minecraft:enderman", Height: 2.9, Width: 0.6},
		{Key: "Endermite", Name: "Endermite", NetworkID: "minecraft:endermite", Height: 0.3, Width: 0.4},
		{Key: "EvocationIllager", Name: "Evoker", NetworkID: "minecraft:evocation_illager", Height: 1.95, Width: 0.6},
		{Key: "Fox", Name: "Fox", NetworkID: "minecraft:fox", Height: 0.7, Width: 0.6, Ageable: true},
		{Key: "Frog", Name: "Frog", NetworkID: "minecraft:frog", Height: 0.55, Width: 0.5},
		{Key: "Ghast", Name: "Ghast", NetworkID: "minecraft:ghast", Height: 4, Width: 4.02},
		{Key: "GlowSquid", Name: "Glow Squid", NetworkID: "minecraft:glow_squid", Height: 0.95, Width: 0.95, Ageable: true},
		{Key: "Goat", Name: "Goat", NetworkID: "minecraft:goat", Height: 1.3, Width: 0.9, Ageable: true},
		{Key: "Guardian", Name: "Guardian", NetworkID: "minecraft:guardian", Height: 0.85, Width: 0.85},
		{Key: "Hoglin", Name: "Hoglin", NetworkID: "minecraft:hoglin", Height: 1.4, Width: 1.3965, Ageable: true},
		{Key: "Horse", Name: "Horse", NetworkID: "minecraft:horse", Height: 1.6, Width: 1.3965, Ageable: true},
		{Key: "Husk", Name: "Husk", NetworkID: "minecraft:husk", Height: 1.95, Width: 0.6, Ageable: true},
		{Key: "IronGolem", Name: "Iron Golem", NetworkID: "minecraft:iron_golem", Height: 2.9, Width: 1.4},
		{Key: "Llama", Name: "Llama", NetworkID: "minecraft:llama", Height: 1.87, Width: 0.9, Ageable: true},
		{Key: "LlamaSpit", Name: "Llama Spit", NetworkID: "minecraft:llama_spit", Height: 0.25, Width: 0.25},
		{Key: "MagmaCube", Name: "Magma Cube", NetworkID: "minecraft:magma_cube", Height: 2.08, Width: 2.08},
		{Key: "Mooshroom", Name: "Mooshroom", NetworkID: "minecraft:mooshroom", Height: 1.4, Width: 0.9, Ageable: true},
		{Key: "Mule", Name: "Mule", NetworkID: "minecraft:mule", Height: 1.6, Width: 1.3965, Ageable: true},
		{Key: "Ocelot", Name: "Ocelot", NetworkID: "minecraft:ocelot", Height: 0.7, Width: 0.6, Ageable: true},
		{Key: "Panda", Name: "Panda", NetworkID: "minecraft:panda", Height: 1.25, Width: 1.3, Ageable: true},
		{Key: "Parrot", Name: "Parrot", NetworkID: "minecraft:parrot", Height: 1, Width: 0.5},
		{Key: "Phantom", Name: "Phantom", NetworkID: "minecraft:phantom", Height: 0.5, Width: 0.9},
		{Key: "Pig", Name: "Pig", NetworkID: "minecraft:pig", Height: 0.9, Width: 0.9, Ageable: true},
		{Key: "PiglinBrute", Name: "Piglin Brute", NetworkID: "minecraft:piglin_brute", Height: 1.9, Width: 0.6},
		{Key: "Piglin", Name: "Piglin", NetworkID: "minecraft:piglin", Height: 1.9, Width: 0.6, Ageable: true},
		{Key: "Pillager", Name: "Pillager", NetworkID: "minecraft:pillager", Height: 1.95, Width: 0.6},
		{Key: "PolarBear", Name: "Polar Bear", NetworkID: "minecraft:polar_bear", Height: 1.4, Width: 1.4, Ageable: true},
		{Key: "Pufferfish", Name: "Pufferfish", NetworkID: "minecraft:pufferfish", Height: 0.8, Width: 0.8},
		{Key: "Rabbit", Name: "Rabbit", NetworkID: "minecraft:rabbit", Height: 0.5, Width: 0.4, Ageable: true},
		{Key: "Ravager", Name: "Ravager", NetworkID: "minecraft:ravager", Height: 2.2, Width: 1.95},
		{Key: "Salmon", Name: "Salmon", NetworkID: "minecraft:salmon", Height: 0.5, Width: 0.5},
		{Key: "Sheep", Name: "Sheep", NetworkID: "minecraft:sheep", Height: 1.3, Width: 0.9, Ageable: true},
		{Key: "Silverfish", Name: "Silverfish", NetworkID: "minecraft:silverfish", Height: 0.3, Width: 0.4},
		{Key: "SkeletonHorse", Name: "Skeleton Horse", NetworkID: "minecraft:skeleton_horse", Height: 1.6, Width: 1.3965, Ageable: true},
		{Key: "Skeleton", Name: "Skeleton", NetworkID: "minecraft:skeleton", Height: 1.99, Width: 0.6},
		{Key: "Slime", Name: "Slime", NetworkID: "minecraft:slime", Height: 2.08, Width: 2.08},
		{Key: "Sniffer", Name: "Sniffer", NetworkID: "minecraft:sniffer", Height: 1.75, Width: 1.9, Ageable: true},
		{Key: "Spider", Name: "Spider", NetworkID: "minecraft:spider", Height: 0.9, Width: 1.4},
		{Key: "Squid", Name: "Squid", NetworkID: "minecraft:squid", Height: 0.95, Width: 0.95, Ageable: true},
		{Key: "Stray", Name: "Stray", NetworkID: "minecraft:stray", Height: 1.9, Width: 0.6},
		{Key: "Strider", Name: "Strider", NetworkID: "minecraft:strider", Height: 1.7, Width: 0.9, Ageable: true},
		{Key: "Tadpole", Name: "Tadpole", NetworkID: "minecraft:tadpole", Height: 0.3, Width: 0.4},
		{Key: "TraderLlama", Name: "Trader Llama", NetworkID: "minecraft:trader_llama", Height: 1.87, Width: 0.9, Ageable: true},
		{Key: "Tropicalfish", Name: "Tropical Fish", NetworkID: "minecraft:tropicalfish", Height: 0.4, Width: 0.5},
		{Key: "Turtle", Name: "Turtle", NetworkID: "minecraft:turtle", Height: 0.4, Width: 1.2, Ageable: true},
		{Key: "Vex", Name: "Vex", NetworkID: "minecraft:vex", Height: 0.8, Width: 0.4},
		{Key: "Villager", Name: "Villager", NetworkID: "minecraft:villager", Height: 1.9, Width: 0.6, Ageable: true},
		{Key: "VillagerV2", Name: "Villager", NetworkID: "minecraft:villager_v2", Height: 1.9, Width: 0.6, Ageable: true},
		{Key: "Vindicator", Name: "Vindicator", NetworkID: "minecraft:vindicator", Height: 1.9, Width: 0.6},
		{Key: "WanderingTrader", Name: "Wandering Trader", NetworkID: "minecraft:wandering_trader", Height: 1.9, Width: 0.6},
		{Key: "Warden", Name: "Warden", NetworkID: "minecraft:warden", Height: 2.9, Width: 0.9},
		{Key: "Witch", Name: "Witch", NetworkID: "minecraft:witch", Height: 1.95, Width: 0.6},
		{Key: "WitherSkeleton", Name: "Wither Skeleton", NetworkID: "minecraft:wither_skeleton", Height: 2.4, Width: 0.7},
		{Key: "Wither", Name: "Wither", NetworkID: "minecraft:wither", Height: 3.5, Width: 0.9},
		{Key: "Wolf", Name: "Wolf", NetworkID: "minecraft:wolf", Height: 0.85, Width: 0.6, Ageable: true},
		{Key: "Zoglin", Name: "Zoglin", NetworkID: "minecraft:zoglin", Height: 0.85, Width: 0.85, Ageable: true},
		{Key: "ZombieHorse", Name: "Zombie Horse", NetworkID: "minecraft:zombie_horse", Height: 1.6, Width: 1.3965, Ageable: true},
		{Key: "Zombie", Name: "Zombie", NetworkID: "minecraft:zombie", Height: 1.95, Width: 0.6, Ageable: true},
		{Key: "ZombieVillager", Name: "Zombie Villager", NetworkID: "minecraft:zombie_villager", Height: 1.9, Width: 0.6, Ageable: true},
		{Key: "ZombieVillagerV2", Name: "Zombie Villager", NetworkID: "minecraft:zombie_villager_v2", Height: 1.9, Width: 0.6, Ageable: true},
	}
}
