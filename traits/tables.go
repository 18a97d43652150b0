package traits

// Fixed trait tables for the collection. Table order is load-bearing: Pick
// indexes by digest value modulo table length, so reordering or resizing a
// table changes every token's reveal.

// Backgrounds is the scene behind the character.
var Backgrounds = []string{
	"Sunset Orange",
	"Lagoon Teal",
	"Jungle Green",
	"Sandbar",
	"Dusk Violet",
	"Coral Pink",
	"Midnight",
	"Papaya Cream",
}

// Skins is the base body variety.
var Skins = []string{
	"Classic Mango",
	"Green Keitt",
	"Golden Ataulfo",
	"Ruby Tommy",
	"Honey Kent",
	"Jade",
	"Obsidian",
	"Albino",
}

// Eyes is the eye style.
var Eyes = []string{
	"Sleepy",
	"Wide",
	"Wink",
	"Laser Focus",
	"Starstruck",
	"Shades",
}

// Headwear sits on top; "None" is a legitimate outcome, not an absence.
var Headwear = []string{
	"None",
	"Straw Hat",
	"Crown",
	"Bandana",
	"Snapback",
	"Flower Clip",
	"Pilot Goggles",
}

// Accessories is the held or worn extra.
var Accessories = []string{
	"None",
	"Gold Chain",
	"Surfboard",
	"Maraca",
	"Boba Tea",
	"Machete",
}

// Specials is the bonus trait table, applied to roughly one token in five.
var Specials = []string{
	"Golden Aura",
	"Rainbow Drip",
	"Ghost Glow",
	"Tango Flames",
	"Diamond Skin",
}
