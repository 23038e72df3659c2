package display

// Tips are general casserole pointers shown by the tips command.
var Tips = []string{
	"Par-cook pasta and rice 2 minutes short; they finish in the oven.",
	"Squeeze thawed spinach dry or the casserole turns soupy.",
	"Brown raw meat first. The oven will not do it for you.",
	"Bake at 350°F (175°C), covered for the first 20 minutes, uncovered for the rest.",
	"Add crunchy toppers in the last 10 minutes so they stay crisp.",
	"Let it rest 10 minutes before cutting so the binder sets.",
	"A 9x13 dish feeds about 8; halve everything for an 8x8.",
	"Most casseroles freeze well before baking. Add 20 minutes from frozen.",
	"Too thick? Loosen the binder with a splash of milk or stock.",
	"Season every layer, not just the top.",
}
