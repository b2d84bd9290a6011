package sentences

var defaultSentences = []string{
	"The quick brown fox jumps over the lazy dog.",
	"Pack my box with five dozen liquor jugs.",
	"How vexingly quick daft zebras jump!",
	"Sphinx of black quartz, judge my vow.",
	"The five boxing wizards jump quickly.",
	"A journey of a thousand miles begins with a single step.",
	"Practice makes perfect, but nobody is perfect.",
	"Typing fast is useless if every other word is wrong.",
	"Keep your eyes on the screen and your fingers on the home row.",
	"Slow is smooth, and smooth is fast.",
	"Jackdaws love my big sphinx of quartz.",
	"We promptly judged antique ivory buckles for the next prize.",
	"Amazingly few discotheques provide jukeboxes.",
	"The early bird catches the worm, but the second mouse gets the cheese.",
	"All work and no play makes for a very dull keyboard.",
}

// Default returns the built-in sentence set used when no custom file is
// configured.
func Default() []string {
	out := make([]string, len(defaultSentences))
	copy(out, defaultSentences)
	return out
}
