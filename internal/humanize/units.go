package humanize

// Unit tables. They are read-only for the process lifetime and shared by
// concurrent formatters without synchronization.
var (
	decimalSuffixes = [...]string{
		" kB", " MB", " GB", " TB", " PB", " EB", " ZB", " YB", " RB", " QB",
	}
	binarySuffixes = [...]string{
		" KiB", " MiB", " GiB", " TiB", " PiB", " EiB", " ZiB", " YiB", " RiB", " QiB",
	}

	// scalePowers[i] is the lower bound of the bucket named scaleWords[i].
	// The last bucket is 10^100, not the next multiple of three.
	scalePowers = [...]float64{
		1e3, 1e6, 1e9, 1e12, 1e15, 1e18, 1e21, 1e24, 1e27, 1e30, 1e33, 1e100,
	}
	scaleWords = [...]string{
		"thousand",
		"million",
		"billion",
		"trillion",
		"quadrillion",
		"quintillion",
		"sextillion",
		"septillion",
		"octillion",
		"nonillion",
		"decillion",
		"googol",
	}
)

// gnuLetters holds the single-character GNU suffixes, one per power of 1024.
const gnuLetters = "KMGTPEZYRQ"

// ScaleWords returns a copy of the magnitude names used by IntWord, smallest
// first.
func ScaleWords() []string {
	out := make([]string, len(scaleWords))
	copy(out, scaleWords[:])
	return out
}
