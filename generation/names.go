package generation

import (
	"math/rand"
	"strings"
)

var (
	nameStarts  = []string{"A", "Bel", "Cor", "Del", "Es", "Fa", "Ga", "Hy", "Is", "Ka", "Lem", "Mar", "Nor", "Or", "Pel", "Tal", "Ul", "Zan"}
	nameMiddles = []string{"", "a", "an", "ar", "el", "i", "o", "or", "u"}
	nameEnds    = []string{"ia", "is", "on", "os", "ra", "ta", "the", "us", "ys"}
)

// namer hands out island names, never the same one twice
type namer struct {
	rng  *rand.Rand
	used map[string]bool
}

func newNamer(rng *rand.Rand) *namer {
	return &namer{rng: rng, used: make(map[string]bool)}
}

func (n *namer) next() string {
	var b strings.Builder
	for {
		b.Reset()
		b.WriteString(nameStarts[n.rng.Intn(len(nameStarts))])
		b.WriteString(nameMiddles[n.rng.Intn(len(nameMiddles))])
		b.WriteString(nameEnds[n.rng.Intn(len(nameEnds))])

		name := b.String()
		if n.used[name] {
			// numbered once the syllables run out of fresh combinations
			name = name + " " + romanSuffix(countPrefix(n.used, name)+1)
		}
		if !n.used[name] {
			n.used[name] = true
			return name
		}
	}
}

// countPrefix counts the names already handed out that start with base
func countPrefix(used map[string]bool, base string) int {
	count := 0
	for name := range used {
		if strings.HasPrefix(name, base) {
			count++
		}
	}
	return count
}

func romanSuffix(n int) string {
	numerals := []struct {
		value  int
		symbol string
	}{
		{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
		{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
		{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
	}
	var b strings.Builder
	for _, num := range numerals {
		for n >= num.value {
			b.WriteString(num.symbol)
			n -= num.value
		}
	}
	return b.String()
}
