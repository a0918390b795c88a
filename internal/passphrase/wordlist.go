package passphrase

import (
	"bufio"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
)

// ListKind selects one of the named wordlists.
type ListKind string

const (
	ListDiceware ListKind = "diceware"
	ListBIP39    ListKind = "bip39"
)

const (
	dicewareFile = "diceware_eff.txt"
	bip39File    = "bip39_english.txt"
)

var ErrUnknownWordlist = errors.New("unknown wordlist type")

// Wordlist is an ordered, immutable sequence of words loaded once and read
// concurrently thereafter.
type Wordlist struct {
	Kind  ListKind
	Words []string
	// Fallback is set when the canonical on-disk list was unavailable and the
	// small built-in list is in use. Entropy figures derived from a fallback
	// list are much lower than the canonical ones and callers must be told.
	Fallback bool

	distinct int
}

// LoadWordlist loads the named list from dir. A missing or unreadable file
// falls back to the built-in list with Fallback set; an unknown kind is an
// error.
func LoadWordlist(dir string, kind ListKind) (*Wordlist, error) {
	var path string
	var parse func(*os.File) ([]string, error)

	switch kind {
	case ListDiceware:
		path = filepath.Join(dir, dicewareFile)
		parse = parseDiceware
	case ListBIP39:
		path = filepath.Join(dir, bip39File)
		parse = parsePlain
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownWordlist, kind)
	}

	f, err := os.Open(path)
	if err != nil {
		return newWordlist(kind, fallbackWords, true), nil
	}
	defer f.Close()

	words, err := parse(f)
	if err != nil || len(words) == 0 {
		return newWordlist(kind, fallbackWords, true), nil
	}
	return newWordlist(kind, words, false), nil
}

func newWordlist(kind ListKind, words []string, fallback bool) *Wordlist {
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		seen[w] = struct{}{}
	}
	return &Wordlist{Kind: kind, Words: words, Fallback: fallback, distinct: len(seen)}
}

// Size returns the number of entries in the list.
func (wl *Wordlist) Size() int {
	return len(wl.Words)
}

// BitsPerWord returns the entropy contributed by one uniform draw, computed
// from the count of distinct words actually present. For the canonical lists
// this equals log2(nominal size); for the fallback list it is honest about
// the reduced pool.
func (wl *Wordlist) BitsPerWord() float64 {
	if wl.distinct == 0 {
		return 0
	}
	return math.Log2(float64(wl.distinct))
}

// parseDiceware reads the diceware format: one "index word" pair per line,
// e.g. "11111 abacus".
func parseDiceware(f *os.File) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 2 {
			words = append(words, fields[1])
		}
	}
	return words, scanner.Err()
}

// parsePlain reads one word per line.
func parsePlain(f *os.File) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			words = append(words, line)
		}
	}
	return words, scanner.Err()
}

// fallbackWords backs passphrase generation when no canonical list file is
// present. It is deliberately small and never tiled to a nominal size.
var fallbackWords = []string{
	"able", "acid", "acorn", "actor", "adult", "agent", "alarm", "album",
	"alley", "amber", "angle", "ankle", "apple", "apron", "arrow", "aspen",
	"atlas", "attic", "bacon", "badge", "bagel", "basil", "beach", "beard",
	"bench", "birch", "bison", "blade", "blaze", "bloom", "bolt", "brick",
	"brook", "broom", "cabin", "cable", "camel", "canal", "candy", "canoe",
	"cargo", "cedar", "chalk", "chess", "chime", "cider", "clamp", "cliff",
	"cloak", "clock", "cloud", "cobra", "comet", "coral", "crane", "crate",
	"creek", "crown", "cubic", "daisy", "decal", "delta", "denim", "diary",
	"dome", "donor", "dough", "dozen", "eagle", "easel", "ebony", "elbow",
	"ember", "envoy", "fable", "fence", "ferry", "fiber", "flame", "flock",
	"forge", "fossil", "frost", "gecko", "giant", "ginger", "glade", "globe",
	"gourd", "grain", "grove", "harbor", "hazel", "heron", "hinge", "ivory",
	"jade", "jaguar", "juniper", "kayak", "kettle", "laser", "ledge", "lemon",
	"lilac", "lunar", "mango", "maple", "marble", "meadow", "mint", "mosaic",
	"nectar", "noble", "ocean", "onyx", "orbit", "otter", "pearl", "pebble",
	"pine", "plume", "quartz", "raven", "ridge", "saddle", "timber", "walnut",
}
