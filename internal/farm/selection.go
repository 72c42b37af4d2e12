package farm

import "sort"

// Selection is the set of mutation names chosen for one harvested crop. It is
// owned by the caller; the rule and pricing functions only read it.
type Selection map[string]struct{}

func NewSelection(names ...string) Selection {
	s := make(Selection, len(names))
	for _, name := range names {
		s[name] = struct{}{}
	}
	return s
}

func (s Selection) Has(name string) bool {
	_, ok := s[name]
	return ok
}

func (s Selection) Add(name string) {
	s[name] = struct{}{}
}

func (s Selection) Remove(name string) {
	delete(s, name)
}

func (s Selection) Len() int {
	return len(s)
}

// Names returns the selection sorted by name.
func (s Selection) Names() []string {
	out := make([]string, 0, len(s))
	for name := range s {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// BaseOptions lists the base mutations a player may pick for crop. Starry is
// only offered on moon crops.
func BaseOptions(crop Crop) []string {
	out := make([]string, 0, len(baseMutations))
	for _, name := range baseMutations {
		if name == MutationStarry && !crop.UnlocksGated() {
			continue
		}
		out = append(out, name)
	}
	return out
}
