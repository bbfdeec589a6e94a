package discovery

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Versions returns every version published for name, in directory order.
func (d *Directory) Versions(name string) []string {
	var versions []string
	for _, item := range d.Items {
		if item.Name == name {
			versions = append(versions, item.Version)
		}
	}
	return versions
}

// Merge adds extras to the directory. An extra replaces the item with the
// same name and version; new identities are appended.
func (d *Directory) Merge(extras []Descriptor) {
	index := make(map[string]int, len(d.Items))
	for i, item := range d.Items {
		index[item.Key()] = i
	}
	for _, extra := range extras {
		if i, ok := index[extra.Key()]; ok {
			d.Items[i] = extra
			continue
		}
		index[extra.Key()] = len(d.Items)
		d.Items = append(d.Items, extra)
	}
}

// Sorted returns the items ordered by title (or name) using English
// collation. Items with equal keys keep their directory order.
func (d *Directory) Sorted() []Descriptor {
	sorted := slices.Clone(d.Items)
	c := collate.New(language.English)
	slices.SortStableFunc(sorted, func(a, b Descriptor) int {
		return c.CompareString(a.SortKey(), b.SortKey())
	})
	return sorted
}
