package model

import "sort"

// ClassCount is the number of images labeled with one class
type ClassCount struct {
	Name  string
	Count int
}

// Stats summarizes how far labeling has progressed
type Stats struct {
	Images    int
	Labeled   int
	Unlabeled int
	PerClass  []ClassCount
}

// Stats counts labels over paths. When paths is nil every image in the document
// is counted.
func (d *LabelDocument) Stats(paths []string) Stats {
	if paths == nil {
		paths = make([]string, 0, len(d.Labels))
		for path := range d.Labels {
			paths = append(paths, path)
		}
		sort.Strings(paths)
	}

	stats := Stats{
		Images:   len(paths),
		PerClass: make([]ClassCount, len(d.Classes)),
	}
	for i, class := range d.Classes {
		stats.PerClass[i].Name = class
	}

	for _, path := range paths {
		labeled := false
		for i, value := range d.Labels[path] {
			if i >= len(d.Classes) {
				break
			}
			if value {
				stats.PerClass[i].Count++
				labeled = true
			}
		}
		if labeled {
			stats.Labeled++
		}
	}
	stats.Unlabeled = stats.Images - stats.Labeled
	return stats
}
