package cpu

import (
	"iter"
)

// Label is a named instruction address.
type Label struct {
	Name   string // Label name, without the trailing ':'.
	Ip     int    // Instruction address.
	LineNo int    // Source line of the definition.
}

// LabelTable maps label names to instruction addresses, in definition order.
// The first definition of a name wins.
type LabelTable struct {
	index  map[string]int
	labels []Label
}

// Define adds a label. If the name is already defined the table is unchanged,
// and the error reports the duplicate.
func (lt *LabelTable) Define(name string, ip int, lineno int) (err error) {
	if lt.index == nil {
		lt.index = make(map[string]int, 16)
	}

	if _, ok := lt.index[name]; ok {
		err = ErrLabelDuplicate
		return
	}

	lt.index[name] = len(lt.labels)
	lt.labels = append(lt.labels, Label{Name: name, Ip: ip, LineNo: lineno})

	return
}

// Lookup finds the address of a label.
func (lt *LabelTable) Lookup(name string) (ip int, ok bool) {
	n, ok := lt.index[name]
	if !ok {
		return
	}

	ip = lt.labels[n].Ip
	return
}

// Len returns the number of defined labels.
func (lt *LabelTable) Len() int {
	return len(lt.labels)
}

// Reset removes all labels.
func (lt *LabelTable) Reset() {
	clear(lt.index)
	lt.labels = lt.labels[:0]
}

// All iterates over the labels in definition order.
func (lt *LabelTable) All() iter.Seq2[string, int] {
	return func(yield func(name string, ip int) bool) {
		for _, label := range lt.labels {
			if !yield(label.Name, label.Ip) {
				return
			}
		}
	}
}

// Labels returns a copy of the label definitions.
func (lt *LabelTable) Labels() (labels []Label) {
	labels = append(labels, lt.labels...)
	return
}
