package layout

import (
	"github.com/tsawler/parafind/model"
)

// modelID is the stable position of a model in the theory's arena.
type modelID int

type theoryEntry struct {
	model model.ParagraphModel
	owned bool // added during detection, as opposed to seeded by the caller
	live  bool
}

// theory is the set of paragraph models known while detecting one block.
// Entries are never moved, so a modelID stays valid for the lifetime of the
// theory even after the model it names has been discarded.
type theory struct {
	entries []theoryEntry
}

func newTheory(seed []model.ParagraphModel) *theory {
	t := &theory{entries: make([]theoryEntry, 0, len(seed)+8)}
	for _, m := range seed {
		t.entries = append(t.entries, theoryEntry{model: m, live: true})
	}
	return t
}

// model returns the model a strong reference points to.
func (t *theory) model(ref modelRef) model.ParagraphModel {
	return t.entries[ref.id].model
}

// addModel returns the first live model Comparable with m, registering m
// as a new owned model when there is none.
func (t *theory) addModel(m model.ParagraphModel) modelRef {
	for i, e := range t.entries {
		if e.live && e.model.Comparable(m) {
			return strongRef(modelID(i))
		}
	}
	t.entries = append(t.entries, theoryEntry{model: m, owned: true, live: true})
	return strongRef(modelID(len(t.entries) - 1))
}

// discardUnusedModels retires owned models that are not in used. Seeded
// models always survive.
func (t *theory) discardUnusedModels(used modelSet) {
	for i := range t.entries {
		e := &t.entries[i]
		if e.live && e.owned && !used.contains(strongRef(modelID(i))) {
			e.live = false
		}
	}
}

// liveModels returns references to every live model in arena order.
func (t *theory) liveModels() modelSet {
	var set modelSet
	for i, e := range t.entries {
		if e.live {
			set = append(set, strongRef(modelID(i)))
		}
	}
	return set
}

func (t *theory) nonCenteredModels() modelSet {
	var set modelSet
	for i, e := range t.entries {
		if e.live && e.model.Justification() != model.JustifyCenter {
			set = append(set, strongRef(modelID(i)))
		}
	}
	return set
}

// indexOf returns the position of ref among the live models, or -1.
func (t *theory) indexOf(ref modelRef) int {
	if !ref.isStrong() {
		return -1
	}
	idx := 0
	for i, e := range t.entries {
		if !e.live {
			continue
		}
		if modelID(i) == ref.id {
			return idx
		}
		idx++
	}
	return -1
}
