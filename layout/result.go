package layout

import (
	"github.com/tsawler/parafind/model"
)

// paragraph is a paragraph under construction. Rows point to a shared
// *paragraph until the result is built.
type paragraph struct {
	ref                       modelRef
	isListItem                bool
	isVeryFirstOrContinuation bool
	hasDropCap                bool
}

// Result is the paragraph segmentation of one block
type Result struct {
	// RowOwners holds, for every input row, the index of its paragraph in
	// Paragraphs
	RowOwners []int `json:"row_owners"`

	// Paragraphs are the detected paragraphs in row order
	Paragraphs []model.Para `json:"paragraphs"`

	// Models are the paragraph models referenced by Paragraphs
	Models []model.ParagraphModel `json:"models"`
}

// ParagraphCount returns the number of paragraphs
func (r *Result) ParagraphCount() int {
	return len(r.Paragraphs)
}

// ParagraphOf returns the paragraph owning row, or nil if row is out of range
func (r *Result) ParagraphOf(row int) *model.Para {
	if row < 0 || row >= len(r.RowOwners) {
		return nil
	}
	return &r.Paragraphs[r.RowOwners[row]]
}

// ModelOf returns the model of the paragraph at index para. The second
// return value is false if the paragraph has no model.
func (r *Result) ModelOf(para int) (model.ParagraphModel, bool) {
	if para < 0 || para >= len(r.Paragraphs) || !r.Paragraphs[para].HasModel() {
		return model.ParagraphModel{}, false
	}
	return r.Models[r.Paragraphs[para].Model], true
}

// ParagraphStarts returns the index of the first row of every paragraph
func (r *Result) ParagraphStarts() []int {
	var starts []int
	for i, owner := range r.RowOwners {
		if i == 0 || owner != r.RowOwners[i-1] {
			starts = append(starts, i)
		}
	}
	return starts
}

// canonicalize gives every row a paragraph. A run of rows without one
// shares a single new paragraph that has no model.
func canonicalize(owners []*paragraph) []*paragraph {
	var unowned *paragraph
	for i := range owners {
		if owners[i] != nil {
			continue
		}
		if i == 0 || owners[i-1] != unowned {
			unowned = &paragraph{}
		}
		owners[i] = unowned
	}
	return owners
}

// buildResult numbers the paragraphs in row order and the models they use
// in theory order.
func (d *detection) buildResult(owners []*paragraph) *Result {
	result := &Result{
		RowOwners:  make([]int, len(owners)),
		Paragraphs: []model.Para{},
		Models:     []model.ParagraphModel{},
	}

	used := make(map[modelID]bool)
	for _, p := range owners {
		if p.ref.isStrong() {
			used[p.ref.id] = true
		}
	}
	modelIndex := make(map[modelID]int, len(used))
	for i, e := range d.theory.entries {
		if used[modelID(i)] {
			modelIndex[modelID(i)] = len(result.Models)
			result.Models = append(result.Models, e.model)
		}
	}

	for i, p := range owners {
		if i > 0 && owners[i-1] == p {
			result.RowOwners[i] = result.RowOwners[i-1]
			continue
		}
		para := model.Para{
			Model:                     model.NoModel,
			IsListItem:                p.isListItem,
			IsVeryFirstOrContinuation: p.isVeryFirstOrContinuation,
			HasDropCap:                p.hasDropCap,
		}
		if p.ref.isStrong() {
			para.Model = modelIndex[p.ref.id]
		}
		result.RowOwners[i] = len(result.Paragraphs)
		result.Paragraphs = append(result.Paragraphs, para)
	}
	return result
}

// unmodeledResult puts all numRows rows in one paragraph without a model.
func unmodeledResult(numRows int) *Result {
	owners := make([]*paragraph, numRows)
	d := &detection{theory: newTheory(nil)}
	return d.buildResult(canonicalize(owners))
}
