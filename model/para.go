package model

// NoModel marks a paragraph whose model could not be determined.
const NoModel = -1

// Para is one detected paragraph. Several rows share a Para.
type Para struct {
	// Model is the index of the paragraph's model in the result's model
	// list, or NoModel
	Model int `json:"model"`

	// IsListItem is true when the first line starts with a list marker
	IsListItem bool `json:"is_list_item"`

	// IsVeryFirstOrContinuation is true when the paragraph is the first of
	// a text flow or continues a paragraph from a previous block or page
	IsVeryFirstOrContinuation bool `json:"is_very_first_or_continuation"`

	// HasDropCap is true when the first line begins with a drop capital
	HasDropCap bool `json:"has_drop_cap"`
}

// HasModel returns true if the paragraph has a resolved model
func (p Para) HasModel() bool {
	return p.Model != NoModel
}
