// Package layout splits the lines of a text block into paragraphs.
//
// Lines are described by [model.RowInfo]: the distance of each line from the
// block edges, its reading direction and a few cues about its first and
// last words. The [Detector] assigns every row to a paragraph and reports
// the [model.ParagraphModel] each paragraph follows.
//
//	detector := layout.NewDetector()
//	result := detector.Detect(rows)
//	for _, start := range result.ParagraphStarts() {
//		fmt.Println(rows[start].Text)
//	}
//
// # Detection Passes
//
// Detection runs in passes over the rows, each pass only touching rows the
// previous ones could not explain:
//
//   - Leader lines - the middle one of three rows with leader dots, as in a
//     table of contents, is a paragraph of its own
//   - Strong evidence - rows whose first word would have fit on the previous
//     line and that start a sentence mark paragraph starts; runs of a start
//     and body lines become models, which are then smeared over the rows
//     around them
//   - Geometry - rows still unexplained are classified from the tab stops
//     of their outline alone
//   - Crowns - flush paragraphs seen only once are downgraded to crowns,
//     which later take the model of the text that follows
//
// Rows explained by none of the passes end up in paragraphs without a model.
//
// # Building Rows
//
// [BuildRowInfos] turns recognizer output ([TextBlock], [TextLine], [Word])
// into rows. [Detector.DetectBlock] does both steps at once.
//
// # Debugging
//
// Setting [Config].DebugLevel prints the detector state as a table after
// each pass. The output never affects the result.
package layout
