package layout

import (
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/tsawler/parafind/model"
)

// Config holds configuration for paragraph detection
type Config struct {
	// DebugLevel controls the debug channel. 0 is silent, 1 prints the final
	// segmentation, 2 adds a dump after every pass along with the reasons a
	// classifier gave up, 3 adds the initial strong signals and tab stops.
	// Debug output never changes the result.
	DebugLevel int

	// Logger receives software-error diagnostics and debug narrative.
	// Default: a no-op logger
	Logger *zap.Logger

	// DebugOutput receives the detector state tables.
	// Default: os.Stderr when DebugLevel > 0
	DebugOutput io.Writer
}

// DefaultConfig returns a silent configuration
func DefaultConfig() Config {
	return Config{
		Logger: zap.NewNop(),
	}
}

// Detector splits the rows of a text block into paragraphs.
//
// A Detector is immutable once built and can be shared between goroutines;
// every call to Detect works on its own state.
type Detector struct {
	config Config
}

// NewDetector creates a detector with default configuration
func NewDetector() *Detector {
	return NewDetectorWithConfig(DefaultConfig())
}

// NewDetectorWithConfig creates a detector with custom configuration
func NewDetectorWithConfig(config Config) *Detector {
	if config.Logger == nil {
		config.Logger = zap.NewNop()
	}
	if config.DebugOutput == nil && config.DebugLevel > 0 {
		config.DebugOutput = os.Stderr
	}
	if config.DebugOutput == nil {
		config.DebugOutput = io.Discard
	}
	return &Detector{config: config}
}

// Detect assigns every row of a block to a paragraph.
func (d *Detector) Detect(rows []model.RowInfo) *Result {
	return d.DetectWithModels(rows, nil)
}

// DetectWithModels is like Detect but starts from models already known for
// the text, for example models found on a previous page. Seeded models are
// reused whenever a comparable model would otherwise be created, and they
// are never discarded.
func (d *Detector) DetectWithModels(rows []model.RowInfo, seed []model.ParagraphModel) *Result {
	det := d.newDetection(rows, seed)
	owners := det.run()
	return det.buildResult(canonicalize(owners))
}

func (d *Detector) newDetection(rows []model.RowInfo, seed []model.ParagraphModel) *detection {
	det := &detection{
		rows:       make([]scratchRow, len(rows)),
		theory:     newTheory(seed),
		debugLevel: d.config.DebugLevel,
		logger:     d.config.Logger,
		out:        d.config.DebugOutput,
	}
	for i := range rows {
		det.rows[i] = newScratchRow(&rows[i])
	}
	return det
}

// detection is the working state of one Detect call.
type detection struct {
	rows       []scratchRow
	theory     *theory
	debugLevel int
	logger     *zap.Logger
	out        io.Writer
}

// acceptableRowArgs reports whether [start, end) is a valid range of at
// least minRows rows. Invalid ranges are software errors; short ones are
// routine and only mentioned when debugging.
func (d *detection) acceptableRowArgs(minRows int, caller string, start, end int) bool {
	if start < 0 || end > len(d.rows) || start > end {
		d.logger.Error("invalid row range",
			zap.String("caller", caller),
			zap.Int("start", start),
			zap.Int("end", end),
			zap.Int("rows", len(d.rows)))
		return false
	}
	if end-start < minRows {
		if d.debugLevel > 1 {
			d.logger.Debug("too few rows",
				zap.String("caller", caller),
				zap.Int("start", start),
				zap.Int("end", end))
		}
		return false
	}
	return true
}

// run performs the detection passes and returns the paragraph owning each
// row, nil where no paragraph was formed.
func (d *detection) run() []*paragraph {
	numRows := len(d.rows)

	// Pass 1: three leader lines in a row make the middle one its own
	// paragraph. This catches tables of contents.
	d.separateSimpleLeaderLines(0, numRows)
	d.debugDump(d.debugLevel > 1, "End of Pass 1")

	// Pass 2: strong textual evidence, then smearing of the models found.
	// Segments left over by a partly successful pass are retried on their
	// own.
	for _, leftover := range d.leftoverSegments(0, numRows) {
		d.strongEvidenceClassify(leftover.begin, leftover.end)

		leftovers := d.leftoverSegments(leftover.begin, leftover.end)
		useful := len(leftovers) > 1 ||
			(len(leftovers) == 1 && (leftovers[0].begin != 0 || leftovers[0].end != numRows))
		if useful {
			for _, rest := range leftovers {
				d.strongEvidenceClassify(rest.begin, rest.end)
			}
		}
	}
	d.debugDump(d.debugLevel > 1, "End of Pass 2")

	// Pass 3: whatever is still unexplained gets a purely geometric look.
	for _, leftover := range d.leftoverSegments(0, numRows) {
		d.geometricClassify(leftover.begin, leftover.end)
	}
	d.downgradeWeakestToCrowns()
	d.debugDump(d.debugLevel > 1, "End of Pass 3")

	// Pass 4: forget anything still poorly explained.
	for _, leftover := range d.leftoverSegments(0, numRows) {
		for i := leftover.begin; i < leftover.end; i++ {
			d.rows[i].setUnknown()
		}
	}
	d.debugDump(d.debugLevel > 1, "End of Pass 4")

	owners := d.convertModelRunsToParagraphs()
	d.debugDump(d.debugLevel > 0, "Final Paragraph Segmentation")
	return owners
}
