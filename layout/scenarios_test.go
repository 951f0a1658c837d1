package layout

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/parafind/model"
)

func TestDetectScenarios(t *testing.T) {
	tests := []struct {
		name  string
		lines []typedLine
	}{
		{"two simple paragraphs", twoSimpleParagraphs},
		{"few clues with crown", fewCluesWithCrown},
		{"crowned paragraph", crownedParagraph},
		{"flush left paragraphs", flushLeftParagraphs},
		{"right aligned", rightAligned},
		{"tiny paragraphs", tinyParagraphs},
		{"complex page 1", complexPage1},
		{"complex page 2", complexPage2},
		{"subtle crown", subtleCrown[:len(subtleCrown)-1]},
		{"subtle crown with stray line", subtleCrown},
		{"insurance report", insuranceReport},
		{"table of contents", tableOfContents},
		{"text with source code", textWithSourceCode},
		{"old man and the sea", oldManAndSea},
		{"new zealand index", newZealandIndex},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			evaluateParagraphs(t, tt.lines, detectTyped(t, tt.lines))
		})
	}
}

func TestCrownSharesModelWithLaterParagraphs(t *testing.T) {
	tests := []struct {
		name  string
		lines []typedLine
	}{
		{"few clues with crown", fewCluesWithCrown},
		{"crowned paragraph", crownedParagraph},
		{"subtle crown", subtleCrown[:len(subtleCrown)-1]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := detectTyped(t, tt.lines)

			first := result.Paragraphs[result.RowOwners[0]]
			assert.True(t, first.IsVeryFirstOrContinuation)
			require.True(t, first.HasModel())

			later := 0
			for i := 1; i < len(tt.lines); i++ {
				if tt.lines[i].kind != startsParagraph {
					continue
				}
				para := result.Paragraphs[result.RowOwners[i]]
				assert.False(t, para.IsVeryFirstOrContinuation, "row %d", i)
				assert.Equal(t, first.Model, para.Model, "row %d", i)
				later++
			}
			assert.Positive(t, later)
		})
	}
}

func TestDetectSingleFullPageContinuation(t *testing.T) {
	seed := []model.ParagraphModel{model.NewParagraphModel(model.JustifyLeft, 0, 20, 0, 10)}
	result := NewDetector().DetectWithModels(typewriterRows(singleFullPageContinuation), seed)
	evaluateParagraphs(t, singleFullPageContinuation, result)
}

func TestDetectDebugOutputDoesNotChangeResult(t *testing.T) {
	rows := typewriterRows(complexPage1)
	quiet := NewDetector().Detect(rows)

	var buf bytes.Buffer
	loud := NewDetectorWithConfig(Config{DebugLevel: 3, DebugOutput: &buf}).Detect(rows)

	assert.Equal(t, quiet, loud)
	assert.Contains(t, buf.String(), "Final Paragraph Segmentation")
	assert.Contains(t, buf.String(), "End of Pass 1")
	assert.Contains(t, buf.String(), "Active Paragraph Models:")
}

func TestDetectIsDeterministic(t *testing.T) {
	rows := typewriterRows(newZealandIndex)
	first := NewDetector().Detect(rows)
	for i := 0; i < 5; i++ {
		require.Equal(t, first, NewDetector().Detect(rows))
	}
}

func TestDetectDoesNotModifyRows(t *testing.T) {
	rows := typewriterRows(insuranceReport)
	before := append([]model.RowInfo(nil), rows...)
	NewDetector().Detect(rows)
	assert.Equal(t, before, rows)
}

var twoSimpleParagraphs = []typedLine{
	{text: "  Look here, I have a paragraph.", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 20, 0, 0)},
	{text: "This paragraph starts at the top"},
	{text: "of the page and takes 3 lines.  "},
	{text: "  Here I have a second paragraph", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 20, 0, 0)},
	{text: "which indicates that the first  "},
	{text: "paragraph is not a continuation "},
	{text: "from a previous page, as it is  "},
	{text: "indented just like this second  "},
	{text: "paragraph.                      "},
}

var fewCluesWithCrown = []typedLine{
	{text: "This paragraph starts at the top", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 20, 0, 0), crown: true},
	{text: "of the page and takes two lines."},
	{text: "  Here I have a second paragraph", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 20, 0, 0)},
	{text: "which indicates that the first  "},
	{text: "paragraph is a continuation from"},
	{text: "a previous page, as it is       "},
	{text: "indented just like this second  "},
	{text: "paragraph.                      "},
}

var crownedParagraph = []typedLine{
	{text: "The first paragraph on a page is", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 20, 0, 0), crown: true},
	{text: "often not indented as the rest  "},
	{text: "of the paragraphs are.  Nonethe-"},
	{text: "less it should be counted as the"},
	{text: "same type of paragraph.         "},
	{text: "  The second and third para-    ", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 20, 0, 0)},
	{text: "graphs are both indented two    "},
	{text: "spaces.                         "},
	{text: "  The first paragraph has what  ", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 20, 0, 0)},
	{text: "fmt refers to as a 'crown.'     "},
}

var flushLeftParagraphs = []typedLine{
	{text: "It  is sometimes  the case  that", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 0, 0, 0)},
	{text: "flush  left   paragraphs  (those"},
	{text: "with  no  body  indent)  are not"},
	{text: "actually crowns.                "},
	{text: "Instead,  further paragraphs are", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 0, 0, 0)},
	{text: "also flush left aligned.  Usual-"},
	{text: "ly,  these  paragraphs  are  set"},
	{text: "apart vertically  by some white-"},
	{text: "space,  but you can also  detect"},
	{text: "them by observing  the big empty"},
	{text: "space at the  ends  of the para-"},
	{text: "graphs.                         "},
}

var singleFullPageContinuation = []typedLine{
	{text: "sometimes a page is one giant", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 20, 0, 0), crown: true},
	{text: "continuation.  It flows  from"},
	{text: "line to  line, using the full"},
	{text: "column  width  with  no clear"},
	{text: "paragraph  break,  because it"},
	{text: "actually doesn't have one. It"},
	{text: "is the  middle of one monster"},
	{text: "paragraph continued  from the"},
	{text: "previous page and  continuing"},
	{text: "onto the  next  page.  There-"},
	{text: "fore,  it  ends  up   getting"},
	{text: "marked  as a  crown  and then"},
	{text: "getting re-marked as any  ex-"},
	{text: "isting model.  Not great, but"},
}

var rightAligned = []typedLine{
	{text: "Right-aligned paragraphs are", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyRight, 0, 0, 0, 0)},
	{text: "   uncommon in Left-to-Right"},
	{text: "      languages, but they do"},
	{text: "                      exist."},
	{text: "    Mostly, however, they're", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyRight, 0, 0, 0, 0)},
	{text: " horribly tiny paragraphs in"},
	{text: "  tables on which we have no"},
	{text: "             chance anyways."},
}

var tinyParagraphs = []typedLine{
	{text: "  Occasionally, interspersed with", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 20, 0, 0)},
	{text: "obvious paragraph text, you might"},
	{text: "find short exchanges of dialogue "},
	{text: "between characters.              "},
	{text: "  'Oh?'                          ", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 20, 0, 0)},
	{text: "  'Don't be confused!'           ", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 20, 0, 0)},
	{text: "  'Not me!'                      ", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 20, 0, 0)},
	{text: "  One naive approach would be to ", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 20, 0, 0)},
	{text: "mark a new paragraph whenever one"},
	{text: "of the statistics (left, right or"},
	{text: "center)  changes  from  one text-"},
	{text: "line  to  the  next.    Such   an"},
	{text: "approach  would  misclassify  the"},
	{text: "tiny paragraphs above as a single"},
	{text: "paragraph.                       "},
}

var complexPage1 = []typedLine{
	{text: "       Awesome                  ", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyCenter, 0, 0, 0, 0)},
	{text: "   Centered Title               "},
	{text: " Paragraph Detection            "},
	{text: "      OCR TEAM                  "},
	{text: "  10 November 2010              "},
	{text: "                                ", kind: notParagraph},
	{text: "  Look here, I have a paragraph.", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 20, 0, 0)},
	{text: "This paragraph starts at the top"},
	{text: "of the page and takes 3 lines.  "},
	{text: "  Here I have a second paragraph", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 20, 0, 0)},
	{text: "which indicates that the first  "},
	{text: "paragraph is not a continuation "},
	{text: "from a previous page, as it is  "},
	{text: "indented just like this second  "},
	{text: "paragraph.                      "},
	{text: "   Here is a block quote. It    ", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 30, 0, 0, 0), crown: true},
	{text: "   looks like the prior text    "},
	{text: "   but it  is indented  more    "},
	{text: "   and is fully justified.      "},
	{text: "  So how does one deal with     ", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 20, 0, 0)},
	{text: "centered text, block quotes,    "},
	{text: "normal paragraphs, and lists    "},
	{text: "like what follows?              "},
	{text: "1. Make a plan.                 ", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 0, 30, 0), listItem: true},
	{text: "2. Use a heuristic, for example,", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 0, 30, 0), listItem: true},
	{text: "   looking for lines where the  "},
	{text: "   first word of the next line  "},
	{text: "   would fit on the previous    "},
	{text: "   line.                        "},
	{text: "8. Try to implement the plan in ", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 0, 30, 0), listItem: true},
	{text: "   Python and try it out.       "},
	{text: "4. Determine how to fix the     ", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 0, 30, 0), listItem: true},
	{text: "   mistakes.                    "},
	{text: "5. Repeat.                      ", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 0, 30, 0), listItem: true},
	{text: "  For extra painful penalty work", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 20, 0, 0)},
	{text: "you can try to identify source  "},
	{text: "code.  Ouch!                    "},
}

var complexPage2 = []typedLine{
	{text: "       Awesome                     ", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyCenter, 0, 0, 0, 0)},
	{text: "   Centered Title                  "},
	{text: " Paragraph Detection               "},
	{text: "      OCR TEAM                     "},
	{text: "  10 November 2010                 "},
	{text: "                                   ", kind: notParagraph},
	{text: "  Look here, I have a paragraph.   ", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 20, 0, 0)},
	{text: "This paragraph starts at the top of"},
	{text: "the page and takes 3 lines.        "},
	{text: "  Here I have a second paragraph   ", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 20, 0, 0)},
	{text: "which indicates that the first     "},
	{text: "paragraph is not a continuation    "},
	{text: "from a previous page, as it is in- "},
	{text: "dented just like this second para- "},
	{text: "graph.                             "},
	{text: "   Here is a block quote. It       ", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 30, 0, 0, 0), crown: true},
	{text: "   looks like the prior text       "},
	{text: "   but it  is indented  more       "},
	{text: "   and is fully justified.         "},
	{text: "  So how does one deal with center-", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 20, 0, 0)},
	{text: "ed text, block quotes, normal para-"},
	{text: "graphs, and lists like what follow?"},
	{text: "1. Make a plan.                    "},
	{text: "2. Use a heuristic, for example,   ", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 0, 30, 0), listItem: true},
	{text: "   looking for lines where the     "},
	{text: "   first word of the next line     "},
	{text: "   would fit on the previous line. "},
	{text: "8. Try to implement the plan in    ", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 0, 30, 0), listItem: true},
	{text: "   Python and try it out.          "},
	{text: "4. Determine how to fix the        ", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 0, 30, 0), listItem: true},
	{text: "   mistakes.                       "},
	{text: "5. Repeat.                         ", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 0, 30, 0), listItem: true},
	{text: "  For extra painful penalty work   ", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 20, 0, 0)},
	{text: "you can try to identify source     "},
	{text: "code.  Ouch!                       "},
}

var subtleCrown = []typedLine{
	{text: "The first paragraph on a page is", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 20, 0, 0), crown: true},
	{text: "often not indented as the rest  "},
	{text: "of the paragraphs are.  Nonethe-"},
	{text: "less it should be counted as the"},
	{text: "same type of paragraph.         "},
	{text: "  Even a short second paragraph ", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 20, 0, 0)},
	{text: "should suffice.                 "},
	{text: "             1235               ", kind: notParagraph},
}

var insuranceReport = []typedLine{
	{text: "    Defined contribution plans cover employees in Australia, New", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 50, 0, 0)},
	{text: "Zealand, Spain, the United Kingdom and some U.S. subsidiaries.  "},
	{text: "In addition, employees in the U.S. are eligible to participate in    "},
	{text: "deﬁned contribution plans (Employee Savings Plans) by contribut-"},
	{text: "ing a portion of their compensation. The Company matches com- "},
	{text: "pensation, depending on Company proﬁt levels. Contributions    "},
	{text: "charged to income for deﬁned contribution plans were $92 in    "},
	{text: "1993, $98 in 1992 and $89 in 1991.                             "},
	{text: "     In addition to providing pension beneﬁts, the Company pro- ", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 50, 0, 0)},
	{text: "vides certain health care and life insurance beneﬁts to retired     "},
	{text: "employees. As discussed in Note A, the Company adopted FASB   "},
	{text: "Statement No. 106 effective January 1, 1992. Previously, the     "},
	{text: "Company recognized the cost of providing these beneﬁts as the     "},
	{text: "beneﬁts were paid. These pretax costs amounted to $53 in 1991.   "},
	{text: "The Company continues to fund most of the cost of these medical "},
	{text: "and life insurance beneﬁts in the year incurred.                "},
	{text: "     The U.S. plan covering the parent company is the largest plan.", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 50, 0, 0)},
	{text: "It provides medical and life insurance beneﬁts including hospital,  "},
	{text: "physicians’ services and major medical expense beneﬁts and life   "},
	{text: "insurance beneﬁts. The plan provides beneﬁts supplemental to    "},
	{text: "Medicare after retirees are eligible for these beneﬁts. The cost of  "},
	{text: "these beneﬁts are shared by the Company and the retiree, with the  "},
	{text: "Company portion increasing as the retiree has increased years of   "},
	{text: "credited service. The Company has the ability to change these    "},
	{text: "beneﬁts at any time.                                            "},
	{text: "     Effective October 1993, the Company amended its health   ", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 50, 0, 0)},
	{text: "beneﬁts plan in the U.S. to cap the cost absorbed by the Company "},
	{text: "at approximately twice the 1993 cost per person for employees who"},
	{text: "retire after December 31, 1993. The effect of this amendment was "},
	{text: "to reduce the December 31, 1993 accumulated postretirement   "},
	{text: "beneﬁt obligation by $327. It also reduced the net periodic postre- "},
	{text: "tirement cost by $21 for 1993 and is estimated to reduce this cost  "},
	{text: "for 1994 by approximately $83.                                     "},
}

var tableOfContents = []typedLine{
	{text: "1 Hmong People ........... 1", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyUnknown, 0, 0, 0, 0)},
	{text: "   Hmong Origins . . . . . 1", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyUnknown, 0, 0, 0, 0)},
	{text: "    Language . . . . . . . 1", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyUnknown, 0, 0, 0, 0)},
	{text: "     Proverbs . . . . . .  2", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyUnknown, 0, 0, 0, 0)},
	{text: "        Discussion . . . . 2", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyUnknown, 0, 0, 0, 0)},
	{text: "     Riddles . . . . . . . 2", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyUnknown, 0, 0, 0, 0)},
	{text: "        Discussion . . . . 3", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyUnknown, 0, 0, 0, 0)},
	{text: "     Appearance . . . . .  3", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyUnknown, 0, 0, 0, 0)},
	{text: "   Hmong History . . . . . 4", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyUnknown, 0, 0, 0, 0)},
	{text: "    Hmong in SE Asia . . . 4", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyUnknown, 0, 0, 0, 0)},
	{text: "    Hmong in the West . . .5", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyUnknown, 0, 0, 0, 0)},
	{text: "    Hmong in the USA . . . 5", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyUnknown, 0, 0, 0, 0)},
	{text: "        Discussion . . . . 6", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyUnknown, 0, 0, 0, 0)},
}

var textWithSourceCode = []typedLine{
	{text: "  A typical page of a programming book may contain", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 20, 0, 0)},
	{text: "examples of source code to exemplify an algorithm "},
	{text: "being described in prose.  Such examples should be"},
	{text: "rendered as lineated text, meaning text with      "},
	{text: "explicit line breaks but without extra inter-line "},
	{text: "spacing.  Accidentally finding stray paragraphs in"},
	{text: "source code would lead to a bad reading experience"},
	{text: "when the text is re-flowed.                       "},
	{text: "  Let's show this by describing the function fact-", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 20, 0, 0)},
	{text: "orial.  Factorial is a simple recursive function  "},
	{text: "which grows very quickly.  So quickly, in fact,   "},
	{text: "that the typical C implementation will only work  "},
	{text: "for values less than about 12:                    "},
	{text: "                                                  ", kind: notParagraph},
	{text: "  # Naive implementation in C                     "},
	{text: "  int factorial(int n) {                          "},
	{text: "    if (n < 2)                                    "},
	{text: "      return 1;                                   "},
	{text: "    return  n * factorial(n - 1);                 "},
	{text: "  }                                               "},
	{text: "                                                  "},
	{text: "  The C programming language does not have built- ", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 20, 0, 0)},
	{text: "in support for detecting integer overflow, so this"},
	{text: "naive implementation simply returns random values "},
	{text: "if even a moderate sized n is provided.           "},
}

var oldManAndSea = []typedLine{
	{text: "royal  palm  which  are called  guano  and  in it  there was a bed,  a", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 50, 0, 0)},
	{text: "table, one chair, and a place on the dirt floor to cook with charcoal."},
	{text: "On  the  brown  walls  of  the ﬂattened,  overlapping  leaves  of  the"},
	{text: "sturdy  fibered guano  there  was  a  picture in  color of  the Sacred"},
	{text: "Heart  of  Jesus  and  another  of  the  Virgin  of Cobre.  These were"},
	{text: "relics of  his wife.   Once there had been  a tinted photograph of his"},
	{text: "wife on  the wall  but he  had taken  it  down because it made him too"},
	{text: "lonely to see it and it was on the shelf in the corner under his clean"},
	{text: "shirt.                                                                "},
	{text: "     \"What  do  you  have  to  eat?\"     the  boy   asked.          ", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 50, 0, 0)},
	{text: "     \"A pot of yellow rice with fish. Do you want some?\"            ", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 50, 0, 0)},
	{text: "     \"No. I will eat at home. Do you want me to make the fire?\"   ", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 50, 0, 0)},
	{text: "     \"No. I will make it later on. Or I may eat the rice cold.\"     ", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 50, 0, 0)},
	{text: "     \"May I take the cast net?\"                                     ", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 50, 0, 0)},
	{text: "     \"Of course.\"                                                   ", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 50, 0, 0)},
	{text: "     There was  no  cast net  and  the boy  remembered  when  they had", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 50, 0, 0)},
	{text: "sold it.   But they went through  this fiction every day. There was no"},
	{text: "pot of yellow rice and fish and the boy knew this too.                  "},
	{text: "     \"Eighty-five  is a lucky number,\"  the  old  man  said.   \"How", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 50, 0, 0)},
	{text: "would  you  like to see  me  bring one  in that dressed out over a thou-"},
	{text: "sand pounds?                                                            "},
	{text: "     \"I'll get the cast net and go for sardines.  Will you sit in the sun", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 50, 0, 0)},
	{text: "in the doorway?\"                                                         "},
	{text: "     \"Yes.  I have yesterday's paper and I will read the baseball.\"   ", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 50, 0, 0)},
	{text: "     The boy  did not  know  whether  yesterday's paper  was a fiction", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 50, 0, 0)},
	{text: "too.  But the old man brought it out from under the bed.              "},
	{text: "     \"Pedrico gave it to me at the bodega,\" he explained.              ", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 50, 0, 0)},
	{text: "     \"I'll be back when I have the sardines.  I'll keep yours and mine", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 50, 0, 0)},
	{text: "together  on ice  and  we  can  share  them  in the  morning.   When I"},
	{text: "come back you can tell me about the baseball.\"                       "},
	{text: "     \"The Yankees cannot lose.\"                                     ", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 50, 0, 0)},
	{text: "     \"But I fear the Indians of Cleveland.\"                         ", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 50, 0, 0)},
	{text: "     \"Have faith  in  the Yankees  my son.   Think of  the great  Di-", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 50, 0, 0)},
	{text: "Maggio.\"                                                             "},
	{text: "     \"I  fear both  the Tigers of Detroit  and the  Indians of Cleve-", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 50, 0, 0)},
	{text: "land.\"                                                               "},
}

var newZealandIndex = []typedLine{
	{text: "Oats, 51                      ", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 0, 30, 0)},
	{text: "O'Brien, Gregory, 175         ", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 0, 30, 0)},
	{text: "Occupational composition, 110,", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 0, 30, 0)},
	{text: "   138                        "},
	{text: "OECD rankings, 155, 172       ", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 0, 30, 0)},
	{text: "Okiato (original capital), 47 ", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 0, 30, 0)},
	{text: "Oil shock: 1974, xxx, 143; 1979,", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 0, 30, 0)},
	{text: "   145                        "},
	{text: "Old Age Pensions, xxii, 89-90 ", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 0, 30, 0)},
	{text: "Old World evils, 77           ", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 0, 30, 0)},
	{text: "Oliver, W. H., 39, 77, 89     ", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 0, 30, 0)},
	{text: "Olssen, Erik, 45, 64, 84      ", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 0, 30, 0)},
	{text: "Olympic Games, 1924, 111, 144 ", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 0, 30, 0)},
	{text: "Once on Chunuk Bair, 149      ", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 0, 30, 0)},
	{text: "Once Were Warriors, xxxiii, 170", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 0, 30, 0)},
	{text: "On-shore whaling, xvi         ", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 0, 30, 0)},
	{text: "Opotiki, xix                  ", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 0, 30, 0)},
	{text: "Orakau battle of, xviii, 57   ", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 0, 30, 0)},
	{text: "O’Regan, Tipene, 170, 198-99  ", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 0, 30, 0)},
	{text: "Organic agriculture, 177      ", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 0, 30, 0)},
	{text: "Orwell, George, 151           ", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 0, 30, 0)},
	{text: "Otago, xvii, 45, 49-50, 70    ", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 0, 30, 0)},
	{text: "Otago block, xvii             ", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 0, 30, 0)},
	{text: "Otago Daily Times, 67         ", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 0, 30, 0)},
	{text: "Otago Girls’ High School, xix, 61,", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 0, 30, 0)},
	{text: "   85                         "},
	{text: "Otago gold rushes, 61-63      ", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 0, 30, 0)},
	{text: "Otago Peninsula, xx           ", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 0, 30, 0)},
	{text: "Otago Provincial Council, 68  ", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 0, 30, 0)},
	{text: "Otaki, 33                     ", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 0, 30, 0)},
	{text: "Owls Do Cry, 139              ", kind: startsParagraph, want: model.NewParagraphModel(model.JustifyLeft, 0, 0, 30, 0)},
}
