// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package summarize

import (
	"bytes"
	"text/template"
)

// mindmapSystem is the persona for Mermaid mindmap generation.
const mindmapSystem = "You are a MermaidJS diagram generator. You can generate stunning MermaidJS diagram codes."

// mindmapInstructions are the generation and syntax rules for mindmap
// output. Annotation mistakes the model still makes despite the error
// examples are repaired afterwards by the mindmap package.
const mindmapInstructions = `Based on the given article:
1. try to summary and extra the key points for the diagram generation.
2. these key points must be informative and concise.
3. these key points should highlight the author's viewpoints.
4. try to keep the key points in a logical order.
5. don't include any extra explanation and irrelevant information.

Use them to generate a Mindmap.
Mindmap syntax rules:
- Each line should not have any quotes marks
- Do not include 'mermaid' at the start of the diagram
- Do not use 3-nesting parentheses for root, ie: "root((Mixture of Experts (MoE)))". The correct is "root((MoE))"
- Do not use abbreviations with parentheses in the middle of a line, but it can be used at the end of a line
- Do not use any special characters in the diagram except emojis
- Keep function name without parameters when you are reading a programming article, ie: free, not free()
- Can only have one root node, ie no other node can be at the same level as the root node.
- Basic structure example:
<Basic Structure>
mindmap
  Root
    A
      B
      C

Each node in the mindmap can be different shapes:
<Square>
id[I am a square]
<Rounded square>
id(I am a rounded square)
<Circle>
id((I am a circle))
<Bang>
id))I am a bang((
<Cloud>
id)I am a cloud(
<Hexagon>
id{{I am a hexagon}}
<Default>
I am the default shape

Icons can be used in the mindmap with syntax: "::icon()"

Here is a mindmap example:
<example mindmap>
mindmap
  root((mindmap))
    Origins
      Long history
      ::icon(fa fa-book)
      Popularisation
        British popular psychology author Tony Buzan
    Research
      On effectiveness<br/>and features
      On Automatic creation
        Uses
            Creative techniques
            Strategic planning
            Argument mapping
    Tools
      Pen and paper
      Mermaid

The max depth of the generated mindmap should be 3.

The output syntax should be correct. Try to avoid the following common errors:
- never use " in the output
- ` + "```mermaid" + ` in the output
<error examples>
- Gating network (G) decides experts (E)
  - fixed: Gating network decides experts
- root((Mixture of Experts (MoE)))
  - fixed: root((MoE))
- 2017: Shazeer et al. (Google) - 137B LSTM
  - fixed: 2017: Shazeer et al. Google 137B LSTM
- calloc()
  - fixed: calloc
- sbrk(0) returns current break
  - fixed: sbrk:0 returns current break
- Allocate N + sizeof(header_t) bytes
  - fixed: Allocate N + sizeof header_t bytes

Review the output to ensure it is logical and follows the correct syntax, if not, correct it.`

// summarySystem is the persona for prose summaries.
const summarySystem = "You are a good paper reader and need to explain what you have read to others."

// summaryPromptTmpl carries the summary instructions and the expected
// report skeleton. The date is filled in at call time.
var summaryPromptTmpl = template.Must(template.New("summary").Parse(`1. find the main points of the document.
2. for each main point, provide a informative summary and explain the implementation if needed.
3. for each complex concept, provide a brief explanation.
4. make the whole summary readable and engaging.

Expected output, a concise summary in markdown format:

# {A Title That Captures the Essence of the Text}

## Summary
{Brief overview of key findings and significance}

## Terminology
- {Term 1}: {Definition}
- {Term 2}: {Definition}

## Main Points
### Point 1
{Main point 1}
{Explanation or implementation}

### Point 2
{Main point 2}
{Explanation or implementation}

## Improvements And Creativity
{Main improvements and creativity in the text}

## Insights
{Your insights on the text}
{Your predictions or recommendations}

## References
- [Source 1](link) - Link in given text
- [Source 2](link) - Link in given text
- [Source 3](link) - Link in given text

---
Report generated by TSW-X
Advanced Research Systems Division
Date: {{.Date}}`))

// summaryInstructions renders the summary prompt with the given date.
func summaryInstructions(date string) (string, error) {
	var buf bytes.Buffer
	if err := summaryPromptTmpl.Execute(&buf, struct{ Date string }{Date: date}); err != nil {
		return "", err
	}
	return buf.String(), nil
}
