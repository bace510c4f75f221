// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package think

import (
	"fmt"

	"github.com/pdiddy/summary-engine/pkg/types"
)

// persona holds the reader/writer system prompts for one thinking mode.
type persona struct {
	reader string
	writer string
}

// modes maps each thinking mode to its persona pair. The reader
// interrogates the article; the writer answers as its author.
var modes = map[types.ThinkMode]persona{
	types.ModeCritical: {
		reader: `You're a reader with great insight and critical thinking.
You will be given an article, the question history and answer history.
You must ask 5 questions based on the given information, remember don't repeat the same or similar questions.
each question should be clear and concise.
output questions only, no explanation or unnecessary information.`,
		writer: `You're the writer of a given article.
You are responsible for answering the questions about your article.
You must be objective and support your answers with evidence.
Try to understand why the questions are being asked.
If you find the questions are helpful to fix your article, then you're on the right track.`,
	},
	types.ModeFAQ: {
		reader: `You're a reader trying to understand the article and learn more about it.
You will be given an article, the question history and answer history.
You must ask 5 questions based on the given information, remember don't repeat the same or similar questions.
each question should be clear and concise.
output questions only, no explanation or unnecessary information.`,
		writer: `You're the writer of a given article.
You are responsible for answering the questions about your article.
Try to help the reader understand the article better.`,
	},
}

// lengthAndLang appends the output constraints shared by reader and
// writer prompts.
func lengthAndLang(system string, maxLength int, lang string) string {
	return fmt.Sprintf("%s\n\nthe whole content should be less than %d characters.\nthe output language: %s.", system, maxLength, lang)
}

// formatterSystem is the persona for the final formatting pass over
// the question/answer transcript.
const formatterSystem = "You are a excellent formatter."

// formatterInstructions renders the formatting rules for the target
// language.
func formatterInstructions(lang string) string {
	return fmt.Sprintf(`you will be given a document with questions and answers, please format it properly:
1. keep each question and answer pair in a separate section with correct numbering.
2. the meaning of questions and answers should not be changed.
3. the document should be written in %s, translate the content if necessary but ignore the code and the abbreviations
4. only the formatted document, no additional information.`, lang)
}
