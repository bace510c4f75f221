// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package think

import (
	"strings"

	"github.com/pdiddy/summary-engine/pkg/types"
)

// Session accumulates the question/answer rounds of one deep-think
// run. Histories are fed back into later reader prompts so questions
// do not repeat.
type Session struct {
	Exchanges []types.Exchange
}

// AddQuestions records the reader's questions for a new round.
func (s *Session) AddQuestions(questions string) {
	s.Exchanges = append(s.Exchanges, types.Exchange{Questions: questions})
}

// AddAnswers records the writer's answers for the current round.
func (s *Session) AddAnswers(answers string) {
	s.Exchanges[len(s.Exchanges)-1].Answers = answers
}

// Questions returns all recorded questions, one entry per round.
func (s *Session) Questions() []string {
	out := make([]string, len(s.Exchanges))
	for i, e := range s.Exchanges {
		out[i] = e.Questions
	}
	return out
}

// Answers returns all recorded answers, one entry per round.
func (s *Session) Answers() []string {
	out := make([]string, len(s.Exchanges))
	for i, e := range s.Exchanges {
		out[i] = e.Answers
	}
	return out
}

// Transcript renders the session as Markdown question/answer sections.
func (s *Session) Transcript() string {
	sections := make([]string, 0, len(s.Exchanges))
	for _, e := range s.Exchanges {
		sections = append(sections, "## Question:\n\n "+e.Questions+"\n\n## Answer: \n\n"+e.Answers)
	}
	return strings.Join(sections, "\n")
}
