package interview

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

// MaxPairs caps the number of pairs returned.
const MaxPairs = 10

const (
	minQuestionLen = 6
	minAnswerLen   = 11
)

// ErrNoQAFound is returned when neither parse strategy yields a usable pair.
var ErrNoQAFound = errors.New("no question/answer pairs found")

// QAPair is one interview question with its model answer.
type QAPair struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// marker matches "Q3:" or "a3 :" and tolerates markdown emphasis around it.
var marker = regexp.MustCompile(`(?i)\b([QA])(\d+)\s*\**\s*:`)

type token struct {
	kind  byte
	num   string
	start int
	end   int
}

// ParsePairs extracts Q<n>:/A<n>: pairs from a completion reply. When the
// numbered grammar yields nothing, a line-by-line scan is tried instead.
func ParsePairs(text string) ([]QAPair, error) {
	pairs := parseNumbered(text)
	if len(pairs) == 0 {
		pairs = parseLines(text)
	}
	if len(pairs) == 0 {
		return nil, ErrNoQAFound
	}
	return pairs, nil
}

// parseNumbered pairs each Q<n> with the A<n> that directly follows it. The
// answer runs until the next Q marker or the end of the text.
func parseNumbered(text string) []QAPair {
	var tokens []token
	for _, m := range marker.FindAllStringSubmatchIndex(text, -1) {
		tokens = append(tokens, token{
			kind:  strings.ToUpper(text[m[2]:m[3]])[0],
			num:   text[m[4]:m[5]],
			start: m[0],
			end:   m[1],
		})
	}

	var pairs []QAPair
	for i := 0; i < len(tokens); i++ {
		q := tokens[i]
		if q.kind != 'Q' || i+1 >= len(tokens) {
			continue
		}
		a := tokens[i+1]
		if a.kind != 'A' || a.num != q.num {
			continue
		}
		answerEnd := len(text)
		for j := i + 2; j < len(tokens); j++ {
			if tokens[j].kind == 'Q' {
				answerEnd = tokens[j].start
				break
			}
		}
		pairs = appendPair(pairs, text[q.end:a.start], text[a.end:answerEnd])
		if len(pairs) == MaxPairs {
			break
		}
	}
	return pairs
}

// parseLines pairs a line starting with Q and holding a colon with the very
// next line when that one starts with A.
func parseLines(text string) []QAPair {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	var pairs []QAPair
	for i := 0; i+1 < len(lines) && len(pairs) < MaxPairs; i++ {
		q, ok := lineValue(lines[i], 'Q')
		if !ok {
			continue
		}
		a, ok := lineValue(lines[i+1], 'A')
		if !ok {
			continue
		}
		pairs = appendPair(pairs, q, a)
	}
	return pairs
}

func lineValue(line string, prefix byte) (string, bool) {
	line = strings.TrimLeft(strings.TrimSpace(line), "*#- ")
	if line == "" || line[0] != prefix {
		return "", false
	}
	_, value, ok := strings.Cut(line, ":")
	return value, ok
}

func appendPair(pairs []QAPair, question, answer string) []QAPair {
	question = cleanField(question)
	answer = cleanField(answer)
	if utf8.RuneCountInString(question) < minQuestionLen || utf8.RuneCountInString(answer) < minAnswerLen {
		return pairs
	}
	return append(pairs, QAPair{Question: question, Answer: answer})
}

func cleanField(s string) string {
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(s), "*_"))
}
