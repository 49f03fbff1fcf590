// Package scorer implements the heuristic scorer (C8): ranks
// div/section/article/main (and <body> in the narrow case spec.md
// §4.5 allows) when the rule-based content finder misses. Grounded on
// the teacher's pkg/utils/dom/score_content.go (scorePs/getOrInitScore/
// addScoreTo parent-and-grandparent score propagation) and
// analysis.go's GetContentScore shape (length + paragraph/heading bonus
// − link penalty), replaced with the exact formula of spec.md §4.5.
package scorer

import (
	"regexp"
	"strings"

	"github.com/kestrelhq/distill/htmldom"
	"github.com/kestrelhq/distill/linkdensity"
	"github.com/kestrelhq/distill/patterns"
)

var sentenceSplitRE = regexp.MustCompile(`[.!?]+`)

// Mode selects the min-score gate: spec.md §4.5's 1000/500/5000 by
// default/recall/precision ("precision wins if both set").
type Mode int

const (
	ModeDefault Mode = iota
	ModeFavorRecall
	ModeFavorPrecision
)

// MinScore returns the score gate for a mode.
func MinScore(mode Mode) int {
	switch mode {
	case ModeFavorPrecision:
		return 5000
	case ModeFavorRecall:
		return 500
	default:
		return 1000
	}
}

// Candidate is a scored node.
type Candidate struct {
	Node  *htmldom.Node
	Score int
}

// scoreNode computes a single candidate's raw score per spec.md §4.5's
// formula.
func scoreNode(n *htmldom.Node, depth int) int {
	text := strings.TrimSpace(n.Text())
	textLen := len(text)

	score := textLen
	if score > 8000 {
		score = 8000
	}

	paragraphs := n.Query("p")
	score += 200 * paragraphs.Len()

	headings := n.Query("h1, h2, h3, h4, h5, h6")
	score += 100 * headings.Len()

	substantiveP := 0
	paragraphs.Each(func(_ int, p *htmldom.Node) {
		if len(strings.TrimSpace(p.Text())) >= 100 {
			substantiveP++
		}
	})
	score += 300 * substantiveP

	sentences := len(sentenceSplitRE.FindAllString(text, -1))
	sentenceCap := textLen / 50
	if sentences > sentenceCap {
		sentences = sentenceCap
	}
	score += 50 * sentences

	anchors := n.Query("a")
	score -= 50 * anchors.Len()

	score += 10 * depth

	if linkdensity.Of(n) > 0.5 {
		score /= 2
	}

	return score
}

func isBoilerplateClassed(n *htmldom.Node) bool {
	classID := n.ClassAndID()
	return patterns.IsBoilerplateClass(classID) || patterns.NegativeScoreRE.MatchString(classID)
}

// Score ranks every div/section/article/main in the document (plus
// <body> when body text is short and no language filter applies, per
// spec.md §4.5), and returns the highest-scoring candidate if its
// score clears the mode's min-score gate and its trimmed text is at
// least 30% of the body's. Otherwise returns nil — the caller (the
// fallback orchestrator) proceeds to baseline body extraction.
func Score(doc *htmldom.Document, mode Mode, languageFilterActive bool) *Candidate {
	body := doc.Find("body")
	bodyText := strings.TrimSpace(body.Text())
	bodyLen := len(bodyText)

	candidates := []*htmldom.Node{}
	doc.Find("div, section, article, main").Each(func(_ int, n *htmldom.Node) {
		if isBoilerplateClassed(n) {
			return
		}
		nn := n
		candidates = append(candidates, nn)
	})
	if bodyLen <= 500 && !languageFilterActive {
		candidates = append(candidates, body)
	}

	var best *Candidate
	for _, c := range candidates {
		depth := depthOf(c)
		s := scoreNode(c, depth)
		if best == nil || s > best.Score {
			best = &Candidate{Node: c, Score: s}
		}
	}

	if best == nil {
		return nil
	}
	if best.Score < MinScore(mode) {
		return nil
	}
	candidateLen := len(strings.TrimSpace(best.Node.Text()))
	if bodyLen == 0 || float64(candidateLen) < 0.3*float64(bodyLen) {
		return nil
	}
	return best
}

func depthOf(n *htmldom.Node) int {
	depth := 0
	cur := n.Parent()
	for cur.Len() > 0 {
		depth++
		cur = cur.Parent()
	}
	return depth
}
