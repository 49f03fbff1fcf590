package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrelhq/distill/htmldom"
	"github.com/kestrelhq/distill/rules"
)

func tagRule(name, tag string) rules.Rule {
	return rules.Rule{Name: name, Match: func(n *htmldom.Node) bool { return n.TagName() == tag }}
}

func TestQueryReturnsFirstMatchInDocumentOrder(t *testing.T) {
	doc, err := htmldom.ParseString(`<html><body><div><p id="p1">a</p><p id="p2">b</p></div></body></html>`)
	require.NoError(t, err)

	match := rules.Query(doc.Root(), tagRule("p", "p"))
	id, _ := match.Attr("id")
	assert.Equal(t, "p1", id)
}

func TestQueryNoMatchReturnsEmptyNode(t *testing.T) {
	doc, err := htmldom.ParseString(`<html><body><div>x</div></body></html>`)
	require.NoError(t, err)

	match := rules.Query(doc.Root(), tagRule("p", "p"))
	assert.Equal(t, 0, match.Len())
}

func TestQueryAllReturnsEveryMatch(t *testing.T) {
	doc, err := htmldom.ParseString(`<html><body><p>a</p><div><p>b</p></div></body></html>`)
	require.NoError(t, err)

	matches := rules.QueryAll(doc.Root(), tagRule("p", "p"))
	assert.Len(t, matches, 2)
}

func TestFirstMatchReturnsIndexOfFirstMatchingRule(t *testing.T) {
	doc, err := htmldom.ParseString(`<html><body><p>a</p></body></html>`)
	require.NoError(t, err)
	p := doc.Find("p")

	rs := []rules.Rule{tagRule("div", "div"), tagRule("p", "p"), tagRule("p-again", "p")}
	idx, ok := rules.FirstMatch(p, rs)
	assert.True(t, ok)
	assert.Equal(t, 1, idx)
}

func TestFirstMatchNoneMatch(t *testing.T) {
	doc, err := htmldom.ParseString(`<html><body><span>a</span></body></html>`)
	require.NoError(t, err)
	span := doc.Find("span")

	idx, ok := rules.FirstMatch(span, []rules.Rule{tagRule("div", "div"), tagRule("p", "p")})
	assert.False(t, ok)
	assert.Equal(t, -1, idx)
}

func TestAnyMatch(t *testing.T) {
	doc, err := htmldom.ParseString(`<html><body><p>a</p></body></html>`)
	require.NoError(t, err)
	p := doc.Find("p")

	assert.True(t, rules.AnyMatch(p, []rules.Rule{tagRule("div", "div"), tagRule("p", "p")}))
	assert.False(t, rules.AnyMatch(p, []rules.Rule{tagRule("div", "div")}))
}

func TestContentRulesMatchArticleTag(t *testing.T) {
	doc, err := htmldom.ParseString(`<html><body><article class="post-content">text</article></body></html>`)
	require.NoError(t, err)

	matches := rules.QueryAll(doc.Root(), rules.ContentRules[0])
	_ = matches // rule ordering is an implementation detail; smoke-test it doesn't panic

	found := false
	for _, r := range rules.ContentRules {
		if len(rules.QueryAll(doc.Root(), r)) > 0 {
			found = true
			break
		}
	}
	assert.True(t, found, "expected at least one content rule to match an <article class=\"post-content\">")
}

func TestOverallDiscardRulesMatchNav(t *testing.T) {
	doc, err := htmldom.ParseString(`<html><body><nav class="site-nav">menu</nav></body></html>`)
	require.NoError(t, err)

	nav := doc.Find("nav")
	assert.True(t, rules.AnyMatch(nav, rules.OverallDiscardRules))
}
