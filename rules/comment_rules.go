package rules

import (
	"strings"

	"github.com/kestrelhq/distill/htmldom"
)

var commentContainerMarkers = []string{
	"comments", "comment-list", "comment-thread", "disqus_thread",
	"fb-comments", "js-comments", "commentlist",
}

var commentDiscardMarkers = []string{
	"comment-form", "comment-respond", "add-comment", "reply-form",
	"comment-pagination", "load-more-comments", "comment-subscribe",
}

// CommentContentRules select the node(s) that hold the comment thread,
// restricted to comment-selector rules only (C13).
var CommentContentRules = []Rule{
	{
		Name: "comment-container",
		Match: func(n *htmldom.Node) bool {
			tag := n.TagName()
			if tag != "div" && tag != "section" && tag != "ol" && tag != "ul" {
				return false
			}
			classID := n.ClassAndID()
			if id, ok := n.Attr("id"); ok && strings.EqualFold(id, "comments") {
				return true
			}
			return containsAny(classID, commentContainerMarkers)
		},
	},
}

// CommentDiscardRules remove comment-form chrome (reply boxes,
// pagination controls) from within an otherwise-kept comment thread.
var CommentDiscardRules = []Rule{
	{
		Name: "comment-form-chrome",
		Match: func(n *htmldom.Node) bool {
			tag := n.TagName()
			if tag == "form" || tag == "textarea" || tag == "input" || tag == "button" {
				return true
			}
			return containsAny(n.ClassAndID(), commentDiscardMarkers)
		},
	},
}
