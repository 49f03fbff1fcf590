// Package patterns is the process-wide, immutable pattern catalog: the
// compiled regexes and tag-name sets the rest of the pipeline matches
// class/id strings and tag names against. Grounded on the teacher's
// internal/utils/dom/constants.go (UNLIKELY_CANDIDATES_*,
// POSITIVE/NEGATIVE_SCORE_RE, BLOCK_LEVEL_TAGS, STRIP_OUTPUT_TAGS,
// WHITELIST_ATTRS, HNEWS_CONTENT_SELECTORS), expanded with the boilerplate/
// navigation/advertisement/comment class tables and the BEM-prefix
// exemptions spec.md §4.2/§4.3 calls for. Lazily compiled once; never
// mutated after init, per spec.md §5.
package patterns

import "regexp"

// Structural boilerplate tags: always-discard regardless of class.
var StructuralBoilerplateTags = map[string]bool{
	"header": true,
	"nav":    true,
	"aside":  true,
	"footer": true,
}

// Tags stripped from the tree outright, no matter their content.
var StripOutputTags = []string{"script", "style", "noscript", "link", "embed", "object"}

// Table layout-wrapper tags removed when unwrapping a table cell layout.
var TableWrapperTags = []string{"tbody", "thead", "tfoot", "colgroup", "col"}

// AlwaysExcludedNames are tag/class tokens the filtered text walker
// treats as hard exclusions regardless of any other rule, grounded on
// the teacher's STRIP_OUTPUT_TAGS plus the spec's always_excluded_name
// examples (§4.7).
var AlwaysExcludedNames = []string{
	"av-structured-data",
	"post-meta-infos",
	"comment-container",
	"video__end-slate",
	"zn-large-media",
	"outbrain",
	"taboola",
	"disqus-thread",
	"fb-comments",
}

// WhitelistAttrsRE matches the small set of attributes kept after
// cleaning; everything else is stripped. Grounded verbatim on the
// teacher's WHITELIST_ATTRS_RE.
var WhitelistAttrsRE = regexp.MustCompile(`(?i)^(src|srcset|sizes|type|href|class|id|alt|xlink:href|width|height|data-src|itemprop|itemtype|lang|colspan|rowspan)$`)

// RemoveAttrs are attributes stripped even when whitelisted.
var RemoveAttrs = []string{"style", "align", "onclick", "onload"}

// SpacerImageRE matches src attributes of 1x1/spacer/tracking images.
var SpacerImageRE = regexp.MustCompile(`(?i)transparent|spacer|blank|pixel\.(gif|png)`)

// ---- §4.2 content rules: class/id substrings, by rule tier ----

var ArticleBodyMarkers = []string{
	"post-content", "entry-content", "article-body", "article__body",
	"articlebody", "storybody", "page-content", "text-content",
	"blog-content", "blogpostbody", "mw-parser-output", "wysiwyg",
}

var StoryContentMarkers = []string{
	"story-content", "storycontent", "field-body", "fulltext",
}

var GenericContentMarkers = []string{
	"content-main", "content-body", "content__body", "main-content", "page-content",
}

// LowPriorityContentToken is the bare substring checked by content rule 6.
const LowPriorityContentToken = "content"

// ---- §4.3 discard rules ----

// OverallDiscardPatterns: 98 class/id substrings, tag-unrestricted.
var OverallDiscardPatterns = []string{
	"footer", "footnote", "site-footer", "page-footer",
	"nav", "navbar", "navigation", "menu", "breadcrumb", "breadcrumbs",
	"social", "share", "sharing", "sharebar", "share-bar", "social-share",
	"related", "related-posts", "related-articles", "recommend", "recommended",
	"sidebar", "widget", "widget-area", "secondary",
	"newsletter", "subscribe", "subscription",
	"paywall", "login", "signup", "sign-up", "signin", "register",
	"author-box", "author-bio", "byline-box",
	"modal", "overlay", "popup", "lightbox",
	"cookie", "gdpr", "consent", "cookie-banner", "cookie-consent",
	"comment", "comments", "comment-list", "disqus", "discuss",
	"advert", "advertisement", "ad-container", "ad-slot", "adsbygoogle",
	"promo", "promotion", "sponsor", "sponsored",
	"tag-list", "taglist", "tags-list",
	"pagination", "pager", "page-numbers",
	"search-form", "searchbox",
	"skip-link", "skip-to-content",
	"print-link", "email-link",
	"toolbar", "tool-bar",
	"masthead", "site-header",
	"outbrain", "taboola", "zergnet",
	"trending", "most-popular", "most-read", "popular-posts",
	"newsletter-signup", "site-search",
	"qr-code", "app-download",
	"weibo", "wechat", "qq-share",
	"dropdown", "dropdown-menu",
	"cards", "card-list",
	"toc", "table-of-contents",
	"jump-link", "back-to-top",
}

// PrecisionDiscardPatterns are added only when FavorPrecision is set.
var PrecisionDiscardPatterns = []string{
	"read-more", "readmore", "bottom", "jumbotron", "fs-headline",
}

// TeaserDiscardPatterns are added unless FavorRecall is set.
var TeaserDiscardPatterns = []string{
	"teaser", "excerpt", "summary", "promoted", "sponsored", "cta", "promo",
}

// HiddenElementCSSSelector flags elements hidden via style/attribute.
const HiddenElementCSSSelector = `[style*="display:none"],[style*="display: none"],[aria-hidden="true"],[hidden]`

var HiddenClassRE = regexp.MustCompile(`(?i)\bhide\b|\bhidden\b`)

// ---- Teacher-grounded scoring hints (internal/utils/dom/constants.go) ----

var PositiveScoreRE = regexp.MustCompile(`(?i)article|articlecontent|instapaper_body|blog|body|content|entry-content-asset|entry|hentry|main|page|pagination|permalink|post|story|text`)

var NegativeScoreRE = regexp.MustCompile(`(?i)adbox|advert|author|bio|bookmark|bottom|byline|clear|com-|combx|comment|contact|copy|credit|crumb|date|deck|excerpt|featured|foot|footer|footnote|graf|head|info|infotext|instapaper_ignore|jump|linebreak|link|masthead|media|meta|modal|outbrain|promo|pr_|related|respond|roundcontent|scroll|secondary|share|shopping|shoutbox|side|sidebar|sponsor|stamp|sub|summary|tags|tools|widget`)

// BlockLevelTagsRE matches HTML5 block-level tag names, grounded
// verbatim on the teacher's BLOCK_LEVEL_TAGS_RE.
var BlockLevelTagsRE = regexp.MustCompile(`(?i)^(article|aside|blockquote|body|br|button|canvas|caption|col|colgroup|dd|div|dl|dt|embed|fieldset|figcaption|figure|footer|form|h1|h2|h3|h4|h5|h6|header|hgroup|hr|li|map|object|ol|output|p|pre|progress|section|table|tbody|textarea|tfoot|th|thead|tr|ul|video)$`)

// HNewsContentSelectors: hNews/Blogger microformat boosts.
var HNewsContentSelectors = [][2]string{
	{".hentry", ".entry-content"},
	{".entry", ".entry-content"},
	{".entry", ".entry_content"},
	{".post", ".postbody"},
	{".post", ".post_body"},
	{".post", ".post-body"},
}

// HeadingBoilerplateClassRE matches headings the walker skips because
// they are structural chrome (entry titles already shown elsewhere),
// not article content.
var HeadingBoilerplateClassRE = regexp.MustCompile(`(?i)entry-title|post-title|article-title|headline|pg-headline`)
