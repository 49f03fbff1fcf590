package metadata

import (
	"net/url"
	"strings"

	"github.com/kestrelhq/distill/htmldom"
)

// Image is spec.md §3's ImageData, produced by CollectImages against
// the chosen content subtree (not the whole document — images outside
// the article body are not part of the result).
type Image struct {
	Src      string
	Filename string
	Alt      string
	Caption  string
	IsHero   bool
}

// CollectImages walks every <img> (with src or data-src) under
// subtree, in document order, filling Filename (the URL path tail,
// query/fragment stripped — grounded on the teacher's URL-normalization
// helpers in pkg/extractors/generic/url.go) and Caption (from an
// enclosing <figure>'s <figcaption>). The first image whose filename
// matches heroImageURL's filename is marked IsHero; if none matches,
// the first image in document order is.
func CollectImages(subtree *htmldom.Node, heroImageURL string) []Image {
	heroFilename := filenameOf(heroImageURL)

	var images []Image
	subtree.Query("img").Each(func(_ int, img *htmldom.Node) {
		src := firstNonEmpty(img.AttrOr("src", ""), img.AttrOr("data-src", ""))
		if src == "" {
			return
		}
		images = append(images, Image{
			Src:      src,
			Filename: filenameOf(src),
			Alt:      img.AttrOr("alt", ""),
			Caption:  figcaptionOf(img),
		})
	})

	if len(images) == 0 {
		return images
	}

	heroIdx := 0
	if heroFilename != "" {
		found := false
		for i, im := range images {
			if im.Filename == heroFilename {
				heroIdx = i
				found = true
				break
			}
		}
		if !found {
			heroIdx = 0
		}
	}
	images[heroIdx].IsHero = true
	return images
}

func filenameOf(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		rawURL = strings.SplitN(rawURL, "?", 2)[0]
		rawURL = strings.SplitN(rawURL, "#", 2)[0]
	} else {
		rawURL = u.Path
	}
	if idx := strings.LastIndex(rawURL, "/"); idx >= 0 {
		return rawURL[idx+1:]
	}
	return rawURL
}

func figcaptionOf(img *htmldom.Node) string {
	figure := nearestFigureAncestor(img)
	if figure == nil {
		return ""
	}
	cap := figure.Query("figcaption")
	if cap.Len() == 0 {
		return ""
	}
	return strings.TrimSpace(cap.First().Text())
}

func nearestFigureAncestor(n *htmldom.Node) *htmldom.Node {
	cur := n.Parent()
	for cur.Len() > 0 {
		if cur.TagName() == "figure" {
			return cur
		}
		cur = cur.Parent()
	}
	return nil
}
