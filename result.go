package distill

import (
	"fmt"
	"strings"

	"github.com/kestrelhq/distill/metadata"
)

// ExtractResult is spec.md §3's result type.
type ExtractResult struct {
	ContentText     string           `json:"content_text"`
	ContentHTML     string           `json:"content_html,omitempty"`
	ContentMarkdown string           `json:"content_markdown,omitempty"`
	CommentsText    string           `json:"comments_text,omitempty"`
	CommentsHTML    string           `json:"comments_html,omitempty"`
	Images          []ImageData      `json:"images,omitempty"`
	Metadata        metadata.Metadata `json:"metadata"`
	Warnings        []string         `json:"warnings,omitempty"`
}

// ImageData is spec.md §3's ImageData.
type ImageData struct {
	Src      string `json:"src"`
	Filename string `json:"filename"`
	Alt      string `json:"alt,omitempty"`
	Caption  string `json:"caption,omitempty"`
	IsHero   bool   `json:"is_hero"`
}

// IsEmpty reports whether the result carries no meaningful content.
func (r *ExtractResult) IsEmpty() bool {
	return strings.TrimSpace(r.ContentText) == "" && r.Metadata.Title == ""
}

// HasImages reports whether any images were collected.
func (r *ExtractResult) HasImages() bool {
	return len(r.Images) > 0
}

// FormatMarkdown renders the result as a Markdown document with a
// metadata header, for callers that want a quick human-readable dump
// without wiring the markdown package themselves.
func (r *ExtractResult) FormatMarkdown() string {
	var sb strings.Builder

	if r.Metadata.Title != "" {
		sb.WriteString("# ")
		sb.WriteString(r.Metadata.Title)
		sb.WriteString("\n\n")
	}

	hasMeta := r.Metadata.Author != "" || r.Metadata.Date != "" || r.Metadata.URL != "" || r.Metadata.Sitename != ""
	if hasMeta {
		sb.WriteString("## Metadata\n\n")
		if r.Metadata.Author != "" {
			fmt.Fprintf(&sb, "**Author:** %s\n", r.Metadata.Author)
		}
		if r.Metadata.Date != "" {
			fmt.Fprintf(&sb, "**Date:** %s\n", r.Metadata.Date)
		}
		if r.Metadata.URL != "" {
			fmt.Fprintf(&sb, "**URL:** %s\n", r.Metadata.URL)
		}
		if r.Metadata.Sitename != "" {
			fmt.Fprintf(&sb, "**Site:** %s\n", r.Metadata.Sitename)
		}
		sb.WriteString("\n")
	}

	if r.Metadata.Description != "" {
		sb.WriteString("## Description\n\n")
		sb.WriteString(r.Metadata.Description)
		sb.WriteString("\n\n")
	}

	if r.ContentText != "" {
		sb.WriteString("## Content\n\n")
		if r.ContentMarkdown != "" {
			sb.WriteString(r.ContentMarkdown)
		} else {
			sb.WriteString(r.ContentText)
		}
	}

	return sb.String()
}
