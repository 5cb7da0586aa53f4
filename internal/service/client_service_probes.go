// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/MKhiriev/go-deck-reader/models"
)

const (
	// longFormThreshold separates long-form from short-form bodies, in runes
	// of extracted text.
	longFormThreshold = 750
	// questionWindow is how many runes of the body head and tail are scanned
	// for a question mark.
	questionWindow = 150
)

// itemProbes are the derived signals the deck heuristics rank items by. They
// are computed once per item from its sanitized HTML description.
type itemProbes struct {
	hasLink       bool
	hasImage      bool
	questionTitle bool
	questionFirst bool
	questionLast  bool
	bodyLength    int
}

func (p itemProbes) longForm() bool  { return p.bodyLength >= longFormThreshold }
func (p itemProbes) question() bool  { return p.questionTitle || p.questionFirst || p.questionLast }
func (p itemProbes) shortForm() bool { return !p.longForm() }

// probeItem extracts the curation signals from one feed item. A broken HTML
// body degrades to treating the raw description as text rather than failing:
// the tokenizer recovers from anything, so parse errors are not expected, but
// an item must never be unscorable.
func probeItem(item models.FeedItem) itemProbes {
	probes := itemProbes{
		hasImage:      item.Image != "",
		questionTitle: strings.Contains(item.Title, "?"),
	}

	text := item.Description
	root, err := html.Parse(strings.NewReader(item.Description))
	if err == nil {
		var builder strings.Builder
		walkBody(root, &probes, &builder)
		text = builder.String()
	}

	body := []rune(strings.TrimSpace(text))
	probes.bodyLength = len(body)

	head := body
	if len(head) > questionWindow {
		head = head[:questionWindow]
	}
	tail := body
	if len(tail) > questionWindow {
		tail = tail[len(tail)-questionWindow:]
	}
	probes.questionFirst = strings.ContainsRune(string(head), '?')
	probes.questionLast = strings.ContainsRune(string(tail), '?')

	return probes
}

// walkBody collects the text content of the description while noting anchor
// and image elements along the way.
func walkBody(node *html.Node, probes *itemProbes, text *strings.Builder) {
	switch node.Type {
	case html.ElementNode:
		switch node.Data {
		case "a":
			for _, attr := range node.Attr {
				if attr.Key == "href" && attr.Val != "" {
					probes.hasLink = true
					break
				}
			}
		case "img":
			probes.hasImage = true
		}
	case html.TextNode:
		text.WriteString(node.Data)
	}

	for child := node.FirstChild; child != nil; child = child.NextSibling {
		walkBody(child, probes, text)
	}
}
