// Package document decodes markup trees described in JSON or YAML.
//
// A document is a single node. Element nodes name a tag; component nodes
// name an entry of a Registry:
//
//	tag: html
//	attrs:
//	  lang: en
//	children:
//	  - tag: body
//	    context:
//	      theme: dark
//	    children:
//	      - Hello & welcome     # text, escaped by default
//	      - raw: <b>bold</b>    # raw markup, optionally sanitized
//	      - 42
//	      - component: card
//	        props:
//	          title: News
//
// JSON documents use the same keys. Every decoding error carries the line
// and column of the offending node.
package document
