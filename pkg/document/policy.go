package document

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/vango-dev/markup/pkg/vdom"
)

var (
	rawPolicyOnce sync.Once
	rawPolicy     *bluemonday.Policy
)

// rawSanitizer returns the policy applied to raw markup nodes.
func rawSanitizer() *bluemonday.Policy {
	rawPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.AllowAttrs("class").Globally()
		policy.AllowElements("section", "article", "header", "footer", "nav", "aside", "main")
		rawPolicy = policy
	})
	return rawPolicy
}

// textChild applies the text policy to a plain text node.
func (o Options) textChild(s string) vdom.Child {
	if o.EscapeText {
		return vdom.Text(s)
	}
	return vdom.RawText(s)
}

// rawChild applies the sanitizing policy to a raw markup node.
func (o Options) rawChild(s string) vdom.Child {
	if o.SanitizeHTML {
		return vdom.RawText(rawSanitizer().Sanitize(s))
	}
	return vdom.RawText(s)
}
