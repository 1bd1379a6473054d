package dom

import (
	"strings"

	"github.com/wavetermdev/htmltoken"
)

// voidTags are elements that never take children and have no closing tag.
var voidTags = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// ParseFragment tokenizes an HTML fragment and builds the corresponding
// node subtree.
//
// Parsing is tolerant: unmatched end tags are ignored, unclosed elements are
// closed implicitly at end of input, and comments and doctypes are dropped.
// The result is the single root node when the fragment has exactly one root,
// a fragment node when it has several, and nil when it has none.
func ParseFragment(markup string) *Node {
	iter := htmltoken.NewTokenizer(strings.NewReader(markup))
	stack := []*Node{{Kind: KindFragment}}

loop:
	for {
		tokenType := iter.Next()
		token := iter.Token()
		switch tokenType {
		case htmltoken.StartTagToken:
			elem := tokenToNode(token)
			if voidTags[token.Data] {
				stack[len(stack)-1].Append(elem)
				continue
			}
			stack = append(stack, elem)
		case htmltoken.SelfClosingTagToken:
			stack[len(stack)-1].Append(tokenToNode(token))
		case htmltoken.EndTagToken:
			// Pop to the matching open tag; ignore stray end tags.
			for i := len(stack) - 1; i >= 1; i-- {
				if stack[i].Tag == token.Data {
					stack = closeTo(stack, i)
					break
				}
			}
		case htmltoken.TextToken:
			if text := normalizeText(token.Data); text != "" {
				stack[len(stack)-1].Append(NewText(text))
			}
		case htmltoken.CommentToken, htmltoken.DoctypeToken:
			continue
		case htmltoken.ErrorToken:
			// EOF or a tokenizer error; keep whatever parsed so far.
			break loop
		}
	}
	stack = closeTo(stack, 1)

	root := stack[0]
	switch root.ChildCount() {
	case 0:
		return nil
	case 1:
		c := root.ChildAt(0)
		c.Remove()
		return c
	default:
		return root
	}
}

// closeTo pops the stack down to depth, attaching each popped element to
// the one below it.
func closeTo(stack []*Node, depth int) []*Node {
	for len(stack) > depth {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		stack[len(stack)-1].Append(top)
	}
	return stack
}

func tokenToNode(token htmltoken.Token) *Node {
	n := NewElement(token.Data, nil)
	for _, attr := range token.Attr {
		if attr.Key == "" {
			continue
		}
		n.SetAttr(attr.Key, attr.Val)
	}
	return n
}

// normalizeText collapses all-whitespace runs and trims text adjacent to
// tags, mirroring how browsers treat inter-element whitespace.
func normalizeText(s string) string {
	if s == "" {
		return ""
	}
	if strings.TrimSpace(s) == "" {
		return ""
	}
	return strings.TrimSpace(s)
}
