package render

import "testing"

func TestEscapeHTML(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"a & b", "a &amp; b"},
		{"<script>", "&lt;script&gt;"},
		{`"quoted"`, "&quot;quoted&quot;"},
		{"it's", "it&#39;s"},
		{"", ""},
		{"héllo ☺", "héllo ☺"},
	}
	for _, tt := range tests {
		if got := escapeHTML(tt.in); got != tt.want {
			t.Errorf("escapeHTML(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEscapeAttr(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{`a "b" c`, "a &quot;b&quot; c"},
		{"line\nbreak", "line&#10;break"},
		{"tab\there", "tab&#9;here"},
		{"cr\rhere", "cr&#13;here"},
		{"amp & more", "amp &amp; more"},
	}
	for _, tt := range tests {
		if got := escapeAttr(tt.in); got != tt.want {
			t.Errorf("escapeAttr(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestVoidAndInlineTables(t *testing.T) {
	if !isVoidElement("br") || isVoidElement("div") {
		t.Error("void element table wrong")
	}
	if !isInlineElement("span") || isInlineElement("section") {
		t.Error("inline element table wrong")
	}
	if !isBooleanAttr("disabled") || isBooleanAttr("title") {
		t.Error("boolean attr table wrong")
	}
}
