package doctree

import "testing"

func TestKindString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind Kind
		want string
	}{
		{KindH1, "h1"},
		{KindBlockquote, "blockquote"},
		{KindTD, "td"},
		{KindRaw, "raw"},
		{Kind(-1), "other"},
		{Kind(999), "other"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}

func TestKindFromTag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tag  string
		want Kind
	}{
		{"h2", KindH2},
		{"TABLE", KindTable},
		{"img", KindImg},
		{"div", KindOther},
		{"text", KindOther},
		{"raw", KindOther},
		{"", KindOther},
	}

	for _, tt := range tests {
		if got := KindFromTag(tt.tag); got != tt.want {
			t.Errorf("KindFromTag(%q) = %v, want %v", tt.tag, got, tt.want)
		}
	}
}

func TestNode_PlainText(t *testing.T) {
	t.Parallel()

	em := NewNode(KindEm, "bold")
	em.Tail = " tail"
	p := NewNode(KindP, "start ").Append(em, NewNode(KindText, "!"))
	p.Tail = "ignored"

	if got := p.PlainText(); got != "start bold tail!" {
		t.Errorf("PlainText() = %q, want %q", got, "start bold tail!")
	}
}

func TestNode_Attr(t *testing.T) {
	t.Parallel()

	n := NewNode(KindA, "")
	if got := n.Attr("href"); got != "" {
		t.Errorf("Attr on empty node = %q, want empty", got)
	}
	n.SetAttr("href", "http://x")
	if got := n.Attr("href"); got != "http://x" {
		t.Errorf("Attr(href) = %q, want %q", got, "http://x")
	}
}
