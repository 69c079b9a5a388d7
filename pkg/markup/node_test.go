package markup

import (
	"strings"
	"testing"
)

func TestNewEscapesContent(t *testing.T) {
	n := New("div", "<x>")
	if got, want := n.Content(), "&lt;x&gt;"; got != want {
		t.Errorf("Content() = %q, want %q", got, want)
	}
	if got, want := n.Tag(), "div"; got != want {
		t.Errorf("Tag() = %q, want %q", got, want)
	}
	if n.Void() || n.Raw() {
		t.Errorf("new node has void=%v raw=%v, want both false", n.Void(), n.Raw())
	}
}

func TestIdentityEquality(t *testing.T) {
	a := New("div", "content")
	b := New("div", "content")
	if a == b {
		t.Error("distinct constructions with identical tag/content compare equal")
	}

	c := a
	if a != c {
		t.Error("copy of a handle does not compare equal to the original")
	}
}

func TestSetContent(t *testing.T) {
	n := New("p", "")
	n.SetContent(`a "quoted" & <tagged> value`)
	want := "a &quot;quoted&quot; &amp; &lt;tagged&gt; value"
	if got := n.Content(); got != want {
		t.Errorf("Content() = %q, want %q", got, want)
	}
}

func TestSetAttrEscapes(t *testing.T) {
	n := New("a", "")
	n.SetAttr("href", "x?a=1&b=2")
	got, ok := n.Attr("href")
	if !ok {
		t.Fatal("Attr(href) not found after SetAttr")
	}
	if want := "x?a=1&amp;b=2"; got != want {
		t.Errorf("Attr(href) = %q, want %q", got, want)
	}
}

func TestSetAttrsMergesWithoutClearing(t *testing.T) {
	n := New("a", "")
	n.SetAttrs(Attr{Name: "id", Value: "main"}, Attr{Name: "class", Value: "test"})
	n.SetAttrs(Attr{Name: "href", Value: "/"}, Attr{Name: "class", Value: "other"})

	attrs := n.Attrs()
	want := map[string]string{"id": "main", "class": "other", "href": "/"}
	if len(attrs) != len(want) {
		t.Fatalf("Attrs() has %d entries, want %d: %v", len(attrs), len(want), attrs)
	}
	for k, v := range want {
		if attrs[k] != v {
			t.Errorf("Attrs()[%q] = %q, want %q", k, attrs[k], v)
		}
	}
}

func TestSetAllAttrsReplaces(t *testing.T) {
	n := New("a", "")
	n.SetAttr("id", "main")
	n.SetAllAttrs(map[string]string{"class": "a<b"})

	if _, ok := n.Attr("id"); ok {
		t.Error("Attr(id) survived SetAllAttrs")
	}
	if got, _ := n.Attr("class"); got != "a&lt;b" {
		t.Errorf("Attr(class) = %q, want %q", got, "a&lt;b")
	}
}

func TestAttrsSnapshotIsolated(t *testing.T) {
	n := New("div", "")
	n.SetAttr("id", "main")
	snap := n.Attrs()
	snap["id"] = "clobbered"
	if got, _ := n.Attr("id"); got != "main" {
		t.Errorf("mutating the Attrs() snapshot changed the node: Attr(id) = %q", got)
	}
}

func TestRawModeUnescapesStoredValues(t *testing.T) {
	n := New("div", "a&b")
	if got := n.Content(); got != "a&amp;b" {
		t.Fatalf("escaped content = %q, want %q", got, "a&amp;b")
	}
	n.SetAttr("title", "<t>")

	n.SetRaw(true)
	if got := n.Content(); got != "a&b" {
		t.Errorf("raw content = %q, want %q", got, "a&b")
	}
	if got, _ := n.Attr("title"); got != "<t>" {
		t.Errorf("raw attr = %q, want %q", got, "<t>")
	}
}

func TestRawModeWritesVerbatim(t *testing.T) {
	n := New("script", "")
	n.SetRaw(true)
	n.SetContent("if (a < b && c > d) {}")
	if got := n.Content(); got != "if (a < b && c > d) {}" {
		t.Errorf("Content() = %q, want verbatim input", got)
	}
	n.SetAttr("data-x", `"y"`)
	if got, _ := n.Attr("data-x"); got != `"y"` {
		t.Errorf("Attr(data-x) = %q, want verbatim input", got)
	}
}

func TestRawOffLeavesStoredDataUntouched(t *testing.T) {
	// raw -> non-raw does not re-encode what is already stored.
	n := New("div", "")
	n.SetRaw(true)
	n.SetContent("a & b")
	n.SetRaw(false)
	if got := n.Content(); got != "a & b" {
		t.Errorf("Content() after raw off = %q, want stored literal", got)
	}
	n.SetContent("a & b")
	if got := n.Content(); got != "a &amp; b" {
		t.Errorf("Content() after non-raw write = %q, want escaped", got)
	}
}

func TestString(t *testing.T) {
	n := New("div", "hi")
	n.SetAttr("id", "main")
	child := New("p", "")
	if err := n.AppendChild(child); err != nil {
		t.Fatalf("AppendChild: %v", err)
	}

	s := n.String()
	for _, want := range []string{`Node["div"]`, `content="hi"`, "id", "children=1"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, missing %q", s, want)
		}
	}
	if strings.Contains(s, "parented") {
		t.Errorf("String() = %q reports a parent for a root node", s)
	}
	if cs := child.String(); !strings.Contains(cs, "parented") {
		t.Errorf("child String() = %q, missing parent marker", cs)
	}
}

func TestDump(t *testing.T) {
	root := New("div", "")
	root.SetAttr("id", "main")
	root.AppendChild(New("p", "hello"))
	root.AppendChild(New("", "raw tail"))

	d := root.Dump()
	for _, want := range []string{`div id="main"`, `p content="hello"`, `#text "raw tail"`} {
		if !strings.Contains(d, want) {
			t.Errorf("Dump() missing %q:\n%s", want, d)
		}
	}
}
