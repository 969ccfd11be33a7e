package htmltext

import "testing"

func TestToPlainText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"paragraph", "<p>hello</p>", "hello"},
		{
			name: "ordered list",
			in:   "<p>โครงการ: A ประกอบ</p><ol><li>one</li><li>two</li></ol>",
			want: "โครงการ: A ประกอบ\n1. one\n2. two",
		},
		{
			name: "default template with empty items",
			in:   "<p>X</p><ol><li></li><li></li><li></li></ol>",
			want: "X\n1. \n2. \n3.",
		},
		{"unordered list", "<ul><li>a</li><li>b</li></ul>", "• a\n• b"},
		{"numbering restarts per list", "<ol><li>a</li></ol><ol><li>b</li></ol>", "1. a\n1. b"},
		{"line break", "line1<br>line2", "line1\nline2"},
		{"draft separator collapses", "<p>A</p><p><br></p><p>B</p>", "A\n\nB"},
		{"entities decoded", "<p>a &amp; b &lt;c&gt;</p>", "a & b <c>"},
		{"div", "<div>x</div><div>y</div>", "x\ny"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToPlainText(tt.in); got != tt.want {
				t.Errorf("ToPlainText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStrip(t *testing.T) {
	if got := Strip("<p>a<b>b</b></p><p>c</p>"); got != "abc" {
		t.Errorf("Strip() = %q, want %q", got, "abc")
	}
}

func TestEscape(t *testing.T) {
	got := Escape(`<a href="x">&`)
	want := `&lt;a href="x"&gt;&amp;`
	if got != want {
		t.Errorf("Escape() = %q, want %q", got, want)
	}
}

func TestFromPlain(t *testing.T) {
	got := FromPlain("a\nb<")
	want := "<p>a</p><p>b&lt;</p>"
	if got != want {
		t.Errorf("FromPlain() = %q, want %q", got, want)
	}
}

func TestIndentedText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"header", "<p><strong>ตำแหน่ง:</strong> dev</p>", "ตำแหน่ง: dev"},
		{"flat ordered", "<ol><li>a</li><li>b</li></ol>", "1. a\n2. b"},
		{"nested", "<ul><li>a<ul><li>b</li></ul></li><li>c</li></ul>", "• a\n    • b\n• c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IndentedText(tt.in); got != tt.want {
				t.Errorf("IndentedText() = %q, want %q", got, tt.want)
			}
		})
	}
}
