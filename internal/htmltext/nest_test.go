package htmltext

import "testing"

func TestNestIndentedLists(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "no indents unchanged",
			in:   "<ol><li>a</li><li>b</li></ol>",
			want: "<ol><li>a</li><li>b</li></ol>",
		},
		{
			name: "one level",
			in:   `<ul><li>a</li><li class="ql-indent-1">b</li><li>c</li></ul>`,
			want: "<ul><li>a<ul><li>b</li></ul></li><li>c</li></ul>",
		},
		{
			name: "two levels and back",
			in:   `<ol><li>a</li><li class="ql-indent-1">b</li><li class="ql-indent-2">c</li><li>d</li></ol>`,
			want: "<ol><li>a<ol><li>b<ol><li>c</li></ol></li></ol></li><li>d</li></ol>",
		},
		{
			name: "other classes kept",
			in:   `<ul><li>a</li><li class="ql-indent-1 ql-align-center">b</li></ul>`,
			want: `<ul><li>a<ul><li class="ql-align-center">b</li></ul></li></ul>`,
		},
		{
			name: "surrounding content kept",
			in:   "<p>x</p><ul><li>a</li></ul>",
			want: "<p>x</p><ul><li>a</li></ul>",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NestIndentedLists(tt.in); got != tt.want {
				t.Errorf("NestIndentedLists() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNestThenIndent(t *testing.T) {
	in := `<ol><li>a</li><li class="ql-indent-1">b</li></ol>`
	want := "1. a\n    1. b"
	if got := IndentedText(NestIndentedLists(in)); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
