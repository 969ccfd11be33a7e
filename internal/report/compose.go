package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/hurryup/internal/htmltext"
	"github.com/julianstephens/hurryup/internal/models"
	"github.com/julianstephens/hurryup/internal/utils"
)

// Artifact is the finished report. HTML and Text are the stored forms;
// images travel separately and are only inlined when sharing.
type Artifact struct {
	HTML   string
	Text   string
	Images []string
}

// Compose builds the report header from the user profile, followed by the
// draft body.
func Compose(user models.User, draftHTML string, images []string, now time.Time) Artifact {
	date := utils.ThaiShortDate(now)

	var h strings.Builder
	fmt.Fprintf(&h, "<p><strong>โครงการ :</strong> %s</p>\n", htmltext.Escape(user.ProjectLabel))
	fmt.Fprintf(&h, "<p><strong>สถานที่ปฏิบัติงาน :</strong> %s</p>\n", htmltext.Escape(user.Workplace))
	fmt.Fprintf(&h, "<p><strong>ผู้ปฏิบัติงาน:</strong> %s</p>\n", htmltext.Escape(user.Name))
	fmt.Fprintf(&h, "<p><strong>ตำแหน่ง:</strong> %s</p>\n", htmltext.Escape(user.Role))
	fmt.Fprintf(&h, "<p><strong>งานประจำวันที่</strong> %s</p>\n", date)
	fmt.Fprintf(&h, `<div style="margin-top: 12px;">%s</div>`, draftHTML)

	var t strings.Builder
	fmt.Fprintf(&t, "โครงการ : %s\n", user.ProjectLabel)
	fmt.Fprintf(&t, "สถานที่ปฏิบัติงาน : %s\n", user.Workplace)
	fmt.Fprintf(&t, "ผู้ปฏิบัติงาน: %s\n", user.Name)
	fmt.Fprintf(&t, "ตำแหน่ง: %s\n", user.Role)
	fmt.Fprintf(&t, "งานประจำวันที่ %s\n\n", date)
	t.WriteString(htmltext.ToPlainText(draftHTML))

	return Artifact{
		HTML:   h.String(),
		Text:   strings.TrimSpace(t.String()),
		Images: append([]string{}, images...),
	}
}

// ShareHTML is the HTML with attached images appended as <img> tags.
func (a Artifact) ShareHTML() string {
	if len(a.Images) == 0 {
		return a.HTML
	}
	var b strings.Builder
	b.WriteString(a.HTML)
	b.WriteString("\n<div class=\"report-images\">")
	for i, src := range a.Images {
		fmt.Fprintf(&b, `<img src="%s" alt="image %d">`, htmltext.Escape(src), i+1)
	}
	b.WriteString("</div>")
	return b.String()
}

// ShareText is the text with a marker per attached image.
func (a Artifact) ShareText() string {
	if len(a.Images) == 0 {
		return a.Text
	}
	var b strings.Builder
	b.WriteString(a.Text)
	b.WriteString("\n")
	for i := range a.Images {
		fmt.Fprintf(&b, "\n[image %d]", i+1)
	}
	return b.String()
}

// ClipboardText is the text placed on the clipboard: indented lists nested
// and rendered with four-space indentation.
func (a Artifact) ClipboardText() string {
	return htmltext.IndentedText(htmltext.NestIndentedLists(a.HTML))
}
