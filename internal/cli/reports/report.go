package reports

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/atotto/clipboard"

	"github.com/julianstephens/hurryup/internal/cli"
	"github.com/julianstephens/hurryup/internal/htmltext"
	"github.com/julianstephens/hurryup/internal/report"
	"github.com/julianstephens/hurryup/internal/session"
)

// ContentFlags replace the generated draft before composing.
type ContentFlags struct {
	Content string   `help:"Report body as plain text." short:"m"`
	File    string   `help:"Read the report body from a file, or - for stdin." short:"f"`
	HTML    bool     `help:"Treat --content/--file as HTML instead of plain text."`
	Improve bool     `help:"Polish the text with the improvement proxy first."`
	Image   []string `help:"Image to attach. Repeatable." type:"existingfile"`
}

func (f ContentFlags) apply(ctx *cli.Context, s *session.Session) error {
	body, err := cli.ReadInput(f.Content, f.File)
	if err != nil {
		return err
	}
	switch {
	case body != "" && f.HTML:
		s.Surface().SetContent(body)
	case body != "":
		s.Surface().SetContent(htmltext.FromPlain(body))
	}

	if f.Improve {
		c, cancel := context.WithTimeout(context.Background(), ctx.Config.Improve.Timeout)
		defer cancel()
		if err := s.Improve(c, ctx.Improver()); err != nil {
			return err
		}
	}

	for _, path := range f.Image {
		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read image: %w", err)
		}
		if _, err := s.AddAttachment(context.Background(), raw); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return nil
}

func compose(ctx *cli.Context, flags ContentFlags) (*session.Session, report.Artifact, error) {
	s, err := ctx.Onboarded()
	if err != nil {
		return nil, report.Artifact{}, err
	}
	if err := flags.apply(ctx, s); err != nil {
		return nil, report.Artifact{}, err
	}
	a, err := s.Compose()
	if err != nil {
		return nil, report.Artifact{}, fmt.Errorf("select at least one project with 'hurryup project select': %w", err)
	}
	return s, a, nil
}

// ReportDraftCmd prints the draft generated from the selected projects.
type ReportDraftCmd struct {
	HTML bool `help:"Print HTML instead of plain text."`
}

func (c *ReportDraftCmd) Run(ctx *cli.Context) error {
	s, err := ctx.Onboarded()
	if err != nil {
		return err
	}
	d := s.Draft()
	if d.Empty() {
		fmt.Println("No projects selected.")
		return nil
	}
	if c.HTML {
		fmt.Println(d.HTML)
	} else {
		fmt.Println(d.Text)
	}
	return nil
}

// ReportComposeCmd previews the full report without saving it.
type ReportComposeCmd struct {
	ContentFlags
	Output string `help:"Output format." enum:"text,html" default:"text"`
}

func (c *ReportComposeCmd) Run(ctx *cli.Context) error {
	s, a, err := compose(ctx, c.ContentFlags)
	if err != nil {
		return err
	}
	if c.Output == "html" {
		fmt.Println(a.ShareHTML())
	} else {
		fmt.Println(a.ShareText())
	}
	printLinks(s)
	return nil
}

// ReportSubmitCmd composes and saves today's report.
type ReportSubmitCmd struct {
	ContentFlags
	Yes  bool `help:"Overwrite today's report without asking." short:"y"`
	Copy bool `help:"Copy the report to the clipboard after saving."`
}

func (c *ReportSubmitCmd) Run(ctx *cli.Context) error {
	s, a, err := compose(ctx, c.ContentFlags)
	if err != nil {
		return err
	}

	confirm := func() bool {
		return c.Yes || cli.Confirm("You already reported today. Replace it?")
	}
	out, err := s.Submit(a, confirm)
	switch {
	case errors.Is(err, report.ErrOverwriteDeclined):
		fmt.Println("Submit cancelled.")
		return nil
	case err != nil:
		return err
	}

	if out.Updated {
		fmt.Println("✓ Today's report updated")
	} else {
		fmt.Println("✓ Report saved")
	}
	if s.LastSave.Culled != 0 {
		fmt.Println("⚠️  Storage was full: images from older reports were removed.")
	}
	if c.Copy {
		return copyText(a.ClipboardText())
	}
	return nil
}

// ReportCopyCmd copies the composed report as indented plain text.
type ReportCopyCmd struct {
	ContentFlags
}

func (c *ReportCopyCmd) Run(ctx *cli.Context) error {
	_, a, err := compose(ctx, c.ContentFlags)
	if err != nil {
		return err
	}
	return copyText(a.ClipboardText())
}

// ImproveCmd sends text to the improvement proxy and prints the result.
type ImproveCmd struct {
	Content string `arg:"" optional:"" help:"Text to improve."`
	File    string `help:"Read the text from a file, or - for stdin." short:"f"`
}

func (c *ImproveCmd) Run(ctx *cli.Context) error {
	text, err := cli.ReadInput(c.Content, c.File)
	if err != nil {
		return err
	}
	cx, cancel := context.WithTimeout(context.Background(), ctx.Config.Improve.Timeout)
	defer cancel()
	out, err := ctx.Improver().Improve(cx, text)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

func printLinks(s *session.Session) {
	links := s.ProjectLinks()
	if len(links) == 0 {
		return
	}
	fmt.Println()
	fmt.Println("Taiga:")
	for _, p := range links {
		fmt.Printf("  %s  %s\n", p.Name, p.TaigaURL)
	}
}

func copyText(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	fmt.Println("✓ Copied to clipboard")
	return nil
}
