// Package md2note converts standard Markdown into the dialect accepted by
// note.com's editor.
//
// The conversion is a fixed sequence of text rewrite passes: YAML front
// matter is stripped, heading levels are clamped to H2/H3, the common math
// delimiter conventions are translated to note.com's $${...}$$ and $$ block
// forms, pipe tables become LaTeX array blocks, HTML markup is removed, and
// footnotes are flagged for manual follow-up. Constructs that cannot be
// converted safely degrade to diagnostics instead of errors.
//
// # Quick Start
//
//	svc := md2note.New()
//	result, err := svc.Convert(ctx, md2note.Input{
//	    Markdown: "# Title\n\nSome $x+y$ math.",
//	    Name:     "article.md",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Markdown)
//	for _, d := range result.Diagnostics {
//	    fmt.Printf("%s:%d [%s] %s\n", d.File, d.Line, d.Severity, d.Message)
//	}
//
// The md2note command wraps this package for batch use: it walks a
// directory, converts every Markdown file, writes X.note.md next to X.md,
// and prints a conversion report.
package md2note
