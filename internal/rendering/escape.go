package rendering

import "strings"

// latexReplacer maps characters that are special to LaTeX, plus a few
// typographic characters common in pasted resume text, to safe forms.
var latexReplacer = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`{`, `\{`,
	`}`, `\}`,
	`$`, `\$`,
	`&`, `\&`,
	`%`, `\%`,
	`#`, `\#`,
	`^`, `\textasciicircum{}`,
	`_`, `\_`,
	`~`, `\textasciitilde{}`,
	`<`, `\textless{}`,
	`>`, `\textgreater{}`,
	`|`, `\textbar{}`,
	"•", `\textbullet{}`,
	"–", `--`,
	"—", `---`,
)

// EscapeLaTeX escapes text for use inside a LaTeX document.
func EscapeLaTeX(text string) string {
	if text == "" {
		return ""
	}
	return latexReplacer.Replace(text)
}
