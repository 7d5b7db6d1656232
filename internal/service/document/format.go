package document

import (
	"regexp"
	"strings"
)

var (
	sectionHeaderRe = regexp.MustCompile(`^\*\*(.*?)\*\*:?$`)
	headerMarksRe   = regexp.MustCompile(`^\*\*|\*\*:?$`)
	blankRunsRe     = regexp.MustCompile(`\n{3,}`)
)

// formatExtraction turns the backend's bullet-template output into tidy
// markdown: section banners become ## headings, per-medicine banners under
// the medications section become ### headings, bullets are normalised and
// bare field:value lines become bold list entries.
func formatExtraction(raw string) string {
	text := strings.ReplaceAll(raw, "\r\n", "\n")
	text = blankRunsRe.ReplaceAllString(text, "\n\n")
	text = strings.TrimSpace(text)

	var out []string
	inMedicineSection := false

	for _, rawLine := range strings.Split(text, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}

		if sectionHeaderRe.MatchString(line) {
			header := strings.TrimSpace(headerMarksRe.ReplaceAllString(line, ""))
			if inMedicineSection && strings.HasPrefix(strings.ToLower(header), "medicine") {
				out = append(out, "\n### "+header+"\n")
				continue
			}
			out = append(out, "\n## "+header+"\n")
			inMedicineSection = strings.Contains(strings.ToLower(header), "medication")
			continue
		}

		if strings.HasPrefix(line, "•") || strings.HasPrefix(line, "-") {
			content := strings.TrimSpace(strings.TrimLeft(line, "•-"))
			if inMedicineSection && sectionHeaderRe.MatchString(content) {
				header := strings.TrimSpace(headerMarksRe.ReplaceAllString(content, ""))
				out = append(out, "\n### "+header+"\n")
				continue
			}
			if strings.HasPrefix(line, "-") || strings.HasPrefix(rawLine, "  -") || strings.HasPrefix(rawLine, "\t-") {
				out = append(out, "  - "+content)
			} else {
				out = append(out, "- "+content)
			}
			continue
		}

		if idx := strings.Index(line, ":"); idx >= 0 && !strings.HasPrefix(line, "**") {
			field := strings.TrimSpace(line[:idx])
			value := strings.TrimSpace(line[idx+1:])
			if value == "" {
				value = "Not visible"
			}
			out = append(out, "- **"+field+"**: "+value)
			continue
		}

		out = append(out, "- "+line)
	}

	markdown := strings.Join(out, "\n")
	markdown = blankRunsRe.ReplaceAllString(markdown, "\n\n")
	return strings.TrimSpace(markdown)
}
