package portfolio

import (
	"fmt"
	"strings"

	"portfolio-chatbot/internal/model"
)

// BuildSystemPrompt renders the system instruction sent with every completion request.
func BuildSystemPrompt(p model.Portfolio) string {
	name := p.Name
	if name == "" {
		name = "the site owner"
	}

	var b strings.Builder
	fmt.Fprintf(&b, promptPreamble, name, name)
	b.WriteString("\n\nPROFILE\n")

	writeLine(&b, "Name", p.Name)
	writeLine(&b, "Role", p.Role)
	writeLine(&b, "Location", p.Location)
	writeLine(&b, "Summary", p.Summary)

	if len(p.Skills) > 0 {
		b.WriteString("\nSKILLS\n")
		for _, g := range p.Skills {
			fmt.Fprintf(&b, "- %s: %s\n", g.Category, strings.Join(g.Items, ", "))
		}
	}

	if len(p.Projects) > 0 {
		b.WriteString("\nPROJECTS\n")
		for _, pr := range p.Projects {
			fmt.Fprintf(&b, "- %s: %s", pr.Name, pr.Description)
			if len(pr.Tech) > 0 {
				fmt.Fprintf(&b, " (tech: %s)", strings.Join(pr.Tech, ", "))
			}
			if pr.URL != "" {
				fmt.Fprintf(&b, " <%s>", pr.URL)
			}
			b.WriteByte('\n')
		}
	}

	if len(p.Experience) > 0 {
		b.WriteString("\nEXPERIENCE\n")
		for _, e := range p.Experience {
			fmt.Fprintf(&b, "- %s at %s (%s)\n", e.Title, e.Company, e.Period)
			for _, h := range e.Highlights {
				fmt.Fprintf(&b, "  * %s\n", h)
			}
		}
	}

	if len(p.Learning) > 0 {
		fmt.Fprintf(&b, "\nCURRENTLY LEARNING\n%s\n", strings.Join(p.Learning, ", "))
	}

	if contact := ContactLines(p.Contact); len(contact) > 0 {
		b.WriteString("\nCONTACT\n")
		for _, c := range contact {
			fmt.Fprintf(&b, "- %s\n", c)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// ContactLines lists the non-empty contact channels as "Label: value".
func ContactLines(c model.PortfolioContact) []string {
	var out []string
	if c.Email != "" {
		out = append(out, "Email: "+c.Email)
	}
	if c.GitHub != "" {
		out = append(out, "GitHub: "+c.GitHub)
	}
	if c.LinkedIn != "" {
		out = append(out, "LinkedIn: "+c.LinkedIn)
	}
	if c.Website != "" {
		out = append(out, "Website: "+c.Website)
	}
	return out
}

func writeLine(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "%s: %s\n", label, value)
}
