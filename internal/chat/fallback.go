package chat

import (
	"fmt"
	"strings"

	"portfolio-chatbot/internal/model"
	"portfolio-chatbot/internal/portfolio"
)

const maxListedProjects = 3

type topicRule struct {
	topic    Topic
	keywords []string
	render   func(p model.Portfolio) string
}

// FallbackGenerator answers from the portfolio record by keyword matching.
// Replies are deterministic for a given record and message.
type FallbackGenerator struct {
	rules []topicRule
}

// NewFallbackGenerator returns the generator with topics in priority order; the first match wins.
func NewFallbackGenerator() *FallbackGenerator {
	return &FallbackGenerator{
		rules: []topicRule{
			{TopicSkills, []string{"skill", "stack", "technolog", "language", "framework"}, skillsReply},
			{TopicProjects, []string{"project", "portfolio", "built", "work on"}, projectsReply},
			{TopicContact, []string{"contact", "email", "reach", "hire", "linkedin", "github"}, contactReply},
			{TopicLearning, []string{"learn", "studying", "currently"}, learningReply},
			{TopicExperience, []string{"experience", "job", "career", "company"}, experienceReply},
			{TopicAbout, []string{"who", "about", "yourself", "background"}, aboutReply},
		},
	}
}

// Reply picks the first topic whose keyword appears in message, or the greeting.
func (g *FallbackGenerator) Reply(p model.Portfolio, message string) (string, Topic) {
	lower := strings.ToLower(message)
	for _, r := range g.rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.render(p), r.topic
			}
		}
	}
	return greetingReply(p), TopicGreeting
}

func greetingReply(p model.Portfolio) string {
	intro := DefaultGreetingPrefix
	if p.Name != "" {
		intro += " for " + p.Name
	}
	return intro + ". The AI service is unavailable right now, but I can still tell you about " +
		"skills, projects, experience, what's being learned at the moment, or how to get in touch."
}

func skillsReply(p model.Portfolio) string {
	if len(p.Skills) == 0 {
		return subject(p) + " hasn't listed skills here yet. Feel free to get in touch and ask directly."
	}

	groups := make([]string, 0, len(p.Skills))
	for _, g := range p.Skills {
		if g.Category == "" {
			groups = append(groups, strings.Join(g.Items, ", "))
			continue
		}
		groups = append(groups, fmt.Sprintf("%s: %s", g.Category, strings.Join(g.Items, ", ")))
	}
	return fmt.Sprintf("%s's core skills are %s.", subject(p), strings.Join(groups, "; "))
}

func projectsReply(p model.Portfolio) string {
	if len(p.Projects) == 0 {
		return subject(p) + " hasn't published projects here yet. Check back soon!"
	}

	shown := p.Projects
	if len(shown) > maxListedProjects {
		shown = shown[:maxListedProjects]
	}

	parts := make([]string, 0, len(shown))
	for _, pr := range shown {
		s := pr.Name
		if pr.Description != "" {
			s += " (" + pr.Description + ")"
		}
		if len(pr.Tech) > 0 {
			s += ", built with " + joinList(pr.Tech)
		}
		parts = append(parts, s)
	}

	reply := fmt.Sprintf("Some of %s's projects: %s.", object(p), strings.Join(parts, "; "))
	if more := len(p.Projects) - len(shown); more > 0 {
		reply += fmt.Sprintf(" See the portfolio page for %d more.", more)
	}
	return reply
}

func contactReply(p model.Portfolio) string {
	lines := portfolio.ContactLines(p.Contact)
	if len(lines) == 0 {
		return "Contact details aren't listed here yet. Please use the contact section of the site."
	}
	return fmt.Sprintf("You can reach %s via %s.", object(p), strings.Join(lines, ", "))
}

func learningReply(p model.Portfolio) string {
	if len(p.Learning) == 0 {
		return subject(p) + " is always picking up something new. Get in touch to hear what's on the list right now."
	}
	return fmt.Sprintf("%s is currently learning %s.", subject(p), joinList(p.Learning))
}

func experienceReply(p model.Portfolio) string {
	if len(p.Experience) == 0 {
		return subject(p) + " hasn't listed work experience here yet."
	}

	roles := make([]string, 0, len(p.Experience))
	for _, e := range p.Experience {
		s := e.Title + " at " + e.Company
		if e.Period != "" {
			s += " (" + e.Period + ")"
		}
		roles = append(roles, s)
	}
	return fmt.Sprintf("%s has worked as %s.", subject(p), joinList(roles))
}

func aboutReply(p model.Portfolio) string {
	var b strings.Builder
	b.WriteString(subject(p))
	if p.Role != "" {
		b.WriteString(" is " + article(p.Role) + " " + p.Role)
	} else {
		b.WriteString(" is a developer")
	}
	if p.Location != "" {
		b.WriteString(" based in " + p.Location)
	}
	b.WriteString(".")
	if p.Summary != "" {
		b.WriteString(" " + p.Summary)
	}
	return b.String()
}

// subject names the owner at the start of a sentence.
func subject(p model.Portfolio) string {
	if p.Name != "" {
		return p.Name
	}
	return "This developer"
}

// object names the owner mid-sentence.
func object(p model.Portfolio) string {
	if p.Name != "" {
		return p.Name
	}
	return "this developer"
}

func article(word string) string {
	if word == "" {
		return "a"
	}
	switch strings.ToLower(word[:1]) {
	case "a", "e", "i", "o", "u":
		return "an"
	}
	return "a"
}

// joinList renders ["a","b","c"] as "a, b and c".
func joinList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
}
