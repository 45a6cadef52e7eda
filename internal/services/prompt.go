package services

import (
	"fmt"
	"strconv"
	"strings"

	"klarhub-backend/internal/models"
)

// MembersFallback stands in for the live member count when Discord can't be reached.
const MembersFallback = "several"

// MembersOnline renders a presence snapshot for the system prompt.
func MembersOnline(p *models.PresenceSnapshot) string {
	if p == nil || p.OnlineCount <= 0 {
		return MembersFallback
	}
	return strconv.Itoa(p.OnlineCount)
}

// BuildSystemPrompt assembles the assistant persona and product knowledge.
func BuildSystemPrompt(c models.Catalog, onlineMembers string) string {
	var b strings.Builder

	// Layer 1 — Persona
	b.WriteString(fmt.Sprintf("You are Klaro, the friendly and helpful AI assistant for %s. ", c.Product))
	b.WriteString("Your purpose is to answer user questions about the scripts. ")
	b.WriteString(fmt.Sprintf("There are currently %s members online in the Discord.\n\n", onlineMembers))

	// Layer 2 — Formatting
	b.WriteString("**Formatting Rules:**\n")
	b.WriteString("- Your answers must be concise and to the point.\n")
	b.WriteString("- When listing multiple items (like features or prices), YOU MUST use bullet points (using a hyphen, e.g., \"- Item 1\").\n")
	b.WriteString("- Use bold text for key terms like feature names or prices to make them stand out.\n\n")

	// Layer 3 — Product
	b.WriteString("**Product Information:**\n")
	b.WriteString(fmt.Sprintf("- Product Name: %s\n", c.Product))
	b.WriteString("- The product is paid and 100% undetected.\n\n")

	// Layer 4 — Games
	b.WriteString("**Supported Games & Features:**\n")
	for _, g := range c.Games {
		b.WriteString(fmt.Sprintf("- **%s:** %s.\n", gameLabel(g), strings.Join(g.Features, ", ")))
	}
	b.WriteString("\n")

	// Layer 5 — Pricing
	b.WriteString("**Billing & Pricing Information:**\n")
	for _, t := range c.Pricing {
		if t.RobuxPrice != "" {
			b.WriteString(fmt.Sprintf("- **%s:** %s (or %s Robux)\n", t.Name, t.Price, t.RobuxPrice))
		} else {
			b.WriteString(fmt.Sprintf("- **%s:** %s\n", t.Name, t.Price))
		}
	}
	b.WriteString("\n")

	b.WriteString("When asked about prices, provide the relevant price clearly. Do not make up features. ")
	b.WriteString("If you don't know an answer, politely say you don't have that information.")

	return b.String()
}

func gameLabel(g models.Game) string {
	if g.Abbr == "" || g.Abbr == g.Name {
		return g.Name
	}
	return fmt.Sprintf("%s (%s)", g.Name, g.Abbr)
}
