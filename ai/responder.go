package ai

import (
	"fmt"
	"strings"

	"github.com/nagulan1506/real-estate-app/models"
)

// Canned locality blurbs served when the generative backend is off or
// failing, keyed by exact location string.
var mockInsights = map[string]string{
	"Anna Nagar, Chennai":      "[Mock] Anna Nagar is a premium residential locality known for its grid-like roads, lush parks (like Tower Park), and excellent social infrastructure including top schools and hospitals. It offers a perfect blend of peaceful living with modern urban conveniences.",
	"Sholinganallur, Chennai":  "Sholinganallur is a key IT hub on the OMR corridor, making it ideal for tech professionals. It boasts excellent connectivity to ECR and the city center, with numerous gated communities and proximity to the beach.",
	"Thoraipakkam, Chennai":    "Thoraipakkam is a rapidly developing residential area on OMR, favored for its affordability and closeness to major IT parks. It offers good connectivity and a growing number of retail and dining options.",
	"Adyar, Chennai":           "Adyar is one of Chennai's most affluent and greenest neighborhoods, blending old-world charm with modern luxury. Home to the Theosophical Society and Elliot's Beach, it offers a serene, culturally rich living experience.",
	"ECR, Chennai":             "East Coast Road (ECR) offers a scenic, resort-like lifestyle along the coast, perfect for those seeking luxury villas and weekend getaways. It is less congested but well-connected to the city via the scenic highway.",
}

func InsightPrompt(location string) string {
	return fmt.Sprintf("Provide a brief, engaging summary (max 3 sentences) about the lifestyle, connectivity, and vibe of living in %s for a potential home buyer.", location)
}

func ChatPrompt(propertyContext, message string) string {
	return fmt.Sprintf("You are a helpful real estate assistant. Here is the list of available properties:\n%s\n\nUser Question: %s\n\nAnswer based on the property list provided. If asked about something not on the list, politely say you don't have that information. Keep answers concise.", propertyContext, message)
}

// LocalityFallback returns the canned blurb for a known locality, or a
// generic templated sentence for anywhere else.
func LocalityFallback(location string) string {
	if insight, ok := mockInsights[location]; ok {
		return insight
	}
	return fmt.Sprintf("%s is a well-connected area with good residential amenities and easy access to local markets and transport hubs, making it a convenient choice for families.", location)
}

// PropertyContext renders the catalog lines embedded in the chat prompt.
func PropertyContext(props []models.Property) string {
	lines := make([]string, 0, len(props))
	for _, p := range props {
		lines = append(lines, fmt.Sprintf("%s (%s) in %s for ₹%s. %dBHK.", p.Title, p.Type, p.Location, formatINR(p.Price), p.Rooms))
	}
	return strings.Join(lines, "\n")
}

// ChatFallback answers by ordered keyword matching over the lower-cased
// message. It is a pure function of the message and the catalog.
func ChatFallback(message string, props []models.Property) string {
	lowerMsg := strings.ToLower(message)

	switch {
	case strings.Contains(lowerMsg, "villa"):
		villas := byType(props, "House")
		return fmt.Sprintf("We have %d villas available. For example: %s.", len(villas), joinTitles(villas))
	case strings.Contains(lowerMsg, "apartment"), strings.Contains(lowerMsg, "flat"):
		apts := byType(props, "Apartment")
		return fmt.Sprintf("We have %d apartments available. Check out: %s.", len(apts), joinTitles(apts))
	case strings.Contains(lowerMsg, "anna nagar"):
		var an []models.Property
		for _, p := range props {
			if strings.Contains(p.Location, "Anna Nagar") {
				an = append(an, p)
			}
		}
		return fmt.Sprintf("In Anna Nagar, we have: %s.", joinTitles(an))
	case strings.Contains(lowerMsg, "price"), strings.Contains(lowerMsg, "cost"):
		return "Our properties range from ₹80 Lakhs to ₹6.5 Crores. What's your budget?"
	}

	return "I can help you find properties. Try asking about 'villas', 'apartments', or specific locations like 'Anna Nagar'."
}

func byType(props []models.Property, propertyType string) []models.Property {
	var out []models.Property
	for _, p := range props {
		if p.Type == propertyType {
			out = append(out, p)
		}
	}
	return out
}

func joinTitles(props []models.Property) string {
	titles := make([]string, 0, len(props))
	for _, p := range props {
		titles = append(titles, p.Title)
	}
	return strings.Join(titles, ", ")
}

// formatINR groups digits the Indian way: last three, then pairs.
func formatINR(n int64) string {
	s := fmt.Sprintf("%d", n)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	if len(s) > 3 {
		head, tail := s[:len(s)-3], s[len(s)-3:]
		var groups []string
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		if head != "" {
			groups = append([]string{head}, groups...)
		}
		s = strings.Join(append(groups, tail), ",")
	}
	if neg {
		s = "-" + s
	}
	return s
}
