package chat

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/velmora/health-assistant/backend/internal/model/chat"
)

var filenameSanitizer = regexp.MustCompile(`[^a-zA-Z0-9]`)

// Export renders the session transcript as a markdown document. The
// synthetic welcome message is skipped. The returned filename is derived
// from the session title with non-alphanumeric characters replaced.
func (s *Service) Export(sessionID string) (filename, document string, err error) {
	session, err := s.Get(sessionID)
	if err != nil {
		return "", "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", session.Title)
	fmt.Fprintf(&b, "**Created:** %s\n", session.CreatedAt.Format("January 2, 2006"))
	fmt.Fprintf(&b, "**Updated:** %s\n\n", session.UpdatedAt.Format("January 2, 2006"))
	b.WriteString("---\n\n")

	for _, msg := range session.Messages {
		if msg.ID == chat.WelcomeMessageID {
			continue
		}
		role := "**Health Assistant**"
		if msg.IsUser {
			role = "**You**"
		}
		fmt.Fprintf(&b, "### %s\n", role)
		fmt.Fprintf(&b, "%s\n\n", msg.Content)
		if msg.Intent != "" {
			fmt.Fprintf(&b, "*Intent: %s*\n\n", msg.Intent)
		}
		fmt.Fprintf(&b, "*%s*\n\n", msg.Timestamp.Format("January 2, 2006 3:04 PM"))
		b.WriteString("---\n\n")
	}

	name := "health-chat-" + filenameSanitizer.ReplaceAllString(session.Title, "-") + ".md"
	return name, b.String(), nil
}
