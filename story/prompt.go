package story

import (
	"fmt"
	"strings"
)

// Params describes the story the user asked for.
type Params struct {
	Characters []string
	Place      string
	Genre      string
}

// Genres lists the supported story genres in menu order.
var Genres = []string{
	"Adventure",
	"Mystery",
	"Romance",
	"Horror",
	"Fantasy",
	"Sci-Fi",
	"Comedy",
}

// NormalizeGenre maps a menu number ("1".."7") or a genre name to a genre
// from the list. Anything unrecognized falls back to Adventure.
func NormalizeGenre(choice string) string {
	choice = strings.TrimSpace(choice)
	for i, genre := range Genres {
		if choice == fmt.Sprintf("%d", i+1) || strings.EqualFold(choice, genre) {
			return genre
		}
	}
	return Genres[0]
}

// BuildPrompt renders the story prompt for the model.
func BuildPrompt(p Params) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("You are a creative story writer. Write an engaging %s story.\n\n", p.Genre))
	sb.WriteString("Story Details:\n")
	sb.WriteString(fmt.Sprintf("- Characters: %s\n", strings.Join(p.Characters, ", ")))
	sb.WriteString(fmt.Sprintf("- Setting: %s\n", p.Place))
	sb.WriteString(fmt.Sprintf("- Genre: %s\n\n", p.Genre))
	sb.WriteString("Write a complete short story (300-500 words) with a beginning, middle, and end.\n")
	sb.WriteString("Make it exciting and engaging!\n\n")
	sb.WriteString("Story:")

	return sb.String()
}
