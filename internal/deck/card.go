package deck

// Difficulty is an author-assigned difficulty tag on a card.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Card is a single prompt/answer pair owned by a library.
// Cards are immutable for the duration of a review session.
type Card struct {
	ID         string     `yaml:"id"`
	Front      string     `yaml:"front"`
	Back       string     `yaml:"back"`
	Domain     string     `yaml:"domain,omitempty"`
	Difficulty Difficulty `yaml:"difficulty,omitempty"`
}

// Deck is a named library of cards as authored in a deck file.
type Deck struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Cards []Card `yaml:"cards"`
}
