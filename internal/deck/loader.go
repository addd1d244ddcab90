package deck

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// deckFile mirrors the on-disk YAML layout with validation tags.
type deckFile struct {
	ID    string     `yaml:"id"`
	Name  string     `yaml:"name" validate:"required"`
	Cards []cardFile `yaml:"cards" validate:"required,min=1,dive"`
}

type cardFile struct {
	ID         string `yaml:"id"`
	Front      string `yaml:"front" validate:"required"`
	Back       string `yaml:"back" validate:"required"`
	Domain     string `yaml:"domain"`
	Difficulty string `yaml:"difficulty" validate:"omitempty,oneof=easy medium hard"`
}

var validate = validator.New()

// LoadFile reads and validates a YAML deck file.
// Cards without an explicit id are assigned a generated one, so
// re-importing the same file produces new card identities unless the
// author pins ids.
func LoadFile(path string) (*Deck, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read deck file: %w", err)
	}
	return Parse(raw)
}

// Parse decodes a YAML deck document.
func Parse(raw []byte) (*Deck, error) {
	var df deckFile
	if err := yaml.Unmarshal(raw, &df); err != nil {
		return nil, fmt.Errorf("parse deck: %w", err)
	}

	if err := validate.Struct(&df); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return nil, fmt.Errorf("invalid deck: field %s failed %q", fe.Namespace(), fe.Tag())
		}
		return nil, fmt.Errorf("invalid deck: %w", err)
	}

	d := &Deck{
		ID:    df.ID,
		Name:  df.Name,
		Cards: make([]Card, 0, len(df.Cards)),
	}
	if d.ID == "" {
		d.ID = uuid.NewString()
	}

	seen := make(map[string]bool, len(df.Cards))
	for i, cf := range df.Cards {
		id := cf.ID
		if id == "" {
			id = uuid.NewString()
		}
		if seen[id] {
			return nil, fmt.Errorf("invalid deck: duplicate card id %q (card %d)", id, i+1)
		}
		seen[id] = true

		d.Cards = append(d.Cards, Card{
			ID:         id,
			Front:      cf.Front,
			Back:       cf.Back,
			Domain:     cf.Domain,
			Difficulty: Difficulty(cf.Difficulty),
		})
	}

	return d, nil
}
