package service

import (
	"context"
	"strings"

	"github.com/ExeHalah/PlayerInfo/internal/domain"
)

// CharacterResolver resolves a raw skill id to a character name and
// portrait image.
type CharacterResolver interface {
	Lookup(ctx context.Context, skillID string) (name, image string, ok bool)
}

// SkillFormatter turns a list of equipped skill ids into a display string
// and a parallel list of portrait URLs.
type SkillFormatter struct {
	characters CharacterResolver
}

func NewSkillFormatter(characters CharacterResolver) *SkillFormatter {
	return &SkillFormatter{characters: characters}
}

// Format resolves each skill id in order. Ids the lookup cannot resolve
// are dropped; an empty input or a fully unresolved list yields the
// Not Found sentinel as the display string.
func (f *SkillFormatter) Format(ctx context.Context, skillIDs []string) (string, []string) {
	if len(skillIDs) == 0 {
		return domain.NotFound, nil
	}

	names := make([]string, 0, len(skillIDs))
	images := make([]string, 0, len(skillIDs))
	for _, id := range skillIDs {
		name, image, ok := f.characters.Lookup(ctx, id)
		if !ok {
			continue
		}
		names = append(names, name)
		images = append(images, image)
	}

	if len(names) == 0 {
		return domain.NotFound, images
	}
	return strings.Join(names, ", "), images
}
