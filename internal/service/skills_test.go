package service

import (
	"context"
	"reflect"
	"testing"

	"github.com/ExeHalah/PlayerInfo/internal/domain"
)

type fakeResolver struct {
	known map[string][2]string
	calls []string
}

func (f *fakeResolver) Lookup(_ context.Context, skillID string) (string, string, bool) {
	f.calls = append(f.calls, skillID)
	info, ok := f.known[skillID]
	if !ok {
		return "", "", false
	}
	return info[0], info[1], true
}

func TestFormatEmptyInput(t *testing.T) {
	f := NewSkillFormatter(&fakeResolver{})

	names, images := f.Format(context.Background(), nil)
	if names != domain.NotFound {
		t.Fatalf("expected sentinel for empty input, got %q", names)
	}
	if len(images) != 0 {
		t.Fatalf("expected no images, got %v", images)
	}
}

func TestFormatJoinsResolvedSkillsInOrder(t *testing.T) {
	resolver := &fakeResolver{known: map[string][2]string{
		"1109": {"Alok", "https://cdn.example.com/alok.png"},
		"2205": {"Chrono", "https://cdn.example.com/chrono.png"},
	}}
	f := NewSkillFormatter(resolver)

	names, images := f.Format(context.Background(), []string{"1109", "2205"})
	if names != "Alok, Chrono" {
		t.Fatalf("unexpected display string: %q", names)
	}
	want := []string{"https://cdn.example.com/alok.png", "https://cdn.example.com/chrono.png"}
	if !reflect.DeepEqual(images, want) {
		t.Fatalf("expected %v, got %v", want, images)
	}
}

func TestFormatDropsUnresolvedSkills(t *testing.T) {
	resolver := &fakeResolver{known: map[string][2]string{
		"2205": {"Chrono", "https://cdn.example.com/chrono.png"},
	}}
	f := NewSkillFormatter(resolver)

	names, images := f.Format(context.Background(), []string{"9999", "2205"})
	if names != "Chrono" {
		t.Fatalf("unexpected display string: %q", names)
	}
	if len(images) != 1 {
		t.Fatalf("expected one image, got %v", images)
	}
	if len(resolver.calls) != 2 {
		t.Fatalf("expected both ids to be attempted, got %v", resolver.calls)
	}
}

func TestFormatAllUnresolvedYieldsSentinel(t *testing.T) {
	f := NewSkillFormatter(&fakeResolver{})

	names, images := f.Format(context.Background(), []string{"1", "2"})
	if names != domain.NotFound {
		t.Fatalf("expected sentinel when nothing resolves, got %q", names)
	}
	if len(images) != 0 {
		t.Fatalf("expected no images, got %v", images)
	}
}
