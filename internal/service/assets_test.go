package service

import (
	"reflect"
	"testing"

	"github.com/ExeHalah/PlayerInfo/internal/domain"
)

func TestResolveEmptyInputYieldsSentinel(t *testing.T) {
	r := NewAssetResolver("https://img.example.com/output")

	got := r.Resolve(nil)
	if !reflect.DeepEqual(got, []string{domain.NotFound}) {
		t.Fatalf("expected sentinel for empty input, got %v", got)
	}
}

func TestResolveFiltersMalformedIDs(t *testing.T) {
	r := NewAssetResolver("https://img.example.com/output")

	cases := []string{
		"Not Found",
		"12345678",     // too short
		"123456789012", // too long
		"12345678x",    // non-digit
		"",
	}
	for _, id := range cases {
		got := r.Resolve([]string{id})
		if !reflect.DeepEqual(got, []string{domain.NotFound}) {
			t.Fatalf("expected sentinel for %q, got %v", id, got)
		}
	}
}

func TestResolveBuildsURLsPreservingOrder(t *testing.T) {
	r := NewAssetResolver("https://img.example.com/output/")

	got := r.Resolve([]string{"907102816", "bogus", "12345678901"})
	want := []string{
		"https://img.example.com/output/907102816.png",
		"https://img.example.com/output/12345678901.png",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestResolveBoundaryLengths(t *testing.T) {
	r := NewAssetResolver("https://img.example.com/output")

	if got := r.Resolve([]string{"123456789"}); got[0] != "https://img.example.com/output/123456789.png" {
		t.Fatalf("expected 9-digit id to resolve, got %v", got)
	}
	if got := r.Resolve([]string{"12345678901"}); got[0] != "https://img.example.com/output/12345678901.png" {
		t.Fatalf("expected 11-digit id to resolve, got %v", got)
	}
}
