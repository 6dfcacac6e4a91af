package service

import (
	"fmt"
	"strings"

	"github.com/ExeHalah/PlayerInfo/internal/domain"
)

// AssetResolver maps raw item ids onto CDN image URLs.
type AssetResolver struct {
	baseURL string
}

func NewAssetResolver(baseURL string) *AssetResolver {
	return &AssetResolver{baseURL: strings.TrimRight(baseURL, "/")}
}

// Resolve keeps only ids that look like real item ids (9 to 11 decimal
// digits) and builds an image URL per survivor, preserving input order.
// Anything else collapses to the Not Found sentinel; malformed input
// never errors.
func (r *AssetResolver) Resolve(ids []string) []string {
	if len(ids) == 0 {
		return []string{domain.NotFound}
	}

	urls := make([]string, 0, len(ids))
	for _, id := range ids {
		if isItemID(id) {
			urls = append(urls, fmt.Sprintf("%s/%s.png", r.baseURL, id))
		}
	}

	if len(urls) == 0 {
		return []string{domain.NotFound}
	}
	return urls
}

func isItemID(id string) bool {
	if len(id) < 9 || len(id) > 11 {
		return false
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
