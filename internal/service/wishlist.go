package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ExeHalah/PlayerInfo/internal/domain"
	"go.uber.org/zap"
)

// WishlistClient queries the wishlist API.
type WishlistClient struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

func NewWishlistClient(httpClient *http.Client, baseURL string, logger *zap.Logger) *WishlistClient {
	return &WishlistClient{
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     logger,
	}
}

// Fetch returns the player's wishlist. Callers treat any error as "no
// wishlist"; the profile request still succeeds without it.
func (c *WishlistClient) Fetch(ctx context.Context, uid, region string) (*domain.WishlistRecord, error) {
	params := url.Values{}
	params.Set("uid", uid)
	params.Set("region", region)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("wishlist request rejected: %d", resp.StatusCode)
	}

	var record domain.WishlistRecord
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		return nil, err
	}
	return &record, nil
}
