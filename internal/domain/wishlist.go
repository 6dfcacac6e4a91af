package domain

// WishlistRecord is the raw decoded body from the wishlist API. The whole
// record is best-effort: a missing or broken wishlist never fails the
// profile request.
type WishlistRecord struct {
	Items []WishlistItem `json:"items"`
}

type WishlistItem struct {
	ItemID      Flex `json:"itemId"`
	ReleaseTime Flex `json:"releaseTime"`
}
