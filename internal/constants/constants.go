package constants

import "time"

// Regions is the allow-list of player-info shards, in fallback search order.
var Regions = []string{"ind", "sg", "br", "ru", "id", "tw", "us", "vn", "th", "me", "pk", "cis", "bd", "na"}

var APIConfig = struct {
	PlayerInfoBaseURL string
	WishlistBaseURL   string
	CharacterBaseURL  string
	AssetBaseURL      string
	UpstreamTimeout   time.Duration
}{
	PlayerInfoBaseURL: "https://ariiflexlabs-playerinfo.onrender.com/ff_info",
	WishlistBaseURL:   "https://ariflex-labs-wishlist-api.vercel.app/items_info",
	CharacterBaseURL:  "https://character-roan.vercel.app/Character_name",
	AssetBaseURL:      "https://www.craftland.freefireinfo.site/output",
	UpstreamTimeout:   10 * time.Second,
}

var CacheTTL = struct {
	CharacterInfo time.Duration
}{
	CharacterInfo: 12 * time.Hour, // character names/portraits are static per id
}

var RedisConfig = struct {
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}{
	DialTimeout:  5 * time.Second,
	ReadTimeout:  3 * time.Second,
	WriteTimeout: 3 * time.Second,
}

var ServerConfig = struct {
	ShutdownTimeout time.Duration
}{
	ShutdownTimeout: 10 * time.Second,
}

// Messages are the client-facing error bodies. The exact wording is part
// of the API contract.
var Messages = struct {
	InvalidAPIKey      string
	MissingUID         string
	InvalidRegion      string
	InvalidUIDOrRegion string
}{
	InvalidAPIKey:      "Invalid API key",
	MissingUID:         "Please provide UID",
	InvalidRegion:      "Invalid Region. Please enter a valid region.",
	InvalidUIDOrRegion: "Invalid UID or Region. Please check and try again.",
}
