package domain

// PlayerRecord is the raw decoded body from one player-info shard query.
// Sections the shard does not know about simply stay zero-valued; every
// scalar defaults to the Not Found sentinel at assembly time.
type PlayerRecord struct {
	AccountInfo        AccountInfo        `json:"AccountInfo"`
	AccountProfileInfo AccountProfileInfo `json:"AccountProfileInfo"`
	CaptainBasicInfo   CaptainBasicInfo   `json:"captainBasicInfo"`
	GuildInfo          GuildInfo          `json:"GuildInfo"`
	SocialInfo         SocialInfo         `json:"socialinfo"`
	PetInfo            PetInfo            `json:"petInfo"`
	CreditScoreInfo    CreditScoreInfo    `json:"creditScoreInfo"`
}

// Valid reports whether the record carries real account data. Shards
// answer queries for unknown uids with empty bodies or an explicit
// "Not Found" name; both count as a miss.
func (r *PlayerRecord) Valid() bool {
	if r == nil {
		return false
	}
	name := r.AccountInfo.AccountName
	return name.Present() && name.String() != NotFound
}

type AccountInfo struct {
	AccountType       Flex     `json:"AccountType"`
	AccountName       Flex     `json:"AccountName"`
	AccountRegion     Flex     `json:"AccountRegion"`
	AccountLevel      Flex     `json:"AccountLevel"`
	AccountEXP        Flex     `json:"AccountEXP"`
	AccountBannerID   Flex     `json:"AccountBannerId"`
	AccountAvatarID   Flex     `json:"AccountAvatarId"`
	BrRankPoint       Flex     `json:"BrRankPoint"`
	HasElitePass      Flex     `json:"hasElitePass"`
	Role              Flex     `json:"Role"`
	AccountBPBadges   Flex     `json:"AccountBPBadges"`
	AccountBPID       Flex     `json:"AccountBPID"`
	AccountSeasonID   Flex     `json:"AccountSeasonId"`
	AccountLikes      Flex     `json:"AccountLikes"`
	AccountLastLogin  Flex     `json:"AccountLastLogin"`
	CsRankPoint       Flex     `json:"CsRankPoint"`
	EquippedWeapon    FlexList `json:"EquippedWeapon"`
	BrMaxRank         Flex     `json:"BrMaxRank"`
	CsMaxRank         Flex     `json:"CsMaxRank"`
	AccountCreateTime Flex     `json:"AccountCreateTime"`
	Title             Flex     `json:"Title"`
	ReleaseVersion    Flex     `json:"ReleaseVersion"`
	ShowBrRank        Flex     `json:"ShowBrRank"`
	ShowCsRank        Flex     `json:"ShowCsRank"`
}

type AccountProfileInfo struct {
	EquippedOutfit FlexList `json:"EquippedOutfit"`
	EquippedSkills FlexList `json:"EquippedSkills"`
}

// CaptainBasicInfo is the server-authoritative "captain" profile used in
// guild/clan context. Field casing follows the upstream schema.
type CaptainBasicInfo struct {
	AccountID      Flex     `json:"accountId"`
	AccountType    Flex     `json:"accountType"`
	Nickname       Flex     `json:"nickname"`
	Region         Flex     `json:"region"`
	Level          Flex     `json:"level"`
	Exp            Flex     `json:"exp"`
	BannerID       Flex     `json:"bannerId"`
	HeadPic        Flex     `json:"headPic"`
	LastLoginAt    Flex     `json:"lastLoginAt"`
	Rank           Flex     `json:"rank"`
	RankingPoints  Flex     `json:"rankingPoints"`
	EquippedWeapon FlexList `json:"EquippedWeapon"`
	MaxRank        Flex     `json:"maxRank"`
	CsMaxRank      Flex     `json:"csMaxRank"`
	CreateAt       Flex     `json:"createAt"`
	Title          Flex     `json:"title"`
	ReleaseVersion Flex     `json:"releaseVersion"`
	ShowBrRank     Flex     `json:"showBrRank"`
	ShowCsRank     Flex     `json:"showCsRank"`
}

type GuildInfo struct {
	GuildID       Flex `json:"GuildID"`
	GuildName     Flex `json:"GuildName"`
	GuildOwner    Flex `json:"GuildOwner"`
	GuildLevel    Flex `json:"GuildLevel"`
	GuildCapacity Flex `json:"GuildCapacity"`
	GuildMember   Flex `json:"GuildMember"`
}

type SocialInfo struct {
	AccountLanguage   Flex `json:"AccountLanguage"`
	AccountSignature  Flex `json:"AccountSignature"`
	AccountPreferMode Flex `json:"AccountPreferMode"`
}

type PetInfo struct {
	ID              Flex `json:"id"`
	Name            Flex `json:"name"`
	Level           Flex `json:"level"`
	Exp             Flex `json:"exp"`
	IsSelected      Flex `json:"isSelected"`
	SkinID          Flex `json:"skinId"`
	SelectedSkillID Flex `json:"selectedSkillId"`
}

type CreditScoreInfo struct {
	CreditScore              Flex `json:"creditScore"`
	RewardState              Flex `json:"rewardState"`
	PeriodicSummaryStartTime Flex `json:"periodicSummaryStartTime"`
	PeriodicSummaryEndTime   Flex `json:"periodicSummaryEndTime"`
}
