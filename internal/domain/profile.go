package domain

// PlayerProfile is the consolidated document returned to the client.
// Every scalar is textual by contract; WishList stays structured.
type PlayerProfile struct {
	AccountInfo ProfileSections `json:"AccountInfo"`
}

type ProfileSections struct {
	AccountBasicInfo AccountBasicSection    `json:"AccountBasicInfo"`
	AccountOverview  AccountOverviewSection `json:"AccountOverview"`
	GuildInfo        GuildSection           `json:"GuildInfo"`
	CaptainBasicInfo CaptainSection         `json:"CaptainBasicInfo"`
	PetInfo          PetSection             `json:"PetInfo"`
	SocialInfo       SocialSection          `json:"SocialInfo"`
	CreditScoreInfo  CreditSection          `json:"CreditScoreInfo"`
	WishList         []WishEntry            `json:"WishList"`
}

type AccountBasicSection struct {
	AccountType          string `json:"AccountType"`
	AccountName          string `json:"AccountName"`
	AccountUID           string `json:"AccountUid"`
	AccountRegion        string `json:"AccountRegion"`
	AccountLevel         string `json:"AccountLevel"`
	AccountEXP           string `json:"AccountEXP"`
	AccountBannerID      string `json:"AccountBannerId"`
	AccountAvatarID      string `json:"AccountAvatarId"`
	AccountBannerIDImage string `json:"AccountBannerIdImage"`
	AccountAvatarIDImage string `json:"AccountAvatarIdImage"`
	BrRankPoint          string `json:"BrRankPoint"`
	HasElitePass         string `json:"hasElitePass"`
	Role                 string `json:"Role"`
	AccountBPBadges      string `json:"AccountBPBadges"`
	AccountBPID          string `json:"AccountBPID"`
	AccountSeasonID      string `json:"AccountSeasonId"`
	AccountLikes         string `json:"AccountLikes"`
	AccountLastLogin     string `json:"AccountLastLogin"`
	CsRankPoint          string `json:"CsRankPoint"`
	EquippedWeapon       string `json:"EquippedWeapon"`
	EquippedWeaponImage  string `json:"EquippedWeaponImage"`
	BrMaxRank            string `json:"BrMaxRank"`
	CsMaxRank            string `json:"CsMaxRank"`
	AccountCreateTime    string `json:"AccountCreateTime"`
	Title                string `json:"Title"`
	TitleImage           string `json:"TitleImage"`
	ReleaseVersion       string `json:"ReleaseVersion"`
	ShowBrRank           string `json:"ShowBrRank"`
	ShowCsRank           string `json:"ShowCsRank"`
}

type AccountOverviewSection struct {
	EquippedOutfit      string `json:"EquippedOutfit"`
	EquippedOutfitImage string `json:"EquippedOutfitImage"`
	EquippedSkills      string `json:"EquippedSkills"`
	EquippedSkillsImage string `json:"EquippedSkillsImage"`
}

type GuildSection struct {
	GuildID       string `json:"GuildID"`
	GuildName     string `json:"GuildName"`
	GuildOwner    string `json:"GuildOwner"`
	GuildLevel    string `json:"GuildLevel"`
	GuildCapacity string `json:"GuildCapacity"`
	GuildMember   string `json:"GuildMember"`
}

type CaptainSection struct {
	AccountID           string `json:"accountId"`
	AccountType         string `json:"accountType"`
	Nickname            string `json:"nickname"`
	Region              string `json:"region"`
	Level               string `json:"level"`
	Exp                 string `json:"exp"`
	BannerID            string `json:"bannerId"`
	HeadPic             string `json:"headPic"`
	BannerIDImage       string `json:"bannerIdImage"`
	HeadPicImage        string `json:"headPicImage"`
	LastLoginAt         string `json:"lastLoginAt"`
	Rank                string `json:"rank"`
	RankingPoints       string `json:"rankingPoints"`
	EquippedWeapon      string `json:"EquippedWeapon"`
	EquippedWeaponImage string `json:"EquippedWeaponImage"`
	MaxRank             string `json:"maxRank"`
	CsMaxRank           string `json:"csMaxRank"`
	CreateAt            string `json:"createAt"`
	Title               string `json:"title"`
	TitleImage          string `json:"titleImage"`
	ReleaseVersion      string `json:"releaseVersion"`
	ShowBrRank          string `json:"showBrRank"`
	ShowCsRank          string `json:"showCsRank"`
}

type PetSection struct {
	ID                   string `json:"id"`
	IDImage              string `json:"idImage"`
	Name                 string `json:"name"`
	Level                string `json:"level"`
	Exp                  string `json:"exp"`
	IsSelected           string `json:"isSelected"`
	SkinID               string `json:"skinId"`
	SkinIDImage          string `json:"skinIdImage"`
	SelectedSkillID      string `json:"selectedSkillId"`
	SelectedSkillIDImage string `json:"selectedSkillIdImage"`
}

type SocialSection struct {
	AccountLanguage   string `json:"AccountLanguage"`
	AccountSignature  string `json:"AccountSignature"`
	AccountPreferMode string `json:"AccountPreferMode"`
}

type CreditSection struct {
	CreditScore              string `json:"Creditscore"`
	RewardState              string `json:"rewardState"`
	PeriodicSummaryStartTime string `json:"periodicSummaryStartTime"`
	PeriodicSummaryEndTime   string `json:"periodicSummaryEndTime"`
}

type WishEntry struct {
	ItemID      string `json:"itemId"`
	ReleaseTime string `json:"releaseTime"`
	ItemIDImage string `json:"itemIdImage"`
}
