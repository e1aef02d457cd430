package news

import "gorm.io/gorm"

// Supported article languages. French copy is machine-prefixed until real
// translations land.
const (
	LanguageEnglish = "en"
	LanguageFrench  = "fr"
)

// Article tags group the newsroom feed.
const (
	TagMatch      = "Match"
	TagPlayer     = "Player"
	TagFederation = "Federation"
)

// Article is one generated newsroom story tied to a completed match.
type Article struct {
	gorm.Model
	MatchID    uint   `json:"matchId" gorm:"index;not null"`
	MatchRound string `json:"matchRound"`
	Team1ID    uint   `json:"team1Id" gorm:"index"`
	Team2ID    uint   `json:"team2Id" gorm:"index"`
	Team1Name  string `json:"team1Name"`
	Team2Name  string `json:"team2Name"`
	Tag        string `json:"tag" gorm:"index"`
	Language   string `json:"language" gorm:"index"`
	Title      string `json:"title"`
	Summary    string `json:"summary"`
	Body       string `json:"body" gorm:"type:text"`
}
