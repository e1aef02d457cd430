package news

import "gorm.io/gorm"

// NewsRepository defines methods to interact with newsroom articles.
type NewsRepository interface {
	CreateArticles(articles []Article) error
	GetArticles(language string, matchID uint, limit int) ([]Article, error)
}

// GormNewsRepository implements NewsRepository using GORM.
type GormNewsRepository struct {
	db *gorm.DB
}

// NewNewsRepository creates a new GormNewsRepository.
func NewNewsRepository(db *gorm.DB) *GormNewsRepository {
	return &GormNewsRepository{db: db}
}

func (r *GormNewsRepository) CreateArticles(articles []Article) error {
	if len(articles) == 0 {
		return nil
	}
	return r.db.Create(&articles).Error
}

// GetArticles lists newest articles first, optionally filtered by language
// and match. A limit of 0 means no limit.
func (r *GormNewsRepository) GetArticles(language string, matchID uint, limit int) ([]Article, error) {
	query := r.db.Order("created_at desc")
	if language != "" {
		query = query.Where("language = ?", language)
	}
	if matchID != 0 {
		query = query.Where("match_id = ?", matchID)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var articles []Article
	if err := query.Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}
