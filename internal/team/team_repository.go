package team

import (
	"errors"

	"github.com/anl2026/anl-api/internal/player"
	"gorm.io/gorm"
)

// TeamRepository defines methods to interact with federation data.
type TeamRepository interface {
	CreateTeamWithSquad(team *Team) error
	GetTeamByID(id uint) (*Team, error)
	GetTeamWithPlayers(id uint) (*Team, error)
	GetTeams(limit int) ([]Team, error)
	CountTeams() (int64, error)
	HasTeamForOwner(ownerID uint) (bool, error)
	ReplaceSquad(teamID uint, players []player.Player, averageRating float64) error
	DeleteTeam(id uint) error
}

// GormTeamRepository implements TeamRepository using GORM.
type GormTeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new GormTeamRepository.
func NewTeamRepository(db *gorm.DB) *GormTeamRepository {
	return &GormTeamRepository{db: db}
}

// CreateTeamWithSquad persists the team and its players in one transaction.
func (r *GormTeamRepository) CreateTeamWithSquad(team *Team) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(team).Error
	})
}

func (r *GormTeamRepository) GetTeamByID(id uint) (*Team, error) {
	var team Team
	if err := r.db.First(&team, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &team, nil
}

// GetTeamWithPlayers loads a team with its squad in stable squad order.
func (r *GormTeamRepository) GetTeamWithPlayers(id uint) (*Team, error) {
	var team Team
	err := r.db.Preload("Players", func(db *gorm.DB) *gorm.DB {
		return db.Order("squad_index asc")
	}).First(&team, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &team, nil
}

// GetTeams lists teams in registration order. A limit of 0 means no limit.
func (r *GormTeamRepository) GetTeams(limit int) ([]Team, error) {
	var teams []Team
	query := r.db.Order("created_at asc")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

func (r *GormTeamRepository) CountTeams() (int64, error) {
	var total int64
	err := r.db.Model(&Team{}).Count(&total).Error
	return total, err
}

func (r *GormTeamRepository) HasTeamForOwner(ownerID uint) (bool, error) {
	var total int64
	err := r.db.Model(&Team{}).Where("owner_id = ?", ownerID).Count(&total).Error
	return total > 0, err
}

// ReplaceSquad swaps a team's entire squad and recomputes its rating in one
// transaction. Used to rebuild teams that somehow lost their players.
func (r *GormTeamRepository) ReplaceSquad(teamID uint, players []player.Player, averageRating float64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("team_id = ?", teamID).Delete(&player.Player{}).Error; err != nil {
			return err
		}
		for i := range players {
			players[i].TeamID = teamID
		}
		if len(players) > 0 {
			if err := tx.Create(&players).Error; err != nil {
				return err
			}
		}
		return tx.Model(&Team{}).Where("id = ?", teamID).Update("average_rating", averageRating).Error
	})
}

// DeleteTeam soft-deletes a team and its players.
func (r *GormTeamRepository) DeleteTeam(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("team_id = ?", id).Delete(&player.Player{}).Error; err != nil {
			return err
		}
		return tx.Delete(&Team{}, id).Error
	})
}
