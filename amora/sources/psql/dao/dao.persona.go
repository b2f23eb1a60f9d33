package dao

import (
	"amora/amora/sources/psql/models"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PersonaDAO struct {
	DB *gorm.DB
}

func NewPersonaDAO(db *gorm.DB) *PersonaDAO {
	return &PersonaDAO{DB: db}
}

func (dao *PersonaDAO) GetPersonaByID(ctx context.Context, id uuid.UUID) (*models.Persona, error) {
	var persona models.Persona
	err := dao.DB.WithContext(ctx).First(&persona, "id = ?", id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &persona, nil
}

// ListUnswiped returns personas the user has no chat with yet, i.e. the
// discover feed. Left swipes leave no record, so passed profiles can
// resurface.
func (dao *PersonaDAO) ListUnswiped(ctx context.Context, userID int) ([]models.Persona, error) {
	var personas []models.Persona
	err := dao.DB.WithContext(ctx).
		Where("id NOT IN (?)",
			dao.DB.Model(&models.Chat{}).Select("persona_id").Where("user_id = ?", userID),
		).
		Order("created_at ASC").
		Find(&personas).Error
	if err != nil {
		return nil, err
	}
	return personas, nil
}

// SetPhotoKey points the persona at a stored photo object.
func (dao *PersonaDAO) SetPhotoKey(ctx context.Context, id uuid.UUID, key string) error {
	return dao.DB.WithContext(ctx).
		Model(&models.Persona{}).
		Where("id = ?", id).
		Update("photo_key", key).Error
}

// SeedPersonas inserts seed profiles, skipping names that already exist.
func (dao *PersonaDAO) SeedPersonas(ctx context.Context, personas []models.Persona) error {
	if len(personas) == 0 {
		return nil
	}
	return dao.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		Create(&personas).Error
}
