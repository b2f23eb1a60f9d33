package dao

import (
	"amora/amora/sources/psql/models"
	"amora/amora/types"
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UsageDAO struct {
	DB *gorm.DB
}

func NewUsageDAO(db *gorm.DB) *UsageDAO {
	return &UsageDAO{DB: db}
}

func today() string {
	return time.Now().UTC().Format("2006-01-02")
}

func counterColumn(kind types.UsageKind) (string, error) {
	switch kind {
	case types.UsageSwipe:
		return "swipes_today", nil
	case types.UsageMessage:
		return "messages_today", nil
	default:
		return "", fmt.Errorf("unknown usage kind %q", kind)
	}
}

// ensureRow lazily creates today's counter row. The unique (user, day)
// index makes concurrent creates collapse into one row.
func (dao *UsageDAO) ensureRow(ctx context.Context, db *gorm.DB, userID int, day string) error {
	row := models.UsageLimit{UserID: userID, Day: day}
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "day"}},
			DoNothing: true,
		}).
		Create(&row).Error
}

// CheckAndConsume increments the counter for kind by one, but only while
// it is still under ceiling. The guard and the increment are a single
// conditional UPDATE, so concurrent calls for the same user can never
// jointly push the counter past the ceiling. Returns false without any
// mutation when the quota is exhausted.
func (dao *UsageDAO) CheckAndConsume(ctx context.Context, userID int, kind types.UsageKind, ceiling int) (bool, error) {
	return dao.CheckAndConsumeIn(ctx, dao.DB, userID, kind, ceiling)
}

// CheckAndConsumeIn is CheckAndConsume running on a caller-supplied
// handle, typically a transaction.
func (dao *UsageDAO) CheckAndConsumeIn(ctx context.Context, db *gorm.DB, userID int, kind types.UsageKind, ceiling int) (bool, error) {
	column, err := counterColumn(kind)
	if err != nil {
		return false, err
	}
	day := today()
	if err := dao.ensureRow(ctx, db, userID, day); err != nil {
		return false, err
	}

	res := db.WithContext(ctx).
		Model(&models.UsageLimit{}).
		Where("user_id = ? AND day = ? AND "+column+" < ?", userID, day, ceiling).
		UpdateColumn(column, gorm.Expr(column+" + 1"))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// Peek returns today's counters without consuming anything.
func (dao *UsageDAO) Peek(ctx context.Context, userID int) (*models.UsageLimit, error) {
	day := today()
	if err := dao.ensureRow(ctx, dao.DB, userID, day); err != nil {
		return nil, err
	}
	var row models.UsageLimit
	err := dao.DB.WithContext(ctx).
		Where("user_id = ? AND day = ?", userID, day).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}
