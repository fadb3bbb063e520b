package repository

import (
	"context"
	"errors"

	"golang.org/x/oauth2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/calendar-booking/internal/gauth"
	"github.com/BruksfildServices01/calendar-booking/internal/models"
)

// TokenGormRepository is a gauth.TokenStore backed by the oauth_tokens table.
type TokenGormRepository struct {
	db         *gorm.DB
	calendarID string
}

var _ gauth.TokenStore = (*TokenGormRepository)(nil)

func NewTokenGormRepository(db *gorm.DB, calendarID string) *TokenGormRepository {
	return &TokenGormRepository{db: db, calendarID: calendarID}
}

func (r *TokenGormRepository) Load(ctx context.Context) (*oauth2.Token, error) {
	var row models.OAuthToken
	err := r.db.WithContext(ctx).
		Where("calendar_id = ?", r.calendarID).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, gauth.ErrNoToken
	}
	if err != nil {
		return nil, err
	}

	return &oauth2.Token{
		AccessToken:  row.AccessToken,
		RefreshToken: row.RefreshToken,
		TokenType:    row.TokenType,
		Expiry:       row.Expiry,
	}, nil
}

// Save upserts on calendar_id. An empty refresh token keeps the stored one,
// since refresh responses usually omit it.
func (r *TokenGormRepository) Save(ctx context.Context, tok *oauth2.Token) error {
	row := models.OAuthToken{
		CalendarID:   r.calendarID,
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		TokenType:    tok.TokenType,
		Expiry:       tok.Expiry,
	}

	update := []string{"access_token", "token_type", "expiry", "updated_at"}
	if tok.RefreshToken != "" {
		update = append(update, "refresh_token")
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "calendar_id"}},
			DoUpdates: clause.AssignmentColumns(update),
		}).
		Create(&row).Error
}
