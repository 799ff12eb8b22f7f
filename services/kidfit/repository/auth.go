package repository

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"kidfit/domain"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type authRepository struct {
	db       *gorm.DB
	geocoder domain.Geocoder
}

func NewAuthRepository(database *gorm.DB, geocoder domain.Geocoder) domain.AuthRepo {
	return &authRepository{
		db:       database,
		geocoder: geocoder,
	}
}

func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("could not hash password: %v", err)
	}
	return string(hashed), nil
}

// isUniqueViolation maps the postgres duplicate-key error so handlers
// can answer "email already registered" instead of a raw 500.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (ar *authRepository) emailTaken(ctx context.Context, email string) (bool, error) {
	var count int64
	err := ar.db.WithContext(ctx).Model(&domain.User{}).
		Where("email = ? AND deleted_at IS NULL", strings.ToLower(email)).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (ar *authRepository) RegisterParent(ctx context.Context, req *domain.RegisterParentRequest) (*domain.User, error) {
	taken, err := ar.emailTaken(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("email already registered")
	}

	hashed, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := domain.User{
		Email:    strings.ToLower(req.Email),
		Password: hashed,
		Name:     req.Name,
		Phone:    req.Phone,
		Role:     domain.RoleParent,
	}

	tx := ar.db.WithContext(ctx).Begin()
	if err := tx.Create(&user).Error; err != nil {
		tx.Rollback()
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("email already registered")
		}
		return nil, err
	}

	parent := domain.Parent{
		UserID:  user.UserID,
		Address: req.Address,
	}
	if err := tx.Create(&parent).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (ar *authRepository) RegisterCenter(ctx context.Context, req *domain.RegisterCenterRequest) (*domain.Center, error) {
	taken, err := ar.emailTaken(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("email already registered")
	}

	hashed, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	// Geocode before the transaction; registration proceeds without
	// coordinates when the address cannot be resolved.
	var latitude, longitude *float64
	coords, err := ar.geocoder.Geocode(ctx, req.Address)
	if err == nil && coords != nil {
		latitude = &coords.Latitude
		longitude = &coords.Longitude
	}

	user := domain.User{
		Email:    strings.ToLower(req.Email),
		Password: hashed,
		Name:     req.Name,
		Phone:    req.Phone,
		Role:     domain.RoleCenter,
	}

	tx := ar.db.WithContext(ctx).Begin()
	if err := tx.Create(&user).Error; err != nil {
		tx.Rollback()
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("email already registered")
		}
		return nil, err
	}

	inviteCode, err := ar.generateInviteCode(tx)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	center := domain.Center{
		UserID:      user.UserID,
		CenterName:  req.CenterName,
		Description: req.Description,
		Address:     req.Address,
		Latitude:    latitude,
		Longitude:   longitude,
		InviteCode:  inviteCode,
	}
	if err := tx.Create(&center).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	center.User = user
	return &center, nil
}

func (ar *authRepository) RegisterTeacher(ctx context.Context, req *domain.RegisterTeacherRequest) (*domain.Teacher, error) {
	taken, err := ar.emailTaken(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("email already registered")
	}

	var center domain.Center
	err = ar.db.WithContext(ctx).
		Where("invite_code = ? AND deleted_at IS NULL", strings.ToUpper(req.InviteCode)).
		First(&center).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("invalid invite code")
		}
		return nil, err
	}

	hashed, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := domain.User{
		Email:    strings.ToLower(req.Email),
		Password: hashed,
		Name:     req.Name,
		Phone:    req.Phone,
		Role:     domain.RoleTeacher,
	}

	tx := ar.db.WithContext(ctx).Begin()
	if err := tx.Create(&user).Error; err != nil {
		tx.Rollback()
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("email already registered")
		}
		return nil, err
	}

	teacher := domain.Teacher{
		UserID:         user.UserID,
		CenterID:       center.CenterID,
		Specialization: req.Specialization,
		Bio:            req.Bio,
		HireDate:       time.Now(),
	}
	if err := tx.Create(&teacher).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	teacher.User = user
	teacher.Center = center
	return &teacher, nil
}

func (ar *authRepository) Login(ctx context.Context, req *domain.LoginRequest) (*domain.User, error) {
	var user domain.User
	err := ar.db.WithContext(ctx).
		Where("email = ? AND deleted_at IS NULL", strings.ToLower(req.Email)).
		First(&user).Error
	if err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	return &user, nil
}

// generateInviteCode draws 8-char uppercase hex codes until one is
// unused. Collisions on 4 random bytes are rare; the loop is bounded
// anyway so a broken store cannot spin it forever.
func (ar *authRepository) generateInviteCode(tx *gorm.DB) (string, error) {
	for attempt := 0; attempt < 10; attempt++ {
		buf := make([]byte, 4)
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("failed to generate invite code: %w", err)
		}
		code := strings.ToUpper(hex.EncodeToString(buf))

		var count int64
		if err := tx.Model(&domain.Center{}).Where("invite_code = ?", code).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return code, nil
		}
	}
	return "", fmt.Errorf("failed to generate a unique invite code")
}
