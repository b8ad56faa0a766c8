package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"esale/internal/models/db_models"
)

type ProfileRepositoryInterface interface {
	CreateProfile(ctx context.Context, profile *db_models.Profile) error
	GetProfileByName(ctx context.Context, name string) (*db_models.Profile, error)
	GetAllProfiles(ctx context.Context) ([]db_models.Profile, error)
	UpdateProfile(ctx context.Context, profile *db_models.Profile) error
	DeleteProfile(ctx context.Context, profileID uuid.UUID) error

	CreateContact(ctx context.Context, contact *db_models.Contact) error
	GetContactByID(ctx context.Context, contactID uuid.UUID) (*db_models.Contact, error)
	GetAllContacts(ctx context.Context) ([]db_models.Contact, error)
	UpdateContact(ctx context.Context, contact *db_models.Contact) error
	DeleteContact(ctx context.Context, contactID uuid.UUID) error
}

func NewProfileRepository(db *gorm.DB) ProfileRepositoryInterface {
	return &ProfileRepository{db: db}
}

type ProfileRepository struct {
	db *gorm.DB
}

func (r *ProfileRepository) CreateProfile(ctx context.Context, profile *db_models.Profile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

// GetProfileByName looks profiles up case-insensitively; names are unique.
func (r *ProfileRepository) GetProfileByName(ctx context.Context, name string) (*db_models.Profile, error) {
	var profile db_models.Profile
	err := r.db.WithContext(ctx).
		Where("LOWER(name) = ?", strings.ToLower(name)).
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepository) GetAllProfiles(ctx context.Context) ([]db_models.Profile, error) {
	var profiles []db_models.Profile
	if err := r.db.WithContext(ctx).Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *ProfileRepository) UpdateProfile(ctx context.Context, profile *db_models.Profile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

func (r *ProfileRepository) DeleteProfile(ctx context.Context, profileID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.Profile{}, "id = ?", profileID).Error
}

func (r *ProfileRepository) CreateContact(ctx context.Context, contact *db_models.Contact) error {
	return r.db.WithContext(ctx).Create(contact).Error
}

func (r *ProfileRepository) GetContactByID(ctx context.Context, contactID uuid.UUID) (*db_models.Contact, error) {
	var contact db_models.Contact
	err := r.db.WithContext(ctx).Where("id = ?", contactID).First(&contact).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &contact, nil
}

func (r *ProfileRepository) GetAllContacts(ctx context.Context) ([]db_models.Contact, error) {
	var contacts []db_models.Contact
	if err := r.db.WithContext(ctx).Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}

func (r *ProfileRepository) UpdateContact(ctx context.Context, contact *db_models.Contact) error {
	return r.db.WithContext(ctx).Save(contact).Error
}

func (r *ProfileRepository) DeleteContact(ctx context.Context, contactID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.Contact{}, "id = ?", contactID).Error
}
