package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"esale/internal/models/db_models"
	"esale/internal/models/request_models"
	"esale/internal/repositories"
	"esale/pkg/utils"
)

type ProfileServiceInterface interface {
	CreateProfile(ctx context.Context, req *request_models.ProfileRequest) (*db_models.Profile, error)
	GetProfileByName(ctx context.Context, name string) (*db_models.Profile, error)
	ListProfiles(ctx context.Context) ([]db_models.Profile, error)
	UpdateProfile(ctx context.Context, name string, req *request_models.ProfileRequest) (*db_models.Profile, error)
	DeleteProfile(ctx context.Context, name string) error

	CreateContact(ctx context.Context, req *request_models.ContactRequest) (*db_models.Contact, error)
	GetContact(ctx context.Context, contactID uuid.UUID) (*db_models.Contact, error)
	ListContacts(ctx context.Context) ([]db_models.Contact, error)
	UpdateContact(ctx context.Context, contactID uuid.UUID, req *request_models.ContactRequest) (*db_models.Contact, error)
	DeleteContact(ctx context.Context, contactID uuid.UUID) error
}

func NewProfileService(profileRepo repositories.ProfileRepositoryInterface) ProfileServiceInterface {
	return &profileService{profileRepo: profileRepo}
}

type profileService struct {
	profileRepo repositories.ProfileRepositoryInterface
}

func (s *profileService) CreateProfile(ctx context.Context, req *request_models.ProfileRequest) (*db_models.Profile, error) {
	existing, err := s.profileRepo.GetProfileByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("profile %q already exists: %w", req.Name, utils.ErrConflict)
	}

	profile := &db_models.Profile{
		Name:             req.Name,
		JobTitle:         req.JobTitle,
		JobDescription:   req.JobDescription,
		Title:            req.Title,
		Description:      req.Description,
		ProfilePicture:   req.ProfilePicture,
		SecondaryPicture: req.SecondaryPicture,
	}
	if err := s.profileRepo.CreateProfile(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *profileService) GetProfileByName(ctx context.Context, name string) (*db_models.Profile, error) {
	profile, err := s.profileRepo.GetProfileByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, fmt.Errorf("profile %q: %w", name, utils.ErrNotFound)
	}
	return profile, nil
}

func (s *profileService) ListProfiles(ctx context.Context) ([]db_models.Profile, error) {
	return s.profileRepo.GetAllProfiles(ctx)
}

func (s *profileService) UpdateProfile(ctx context.Context, name string, req *request_models.ProfileRequest) (*db_models.Profile, error) {
	profile, err := s.GetProfileByName(ctx, name)
	if err != nil {
		return nil, err
	}

	profile.Name = req.Name
	profile.JobTitle = req.JobTitle
	profile.JobDescription = req.JobDescription
	profile.Title = req.Title
	profile.Description = req.Description
	profile.ProfilePicture = req.ProfilePicture
	profile.SecondaryPicture = req.SecondaryPicture

	if err := s.profileRepo.UpdateProfile(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *profileService) DeleteProfile(ctx context.Context, name string) error {
	profile, err := s.GetProfileByName(ctx, name)
	if err != nil {
		return err
	}
	return s.profileRepo.DeleteProfile(ctx, profile.ID)
}

func (s *profileService) CreateContact(ctx context.Context, req *request_models.ContactRequest) (*db_models.Contact, error) {
	contact := &db_models.Contact{
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	}
	if err := s.profileRepo.CreateContact(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

func (s *profileService) GetContact(ctx context.Context, contactID uuid.UUID) (*db_models.Contact, error) {
	contact, err := s.profileRepo.GetContactByID(ctx, contactID)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, fmt.Errorf("contact %s: %w", contactID, utils.ErrNotFound)
	}
	return contact, nil
}

func (s *profileService) ListContacts(ctx context.Context) ([]db_models.Contact, error) {
	return s.profileRepo.GetAllContacts(ctx)
}

func (s *profileService) UpdateContact(ctx context.Context, contactID uuid.UUID, req *request_models.ContactRequest) (*db_models.Contact, error) {
	contact, err := s.GetContact(ctx, contactID)
	if err != nil {
		return nil, err
	}

	contact.Email = req.Email
	contact.Phone = req.Phone
	contact.Address = req.Address

	if err := s.profileRepo.UpdateContact(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

func (s *profileService) DeleteContact(ctx context.Context, contactID uuid.UUID) error {
	if _, err := s.GetContact(ctx, contactID); err != nil {
		return err
	}
	return s.profileRepo.DeleteContact(ctx, contactID)
}
