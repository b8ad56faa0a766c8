package response_models

import (
	"github.com/google/uuid"

	"esale/internal/models/db_models"
)

type ProfileResponse struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	JobTitle         string    `json:"job_title,omitempty"`
	JobDescription   string    `json:"job_description,omitempty"`
	Title            string    `json:"title,omitempty"`
	Description      string    `json:"description,omitempty"`
	ProfilePicture   string    `json:"profile_picture,omitempty"`
	SecondaryPicture string    `json:"secondary_picture,omitempty"`
}

type ContactResponse struct {
	ID      uuid.UUID `json:"id"`
	Email   string    `json:"email"`
	Phone   string    `json:"phone,omitempty"`
	Address string    `json:"address,omitempty"`
}

func NewProfileResponse(profile *db_models.Profile) ProfileResponse {
	return ProfileResponse{
		ID:               profile.ID,
		Name:             profile.Name,
		JobTitle:         profile.JobTitle,
		JobDescription:   profile.JobDescription,
		Title:            profile.Title,
		Description:      profile.Description,
		ProfilePicture:   profile.ProfilePicture,
		SecondaryPicture: profile.SecondaryPicture,
	}
}

func NewProfileListResponse(profiles []db_models.Profile) []ProfileResponse {
	out := make([]ProfileResponse, 0, len(profiles))
	for i := range profiles {
		out = append(out, NewProfileResponse(&profiles[i]))
	}
	return out
}

func NewContactResponse(contact *db_models.Contact) ContactResponse {
	return ContactResponse{
		ID:      contact.ID,
		Email:   contact.Email,
		Phone:   contact.Phone,
		Address: contact.Address,
	}
}

func NewContactListResponse(contacts []db_models.Contact) []ContactResponse {
	out := make([]ContactResponse, 0, len(contacts))
	for i := range contacts {
		out = append(out, NewContactResponse(&contacts[i]))
	}
	return out
}
