package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"esale/internal/models/request_models"
	"esale/internal/models/response_models"
	"esale/internal/services"
	"esale/pkg/utils"
)

type ProfilesController struct {
	profileService services.ProfileServiceInterface
}

func NewProfilesController(profileService services.ProfileServiceInterface) *ProfilesController {
	return &ProfilesController{profileService: profileService}
}

func (pc *ProfilesController) CreateProfileHandler(c *gin.Context) {
	var req request_models.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	profile, err := pc.profileService.CreateProfile(c.Request.Context(), &req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusCreated, response_models.NewProfileResponse(profile), "Profile created")
}

func (pc *ProfilesController) ListProfilesHandler(c *gin.Context) {
	profiles, err := pc.profileService.ListProfiles(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, response_models.NewProfileListResponse(profiles), "Fetched profiles successfully")
}

// Profiles are addressed by name, matched case-insensitively.
func (pc *ProfilesController) GetProfileHandler(c *gin.Context) {
	profile, err := pc.profileService.GetProfileByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, response_models.NewProfileResponse(profile), "Fetched profile successfully")
}

func (pc *ProfilesController) UpdateProfileHandler(c *gin.Context) {
	var req request_models.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	profile, err := pc.profileService.UpdateProfile(c.Request.Context(), c.Param("name"), &req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, response_models.NewProfileResponse(profile), "Profile updated")
}

func (pc *ProfilesController) DeleteProfileHandler(c *gin.Context) {
	if err := pc.profileService.DeleteProfile(c.Request.Context(), c.Param("name")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, nil, "Profile deleted")
}

func (pc *ProfilesController) CreateContactHandler(c *gin.Context) {
	var req request_models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	contact, err := pc.profileService.CreateContact(c.Request.Context(), &req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusCreated, response_models.NewContactResponse(contact), "Contact created")
}

func (pc *ProfilesController) ListContactsHandler(c *gin.Context) {
	contacts, err := pc.profileService.ListContacts(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, response_models.NewContactListResponse(contacts), "Fetched contacts successfully")
}

func (pc *ProfilesController) GetContactHandler(c *gin.Context) {
	contactID, ok := pc.contactID(c)
	if !ok {
		return
	}

	contact, err := pc.profileService.GetContact(c.Request.Context(), contactID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, response_models.NewContactResponse(contact), "Fetched contact successfully")
}

func (pc *ProfilesController) UpdateContactHandler(c *gin.Context) {
	contactID, ok := pc.contactID(c)
	if !ok {
		return
	}

	var req request_models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	contact, err := pc.profileService.UpdateContact(c.Request.Context(), contactID, &req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, response_models.NewContactResponse(contact), "Contact updated")
}

func (pc *ProfilesController) DeleteContactHandler(c *gin.Context) {
	contactID, ok := pc.contactID(c)
	if !ok {
		return
	}

	if err := pc.profileService.DeleteContact(c.Request.Context(), contactID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, nil, "Contact deleted")
}

func (pc *ProfilesController) contactID(c *gin.Context) (uuid.UUID, bool) {
	contactID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid contact id")
		return uuid.Nil, false
	}
	return contactID, true
}
