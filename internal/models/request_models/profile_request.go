package request_models

type ProfileRequest struct {
	Name             string `json:"name" binding:"required"`
	JobTitle         string `json:"job_title"`
	JobDescription   string `json:"job_description"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	ProfilePicture   string `json:"profile_picture"`
	SecondaryPicture string `json:"secondary_picture"`
}

type ContactRequest struct {
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}
