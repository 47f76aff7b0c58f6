package schemas

// Credentials contains the details needed to open a Jamf session
type Credentials struct {
	Username string `json:"username" validate:"required,min=1,max=255"`
	Password string `json:"password" validate:"required,min=1"`
	URL      string `json:"url" validate:"required,url,validate_jamf_url"`
}

// CredentialsOutput is the response of the credentials route, the password is never echoed back
type CredentialsOutput struct {
	Username string `json:"username"`
	URL      string `json:"url"`
}
