package usecase

type SubmitLeadInput struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Message          string `json:"message"`
	PrimaryObjective string `json:"primary_objective"`
}

type SubmitConsultationInput struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Website       string `json:"website"`
	SocialMedia   string `json:"social_media"`
	BusinessInfo  string `json:"business_info"`
	Message       string `json:"message"`
	Location      string `json:"location"`
	PreferredTime string `json:"preferred_time"`
	WhatsApp      string `json:"whatsapp"`
}

// ResumeUpload carries the raw file from the multipart intake variant.
type ResumeUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

type SubmitApplicationInput struct {
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	PortfolioURL   string `json:"portfolio_url"`
	FavoriteAITool string `json:"favorite_ai_tool"`
	Experience     string `json:"experience"`
	MessageToCEO   string `json:"message_to_ceo"`
	RoleAppliedFor string `json:"role_applied_for"`
	ResumeLink     string `json:"resume_link"`
	Resume         *ResumeUpload
}

type SubmitOutput struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// SubmitApplicationOutput reports the store write and the relay outcome
// separately. The record is durable whenever ID is set, even if the relay
// afterwards failed.
type SubmitApplicationOutput struct {
	ID         string `json:"id"`
	Status     string `json:"status"`
	Relayed    bool   `json:"relayed"`
	RelayError string `json:"relay_error,omitempty"`
}
