package dto

// ProfileRequest - создание/обновление анкеты ученика.
// BirthDate в формате ISO (как присылает фронтенд).
type ProfileRequest struct {
	UserID           string `json:"userId,omitempty"`
	Phone            string `json:"phone,omitempty"`
	BirthDate        string `json:"birthDate,omitempty"`
	Address          string `json:"address,omitempty"`
	EmergencyContact string `json:"emergencyContact,omitempty"`
	EmergencyPhone   string `json:"emergencyPhone,omitempty"`
	HealthIssues     string `json:"healthIssues,omitempty"`
	Experience       string `json:"experience,omitempty"`
	Objectives       string `json:"objectives,omitempty"`
}

// ModalitySummary - публичная проекция модальности для витрины
type ModalitySummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
	MinAge      int    `json:"minAge"`
	Duration    string `json:"duration,omitempty"`
}
