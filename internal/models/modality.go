package models

type Modality struct {
	BaseModel
	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
	VideoURL    string `gorm:"column:video_url" json:"videoUrl,omitempty"`
	Benefits    string `json:"benefits,omitempty"`
	MinAge      int    `gorm:"column:min_age" json:"minAge"`
	Duration    string `json:"duration,omitempty"`
	Active      bool   `gorm:"default:true" json:"active"`
}

// ModalityRef - краткая проекция для вложенных ответов
type ModalityRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (m *Modality) Ref() *ModalityRef {
	return &ModalityRef{ID: m.ID, Name: m.Name}
}
