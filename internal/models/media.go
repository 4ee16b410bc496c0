package models

type Media struct {
	BaseModel
	ModalityID  string    `gorm:"not null;index" json:"modalityId"`
	UploadedBy  string    `gorm:"not null;index" json:"uploadedBy"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description,omitempty"`
	FileURL     string    `gorm:"column:file_url;not null" json:"fileUrl"`
	FileType    MediaType `gorm:"type:varchar(10);not null" json:"fileType"`
	FileSize    int64     `gorm:"column:file_size" json:"fileSize"`
	FileName    string    `gorm:"column:file_name" json:"fileName"`
	Active      bool      `gorm:"default:true" json:"active"`

	// Relations
	Modality *Modality `gorm:"foreignKey:ModalityID" json:"-"`
	Uploader *User     `gorm:"foreignKey:UploadedBy" json:"-"`
}
