package pujas

// UpsertRequest is the admin payload for creating or updating a catalog
// entry. Price is rupees.
type UpsertRequest struct {
	Name         string   `json:"name" validate:"required,min=2,max=120"`
	NameHindi    string   `json:"nameHindi" validate:"omitempty,max=120"`
	Price        int      `json:"price" validate:"required,gt=0"`
	Duration     string   `json:"duration" validate:"omitempty,max=60"`
	Description  string   `json:"description" validate:"omitempty,max=2000"`
	Benefits     []string `json:"benefits" validate:"omitempty,dive,max=200"`
	Requirements []string `json:"requirements" validate:"omitempty,dive,max=200"`
	Constrains   []string `json:"constrains" validate:"omitempty,dive,max=200"`
	Mode         []string `json:"mode" validate:"omitempty,dive,oneof=online offline"`
	Temples      []string `json:"temples" validate:"omitempty,dive,max=120"`
	Image        string   `json:"image" validate:"omitempty,url"`
}
