package shopkeeper

type RegisterRequest struct {
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required,min=6"`
	Phone         string `json:"phone"`
	ShopName      string `json:"shop_name" validate:"required"`
	Address       string `json:"address"`
	GSTIN         string `json:"gstin"`
	PAN           string `json:"pan"`
	LicenseNumber string `json:"license_number"`
	Category      string `json:"category"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfileRequest struct {
	Name          string `json:"name" validate:"required"`
	Phone         string `json:"phone"`
	ShopName      string `json:"shop_name" validate:"required"`
	Address       string `json:"address"`
	GSTIN         string `json:"gstin"`
	PAN           string `json:"pan"`
	LicenseNumber string `json:"license_number"`
	Category      string `json:"category"`
}

type UserPayload struct {
	ID                 int64   `json:"id"`
	Name               string  `json:"name"`
	Email              string  `json:"email"`
	Role               string  `json:"role"`
	Phone              string  `json:"phone"`
	ShopName           string  `json:"shop_name"`
	Address            string  `json:"address"`
	Category           string  `json:"category"`
	GSTIN              string  `json:"gstin"`
	PAN                string  `json:"pan"`
	VerificationStatus string  `json:"verification_status"`
	RejectionReason    *string `json:"rejection_reason,omitempty"`
}

type AuthResponse struct {
	Token string      `json:"token"`
	User  UserPayload `json:"user"`
}

// ShopDetail is the public view of a shop.
type ShopDetail struct {
	ID       int64  `json:"id"`
	ShopName string `json:"shop_name"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}

func toUserPayload(s *Shopkeeper) UserPayload {
	p := UserPayload{
		ID:                 s.ID,
		Name:               s.Name,
		Email:              s.Email,
		Role:               "shopkeeper",
		Phone:              s.Phone,
		ShopName:           s.ShopName,
		Address:            s.Address,
		Category:           s.Category,
		GSTIN:              s.GSTIN,
		PAN:                s.PAN,
		VerificationStatus: string(s.VerificationStatus),
	}
	if s.RejectionReason.Valid {
		reason := s.RejectionReason.String
		p.RejectionReason = &reason
	}
	return p
}
