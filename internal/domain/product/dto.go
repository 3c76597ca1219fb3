package product

// ProductWithShop is the public listing row: product plus the name of
// the shop selling it.
type ProductWithShop struct {
	ID          int64   `gorm:"column:id" json:"id"`
	Name        string  `gorm:"column:name" json:"name"`
	Description string  `gorm:"column:description" json:"description"`
	Price       float64 `gorm:"column:price" json:"price"`
	Stock       int     `gorm:"column:stock" json:"stock"`
	Category    string  `gorm:"column:category" json:"category"`
	Image       string  `gorm:"column:image" json:"image"`
	ShopName    string  `gorm:"column:shop_name" json:"shop_name"`
}

// ProductDetail is the single-product view with shop contact details.
type ProductDetail struct {
	ID           int64   `gorm:"column:id" json:"id"`
	Name         string  `gorm:"column:name" json:"name"`
	Description  string  `gorm:"column:description" json:"description"`
	Price        float64 `gorm:"column:price" json:"price"`
	Stock        int     `gorm:"column:stock" json:"stock"`
	Category     string  `gorm:"column:category" json:"category"`
	Image        string  `gorm:"column:image" json:"image"`
	ShopkeeperID int64   `gorm:"column:shopkeeper_id" json:"shopkeeper_id"`
	ShopName     string  `gorm:"column:shop_name" json:"shop_name"`
	Address      string  `gorm:"column:address" json:"address"`
	Phone        string  `gorm:"column:phone" json:"phone"`
}

// CompareRow feeds the price-comparison page: same products across
// shops, cheapest first within a name.
type CompareRow struct {
	ID          int64   `gorm:"column:id" json:"id"`
	Name        string  `gorm:"column:name" json:"name"`
	Description string  `gorm:"column:description" json:"description"`
	Price       float64 `gorm:"column:price" json:"price"`
	Stock       int     `gorm:"column:stock" json:"stock"`
	Category    string  `gorm:"column:category" json:"category"`
	Image       string  `gorm:"column:image" json:"image"`
	ShopID      int64   `gorm:"column:shop_id" json:"shop_id"`
	ShopName    string  `gorm:"column:shop_name" json:"shop_name"`
	ShopAddress string  `gorm:"column:shop_address" json:"shop_address"`
	ShopPhone   string  `gorm:"column:shop_phone" json:"shop_phone"`
}

// CreateInput and UpdateInput are the write payloads, already parsed
// from the multipart form by the handler.
type CreateInput struct {
	Name        string
	Description string
	Price       float64
	Stock       int
	Category    string
	ImagePath   string
}

type UpdateInput struct {
	Name        string
	Description string
	Price       float64
	Stock       int
	Category    string
	ImagePath   string // empty keeps the existing image
}
