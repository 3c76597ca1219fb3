package analytics

// Overview is the shopkeeper dashboard headline block.
type Overview struct {
	TotalRevenue  float64 `json:"totalRevenue"`
	TotalOrders   int64   `json:"totalOrders"`
	TotalProducts int64   `json:"totalProducts"`
	TotalViews    int64   `json:"totalViews"`
	AvgOrderValue float64 `json:"avgOrderValue"`
	RevenueGrowth float64 `json:"revenueGrowth"`
	OrdersGrowth  float64 `json:"ordersGrowth"`
}

// TrendPoint is one bucket of the revenue chart.
type TrendPoint struct {
	Date    string  `gorm:"column:date" json:"date"`
	Revenue float64 `gorm:"column:revenue" json:"revenue"`
	Orders  int64   `gorm:"column:orders" json:"orders"`
}

// TopProduct ranks a shopkeeper's products by revenue.
type TopProduct struct {
	ProductID int64   `gorm:"column:product_id" json:"product_id"`
	Name      string  `gorm:"column:name" json:"name"`
	UnitsSold int64   `gorm:"column:units_sold" json:"units_sold"`
	Revenue   float64 `gorm:"column:revenue" json:"revenue"`
}
