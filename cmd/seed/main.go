package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"golang.org/x/crypto/bcrypt"

	"villagemart/internal/database"
	"villagemart/internal/domain/admin"
	"villagemart/internal/domain/analytics"
	"villagemart/internal/domain/customer"
	"villagemart/internal/domain/notification"
	"villagemart/internal/domain/product"
	"villagemart/internal/domain/shopkeeper"
)

func main() {
	db, err := database.Connect("villagemart.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (children first to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM product_views")
	db.Exec("DELETE FROM orders")
	db.Exec("DELETE FROM product_notifications")
	db.Exec("DELETE FROM notifications")
	db.Exec("DELETE FROM products")
	db.Exec("DELETE FROM shopkeepers")
	db.Exec("DELETE FROM customers")
	db.Exec("DELETE FROM admins")

	// ================== ADMIN ==================
	log.Println("Creating admin...")
	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	db.Create(&admin.Admin{
		Name:     "Village Mart Admin",
		Email:    "admin@villagemart.in",
		Password: string(adminHash),
	})
	log.Println("Admin created: admin@villagemart.in / admin123")

	// ================== SHOPKEEPERS ==================
	log.Println("Creating shopkeepers...")
	shopHash, _ := bcrypt.GenerateFromPassword([]byte("shop123"), bcrypt.DefaultCost)

	keepers := []shopkeeper.Shopkeeper{
		{
			Name: "Ramesh Kumar", Email: "ramesh@villagemart.in", Password: string(shopHash),
			Phone: "+91 98765 43210", ShopName: "Kumar General Store",
			Address: "Main Road, Rampur", Category: "Grocery",
			GSTIN: "09ABCDE1234F1Z5", PAN: "ABCDE1234F", LicenseNumber: "LIC-2024-001",
			VerificationStatus: shopkeeper.StatusApproved,
		},
		{
			Name: "Sita Devi", Email: "sita@villagemart.in", Password: string(shopHash),
			Phone: "+91 98765 43211", ShopName: "Devi Dairy & Sweets",
			Address: "Temple Street, Rampur", Category: "Dairy",
			GSTIN: "09FGHIJ5678K2Z6", PAN: "FGHIJ5678K", LicenseNumber: "LIC-2024-002",
			VerificationStatus: shopkeeper.StatusApproved,
		},
		{
			Name: "Mohan Lal", Email: "mohan@villagemart.in", Password: string(shopHash),
			Phone: "+91 98765 43212", ShopName: "Lal Hardware",
			Address: "Bazaar Lane, Rampur", Category: "Hardware",
			VerificationStatus: shopkeeper.StatusPending,
		},
	}
	for i := range keepers {
		db.Create(&keepers[i])
	}
	log.Println("Shopkeepers created (password: shop123), Lal Hardware left pending")

	// ================== CUSTOMERS ==================
	log.Println("Creating customers...")
	custHash, _ := bcrypt.GenerateFromPassword([]byte("customer123"), bcrypt.DefaultCost)

	customers := []customer.Customer{}
	names := []string{"Anita Sharma", "Vijay Singh", "Priya Patel", "Ravi Verma"}
	for i, name := range names {
		c := customer.Customer{
			Name:     name,
			Email:    fmt.Sprintf("customer%d@villagemart.in", i+1),
			Password: string(custHash),
			Phone:    fmt.Sprintf("+91 91234 567%02d", i+10),
			Address:  "Rampur Village",
		}
		db.Create(&c)
		customers = append(customers, c)
	}
	log.Println("Customers created (password: customer123)")

	// ================== PRODUCTS ==================
	log.Println("Creating products...")
	type seedProduct struct {
		shop  int
		name  string
		desc  string
		price float64
		stock int
		cat   string
	}
	items := []seedProduct{
		{0, "Basmati Rice 5kg", "Premium long-grain basmati rice", 450, 25, "Grocery"},
		{0, "Toor Dal 1kg", "Unpolished toor dal", 140, 40, "Grocery"},
		{0, "Sunflower Oil 1L", "Refined sunflower oil", 135, 0, "Grocery"},
		{0, "Wheat Flour 10kg", "Chakki fresh atta", 380, 15, "Grocery"},
		{1, "Fresh Milk 1L", "Farm fresh full-cream milk", 60, 30, "Dairy"},
		{1, "Paneer 500g", "Soft homemade paneer", 180, 0, "Dairy"},
		{1, "Curd 1kg", "Thick set curd", 80, 20, "Dairy"},
		{1, "Besan Ladoo 500g", "Traditional besan ladoo", 220, 12, "Sweets"},
	}

	products := []product.Product{}
	for _, it := range items {
		p := product.Product{
			ShopkeeperID: keepers[it.shop].ID,
			Name:         it.name,
			Description:  it.desc,
			Price:        it.price,
			Stock:        it.stock,
			Category:     it.cat,
		}
		db.Create(&p)
		products = append(products, p)
	}
	log.Printf("%d products created (2 out of stock)", len(products))

	// ================== SUBSCRIPTIONS ==================
	// Customers waiting on the out-of-stock items.
	log.Println("Creating restock subscriptions...")
	for _, p := range products {
		if p.Stock != 0 {
			continue
		}
		for _, c := range customers[:2] {
			db.Create(&notification.ProductSubscription{
				CustomerID: c.ID,
				ProductID:  p.ID,
			})
		}
	}

	// ================== ORDERS & VIEWS ==================
	log.Println("Creating sample orders and views...")
	for i := 0; i < 60; i++ {
		p := products[rand.Intn(len(products))]
		c := customers[rand.Intn(len(customers))]
		qty := 1 + rand.Intn(3)
		created := time.Now().AddDate(0, 0, -rand.Intn(60))

		db.Create(&analytics.Order{
			CustomerID:   c.ID,
			ShopkeeperID: p.ShopkeeperID,
			ProductID:    p.ID,
			Quantity:     qty,
			TotalAmount:  float64(qty) * p.Price,
			Status:       "completed",
			CreatedAt:    created,
		})
	}
	for i := 0; i < 200; i++ {
		p := products[rand.Intn(len(products))]
		db.Create(&analytics.ProductView{
			ProductID:    p.ID,
			ShopkeeperID: p.ShopkeeperID,
			ViewedAt:     time.Now().AddDate(0, 0, -rand.Intn(30)),
		})
	}

	log.Println("Seed complete.")
}
