package configs

import (
	"encoding/json"
	"log"

	"github.com/surukutlaManoj/Food-Delivery/entity"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the initial admin account once.
func SeedAdmin(email, password string) error {
	db := DB()
	if email == "" || password == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	admin := entity.User{
		Email:     email,
		Password:  string(hash),
		FirstName: "Admin",
		LastName:  "Seed",
		Role:      "admin",
	}
	return db.Create(&admin).Error
}

// SeedRestaurants inserts sample restaurants with menus on an empty database.
func SeedRestaurants() error {
	db := DB()

	var count int64
	db.Model(&entity.Restaurant{}).Count(&count)
	if count > 0 {
		return nil
	}

	for _, r := range sampleRestaurants() {
		if err := db.Create(&r).Error; err != nil {
			return err
		}
	}
	log.Println("seeded sample restaurants")
	return nil
}

func sampleRestaurants() []entity.Restaurant {
	return []entity.Restaurant{
		{
			Name:         "Bella Italia",
			Description:  "Authentic Italian cuisine with a modern twist. Family recipes passed down through generations.",
			Image:        "https://images.unsplash.com/photo-1555396273-367ea4eb4db5?w=400&h=300&fit=crop",
			Cuisine:      "Italian",
			Rating:       4.5,
			DeliveryTime: "30-45 min",
			DeliveryFee:  2.99,
			MinOrder:     15.00,
			IsActive:     true,
			Street:       "123 Main Street",
			City:         "New York",
			Menu: mustMenu([]entity.MenuCategory{
				{
					Category: "Appetizers",
					Items: []entity.MenuItem{
						{
							Name:        "Bruschetta",
							Description: "Toasted bread with tomatoes, garlic, and fresh basil",
							Price:       8.99,
							Dietary:     []string{"vegetarian"},
							Customizations: []entity.Customization{
								{
									Name: "Extra Toppings",
									Options: []entity.CustomizationValue{
										{Name: "Extra Mozzarella", Price: 2.00},
										{Name: "Prosciutto", Price: 3.50},
									},
								},
							},
							IsAvailable: true,
						},
						{
							Name:        "Caprese Salad",
							Description: "Fresh mozzarella, tomatoes, and basil with balsamic glaze",
							Price:       10.99,
							Dietary:     []string{"vegetarian", "gluten-free"},
							IsAvailable: true,
						},
					},
				},
				{
					Category: "Main Course",
					Items: []entity.MenuItem{
						{
							Name:        "Margherita Pizza",
							Description: "Fresh mozzarella, tomatoes, and basil on our homemade dough",
							Price:       14.99,
							Dietary:     []string{"vegetarian"},
							Customizations: []entity.Customization{
								{
									Name: "Size",
									Options: []entity.CustomizationValue{
										{Name: "Small (10\")", Price: 0},
										{Name: "Medium (12\")", Price: 3.00},
										{Name: "Large (14\")", Price: 5.00},
									},
								},
								{
									Name: "Extra Toppings",
									Options: []entity.CustomizationValue{
										{Name: "Extra Cheese", Price: 2.00},
										{Name: "Pepperoni", Price: 2.50},
										{Name: "Mushrooms", Price: 1.50},
									},
								},
							},
							IsAvailable: true,
						},
						{
							Name:        "Fettuccine Alfredo",
							Description: "Creamy parmesan sauce with fettuccine pasta and grilled chicken",
							Price:       16.99,
							Customizations: []entity.Customization{
								{
									Name: "Protein",
									Options: []entity.CustomizationValue{
										{Name: "Chicken", Price: 0},
										{Name: "Shrimp", Price: 4.00},
									},
								},
							},
							IsAvailable: true,
						},
					},
				},
			}),
		},
		{
			Name:         "Burger Heaven",
			Description:  "Juicy flame-grilled burgers and hand-cut fries.",
			Image:        "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?w=400",
			Cuisine:      "American",
			Rating:       4.3,
			DeliveryTime: "25-35 min",
			DeliveryFee:  1.99,
			MinOrder:     10.00,
			IsActive:     true,
			Street:       "456 Oak Ave",
			City:         "New York",
			Menu: mustMenu([]entity.MenuCategory{
				{
					Category: "Burgers",
					Items: []entity.MenuItem{
						{
							Name:        "Classic Cheeseburger",
							Description: "Beef patty, cheddar, lettuce, tomato, house sauce",
							Price:       9.49,
							Customizations: []entity.Customization{
								{
									Name: "Extras",
									Options: []entity.CustomizationValue{
										{Name: "Bacon", Price: 1.50},
										{Name: "Extra Patty", Price: 3.00},
									},
								},
							},
							IsAvailable: true,
						},
						{
							Name:        "Veggie Burger",
							Description: "Grilled plant-based patty with avocado",
							Price:       8.99,
							Dietary:     []string{"vegetarian"},
							IsAvailable: true,
						},
					},
				},
				{
					Category: "Sides",
					Items: []entity.MenuItem{
						{
							Name:        "Hand-Cut Fries",
							Description: "Twice-fried, sea salt",
							Price:       3.49,
							Dietary:     []string{"vegetarian"},
							IsAvailable: true,
						},
					},
				},
			}),
		},
		{
			Name:         "Sushi Express",
			Description:  "Fresh sushi and sashimi made to order.",
			Image:        "https://images.unsplash.com/photo-1579584425555-c3ce17fd4351?w=400",
			Cuisine:      "Japanese",
			Rating:       4.7,
			DeliveryTime: "35-45 min",
			DeliveryFee:  3.99,
			MinOrder:     20.00,
			IsActive:     true,
			Street:       "789 Park Blvd",
			City:         "New York",
			Menu: mustMenu([]entity.MenuCategory{
				{
					Category: "Rolls",
					Items: []entity.MenuItem{
						{
							Name:        "California Roll",
							Description: "Crab, avocado, cucumber",
							Price:       7.99,
							IsAvailable: true,
						},
						{
							Name:        "Spicy Tuna Roll",
							Description: "Tuna, spicy mayo, scallion",
							Price:       9.99,
							Customizations: []entity.Customization{
								{
									Name: "Spice Level",
									Options: []entity.CustomizationValue{
										{Name: "Mild", Price: 0},
										{Name: "Hot", Price: 0},
									},
								},
							},
							IsAvailable: true,
						},
					},
				},
			}),
		},
	}
}

func mustMenu(categories []entity.MenuCategory) []byte {
	b, err := json.Marshal(categories)
	if err != nil {
		log.Fatalln("seed menu marshal:", err)
	}
	return b
}
