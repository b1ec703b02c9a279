package catalog

import (
	"time"

	"campus/internal/domain/entity"
)

// Curated campus dataset for VSSUT Burla. Reviews listed here are seed
// reviews; user-submitted reviews live in the session-scoped ledger.
//
// The upstream dataset shipped two vendors under the id "f2"; the second
// one carries "f2a" here so the store's duplicate-id check holds.

func day(value string) time.Time {
	t, _ := time.Parse("2006-01-02", value)

	return t
}

func seedFoodVendors() []entity.FoodVendor {
	return []entity.FoodVendor{
		{
			ID:             "f1",
			Name:           "BB Food Corner",
			Phone:          "+91 9778888281",
			Type:           []string{"Fast Food", "Snacks"},
			VegNonveg:      "Both",
			AvgServingMins: 12,
			PriceRange:     "₹50–₹180",
			Menu: []entity.MenuItem{
				{Item: "Veg Chowmein", Price: 60},
				{Item: "Egg Chowmein", Price: 75},
				{Item: "Chicken Chowmein", Price: 110},
				{Item: "Paneer Roll", Price: 80},
				{Item: "Cold Coffee", Price: 60},
			},
			Reviews: []entity.Review{
				{ID: "r1", User: "Amit P.", Rating: 4, Comment: "Great chowmein, fast service!", Date: day("2023-10-12"), AvatarColor: "bg-indigo-500"},
				{ID: "r2", User: "Sneha", Rating: 5, Comment: "Cold coffee is a must try.", Date: day("2023-11-05"), AvatarColor: "bg-pink-500"},
			},
			Rating: 4.5,
		},
		{
			ID:             "f2",
			Name:           "Swarup Fast Food",
			Phone:          "+91 8270469682",
			Type:           []string{"Fast Food"},
			VegNonveg:      "Both",
			AvgServingMins: 10,
			PriceRange:     "₹40–₹160",
			Menu: []entity.MenuItem{
				{Item: "Veg Roll", Price: 50},
				{Item: "Egg Roll", Price: 60},
				{Item: "Chicken Roll", Price: 90},
				{Item: "Fried Rice", Price: 90},
				{Item: "Chilli Chicken", Price: 150},
			},
			Reviews: []entity.Review{
				{ID: "r3", User: "Rahul", Rating: 3, Comment: "Okayish rolls.", Date: day("2023-09-20"), AvatarColor: "bg-amber-500"},
			},
			Rating: 3.0,
		},
		{
			ID:             "f2a",
			Name:           "Friends Fast Food",
			Phone:          "+91 8270469682",
			Type:           []string{"Fast Food"},
			VegNonveg:      "Both",
			AvgServingMins: 10,
			PriceRange:     "₹30–₹150",
			Menu: []entity.MenuItem{
				{Item: "Veg Roll", Price: 50},
				{Item: "Egg Roll", Price: 60},
				{Item: "Chicken Roll", Price: 90},
				{Item: "Fried Rice", Price: 90},
				{Item: "Chilli Chicken", Price: 150},
			},
			Reviews: []entity.Review{
				{ID: "r3a", User: "Rahul", Rating: 3, Comment: "Okayish rolls.", Date: day("2023-09-20"), AvatarColor: "bg-amber-500"},
			},
			Rating: 3.0,
		},
		{
			ID:             "f3",
			Name:           "Dawat Burla",
			Phone:          "+91 7019129583",
			Type:           []string{"Restaurant", "North Indian"},
			VegNonveg:      "Both",
			AvgServingMins: 18,
			PriceRange:     "₹120–₹350",
			Menu: []entity.MenuItem{
				{Item: "Butter Chicken", Price: 220},
				{Item: "Paneer Tikka", Price: 180},
				{Item: "Dal Makhani", Price: 150},
				{Item: "Naan", Price: 40},
			},
			Rating: 4.2,
		},
		{
			ID:             "f4",
			Name:           "Alibaba Hotel",
			Phone:          "+91 7340226768",
			Type:           []string{"Hotel", "Meals"},
			VegNonveg:      "Both",
			AvgServingMins: 20,
			PriceRange:     "₹100–₹300",
			Menu: []entity.MenuItem{
				{Item: "Veg Thali", Price: 100},
				{Item: "Non-Veg Thali", Price: 150},
				{Item: "Fish Curry", Price: 200},
				{Item: "Rice", Price: 40},
			},
			Rating: 4.0,
		},
		{
			ID:             "f5",
			Name:           "Engineer's Bro Delight",
			Phone:          "+91 7328099908",
			Type:           []string{"Fast Food", "Cafe"},
			VegNonveg:      "Both",
			AvgServingMins: 12,
			PriceRange:     "₹60–₹220",
			Menu: []entity.MenuItem{
				{Item: "Burger", Price: 80},
				{Item: "Pasta", Price: 120},
				{Item: "Mojito", Price: 70},
				{Item: "Sandwich", Price: 60},
			},
			Rating: 4.3,
		},
		{
			ID:             "f6",
			Name:           "Biriyani Vibes",
			Phone:          "+91 9692582114",
			Type:           []string{"Biryani"},
			VegNonveg:      "Both",
			AvgServingMins: 15,
			PriceRange:     "₹90–₹250",
			Menu: []entity.MenuItem{
				{Item: "Chicken Biryani", Price: 150},
				{Item: "Mutton Biryani", Price: 220},
				{Item: "Veg Biryani", Price: 100},
				{Item: "Raita", Price: 30},
			},
			Reviews: []entity.Review{
				{ID: "r4", User: "BiryaniLover", Rating: 4, Comment: "Good quantity.", Date: day("2023-11-20"), AvatarColor: "bg-violet-500"},
			},
			Rating: 4.0,
		},
		{
			ID:             "f7",
			Name:           "Lucky Biriyani",
			Phone:          "+91 7077978086",
			Type:           []string{"Biryani"},
			VegNonveg:      "Both",
			AvgServingMins: 14,
			PriceRange:     "₹100–₹240",
			Menu: []entity.MenuItem{
				{Item: "Chicken Dum Biryani", Price: 140},
				{Item: "Egg Biryani", Price: 100},
				{Item: "Special Biryani", Price: 200},
			},
			Rating: 3.8,
		},
		{
			ID:             "f8",
			Name:           "Zaika",
			Phone:          "+91 6200937326",
			Type:           []string{"Restaurant"},
			VegNonveg:      "Both",
			AvgServingMins: 18,
			PriceRange:     "₹120–₹320",
			Menu: []entity.MenuItem{
				{Item: "Chicken Curry", Price: 180},
				{Item: "Paneer Butter Masala", Price: 160},
				{Item: "Roti (2 pcs)", Price: 30},
				{Item: "Fried Rice", Price: 120},
			},
			Rating: 4.1,
		},
		{
			ID:             "f9",
			Name:           "Chai Sutta Bar",
			Phone:          "+91 9040452004",
			Type:           []string{"Cafe", "Tea"},
			VegNonveg:      "Veg",
			AvgServingMins: 6,
			PriceRange:     "₹15–₹150",
			Menu: []entity.MenuItem{
				{Item: "Kulhad Chai", Price: 20},
				{Item: "Bun Maska", Price: 30},
				{Item: "Maggi", Price: 50},
				{Item: "Cold Coffee", Price: 80},
			},
			Rating: 4.4,
		},
	}
}

func seedServices() []entity.Service {
	return []entity.Service{
		{
			ID:            "s1",
			Name:          "Campus Print Shop",
			Type:          "Printing & Xerox",
			Phone:         "+91 9000011101",
			EstimatedTime: "5–10 mins",
			Distance:      "200m from Campus",
			Price:         "₹2/page",
			Reviews: []entity.Review{
				{ID: "sr1", User: "Student1", Rating: 5, Comment: "Very fast service.", Date: day("2024-01-15"), AvatarColor: "bg-emerald-500"},
			},
			Rating: 5.0,
		},
		{
			ID:            "s2",
			Name:          "Student Mobile Repair",
			Type:          "Repair",
			Phone:         "+91 9000011102",
			EstimatedTime: "1–2 hours",
			Distance:      "1.2km from Campus",
			Price:         "Varies",
			Rating:        4.0,
		},
		{
			ID:            "s3",
			Name:          "SBI ATM",
			Type:          "Services",
			Phone:         "+91 ",
			EstimatedTime: "5 min",
			Distance:      "0.2km from Campus",
			Rating:        4.0,
		},
		{
			ID:            "s4",
			Name:          "Campus Electrical Shop",
			Type:          "Machinery Repair",
			Phone:         "+91 9348017676",
			EstimatedTime: "5–10 mins",
			Distance:      "1km from Campus",
			Price:         "₹50-₹1000",
			Rating:        4.6,
		},
	}
}

func seedTransports() []entity.Transport {
	return []entity.Transport{
		{
			ID:            "t1",
			Name:          "Main Gate Auto Stand",
			Type:          "Auto Rickshaw",
			Phone:         "+91 9000033301",
			EstimatedTime: "2–5 mins",
			Price:         "₹30–₹150",
			Rating:        4.0,
			Reviews: []entity.Review{
				{ID: "tr1", User: "Traveler", Rating: 4, Comment: "Fixed rates usually.", Date: day("2024-01-10"), AvatarColor: "bg-amber-500"},
			},
		},
		{
			ID:            "t2",
			Name:          "Campus E-Rickshaw",
			Type:          "Shared EV",
			Phone:         "+91 9000033303",
			EstimatedTime: "5 mins",
			Price:         "₹10/seat",
			Rating:        4.2,
		},
	}
}

func seedPlaces() []entity.Place {
	return []entity.Place{
		{
			ID:     "p1",
			Name:   "VSSUT Main Gate",
			Type:   "Campus Landmark",
			Lat:    21.497297,
			Lng:    83.904025,
			Notes:  "Primary campus entry point",
			Rating: 4.8,
		},
		{
			ID:     "p2",
			Name:   "Hirakud Dam",
			Type:   "Tourist / Landmark",
			Lat:    21.5705,
			Lng:    83.8711,
			Notes:  "Major nearby landmark near Burla/Sambalpur",
			Rating: 4.9,
		},
		{
			ID:     "p3",
			Name:   "VIMSAR, Burla",
			Type:   "Hospital",
			Lat:    21.503,
			Lng:    83.886,
			Notes:  "Nearest major hospital for students",
			Rating: 4.2,
		},
		{
			ID:     "p4",
			Name:   "Sambalpur Junction",
			Type:   "Railway Station",
			Lat:    21.4886,
			Lng:    83.9922,
			Notes:  "Main rail connectivity for Sambalpur region",
			Rating: 4.0,
		},
		{
			ID:     "p5",
			Name:   "Samaleswari Temple",
			Type:   "Hindu Temple",
			Lat:    21.47407,
			Lng:    83.95906,
			Notes:  "Major Shakti Peetha of Sambalpur",
			Rating: 4.8,
		},
		{
			ID:     "p6",
			Name:   "Huma Duma Temple",
			Type:   "Hindu Temple",
			Lat:    21.281012,
			Lng:    83.912289,
			Notes:  "Leaning Temple of Odisha",
			Rating: 4.6,
		},
	}
}

func seedSalons() []entity.Service {
	return []entity.Service{
		{
			ID:            "salon1",
			Name:          "Smart Look Men's Salon",
			Type:          "Men's Salon",
			Phone:         "+91 9000044401",
			EstimatedTime: "20–40 mins",
			Distance:      "800m from Campus",
			Price:         "₹100+",
			Rating:        4.2,
		},
		{
			ID:            "salon2",
			Name:          "Glow & Shine Parlour",
			Type:          "Women's Salon",
			Phone:         "+91 9000044402",
			EstimatedTime: "30–60 mins",
			Distance:      "2km from Campus",
			Price:         "₹250+",
			Reviews: []entity.Review{
				{ID: "salr1", User: "Neha", Rating: 5, Comment: "Professional staff.", Date: day("2024-01-20"), AvatarColor: "bg-pink-500"},
			},
			Rating: 5.0,
		},
	}
}

// Seed returns the curated campus dataset in display order.
func Seed() entity.Catalog {
	return entity.Catalog{
		FoodVendors: seedFoodVendors(),
		Services:    seedServices(),
		Transports:  seedTransports(),
		Places:      seedPlaces(),
		Salons:      seedSalons(),
	}
}
