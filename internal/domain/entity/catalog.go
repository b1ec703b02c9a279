// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// MenuItem is a single dish on a food vendor's menu with its price in rupees.
type MenuItem struct {
	Item  string `json:"item"`
	Price int    `json:"price"`
}

// FoodVendor represents an eatery near campus: a stall, dhaba, cafe or restaurant.
type FoodVendor struct {
	ID             string     `json:"id"`              // Stable unique identifier, e.g. "f1".
	Name           string     `json:"name"`            // Display name of the vendor.
	Phone          string     `json:"phone"`           // Contact phone number.
	Type           []string   `json:"type"`            // Cuisine/category tags, e.g. ["Fast Food", "Snacks"].
	VegNonveg      string     `json:"veg_nonveg"`      // "Veg", "Non-veg" or "Both".
	AvgServingMins int        `json:"avg_serving_mins"` // Typical wait time for an order.
	PriceRange     string     `json:"price_range"`     // Curated price band, e.g. "₹50–₹180".
	Menu           []MenuItem `json:"menu"`            // Popular items with prices.
	Reviews        []Review   `json:"reviews"`         // Seed reviews, chronological order.
	Rating         float64    `json:"rating"`          // Curated rating, 0.0–5.0. Shown as-is.
	ImageURL       string     `json:"image_url,omitempty"`
}

// Service represents a general student service such as a print shop or
// repair stall. Salons share this shape with their own category.
type Service struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Type          string   `json:"type"` // Single category tag, e.g. "Printing & Xerox".
	Phone         string   `json:"phone"`
	EstimatedTime string   `json:"estimated_time"` // Human estimate, e.g. "5–10 mins".
	Distance      string   `json:"distance"`       // Curated distance, e.g. "200m from Campus".
	Price         string   `json:"price,omitempty"`
	Reviews       []Review `json:"reviews"`
	Rating        float64  `json:"rating"`
	ImageURL      string   `json:"image_url,omitempty"`
}

// Transport represents a way of getting around: auto stands, e-rickshaws.
type Transport struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Type          string   `json:"type"` // e.g. "Auto Rickshaw", "Shared EV".
	Phone         string   `json:"phone"` // Phone number or the "App Based" sentinel.
	EstimatedTime string   `json:"estimated_time"`
	Price         string   `json:"price"`
	Rating        float64  `json:"rating"`
	Reviews       []Review `json:"reviews"`
}

// Place represents a point of interest around Burla/Sambalpur.
type Place struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Type     string   `json:"type"` // e.g. "Hindu Temple", "Railway Station".
	Lat      float64  `json:"lat"`
	Lng      float64  `json:"lng"`
	Phone    string   `json:"phone,omitempty"`
	Notes    string   `json:"notes"`
	Distance string   `json:"distance,omitempty"` // Straight-line distance from the main gate when not curated.
	Rating   float64  `json:"rating"`
	Reviews  []Review `json:"reviews"`
	ImageURL string   `json:"image_url,omitempty"`
}

// Catalog is the full read-only dataset grouped by category. Filter
// operations return the same shape with non-matches removed.
type Catalog struct {
	FoodVendors []FoodVendor `json:"food_vendors"`
	Services    []Service    `json:"services"`
	Transports  []Transport  `json:"transports"`
	Places      []Place      `json:"places"`
	Salons      []Service    `json:"salons"`
}

// Counts returns the number of entries per category, used by the section
// headers in the UI.
type Counts struct {
	FoodVendors int `json:"food_vendors"`
	Services    int `json:"services"`
	Transports  int `json:"transports"`
	Places      int `json:"places"`
	Salons      int `json:"salons"`
}

// Count tallies each category of the catalog view.
func (c Catalog) Count() Counts {
	return Counts{
		FoodVendors: len(c.FoodVendors),
		Services:    len(c.Services),
		Transports:  len(c.Transports),
		Places:      len(c.Places),
		Salons:      len(c.Salons),
	}
}
