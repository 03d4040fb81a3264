package catalog

// Tiers used for display badging. Tier never affects pricing or filtering.
const (
	TierStandard = "standard"
	TierPremium  = "premium"
)

// Service is a bookable home service offering.
type Service struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	PriceRange  string  `json:"price_range"`
	Rating      float64 `json:"rating"`
	Reviews     int     `json:"reviews"`
	Image       string  `json:"image"`
	Details     string  `json:"details"`
	Tier        string  `json:"tier"`
}

func tierFor(price float64) string {
	if price >= 150 {
		return TierPremium
	}
	return TierStandard
}

// Categories lists the filterable service categories, excluding the
// "all" pseudo-category.
func Categories() []string {
	return []string{"Cleaning", "Plumbing", "Electrical", "Landscaping", "Handyman", "HVAC"}
}

// PriceRanges lists the filterable price buckets in display order. A few
// services carry buckets outside this list; they only match the empty filter.
func PriceRanges() []string {
	return []string{"25-75", "50-100", "100-200", "150-250", "200-500"}
}

// Seed returns the full service listing in catalog order.
func Seed() []Service {
	services := []Service{
		{ID: 1, Name: "House Cleaning", Category: "Cleaning", Description: "Thorough house cleaning including bathrooms, kitchen, and bedrooms", Price: 99, PriceRange: "50-100", Rating: 4.8, Reviews: 256, Image: "🧹", Details: "Deep cleaning service with eco-friendly products"},
		{ID: 2, Name: "Window Cleaning", Category: "Cleaning", Description: "Professional window and glass cleaning service", Price: 45, PriceRange: "25-75", Rating: 4.7, Reviews: 143, Image: "🪟", Details: "Interior and exterior window cleaning"},
		{ID: 3, Name: "Carpet Cleaning", Category: "Cleaning", Description: "Professional carpet stain removal and cleaning", Price: 150, PriceRange: "100-200", Rating: 4.9, Reviews: 198, Image: "🟫", Details: "Deep carpet cleaning and stain treatment"},
		{ID: 4, Name: "Pipe Repair", Category: "Plumbing", Description: "Emergency pipe repair and leak detection", Price: 120, PriceRange: "100-200", Rating: 4.9, Reviews: 189, Image: "🔧", Details: "Quick response for all plumbing emergencies"},
		{ID: 5, Name: "Toilet Installation", Category: "Plumbing", Description: "New toilet installation and repairs", Price: 150, PriceRange: "100-200", Rating: 4.6, Reviews: 76, Image: "🚽", Details: "Professional installation by licensed plumbers"},
		{ID: 6, Name: "Water Heater Service", Category: "Plumbing", Description: "Water heater installation and maintenance", Price: 200, PriceRange: "150-250", Rating: 4.7, Reviews: 104, Image: "🔥", Details: "Professional water heater services"},
		{ID: 7, Name: "Electrical Wiring", Category: "Electrical", Description: "Home electrical wiring and installation", Price: 150, PriceRange: "100-200", Rating: 4.7, Reviews: 142, Image: "⚡", Details: "Licensed electrician with 10+ years experience"},
		{ID: 8, Name: "Light Installation", Category: "Electrical", Description: "Ceiling fans and lighting fixtures installation", Price: 85, PriceRange: "50-150", Rating: 4.8, Reviews: 167, Image: "💡", Details: "Quick installation of all types of light fixtures"},
		{ID: 9, Name: "Circuit Breaker Service", Category: "Electrical", Description: "Circuit breaker repair and replacement", Price: 180, PriceRange: "150-250", Rating: 4.6, Reviews: 89, Image: "🔌", Details: "Professional electrical panel services"},
		{ID: 10, Name: "Lawn Mowing", Category: "Landscaping", Description: "Regular lawn mowing and grass cutting", Price: 65, PriceRange: "50-100", Rating: 4.6, Reviews: 203, Image: "🌱", Details: "Weekly or bi-weekly lawn maintenance"},
		{ID: 11, Name: "Garden Design", Category: "Landscaping", Description: "Professional garden design and landscaping", Price: 300, PriceRange: "200-500", Rating: 4.9, Reviews: 87, Image: "🌻", Details: "Custom garden design with professional installation"},
		{ID: 12, Name: "Tree Trimming", Category: "Landscaping", Description: "Tree trimming and removal services", Price: 200, PriceRange: "150-350", Rating: 4.7, Reviews: 115, Image: "🌳", Details: "Professional tree care and removal"},
		{ID: 13, Name: "General Handyman", Category: "Handyman", Description: "General home repairs and maintenance", Price: 75, PriceRange: "50-100", Rating: 4.8, Reviews: 276, Image: "🔨", Details: "Professional handyman for all your small repairs"},
		{ID: 14, Name: "Drywall Repair", Category: "Handyman", Description: "Drywall installation and repair", Price: 110, PriceRange: "100-150", Rating: 4.7, Reviews: 134, Image: "🧱", Details: "Expert drywall finishing and repairs"},
		{ID: 15, Name: "Furniture Assembly", Category: "Handyman", Description: "Furniture and appliance assembly service", Price: 55, PriceRange: "50-100", Rating: 4.9, Reviews: 198, Image: "📦", Details: "Fast and efficient assembly services"},
		{ID: 16, Name: "AC Maintenance", Category: "HVAC", Description: "Air conditioning maintenance and repair", Price: 125, PriceRange: "100-200", Rating: 4.8, Reviews: 167, Image: "❄️", Details: "Professional AC repair and maintenance"},
	}
	for i := range services {
		services[i].Tier = tierFor(services[i].Price)
	}
	return services
}
