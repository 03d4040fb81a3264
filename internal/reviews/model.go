package reviews

// Review is one customer testimonial.
type Review struct {
	ID       int    `json:"id"`
	Author   string `json:"author"`
	Service  string `json:"service"`
	Rating   int    `json:"rating"`
	Date     string `json:"date"`
	Text     string `json:"text"`
	Helpful  int    `json:"helpful"`
	Featured bool   `json:"featured"`
	Verified bool   `json:"verified"`
}

// Services lists the service names selectable on the review form.
func Services() []string {
	return []string{
		"House Cleaning",
		"Plumbing Repair",
		"Electrical Work",
		"Lawn Care",
		"HVAC Service",
		"General Handyman",
	}
}

// Seed returns the launch testimonials, newest first.
func Seed() []Review {
	return []Review{
		{ID: 1, Author: "Sarah Johnson", Service: "House Cleaning", Rating: 5, Date: "2024-01-15", Text: "Excellent service! The team was professional and thorough. My house has never looked better. Highly recommended!", Helpful: 24, Featured: true, Verified: true},
		{ID: 2, Author: "Michael Chen", Service: "Plumbing Repair", Rating: 4, Date: "2024-01-10", Text: "Great service at a fair price. The plumber was knowledgeable and fixed the issue quickly.", Helpful: 18, Verified: true},
		{ID: 3, Author: "Emily Rodriguez", Service: "Electrical Work", Rating: 5, Date: "2024-01-08", Text: "Professional and reliable. They completed the work on time and the quality was outstanding.", Helpful: 32, Featured: true, Verified: true},
		{ID: 4, Author: "James Wilson", Service: "Lawn Care", Rating: 4, Date: "2024-01-05", Text: "Very satisfied with the landscaping work. The team was friendly and took great care of my yard.", Helpful: 15, Verified: true},
		{ID: 5, Author: "Lisa Anderson", Service: "HVAC Service", Rating: 5, Date: "2024-01-02", Text: "Amazing! Fixed my air conditioning in less than an hour. Best service ever!", Helpful: 45, Featured: true, Verified: true},
		{ID: 6, Author: "David Kumar", Service: "General Handyman", Rating: 4, Date: "2023-12-28", Text: "Got multiple small repairs done efficiently. Great communication throughout the process.", Helpful: 22, Verified: true},
	}
}
