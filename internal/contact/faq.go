package contact

import "sync"

// FAQ is one question/answer pair.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// FAQs returns the published questions in display order.
func FAQs() []FAQ {
	return []FAQ{
		{
			Question: "How do I book a service?",
			Answer:   "Visit our Booking page, select your service, choose your preferred date and time, and provide your contact information. You'll receive a confirmation email with all the details.",
		},
		{
			Question: "What payment methods do you accept?",
			Answer:   "We accept all major credit cards, debit cards, PayPal, and online bank transfers. Payment is processed securely during checkout.",
		},
		{
			Question: "Can I reschedule or cancel my booking?",
			Answer:   "Yes, you can reschedule or cancel up to 24 hours before your appointment. Contact us or manage your booking through your account.",
		},
		{
			Question: "Are your service providers insured?",
			Answer:   "Yes, all our service providers are fully licensed and insured. We prioritize safety and quality in all our services.",
		},
		{
			Question: "What if I'm not satisfied with the service?",
			Answer:   "We offer a 100% satisfaction guarantee. If you're not happy, contact our customer support team and we'll make it right.",
		},
		{
			Question: "How are service professionals vetted?",
			Answer:   "All professionals undergo background checks, license verification, and customer rating reviews. We maintain high standards of quality and professionalism.",
		},
	}
}

// Accordion tracks which FAQ is expanded. At most one entry is open;
// toggling the open entry collapses it.
type Accordion struct {
	mu       sync.Mutex
	expanded int
}

// NewAccordion starts with every entry collapsed.
func NewAccordion() *Accordion {
	return &Accordion{expanded: -1}
}

// Toggle opens the entry at index, or collapses it if already open.
func (a *Accordion) Toggle(index int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.expanded == index {
		a.expanded = -1
		return
	}
	a.expanded = index
}

// Expanded returns the open index, -1 when all are collapsed.
func (a *Accordion) Expanded() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.expanded
}
