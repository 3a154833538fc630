package services

import (
	"fmt"
	"time"

	"github.com/homefix/backend/internal/models"
)

type seedTechnician struct {
	name       string
	phone      string
	experience int
}

var seedServices = []models.Service{
	{
		Title:       "Plumbing Services",
		Description: "Professional leak detection, fixing, and pipe maintenance for your home",
		Icon:        "🔧",
		Price:       "₹499 onwards",
		Category:    models.CategoryPlumbing,
		BorderColor: "#3b82f6",
		Subservices: models.Subservices{
			{Name: "Leak Detection & Repair", Description: "Identify and fix water leaks quickly", Price: "₹499", Duration: "1-2 hours"},
			{Name: "Pipe Installation", Description: "New pipe fitting and installation", Price: "₹799", Duration: "2-3 hours"},
			{Name: "Drain Cleaning", Description: "Clear blocked drains and pipes", Price: "₹599", Duration: "1 hour"},
			{Name: "Tap & Faucet Repair", Description: "Fix dripping taps and faucets", Price: "₹399", Duration: "30 mins"},
		},
	},
	{
		Title:       "Electrical Services",
		Description: "Complete electrical repairs and safety inspections by certified electricians",
		Icon:        "⚡",
		Price:       "₹599 onwards",
		Category:    models.CategoryElectrical,
		BorderColor: "#8b5cf6",
		Subservices: models.Subservices{
			{Name: "Wiring Repair", Description: "Fix faulty electrical wiring safely", Price: "₹699", Duration: "2-3 hours"},
			{Name: "Switch Installation", Description: "Install new switches and outlets", Price: "₹599", Duration: "1 hour"},
			{Name: "Fan Installation", Description: "Install ceiling and wall fans", Price: "₹799", Duration: "1-2 hours"},
			{Name: "Safety Inspection", Description: "Complete electrical safety check", Price: "₹1299", Duration: "2-3 hours"},
		},
	},
	{
		Title:       "Cleaning Services",
		Description: "Deep cleaning solutions using eco-friendly products",
		Icon:        "🧹",
		Price:       "₹399 onwards",
		Category:    models.CategoryCleaning,
		BorderColor: "#10b981",
		Subservices: models.Subservices{
			{Name: "Deep Home Cleaning", Description: "Thorough cleaning of entire home", Price: "₹1299", Duration: "4-5 hours"},
			{Name: "Kitchen Cleaning", Description: "Complete kitchen sanitization", Price: "₹799", Duration: "2-3 hours"},
			{Name: "Bathroom Cleaning", Description: "Deep bathroom cleaning", Price: "₹599", Duration: "1-2 hours"},
		},
	},
	{
		Title:       "Painting Services",
		Description: "Interior and exterior painting with premium quality paints",
		Icon:        "🎨",
		Price:       "₹899 onwards",
		Category:    models.CategoryPainting,
		BorderColor: "#ef4444",
		Subservices: models.Subservices{
			{Name: "Interior Painting", Description: "Paint interior walls professionally", Price: "₹899", Duration: "1 day"},
			{Name: "Exterior Painting", Description: "Weather-resistant exterior painting", Price: "₹1299", Duration: "2 days"},
			{Name: "Texture Painting", Description: "Decorative texture painting", Price: "₹1599", Duration: "2 days"},
		},
	},
	{
		Title:       "Carpentry Services",
		Description: "Custom carpentry work, furniture assembly, and repairs",
		Icon:        "🔨",
		Price:       "₹699 onwards",
		Category:    models.CategoryCarpentry,
		BorderColor: "#f59e0b",
		Subservices: models.Subservices{
			{Name: "Furniture Assembly", Description: "Assemble new furniture items", Price: "₹699", Duration: "1-2 hours"},
			{Name: "Door Repair", Description: "Fix door hinges and locks", Price: "₹799", Duration: "1-2 hours"},
			{Name: "Custom Furniture", Description: "Build custom furniture pieces", Price: "₹2999", Duration: "3-5 days"},
		},
	},
	{
		Title:       "AC Repair & Maintenance",
		Description: "Air conditioning installation, repair, and maintenance",
		Icon:        "❄️",
		Price:       "₹499 onwards",
		Category:    models.CategoryAC,
		BorderColor: "#06b6d4",
		Subservices: models.Subservices{
			{Name: "AC Service", Description: "Complete AC cleaning and gas check", Price: "₹499", Duration: "1 hour"},
			{Name: "AC Installation", Description: "Install new air conditioner", Price: "₹1999", Duration: "2-3 hours"},
			{Name: "AC Repair", Description: "Fix cooling and other issues", Price: "₹799", Duration: "1-2 hours"},
		},
	},
}

var seedTechnicians = map[string][]seedTechnician{
	models.CategoryPlumbing:   {{"Ramesh Yadav", "+919810000101", 8}, {"Suresh Patil", "+919810000102", 5}},
	models.CategoryElectrical: {{"Ravi Kumar", "+919810000201", 10}, {"Anil Sharma", "+919810000202", 4}},
	models.CategoryCleaning:   {{"Meena Devi", "+919810000301", 6}, {"Lakshmi Iyer", "+919810000302", 3}},
	models.CategoryPainting:   {{"Imran Khan", "+919810000401", 12}, {"Prakash Rao", "+919810000402", 7}},
	models.CategoryCarpentry:  {{"Joseph Mathew", "+919810000501", 9}, {"Harish Gowda", "+919810000502", 6}},
	models.CategoryAC:         {{"Vikram Singh", "+919810000601", 7}, {"Deepak Nair", "+919810000602", 5}},
}

// SeedCatalog builds the default storefront. Ids are stable (svc-<category>, tech-<category>-<n>)
// so bookings survive a reseed.
func SeedCatalog(now time.Time) ([]models.Service, []models.Technician) {
	services := make([]models.Service, 0, len(seedServices))
	technicians := make([]models.Technician, 0, 2*len(seedServices))

	for i, s := range seedServices {
		s.ID = "svc-" + s.Category
		s.Subservices = append(models.Subservices(nil), s.Subservices...)
		s.CreatedAt = now.Add(time.Duration(i) * time.Millisecond)
		services = append(services, s)

		for n, t := range seedTechnicians[s.Category] {
			technicians = append(technicians, models.Technician{
				ID:             fmt.Sprintf("tech-%s-%d", s.Category, n+1),
				Name:           t.name,
				Specialization: s.Category,
				Phone:          t.phone,
				Experience:     t.experience,
				Available:      true,
				CreatedAt:      now,
			})
		}
	}
	return services, technicians
}
