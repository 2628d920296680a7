package store

import "github.com/nagulan1506/real-estate-app/models"

// Demo catalog served when the persistent store is unreachable. The same
// records seed a fresh database on first boot.

var mockProperties = []models.Property{
	{
		ID:       "p1",
		Title:    "Grand Villa in Anna Nagar",
		Type:     "House",
		Location: "Anna Nagar, Chennai",
		Price:    65000000,
		Size:     4200,
		Rooms:    5,
		Lat:      13.0850,
		Lng:      80.2100,
		Images: []string{
			"https://images.unsplash.com/photo-1613545325278-f24b0cae1224?q=80&w=1200&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1600596542815-2251330d666e?q=80&w=1200&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?q=80&w=1200&auto=format&fit=crop",
		},
		Description: "Ultra-luxury independent villa with premium finishes and private amenities in the heart of Anna Nagar.",
	},
	{
		ID:       "p2",
		Title:    "Spacious Villa in Sholinganallur",
		Type:     "House",
		Location: "Sholinganallur, Chennai",
		Price:    12000000,
		Size:     2200,
		Rooms:    3,
		Lat:      12.8996,
		Lng:      80.2209,
		Images: []string{
			"https://images.unsplash.com/photo-1628624747186-a941c476b7ef?q=80&w=1200",
			"https://images.unsplash.com/photo-1600596542815-2251330d666e?q=80&w=1200",
			"https://images.unsplash.com/photo-1564013799919-ab600027ffc6?q=80&w=1200",
		},
		Description: "Modern villa located near the IT corridor with excellent connectivity.",
	},
	{
		ID:       "p3",
		Title:    "Modern 2BHK Flat near OMR",
		Type:     "Apartment",
		Location: "Thoraipakkam, Chennai",
		Price:    8000000,
		Size:     1100,
		Rooms:    2,
		Lat:      12.9400,
		Lng:      80.2300,
		Images: []string{
			"https://images.unsplash.com/photo-1493809842364-78817add7ffb?q=80&w=1200&auto=format&fit=crop",
		},
		Description: "Perfect for IT professionals, close to major tech parks.",
	},
	{
		ID:       "p4",
		Title:    "Independent House in Adyar",
		Type:     "House",
		Location: "Adyar, Chennai",
		Price:    30000000,
		Size:     2400,
		Rooms:    3,
		Lat:      13.0012,
		Lng:      80.2565,
		Images: []string{
			"https://images.unsplash.com/photo-1605276374104-dee2a0ed3cd6?q=80&w=1200&auto=format&fit=crop",
		},
		Description: "Traditional style independent house in a quiet, leafy neighborhood.",
	},
	{
		ID:       "p5",
		Title:    "Seaside Villa in ECR",
		Type:     "House",
		Location: "ECR, Chennai",
		Price:    45000000,
		Size:     3500,
		Rooms:    4,
		Lat:      12.8500,
		Lng:      80.2400,
		Images: []string{
			"https://images.unsplash.com/photo-1512917774080-9991f1c4c750?q=80&w=1200",
			"https://images.unsplash.com/photo-1523217582562-09d0def993a6?q=80&w=1200",
		},
		Description: "Stunning beach house with direct sea access and private pool.",
	},
	{
		ID:       "p6",
		Title:    "Luxury Apartment in T. Nagar",
		Type:     "Apartment",
		Location: "T. Nagar, Chennai",
		Price:    22000000,
		Size:     1800,
		Rooms:    3,
		Lat:      13.0418,
		Lng:      80.2341,
		Images: []string{
			"https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?q=80&w=1200",
			"https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?q=80&w=1200",
		},
		Description: "Premium apartment in the shopping district, close to Panagal Park.",
	},
	{
		ID:       "p7",
		Title:    "Gated Community in Porur",
		Type:     "Apartment",
		Location: "Porur, Chennai",
		Price:    7500000,
		Size:     1050,
		Rooms:    2,
		Lat:      13.0382,
		Lng:      80.1565,
		Images: []string{
			"https://images.unsplash.com/photo-1484154218962-a1c002085d2f?q=80&w=1200",
			"https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?q=80&w=1200",
		},
		Description: "Affordable luxury in a secure gated community near DLF IT Park.",
	},
	{
		ID:       "p8",
		Title:    "Penthouse in Nungambakkam",
		Type:     "Apartment",
		Location: "Nungambakkam, Chennai",
		Price:    55000000,
		Size:     3000,
		Rooms:    4,
		Lat:      13.0604,
		Lng:      80.2496,
		Images: []string{
			"https://images.unsplash.com/photo-1512917774080-9991f1c4c750?q=80&w=1200",
			"https://images.unsplash.com/photo-1600607687939-ce8a6c25118c?q=80&w=1200",
		},
		Description: "Exclusive penthouse with panoramic city views and private terrace.",
	},
}

var mockAgents = []models.Agent{
	{
		ID:    "a1",
		Name:  "Suresh Kumar",
		Email: "suresh@example.com",
		Phone: "+91-98765-43210",
		Bio:   "Expert in residential properties across Anna Nagar and T. Nagar.",
	},
	{
		ID:    "a2",
		Name:  "Priya Rajan",
		Email: "priya@example.com",
		Phone: "+91-98989-89898",
		Bio:   "Specializing in luxury villas and OMR IT corridor apartments.",
	},
	{
		ID:    "a3",
		Name:  "Ravi Shankar",
		Email: "ravi@example.com",
		Phone: "+91-90000-11111",
		Bio:   "Focuses on emerging IT hubs like Porur and Vadapalani.",
	},
	{
		ID:    "a4",
		Name:  "Meera Nair",
		Email: "meera@example.com",
		Phone: "+91-99887-77665",
		Bio:   "Expert in ECR beach houses and premium South Chennai localities.",
	},
}

// Which demo properties each demo agent handles.
var mockAgentProperties = map[string][]string{
	"a1": {"p1", "p4", "p6"},
	"a2": {"p2", "p3", "p8"},
	"a3": {"p7"},
	"a4": {"p5"},
}
