package repository

import (
	"fmt"
	"time"

	"venue-booking/internal/data/entity"
	"venue-booking/pkg/utils"

	"github.com/google/uuid"
)

// Seed identities are fixed so the catalog and demo accounts are stable
// across restarts.
var (
	seedManagerSofiaID = uuid.MustParse("7b1c6a2e-9f3d-4a8b-b1c0-2d5e8f7a9c01")
	seedManagerMarcoID = uuid.MustParse("4e8d2b7a-1c5f-4d9e-a3b8-6f0c9d2e5a02")
)

type seedUser struct {
	id       uuid.UUID
	name     string
	email    string
	password string
	role     entity.Role
}

var seedUsers = []seedUser{
	{
		id:       uuid.MustParse("a1f4c9d2-3e6b-4f8a-9c1d-5b7e2a8f0c03"),
		name:     "Alex Carter",
		email:    "alex@example.com",
		password: "customer123",
		role:     entity.RoleCustomer,
	},
	{
		id:       uuid.MustParse("c9e2a7b4-5d1f-4c3e-8a6b-9f0d3e7c2a04"),
		name:     "Dana Whitfield",
		email:    "admin@example.com",
		password: "admin123",
		role:     entity.RoleAdmin,
	},
	{
		id:       seedManagerSofiaID,
		name:     "Sofia Moretti",
		email:    "sofia@example.com",
		password: "manager123",
		role:     entity.RoleVenueManager,
	},
	{
		id:       seedManagerMarcoID,
		name:     "Marco Tanaka",
		email:    "marco@example.com",
		password: "manager123",
		role:     entity.RoleVenueManager,
	},
}

// SeedUsers builds the demo accounts, hashing their passwords at startup.
func SeedUsers() ([]entity.User, error) {
	now := time.Now()

	users := make([]entity.User, 0, len(seedUsers))
	for _, su := range seedUsers {
		hash, err := utils.HashPassword(su.password)
		if err != nil {
			return nil, fmt.Errorf("hash seed password for %s: %w", su.email, err)
		}

		users = append(users, entity.User{
			Base: entity.Base{
				ID:        su.id,
				CreatedAt: now,
				UpdatedAt: now,
			},
			Name:         su.name,
			Email:        su.email,
			PasswordHash: hash,
			Role:         su.role,
		})
	}

	return users, nil
}

// SeedVenues is the static catalog. Records are never mutated after startup.
func SeedVenues() []entity.Venue {
	return []entity.Venue{
		{
			ID:             uuid.MustParse("0d3b8f2a-6c1e-4a9d-b5f7-8e2c4a0d6b10"),
			Name:           "Trattoria Lucana",
			Location:       "Rome, Italy",
			Rating:         4.8,
			PricePerPerson: 95,
			Description:    "Family-run trattoria with a wood-fired kitchen and a short seasonal menu.",
			ImageURL:       "https://images.example.com/venues/trattoria-lucana.jpg",
			Category:       "italian",
			Featured:       true,
			ManagerID:      seedManagerSofiaID,
		},
		{
			ID:             uuid.MustParse("1e4c9a3b-7d2f-4b0e-c6a8-9f3d5b1e7c11"),
			Name:           "Sakura Omakase",
			Location:       "Kyoto, Japan",
			Rating:         4.9,
			PricePerPerson: 210,
			Description:    "Twelve-seat counter serving a nightly omakase from the morning market.",
			ImageURL:       "https://images.example.com/venues/sakura-omakase.jpg",
			Category:       "japanese",
			Featured:       true,
			ManagerID:      seedManagerMarcoID,
		},
		{
			ID:             uuid.MustParse("2f5d0b4c-8e3a-4c1f-d7b9-0a4e6c2f8d12"),
			Name:           "Bistro Margaux",
			Location:       "Paris, France",
			Rating:         4.6,
			PricePerPerson: 130,
			Description:    "Classic Left Bank bistro with a cellar of small-grower Burgundy.",
			ImageURL:       "https://images.example.com/venues/bistro-margaux.jpg",
			Category:       "french",
			Featured:       false,
			ManagerID:      seedManagerSofiaID,
		},
		{
			ID:             uuid.MustParse("3a6e1c5d-9f4b-4d2a-e8c0-1b5f7d3a9e13"),
			Name:           "The Smokehouse",
			Location:       "Austin, Texas",
			Rating:         4.4,
			PricePerPerson: 55,
			Description:    "Central Texas barbecue, brisket on butcher paper, long communal tables.",
			ImageURL:       "https://images.example.com/venues/the-smokehouse.jpg",
			Category:       "steakhouse",
			Featured:       false,
			ManagerID:      seedManagerMarcoID,
		},
		{
			ID:             uuid.MustParse("4b7f2d6e-0a5c-4e3b-f9d1-2c6a8e4b0f14"),
			Name:           "Harbour & Vine",
			Location:       "Sydney, Australia",
			Rating:         4.7,
			PricePerPerson: 110,
			Description:    "Waterfront seafood room with a raw bar and harbour views.",
			ImageURL:       "https://images.example.com/venues/harbour-and-vine.jpg",
			Category:       "seafood",
			Featured:       true,
			ManagerID:      seedManagerSofiaID,
		},
		{
			ID:             uuid.MustParse("5c8a3e7f-1b6d-4f4c-a0e2-3d7b9f5c1a15"),
			Name:           "Casa Azul",
			Location:       "Mexico City, Mexico",
			Rating:         4.5,
			PricePerPerson: 48,
			Description:    "Courtyard cocina with heirloom corn masa and mezcal flights.",
			ImageURL:       "https://images.example.com/venues/casa-azul.jpg",
			Category:       "mexican",
			Featured:       false,
			ManagerID:      seedManagerMarcoID,
		},
		{
			ID:             uuid.MustParse("6d9b4f8a-2c7e-4a5d-b1f3-4e8c0a6d2b16"),
			Name:           "Nordlys",
			Location:       "Copenhagen, Denmark",
			Rating:         4.9,
			PricePerPerson: 260,
			Description:    "Tasting menu built around fermentation and the Nordic larder.",
			ImageURL:       "https://images.example.com/venues/nordlys.jpg",
			Category:       "nordic",
			Featured:       true,
			ManagerID:      seedManagerSofiaID,
		},
		{
			ID:             uuid.MustParse("7e0c5a9b-3d8f-4b6e-c2a4-5f9d1b7e3c17"),
			Name:           "Spice Route",
			Location:       "Mumbai, India",
			Rating:         4.3,
			PricePerPerson: 35,
			Description:    "Coastal Indian kitchen, thalis at lunch and tandoor specials at night.",
			ImageURL:       "https://images.example.com/venues/spice-route.jpg",
			Category:       "indian",
			Featured:       false,
			ManagerID:      seedManagerMarcoID,
		},
		{
			ID:             uuid.MustParse("8f1d6b0c-4e9a-4c7f-d3b5-6a0e2c8f4d18"),
			Name:           "Golden Lotus",
			Location:       "Singapore",
			Rating:         4.6,
			PricePerPerson: 88,
			Description:    "Cantonese dim sum by day, roast meats and claypots after dark.",
			ImageURL:       "https://images.example.com/venues/golden-lotus.jpg",
			Category:       "chinese",
			Featured:       false,
			ManagerID:      seedManagerSofiaID,
		},
		{
			ID:             uuid.MustParse("9a2e7c1d-5f0b-4d8a-e4c6-7b1f3d9a5e19"),
			Name:           "El Asador",
			Location:       "Buenos Aires, Argentina",
			Rating:         4.7,
			PricePerPerson: 72,
			Description:    "Parrilla with dry-aged cuts over quebracho embers and a Malbec list.",
			ImageURL:       "https://images.example.com/venues/el-asador.jpg",
			Category:       "steakhouse",
			Featured:       false,
			ManagerID:      seedManagerMarcoID,
		},
		{
			ID:             uuid.MustParse("ab3f8d2e-6a1c-4e9b-f5d7-8c2a4e0b6f20"),
			Name:           "Mezze & Co",
			Location:       "Athens, Greece",
			Rating:         4.2,
			PricePerPerson: 42,
			Description:    "Rooftop mezze bar under the Acropolis, sharing plates and ouzo.",
			ImageURL:       "https://images.example.com/venues/mezze-and-co.jpg",
			Category:       "greek",
			Featured:       false,
			ManagerID:      seedManagerSofiaID,
		},
		{
			ID:             uuid.MustParse("bc4a9e3f-7b2d-4f0c-a6e8-9d3b5f1c7a21"),
			Name:           "The Orangery",
			Location:       "London, England",
			Rating:         4.5,
			PricePerPerson: 75,
			Description:    "Glasshouse dining room known for its weekend afternoon tea.",
			ImageURL:       "https://images.example.com/venues/the-orangery.jpg",
			Category:       "british",
			Featured:       true,
			ManagerID:      seedManagerMarcoID,
		},
	}
}
