package main

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"someswar-temple/internal/auth"
	"someswar-temple/internal/config"
	"someswar-temple/internal/db"
	"someswar-temple/internal/models"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, cols, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal(err)
	}
	defer client.Disconnect(context.Background())

	if err := db.EnsureIndexes(ctx, cols); err != nil {
		log.Fatal(err)
	}

	now := time.Now().In(cfg.Timezone)

	catalog := []models.Puja{
		{
			Name:         "Rudrabhishek",
			NameHindi:    "रुद्राभिषेक",
			Price:        1100,
			Duration:     "1.5 hours",
			Description:  "Sacred bathing ritual of Lord Shiva with panchamrit and holy water, accompanied by Rudram chanting.",
			Benefits:     []string{"Removes negative energies", "Brings peace and prosperity", "Fulfils wishes"},
			Requirements: []string{"Bilva leaves", "Panchamrit", "Fresh flowers"},
			Constrains:   []string{"Performed in morning hours only"},
			Mode:         []string{models.ModeOnline, models.ModeOffline},
			Temples:      []string{"Someswar Mahadev Temple"},
		},
		{
			Name:         "Maha Mrityunjaya Jaap",
			NameHindi:    "महामृत्युंजय जाप",
			Price:        2100,
			Duration:     "3 hours",
			Description:  "Recitation of the Maha Mrityunjaya mantra for health, longevity and protection from untimely misfortune.",
			Benefits:     []string{"Health and longevity", "Protection from illness"},
			Requirements: []string{"Rudraksha mala", "Ghee lamp"},
			Constrains:   []string{"Devotee's birth details required for sankalp"},
			Mode:         []string{models.ModeOnline, models.ModeOffline},
			Temples:      []string{"Someswar Mahadev Temple"},
		},
		{
			Name:         "Satyanarayan Katha",
			NameHindi:    "सत्यनारायण कथा",
			Price:        1500,
			Duration:     "2 hours",
			Description:  "Narration of the Satyanarayan vrat katha with puja, performed for household wellbeing and gratitude.",
			Benefits:     []string{"Family harmony", "Prosperity"},
			Requirements: []string{"Banana leaves", "Panchamrit", "Tulsi leaves"},
			Constrains:   []string{"Best performed on purnima"},
			Mode:         []string{models.ModeOffline},
			Temples:      []string{"Someswar Mahadev Temple"},
		},
		{
			Name:         "Navagraha Shanti",
			NameHindi:    "नवग्रह शांति",
			Price:        3100,
			Duration:     "4 hours",
			Description:  "Pacification ritual for the nine planetary deities to ease doshas in the devotee's birth chart.",
			Benefits:     []string{"Relief from planetary doshas", "Improved fortune"},
			Requirements: []string{"Nine grains", "Coloured cloths"},
			Constrains:   []string{"Devotee's birth details required for sankalp"},
			Mode:         []string{models.ModeOnline, models.ModeOffline},
			Temples:      []string{"Someswar Mahadev Temple"},
		},
		{
			Name:         "Ganesh Puja",
			NameHindi:    "गणेश पूजा",
			Price:        751,
			Duration:     "1 hour",
			Description:  "Invocation of Lord Ganesha for removing obstacles before new beginnings.",
			Benefits:     []string{"Removes obstacles", "Auspicious start"},
			Requirements: []string{"Modak", "Durva grass", "Red flowers"},
			Constrains:   []string{},
			Mode:         []string{models.ModeOnline, models.ModeOffline},
			Temples:      []string{"Someswar Mahadev Temple"},
		},
	}

	for _, puja := range catalog {
		filter := bson.M{"name": puja.Name}
		update := bson.M{
			"$setOnInsert": bson.M{
				"_id":          primitive.NewObjectID().Hex(),
				"name":         puja.Name,
				"nameHindi":    puja.NameHindi,
				"price":        puja.Price,
				"duration":     puja.Duration,
				"description":  puja.Description,
				"benefits":     puja.Benefits,
				"requirements": puja.Requirements,
				"constrains":   puja.Constrains,
				"mode":         puja.Mode,
				"temples":      puja.Temples,
				"createdAt":    now,
				"updatedAt":    now,
			},
		}
		if _, err := cols.Pujas.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
			log.Fatalf("seed puja %q: %v", puja.Name, err)
		}
		log.Printf("seeded puja %q", puja.Name)
	}

	if cfg.AdminPassword == "" {
		log.Println("ADMIN_PASSWORD not set, skipping admin user")
		return
	}

	hash, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		log.Fatal(err)
	}

	userUpdate := bson.M{
		"$setOnInsert": bson.M{
			"_id":       primitive.NewObjectID().Hex(),
			"username":  cfg.AdminUser,
			"role":      models.UserRoleAdmin,
			"createdAt": now,
		},
		"$set": bson.M{
			"passwordHash": hash,
			"updatedAt":    now,
		},
	}
	if _, err := cols.Users.UpdateOne(ctx, bson.M{"username": cfg.AdminUser}, userUpdate, options.Update().SetUpsert(true)); err != nil {
		log.Fatal(err)
	}
	log.Printf("seeded admin user %q", cfg.AdminUser)
}
