package database

import (
	"fmt"

	"github.com/google/uuid"

	"trimbook/models"
)

// Seed fills the store with a demo account and a handful of providers so the
// app has something to book against out of the box. Returns the demo user.
func Seed(db *DB) (models.User, error) {
	names := []string{
		"Ana Duarte",
		"Bruno Ferraz",
		"Carla Mendes",
		"Diego Rocha",
		"Elisa Prado",
		"Fabio Lima",
	}
	for i, name := range names {
		avatar := fmt.Sprintf("/files/provider-%d.jpeg", i+1)
		db.AddProvider(models.Provider{
			ID:        uuid.New().String(),
			Name:      name,
			AvatarURL: &avatar,
		})
	}

	user, err := db.CreateUser("Demo User", "demo@trimbook.local", "123456")
	if err != nil {
		return models.User{}, fmt.Errorf("seed demo user: %w", err)
	}
	return user, nil
}
