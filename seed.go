package main

import (
	"fmt"
	"os"

	"starWarsApi/models"

	"github.com/alexedwards/argon2id"
	"github.com/bytedance/sonic"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Argon2IdParams is used to hash seeded user passwords.
var Argon2IdParams = argon2id.Params{
	Memory:      64 * 1024,
	Iterations:  1,
	Parallelism: 4,
	SaltLength:  16,
	KeyLength:   32,
}

type SeedFile struct {
	Users      []SeedUser         `json:"users"`
	Characters []models.Character `json:"characters"`
	Planets    []models.Planet    `json:"planets"`
}

type SeedUser struct {
	Id       uint   `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func LoadSeedFile(path string) (*SeedFile, error) {
	data, err := os.ReadFile(path)

	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var s SeedFile

	if err := sonic.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal seed file: %w", err)
	}

	return &s, nil
}

// Seed inserts the file's records in one transaction. Rows that collide with an
// existing id, or users with an existing email, are left untouched so a seed
// file can be applied more than once. Characters and planets need explicit ids
// for that to hold.
func Seed(db *gorm.DB, s *SeedFile) error {
	return db.Transaction(func(tx *gorm.DB) error {
		insert := func(value interface{}) error {
			return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(value).Error
		}

		for _, u := range s.Users {
			hash, err := argon2id.CreateHash(u.Password, &Argon2IdParams)

			if err != nil {
				return fmt.Errorf("failed to hash password for %s: %w", u.Email, err)
			}

			err = insert(&models.User{
				Id:       u.Id,
				Name:     u.Name,
				Email:    u.Email,
				Password: hash,
			})

			if err != nil {
				return fmt.Errorf("failed to seed user %s: %w", u.Email, err)
			}
		}

		for i := range s.Characters {
			if err := insert(&s.Characters[i]); err != nil {
				return fmt.Errorf("failed to seed character %s: %w", s.Characters[i].Name, err)
			}
		}

		for i := range s.Planets {
			if err := insert(&s.Planets[i]); err != nil {
				return fmt.Errorf("failed to seed planet %s: %w", s.Planets[i].Name, err)
			}
		}

		return nil
	})
}
