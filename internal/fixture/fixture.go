// Package fixture loads seed data for the catalog from YAML.
package fixture

import (
	"bytes"
	"context"
	_ "embed"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v2"

	"github.com/holocron/holocron-go/internal/crypto"
	"github.com/holocron/holocron-go/internal/model"
	"github.com/holocron/holocron-go/internal/repository"
)

//go:embed starwars.yaml
var starWars []byte

type User struct {
	Name     string `yaml:"name" validate:"required"`
	LastName string `yaml:"last_name"`
	Email    string `yaml:"email" validate:"required,email"`
	Password string `yaml:"password" validate:"required"`
	IsActive *bool  `yaml:"is_active"`
}

type Character struct {
	Name      *string `yaml:"name"`
	Gender    *string `yaml:"gender"`
	HairColor *string `yaml:"hair_color"`
	EyeColor  *string `yaml:"eye_color"`
	Height    *int64  `yaml:"height"`
	Weight    *int64  `yaml:"weight"`
}

type Planet struct {
	Name       string  `yaml:"name" validate:"required"`
	Population *string `yaml:"population"`
	Diameter   int64   `yaml:"diameter" validate:"gte=0"`
}

// Dataset is the document root of a fixture file.
type Dataset struct {
	Users      []User      `yaml:"users" validate:"dive"`
	Characters []Character `yaml:"characters"`
	Planets    []Planet    `yaml:"planets" validate:"dive"`
}

// Counts reports how many rows Seed inserted.
type Counts struct {
	Users      int
	Characters int
	Planets    int
}

// Default returns the embedded Star Wars dataset.
func Default() (Dataset, error) {
	return Load(bytes.NewReader(starWars))
}

func LoadFile(path string) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return Dataset{}, errors.Wrapf(err, "opening fixture %s", path)
	}
	defer f.Close()

	ds, err := Load(f)
	return ds, errors.Wrapf(err, "fixture %s", path)
}

// Load parses and validates a YAML dataset. Unknown keys are rejected.
func Load(r io.Reader) (Dataset, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Dataset{}, errors.Wrap(err, "reading fixture")
	}

	var ds Dataset
	if err := yaml.UnmarshalStrict(raw, &ds); err != nil {
		return Dataset{}, errors.Wrap(err, "parsing fixture")
	}
	if err := validator.New().Struct(ds); err != nil {
		return Dataset{}, errors.Wrap(err, "invalid fixture")
	}
	return ds, nil
}

// Seed inserts every row of ds into db in one transaction, so a failure
// leaves the store untouched. Passwords are hashed with h. Users without
// is_active are stored as active.
func Seed(ctx context.Context, db *repository.DB, ds Dataset, h crypto.Hasher) (Counts, error) {
	users := make([]*model.User, 0, len(ds.Users))
	for _, u := range ds.Users {
		hash, err := h.Hash(u.Password)
		if err != nil {
			return Counts{}, errors.Wrapf(err, "hashing password for %s", u.Email)
		}

		active := true
		if u.IsActive != nil {
			active = *u.IsActive
		}

		users = append(users, &model.User{
			Name:     u.Name,
			LastName: u.LastName,
			Email:    u.Email,
			Password: hash,
			IsActive: active,
		})
	}

	var counts Counts
	err := db.Batch(ctx, func(b *repository.Batch) error {
		counts = Counts{}

		for _, user := range users {
			if err := b.CreateUser(ctx, user); err != nil {
				return errors.Wrapf(err, "creating user %s", user.Email)
			}
			counts.Users++
		}

		for _, c := range ds.Characters {
			character := &model.Character{
				Name:      c.Name,
				Gender:    c.Gender,
				HairColor: c.HairColor,
				EyeColor:  c.EyeColor,
				Height:    c.Height,
				Weight:    c.Weight,
			}
			if err := b.CreateCharacter(ctx, character); err != nil {
				return errors.Wrap(err, "creating character")
			}
			counts.Characters++
		}

		for _, p := range ds.Planets {
			planet := &model.Planet{
				Name:       p.Name,
				Population: p.Population,
				Diameter:   p.Diameter,
			}
			if err := b.CreatePlanet(ctx, planet); err != nil {
				return errors.Wrapf(err, "creating planet %s", p.Name)
			}
			counts.Planets++
		}
		return nil
	})
	if err != nil {
		return Counts{}, err
	}

	zerolog.Ctx(ctx).Info().
		Int("users", counts.Users).
		Int("characters", counts.Characters).
		Int("planets", counts.Planets).
		Msg("fixture seeded")
	return counts, nil
}
