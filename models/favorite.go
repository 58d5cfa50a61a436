package models

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrFavoriteExists   = errors.New("favorite already exists")
	ErrFavoriteNotFound = errors.New("favorite not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrTargetNotFound   = errors.New("favorite target not found")
	ErrInvalidTarget    = errors.New("favorite must reference exactly one of a character or a planet")
)

// Favorite links a user to exactly one character or planet.
type Favorite struct {
	Id           uint  `gorm:"primaryKey" json:"id"`
	UserId       *uint `gorm:"index;uniqueIndex:idx_favorites_user_character;uniqueIndex:idx_favorites_user_planet" json:"user_id"`
	CharactersId *uint `gorm:"uniqueIndex:idx_favorites_user_character;check:chk_favorites_single_target,(characters_id IS NULL) <> (planets_id IS NULL)" json:"characters_id"`
	PlanetsId    *uint `gorm:"uniqueIndex:idx_favorites_user_planet" json:"planets_id"`
}

func (Favorite) TableName() string {
	return "favorites"
}

type TargetKind string

const (
	CharacterTarget TargetKind = "character"
	PlanetTarget    TargetKind = "planet"
)

func (k TargetKind) Column() string {
	if k == PlanetTarget {
		return "planets_id"
	}

	return "characters_id"
}

func (k TargetKind) model() interface{} {
	if k == PlanetTarget {
		return &Planet{}
	}

	return &Character{}
}

func (k TargetKind) newFavorite(userId uint, targetId uint) *Favorite {
	f := &Favorite{UserId: &userId}

	if k == PlanetTarget {
		f.PlanetsId = &targetId
	} else {
		f.CharactersId = &targetId
	}

	return f
}

// TargetOf resolves a body carrying optional character and planet ids into a
// single target.
func TargetOf(charactersId *uint, planetsId *uint) (TargetKind, uint, error) {
	switch {
	case charactersId != nil && planetsId == nil:
		return CharacterTarget, *charactersId, nil
	case planetsId != nil && charactersId == nil:
		return PlanetTarget, *planetsId, nil
	default:
		return "", 0, ErrInvalidTarget
	}
}

// FindFavorite returns nil without an error when the user has not favorited the target.
func FindFavorite(tx *gorm.DB, userId uint, kind TargetKind, targetId uint) (*Favorite, error) {
	var f Favorite

	err := tx.Where(map[string]interface{}{"user_id": userId, kind.Column(): targetId}).First(&f).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("find favorite: %w", err)
	}

	return &f, nil
}

func AddFavorite(tx *gorm.DB, userId uint, kind TargetKind, targetId uint) (*Favorite, error) {
	if err := requireRecord(tx, &User{}, userId, ErrUserNotFound); err != nil {
		return nil, err
	}

	if err := requireRecord(tx, kind.model(), targetId, ErrTargetNotFound); err != nil {
		return nil, err
	}

	existing, err := FindFavorite(tx, userId, kind, targetId)

	if err != nil {
		return nil, err
	}

	if existing != nil {
		return nil, ErrFavoriteExists
	}

	f := kind.newFavorite(userId, targetId)

	if err := insertFavorite(tx, f); err != nil {
		return nil, err
	}

	return f, nil
}

// insertFavorite reports a unique index violation, i.e. a concurrent request
// inserting the same pair between lookup and insert, as ErrFavoriteExists.
func insertFavorite(tx *gorm.DB, f *Favorite) error {
	if err := tx.Create(f).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrFavoriteExists
		}

		return fmt.Errorf("create favorite: %w", err)
	}

	return nil
}

func RemoveFavorite(tx *gorm.DB, userId uint, kind TargetKind, targetId uint) error {
	f, err := FindFavorite(tx, userId, kind, targetId)

	if err != nil {
		return err
	}

	if f == nil {
		return ErrFavoriteNotFound
	}

	if err := tx.Delete(f).Error; err != nil {
		return fmt.Errorf("delete favorite: %w", err)
	}

	return nil
}

func requireRecord(tx *gorm.DB, model interface{}, id uint, missing error) error {
	var count int64

	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return fmt.Errorf("count %T: %w", model, err)
	}

	if count == 0 {
		return missing
	}

	return nil
}
