package main

import (
	"errors"
	"net/http"

	"starWarsApi/models"

	"github.com/gofiber/fiber/v2"
)

var ErrFavoriteExists = resultError(http.StatusConflict, "favorite already exists")
var ErrFavoriteNotFound = resultError(http.StatusNotFound, "favorite not found")
var ErrUserNotFound = NotFound("User not found.")
var ErrUserIdMismatch = BadRequest("Body user_id does not match the user in the path.")

func favoriteRoutes(router fiber.Router) {
	router.Post("/user/:id", AddFavoriteFromBody)

	// people is the path older clients use for characters
	for _, segment := range []string{"characters", "people"} {
		router.Post("/user/:user_id/favorites/"+segment+"/:target_id", AddFavorite(models.CharacterTarget))
		router.Delete("/user/:user_id/favorites/"+segment+"/:target_id", DeleteFavorite(models.CharacterTarget))
	}

	router.Post("/user/:user_id/favorites/planet/:target_id", AddFavorite(models.PlanetTarget))
	router.Delete("/user/:user_id/favorites/planet/:target_id", DeleteFavorite(models.PlanetTarget))
}

func favoriteParams(c *fiber.Ctx) (uint, uint, error) {
	userId, err := paramId(c, "user_id")

	if err != nil {
		return 0, 0, err
	}

	targetId, err := paramId(c, "target_id")

	if err != nil {
		return 0, 0, err
	}

	return userId, targetId, nil
}

func AddFavorite(kind models.TargetKind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userId, targetId, err := favoriteParams(c)

		if err != nil {
			return err
		}

		return createFavorite(c, userId, kind, targetId)
	}
}

func DeleteFavorite(kind models.TargetKind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userId, targetId, err := favoriteParams(c)

		if err != nil {
			return err
		}

		err = models.RemoveFavorite(Tx(c), userId, kind, targetId)

		if errors.Is(err, models.ErrFavoriteNotFound) {
			return ErrFavoriteNotFound
		} else if err != nil {
			return err
		}

		return c.Status(http.StatusOK).JSON(MsgFavoriteRemoved)
	}
}

// AddFavoriteFromBody accepts {user_id, characters_id, planets_id} and goes
// through the same duplicate check as the path based routes.
func AddFavoriteFromBody(c *fiber.Ctx) error {
	var f FavoriteRequest

	if err := c.BodyParser(&f); err != nil {
		return ErrInvalidRequestBody
	}

	if err := ValidateRequest(&f); err != nil {
		return err
	}

	userId, err := paramId(c, "id")

	if err != nil {
		return err
	}

	if f.UserId != nil && *f.UserId != userId {
		return ErrUserIdMismatch
	}

	kind, targetId, err := models.TargetOf(f.CharactersId, f.PlanetsId)

	if err != nil {
		return BadRequest(err.Error())
	}

	return createFavorite(c, userId, kind, targetId)
}

func createFavorite(c *fiber.Ctx, userId uint, kind models.TargetKind, targetId uint) error {
	_, err := models.AddFavorite(Tx(c), userId, kind, targetId)

	switch {
	case errors.Is(err, models.ErrFavoriteExists):
		return ErrFavoriteExists
	case errors.Is(err, models.ErrUserNotFound):
		return ErrUserNotFound
	case errors.Is(err, models.ErrTargetNotFound):
		if kind == models.PlanetTarget {
			return NotFound("Planet not found.")
		}

		return NotFound("Character not found.")
	case err != nil:
		return err
	}

	return c.Status(http.StatusCreated).JSON(MsgFavoriteAdded)
}
